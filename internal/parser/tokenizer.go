package parser

import "io"

const (
	delimiter = ' '
	escape    = '.'
)

type span struct {
	start, end int
}

func (s span) empty() bool {
	return s.start == s.end
}

// Tokenizer splits program text on single spaces. Consecutive spaces yield
// empty tokens. A token ending in '.' is joined with the next non-empty
// token, and a token is joined with a following token that starts with '.';
// joined tokens keep the exact source text between them.
type Tokenizer struct {
	src     string
	pos     int
	done    bool
	peek    span
	hasPeek bool
	err     error
}

func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	tok, ok := t.read()
	if !ok {
		return Token{}, io.EOF
	}
	if tok.empty() {
		return Token{Offset: tok.start}, nil
	}
	for {
		if t.src[tok.end-1] == escape {
			next, ok := t.readNonEmpty()
			if !ok {
				t.err = &ParseError{Offset: tok.start, Token: t.src[tok.start:tok.end], Err: ErrDanglingEscape}
				return Token{}, t.err
			}
			tok.end = next.end
			continue
		}
		next, ok := t.read()
		if !ok {
			break
		}
		if !next.empty() && t.src[next.start] == escape {
			tok.end = next.end
			continue
		}
		t.unread(next)
		break
	}
	return Token{Text: t.src[tok.start:tok.end], Offset: tok.start}, nil
}

// Tokens collects every token of src.
func Tokens(src string) ([]Token, error) {
	t := NewTokenizer(src)
	var out []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
}

func (t *Tokenizer) read() (span, bool) {
	if t.hasPeek {
		t.hasPeek = false
		return t.peek, true
	}
	if t.done {
		return span{}, false
	}
	for i := t.pos; i < len(t.src); i++ {
		if t.src[i] == delimiter {
			s := span{t.pos, i}
			t.pos = i + 1
			return s, true
		}
	}
	t.done = true
	return span{t.pos, len(t.src)}, true
}

func (t *Tokenizer) readNonEmpty() (span, bool) {
	for {
		s, ok := t.read()
		if !ok || !s.empty() {
			return s, ok
		}
	}
}

func (t *Tokenizer) unread(s span) {
	t.peek = s
	t.hasPeek = true
}
