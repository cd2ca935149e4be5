package parser

import (
	"errors"
	"io"

	"github.com/ethereum/go-ethereum/log"

	"github.com/appengine-ltd/homespring/internal/river"
)

type Parser struct {
	vocab *Vocabulary
	log   log.Logger
}

func New() *Parser {
	return &Parser{vocab: DefaultVocabulary(), log: log.Root()}
}

// SetLogger changes where the parser reports unrecognised instructions.
func (p *Parser) SetLogger(l log.Logger) {
	p.log = l
}

func (p *Parser) Vocabulary() *Vocabulary {
	return p.vocab
}

// Parse parses src with a default parser.
func Parse(src string, opts ...river.Option) (*river.Program, error) {
	return New().Parse(src, opts...)
}

// Parse turns program text into a program. Text without any non-empty token
// is the empty program. The options are applied to the river being built.
func (p *Parser) Parse(src string, opts ...river.Option) (*river.Program, error) {
	r, err := p.build(NewTokenizer(src), opts)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return river.EmptyProgram(), nil
	}
	for _, f := range p.vocab.Lint(r) {
		if f.Suggestion != "" {
			p.log.Debug("Unrecognised instruction", "node", f.Node, "name", f.Name, "suggestion", f.Suggestion)
		}
	}
	p.log.Debug("Parsed program", "nodes", r.Len())
	return river.NewProgram(r), nil
}

// build attaches every non-empty token as a child of the cursor and descends
// into it; an empty token moves the cursor back to its parent.
func (p *Parser) build(t *Tokenizer, opts []river.Option) (*river.River, error) {
	var (
		r      *river.River
		cursor = river.NoNode
	)
	for {
		tok, err := t.Next()
		if errors.Is(err, io.EOF) {
			return r, nil
		}
		if err != nil {
			return nil, err
		}

		if r == nil {
			if tok.Text == "" {
				continue
			}
			r = river.New(tok.Text, opts...)
			cursor = r.Root().ID
			continue
		}

		if tok.Text == "" {
			n := r.Node(cursor)
			if n.IsRoot() {
				return nil, &ParseError{Offset: tok.Offset, Err: ErrDedentPastRoot}
			}
			cursor = n.Parent
			continue
		}

		cursor, err = r.AddChild(cursor, tok.Text)
		if err != nil {
			return nil, err
		}
	}
}
