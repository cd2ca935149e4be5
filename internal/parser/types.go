package parser

import (
	"fmt"

	"github.com/appengine-ltd/homespring/internal/river"
)

var (
	ErrDanglingEscape = fmt.Errorf("%w: escape marker at end of program", river.ErrMalformedProgram)
	ErrDedentPastRoot = fmt.Errorf("%w: dedent past root", river.ErrMalformedProgram)
)

// Token is one logical token of program text. An empty Text is a dedent.
type Token struct {
	Text   string
	Offset int
}

// ParseError locates a malformed part of a program.
type ParseError struct {
	Offset int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d (%q): %v", e.Offset, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Finding is a node whose name matches no instruction.
type Finding struct {
	Node       river.NodeID
	Name       string
	Suggestion string
}
