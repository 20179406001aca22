package parser

import (
	"fmt"
	"strings"

	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// ErrorKind discriminates the three fatal error classes of spec.md §7.
type ErrorKind int

const (
	LexicalError ErrorKind = iota
	UnexpectedToken
	UnexpectedEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "LexicalError"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	default:
		return "UnknownError"
	}
}

// ParseError is the located, fatal error the driver returns. There is no
// recovery: parsing stops at the first one (spec.md §7).
type ParseError struct {
	Kind     ErrorKind
	Offset   int
	Expected []string
	Found    token.Token
	Message  string // set directly for LexicalError; derived otherwise
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	if e.Kind == UnexpectedEndOfInput {
		return fmt.Sprintf("UnexpectedEndOfInput at offset %d: expected %s", e.Offset, strings.Join(e.Expected, " or "))
	}
	return fmt.Sprintf("UnexpectedToken at offset %d: expected %s, found %s %q",
		e.Offset, strings.Join(e.Expected, " or "), e.Found.Type, e.Found.Literal)
}

func unexpectedToken(tok token.Token, expected ...string) *ParseError {
	kind := UnexpectedToken
	if tok.Type == token.EOF {
		kind = UnexpectedEndOfInput
	}
	return &ParseError{Kind: kind, Offset: tok.Pos.Offset, Expected: expected, Found: tok}
}

func lexicalError(offset int, message string) *ParseError {
	return &ParseError{Kind: LexicalError, Offset: offset, Message: message}
}
