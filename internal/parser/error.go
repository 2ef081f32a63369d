package parser

import (
	"fmt"

	"github.com/cwbudde/ecmaparse/pkg/token"
)

// ErrorKind distinguishes the five diagnostic shapes the parser core can
// produce.
type ErrorKind int

const (
	// AbruptEnd is EOF where a token was required.
	AbruptEnd ErrorKind = iota
	// Expected is "expected one of a set of token descriptions"; carries
	// the found token, its span, and a syntactic context label.
	Expected
	// Unexpected is "no alternative at this position was possible";
	// same payload shape as Expected.
	Unexpected
	// General is a message with a source position, used for the
	// script-level early-error checks and identifier-in-strict-mode
	// rejections.
	General
	// Lex wraps a lexer error through.
	Lex
)

// Error code constants, in an E_XXX style, for programmatic
// error handling by callers that want to switch on a stable code rather
// than match message text.
const (
	ErrAbruptEnd       = "E_ABRUPT_END"
	ErrExpectedToken   = "E_EXPECTED_TOKEN"
	ErrUnexpectedToken = "E_UNEXPECTED_TOKEN"
	ErrGeneral         = "E_GENERAL"
	ErrLex             = "E_LEX"
)

// ParseError is the single error type every recogniser in this core
// returns. It carries enough context (token span + syntactic context
// label) for a caller to render a useful message.
type ParseError struct {
	Kind     ErrorKind
	Code     string
	Message  string
	Context  string // syntactic context name, e.g. "object binding pattern"
	Expected []string
	Found    token.Token
	Pos      token.Position
	Length   int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case AbruptEnd:
		return fmt.Sprintf("unexpected end of input in %s at %s", e.Context, e.Pos)
	case Expected:
		return fmt.Sprintf("expected %v in %s, found %q at %s", e.Expected, e.Context, e.Found.String(), e.Pos)
	case Unexpected:
		return fmt.Sprintf("unexpected %q in %s at %s", e.Found.String(), e.Context, e.Pos)
	case Lex:
		return fmt.Sprintf("%s at %s", e.Message, e.Pos)
	default: // General
		return fmt.Sprintf("%s at %s", e.Message, e.Pos)
	}
}

// newAbruptEnd builds an AbruptEnd error at the cursor's current (EOF)
// position.
func newAbruptEnd(c *TokenCursor, context string) *ParseError {
	return &ParseError{Kind: AbruptEnd, Code: ErrAbruptEnd, Context: context, Pos: c.Position()}
}

// newExpected builds an Expected error naming what was wanted.
func newExpected(c *TokenCursor, context string, expected ...string) *ParseError {
	if c.IsEOF() {
		return newAbruptEnd(c, context)
	}
	return &ParseError{
		Kind: Expected, Code: ErrExpectedToken, Context: context,
		Expected: expected, Found: c.Current(), Pos: c.Position(),
		Length: c.Current().Length(),
	}
}

// newUnexpected builds an Unexpected error for the cursor's current token.
func newUnexpected(c *TokenCursor, context string) *ParseError {
	if c.IsEOF() {
		return newAbruptEnd(c, context)
	}
	return &ParseError{
		Kind: Unexpected, Code: ErrUnexpectedToken, Context: context,
		Found: c.Current(), Pos: c.Position(), Length: c.Current().Length(),
	}
}

// newGeneral builds a General error carrying only a message and position.
func newGeneral(pos token.Position, message string) *ParseError {
	return &ParseError{Kind: General, Code: ErrGeneral, Message: message, Pos: pos}
}
