package parser

import (
	"github.com/cwbudde/ecmaparse/internal/lexer"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

// TokenCursor provides an immutable cursor abstraction over a stream of
// tokens, consumed by the parser core as its narrow, external token cursor
// façade.
//
// Key features:
//   - Immutable: All operations return new cursor instances
//   - Backtracking: Save/restore cursor position via Mark/ResetTo
//   - Lookahead: Peek arbitrary distances ahead
//   - Convenience: Is/IsKeyword/Skip/SkipKeyword methods for common patterns
//
// Grammar-adjacent state kept on the cursor rather than on the
// grammar-parameter tuple -- strict_mode, arrow-context, and the
// lexer's goal symbol -- lives here too, mirrored onto the underlying
// lexer so a freshly buffered token is always lexed under the flags
// current at the moment it's fetched.
type TokenCursor struct {
	lexer   *lexer.Lexer
	current token.Token
	tokens  []token.Token // Buffered tokens for backtracking
	index   int           // Current position in buffered tokens
}

// NewTokenCursor creates a new TokenCursor from a lexer, positioned at its
// first token.
func NewTokenCursor(l *lexer.Lexer) *TokenCursor {
	firstToken := l.NextToken()
	tokens := make([]token.Token, 1, 32)
	tokens[0] = firstToken
	return &TokenCursor{
		lexer:   l,
		current: firstToken,
		tokens:  tokens,
		index:   0,
	}
}

// Current returns the token at the current cursor position.
func (c *TokenCursor) Current() token.Token {
	return c.current
}

// Peek returns the token N positions ahead of the current position.
// Peek(0) returns the current token (same as Current()). Buffers tokens as
// needed to support arbitrary lookahead. The statement recognisers look at
// most 2 tokens ahead; the directive-prologue scan peeks across the whole
// leading run of string-literal statements.
func (c *TokenCursor) Peek(n int) token.Token {
	if n < 0 {
		return c.current
	}

	targetIndex := c.index + n

	if targetIndex >= len(c.tokens) {
		tokensNeeded := targetIndex - len(c.tokens) + 1

		if targetIndex >= cap(c.tokens) {
			newCap := max(targetIndex+16, cap(c.tokens)*3/2)
			newTokens := make([]token.Token, len(c.tokens), newCap)
			copy(newTokens, c.tokens)
			c.tokens = newTokens
		}

		for i := 0; i < tokensNeeded; i++ {
			nextTok := c.lexer.NextToken()
			c.tokens = append(c.tokens, nextTok)
			if nextTok.Type == token.EOF {
				break
			}
		}
	}

	if targetIndex < len(c.tokens) {
		return c.tokens[targetIndex]
	}
	return c.tokens[len(c.tokens)-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Advance returns a new cursor positioned at the next token. The original
// cursor is unchanged.
func (c *TokenCursor) Advance() *TokenCursor {
	return c.AdvanceN(1)
}

// AdvanceN returns a new cursor positioned N tokens ahead.
func (c *TokenCursor) AdvanceN(n int) *TokenCursor {
	if n <= 0 {
		return c
	}

	c.Peek(n)

	newIndex := c.index + n
	if newIndex >= len(c.tokens) {
		newIndex = len(c.tokens) - 1
	}

	return &TokenCursor{
		lexer:   c.lexer,
		current: c.tokens[newIndex],
		tokens:  c.tokens,
		index:   newIndex,
	}
}

// Next consumes and returns the current token together with the cursor
// advanced past it; at end of input it returns the EOF token and a cursor
// that is still positioned at EOF.
func (c *TokenCursor) Next() (token.Token, *TokenCursor) {
	tok := c.current
	return tok, c.Advance()
}

// Skip advances the cursor if the current token is the given punctuator.
func (c *TokenCursor) Skip(p token.Punct) (*TokenCursor, bool) {
	if c.current.Type == token.PUNCT && c.current.Punct == p {
		return c.Advance(), true
	}
	return c, false
}

// NextIf consumes iff the current token matches; an alias of Skip kept for
// callers that read more naturally as "next if".
func (c *TokenCursor) NextIf(p token.Punct) (*TokenCursor, bool) {
	return c.Skip(p)
}

// SkipKeyword advances the cursor if the current token is the given
// keyword.
func (c *TokenCursor) SkipKeyword(k token.Keyword) (*TokenCursor, bool) {
	if c.current.Type == token.KEYWORD && c.current.Keyword == k {
		return c.Advance(), true
	}
	return c, false
}

// Is reports whether the current token is the given punctuator.
func (c *TokenCursor) Is(p token.Punct) bool {
	return c.current.Type == token.PUNCT && c.current.Punct == p
}

// IsKeyword reports whether the current token is the given keyword.
func (c *TokenCursor) IsKeyword(k token.Keyword) bool {
	return c.current.Type == token.KEYWORD && c.current.Keyword == k
}

// IsType reports whether the current token has the given token.Type.
func (c *TokenCursor) IsType(t token.Type) bool {
	return c.current.Type == t
}

// PeekIsPunct reports whether the token N positions ahead is the given
// punctuator.
func (c *TokenCursor) PeekIsPunct(n int, p token.Punct) bool {
	tok := c.Peek(n)
	return tok.Type == token.PUNCT && tok.Punct == p
}

// PeekIsKeyword reports whether the token N positions ahead is the given
// keyword.
func (c *TokenCursor) PeekIsKeyword(n int, k token.Keyword) bool {
	tok := c.Peek(n)
	return tok.Type == token.KEYWORD && tok.Keyword == k
}

// Mark is a lightweight saved cursor position for backtracking.
type Mark struct {
	index int
}

// Mark saves the current cursor position for later restoration.
func (c *TokenCursor) Mark() Mark {
	return Mark{index: c.index}
}

// ResetTo returns a new cursor positioned at the given mark.
func (c *TokenCursor) ResetTo(mark Mark) *TokenCursor {
	if mark.index < 0 || mark.index >= len(c.tokens) {
		return c
	}
	return &TokenCursor{
		lexer:   c.lexer,
		current: c.tokens[mark.index],
		tokens:  c.tokens,
		index:   mark.index,
	}
}

// IsEOF reports whether the current token is EOF.
func (c *TokenCursor) IsEOF() bool {
	return c.current.Type == token.EOF
}

// Position returns the position of the current token, for diagnostics.
func (c *TokenCursor) Position() token.Position {
	return c.current.Pos
}

// SetGoal switches the lexer's goal symbol, used by the statement
// dispatcher to disambiguate `/` division from a regex literal.
//
// Because tokens already fetched into the buffer were lexed under the
// previous goal, SetGoal only affects tokens fetched from this point
// forward -- callers must set the goal before the Peek/Advance that fetches
// the token it's meant to influence.
func (c *TokenCursor) SetGoal(g lexer.Goal) {
	c.lexer.SetGoal(g)
}

// StrictMode reports the cursor's strict-mode flag.
func (c *TokenCursor) StrictMode() bool {
	return c.lexer.StrictMode()
}

// SetStrictMode sets the cursor's strict-mode flag, propagated to the
// underlying lexer since some lexical productions (legacy octal literals,
// certain escapes) are themselves strict-mode sensitive.
func (c *TokenCursor) SetStrictMode(strict bool) {
	c.lexer.SetStrictMode(strict)
}

// Arrow reports whether the cursor is re-parsing an arrow-function
// parameter head.
func (c *TokenCursor) Arrow() bool {
	return c.lexer.Arrow()
}

// SetArrow sets arrow-head context.
func (c *TokenCursor) SetArrow(arrow bool) {
	c.lexer.SetArrow(arrow)
}

// ExpectSemicolon implements automatic semicolon insertion for statement
// terminators: it accepts an explicit `;`, or silently succeeds if the next
// token is `}`, EOF, or preceded by a line terminator, per the ECMAScript
// ASI rules.
func (c *TokenCursor) ExpectSemicolon() (*TokenCursor, bool) {
	if cur, ok := c.Skip(token.SEMICOLON); ok {
		return cur, true
	}
	if c.IsEOF() || c.Is(token.RBRACE) {
		return c, true
	}
	if c.current.NewlineBefore {
		return c, true
	}
	return c, false
}
