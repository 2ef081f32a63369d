// Package parser implements the core ECMAScript Script recogniser:
// grammar-parameterised dispatch, the statement-list driver, the
// binding-pattern recogniser, and the script-level early-error validator.
//
// Design note: this core is a hand-written recursive-descent recogniser
// over TokenCursor, a lookahead-capable, backtrackable token cursor
// (cursor.go). Grammar parameters (context.go's GrammarFlags) are passed by
// value, never mutated in place; every recogniser returns (AST fragment,
// error) and propagates the first error it sees straight up the call
// stack -- there is no error recovery.
package parser

import (
	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/internal/hostenv"
	"github.com/cwbudde/ecmaparse/internal/lexer"
	"github.com/cwbudde/ecmaparse/pkg/symbol"
)

// Parser holds everything a parse needs: the current cursor position, the
// string interner, the (read-only) host environment consulted by the
// early-error validator, and the block-context stack (ctx), updated the
// same way cursor is as parsing descends into and back out of nested
// blocks. It carries no accumulated error list -- the first error returned
// by any recogniser aborts the parse.
type Parser struct {
	cursor  *TokenCursor
	symbols *symbol.Table
	host    *hostenv.Environment
	ctx     *ParseContext
}

// New creates a Parser over src. If symbols is nil a fresh interner is
// created. If host is nil, validation proceeds against an empty host
// environment.
func New(src string, symbols *symbol.Table, host *hostenv.Environment) *Parser {
	if symbols == nil {
		symbols = symbol.NewTable()
	}
	l := lexer.New(src)
	return &Parser{
		cursor:  NewTokenCursor(l),
		symbols: symbols,
		host:    host,
		ctx:     NewParseContext(),
	}
}

// Symbols returns the interner this parser interns identifiers into.
func (p *Parser) Symbols() *symbol.Table { return p.symbols }

// ParseAll parses a complete Script and runs the early-error validator.
func (p *Parser) ParseAll() (*ast.StatementList, error) {
	list, err := p.parseScript()
	if err != nil {
		return nil, err
	}
	if lexErrs := p.cursor.lexer.Errors(); len(lexErrs) > 0 {
		first := lexErrs[0]
		return nil, &ParseError{Kind: Lex, Code: ErrLex, Message: first.Message, Pos: first.Pos}
	}
	if err := p.validateScript(list); err != nil {
		return nil, err
	}
	return list, nil
}
