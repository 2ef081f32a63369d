// Package parser - statement-list driver, statement-list-item classifier,
// and the Script/ScriptBody entry point with its early-error validator.
// Drives statement parsing with a top-level drive-until-terminator loop and
// consults the name-collection queries internal/ast/names.go exposes for
// exactly this purpose.
package parser

import (
	"fmt"

	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/pkg/symbol"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

// terminatorSet names the token kinds that end a statement list without
// being consumed: a block's closing brace, a switch clause's next `case`/
// `default`, or nothing (EOF only) for a top-level script body.
type terminatorSet struct {
	puncts   []token.Punct
	keywords []token.Keyword
}

func (t terminatorSet) matches(tok token.Token) bool {
	if tok.Type == token.PUNCT {
		for _, p := range t.puncts {
			if tok.Punct == p {
				return true
			}
		}
	}
	if tok.Type == token.KEYWORD {
		for _, k := range t.keywords {
			if tok.Keyword == k {
				return true
			}
		}
	}
	return false
}

var (
	scriptTerminators = terminatorSet{}
	blockTerminators  = terminatorSet{puncts: []token.Punct{token.RBRACE}}
	switchClauseTerminators = terminatorSet{
		puncts:   []token.Punct{token.RBRACE},
		keywords: []token.Keyword{token.KwCase, token.KwDefault},
	}
)

// parseStatementList collects StatementListItems until a terminator (or
// EOF), skipping stray `;` between items, then stably reorders hoistable
// declarations to the front of the collected sequence.
func (p *Parser) parseStatementList(flags GrammarFlags, terms terminatorSet) (*ast.StatementList, error) {
	strict := p.cursor.StrictMode()
	var items []ast.Statement
	for {
		cur := p.cursor.Current()
		if cur.Type == token.EOF || terms.matches(cur) {
			break
		}
		item, err := p.parseStatementListItem(flags)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		p.cursor, _ = SkipMany(p.cursor, token.SEMICOLON)
	}
	ast.StableHoistHeader(items)
	return &ast.StatementList{Items: items, Strict: strict}, nil
}

// parseStatementListItem discriminates declarations (function/async/class,
// const/let) from statements, enforcing the "no function declaration in a
// strict-mode block" restriction.
//
// `async` is always routed to the declaration family here, even when not
// followed by `function` (i.e. used as a plain identifier). This is a
// known, deliberate simplification relative to a full implementation's
// async-as-identifier disambiguation; see DESIGN.md's open-question note.
func (p *Parser) parseStatementListItem(flags GrammarFlags) (ast.Statement, error) {
	cur := p.cursor.Current()
	if cur.Type == token.KEYWORD {
		switch cur.Keyword {
		case token.KwFunction, token.KwAsync, token.KwClass:
			if p.cursor.StrictMode() && p.ctx.InBlock() {
				msg := "function declaration in blocks not allowed in strict mode"
				if bc := p.ctx.CurrentBlock(); bc != nil {
					msg = fmt.Sprintf("%s, in block started by '%s' at %s", msg, bc.BlockType, bc.StartPos)
				}
				return nil, newGeneral(cur.Pos, msg)
			}
			if cur.Keyword == token.KwClass {
				return p.parseClassDeclaration(flags)
			}
			return p.parseFunctionDeclaration(flags)
		case token.KwConst, token.KwLet:
			return p.parseLexicalDeclaration(flags)
		}
	}
	return p.parseStatement(flags)
}

// scanDirectivePrologue walks the full leading run of string-literal
// expression statements -- the directive prologue -- looking for "use
// strict" anywhere in it, not just as the very first statement. It only
// peeks; it never advances the cursor, since the actual statement-list
// drive below re-parses these same statements as ordinary items once
// strict mode (if any) has been established.
func (p *Parser) scanDirectivePrologue() {
	pos := 0
	for {
		tok := p.cursor.Peek(pos)
		if tok.Type != token.STRING {
			return
		}
		next := p.cursor.Peek(pos + 1)
		var advance int
		switch {
		case next.Type == token.PUNCT && next.Punct == token.SEMICOLON:
			advance = 2
		case next.Type == token.EOF, next.Type == token.PUNCT && next.Punct == token.RBRACE, next.NewlineBefore:
			advance = 1
		default:
			return
		}
		if tok.Literal == "use strict" {
			p.cursor.SetStrictMode(true)
		}
		pos += advance
	}
}

// parseScript detects a leading "use strict" directive anywhere in the
// directive prologue, switches the cursor to strict mode, and drives the
// top-level statement list with all four grammar flags false, terminated
// only by EOF.
func (p *Parser) parseScript() (*ast.StatementList, error) {
	p.scanDirectivePrologue()
	return p.parseStatementList(ScriptFlags(), scriptTerminators)
}

// diagnosticPos is the position every validator diagnostic carries: the
// reference behaviour never threads a per-declaration span through to
// these checks (see DESIGN.md's open-question note), so every General
// error from validateScript reports (1,1).
var diagnosticPos = token.Position{Line: 1, Column: 1}

// validateScript runs the five early-error checks over a parsed
// StatementList: duplicate lexical names, lexical/var collisions, and
// collisions with bindings already present in the host environment. An
// empty statement list can never violate any of the five checks, so
// validation is skipped outright rather than making a no-op host round
// trip.
func (p *Parser) validateScript(list *ast.StatementList) error {
	if len(list.Items) == 0 {
		return nil
	}

	varNames := make(map[symbol.Symbol]bool)
	ast.VarDeclaredNames(list, varNames)
	lexNames := ast.LexicallyDeclaredNames(list)

	seenIsFn := make(map[symbol.Symbol]bool)
	declared := make(map[symbol.Symbol]bool)
	for _, ln := range lexNames {
		if declared[ln.Name] {
			if !(seenIsFn[ln.Name] && ln.IsFunction) {
				return newGeneral(diagnosticPos, "lexical name declared multiple times")
			}
		}
		declared[ln.Name] = true
		seenIsFn[ln.Name] = ln.IsFunction
	}

	for _, ln := range lexNames {
		if !ln.IsFunction && varNames[ln.Name] {
			return newGeneral(diagnosticPos, "lexical name declared in var names")
		}
	}

	for _, ln := range lexNames {
		if p.host.HasBinding(ln.Name) {
			return newGeneral(diagnosticPos, "lexical name declared multiple times")
		}
	}

	for _, ln := range lexNames {
		if ln.IsFunction {
			continue
		}
		name := p.symbols.Resolve(ln.Name)
		if desc, ok := p.host.GlobalProperty(name); ok {
			if configurable, hasVal := desc.Configurable(); hasVal && !configurable {
				return newGeneral(diagnosticPos, "lexical name declared in var names")
			}
		}
	}

	for name := range varNames {
		if p.host.HasBinding(name) {
			return newGeneral(diagnosticPos, "lexical name declared in var names")
		}
	}

	return nil
}
