// Package parser - statement dispatcher: single-token dispatch on the
// peeked first token, structured around TokenCursor/GrammarFlags instead
// of mutable parser fields.
package parser

import (
	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/internal/lexer"
	"github.com/cwbudde/ecmaparse/pkg/symbol"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

const ctxStatement = "statement"

// parseStatement dispatches on the current token's kind to the matching
// statement recogniser.
func (p *Parser) parseStatement(flags GrammarFlags) (ast.Statement, error) {
	cur := p.cursor.Current()

	if cur.Type == token.KEYWORD {
		switch cur.Keyword {
		case token.KwAwait:
			if flags.AllowAwait {
				return p.parseAwaitExpressionStatement(flags)
			}
			// Falls through to identifier case: `await` as a plain
			// identifier outside an async context.
		case token.KwIf:
			return p.parseIfStatement(flags)
		case token.KwWhile:
			return p.parseWhileStatement(flags)
		case token.KwDo:
			return p.parseDoWhileStatement(flags)
		case token.KwFor:
			return p.parseForStatement(flags)
		case token.KwSwitch:
			return p.parseSwitchStatement(flags)
		case token.KwTry:
			return p.parseTryStatement(flags)
		case token.KwThrow:
			return p.parseThrowStatement(flags)
		case token.KwBreak:
			return p.parseBreakStatement(flags)
		case token.KwContinue:
			return p.parseContinueStatement(flags)
		case token.KwReturn:
			if !flags.AllowReturn {
				return nil, newUnexpected(p.cursor, ctxStatement)
			}
			return p.parseReturnStatement(flags)
		case token.KwVar:
			return p.parseVariableStatement(flags)
		case token.KwDebugger:
			p.cursor = p.cursor.Advance()
			p.cursor, _ = p.cursor.ExpectSemicolon()
			return &ast.DebuggerStatement{}, nil
		case token.KwWith:
			return nil, newGeneral(cur.Pos, "'with' statement is not part of this core's statement grammar")
		}
	}

	if cur.Type == token.PUNCT {
		switch cur.Punct {
		case token.LBRACE:
			return p.parseBlockStatement(flags)
		case token.SEMICOLON:
			p.cursor = p.cursor.Advance()
			return &ast.EmptyStatement{}, nil
		}
	}

	if cur.Type == token.IDENT {
		p.cursor.SetGoal(lexer.GoalDiv)
		if p.cursor.PeekIsPunct(1, token.COLON) {
			return p.parseLabelledStatement(flags)
		}
		return p.parseExpressionStatement(flags)
	}

	return p.parseExpressionStatement(flags)
}

func (p *Parser) parseBlockStatement(flags GrammarFlags) (*ast.BlockStatement, error) {
	pos := p.cursor.Current().Pos
	p.cursor = p.cursor.Advance() // consume '{'
	saved := p.ctx
	p.ctx = p.ctx.PushBlock("block", pos)
	defer func() { p.ctx = saved }()
	body, err := p.parseStatementList(flags, blockTerminators)
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.Skip(token.RBRACE); !ok {
		return nil, newExpected(p.cursor, "block statement", "}")
	}
	p.cursor = p.cursor.Advance()
	return &ast.BlockStatement{Body: body}, nil
}

func (p *Parser) parseIfStatement(flags GrammarFlags) (*ast.IfStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'if'
	cond, err := p.parseParenthesizedExpression(flags)
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement(flags)
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Statement
	if next, ok := p.cursor.SkipKeyword(token.KwElse); ok {
		p.cursor = next
		elseStmt, err = p.parseStatement(flags)
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{Cond: cond, Then: then, Else: elseStmt}, nil
}

func (p *Parser) parseWhileStatement(flags GrammarFlags) (*ast.WhileStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'while'
	cond, err := p.parseParenthesizedExpression(flags)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement(flags)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Cond: cond, Body: body}, nil
}

func (p *Parser) parseDoWhileStatement(flags GrammarFlags) (*ast.DoWhileStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'do'
	body, err := p.parseStatement(flags)
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.SkipKeyword(token.KwWhile); !ok {
		return nil, newExpected(p.cursor, "do-while statement", "while")
	}
	p.cursor = p.cursor.Advance()
	cond, err := p.parseParenthesizedExpression(flags)
	if err != nil {
		return nil, err
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.DoWhileStatement{Body: body, Cond: cond}, nil
}

const ctxForStatement = "for statement"

// parseForStatement implements the classic three-clause form only; for-in/
// for-of are left for a fuller implementation.
func (p *Parser) parseForStatement(flags GrammarFlags) (*ast.ForStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'for'
	if _, ok := p.cursor.Skip(token.LPAREN); !ok {
		return nil, newExpected(p.cursor, ctxForStatement, "(")
	}
	p.cursor = p.cursor.Advance()

	var init ast.Node
	noInFlags := flags.WithIn(false)
	switch {
	case p.cursor.Is(token.SEMICOLON):
		// no initialiser
	case p.cursor.IsKeyword(token.KwVar):
		stmt, err := p.parseVariableStatementNoSemicolon(noInFlags)
		if err != nil {
			return nil, err
		}
		init = stmt
	case p.cursor.IsKeyword(token.KwLet) || p.cursor.IsKeyword(token.KwConst):
		decl, err := p.parseLexicalDeclarationNoSemicolon(noInFlags)
		if err != nil {
			return nil, err
		}
		init = decl
	default:
		expr, err := p.parseExpression(noInFlags)
		if err != nil {
			return nil, err
		}
		init = expr
	}

	if _, ok := p.cursor.Skip(token.SEMICOLON); !ok {
		return nil, newExpected(p.cursor, ctxForStatement, ";")
	}
	p.cursor = p.cursor.Advance()

	var cond ast.Expression
	if !p.cursor.Is(token.SEMICOLON) {
		var err error
		cond, err = p.parseExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
	}
	if _, ok := p.cursor.Skip(token.SEMICOLON); !ok {
		return nil, newExpected(p.cursor, ctxForStatement, ";")
	}
	p.cursor = p.cursor.Advance()

	var update ast.Expression
	if !p.cursor.Is(token.RPAREN) {
		var err error
		update, err = p.parseExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
	}
	if _, ok := p.cursor.Skip(token.RPAREN); !ok {
		return nil, newExpected(p.cursor, ctxForStatement, ")")
	}
	p.cursor = p.cursor.Advance()

	body, err := p.parseStatement(flags)
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Init: init, Cond: cond, Update: update, Body: body}, nil
}

func (p *Parser) parseVariableStatementNoSemicolon(flags GrammarFlags) (*ast.VariableStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'var'
	declarators, err := p.parseVariableDeclaratorList(flags)
	if err != nil {
		return nil, err
	}
	return &ast.VariableStatement{Declarators: declarators}, nil
}

func (p *Parser) parseLexicalDeclarationNoSemicolon(flags GrammarFlags) (*ast.LexicalDeclaration, error) {
	kind := ast.Let
	if p.cursor.IsKeyword(token.KwConst) {
		kind = ast.Const
	}
	p.cursor = p.cursor.Advance()
	declarators, err := p.parseVariableDeclaratorList(flags)
	if err != nil {
		return nil, err
	}
	return &ast.LexicalDeclaration{Kind: kind, Declarators: declarators}, nil
}

func (p *Parser) parseSwitchStatement(flags GrammarFlags) (*ast.SwitchStatement, error) {
	switchPos := p.cursor.Current().Pos
	p.cursor = p.cursor.Advance() // consume 'switch'
	disc, err := p.parseParenthesizedExpression(flags)
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.Skip(token.LBRACE); !ok {
		return nil, newExpected(p.cursor, "switch statement", "{")
	}
	p.cursor = p.cursor.Advance()

	saved := p.ctx
	p.ctx = p.ctx.PushBlock("switch", switchPos)
	defer func() { p.ctx = saved }()

	var cases []*ast.SwitchCase
	for !p.cursor.Is(token.RBRACE) {
		var test ast.Expression
		switch {
		case p.cursor.IsKeyword(token.KwCase):
			p.cursor = p.cursor.Advance()
			test, err = p.parseExpression(flags.WithIn(true))
			if err != nil {
				return nil, err
			}
		case p.cursor.IsKeyword(token.KwDefault):
			p.cursor = p.cursor.Advance()
		default:
			return nil, newExpected(p.cursor, "switch statement", "case", "default")
		}
		if _, ok := p.cursor.Skip(token.COLON); !ok {
			return nil, newExpected(p.cursor, "switch statement", ":")
		}
		p.cursor = p.cursor.Advance()
		body, err := p.parseStatementList(flags, switchClauseTerminators)
		if err != nil {
			return nil, err
		}
		cases = append(cases, &ast.SwitchCase{Test: test, Body: body})
	}
	if _, ok := p.cursor.Skip(token.RBRACE); !ok {
		return nil, newExpected(p.cursor, "switch statement", "}")
	}
	p.cursor = p.cursor.Advance()
	return &ast.SwitchStatement{Disc: disc, Cases: cases}, nil
}

func (p *Parser) parseTryStatement(flags GrammarFlags) (*ast.TryStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'try'
	block, err := p.parseBlockStatement(flags)
	if err != nil {
		return nil, err
	}

	var catchParam ast.BindingTarget
	var handler *ast.BlockStatement
	if next, ok := p.cursor.SkipKeyword(token.KwCatch); ok {
		p.cursor = next
		if next, ok := p.cursor.Skip(token.LPAREN); ok {
			p.cursor = next
			catchParam, err = p.parseBindingTarget(flags)
			if err != nil {
				return nil, err
			}
			if _, ok := p.cursor.Skip(token.RPAREN); !ok {
				return nil, newExpected(p.cursor, "try statement", ")")
			}
			p.cursor = p.cursor.Advance()
		}
		handler, err = p.parseBlockStatement(flags)
		if err != nil {
			return nil, err
		}
	}

	var finally *ast.BlockStatement
	if next, ok := p.cursor.SkipKeyword(token.KwFinally); ok {
		p.cursor = next
		finally, err = p.parseBlockStatement(flags)
		if err != nil {
			return nil, err
		}
	}

	if handler == nil && finally == nil {
		return nil, newExpected(p.cursor, "try statement", "catch", "finally")
	}
	return &ast.TryStatement{Block: block, CatchParam: catchParam, Handler: handler, Finally: finally}, nil
}

func (p *Parser) parseThrowStatement(flags GrammarFlags) (*ast.ThrowStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'throw'
	expr, err := p.parseExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.ThrowStatement{Expr: expr}, nil
}

func (p *Parser) parseBreakStatement(flags GrammarFlags) (*ast.BreakStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'break'
	var label symbol.Symbol
	hasLabel := false
	if p.cursor.IsType(token.IDENT) && !p.cursor.Current().NewlineBefore {
		cur := p.cursor.Current()
		label = p.symbols.Intern(cur.Literal)
		hasLabel = true
		p.cursor = p.cursor.Advance()
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.BreakStatement{Label: label, HasLabel: hasLabel}, nil
}

func (p *Parser) parseContinueStatement(flags GrammarFlags) (*ast.ContinueStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'continue'
	var label symbol.Symbol
	hasLabel := false
	if p.cursor.IsType(token.IDENT) && !p.cursor.Current().NewlineBefore {
		cur := p.cursor.Current()
		label = p.symbols.Intern(cur.Literal)
		hasLabel = true
		p.cursor = p.cursor.Advance()
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.ContinueStatement{Label: label, HasLabel: hasLabel}, nil
}

func (p *Parser) parseReturnStatement(flags GrammarFlags) (*ast.ReturnStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'return'
	cur := p.cursor.Current()
	if cur.Type == token.EOF || cur.NewlineBefore || p.cursor.Is(token.SEMICOLON) || p.cursor.Is(token.RBRACE) {
		p.cursor, _ = p.cursor.ExpectSemicolon()
		return &ast.ReturnStatement{}, nil
	}
	expr, err := p.parseExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.ReturnStatement{Expr: expr}, nil
}

func (p *Parser) parseLabelledStatement(flags GrammarFlags) (*ast.LabelledStatement, error) {
	cur := p.cursor.Current()
	label := p.symbols.Intern(cur.Literal)
	p.cursor = p.cursor.Advance() // consume identifier
	p.cursor = p.cursor.Advance() // consume ':'
	body, err := p.parseStatement(flags)
	if err != nil {
		return nil, err
	}
	return &ast.LabelledStatement{Label: label, Body: body}, nil
}

func (p *Parser) parseExpressionStatement(flags GrammarFlags) (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.ExpressionStatement{Expr: expr}, nil
}

func (p *Parser) parseAwaitExpressionStatement(flags GrammarFlags) (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.ExpressionStatement{Expr: expr}, nil
}

func (p *Parser) parseParenthesizedExpression(flags GrammarFlags) (ast.Expression, error) {
	if _, ok := p.cursor.Skip(token.LPAREN); !ok {
		return nil, newExpected(p.cursor, ctxStatement, "(")
	}
	p.cursor = p.cursor.Advance()
	expr, err := p.parseExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.Skip(token.RPAREN); !ok {
		return nil, newExpected(p.cursor, ctxStatement, ")")
	}
	p.cursor = p.cursor.Advance()
	return expr, nil
}
