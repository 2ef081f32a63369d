// Package parser - minimal expression grammar, supporting the
// binding-pattern and statement-dispatcher recognisers that are this
// module's real focus.
//
// Follows a Pratt-parser shape (a precedence ladder plus prefix/infix
// function maps) keyed to ECMAScript's operator set. Template literals,
// `yield*` delegation targets beyond the bare flag, and arrow functions are
// not implemented -- the binding-pattern/statement-dispatcher callers this
// file exists to serve never need them.
package parser

import (
	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/pkg/symbol"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

// precedence levels, lowest to highest.
type precedence int

const (
	precLowest precedence = iota
	precSequence
	precAssign
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precUpdate
	precCall
	precMember
)

var binaryPrecedence = map[token.Punct]precedence{
	token.OR:      precLogicalOr,
	token.AND:     precLogicalAnd,
	token.NULLISH: precNullish,
	token.EQ:      precEquality,
	token.NEQ:     precEquality,
	token.SEQ:     precEquality,
	token.SNEQ:    precEquality,
	token.LT:      precRelational,
	token.GT:      precRelational,
	token.LE:      precRelational,
	token.GE:      precRelational,
	token.PLUS:    precAdditive,
	token.MINUS:   precAdditive,
	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
}

var keywordBinaryPrecedence = map[token.Keyword]precedence{
	token.KwIn:         precRelational,
	token.KwInstanceof: precRelational,
}

var assignOps = map[token.Punct]string{
	token.ASSIGN:       "=",
	token.SLASH_ASSIGN: "/=",
}

const ctxExpression = "expression"

// parseExpression parses an Expression, which is the comma-operator
// SequenceExpression production over AssignmentExpression.
func (p *Parser) parseExpression(flags GrammarFlags) (ast.Expression, error) {
	first, err := p.parseAssignmentExpression(flags)
	if err != nil {
		return nil, err
	}
	if !p.cursor.Is(token.COMMA) {
		return first, nil
	}
	exprs := []ast.Expression{first}
	for {
		next, ok := p.cursor.Skip(token.COMMA)
		if !ok {
			break
		}
		p.cursor = next
		e, err := p.parseAssignmentExpression(flags)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return &ast.SequenceExpression{Expressions: exprs}, nil
}

// parseAssignmentExpression handles `yield`, then AssignmentExpression
// proper: ConditionalExpression, optionally followed by an assignment
// operator and a right-hand AssignmentExpression.
func (p *Parser) parseAssignmentExpression(flags GrammarFlags) (ast.Expression, error) {
	if flags.AllowYield && p.cursor.IsKeyword(token.KwYield) {
		return p.parseYieldExpression(flags)
	}

	left, err := p.parseConditionalExpression(flags)
	if err != nil {
		return nil, err
	}

	cur := p.cursor.Current()
	if cur.Type == token.PUNCT {
		if op, ok := assignOps[cur.Punct]; ok {
			p.cursor = p.cursor.Advance()
			value, err := p.parseAssignmentExpression(flags)
			if err != nil {
				return nil, err
			}
			return &ast.AssignmentExpression{Op: op, Target: left, Value: value}, nil
		}
	}
	return left, nil
}

func (p *Parser) parseYieldExpression(flags GrammarFlags) (ast.Expression, error) {
	p.cursor = p.cursor.Advance() // consume 'yield'
	delegate := false
	if next, ok := p.cursor.Skip(token.STAR); ok {
		p.cursor = next
		delegate = true
	}
	// Bare `yield` (no operand) when followed by a token that cannot start
	// an AssignmentExpression.
	if p.cursor.IsEOF() || p.cursor.Is(token.SEMICOLON) || p.cursor.Is(token.RBRACE) ||
		p.cursor.Is(token.RPAREN) || p.cursor.Is(token.RBRACK) || p.cursor.Is(token.COMMA) ||
		p.cursor.Is(token.COLON) || p.cursor.Current().NewlineBefore {
		return &ast.YieldExpression{Delegate: delegate}, nil
	}
	operand, err := p.parseAssignmentExpression(flags)
	if err != nil {
		return nil, err
	}
	return &ast.YieldExpression{Delegate: delegate, Operand: operand}, nil
}

// parseConditionalExpression parses `Test ? Cons : Alt`, falling through to
// the binary-operator ladder when no `?` follows.
func (p *Parser) parseConditionalExpression(flags GrammarFlags) (ast.Expression, error) {
	test, err := p.parseBinaryExpression(flags, precLowest)
	if err != nil {
		return nil, err
	}
	next, ok := p.cursor.Skip(token.QUESTION)
	if !ok {
		return test, nil
	}
	p.cursor = next
	cons, err := p.parseAssignmentExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.Skip(token.COLON); !ok {
		return nil, newExpected(p.cursor, ctxExpression, ":")
	}
	p.cursor = p.cursor.Advance()
	alt, err := p.parseAssignmentExpression(flags)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{Test: test, Cons: cons, Alt: alt}, nil
}

// parseBinaryExpression implements precedence climbing over both
// punctuator operators and the `in`/`instanceof` keyword operators,
// respecting AllowIn.
func (p *Parser) parseBinaryExpression(flags GrammarFlags, minPrec precedence) (ast.Expression, error) {
	left, err := p.parseUnaryExpression(flags)
	if err != nil {
		return nil, err
	}

	for {
		cur := p.cursor.Current()
		var prec precedence
		var isKeyword, have bool

		switch cur.Type {
		case token.PUNCT:
			prec, have = binaryPrecedence[cur.Punct]
		case token.KEYWORD:
			if cur.Keyword == token.KwIn && !flags.AllowIn {
				have = false
			} else {
				prec, have = keywordBinaryPrecedence[cur.Keyword]
				isKeyword = have
			}
		}
		if !have || prec < minPrec {
			return left, nil
		}

		p.cursor = p.cursor.Advance()
		right, err := p.parseBinaryExpression(flags, prec+1)
		if err != nil {
			return nil, err
		}

		if isKeyword {
			op := ast.OpIn
			if cur.Keyword == token.KwInstanceof {
				op = ast.OpInstanceof
			}
			left = &ast.BinaryExpression{Op: op, Left: left, Right: right}
			continue
		}

		switch cur.Punct {
		case token.AND:
			left = &ast.LogicalExpression{Op: "&&", Left: left, Right: right}
		case token.OR:
			left = &ast.LogicalExpression{Op: "||", Left: left, Right: right}
		case token.NULLISH:
			left = &ast.LogicalExpression{Op: "??", Left: left, Right: right}
		default:
			left = &ast.BinaryExpression{Op: punctToBinaryOp[cur.Punct], Left: left, Right: right}
		}
	}
}

var punctToBinaryOp = map[token.Punct]ast.BinaryOp{
	token.PLUS: ast.OpAdd, token.MINUS: ast.OpSub,
	token.STAR: ast.OpMul, token.SLASH: ast.OpDiv, token.PERCENT: ast.OpMod,
	token.EQ: ast.OpEq, token.NEQ: ast.OpNeq,
	token.SEQ: ast.OpStrictEq, token.SNEQ: ast.OpStrictNeq,
	token.LT: ast.OpLt, token.GT: ast.OpGt, token.LE: ast.OpLe, token.GE: ast.OpGe,
}

const ctxUnary = "unary expression"

// parseUnaryExpression handles prefix operators, `typeof`/`void`/`delete`,
// `await`, and falls through to the update/postfix level.
func (p *Parser) parseUnaryExpression(flags GrammarFlags) (ast.Expression, error) {
	cur := p.cursor.Current()

	if cur.Type == token.KEYWORD && cur.Keyword == token.KwAwait && flags.AllowAwait {
		p.cursor = p.cursor.Advance()
		operand, err := p.parseUnaryExpression(flags)
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpression{Operand: operand}, nil
	}

	if cur.Type == token.KEYWORD {
		var op ast.UnaryOp
		var ok bool
		switch cur.Keyword {
		case token.KwTypeof:
			op, ok = ast.OpTypeof, true
		case token.KwVoid:
			op, ok = ast.OpVoid, true
		case token.KwDelete:
			op, ok = ast.OpDelete, true
		}
		if ok {
			p.cursor = p.cursor.Advance()
			operand, err := p.parseUnaryExpression(flags)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpression{Op: op, Operand: operand}, nil
		}
	}

	if cur.Type == token.PUNCT {
		var op ast.UnaryOp
		var ok bool
		switch cur.Punct {
		case token.NOT:
			op, ok = ast.OpNot, true
		case token.MINUS:
			op, ok = ast.OpNeg, true
		case token.PLUS:
			op, ok = ast.OpPos, true
		}
		if ok {
			p.cursor = p.cursor.Advance()
			operand, err := p.parseUnaryExpression(flags)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpression{Op: op, Operand: operand}, nil
		}
		if cur.Punct == token.INCR || cur.Punct == token.DECR {
			opStr := "++"
			if cur.Punct == token.DECR {
				opStr = "--"
			}
			p.cursor = p.cursor.Advance()
			operand, err := p.parseUnaryExpression(flags)
			if err != nil {
				return nil, err
			}
			return &ast.UpdateExpression{Op: opStr, Prefix: true, Operand: operand}, nil
		}
	}

	return p.parseUpdateExpression(flags)
}

// parseUpdateExpression handles the postfix `++`/`--` forms; ASI forbids a
// line terminator between the operand and the operator.
func (p *Parser) parseUpdateExpression(flags GrammarFlags) (ast.Expression, error) {
	operand, err := p.parseLeftHandSideExpression(flags)
	if err != nil {
		return nil, err
	}
	cur := p.cursor.Current()
	if cur.Type == token.PUNCT && (cur.Punct == token.INCR || cur.Punct == token.DECR) && !cur.NewlineBefore {
		opStr := "++"
		if cur.Punct == token.DECR {
			opStr = "--"
		}
		p.cursor = p.cursor.Advance()
		return &ast.UpdateExpression{Op: opStr, Prefix: false, Operand: operand}, nil
	}
	return operand, nil
}

const ctxLeftHandSide = "left-hand-side expression"

// parseLeftHandSideExpression handles `new`, then member/call chains atop a
// primary expression.
func (p *Parser) parseLeftHandSideExpression(flags GrammarFlags) (ast.Expression, error) {
	if p.cursor.IsKeyword(token.KwNew) {
		p.cursor = p.cursor.Advance()
		callee, err := p.parseLeftHandSideExpressionNoCall(flags)
		if err != nil {
			return nil, err
		}
		var args []ast.Expression
		if p.cursor.Is(token.LPAREN) {
			args, err = p.parseArguments(flags)
			if err != nil {
				return nil, err
			}
		}
		expr := ast.Expression(&ast.NewExpression{Callee: callee, Args: args})
		return p.parseCallTail(flags, expr)
	}

	primary, err := p.parsePrimaryExpression(flags)
	if err != nil {
		return nil, err
	}
	return p.parseCallTail(flags, primary)
}

// parseLeftHandSideExpressionNoCall parses the callee of a `new` expression:
// member accesses bind, but a following `(...)` belongs to `new`, not to
// the callee itself.
func (p *Parser) parseLeftHandSideExpressionNoCall(flags GrammarFlags) (ast.Expression, error) {
	expr, err := p.parsePrimaryExpression(flags)
	if err != nil {
		return nil, err
	}
	for {
		if next, ok := p.cursor.Skip(token.DOT); ok {
			p.cursor = next
			name, err := p.parsePropertyNameIdentifier()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Object: expr, Property: name}
			continue
		}
		if next, ok := p.cursor.Skip(token.LBRACK); ok {
			p.cursor = next
			prop, err := p.parseExpression(flags.WithIn(true))
			if err != nil {
				return nil, err
			}
			if _, ok := p.cursor.Skip(token.RBRACK); !ok {
				return nil, newExpected(p.cursor, ctxLeftHandSide, "]")
			}
			p.cursor = p.cursor.Advance()
			expr = &ast.MemberExpression{Object: expr, Property: prop, Computed: true}
			continue
		}
		return expr, nil
	}
}

// parseCallTail parses zero or more `.prop`, `[expr]`, or `(args)` suffixes.
func (p *Parser) parseCallTail(flags GrammarFlags, expr ast.Expression) (ast.Expression, error) {
	for {
		switch {
		case p.cursor.Is(token.DOT):
			p.cursor = p.cursor.Advance()
			name, err := p.parsePropertyNameIdentifier()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{Object: expr, Property: name}
		case p.cursor.Is(token.LBRACK):
			p.cursor = p.cursor.Advance()
			prop, err := p.parseExpression(flags.WithIn(true))
			if err != nil {
				return nil, err
			}
			if _, ok := p.cursor.Skip(token.RBRACK); !ok {
				return nil, newExpected(p.cursor, ctxLeftHandSide, "]")
			}
			p.cursor = p.cursor.Advance()
			expr = &ast.MemberExpression{Object: expr, Property: prop, Computed: true}
		case p.cursor.Is(token.LPAREN):
			args, err := p.parseArguments(flags)
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePropertyNameIdentifier() (*ast.Identifier, error) {
	cur := p.cursor.Current()
	if cur.Type != token.IDENT && cur.Type != token.KEYWORD {
		return nil, newExpected(p.cursor, "property name", "identifier")
	}
	name := p.symbols.Intern(cur.Literal)
	p.cursor = p.cursor.Advance()
	return &ast.Identifier{Name: name}, nil
}

func (p *Parser) parseArguments(flags GrammarFlags) ([]ast.Expression, error) {
	if _, ok := p.cursor.Skip(token.LPAREN); !ok {
		return nil, newExpected(p.cursor, "argument list", "(")
	}
	p.cursor = p.cursor.Advance()
	var args []ast.Expression
	for !p.cursor.Is(token.RPAREN) {
		arg, err := p.parseAssignmentExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if next, ok := p.cursor.Skip(token.COMMA); ok {
			p.cursor = next
			continue
		}
		break
	}
	if _, ok := p.cursor.Skip(token.RPAREN); !ok {
		return nil, newExpected(p.cursor, "argument list", ")")
	}
	p.cursor = p.cursor.Advance()
	return args, nil
}

const ctxPrimary = "primary expression"

// parsePrimaryExpression handles literals, identifiers, `this`, array and
// object literals, parenthesised expressions, and function expressions.
func (p *Parser) parsePrimaryExpression(flags GrammarFlags) (ast.Expression, error) {
	cur := p.cursor.Current()

	switch cur.Type {
	case token.NUMBER:
		p.cursor = p.cursor.Advance()
		return &ast.NumericLiteral{Value: cur.NumValue, Raw: cur.Literal}, nil
	case token.STRING:
		p.cursor = p.cursor.Advance()
		return &ast.StringLiteral{Value: p.symbols.Intern(cur.Literal), Raw: cur.Literal}, nil
	case token.BOOLEAN:
		p.cursor = p.cursor.Advance()
		return &ast.BooleanLiteral{Value: cur.Literal == "true"}, nil
	case token.NULLLIT:
		p.cursor = p.cursor.Advance()
		return &ast.NullLiteral{}, nil
	case token.REGEXP:
		p.cursor = p.cursor.Advance()
		pattern, flagsStr := splitRegExpLiteral(cur.Literal)
		return &ast.RegExpLiteral{Pattern: pattern, Flags: flagsStr}, nil
	case token.IDENT:
		name := p.symbols.Intern(cur.Literal)
		p.cursor = p.cursor.Advance()
		return &ast.Identifier{Name: name}, nil
	}

	if cur.Type == token.KEYWORD {
		switch cur.Keyword {
		case token.KwThis:
			p.cursor = p.cursor.Advance()
			return &ast.ThisExpression{}, nil
		case token.KwFunction:
			return p.parseFunctionExpression(flags)
		case token.KwAsync:
			if p.cursor.PeekIsKeyword(1, token.KwFunction) {
				return p.parseFunctionExpression(flags)
			}
		case token.KwYield, token.KwAwait, token.KwLet, token.KwStatic:
			// Contextual keywords usable as plain identifiers outside their
			// gated productions.
			sym, err := p.parseBindingIdentifier(flags)
			if err != nil {
				return nil, err
			}
			return &ast.Identifier{Name: sym}, nil
		}
	}

	switch {
	case cur.Type == token.PUNCT && cur.Punct == token.LPAREN:
		p.cursor = p.cursor.Advance()
		expr, err := p.parseExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
		if _, ok := p.cursor.Skip(token.RPAREN); !ok {
			return nil, newExpected(p.cursor, ctxPrimary, ")")
		}
		p.cursor = p.cursor.Advance()
		return expr, nil
	case cur.Type == token.PUNCT && cur.Punct == token.LBRACK:
		return p.parseArrayLiteral(flags)
	case cur.Type == token.PUNCT && cur.Punct == token.LBRACE:
		return p.parseObjectLiteral(flags)
	}

	return nil, newUnexpected(p.cursor, ctxPrimary)
}

func splitRegExpLiteral(lit string) (pattern, flagsStr string) {
	if len(lit) < 2 {
		return lit, ""
	}
	end := len(lit) - 1
	for end > 0 && lit[end] != '/' {
		end--
	}
	return lit[1:end], lit[end+1:]
}

func (p *Parser) parseArrayLiteral(flags GrammarFlags) (ast.Expression, error) {
	p.cursor = p.cursor.Advance() // consume '['
	var elements []ast.Expression
	for !p.cursor.Is(token.RBRACK) {
		if p.cursor.Is(token.COMMA) {
			elements = append(elements, nil)
			p.cursor = p.cursor.Advance()
			continue
		}
		elem, err := p.parseAssignmentExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if next, ok := p.cursor.Skip(token.COMMA); ok {
			p.cursor = next
			continue
		}
		break
	}
	if _, ok := p.cursor.Skip(token.RBRACK); !ok {
		return nil, newExpected(p.cursor, "array literal", "]")
	}
	p.cursor = p.cursor.Advance()
	return &ast.ArrayLiteral{Elements: elements}, nil
}

func (p *Parser) parseObjectLiteral(flags GrammarFlags) (ast.Expression, error) {
	p.cursor = p.cursor.Advance() // consume '{'
	var props []*ast.ObjectProperty
	for !p.cursor.Is(token.RBRACE) {
		prop, err := p.parseObjectLiteralProperty(flags)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if next, ok := p.cursor.Skip(token.COMMA); ok {
			p.cursor = next
			continue
		}
		break
	}
	if _, ok := p.cursor.Skip(token.RBRACE); !ok {
		return nil, newExpected(p.cursor, "object literal", "}")
	}
	p.cursor = p.cursor.Advance()
	return &ast.ObjectLiteral{Properties: props}, nil
}

func (p *Parser) parseObjectLiteralProperty(flags GrammarFlags) (*ast.ObjectProperty, error) {
	if next, ok := p.cursor.Skip(token.LBRACK); ok {
		p.cursor = next
		keyExpr, err := p.parseAssignmentExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
		if _, ok := p.cursor.Skip(token.RBRACK); !ok {
			return nil, newExpected(p.cursor, "object literal", "]")
		}
		p.cursor = p.cursor.Advance()
		if _, ok := p.cursor.Skip(token.COLON); !ok {
			return nil, newExpected(p.cursor, "object literal", ":")
		}
		p.cursor = p.cursor.Advance()
		value, err := p.parseAssignmentExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
		return &ast.ObjectProperty{Computed: true, KeyExpr: keyExpr, Value: value}, nil
	}

	key, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.Skip(token.COLON); ok {
		p.cursor = p.cursor.Advance()
		value, err := p.parseAssignmentExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
		return &ast.ObjectProperty{Key: key, Value: value}, nil
	}
	// Shorthand: `{ key }`.
	return &ast.ObjectProperty{Key: key, Value: &ast.Identifier{Name: key}, Shorthand: true}, nil
}

// parsePropertyName parses the external PropertyName production §4.4 names:
// a string literal, a numeric literal, or an identifier/keyword spelled as
// a plain name.
func (p *Parser) parsePropertyName() (symbol.Symbol, error) {
	cur := p.cursor.Current()
	switch cur.Type {
	case token.STRING:
		p.cursor = p.cursor.Advance()
		return p.symbols.Intern(cur.Literal), nil
	case token.NUMBER:
		p.cursor = p.cursor.Advance()
		return p.symbols.Intern(cur.Literal), nil
	case token.IDENT, token.KEYWORD:
		p.cursor = p.cursor.Advance()
		return p.symbols.Intern(cur.Literal), nil
	}
	return 0, newExpected(p.cursor, "property name", "identifier", "string", "number")
}

// isPropertyNameLookahead implements §4.4's predicate for whether the
// current position starts an explicit `PropertyName:` pair rather than a
// shorthand single-name property.
func (p *Parser) isPropertyNameLookahead() bool {
	cur := p.cursor.Current()
	if cur.Type == token.PUNCT && cur.Punct == token.LBRACK {
		return true
	}
	if cur.Type == token.STRING || cur.Type == token.NUMBER {
		return true
	}
	if cur.Type == token.IDENT || cur.Type == token.KEYWORD {
		return p.cursor.PeekIsPunct(1, token.COLON)
	}
	return false
}

// parseFunctionExpression parses `function [*] [name] (params) { body }`,
// used as a default initialiser's value and as a general primary
// expression.
func (p *Parser) parseFunctionExpression(flags GrammarFlags) (ast.Expression, error) {
	isAsync := false
	if p.cursor.IsKeyword(token.KwAsync) {
		isAsync = true
		p.cursor = p.cursor.Advance()
	}
	if _, ok := p.cursor.SkipKeyword(token.KwFunction); !ok {
		return nil, newExpected(p.cursor, "function expression", "function")
	}
	p.cursor = p.cursor.Advance()

	isGenerator := false
	if next, ok := p.cursor.Skip(token.STAR); ok {
		p.cursor = next
		isGenerator = true
	}

	var name symbol.Symbol
	hasName := false
	if p.cursor.IsType(token.IDENT) {
		innerFlags := GrammarFlags{AllowYield: isGenerator, AllowAwait: isAsync}
		sym, err := p.parseBindingIdentifier(innerFlags)
		if err != nil {
			return nil, err
		}
		name, hasName = sym, true
	}

	params, body, err := p.parseFunctionRest(isGenerator, isAsync)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpression{
		Name: name, HasName: hasName, Params: params, Body: body,
		IsAsync: isAsync, IsGenerator: isGenerator,
	}, nil
}

// parseFunctionRest parses `(params) { body }`, shared by function
// declarations and expressions.
func (p *Parser) parseFunctionRest(isGenerator, isAsync bool) ([]ast.BindingTarget, *ast.StatementList, error) {
	const ctxParams = "function parameter list"
	if _, ok := p.cursor.Skip(token.LPAREN); !ok {
		return nil, nil, newExpected(p.cursor, ctxParams, "(")
	}
	p.cursor = p.cursor.Advance()

	paramFlags := GrammarFlags{AllowYield: isGenerator, AllowAwait: isAsync, AllowIn: true}
	var params []ast.BindingTarget
	for !p.cursor.Is(token.RPAREN) {
		target, err := p.parseBindingTarget(paramFlags)
		if err != nil {
			return nil, nil, err
		}
		if next, ok := p.cursor.Skip(token.ASSIGN); ok {
			p.cursor = next
			if _, err := p.parseAssignmentExpression(paramFlags); err != nil {
				return nil, nil, err
			}
		}
		params = append(params, target)
		if next, ok := p.cursor.Skip(token.COMMA); ok {
			p.cursor = next
			continue
		}
		break
	}
	if _, ok := p.cursor.Skip(token.RPAREN); !ok {
		return nil, nil, newExpected(p.cursor, ctxParams, ")")
	}
	p.cursor = p.cursor.Advance()

	bodyPos := p.cursor.Current().Pos
	if _, ok := p.cursor.Skip(token.LBRACE); !ok {
		return nil, nil, newExpected(p.cursor, "function body", "{")
	}
	p.cursor = p.cursor.Advance()

	bodyFlags := GrammarFlags{AllowYield: isGenerator, AllowAwait: isAsync, AllowReturn: true}
	saved := p.ctx
	p.ctx = p.ctx.PushBlock("function", bodyPos)
	body, err := p.parseStatementList(bodyFlags, blockTerminators)
	p.ctx = saved
	if err != nil {
		return nil, nil, err
	}

	if _, ok := p.cursor.Skip(token.RBRACE); !ok {
		return nil, nil, newExpected(p.cursor, "function body", "}")
	}
	p.cursor = p.cursor.Advance()

	return params, body, nil
}
