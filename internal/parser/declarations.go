// Package parser - declaration recognisers: var/let/const statements,
// function and class declarations. The statement-list-item classifier
// delegates to these for the declaration forms it recognises.
package parser

import (
	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/pkg/symbol"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

// parseVariableStatement parses `var Declarators ;`.
func (p *Parser) parseVariableStatement(flags GrammarFlags) (*ast.VariableStatement, error) {
	p.cursor = p.cursor.Advance() // consume 'var'
	declarators, err := p.parseVariableDeclaratorList(flags)
	if err != nil {
		return nil, err
	}
	next, ok := p.cursor.ExpectSemicolon()
	if !ok {
		return nil, newExpected(p.cursor, "variable statement", ";")
	}
	p.cursor = next
	return &ast.VariableStatement{Declarators: declarators}, nil
}

// parseLexicalDeclaration parses `let Declarators ;` or `const Declarators ;`.
func (p *Parser) parseLexicalDeclaration(flags GrammarFlags) (*ast.LexicalDeclaration, error) {
	kind := ast.Let
	if p.cursor.IsKeyword(token.KwConst) {
		kind = ast.Const
	}
	p.cursor = p.cursor.Advance() // consume 'let'/'const'
	declarators, err := p.parseVariableDeclaratorList(flags)
	if err != nil {
		return nil, err
	}
	next, ok := p.cursor.ExpectSemicolon()
	if !ok {
		return nil, newExpected(p.cursor, "lexical declaration", ";")
	}
	p.cursor = next
	return &ast.LexicalDeclaration{Kind: kind, Declarators: declarators}, nil
}

func (p *Parser) parseVariableDeclaratorList(flags GrammarFlags) ([]*ast.VariableDeclarator, error) {
	var out []*ast.VariableDeclarator
	for {
		d, err := p.parseVariableDeclarator(flags)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
		next, ok := p.cursor.Skip(token.COMMA)
		if !ok {
			return out, nil
		}
		p.cursor = next
	}
}

func (p *Parser) parseVariableDeclarator(flags GrammarFlags) (*ast.VariableDeclarator, error) {
	target, err := p.parseBindingTarget(flags)
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	if next, ok := p.cursor.Skip(token.ASSIGN); ok {
		p.cursor = next
		init, err = p.parseAssignmentExpression(flags)
		if err != nil {
			return nil, err
		}
	}
	return &ast.VariableDeclarator{Target: target, Init: init}, nil
}

const ctxFunctionDecl = "function declaration"

// parseFunctionDeclaration parses `[async] function [*] Name(Params) { Body }`.
func (p *Parser) parseFunctionDeclaration(flags GrammarFlags) (*ast.FunctionDeclaration, error) {
	isAsync := false
	if p.cursor.IsKeyword(token.KwAsync) {
		isAsync = true
		p.cursor = p.cursor.Advance()
	}
	if _, ok := p.cursor.SkipKeyword(token.KwFunction); !ok {
		return nil, newExpected(p.cursor, ctxFunctionDecl, "function")
	}
	p.cursor = p.cursor.Advance()

	isGenerator := false
	if next, ok := p.cursor.Skip(token.STAR); ok {
		p.cursor = next
		isGenerator = true
	}

	nameFlags := GrammarFlags{AllowYield: flags.AllowYield, AllowAwait: flags.AllowAwait}
	name, err := p.parseBindingIdentifier(nameFlags)
	if err != nil {
		return nil, err
	}

	params, body, err := p.parseFunctionRest(isGenerator, isAsync)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Name: name, Params: params, Body: body,
		IsAsync: isAsync, IsGenerator: isGenerator,
	}, nil
}

const ctxClassDecl = "class declaration"

// parseClassDeclaration parses `class Name [extends Super] { Members }`.
// Member bodies are parsed as opaque nested statement lists/expressions;
// full class semantics are out of scope.
func (p *Parser) parseClassDeclaration(flags GrammarFlags) (*ast.ClassDeclaration, error) {
	if _, ok := p.cursor.SkipKeyword(token.KwClass); !ok {
		return nil, newExpected(p.cursor, ctxClassDecl, "class")
	}
	p.cursor = p.cursor.Advance()

	var name symbol.Symbol
	hasName := false
	if p.cursor.IsType(token.IDENT) {
		sym, err := p.parseBindingIdentifier(flags)
		if err != nil {
			return nil, err
		}
		name, hasName = sym, true
	}

	var superClass ast.Expression
	if next, ok := p.cursor.SkipKeyword(token.KwExtends); ok {
		p.cursor = next
		var err error
		superClass, err = p.parseLeftHandSideExpression(flags)
		if err != nil {
			return nil, err
		}
	}

	if _, ok := p.cursor.Skip(token.LBRACE); !ok {
		return nil, newExpected(p.cursor, ctxClassDecl, "{")
	}
	p.cursor = p.cursor.Advance()

	var members []*ast.ClassMember
	for !p.cursor.Is(token.RBRACE) {
		var skipped int
		p.cursor, skipped = SkipMany(p.cursor, token.SEMICOLON)
		if skipped > 0 && p.cursor.Is(token.RBRACE) {
			break
		}
		member, err := p.parseClassMember(flags)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if _, ok := p.cursor.Skip(token.RBRACE); !ok {
		return nil, newExpected(p.cursor, ctxClassDecl, "}")
	}
	p.cursor = p.cursor.Advance()

	return &ast.ClassDeclaration{Name: name, HasName: hasName, SuperClass: superClass, Members: members}, nil
}

// parseClassMember parses one method, getter/setter, or field.
func (p *Parser) parseClassMember(flags GrammarFlags) (*ast.ClassMember, error) {
	isStatic := false
	if p.cursor.IsKeyword(token.KwStatic) && !p.cursor.PeekIsPunct(1, token.LPAREN) && !p.cursor.PeekIsPunct(1, token.ASSIGN) {
		isStatic = true
		p.cursor = p.cursor.Advance()
	}

	kind := ast.MethodMember
	if p.cursor.IsKeyword(token.KwGet) && !p.cursor.PeekIsPunct(1, token.LPAREN) {
		kind = ast.GetterMember
		p.cursor = p.cursor.Advance()
	} else if p.cursor.IsKeyword(token.KwSet) && !p.cursor.PeekIsPunct(1, token.LPAREN) {
		kind = ast.SetterMember
		p.cursor = p.cursor.Advance()
	}

	isGenerator := false
	if next, ok := p.cursor.Skip(token.STAR); ok {
		p.cursor = next
		isGenerator = true
	}

	name, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}

	if p.cursor.Is(token.LPAREN) {
		params, body, err := p.parseFunctionRest(isGenerator, false)
		if err != nil {
			return nil, err
		}
		fn := &ast.FunctionDeclaration{Name: name, Params: params, Body: body, IsGenerator: isGenerator}
		return &ast.ClassMember{Name: name, IsStatic: isStatic, Kind: kind, Value: fn}, nil
	}

	// Field declaration: `name [= init] ;`.
	kind = ast.FieldMember
	var value ast.Expression
	if next, ok := p.cursor.Skip(token.ASSIGN); ok {
		p.cursor = next
		value, err = p.parseAssignmentExpression(flags.WithIn(true))
		if err != nil {
			return nil, err
		}
	}
	p.cursor, _ = p.cursor.ExpectSemicolon()
	return &ast.ClassMember{Name: name, IsStatic: isStatic, Kind: kind, Value: value}, nil
}
