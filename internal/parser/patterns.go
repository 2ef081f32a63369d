// Package parser - object/array binding-pattern recogniser, the largest
// single component of the covered core. The two productions are mutually
// recursive: an object pattern property's sub-pattern may itself be an
// array pattern and vice versa.
package parser

import (
	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/pkg/symbol"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

const (
	ctxObjectPattern = "object binding pattern"
	ctxArrayPattern  = "array binding pattern"
)

// parseBindingTarget parses a BindingIdentifier, ObjectBindingPattern, or
// ArrayBindingPattern depending on the current token -- the common entry
// point every declaration form (var/let/const, catch parameter, function
// parameter) calls into.
func (p *Parser) parseBindingTarget(flags GrammarFlags) (ast.BindingTarget, error) {
	switch {
	case p.cursor.Is(token.LBRACE):
		return p.parseObjectBindingPattern(flags)
	case p.cursor.Is(token.LBRACK):
		return p.parseArrayBindingPattern(flags)
	default:
		sym, err := p.parseBindingIdentifier(flags)
		if err != nil {
			return nil, err
		}
		return &ast.BindingIdentifier{Name: sym}, nil
	}
}

// parseObjectBindingPattern loops until `}`, branching on
// rest / explicit-PropertyName / shorthand, and tracks already-seen
// property names for the rest element's `excluded_keys`.
func (p *Parser) parseObjectBindingPattern(flags GrammarFlags) (*ast.ObjectBindingPattern, error) {
	p.cursor = p.cursor.Advance() // consume '{'

	var elements []ast.ObjectPatternElement
	var seen []symbol.Symbol

	for !p.cursor.Is(token.RBRACE) {
		if next, ok := p.cursor.Skip(token.ELLIPSIS); ok {
			p.cursor = next
			restIdent, err := p.parseBindingIdentifier(flags)
			if err != nil {
				return nil, err
			}
			if !p.cursor.Is(token.RBRACE) {
				return nil, newExpected(p.cursor, ctxObjectPattern, "}")
			}
			excluded := make([]symbol.Symbol, len(seen))
			copy(excluded, seen)
			elements = append(elements, ast.ObjectPatternRestProperty{Ident: restIdent, ExcludedKeys: excluded})
			break
		}

		if p.cursor.Is(token.LBRACK) {
			elem, err := p.parseObjectPatternComputedName(flags)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		} else if p.isPropertyNameLookahead() {
			propName, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			if _, ok := p.cursor.Skip(token.COLON); !ok {
				return nil, newExpected(p.cursor, ctxObjectPattern, ":")
			}
			p.cursor = p.cursor.Advance()

			elem, err := p.parseObjectPatternValue(flags, propName)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
			seen = append(seen, propName)
		} else {
			ident, err := p.parseBindingIdentifier(flags)
			if err != nil {
				return nil, err
			}
			var defaultInit ast.Expression
			if next, ok := p.cursor.Skip(token.ASSIGN); ok {
				p.cursor = next
				defaultInit, err = p.parseAssignmentExpression(flags.WithIn(true))
				if err != nil {
					return nil, err
				}
			}
			elements = append(elements, ast.ObjectPatternSingleName{Ident: ident, PropertyName: ident, DefaultInit: defaultInit})
			seen = append(seen, ident)
		}

		if !p.cursor.Is(token.RBRACE) {
			next, ok := p.cursor.Skip(token.COMMA)
			if !ok {
				break
			}
			p.cursor = next
		}
	}

	if _, ok := p.cursor.Skip(token.RBRACE); !ok {
		return nil, newExpected(p.cursor, ctxObjectPattern, "}")
	}
	p.cursor = p.cursor.Advance()

	if len(elements) == 0 {
		elements = []ast.ObjectPatternElement{ast.ObjectPatternEmpty{}}
	}
	return &ast.ObjectBindingPattern{Elements: elements}, nil
}

// parseObjectPatternValue parses the sub-pattern form that follows an
// explicit `PropertyName:` -- a nested object/array pattern or a plain
// binding identifier, either way with an optional default initialiser.
func (p *Parser) parseObjectPatternValue(flags GrammarFlags, propName symbol.Symbol) (ast.ObjectPatternElement, error) {
	switch {
	case p.cursor.Is(token.LBRACE):
		nested, err := p.parseObjectBindingPattern(flags)
		if err != nil {
			return nil, err
		}
		defaultInit, err := p.parseOptionalDefaultInit(flags)
		if err != nil {
			return nil, err
		}
		return ast.ObjectPatternNested{PropertyName: propName, Nested: nested, DefaultInit: defaultInit}, nil

	case p.cursor.Is(token.LBRACK):
		nested, err := p.parseArrayBindingPattern(flags)
		if err != nil {
			return nil, err
		}
		defaultInit, err := p.parseOptionalDefaultInit(flags)
		if err != nil {
			return nil, err
		}
		return ast.ObjectPatternNested{PropertyName: propName, Nested: nested, DefaultInit: defaultInit}, nil

	default:
		ident, err := p.parseBindingIdentifier(flags)
		if err != nil {
			return nil, err
		}
		defaultInit, err := p.parseOptionalDefaultInit(flags)
		if err != nil {
			return nil, err
		}
		return ast.ObjectPatternSingleName{Ident: ident, PropertyName: propName, DefaultInit: defaultInit}, nil
	}
}

// parseObjectPatternComputedName parses `[ AssignmentExpression ]: Target`,
// mirroring parseObjectLiteralProperty's computed-key handling for object
// literals.
func (p *Parser) parseObjectPatternComputedName(flags GrammarFlags) (ast.ObjectPatternElement, error) {
	p.cursor = p.cursor.Advance() // consume '['
	keyExpr, err := p.parseAssignmentExpression(flags.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, ok := p.cursor.Skip(token.RBRACK); !ok {
		return nil, newExpected(p.cursor, ctxObjectPattern, "]")
	}
	p.cursor = p.cursor.Advance()
	if _, ok := p.cursor.Skip(token.COLON); !ok {
		return nil, newExpected(p.cursor, ctxObjectPattern, ":")
	}
	p.cursor = p.cursor.Advance()

	target, err := p.parseBindingTarget(flags)
	if err != nil {
		return nil, err
	}
	defaultInit, err := p.parseOptionalDefaultInit(flags)
	if err != nil {
		return nil, err
	}
	return ast.ObjectPatternComputedName{KeyExpr: keyExpr, Target: target, DefaultInit: defaultInit}, nil
}

func (p *Parser) parseOptionalDefaultInit(flags GrammarFlags) (ast.Expression, error) {
	next, ok := p.cursor.Skip(token.ASSIGN)
	if !ok {
		return nil, nil
	}
	p.cursor = next
	return p.parseAssignmentExpression(flags.WithIn(true))
}

// parseArrayBindingPattern runs an elision-counting loop: `lastElisionOrFirst`
// starts true, a bare `,` emits Elision only while that flag holds, and
// every non-elision element clears it.
func (p *Parser) parseArrayBindingPattern(flags GrammarFlags) (*ast.ArrayBindingPattern, error) {
	p.cursor = p.cursor.Advance() // consume '['

	var elements []ast.ArrayPatternElement
	lastElisionOrFirst := true

	for !p.cursor.Is(token.RBRACK) {
		if next, ok := p.cursor.Skip(token.COMMA); ok {
			p.cursor = next
			if lastElisionOrFirst {
				elements = append(elements, ast.ArrayPatternElision{})
			} else {
				lastElisionOrFirst = true
			}
			continue
		}

		if next, ok := p.cursor.Skip(token.ELLIPSIS); ok {
			p.cursor = next
			elem, err := p.parseArrayRestElement(flags)
			if err != nil {
				return nil, err
			}
			if !p.cursor.Is(token.RBRACK) {
				return nil, newExpected(p.cursor, ctxArrayPattern, "]")
			}
			elements = append(elements, elem)
			break
		}

		switch {
		case p.cursor.Is(token.LBRACE):
			nested, err := p.parseObjectBindingPattern(flags)
			if err != nil {
				return nil, err
			}
			defaultInit, err := p.parseOptionalDefaultInit(flags)
			if err != nil {
				return nil, err
			}
			elements = append(elements, ast.ArrayPatternNested{Nested: nested, DefaultInit: defaultInit})

		case p.cursor.Is(token.LBRACK):
			nested, err := p.parseArrayBindingPattern(flags)
			if err != nil {
				return nil, err
			}
			defaultInit, err := p.parseOptionalDefaultInit(flags)
			if err != nil {
				return nil, err
			}
			elements = append(elements, ast.ArrayPatternNested{Nested: nested, DefaultInit: defaultInit})

		default:
			ident, err := p.parseBindingIdentifier(flags)
			if err != nil {
				return nil, err
			}
			defaultInit, err := p.parseOptionalDefaultInit(flags)
			if err != nil {
				return nil, err
			}
			elements = append(elements, ast.ArrayPatternSingleName{Ident: ident, DefaultInit: defaultInit})
		}
		lastElisionOrFirst = false

		if !p.cursor.Is(token.RBRACK) {
			next, ok := p.cursor.Skip(token.COMMA)
			if !ok {
				break
			}
			p.cursor = next
			lastElisionOrFirst = true
		}
	}

	if _, ok := p.cursor.Skip(token.RBRACK); !ok {
		return nil, newExpected(p.cursor, ctxArrayPattern, "]")
	}
	p.cursor = p.cursor.Advance()

	return &ast.ArrayBindingPattern{Elements: elements}, nil
}

// parseArrayRestElement parses the form selected by the token right after
// `...`: a nested object pattern, a nested array pattern, or a plain
// binding identifier.
func (p *Parser) parseArrayRestElement(flags GrammarFlags) (ast.ArrayPatternElement, error) {
	switch {
	case p.cursor.Is(token.LBRACE):
		nested, err := p.parseObjectBindingPattern(flags)
		if err != nil {
			return nil, err
		}
		return ast.ArrayPatternNestedRest{Nested: nested}, nil
	case p.cursor.Is(token.LBRACK):
		nested, err := p.parseArrayBindingPattern(flags)
		if err != nil {
			return nil, err
		}
		return ast.ArrayPatternNestedRest{Nested: nested}, nil
	default:
		ident, err := p.parseBindingIdentifier(flags)
		if err != nil {
			return nil, err
		}
		return ast.ArrayPatternSingleNameRest{Ident: ident}, nil
	}
}
