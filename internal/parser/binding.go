package parser

import (
	"github.com/cwbudde/ecmaparse/pkg/symbol"
	"github.com/cwbudde/ecmaparse/pkg/token"
)

const ctxBindingIdentifier = "binding identifier"

// parseBindingIdentifier recognises a single BindingIdentifier, applying
// the strict-mode and contextual-keyword restrictions in order.
// On success it consumes exactly one token and returns its interned
// symbol.
func (p *Parser) parseBindingIdentifier(flags GrammarFlags) (symbol.Symbol, error) {
	cur := p.cursor.Current()
	strict := p.cursor.StrictMode()

	switch cur.Type {
	case token.IDENT:
		name := p.symbols.Intern(cur.Literal)
		// Rule 1: "arguments"/"eval" are reserved binding names in strict mode.
		if strict && (name == symbol.Arguments || name == symbol.Eval) {
			return 0, newGeneral(cur.Pos, "'"+cur.Literal+"' is not a valid binding identifier in strict mode")
		}
		p.cursor = p.cursor.Advance()
		return name, nil

	case token.KEYWORD:
		switch cur.Keyword {
		case token.KwLet:
			// Rule 2.
			if strict {
				return 0, newGeneral(cur.Pos, "'let' is not a valid binding identifier in strict mode")
			}
			p.cursor = p.cursor.Advance()
			return symbol.Let, nil

		case token.KwStatic:
			if strict {
				return 0, newGeneral(cur.Pos, "'static' is not a valid binding identifier in strict mode")
			}
			p.cursor = p.cursor.Advance()
			return p.symbols.Intern(cur.Literal), nil

		case token.KwYield:
			// Rule 4.
			if flags.AllowYield {
				return 0, newGeneral(cur.Pos, "'yield' is not a valid binding identifier in a generator")
			}
			if strict {
				return 0, newGeneral(cur.Pos, "'yield' is not a valid binding identifier in strict mode")
			}
			p.cursor = p.cursor.Advance()
			return symbol.Yield, nil

		case token.KwAwait:
			// Rule 5.
			if p.cursor.Arrow() {
				p.cursor = p.cursor.Advance()
				return symbol.Await, nil
			}
			if flags.AllowAwait {
				return 0, newGeneral(cur.Pos, "'await' is not a valid binding identifier in an async function")
			}
			if strict {
				return 0, newGeneral(cur.Pos, "'await' is not a valid binding identifier in strict mode")
			}
			p.cursor = p.cursor.Advance()
			return symbol.Await, nil
		}
	}

	return 0, newExpected(p.cursor, ctxBindingIdentifier, "identifier")
}
