// Package parser implements the core ECMAScript Script recogniser: a
// hand-written recursive-descent parser over a lookahead-capable token
// cursor, producing a validated AST for a top-level Script.
//
// The parser consumes tokens from the lexer and builds an Abstract Syntax
// Tree representing the structure of the parsed script. It implements a
// Pratt parser (top-down operator precedence parser) for expressions and
// recursive descent for statements, declarations, and binding patterns.
//
// The parser handles:
//   - Grammar-parameterised dispatch ([Yield]/[Await]/[In]/[Return])
//   - The statement-list driver, with stable hoisting reorder
//   - Object/array destructuring binding patterns, including rest and
//     elision
//   - Expressions (arithmetic, logical, relational, assignment, await/yield)
//   - Control flow (if/else, while, do-while, for, switch, try/catch/finally)
//   - Function and class declarations
//   - Script-level early-error validation (duplicate lexical names,
//     lexical/var collisions, host global-binding collisions)
//
// Example usage:
//
//	p := parser.New(src, nil, nil)
//	list, err := p.ParseAll()
//	if err != nil {
//	    // handle syntax/validation error
//	}
package parser
