// Package ast defines the Abstract Syntax Tree node types produced by the
// ECMAScript parser.
//
// The AST represents the hierarchical structure of a parsed Script. Each
// node type corresponds to a syntactic construct in the grammar.
//
// Node categories:
//   - Expressions: values that can be evaluated (literals, identifiers,
//     binary/unary operators, await/yield expressions).
//   - Statements: actions to be executed (blocks, loops, conditionals,
//     labelled statements, expression statements).
//   - Declarations: name-introducing constructs (var/let/const, function,
//     class) together with the binding patterns they destructure against.
//
// This package implements the AST queries the parser core consumes as an
// external contract: IsHoistable/StableHoistHeader, used to stably
// partition hoistable function/generator declarations to the front of a
// statement list, and VarDeclaredNames/LexicallyDeclaredNames, used by the
// script-level early-error validator.
package ast
