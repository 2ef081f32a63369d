// Package parser - combinator library for reusable parsing patterns.
//
// This file implements small, cursor-returning combinators. SkipMany is
// used by the statement-list driver and the class-body loop to skip zero
// or more stray semicolons; the binding-pattern recognisers consume their
// single ',' with TokenCursor.Skip directly.
package parser

import "github.com/cwbudde/ecmaparse/pkg/token"

// SkipMany repeatedly consumes the given punctuator, returning the advanced
// cursor and the number of tokens consumed.
//
// Example:
//
//	cursor, n := SkipMany(cursor, token.SEMICOLON) // skip stray `;;;`
func SkipMany(c *TokenCursor, p token.Punct) (*TokenCursor, int) {
	count := 0
	for {
		next, ok := c.Skip(p)
		if !ok {
			return c, count
		}
		c = next
		count++
	}
}

// SkipOneOf consumes a single token if it matches any of the given
// punctuators, returning the matched punctuator (or token.NoPunct if none
// matched).
func SkipOneOf(c *TokenCursor, ps ...token.Punct) (*TokenCursor, token.Punct, bool) {
	for _, p := range ps {
		if next, ok := c.Skip(p); ok {
			return next, p, true
		}
	}
	return c, token.NoPunct, false
}
