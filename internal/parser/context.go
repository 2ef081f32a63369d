package parser

import "github.com/cwbudde/ecmaparse/pkg/token"

// GrammarFlags is the four-boolean grammar parameter tuple, plus
// AllowDefault, threaded by value through every
// recogniser. These are recogniser configuration, not mutable state: a
// recogniser that needs different flags for a sub-production constructs a
// new GrammarFlags value rather than mutating this one.
type GrammarFlags struct {
	// AllowYield gates the `yield` production and `yield`'s availability
	// as a plain identifier.
	AllowYield bool
	// AllowAwait gates the `await` production and identifier fallback.
	AllowAwait bool
	// AllowIn gates recognition of the `in` operator in expressions
	// (false inside a `for` head's initialiser).
	AllowIn bool
	// AllowReturn gates whether `return` is legal at statement position.
	AllowReturn bool
	// AllowDefault gates export-default grammar. Never set true by
	// anything in this module (no export grammar is implemented), but
	// threaded through for parity with the reference grammar parameters.
	AllowDefault bool
}

// WithIn returns a copy of f with AllowIn set to allow, used when entering
// or leaving a `for` head's initialiser.
func (f GrammarFlags) WithIn(allow bool) GrammarFlags {
	f.AllowIn = allow
	return f
}

// WithReturn returns a copy of f with AllowReturn set, used when entering a
// function body.
func (f GrammarFlags) WithReturn(allow bool) GrammarFlags {
	f.AllowReturn = allow
	return f
}

// WithYieldAwait returns a copy of f with AllowYield/AllowAwait set, used
// when entering a generator/async function body.
func (f GrammarFlags) WithYieldAwait(yield, await bool) GrammarFlags {
	f.AllowYield = yield
	f.AllowAwait = await
	return f
}

// ScriptFlags are the grammar flags for the top-level ScriptBody: all four
// booleans false.
func ScriptFlags() GrammarFlags {
	return GrammarFlags{}
}

// BlockContext records one nested block's kind and starting position, for
// diagnostics (e.g. "function declaration in blocks not allowed in strict
// mode, in block started by 'block' at 3:1").
type BlockContext struct {
	BlockType string
	StartPos  token.Position
}

// ParseContext carries the non-grammar-parameter state that is genuinely
// contextual rather than purely flag-like: an `in_block` flag threaded
// separately from the four grammar booleans, and a block stack for error
// messages.
type ParseContext struct {
	inBlock    bool
	blockStack []BlockContext
}

// NewParseContext creates a ParseContext for top-level (non-block) parsing.
func NewParseContext() *ParseContext {
	return &ParseContext{}
}

// InBlock reports whether the current statement-list-item is being parsed
// directly inside a block (relevant to the strict-mode function-declaration
// restriction).
func (ctx *ParseContext) InBlock() bool {
	return ctx.inBlock
}

// PushBlock records entry into a nested block, for diagnostics.
func (ctx *ParseContext) PushBlock(blockType string, pos token.Position) *ParseContext {
	stack := make([]BlockContext, len(ctx.blockStack), len(ctx.blockStack)+1)
	copy(stack, ctx.blockStack)
	stack = append(stack, BlockContext{BlockType: blockType, StartPos: pos})
	return &ParseContext{inBlock: true, blockStack: stack}
}

// CurrentBlock returns the innermost block context, or nil at top level.
func (ctx *ParseContext) CurrentBlock() *BlockContext {
	if len(ctx.blockStack) == 0 {
		return nil
	}
	return &ctx.blockStack[len(ctx.blockStack)-1]
}
