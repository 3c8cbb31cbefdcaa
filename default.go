package shrink

import (
	"context"
	"sync/atomic"

	"github.com/gnolang/shrink/types"
)

var defaultShrinker atomic.Pointer[Shrinker]

func init() {
	ResetDefault()
}

// Default returns the process-wide Shrinker used by the package level
// functions.
func Default() *Shrinker {
	return defaultShrinker.Load()
}

// ResetDefault replaces the process-wide Shrinker with a fresh one holding
// only the built-in rules.
func ResetDefault() {
	defaultShrinker.Store(NewDefault())
}

// AddRule adds a rule to the process-wide Shrinker.
func AddRule(test types.TestFunc, generate types.GenerateFunc) {
	Default().AddRule(test, generate)
}

// Shrinks returns the candidates of v according to the process-wide Shrinker.
func Shrinks(v types.Value) types.Sequence {
	return Default().Shrinks(v)
}

// Shrink minimizes data with the process-wide Shrinker.
func Shrink(data types.Value, predicate Predicate, opts ...RunOption) Result {
	return Default().Shrink(data, predicate, opts...)
}

// ShrinkContext minimizes data with the process-wide Shrinker.
func ShrinkContext(ctx context.Context, data types.Value, predicate ContextPredicate, opts ...RunOption) (Result, error) {
	return Default().ShrinkContext(ctx, data, predicate, opts...)
}
