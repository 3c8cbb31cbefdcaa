// Package shrink minimizes failing test inputs.
//
// Given a value that makes a property fail, a Shrinker searches for a smaller
// or simpler value that still fails. The search is driven by an ordered list
// of rules: the first rule whose test matches a value produces that value's
// shrink candidates, lazily and in a fixed order.
//
// Key components:
//
// Shrinker: the rule registry. It resolves a value to the first matching rule
// and exposes the candidates of that rule through Shrinks.
//
// Rule: a type test paired with a candidate generator. Generators receive the
// Shrinker they were resolved from, so compound values (slices, times) shrink
// their parts with the same rule set.
//
// Shrink: the greedy minimization loop. It repeatedly adopts the first
// candidate that still satisfies the predicate until no candidate does or the
// step limit is reached.
//
// The built-in rules live in package rules and cover integers, slices,
// strings and times.
//
// Usage:
//
//	s := shrink.NewDefault()
//	s.AddRule(isUser, shrinkUser)
//
//	res := s.Shrink(input, func(v any) bool {
//	    return !property(v)
//	})
//	fmt.Printf("minimal input after %d steps: %v\n", res.Iterations, res.Data)
//
// The package level AddRule, Shrinks and Shrink functions operate on a
// process-wide Shrinker that already holds the built-in rules. Tests that
// register rules should build their own Shrinker instead.
package shrink
