// Package rules contains the built-in shrink rules.
//
// Each rule is exported on its own so other tools can reuse a subset of them
// or compose them with custom rules. Generators never reach for a global
// registry: compound values are shrunk through the Source they are handed.
package rules

import "github.com/gnolang/shrink/types"

// rule names
const (
	IntegerName = "integer"
	ArrayName   = "array"
	StringName  = "string"
	DateName    = "date"
	FloatName   = "float"
)

var (
	Integer = types.Rule{Name: IntegerName, Test: types.Is(types.Integer), Generate: shrinkInteger}
	Array   = types.Rule{Name: ArrayName, Test: types.Is(types.Sequential), Generate: shrinkSlice}
	String  = types.Rule{Name: StringName, Test: types.Is(types.Text), Generate: shrinkText}
	Date    = types.Rule{Name: DateName, Test: types.Is(types.Instant), Generate: shrinkDate}

	// Float shrinks finite floats that have a fractional part. It is not part
	// of the default set.
	Float = types.Rule{Name: FloatName, Test: types.Is(types.Float), Generate: shrinkFloat}
)

// Defaults returns the rules installed by AddDefaultRules, in priority order.
func Defaults() []types.Rule {
	return []types.Rule{Integer, Array, String, Date}
}

// All returns every built-in rule: the defaults followed by the optional ones.
func All() []types.Rule {
	return append(Defaults(), Float)
}

// Lookup finds a built-in rule by name.
func Lookup(name string) (types.Rule, bool) {
	for _, r := range All() {
		if r.Name == name {
			return r, true
		}
	}
	return types.Rule{}, false
}

// IsDefault reports whether the named rule belongs to the default set.
func IsDefault(name string) bool {
	for _, r := range Defaults() {
		if r.Name == name {
			return true
		}
	}
	return false
}
