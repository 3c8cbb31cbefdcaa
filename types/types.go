// Package types holds the vocabulary shared by the shrinker, its built-in
// rules and any custom rule: values, their classification, candidate
// sequences and rules themselves.
package types

import (
	"math"
	"reflect"
	"time"
)

// Value is a piece of data to be shrunk. The core imposes no structure on it;
// rules recognise values through their Test function.
type Value = any

// Sequence is a pull-based, single-pass stream of shrink candidates.
//
// Next returns the next candidate and true, or a nil value and false once the
// sequence is exhausted. A Sequence keeps its own progress and must be
// consumed by a single caller; it cannot be restarted.
type Sequence interface {
	Next() (Value, bool)
}

// Source is the capability handed to rule generators so they can shrink the
// parts of a compound value with the same rule set that matched the whole.
type Source interface {
	Shrinks(v Value) Sequence
}

// TestFunc reports whether a rule applies to a value.
type TestFunc func(v Value) bool

// GenerateFunc produces the shrink candidates of a value the rule applies to.
type GenerateFunc func(v Value, src Source) Sequence

// Rule pairs a type test with a candidate generator.
type Rule struct {
	Name     string
	Test     TestFunc
	Generate GenerateFunc
}

// Applies reports whether the rule's test matches v.
func (r Rule) Applies(v Value) bool {
	return r.Test(v)
}

// Kind is the shape of a value as seen by the built-in rules.
type Kind int

const (
	Opaque Kind = iota
	Integer
	Float
	Sequential
	Text
	Instant
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Sequential:
		return "sequence"
	case Text:
		return "text"
	case Instant:
		return "instant"
	default:
		return "opaque"
	}
}

var timeType = reflect.TypeOf(time.Time{})

// Classify returns the kind of v.
//
// Integral floats classify as Integer so that 3.0 shrinks like 3. NaN and the
// infinities are Opaque. Fixed-size arrays are Opaque as well: their length
// is part of their type, so nothing can be removed from them.
func Classify(v Value) Kind {
	if v == nil {
		return Opaque
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == timeType {
		return Instant
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Opaque
		}
		if math.Trunc(f) == f {
			return Integer
		}
		return Float
	case reflect.Slice:
		return Sequential
	case reflect.String:
		return Text
	default:
		return Opaque
	}
}

// Is returns a TestFunc matching values of kind k.
func Is(k Kind) TestFunc {
	return func(v Value) bool {
		return Classify(v) == k
	}
}
