// Package seq provides the building blocks for lazy candidate sequences.
//
// Every sequence here is an explicit iterator that carries its own progress;
// nothing is computed until Next is called, and nothing is replayed.
package seq

import (
	"iter"

	"github.com/gnolang/shrink/types"
)

type empty struct{}

func (empty) Next() (types.Value, bool) { return nil, false }

// Empty returns a sequence with no candidates.
func Empty() types.Sequence {
	return empty{}
}

// Func adapts a plain function to the Sequence interface.
type Func func() (types.Value, bool)

func (f Func) Next() (types.Value, bool) { return f() }

type slice struct {
	values []types.Value
	pos    int
}

func (s *slice) Next() (types.Value, bool) {
	if s.pos >= len(s.values) {
		return nil, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// Of returns a sequence yielding vs in order.
func Of(vs ...types.Value) types.Sequence {
	return &slice{values: vs}
}

type mapped struct {
	src types.Sequence
	fn  func(types.Value) (types.Value, bool)
}

func (m *mapped) Next() (types.Value, bool) {
	for {
		v, ok := m.src.Next()
		if !ok {
			return nil, false
		}
		if out, keep := m.fn(v); keep {
			return out, true
		}
	}
}

// Map applies fn to every candidate of src.
func Map(src types.Sequence, fn func(types.Value) types.Value) types.Sequence {
	return &mapped{src: src, fn: func(v types.Value) (types.Value, bool) {
		return fn(v), true
	}}
}

// FilterMap applies fn to every candidate of src and drops those for which fn
// reports false.
func FilterMap(src types.Sequence, fn func(types.Value) (types.Value, bool)) types.Sequence {
	return &mapped{src: src, fn: fn}
}

// Filter keeps the candidates of src that satisfy keep.
func Filter(src types.Sequence, keep func(types.Value) bool) types.Sequence {
	return &mapped{src: src, fn: func(v types.Value) (types.Value, bool) {
		return v, keep(v)
	}}
}

type deferred struct {
	build func() types.Sequence
	seq   types.Sequence
}

func (d *deferred) Next() (types.Value, bool) {
	if d.seq == nil {
		d.seq = d.build()
		d.build = nil
	}
	return d.seq.Next()
}

// Defer postpones building a sequence until its first candidate is pulled.
func Defer(build func() types.Sequence) types.Sequence {
	return &deferred{build: build}
}

type concat struct {
	parts []types.Sequence
}

func (c *concat) Next() (types.Value, bool) {
	for len(c.parts) > 0 {
		if v, ok := c.parts[0].Next(); ok {
			return v, true
		}
		c.parts = c.parts[1:]
	}
	return nil, false
}

// Concat yields the candidates of each part in turn.
func Concat(parts ...types.Sequence) types.Sequence {
	return &concat{parts: parts}
}

// Take drains at most n candidates from s. A negative n drains everything.
func Take(s types.Sequence, n int) []types.Value {
	var out []types.Value
	for n < 0 || len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Collect drains s.
func Collect(s types.Sequence) []types.Value {
	return Take(s, -1)
}

// All adapts s to a range-over-func iterator. Breaking out of the loop
// leaves s positioned after the last candidate seen.
func All(s types.Sequence) iter.Seq[types.Value] {
	return func(yield func(types.Value) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
