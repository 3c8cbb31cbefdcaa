package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/shrink/types"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	v, ok := Empty().Next()
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Nil(t, Collect(Empty()))
}

func TestOf(t *testing.T) {
	t.Parallel()

	s := Of(1, "two", 3.0)
	assert.Equal(t, []types.Value{1, "two", 3.0}, Collect(s))

	// single pass: a drained sequence stays drained
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestTake(t *testing.T) {
	t.Parallel()

	s := Of(1, 2, 3, 4)
	assert.Equal(t, []types.Value{1, 2}, Take(s, 2))
	assert.Equal(t, []types.Value{3}, Take(s, 1))
	assert.Equal(t, []types.Value{4}, Take(s, 10))
	assert.Nil(t, Take(Of(1), 0))
}

func TestMapAndFilter(t *testing.T) {
	t.Parallel()

	double := Map(Of(1, 2, 3), func(v types.Value) types.Value { return v.(int) * 2 })
	assert.Equal(t, []types.Value{2, 4, 6}, Collect(double))

	odd := Filter(Of(1, 2, 3, 4, 5), func(v types.Value) bool { return v.(int)%2 == 1 })
	assert.Equal(t, []types.Value{1, 3, 5}, Collect(odd))

	ints := FilterMap(Of(1, "x", 2), func(v types.Value) (types.Value, bool) {
		n, ok := v.(int)
		return n + 10, ok
	})
	assert.Equal(t, []types.Value{11, 12}, Collect(ints))
}

func TestConcat(t *testing.T) {
	t.Parallel()

	s := Concat(Of(1), Empty(), Of(2, 3), Empty())
	assert.Equal(t, []types.Value{1, 2, 3}, Collect(s))
	assert.Nil(t, Collect(Concat()))
}

func TestDefer(t *testing.T) {
	t.Parallel()

	built := 0
	s := Concat(Of(1), Defer(func() types.Sequence {
		built++
		return Of(2)
	}))

	v, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, built, "deferred part must not be built before it is reached")

	assert.Equal(t, []types.Value{2}, Collect(s))
	assert.Equal(t, 1, built)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	n := 0
	s := Func(func() (types.Value, bool) {
		if n == 3 {
			return nil, false
		}
		n++
		return n, true
	})
	assert.Equal(t, []types.Value{1, 2, 3}, Collect(s))
}

func TestAll(t *testing.T) {
	t.Parallel()

	s := Of(1, 2, 3, 4)
	var seen []types.Value
	for v := range All(s) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []types.Value{1, 2}, seen)
	assert.Equal(t, []types.Value{3, 4}, Collect(s))
}
