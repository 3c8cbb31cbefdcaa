package shrink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/shrink/rules"
	"github.com/gnolang/shrink/seq"
	"github.com/gnolang/shrink/types"
)

type atom struct {
	Name string
}

func isAtom(v types.Value) bool {
	_, ok := v.(atom)
	return ok
}

// shrinkAtom shrinks any atom other than "a" to "a".
func shrinkAtom(v types.Value, _ types.Source) types.Sequence {
	if v.(atom).Name == "a" {
		return seq.Empty()
	}
	return seq.Of(atom{"a"})
}

func TestShrinker_NoRules(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Empty(t, seq.Collect(s.Shrinks(17)))
	assert.Empty(t, s.Rules())
}

func TestShrinker_AddDefaultRules(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddDefaultRules()

	require.Len(t, s.Rules(), 4)
	assert.Equal(t, []types.Value{0, 9, 13, 15, 16}, seq.Collect(s.Shrinks(17)))
}

func TestShrinker_FirstMatchWins(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddRule(
		func(v types.Value) bool { _, ok := v.(int); return ok },
		func(v types.Value, _ types.Source) types.Sequence { return seq.Of(42) },
	)
	s.AddDefaultRules()

	assert.Equal(t, []types.Value{42}, seq.Collect(s.Shrinks(17)))
	assert.Equal(t, "custom-0", s.Rules()[0].Name)
	assert.Equal(t, rules.IntegerName, s.Rules()[1].Name)
}

func TestShrinker_DefaultsBeforeCustom(t *testing.T) {
	t.Parallel()

	s := NewDefault()
	s.AddRule(
		func(v types.Value) bool { _, ok := v.(int); return ok },
		func(v types.Value, _ types.Source) types.Sequence { return seq.Of(42) },
	)

	assert.Equal(t, []types.Value{0, 9, 13, 15, 16}, seq.Collect(s.Shrinks(17)))
}

func TestShrinker_CompoundRulesUseOwningRegistry(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddRule(isAtom, shrinkAtom)
	s.AddDefaultRules()

	got := seq.Collect(s.Shrinks([]any{atom{"b"}}))
	assert.Equal(t, []types.Value{[]any{}, []any{atom{"a"}}}, got)

	// a registry without the atom rule knows nothing about atoms
	assert.Equal(t, []types.Value{[]any{}}, seq.Collect(NewDefault().Shrinks([]any{atom{"b"}})))
}

func TestShrinker_IndependentRegistries(t *testing.T) {
	t.Parallel()

	a := NewDefault()
	b := NewDefault()
	a.AddRule(isAtom, shrinkAtom)

	assert.Len(t, a.Rules(), 5)
	assert.Len(t, b.Rules(), 4)
	assert.Empty(t, seq.Collect(b.Shrinks(atom{"b"})))
}

func TestShrinker_RulesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewDefault()
	list := s.Rules()
	list[0] = rules.String

	assert.Equal(t, rules.IntegerName, s.Rules()[0].Name)
}

func TestShrinker_AddDefaultRulesTwice(t *testing.T) {
	t.Parallel()

	s := NewDefault()
	s.AddDefaultRules()

	assert.Len(t, s.Rules(), 8)
	assert.Equal(t, []types.Value{"", "bc", "ac", "ab"}, seq.Collect(s.Shrinks("abc")))
}

func TestShrinker_PanicsPropagate(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddRule(
		func(v types.Value) bool { panic("test exploded") },
		func(v types.Value, _ types.Source) types.Sequence { return seq.Empty() },
	)

	assert.PanicsWithValue(t, "test exploded", func() { s.Shrinks(1) })
}
