package rules

import (
	"reflect"

	"github.com/gnolang/shrink/types"
)

// shrinkFloat works like shrinkInteger without flooring the halved distance.
// It stops as soon as a candidate would no longer be strictly closer to the
// input than the one before it.
func shrinkFloat(v types.Value, src types.Source) types.Sequence {
	rv := reflect.ValueOf(v)
	t := rv.Type()
	f := rv.Float()
	if f < 0 {
		return negated(wrapFloat(t)(-f), src)
	}

	round := func(x float64) float64 { return x }
	if t.Kind() == reflect.Float32 {
		round = func(x float64) float64 { return float64(float32(x)) }
	}
	return &floatHalving{value: f, diff: f, round: round, wrap: wrapFloat(t)}
}

type floatHalving struct {
	value, diff float64
	last        float64
	emitted     bool
	round       func(float64) float64
	wrap        func(float64) types.Value
}

func (h *floatHalving) Next() (types.Value, bool) {
	if h.diff <= 0 {
		return nil, false
	}
	c := h.round(h.value - h.diff)
	if c >= h.value || (h.emitted && c <= h.last) {
		h.diff = 0
		return nil, false
	}
	h.diff /= 2
	h.last, h.emitted = c, true
	return h.wrap(c), true
}
