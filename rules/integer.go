package rules

import (
	"math"
	"reflect"

	"github.com/gnolang/shrink/seq"
	"github.com/gnolang/shrink/types"
)

// shrinkInteger moves negative values to the non-negative side first, then
// approaches zero by halving the distance to it:
//
//	17 -> 0, 9, 13, 15, 16
//	-5 -> 5, 0, -3, -4
//
// Candidates keep the Go type of the input.
func shrinkInteger(v types.Value, src types.Source) types.Sequence {
	rv := reflect.ValueOf(v)
	t := rv.Type()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		wrap := func(x int64) types.Value {
			out := reflect.New(t).Elem()
			out.SetInt(x)
			return out.Interface()
		}
		if n >= 0 {
			return &intHalving{value: n, diff: n, wrap: wrap}
		}
		if n == minInt(t.Bits()) {
			// -n does not fit in the type; walk the magnitude directly.
			mag := uint64(-(n + 1)) + 1
			return &uintHalving{value: mag, diff: mag, wrap: func(x uint64) types.Value {
				return wrap(-int64(x))
			}}
		}
		return negated(wrap(-n), src)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		return &uintHalving{value: n, diff: n, wrap: func(x uint64) types.Value {
			out := reflect.New(t).Elem()
			out.SetUint(x)
			return out.Interface()
		}}

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f < 0 {
			return negated(wrapFloat(t)(-f), src)
		}
		round := func(x float64) float64 { return x }
		if t.Kind() == reflect.Float32 {
			round = func(x float64) float64 { return float64(float32(x)) }
		}
		return &integralFloatHalving{value: f, diff: f, round: round, wrap: wrapFloat(t)}
	}
	return seq.Empty()
}

// negated yields pos itself, then every candidate the source produces for
// pos with its sign flipped back.
func negated(pos types.Value, src types.Source) types.Sequence {
	return seq.Concat(
		seq.Of(pos),
		seq.Defer(func() types.Sequence {
			return seq.FilterMap(src.Shrinks(pos), negate)
		}),
	)
}

func negate(v types.Value) (types.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	out := reflect.New(rv.Type()).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(-rv.Int())
	case reflect.Float32, reflect.Float64:
		out.SetFloat(-rv.Float())
	default:
		return nil, false
	}
	return out.Interface(), true
}

func minInt(bits int) int64 {
	return -1 << (bits - 1)
}

func wrapFloat(t reflect.Type) func(float64) types.Value {
	return func(f float64) types.Value {
		out := reflect.New(t).Elem()
		out.SetFloat(f)
		return out.Interface()
	}
}

type intHalving struct {
	value, diff int64
	wrap        func(int64) types.Value
}

func (h *intHalving) Next() (types.Value, bool) {
	if h.diff <= 0 {
		return nil, false
	}
	c := h.value - h.diff
	h.diff /= 2
	return h.wrap(c), true
}

type uintHalving struct {
	value, diff uint64
	wrap        func(uint64) types.Value
}

func (h *uintHalving) Next() (types.Value, bool) {
	if h.diff == 0 {
		return nil, false
	}
	c := h.value - h.diff
	h.diff /= 2
	return h.wrap(c), true
}

// integralFloatHalving stops once value - diff rounds back to value, which
// happens for large magnitudes where adjacent floats are further apart than
// the remaining distance. Candidates that round onto the previous one are
// skipped.
type integralFloatHalving struct {
	value, diff float64
	last        float64
	emitted     bool
	round       func(float64) float64
	wrap        func(float64) types.Value
}

func (h *integralFloatHalving) Next() (types.Value, bool) {
	for h.diff > 0 {
		c := h.round(h.value - h.diff)
		h.diff = math.Floor(h.diff / 2)
		if c >= h.value {
			h.diff = 0
			break
		}
		if h.emitted && c <= h.last {
			continue
		}
		h.last, h.emitted = c, true
		return h.wrap(c), true
	}
	return nil, false
}
