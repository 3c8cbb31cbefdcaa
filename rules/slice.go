package rules

import (
	"reflect"

	"github.com/gnolang/shrink/seq"
	"github.com/gnolang/shrink/types"
)

// shrinkSlice removes blocks first and only then shrinks individual
// elements, in index order, through the source.
func shrinkSlice(v types.Value, src types.Source) types.Sequence {
	in := reflect.ValueOf(v)
	n := in.Len()
	if n == 0 {
		return seq.Empty()
	}

	t := in.Type()
	return seq.Concat(
		&removals{
			n: n,
			empty: func() types.Value {
				return reflect.MakeSlice(t, 0, 0).Interface()
			},
			cut: func(offset, count int) types.Value {
				out := reflect.MakeSlice(t, 0, n-count)
				out = reflect.AppendSlice(out, in.Slice(0, offset))
				out = reflect.AppendSlice(out, in.Slice(offset+count, n))
				return out.Interface()
			},
		},
		&substitutions{src: src, in: in},
	)
}

// substitutions yields the input with one element replaced by one of its
// own shrink candidates.
type substitutions struct {
	src   types.Source
	in    reflect.Value
	index int
	inner types.Sequence
}

func (s *substitutions) Next() (types.Value, bool) {
	for s.index < s.in.Len() {
		if s.inner == nil {
			s.inner = s.src.Shrinks(s.in.Index(s.index).Interface())
		}
		c, ok := s.inner.Next()
		if !ok {
			s.inner = nil
			s.index++
			continue
		}
		if out, ok := s.replace(c); ok {
			return out, true
		}
	}
	return nil, false
}

func (s *substitutions) replace(c types.Value) (types.Value, bool) {
	elem := s.in.Type().Elem()

	var cv reflect.Value
	switch {
	case c == nil:
		switch elem.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			cv = reflect.Zero(elem)
		default:
			return nil, false
		}
	default:
		cv = reflect.ValueOf(c)
		if !cv.Type().AssignableTo(elem) {
			return nil, false
		}
	}

	n := s.in.Len()
	out := reflect.MakeSlice(s.in.Type(), n, n)
	reflect.Copy(out, s.in)
	out.Index(s.index).Set(cv)
	return out.Interface(), true
}
