package rules

import (
	"reflect"

	"github.com/gnolang/shrink/seq"
	"github.com/gnolang/shrink/types"
)

// shrinkText only removes spans of runes. Individual characters are never
// replaced.
func shrinkText(v types.Value, _ types.Source) types.Sequence {
	rv := reflect.ValueOf(v)
	runes := []rune(rv.String())
	if len(runes) == 0 {
		return seq.Empty()
	}

	t := rv.Type()
	wrap := func(s string) types.Value {
		if t.Kind() == reflect.String && t.PkgPath() == "" {
			return s
		}
		out := reflect.New(t).Elem()
		out.SetString(s)
		return out.Interface()
	}

	return &removals{
		n:     len(runes),
		empty: func() types.Value { return wrap("") },
		cut: func(offset, count int) types.Value {
			return wrap(string(runes[:offset]) + string(runes[offset+count:]))
		},
	}
}
