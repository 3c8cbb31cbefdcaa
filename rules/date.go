package rules

import (
	"time"

	"github.com/gnolang/shrink/seq"
	"github.com/gnolang/shrink/types"
)

// shrinkDate shrinks the milliseconds since the Unix epoch through the source
// and turns every integer candidate back into a time in the input's location.
// Candidates have millisecond resolution, so a time less than a millisecond
// after the epoch only shrinks to the epoch itself.
func shrinkDate(v types.Value, src types.Source) types.Sequence {
	t := v.(time.Time)
	loc := t.Location()
	if t.UnixMilli() == 0 {
		if epoch := time.UnixMilli(0); !t.Equal(epoch) {
			return seq.Of(types.Value(epoch.In(loc)))
		}
		return seq.Empty()
	}
	return seq.Defer(func() types.Sequence {
		return seq.FilterMap(src.Shrinks(t.UnixMilli()), func(c types.Value) (types.Value, bool) {
			ms, ok := c.(int64)
			if !ok {
				return nil, false
			}
			return time.UnixMilli(ms).In(loc), true
		})
	})
}
