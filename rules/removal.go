package rules

import "github.com/gnolang/shrink/types"

// removals yields the empty value, then the input with contiguous blocks
// removed: blocks of n/2 first, then halving block sizes, each size tried at
// every offset from left to right.
type removals struct {
	n        int
	toRemove int
	offset   int
	started  bool
	empty    func() types.Value
	cut      func(offset, count int) types.Value
}

func (r *removals) Next() (types.Value, bool) {
	if r.n == 0 {
		return nil, false
	}
	if !r.started {
		r.started = true
		r.toRemove = r.n / 2
		return r.empty(), true
	}
	for r.toRemove > 0 {
		if r.offset+r.toRemove <= r.n {
			v := r.cut(r.offset, r.toRemove)
			r.offset++
			return v, true
		}
		r.toRemove /= 2
		r.offset = 0
	}
	return nil, false
}
