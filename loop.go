package shrink

import (
	"context"

	"go.uber.org/zap"

	"github.com/gnolang/shrink/types"
)

// Unlimited lets Shrink run until no candidate satisfies the predicate.
const Unlimited = -1

// Result is the outcome of a minimization run.
type Result struct {
	// Iterations counts accepted shrink steps.
	Iterations int
	Data       types.Value
}

// Predicate reports whether a candidate still fails.
type Predicate func(v types.Value) bool

// ContextPredicate is a Predicate that may fail or observe cancellation.
type ContextPredicate func(ctx context.Context, v types.Value) (bool, error)

// Step describes one accepted candidate.
type Step struct {
	Iteration int
	Rule      string
	// Tried is the number of candidates examined before this one was accepted,
	// this one included.
	Tried int
	Value types.Value
}

type runConfig struct {
	limit    int
	observer func(Step)
}

// RunOption configures a single minimization run.
type RunOption func(*runConfig)

// WithLimit caps the number of accepted steps. A negative limit means
// Unlimited.
func WithLimit(limit int) RunOption {
	return func(c *runConfig) {
		c.limit = limit
	}
}

// WithObserver calls fn after every accepted step.
func WithObserver(fn func(Step)) RunOption {
	return func(c *runConfig) {
		c.observer = fn
	}
}

// Shrink greedily minimizes data: while the limit allows, it adopts the first
// candidate for which predicate holds and starts over from it. It stops when
// no candidate holds.
//
// Panics raised by rules or by the predicate are not recovered.
func (s *Shrinker) Shrink(data types.Value, predicate Predicate, opts ...RunOption) Result {
	res, _ := s.ShrinkContext(context.Background(), data, func(_ context.Context, v types.Value) (bool, error) {
		return predicate(v), nil
	}, opts...)
	return res
}

// ShrinkContext is Shrink with a predicate that can fail. The first error
// returned by the predicate, or the context's error once it is done, stops the
// run; it is returned as is, alongside the progress made so far.
func (s *Shrinker) ShrinkContext(ctx context.Context, data types.Value, predicate ContextPredicate, opts ...RunOption) (Result, error) {
	cfg := runConfig{limit: Unlimited}
	for _, opt := range opts {
		opt(&cfg)
	}

	current := data
	iterations := 0
	for cfg.limit < 0 || iterations < cfg.limit {
		rule, ok := s.match(current)
		if !ok {
			break
		}

		next, tried, found, err := firstFailing(ctx, rule.Generate(current, s), predicate)
		if err != nil {
			return Result{Iterations: iterations, Data: current}, err
		}
		if !found {
			break
		}

		current = next
		iterations++

		s.logger.Debug("Accepted shrink candidate",
			zap.Int("iteration", iterations),
			zap.String("rule", rule.Name),
			zap.Int("tried", tried),
		)
		if cfg.observer != nil {
			cfg.observer(Step{Iteration: iterations, Rule: rule.Name, Tried: tried, Value: current})
		}
	}

	return Result{Iterations: iterations, Data: current}, nil
}

func firstFailing(ctx context.Context, candidates types.Sequence, predicate ContextPredicate) (types.Value, int, bool, error) {
	tried := 0
	for {
		c, ok := candidates.Next()
		if !ok {
			return nil, tried, false, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, tried, false, err
		}
		tried++

		fails, err := predicate(ctx, c)
		if err != nil {
			return nil, tried, false, err
		}
		if fails {
			return c, tried, true, nil
		}
	}
}
