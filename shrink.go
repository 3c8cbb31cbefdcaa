package shrink

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gnolang/shrink/rules"
	"github.com/gnolang/shrink/seq"
	"github.com/gnolang/shrink/types"
)

// Shrinker is an ordered collection of shrink rules. The first rule whose
// test matches a value is the only one used for that value.
//
// Rules must be added before shrinking starts. A Shrinker is not safe for
// concurrent use.
type Shrinker struct {
	rules  []types.Rule
	logger *zap.Logger
}

// Option configures a Shrinker.
type Option func(*Shrinker)

// WithLogger makes the Shrinker report accepted steps at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Shrinker) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Shrinker without any rule.
func New(opts ...Option) *Shrinker {
	s := &Shrinker{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefault creates a Shrinker holding the built-in rules.
func NewDefault(opts ...Option) *Shrinker {
	s := New(opts...)
	s.AddDefaultRules()
	return s
}

// AddRule appends a rule built from the given test and generate functions.
func (s *Shrinker) AddRule(test types.TestFunc, generate types.GenerateFunc) {
	s.Add(types.Rule{
		Name:     fmt.Sprintf("custom-%d", len(s.rules)),
		Test:     test,
		Generate: generate,
	})
}

// Add appends prebuilt rules, keeping their order.
func (s *Shrinker) Add(rs ...types.Rule) {
	s.rules = append(s.rules, rs...)
}

// AddDefaultRules appends the built-in integer, array, string and date rules
// after any rule already present, so custom rules keep priority.
func (s *Shrinker) AddDefaultRules() {
	s.Add(rules.Defaults()...)
}

// Rules returns a copy of the rule list in priority order.
func (s *Shrinker) Rules() []types.Rule {
	out := make([]types.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Shrinks returns the candidates of the first rule matching v, or an empty
// sequence when no rule does.
func (s *Shrinker) Shrinks(v types.Value) types.Sequence {
	rule, ok := s.match(v)
	if !ok {
		return seq.Empty()
	}
	return rule.Generate(v, s)
}

func (s *Shrinker) match(v types.Value) (types.Rule, bool) {
	for _, rule := range s.rules {
		if rule.Applies(v) {
			return rule, true
		}
	}
	return types.Rule{}, false
}
