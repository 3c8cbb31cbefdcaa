// Package config reads and writes the .shrink.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/shrink"
	"github.com/gnolang/shrink/rules"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".shrink.yaml"

var ErrUnknownRule = errors.New("unknown shrink rule")

// Config holds the settings of the shrink command.
type Config struct {
	Name string `yaml:"name"`
	// Limit caps accepted shrink steps; a negative value means no cap.
	Limit int `yaml:"limit"`
	// Timeout bounds every run of the predicate command.
	Timeout    time.Duration         `yaml:"timeout"`
	TimeLayout string                `yaml:"time_layout,omitempty"`
	Rules      map[string]RuleConfig `yaml:"rules"`
}

// RuleConfig toggles a built-in rule.
type RuleConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{
		Name:    "shrink",
		Limit:   shrink.Unlimited,
		Timeout: 10 * time.Second,
		Rules:   make(map[string]RuleConfig),
	}
	for _, r := range rules.All() {
		cfg.Rules[r.Name] = RuleConfig{Enabled: rules.IsDefault(r.Name)}
	}
	return cfg
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	config := Default()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Write stores cfg at path, replacing any existing file.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// Validate rejects rule names that are not built in.
func (c Config) Validate() error {
	for _, name := range c.RuleNames() {
		if _, ok := rules.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
	}
	return nil
}

// RuleNames returns the configured rule names, sorted.
func (c Config) RuleNames() []string {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled reports whether the named rule is on. Rules absent from the file
// follow the default set.
func (c Config) Enabled(name string) bool {
	if rc, ok := c.Rules[name]; ok {
		return rc.Enabled
	}
	return rules.IsDefault(name)
}

// Build creates a Shrinker holding the enabled built-in rules in their
// standard priority order.
func (c Config) Build(opts ...shrink.Option) (*shrink.Shrinker, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := shrink.New(opts...)
	for _, r := range rules.All() {
		if c.Enabled(r.Name) {
			s.Add(r)
		}
	}
	return s, nil
}
