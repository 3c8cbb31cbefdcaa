package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/shrink"
	"github.com/gnolang/shrink/rules"
	"github.com/gnolang/shrink/seq"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".shrink.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
name: project
limit: 25
timeout: 2s
time_layout: "2006-01-02"
rules:
  float:
    enabled: true
  string:
    enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.Name)
	assert.Equal(t, 25, cfg.Limit)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "2006-01-02", cfg.TimeLayout)
	assert.True(t, cfg.Enabled(rules.FloatName))
	assert.False(t, cfg.Enabled(rules.StringName))
	assert.True(t, cfg.Enabled(rules.IntegerName))
}

func TestLoad_KeepsDefaultsForOmittedKeys(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "name: partial\n"))
	require.NoError(t, err)
	assert.Equal(t, shrink.Unlimited, cfg.Limit)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_UnknownRule(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "rules:\n  bogus:\n    enabled: true\n"))
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "limit: [1, 2\n"))
	assert.Error(t, err)
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	want := Default()
	want.Limit = 7
	want.Rules[rules.FloatName] = RuleConfig{Enabled: true}

	require.NoError(t, Write(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	cfg := Default()
	s, err := cfg.Build()
	require.NoError(t, err)

	var names []string
	for _, r := range s.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"integer", "array", "string", "date"}, names)

	cfg.Rules[rules.StringName] = RuleConfig{Enabled: false}
	cfg.Rules[rules.FloatName] = RuleConfig{Enabled: true}
	s, err = cfg.Build()
	require.NoError(t, err)

	assert.Empty(t, seq.Collect(s.Shrinks("abc")))
	assert.NotEmpty(t, seq.Collect(s.Shrinks(2.5)))
}
