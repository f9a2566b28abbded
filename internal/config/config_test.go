package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"astraea/internal/buildinfo"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astraea.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, MinTimerHz, cfg.TimerHz)
	require.Equal(t, buildinfo.Product, cfg.Product)
	require.Equal(t, "user", cfg.PromptUser)
	require.Equal(t, uint32(0xFF00FF), cfg.Colors.Prompt)
	require.Equal(t, uint32(0xCC00CC), cfg.Colors.Accent)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
timer_hz = 100.0
rng_seed = 7
prompt_user = "root"
log_file = "boot.log"

[colors]
accent = 0x00FF00
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 100.0, cfg.TimerHz)
	require.Equal(t, uint64(7), cfg.RNGSeed)
	require.Equal(t, "root", cfg.PromptUser)
	require.Equal(t, "boot.log", cfg.LogFile)
	require.Equal(t, uint32(0x00FF00), cfg.Colors.Accent)

	// Untouched keys keep their defaults.
	require.Equal(t, uint32(0xFF00FF), cfg.Colors.Prompt)
	require.Equal(t, buildinfo.Product, cfg.PromptHost)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "timer_hz = 50.0\nbogus = true\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, "timer_hz = = 3\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"timer too slow", func(c *Config) { c.TimerHz = 5 }, "timer_hz"},
		{"timer zero", func(c *Config) { c.TimerHz = 0 }, "timer_hz"},
		{"timer just below pit minimum", func(c *Config) { c.TimerHz = 18.2 }, "timer_hz"},
		{"timer too fast", func(c *Config) { c.TimerHz = 5000 }, "timer_hz"},
		{"empty product", func(c *Config) { c.Product = " " }, "product"},
		{"multiline prompt", func(c *Config) { c.PromptHost = "a\nb" }, "prompt_host"},
		{"empty user", func(c *Config) { c.PromptUser = "" }, "prompt_user"},
		{"color overflow", func(c *Config) { c.Colors.Error = 0x1000000 }, "colors.error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			require.Equal(t, tt.field, verrs[0].Field)
		})
	}
}
