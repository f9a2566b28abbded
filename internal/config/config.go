// Package config loads the host settings for AstraeaOS.
//
// Settings come from built-in defaults, optionally overridden by a TOML file:
//
//	timer_hz = 18.2065
//	rng_seed = 42
//	log_file = "astraea.log"
//
//	[colors]
//	prompt = 0xFF00FF
//	accent = 0xCC00CC
package config

import (
	"fmt"
	"math"
	"strings"

	"astraea/internal/buildinfo"

	"github.com/BurntSushi/toml"
)

const (
	// MinTimerHz is the slowest rate the PIT can produce.
	MinTimerHz = 18.2065
	// MaxTimerHz bounds the host tick rate.
	MaxTimerHz = 1000
)

// Config is the complete host configuration.
type Config struct {
	TimerHz    float64 `toml:"timer_hz"`
	RNGSeed    uint64  `toml:"rng_seed"`
	Product    string  `toml:"product"`
	Version    string  `toml:"version"`
	PromptUser string  `toml:"prompt_user"`
	PromptHost string  `toml:"prompt_host"`
	LogFile    string  `toml:"log_file"`

	Colors ColorConfig `toml:"colors"`
}

// ColorConfig holds packed 0xRRGGBB colors.
type ColorConfig struct {
	Prompt uint32 `toml:"prompt"`
	Accent uint32 `toml:"accent"`
	Text   uint32 `toml:"text"`
	Error  uint32 `toml:"error"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TimerHz:    MinTimerHz,
		Product:    buildinfo.Product,
		Version:    buildinfo.Version,
		PromptUser: "user",
		PromptHost: buildinfo.Product,
		Colors: ColorConfig{
			Prompt: 0xFF00FF,
			Accent: 0xCC00CC,
			Text:   0xCC00CC,
			Error:  0xCC00CC,
		},
	}
}

// Load returns the defaults overridden by the TOML file at path. An empty
// path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if math.IsNaN(c.TimerHz) || c.TimerHz < MinTimerHz || c.TimerHz > MaxTimerHz {
		errs = append(errs, ValidationError{
			Field:   "timer_hz",
			Message: fmt.Sprintf("%v out of range [%v, %v]", c.TimerHz, MinTimerHz, MaxTimerHz),
		})
	}
	if strings.TrimSpace(c.Product) == "" {
		errs = append(errs, ValidationError{Field: "product", Message: "must not be empty"})
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"prompt_user", c.PromptUser},
		{"prompt_host", c.PromptHost},
	} {
		if f.value == "" || strings.ContainsAny(f.value, "\r\n\x1b") {
			errs = append(errs, ValidationError{Field: f.name, Message: "must be a non-empty single line"})
		}
	}
	for _, f := range []struct {
		name  string
		value uint32
	}{
		{"colors.prompt", c.Colors.Prompt},
		{"colors.accent", c.Colors.Accent},
		{"colors.text", c.Colors.Text},
		{"colors.error", c.Colors.Error},
	} {
		if f.value > 0xFFFFFF {
			errs = append(errs, ValidationError{Field: f.name, Message: fmt.Sprintf("%#x is not a 0xRRGGBB color", f.value)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
