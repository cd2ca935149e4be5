package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/naoina/toml"

	"github.com/appengine-ltd/homespring/internal/river"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config controls how programs are driven.
type Config struct {
	// Schedule lists the ticks making up one step, in order.
	Schedule []string
	// Steps is how many times the schedule runs.
	Steps int
	// Verbosity is a log level from 0 (critical) to 5 (trace).
	Verbosity int
	Color     string
}

// TOML keys use the same names as the Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Default returns the configuration used when no file is given.
func Default() Config {
	schedule := make([]string, 0, 8)
	for _, t := range river.Ticks() {
		schedule = append(schedule, t.String())
	}
	return Config{
		Schedule:  schedule,
		Steps:     1,
		Verbosity: 3,
		Color:     ColorAuto,
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	// A schedule in the file replaces the default one rather than extending it.
	cfg.Schedule = nil
	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Schedule == nil {
		cfg.Schedule = Default().Schedule
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	return tomlSettings.Marshal(&cfg)
}

// Save writes cfg to path, replacing any existing file atomically.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "homespring-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

func (c Config) Validate() error {
	if len(c.Schedule) == 0 {
		return errors.New("schedule must name at least one tick")
	}
	if _, err := c.Ticks(); err != nil {
		return err
	}
	if c.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", c.Steps)
	}
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("verbosity must be between 0 and 5, got %d", c.Verbosity)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}

// Ticks resolves the schedule to tick kinds.
func (c Config) Ticks() ([]river.Tick, error) {
	out := make([]river.Tick, 0, len(c.Schedule))
	for _, name := range c.Schedule {
		t, err := river.ParseTick(name)
		if err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}
