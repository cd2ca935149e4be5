package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/appengine-ltd/homespring/internal/river"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	ticks, err := cfg.Ticks()
	if err != nil {
		t.Fatalf("Ticks: %v", err)
	}
	if diff := cmp.Diff(river.Ticks(), ticks); diff != "" {
		t.Fatalf("default schedule (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Fatalf("Load(%q) (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	data := "Schedule = [\"snow\", \"fish-down\"]\nSteps = 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Steps != 4 || cfg.Verbosity != 3 || cfg.Color != ColorAuto {
		t.Fatalf("unexpected config %+v", cfg)
	}
	ticks, _ := cfg.Ticks()
	if diff := cmp.Diff([]river.Tick{river.Snow, river.FishDown}, ticks); diff != "" {
		t.Fatalf("schedule (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "unknown field", data: "Speed = 3\n", want: "Speed"},
		{name: "bad tick", data: "Schedule = [\"hail\"]\n", want: "hail"},
		{name: "zero steps", data: "Steps = 0\n", want: "steps"},
		{name: "bad colour", data: "Color = \"sometimes\"\n", want: "sometimes"},
	}
	for _, tc := range tests {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateScheduleError(t *testing.T) {
	cfg := Default()
	cfg.Schedule = []string{"snow", "drizzle"}
	if err := cfg.Validate(); !errors.Is(err, river.ErrUnsupportedTick) {
		t.Fatalf("expected ErrUnsupportedTick, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.toml")
	cfg := Default()
	cfg.Steps = 7
	cfg.Color = ColorNever
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}
