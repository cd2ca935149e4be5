package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/urfave/cli.v1"
)

func TestSplitSchedule(t *testing.T) {
	got := splitSchedule(" snow, fish-down ,,power ")
	if diff := cmp.Diff([]string{"snow", "fish-down", "power"}, got); diff != "" {
		t.Fatalf("schedule (-want +got):\n%s", diff)
	}
}

func TestReadProgramDropsOneLineBreak(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		data string
		want string
	}{
		{data: "a b c\n", want: "a b c"},
		{data: "a b c\r\n", want: "a b c"},
		{data: "a b c", want: "a b c"},
		{data: "a b  \n\n", want: "a b  \n"},
	}
	for i, tc := range tests {
		path := filepath.Join(dir, string(rune('a'+i))+".hs")
		if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := readProgram(path)
		if err != nil || got != tc.want {
			t.Fatalf("readProgram(%q)=%q,%v want=%q", tc.data, got, err, tc.want)
		}
	}
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	app := newApp()
	global := flag.NewFlagSet("homespring", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(global)
	}
	if err := global.Parse([]string{"--verbosity", "5", "--color", "never"}); err != nil {
		t.Fatal(err)
	}
	local := flag.NewFlagSet("run", flag.ContinueOnError)
	stepsFlag.Apply(local)
	scheduleFlag.Apply(local)
	if err := local.Parse([]string{"--steps", "4", "--schedule", "snow,water"}); err != nil {
		t.Fatal(err)
	}

	ctx := cli.NewContext(app, local, cli.NewContext(app, global, nil))
	cfg, err := loadConfig(ctx)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Verbosity != 5 || cfg.Color != "never" || cfg.Steps != 4 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"snow", "water"}, cfg.Schedule); diff != "" {
		t.Fatalf("schedule (-want +got):\n%s", diff)
	}
}
