package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/refreshable/pkg/errors"
	"github.com/go-drift/refreshable/pkg/graphics"
	"github.com/go-drift/refreshable/pkg/indicator"
)

func TestParseSpinnerArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    spinnerOptions
		wantErr string
	}{
		{"defaults", nil, spinnerOptions{output: "spinner.png", scale: 3}, ""},
		{
			"all flags",
			[]string{"-o", "out.png", "--size", "Large", "--scale", "2", "--frame", "5", "--color", "#FF0000"},
			spinnerOptions{output: "out.png", size: indicator.SpinnerSizeLarge, scale: 2, frame: 5, color: graphics.Color(0xFFFF0000)},
			"",
		},
		{"missing value", []string{"--size"}, spinnerOptions{}, "requires a value"},
		{"bad size", []string{"--size", "huge"}, spinnerOptions{}, "unknown size"},
		{"bad scale", []string{"--scale", "0"}, spinnerOptions{}, "invalid scale"},
		{"bad color", []string{"--color", "1234567"}, spinnerOptions{}, "invalid color"},
		{"unknown flag", []string{"--fps", "60"}, spinnerOptions{}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSpinnerArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("options = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestRunSpinnerWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := runSpinner([]string{"-o", path, "--size", "small", "--scale", "2", "--frame", "3"}); err != nil {
		t.Fatalf("runSpinner() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Errorf("bounds = %v, want 40x40", img.Bounds())
	}
}

func TestRunSimulate(t *testing.T) {
	old := errors.DefaultHandler
	t.Cleanup(func() { errors.SetHandler(old) })

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	scenario := "name: smoke\npull_to_refresh: {}\nsteps:\n  - start_refresh: true\n  - settle: true\n"
	if err := os.WriteFile(path, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runSimulate([]string{path}); err != nil {
		t.Fatalf("runSimulate() error = %v", err)
	}
	if err := runSimulate(nil); err == nil {
		t.Error("runSimulate(nil) should require a scenario")
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	err := execute([]string{"--verbose", "bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("execute() error = %v", err)
	}
	verbose = false
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"simulate", "spinner"} {
		if _, ok := commands[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestPrintHelpListsCommands(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)
	out := buf.String()
	sim, spin := strings.Index(out, "simulate"), strings.Index(out, "spinner ")
	if sim < 0 || spin < 0 {
		t.Fatalf("help is missing commands:\n%s", out)
	}
	if !strings.Contains(out, "--verbose") {
		t.Error("help should describe --verbose")
	}
}

func TestGlobalsStripsRootFlags(t *testing.T) {
	t.Cleanup(func() { verbose = false })
	rest, done := globals([]string{"simulate", "--verbose", "feed.yaml", "--help"})
	if done {
		t.Fatal("help after the command name belongs to the command")
	}
	if want := []string{"simulate", "feed.yaml", "--help"}; strings.Join(rest, " ") != strings.Join(want, " ") {
		t.Errorf("rest = %v, want %v", rest, want)
	}
	if !verbose {
		t.Error("--verbose should be consumed as a global flag")
	}
}
