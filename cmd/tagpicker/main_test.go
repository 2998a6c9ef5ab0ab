package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tagpicker/internal/config"
	"tagpicker/internal/ui"
)

type noopProgram struct {
	err error
}

func (p noopProgram) Run() (tea.Model, error) {
	return nil, p.err
}

func TestRunProgram(t *testing.T) {
	t.Run("RunsProgramFromFactory", func(t *testing.T) {
		var gotApp *ui.App
		err := runProgram(ui.Config{}, ui.NewApp, func(app *ui.App) programRunner {
			gotApp = app
			return noopProgram{}
		})
		if err != nil {
			t.Fatalf("runProgram returned error: %v", err)
		}
		if gotApp == nil {
			t.Fatal("expected factory to receive the app")
		}
	})

	t.Run("WrapsBuilderError", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := runProgram(ui.Config{}, func(ui.Config) (*ui.App, error) {
			return nil, sentinel
		}, nil)
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped builder error, got %v", err)
		}
		if !strings.Contains(err.Error(), "initialize UI") {
			t.Fatalf("expected context in error, got %q", err.Error())
		}
	})

	t.Run("NilFactory", func(t *testing.T) {
		if err := runProgram(ui.Config{}, ui.NewApp, nil); err == nil {
			t.Fatal("expected error for nil factory")
		}
	})

	t.Run("NilProgram", func(t *testing.T) {
		err := runProgram(ui.Config{}, ui.NewApp, func(*ui.App) programRunner { return nil })
		if err == nil {
			t.Fatal("expected error for nil program")
		}
	})

	t.Run("WrapsRunError", func(t *testing.T) {
		sentinel := errors.New("tty gone")
		err := runProgram(ui.Config{}, ui.NewApp, func(*ui.App) programRunner {
			return noopProgram{err: sentinel}
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped run error, got %v", err)
		}
	})
}

func TestFlagOverridesOnlyIncludesChangedFlags(t *testing.T) {
	cmd := newRootCmd(nil)
	if err := cmd.ParseFlags([]string{"--max-height", "7", "--class", "compact,accent", "--debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	got := flagOverrides(cmd)

	if got[config.KeyMaxHeight] != 7 {
		t.Errorf("expected max-height override 7, got %v", got[config.KeyMaxHeight])
	}
	if got[config.KeyDebug] != true {
		t.Errorf("expected debug override true, got %v", got[config.KeyDebug])
	}
	classes, ok := got[config.KeyClassName].([]string)
	if !ok || len(classes) != 2 || classes[0] != "compact" || classes[1] != "accent" {
		t.Errorf("expected class override [compact accent], got %v", got[config.KeyClassName])
	}
	if _, ok := got[config.KeyPlaceholder]; ok {
		t.Error("expected unset placeholder flag to be left to config")
	}
	if _, ok := got[config.KeyTheme]; ok {
		t.Error("expected unset theme flag to be left to config")
	}
}

func TestRootCommandRunsProgramWithFlags(t *testing.T) {
	cleanup := config.ResetForTesting(t)
	defer cleanup()

	itemsPath := filepath.Join(t.TempDir(), "items.toml")
	data := "[[items]]\nvalue = \"go\"\nlabel = \"Go\"\n\n[[items]]\nvalue = \"rust\"\n"
	if err := os.WriteFile(itemsPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write items: %v", err)
	}

	var app *ui.App
	cmd := newRootCmd(func(a *ui.App) programRunner {
		app = a
		return noopProgram{}
	})
	cmd.SetArgs([]string{"--items", itemsPath, "--placeholder", "Choose", "--max-height", "4", "--output-format", "plain"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if app == nil {
		t.Fatal("expected program to be started")
	}
	p := app.Picker()
	if p.Placeholder != "Choose" {
		t.Errorf("expected placeholder from flag, got %q", p.Placeholder)
	}
	if p.MaxHeight != 4 {
		t.Errorf("expected max height 4, got %d", p.MaxHeight)
	}
	if items := p.Items(); len(items) != 2 || items[1].Label != "rust" {
		t.Errorf("expected items from file, got %+v", items)
	}
}

func TestRootCommandMissingItemsFile(t *testing.T) {
	cleanup := config.ResetForTesting(t)
	defer cleanup()

	cmd := newRootCmd(func(*ui.App) programRunner {
		t.Fatal("program should not start")
		return nil
	})
	cmd.SetArgs([]string{"--items", filepath.Join(t.TempDir(), "missing.toml")})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "load items") {
		t.Fatalf("expected load items error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	origVersion, origBuild, origBuildTime := Version, Build, BuildTime
	defer func() {
		Version, Build, BuildTime = origVersion, origBuild, origBuildTime
	}()
	Version, Build, BuildTime = "1.2.0", "abc1234", "2026-01-02"

	var out bytes.Buffer
	cmd := newRootCmd(nil)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"tagpicker version 1.2.0", "(build: abc1234)", "[2026-01-02]", "Go version:", "OS/Arch:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}
