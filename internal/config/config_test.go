package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	appErrors "tagpicker/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Fatalf("expected default %s to be tokyonight, got %q", KeyTheme, got)
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
	if got := GetString(KeyItemsPath); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyItemsPath, got)
	}

	p := PickerSettings()
	if p.MaxHeight != DefaultMaxHeight {
		t.Fatalf("expected max height %d, got %d", DefaultMaxHeight, p.MaxHeight)
	}
	if p.Width != DefaultWidth {
		t.Fatalf("expected width %d, got %d", DefaultWidth, p.Width)
	}
	if p.Placeholder != DefaultPlaceholder {
		t.Fatalf("expected placeholder %q, got %q", DefaultPlaceholder, p.Placeholder)
	}
	if len(p.ClassNames) != 0 {
		t.Fatalf("expected no class names, got %v", p.ClassNames)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "a", "b")
	mustMkdir(t, nested)
	projectCfg := filepath.Join(projectDir, ".tagpicker", "config.yaml")
	writeFile(t, projectCfg, `
theme: dracula
picker:
  placeholder: From project
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: nord
picker:
  placeholder: From user
  max-height: 8
`)

	// Discovery walks up from a nested directory.
	if err := Initialize(
		WithWorkingDir(nested),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "dracula" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := GetString(KeyPlaceholder); got != "From project" {
		t.Fatalf("expected project placeholder, got %q", got)
	}
	if got := GetInt(KeyMaxHeight); got != 8 {
		t.Fatalf("expected user max-height to survive merge, got %d", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, ".tagpicker", "config.yaml")
	writeFile(t, projectCfg, `
picker:
  max-height: 12
  width: 30
`)

	t.Setenv("TP_PICKER_MAX_HEIGHT", "5")
	t.Setenv("TP_PICKER_CLASS_NAME", "compact, accent")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "user.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetInt(KeyMaxHeight); got != 5 {
		t.Fatalf("expected environment variable to override %s, got %d", KeyMaxHeight, got)
	}
	if got := GetStringSlice(KeyClassName); !reflect.DeepEqual(got, []string{"compact", "accent"}) {
		t.Fatalf("expected class names from env, got %v", got)
	}

	if err := ApplyOverrides(map[string]any{KeyMaxHeight: 3}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	p := PickerSettings()
	if p.MaxHeight != 3 {
		t.Fatalf("expected CLI override to set max height 3, got %d", p.MaxHeight)
	}
	if p.Width != 30 {
		t.Fatalf("expected project width 30, got %d", p.Width)
	}
}

func TestPickerSettingsClampsNonPositive(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := ApplyOverrides(map[string]any{KeyMaxHeight: -4, KeyWidth: 0}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	p := PickerSettings()
	if p.MaxHeight != DefaultMaxHeight || p.Width != DefaultWidth {
		t.Fatalf("expected defaults for non-positive sizes, got %+v", p)
	}
}

func TestInvalidConfigIsConfigurationError(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "theme: [unclosed\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Chdir(tmp)
	userCfg := filepath.Join(tmp, "home", ".tagpicker", "config.yaml")
	writeFile(t, userCfg, "picker:\n  width: 22\n")
	setUserConfigPathOverride(userCfg)

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "theme: nord") {
		t.Fatalf("expected theme in saved config, got:\n%s", content)
	}
	if !strings.Contains(content, "width: 22") {
		t.Fatalf("expected other settings preserved, got:\n%s", content)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
