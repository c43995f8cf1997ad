package cli

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/matzehuels/circuitweave/pkg/errors"
	"github.com/matzehuels/circuitweave/pkg/weave"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("empty path should not error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty path should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverridesLayered(t *testing.T) {
	path := writeTempConfig(t, `
[defaults]
style = "simple"
seed = 1234

[colors.dark]
foreground = "#ffffff"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Defaults.Style != "simple" {
		t.Errorf("style = %q, want %q", cfg.Defaults.Style, "simple")
	}
	if cfg.Defaults.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Defaults.Seed)
	}
	// Unset keys keep their defaults.
	if want := string(weave.DefaultMode); cfg.Defaults.Mode != want {
		t.Errorf("mode = %q, want default %q", cfg.Defaults.Mode, want)
	}
	if cfg.Colors.Dark.Foreground != "#ffffff" {
		t.Errorf("dark foreground = %q, want override", cfg.Colors.Dark.Foreground)
	}
	if want := DefaultConfig().Colors.Dark.Background; cfg.Colors.Dark.Background != want {
		t.Errorf("dark background = %q, want default %q", cfg.Colors.Dark.Background, want)
	}
	if want := DefaultConfig().Colors.Light; cfg.Colors.Light != want {
		t.Errorf("light pair = %+v, want untouched default %+v", cfg.Colors.Light, want)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeTempConfig(t, "defaults = not toml at all [")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if got := apperrors.GetCode(err); got != apperrors.ErrCodeInvalidConfig {
		t.Errorf("error code = %q, want %q", got, apperrors.ErrCodeInvalidConfig)
	}
}

func TestConfigPair(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.pair(weave.ModeLight); got != cfg.Colors.Light {
		t.Errorf("pair(light) = %+v, want %+v", got, cfg.Colors.Light)
	}
	if got := cfg.pair(weave.ModeDark); got != cfg.Colors.Dark {
		t.Errorf("pair(dark) = %+v, want %+v", got, cfg.Colors.Dark)
	}
}
