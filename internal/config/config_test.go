package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Theme.Highlights) != 2 {
		t.Fatalf("default highlights = %v, want two colors", cfg.Theme.Highlights)
	}
	if cfg.Theme.Highlights[0] != "#00ffff" || cfg.Theme.Highlights[1] != "#ffff00" {
		t.Errorf("default highlights = %v, want cyan then yellow", cfg.Theme.Highlights)
	}
	if cfg.Engine.TimeoutMS != 2000 {
		t.Errorf("default timeout = %d, want 2000", cfg.Engine.TimeoutMS)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if cfg.Display != want.Display {
		t.Errorf("display = %+v, want default %+v", cfg.Display, want.Display)
	}
	if cfg.Engine != want.Engine || cfg.Logging != want.Logging {
		t.Errorf("engine/logging differ from defaults: %+v %+v", cfg.Engine, cfg.Logging)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regexplore.toml")
	data := `
[display]
padding = 2
wrap = false

[theme]
highlights = ["#112233", "#445566"]

[engine]
timeout_ms = 500

[samples]
lua_path = "/tmp/samples.lua"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Padding != 2 || cfg.Display.Wrap {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Theme.Highlights[1] != "#445566" {
		t.Errorf("highlights = %v", cfg.Theme.Highlights)
	}
	if cfg.Engine.TimeoutMS != 500 {
		t.Errorf("timeout = %d, want 500", cfg.Engine.TimeoutMS)
	}
	if cfg.Samples.LuaPath != "/tmp/samples.lua" {
		t.Errorf("lua_path = %q", cfg.Samples.LuaPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("display = {{{"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "warn")
	t.Setenv(EnvPrefix+"PADDING", "3")
	t.Setenv(EnvPrefix+"TIMEOUT_MS", "100")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Display.Padding != 3 {
		t.Errorf("padding = %d, want 3", cfg.Display.Padding)
	}
	if cfg.Engine.TimeoutMS != 100 {
		t.Errorf("timeout = %d, want 100", cfg.Engine.TimeoutMS)
	}
}

func TestLoadEnvBadNumber(t *testing.T) {
	t.Setenv(EnvPrefix+"PADDING", "lots")

	if _, err := Load(""); err == nil {
		t.Error("expected error for unparseable PADDING")
	}
}

func TestNormalizeClampsPadding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regexplore.toml")
	if err := os.WriteFile(path, []byte("[display]\npadding = 99\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Padding != 3 {
		t.Errorf("padding = %d, want clamped to 3", cfg.Display.Padding)
	}
}

func TestNormalizeHighlightCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regexplore.toml")
	if err := os.WriteFile(path, []byte("[theme]\nhighlights = [\"#123456\"]\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Theme.Highlights) != 2 {
		t.Errorf("one-color theme should fall back to defaults, got %v", cfg.Theme.Highlights)
	}
}
