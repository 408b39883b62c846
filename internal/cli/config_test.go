package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navstack.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// An explicit empty path with no config file anywhere nearby still
	// needs a full working config.
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Strict {
		t.Error("default Strict = true, want false")
	}
	if cfg.Transitions.Forward != "slide-left" || cfg.Transitions.Backward != "slide-right" {
		t.Errorf("default transitions = %+v", cfg.Transitions)
	}
	if cfg.Session.Backend != BackendFile {
		t.Errorf("default backend = %q, want file", cfg.Session.Backend)
	}
	if cfg.Inspector.Enabled {
		t.Error("default inspector enabled = true, want false")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
strict = true

[transitions]
forward = "fade-in"
backward = "fade-out"
easing = "ease-in-out"

[session]
backend = "redis"

[session.redis]
addr = "localhost:6379"
db = 2

[inspector]
enabled = true
addr = "localhost:7070"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Transitions.Forward != "fade-in" || cfg.Transitions.Easing != "ease-in-out" {
		t.Errorf("transitions = %+v", cfg.Transitions)
	}
	if cfg.Session.Backend != BackendRedis {
		t.Errorf("backend = %q, want redis", cfg.Session.Backend)
	}
	if cfg.Session.Redis.Addr != "localhost:6379" || cfg.Session.Redis.DB != 2 {
		t.Errorf("redis config = %+v", cfg.Session.Redis)
	}
	if !cfg.Inspector.Enabled || cfg.Inspector.Addr != "localhost:7070" {
		t.Errorf("inspector config = %+v", cfg.Inspector)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[transitions]
forward = "zoom"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Transitions.Forward != "zoom" {
		t.Errorf("Forward = %q, want zoom", cfg.Transitions.Forward)
	}
	if cfg.Transitions.Backward != "slide-right" {
		t.Errorf("Backward = %q, want the slide-right default", cfg.Transitions.Backward)
	}
	if cfg.Session.Backend != BackendFile {
		t.Errorf("backend = %q, want the file default", cfg.Session.Backend)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig with a missing explicit path = nil error, want error")
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := writeConfig(t, "strict = maybe")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig with invalid TOML = nil error, want error")
	}
}
