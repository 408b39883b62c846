package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Session backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the navstack.toml file. Every field has a working default, so
// no config file is required at all.
type Config struct {
	// Strict escalates rejected navigation (duplicate push ID, unknown pop
	// target) to a panic instead of a logged no-op.
	Strict bool `toml:"strict"`

	Transitions TransitionsConfig `toml:"transitions"`
	Session     SessionConfig     `toml:"session"`
	Inspector   InspectorConfig   `toml:"inspector"`
}

// TransitionsConfig names the transitions the demo selects by navigation
// direction. The names and easing are passed through to the renderer.
type TransitionsConfig struct {
	Forward  string `toml:"forward"`
	Backward string `toml:"backward"`
	Easing   string `toml:"easing"`
}

// SessionConfig selects and configures the session store backend.
type SessionConfig struct {
	// Backend is one of file, memory, redis, mongo. Default: file.
	Backend string `toml:"backend"`
	// Dir is the file backend's directory. Empty means
	// ~/.config/navstack/sessions/.
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// InspectorConfig configures the HTTP inspector the demo can serve.
type InspectorConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Transitions: TransitionsConfig{
			Forward:  "slide-left",
			Backward: "slide-right",
		},
		Session: SessionConfig{
			Backend: BackendFile,
		},
		Inspector: InspectorConfig{
			Addr: "localhost:6060",
		},
	}
}

// LoadConfig reads the config file at path. An empty path searches
// ./navstack.toml, then ~/.config/navstack/config.toml; when neither
// exists the defaults apply. Values present in the file override defaults
// field by field.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return cfg, nil
		}
		path = found
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfig returns the first config file that exists, or empty.
func findConfig() (string, error) {
	if _, err := os.Stat(appName + ".toml"); err == nil {
		return appName + ".toml", nil
	}
	dir, err := configDir()
	if err != nil {
		return "", nil // No home dir: run on defaults.
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
