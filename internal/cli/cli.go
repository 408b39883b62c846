// Package cli implements the navstack command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/navstack/pkg/buildinfo"
	"github.com/matzehuels/navstack/pkg/session"
	"github.com/matzehuels/navstack/pkg/session/file"
	"github.com/matzehuels/navstack/pkg/session/memory"
	"github.com/matzehuels/navstack/pkg/session/mongo"
	"github.com/matzehuels/navstack/pkg/session/redis"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "navstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Navstack demonstrates stack-based navigation for terminal UIs",
		Long:         `Navstack is the companion CLI for the navstack library: a showcase app for identifier-addressed stack navigation, plus tools for managing saved navigation sessions and exporting navigation flows.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./navstack.toml, then ~/.config/navstack/config.toml)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.sessionCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the config file once and caches it for the command run.
func (c *CLI) loadConfig() (*Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// =============================================================================
// Session Store Factory
// =============================================================================

// openStore creates the session store selected by the config.
func (c *CLI) openStore(ctx context.Context, cfg *Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "", BackendFile:
		return file.NewStore(cfg.Session.Dir)
	case BackendMemory:
		return memory.NewStore(), nil
	case BackendRedis:
		return redis.NewStore(ctx, redis.Config{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
	case BackendMongo:
		return mongo.NewStore(ctx, mongo.Config{
			URI:        cfg.Session.Mongo.URI,
			Database:   cfg.Session.Mongo.Database,
			Collection: cfg.Session.Mongo.Collection,
		})
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory (~/.config/navstack/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
