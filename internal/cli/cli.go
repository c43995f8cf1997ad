// Package cli implements the circuitweave command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/circuitweave/pkg/buildinfo"
	"github.com/matzehuels/circuitweave/pkg/observability"
	"github.com/matzehuels/circuitweave/pkg/weave"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "circuitweave"

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
	Config Config
}

// New creates a new CLI instance with a default logger and the user config
// loaded (or defaults if no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}

	cfg, err := LoadConfig(configPath())
	if err != nil {
		// A broken config file should not make the tool unusable.
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg

	return c
}

// SetLogLevel updates the logger's level. At debug level, generation stage
// timings are reported through the observability hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.SetGeneratorHooks(&logHooks{logger: c.Logger})
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command with no subcommand starts the interactive view.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Circuitweave generates ASCII circuit-weave textures",
		Long:         `Circuitweave procedurally generates two-color ASCII/box-drawing "circuit weave" textures. Run it bare for an interactive view, or use 'print' for one-shot output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.printCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runInteractive builds a scene from the configured defaults and hands it to
// the bubbletea program. Grid dimensions come from the first WindowSizeMsg.
func (c *CLI) runInteractive() error {
	opts := weave.Options{
		CellSize: 1, // terminal character cells map 1:1
		Width:    80,
		Height:   24,
		Seed:     c.Config.Defaults.Seed,
		Style:    weave.Style(c.Config.Defaults.Style),
		Mode:     weave.Mode(c.Config.Defaults.Mode),
	}
	scene, err := weave.New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newWeaveModel(scene, c.Config), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the config file path using the XDG standard
// (~/.config/circuitweave/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
