package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetracker-backend/internal/app"
	"github.com/heartmarshall/timetracker-backend/internal/config"
)

// cli carries state shared by every subcommand. The engine is opened lazily
// so that flag and argument errors are reported before any connection.
type cli struct {
	asJSON     bool
	configPath string

	cfg    *config.Config
	logger *slog.Logger
	engine *app.Engine
}

func newRootCmd() *cobra.Command {
	return newCLIRoot(&cli{})
}

func newCLIRoot(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "Track time from the command line",
		Long:          `trackctl starts and stops timers, lists entries and prints summaries.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Output as JSON")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	root.AddCommand(
		newStartCmd(c),
		newStopCmd(c),
		newActiveCmd(c),
		newTodayCmd(c),
		newReportCmd(c),
		newSummaryCmd(c),
		newProjectsCmd(c),
		newMigrateCmd(c),
	)
	return root
}

func (c *cli) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if cfg.Database.ApplicationName == "timetracker" {
		cfg.Database.ApplicationName = "trackctl"
	}
	c.cfg = cfg
	c.logger = app.NewLogger(cfg.Log)
	return cfg, nil
}

// execute runs root and then releases the engine. Cobra skips post-run hooks
// when RunE fails, so the close cannot live in PersistentPostRun.
func execute(c *cli, root *cobra.Command) error {
	defer c.close()
	return root.Execute()
}

// open returns the engine, connecting on first use.
func (c *cli) open(ctx context.Context) (*app.Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	engine, err := app.NewEngine(ctx, cfg, c.logger, clockwork.NewRealClock())
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}
	c.engine = engine
	return engine, nil
}

func (c *cli) close() {
	if c.engine != nil {
		c.engine.Close()
		c.engine = nil
	}
}
