package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetracker-backend/internal/adapter/postgres"
)

func newMigrateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withMigrator(cmd, func(m *postgres.Migrator) error {
					versions, err := m.Up(cmd.Context())
					if err != nil {
						return err
					}
					if len(versions) == 0 {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
						return nil
					}
					for _, v := range versions {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %05d\n", v)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withMigrator(cmd, func(m *postgres.Migrator) error {
					v, err := m.Down(cmd.Context())
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %05d\n", v)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withMigrator(cmd, func(m *postgres.Migrator) error {
					statuses, err := m.Status(cmd.Context())
					if err != nil {
						return err
					}
					if c.asJSON {
						return writeJSON(cmd.OutOrStdout(), statuses)
					}
					tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
					_, _ = fmt.Fprintln(tw, "VERSION\tAPPLIED\tFILE")
					for _, s := range statuses {
						_, _ = fmt.Fprintf(tw, "%05d\t%t\t%s\n", s.Version, s.Applied, s.Path)
					}
					return tw.Flush()
				})
			},
		},
	)
	return cmd
}

// withMigrator connects without auto-migrating so that the subcommand
// controls the schema.
func (c *cli) withMigrator(cmd *cobra.Command, fn func(m *postgres.Migrator) error) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	return fn(m)
}
