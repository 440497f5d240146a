package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetracker-backend/internal/service/project"
)

func newProjectsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"ls-projects"},
		Short:   "List projects with tracked hours",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			projects, err := engine.Projects.GetAllProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			if c.asJSON {
				type item struct {
					ID           int64   `json:"id"`
					Name         string  `json:"name"`
					Color        string  `json:"color"`
					TrackedHours float64 `json:"trackedHours"`
					EntryCount   int     `json:"entryCount"`
				}
				items := make([]item, 0, len(projects))
				for _, p := range projects {
					items = append(items, item{p.ID, p.Name, p.Color, p.TrackedHours, p.EntryCount})
				}
				return writeJSON(cmd.OutOrStdout(), items)
			}

			if len(projects) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nCreate one with: trackctl projects add <name> --color '#3b82f6'")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tHOURS\tENTRIES\tNAME")
			for _, p := range projects {
				_, _ = fmt.Fprintf(tw, "%d\t%.2f\t%d\t%s %s\n", p.ID, p.TrackedHours, p.EntryCount, swatch(p.Color), p.Name)
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(newProjectAddCmd(c))
	return cmd
}

func newProjectAddCmd(c *cli) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			p, err := engine.Projects.CreateProject(cmd.Context(), project.CreateInput{Name: args[0], Color: color})
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"id": p.ID, "name": p.Name, "color": p.Color})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created project #%d %s %s\n", p.ID, swatch(p.Color), p.Name)
			return err
		},
	}
	cmd.Flags().StringVar(&color, "color", "#3b82f6", "Display color")
	return cmd
}
