package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

func newStartCmd(c *cli) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "start <description...>",
		Short: "Start a timer",
		Long: `Start a running time entry now.

Examples:
  trackctl start Code review --project 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var project *int64
			if cmd.Flags().Changed("project") {
				project = &projectID
			}

			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			entry, err := engine.TimeEntries.StartTimer(cmd.Context(), strings.Join(args, " "), project)
			if err != nil {
				return fmt.Errorf("start timer: %w", err)
			}
			return c.printEntry(cmd, entry, "Started")
		},
	}
	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "Project id")
	return cmd
}

func newStopCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [id]",
		Short: "Stop a timer",
		Long:  `Stop the timer with the given id, or every running timer when no id is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids []int64
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid id %q", args[0])
				}
				ids = append(ids, id)
			}

			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			if len(ids) == 0 {
				active, err := engine.TimeEntries.GetActiveTimers(cmd.Context())
				if err != nil {
					return fmt.Errorf("list active timers: %w", err)
				}
				for _, e := range active {
					ids = append(ids, e.ID)
				}
			}
			if len(ids) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No running timers.")
				return nil
			}

			for _, id := range ids {
				entry, err := engine.TimeEntries.StopTimer(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("stop timer %d: %w", id, err)
				}
				if err := c.printEntry(cmd, entry, "Stopped"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newActiveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List running timers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := engine.TimeEntries.GetActiveTimers(cmd.Context())
			if err != nil {
				return fmt.Errorf("list active timers: %w", err)
			}
			return c.printEntries(cmd, entries)
		},
	}
}

func newTodayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List today's entries with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := engine.TimeEntries.GetTodayEntries(cmd.Context())
			if err != nil {
				return fmt.Errorf("list today's entries: %w", err)
			}
			stats, err := engine.TimeEntries.GetTodayStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("today's stats: %w", err)
			}

			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Entries              []entryItem `json:"entries"`
					TotalEntries         int         `json:"totalEntries"`
					TotalHours           float64     `json:"totalHours"`
					AverageEntryDuration float64     `json:"averageEntryDuration"`
				}{toEntryItems(entries), stats.TotalEntries, stats.TotalHours, stats.AverageEntryDuration})
			}

			if err := c.printEntries(cmd, entries); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries, %.2f h, average %s\n",
				stats.TotalEntries, stats.TotalHours, formatDuration(int64(stats.AverageEntryDuration)))
			return err
		},
	}
}

func (c *cli) printEntries(cmd *cobra.Command, entries []domain.TimeEntry) error {
	if c.asJSON {
		return writeJSON(cmd.OutOrStdout(), toEntryItems(entries))
	}
	return printEntries(cmd.OutOrStdout(), entries, c.location(), time.Now())
}

func (c *cli) printEntry(cmd *cobra.Command, entry *domain.TimeEntry, verb string) error {
	if c.asJSON {
		return writeJSON(cmd.OutOrStdout(), toEntryItems([]domain.TimeEntry{*entry})[0])
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %q at %s\n",
		verb, entry.ID, entry.Description, entryTime(entry).In(c.location()).Format("15:04:05"))
	return err
}

func entryTime(e *domain.TimeEntry) time.Time {
	if e.End != nil {
		return *e.End
	}
	return e.Start
}

func (c *cli) location() *time.Location {
	if c.engine != nil {
		return c.engine.TimeEntries.Location()
	}
	if c.cfg != nil && c.cfg.Tracker.Location != nil {
		return c.cfg.Tracker.Location
	}
	return time.Local
}
