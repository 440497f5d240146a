package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
	"github.com/heartmarshall/timetracker-backend/internal/service/timeentry"
)

// reportFlags holds the raw report flags; they are parsed once the
// tracker location is known.
type reportFlags struct {
	from, to  string
	projectID int64
}

func newReportCmd(c *cli) *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "List entries filtered by date range and project",
		Long: `List entries whose start falls within [--from, --to] (both required for
the date filter) and, optionally, belonging to --project.

Examples:
  trackctl report --from 2024-03-01 --to 2024-03-31
  trackctl report --project 3 --json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if (f.from == "") != (f.to == "") {
				return fmt.Errorf("--from and --to must be given together")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			filter, err := f.filter(cmd, cfg.Tracker.Location)
			if err != nil {
				return err
			}

			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := queryReport(cmd.Context(), engine.TimeEntries, filter)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			if err := c.printEntries(cmd, entries); err != nil {
				return err
			}

			if !c.asJSON {
				var total int64
				for i := range entries {
					total += entries[i].DurationSeconds()
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries, total %s\n", len(entries), formatDuration(total))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "Start of the range (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&f.to, "to", "", "End of the range, inclusive (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().Int64VarP(&f.projectID, "project", "p", 0, "Project id")
	return cmd
}

type reportSource interface {
	GetReportData(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error)
	GetEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)
	GetEntriesByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error)
}

// queryReport uses the single-criterion queries when only a range or only a
// project is given; a range with --from after --to is then rejected instead
// of matching nothing.
func queryReport(ctx context.Context, src reportSource, filter domain.ReportFilter) ([]domain.TimeEntry, error) {
	switch {
	case filter.HasDateRange() && filter.ProjectID == nil:
		return src.GetEntriesByDateRange(ctx, *filter.From, *filter.To)
	case !filter.HasDateRange() && filter.ProjectID != nil:
		return src.GetEntriesByProject(ctx, *filter.ProjectID)
	default:
		return src.GetReportData(ctx, filter)
	}
}

func (f reportFlags) filter(cmd *cobra.Command, loc *time.Location) (domain.ReportFilter, error) {
	var filter domain.ReportFilter

	if f.from != "" {
		from, err := parseFlagTime(f.from, loc)
		if err != nil {
			return filter, err
		}
		to, err := parseFlagTime(f.to, loc)
		if err != nil {
			return filter, err
		}
		filter.From, filter.To = &from, &to
	}
	if cmd.Flags().Changed("project") {
		id := f.projectID
		filter.ProjectID = &id
	}
	return filter, nil
}

func newSummaryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "summary [day|week|month]",
		Short:     "Print tracked totals for the current calendar periods",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"day", "week", "month"},
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return c.printPeriod(cmd, engine.TimeEntries, domain.SummaryPeriod(args[0]))
			}

			s, err := engine.TimeEntries.GetSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), summaryItem(s))
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, titleStyle.Render("Tracked time"))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "PERIOD\tTIME\tENTRIES")
			_, _ = fmt.Fprintf(tw, "day\t%s\t%d\n", formatDuration(s.DaySeconds), s.DayEntries)
			_, _ = fmt.Fprintf(tw, "week\t%s\t%d\n", formatDuration(s.WeekSeconds), s.WeekEntries)
			_, _ = fmt.Fprintf(tw, "month\t%s\t%d\n", formatDuration(s.MonthSeconds), s.MonthEntries)
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\n%d projects active this month\n", s.ActiveProjects)
			return err
		},
	}
}

type summaryJSON struct {
	DaySeconds     int64 `json:"daySeconds"`
	WeekSeconds    int64 `json:"weekSeconds"`
	MonthSeconds   int64 `json:"monthSeconds"`
	DayEntries     int   `json:"dayEntries"`
	WeekEntries    int   `json:"weekEntries"`
	MonthEntries   int   `json:"monthEntries"`
	ActiveProjects int   `json:"activeProjects"`
}

func summaryItem(s domain.Summary) summaryJSON {
	return summaryJSON(s)
}

func (c *cli) printPeriod(cmd *cobra.Command, svc *timeentry.Service, period domain.SummaryPeriod) error {
	ctx := cmd.Context()

	from, to, err := svc.SummaryWindow(period)
	if err != nil {
		return err
	}
	seconds, err := svc.GetSummaryStats(ctx, period)
	if err != nil {
		return fmt.Errorf("summary %s: %w", period, err)
	}
	entries, err := svc.GetSummaryEntryCount(ctx, period)
	if err != nil {
		return fmt.Errorf("summary %s: %w", period, err)
	}
	projects, err := svc.GetSummaryDistinctProjectsCount(ctx, period)
	if err != nil {
		return fmt.Errorf("summary %s: %w", period, err)
	}

	if c.asJSON {
		return writeJSON(cmd.OutOrStdout(), struct {
			Period           string    `json:"period"`
			From             time.Time `json:"from"`
			To               time.Time `json:"to"`
			Seconds          int64     `json:"seconds"`
			Entries          int       `json:"entries"`
			DistinctProjects int       `json:"distinctProjects"`
		}{period.String(), from, to, seconds, entries, projects})
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s to %s\n%s across %d entries in %d projects\n",
		titleStyle.Render("This "+period.String()),
		from.Format("2006-01-02 15:04"),
		to.Format("2006-01-02 15:04"),
		formatDuration(seconds), entries, projects)
	return err
}
