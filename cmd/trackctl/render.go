package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// entryItem is the JSON form of a time entry.
type entryItem struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
	ProjectID   *int64     `json:"projectId,omitempty"`
	Project     string     `json:"project,omitempty"`
}

func toEntryItems(entries []domain.TimeEntry) []entryItem {
	items := make([]entryItem, 0, len(entries))
	for _, e := range entries {
		item := entryItem{
			ID:          e.ID,
			Description: e.Description,
			Start:       e.Start,
			End:         e.End,
			Duration:    e.Duration,
			ProjectID:   e.ProjectID,
		}
		if e.Project != nil {
			item.Project = e.Project.Name
		}
		items = append(items, item)
	}
	return items
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatDuration renders seconds as H:MM:SS.
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

// swatch renders a colored dot for a project color such as "#3b82f6".
func swatch(color string) string {
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// printEntries writes entries as a table in loc. Running timers show the
// time elapsed until now. The project column stays last: its color swatch
// carries escape codes that tabwriter counts as width.
func printEntries(w io.Writer, entries []domain.TimeEntry, loc *time.Location, now time.Time) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTART\tEND\tDURATION\tDESCRIPTION\tPROJECT")

	for _, e := range entries {
		end := "-"
		duration := formatDuration(e.DurationSeconds())
		if e.End != nil {
			end = e.End.In(loc).Format("2006-01-02 15:04")
		}
		if e.IsActive() {
			duration = formatDuration(int64(now.Sub(e.Start).Seconds())) + " (running)"
		}

		project := "-"
		if e.Project != nil {
			project = swatch(e.Project.Color) + " " + e.Project.Name
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Start.In(loc).Format("2006-01-02 15:04"),
			end,
			duration,
			e.Description,
			project,
		)
	}
	return tw.Flush()
}

// parseFlagTime accepts RFC 3339 or a plain date in loc.
func parseFlagTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
