package domain

import "time"

// TimeEntry is a tracked span of work. An entry without End is a running timer.
type TimeEntry struct {
	ID          int64
	Description string
	Start       time.Time
	End         *time.Time
	Duration    *int64 // seconds
	ProjectID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Project is the joined project row; nil when ProjectID is nil or the
	// project no longer exists.
	Project *Project
}

// IsActive reports whether the entry is a running timer.
func (e *TimeEntry) IsActive() bool {
	return e.End == nil
}

// DurationSeconds returns the stored duration, or 0 for entries without one.
func (e *TimeEntry) DurationSeconds() int64 {
	if e.Duration == nil {
		return 0
	}
	return *e.Duration
}

// TimeEntryUpdateParams holds the columns to change on an existing entry.
// nil fields are left untouched.
type TimeEntryUpdateParams struct {
	Description *string
	Start       *time.Time
	End         *time.Time
	Duration    *int64
	ProjectID   *int64
}

// IsEmpty reports whether no column would change.
func (p TimeEntryUpdateParams) IsEmpty() bool {
	return p.Description == nil && p.Start == nil && p.End == nil &&
		p.Duration == nil && p.ProjectID == nil
}

// ReportFilter narrows the report query. The date range applies only when
// both bounds are set.
type ReportFilter struct {
	From      *time.Time
	To        *time.Time
	ProjectID *int64
}

// HasDateRange reports whether both bounds are present.
func (f ReportFilter) HasDateRange() bool {
	return f.From != nil && f.To != nil
}

// IsEmpty reports whether the filter carries no criteria at all.
func (f ReportFilter) IsEmpty() bool {
	return f.From == nil && f.To == nil && f.ProjectID == nil
}

// TodayStats summarises the entries started today.
type TodayStats struct {
	TotalEntries         int
	TotalHours           float64
	AverageEntryDuration float64 // seconds
}
