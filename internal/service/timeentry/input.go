package timeentry

import (
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// Field names reported in validation errors. They match the JSON payload keys.
const (
	FieldDescription = "description"
	FieldProjectID   = "projectId"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldDuration    = "duration"
	FieldPeriod      = "period"
)

const (
	msgInvalidEntry     = "Invalid time entry"
	msgDescriptionEmpty = "Task name cannot be empty"
	msgProjectRequired  = "Project must be selected"
	msgStartRequired    = "Start time is required"
	msgStartInvalid     = "Start time is invalid"
	msgEndInvalid       = "End time is invalid"
	msgStartAfterEnd    = "Start time cannot be after end time"
	msgDurationPositive = "Time duration must be > 0"
	msgDurationNegative = "Time duration cannot be negative"
	msgDurationFraction = "Time duration must be a whole number of seconds"
	msgDurationTooLarge = "Time duration is too large"
	msgUnknownPeriod    = "Period must be one of day, week, month"
)

// maxDurationSeconds is the largest supplied duration that still fits the
// BIGINT column; float64(math.MaxInt64) rounds up to 2^63.
const maxDurationSeconds = float64(math.MaxInt64)

// CreateInput holds the parameters for creating a time entry.
//
// Timestamps are pointers: nil means "not supplied". A non-nil zero time.Time
// means the caller supplied a value that could not be parsed.
type CreateInput struct {
	Description string
	Start       *time.Time
	End         *time.Time
	Duration    *float64 // seconds
	ProjectID   *int64
}

// Validate checks every field, derives the duration from start/end when it
// was not supplied, and returns the entry ready to be stored. On failure the
// error is a *domain.ValidationError listing every failed field.
func (i CreateInput) Validate() (domain.TimeEntry, error) {
	var errs domain.FieldErrors

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs.Set(FieldDescription, msgDescriptionEmpty)
	}

	if i.ProjectID == nil {
		errs.Set(FieldProjectID, msgProjectRequired)
	}

	startOK := validInstant(i.Start)
	if !startOK {
		errs.Set(FieldStart, msgStartRequired)
	}

	endOK := validInstant(i.End)
	if i.End != nil && !endOK {
		errs.Set(FieldEnd, msgEndInvalid)
	}

	if startOK && endOK && i.Start.After(*i.End) {
		errs.Set(FieldEnd, msgStartAfterEnd)
	}

	var duration *int64
	switch {
	case i.Duration != nil:
		duration = checkSuppliedDuration(*i.Duration, &errs)
	case startOK && endOK:
		duration = checkDerivedDuration(deriveDuration(*i.Start, *i.End), &errs)
	case i.End != nil:
		// An end without a computable duration cannot describe a completed entry.
		errs.Set(FieldDuration, msgDurationPositive)
	}

	if err := errs.Err(msgInvalidEntry); err != nil {
		return domain.TimeEntry{}, err
	}

	entry := domain.TimeEntry{
		Description: description,
		Start:       *i.Start,
		Duration:    duration,
		ProjectID:   i.ProjectID,
	}
	if i.End != nil {
		end := *i.End
		entry.End = &end
	}
	return entry, nil
}

// OptionalID tells an absent field apart from an explicit null.
type OptionalID struct {
	Set   bool // the caller supplied the field
	Valid bool // the supplied value is not null
	ID    int64
}

// SomeID returns a supplied, non-null OptionalID.
func SomeID(id int64) OptionalID {
	return OptionalID{Set: true, Valid: true, ID: id}
}

// NullID returns an OptionalID that was supplied as an explicit null.
func NullID() OptionalID {
	return OptionalID{Set: true}
}

// IsNull reports whether the field was supplied as an explicit null.
func (o OptionalID) IsNull() bool {
	return o.Set && !o.Valid
}

// UpdateInput holds a partial update. nil / unset fields stay untouched.
type UpdateInput struct {
	Description *string
	Start       *time.Time
	End         *time.Time
	Duration    *float64 // seconds
	ProjectID   OptionalID
}

// needsStoredEntry reports whether validation depends on the entry's stored
// start or end: exactly one bound is being changed.
func (i UpdateInput) needsStoredEntry() bool {
	return (i.Start == nil) != (i.End == nil)
}

// Validate checks the supplied fields against the stored entry (which may be
// nil when it was not needed) and returns the columns to update.
func (i UpdateInput) Validate(stored *domain.TimeEntry) (domain.TimeEntryUpdateParams, error) {
	var errs domain.FieldErrors
	var params domain.TimeEntryUpdateParams

	if i.Description != nil {
		description := strings.TrimSpace(*i.Description)
		if description == "" {
			errs.Set(FieldDescription, msgDescriptionEmpty)
		} else {
			params.Description = &description
		}
	}

	if i.ProjectID.IsNull() {
		errs.Set(FieldProjectID, msgProjectRequired)
	} else if i.ProjectID.Set {
		params.ProjectID = ptr(i.ProjectID.ID)
	}

	if i.Start != nil {
		if validInstant(i.Start) {
			params.Start = ptr(*i.Start)
		} else {
			errs.Set(FieldStart, msgStartInvalid)
		}
	}

	if i.End != nil {
		if validInstant(i.End) {
			params.End = ptr(*i.End)
		} else {
			errs.Set(FieldEnd, msgEndInvalid)
		}
	}

	// Effective bounds: this update's value, else the stored one.
	effStart := params.Start
	if i.Start == nil && stored != nil {
		effStart = ptr(stored.Start)
	}
	effEnd := params.End
	if i.End == nil && stored != nil && stored.End != nil {
		effEnd = ptr(*stored.End)
	}

	switch {
	case i.Duration != nil:
		params.Duration = checkSuppliedDuration(*i.Duration, &errs)
	case params.End != nil && effStart != nil:
		params.Duration = checkDerivedDuration(deriveDuration(*effStart, *params.End), &errs)
	}

	if effStart != nil && effEnd != nil && effStart.After(*effEnd) {
		errs.Set(FieldEnd, msgStartAfterEnd)
	}

	if err := errs.Err(msgInvalidEntry); err != nil {
		return domain.TimeEntryUpdateParams{}, err
	}
	return params, nil
}

// validInstant reports whether t was supplied and parsed.
func validInstant(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// deriveDuration returns the whole seconds between start and end, rounded down.
func deriveDuration(start, end time.Time) int64 {
	return int64(math.Floor(end.Sub(start).Seconds()))
}

func checkSuppliedDuration(d float64, errs *domain.FieldErrors) *int64 {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		errs.Set(FieldDuration, msgDurationPositive)
		if d < 0 {
			errs.Set(FieldDuration, msgDurationNegative)
		}
		return nil
	}
	if d != math.Trunc(d) {
		errs.Set(FieldDuration, msgDurationFraction)
		return nil
	}
	if d >= maxDurationSeconds {
		errs.Set(FieldDuration, msgDurationTooLarge)
		return nil
	}
	return ptr(int64(d))
}

func checkDerivedDuration(d int64, errs *domain.FieldErrors) *int64 {
	if d <= 0 {
		errs.Set(FieldDuration, msgDurationPositive)
		if d < 0 {
			errs.Set(FieldDuration, msgDurationNegative)
		}
		return nil
	}
	return &d
}
