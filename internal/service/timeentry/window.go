package timeentry

import (
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// Window returns the half-open interval [from, to) of the calendar period that
// contains now, in loc. Weeks start on Monday. Boundaries are built with
// time.Date so days that are not 24h long (DST) are handled.
func Window(period domain.SummaryPeriod, now time.Time, loc *time.Location) (from, to time.Time, err error) {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	y, m, d := now.Date()

	switch period {
	case domain.SummaryPeriodDay:
		from = time.Date(y, m, d, 0, 0, 0, 0, loc)
		to = time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	case domain.SummaryPeriodWeek:
		diffToMonday := (int(now.Weekday()) + 6) % 7
		from = time.Date(y, m, d-diffToMonday, 0, 0, 0, 0, loc)
		to = time.Date(y, m, d-diffToMonday+7, 0, 0, 0, 0, loc)
	case domain.SummaryPeriodMonth:
		from = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		to = time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	default:
		return time.Time{}, time.Time{}, domain.NewValidationError(FieldPeriod, msgUnknownPeriod)
	}
	return from, to, nil
}
