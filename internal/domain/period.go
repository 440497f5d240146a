package domain

// SummaryPeriod names a calendar-aligned summary window.
type SummaryPeriod string

const (
	SummaryPeriodDay   SummaryPeriod = "day"
	SummaryPeriodWeek  SummaryPeriod = "week"
	SummaryPeriodMonth SummaryPeriod = "month"
)

func (p SummaryPeriod) String() string { return string(p) }

func (p SummaryPeriod) IsValid() bool {
	switch p {
	case SummaryPeriodDay, SummaryPeriodWeek, SummaryPeriodMonth:
		return true
	}
	return false
}

// Summary is the dashboard rollup across all periods.
type Summary struct {
	DaySeconds     int64
	WeekSeconds    int64
	MonthSeconds   int64
	DayEntries     int
	WeekEntries    int
	MonthEntries   int
	ActiveProjects int
}
