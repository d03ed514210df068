package domain

import "time"

// PeriodType selects the interval used when generating accounting periods.
type PeriodType string

const (
	PeriodMonth    PeriodType = "MONTH"
	PeriodQuarter  PeriodType = "QUARTER"
	PeriodSemester PeriodType = "SEMESTER"
)

// Months returns the interval length for the period type, or 0 for an
// unknown type.
func (t PeriodType) Months() int {
	switch t {
	case PeriodMonth:
		return 1
	case PeriodQuarter:
		return 3
	case PeriodSemester:
		return 6
	default:
		return 0
	}
}

// FiscalYear is a bookkeeping year. At most one fiscal year is current at a
// time; locking a year is terminal.
type FiscalYear struct {
	FiscalYearID string    `json:"fiscalYearID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsCurrent    bool      `json:"isCurrent"`
	IsLocked     bool      `json:"isLocked"`
	AuditFields
}

// AccountingPeriod is one slice of a fiscal year. Periods generated for a
// year partition [StartDate, EndDate] contiguously, ordered by Sequence.
type AccountingPeriod struct {
	PeriodID     string     `json:"periodID"` // Primary Key (UUID)
	FiscalYearID string     `json:"fiscalYearID"`
	Name         string     `json:"name"`
	Type         PeriodType `json:"type"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsClosed     bool       `json:"isClosed"`
	Sequence     int        `json:"sequence"` // 1-based within the fiscal year
	AuditFields
}
