package models

import "time"

// FiscalYear maps the fiscal_years table.
type FiscalYear struct {
	FiscalYearID string
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	IsCurrent    bool
	IsLocked     bool
	AuditFields
}

// AccountingPeriod maps the accounting_periods table.
type AccountingPeriod struct {
	PeriodID     string
	FiscalYearID string
	Name         string
	Type         string
	StartDate    time.Time
	EndDate      time.Time
	IsClosed     bool
	Sequence     int
	AuditFields
}
