package models

import "time"

// Term represents one academic period
type Term struct {
	ID        string    `json:"termId" db:"term_id" example:"2025FA"`
	Name      string    `json:"termName" db:"term_name" example:"Fall 2025"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`

	// Billing calendar, not part of the terms file
	ChargeDate       time.Time `json:"-"`
	PaymentDate      time.Time `json:"-"`
	AidDisbursedDate time.Time `json:"-"`
}

// Days returns the whole number of days between start and end
func (t Term) Days() int {
	return int(t.EndDate.Sub(t.StartDate).Hours() / 24)
}

// Contains reports whether ts falls on a day of the term (end day included)
func (t Term) Contains(ts time.Time) bool {
	return !ts.Before(t.StartDate) && ts.Before(t.EndDate.AddDate(0, 0, 1))
}
