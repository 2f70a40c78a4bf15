package models

import "time"

// Advisor is an academic advisor
type Advisor struct {
	ID         string `json:"advisorId" db:"advisor_id" example:"ADV001"`
	Name       string `json:"advisorName" db:"advisor_name"`
	Department string `json:"department" db:"department"`
}

// Student defines the student record of the enrollment system
type Student struct {
	ID            int64         `json:"studentId" db:"student_id" example:"10000000"`
	FirstName     string        `json:"firstName" db:"first_name"`
	LastName      string        `json:"lastName" db:"last_name"`
	Email         string        `json:"email" db:"email"`
	DOB           time.Time     `json:"dob" db:"dob"`
	Gender        string        `json:"gender" db:"gender"`
	Ethnicity     string        `json:"ethnicity" db:"ethnicity"`
	Residency     string        `json:"residency" db:"residency"`
	Program       string        `json:"program" db:"program"`
	Major         string        `json:"major" db:"major"`
	AdmitTermID   string        `json:"admitTermId" db:"admit_term_id"`
	CurrentTermID string        `json:"currentTermId" db:"current_term_id"`
	ClassStanding ClassStanding `json:"classStanding" db:"class_standing"`
	AdvisorID     string        `json:"advisorId" db:"advisor_id"`
}
