package models

import "time"

// Appointment is an advising meeting
type Appointment struct {
	ID        string    `json:"appointmentId" db:"appointment_id" example:"APT0000001"`
	StudentID int64     `json:"studentId" db:"student_id"`
	AdvisorID string    `json:"advisorId" db:"advisor_id"`
	Date      time.Time `json:"appointmentDt" db:"appointment_dt"`
	Outcome   string    `json:"outcome" db:"outcome"`
}

// Note is an advisor's note taken at an appointment
type Note struct {
	ID        string    `json:"noteId" db:"note_id" example:"NOTE0000001"`
	StudentID int64     `json:"studentId" db:"student_id"`
	AdvisorID string    `json:"advisorId" db:"advisor_id"`
	Date      time.Time `json:"noteDt" db:"note_dt"`
	Category  string    `json:"category" db:"category"`
	RiskFlag  Flag      `json:"riskFlag" db:"risk_flag"`
}
