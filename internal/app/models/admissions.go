package models

import "time"

// Application is a student's admission application
type Application struct {
	StudentID     int64     `json:"studentId" db:"student_id"`
	ApplicationID string    `json:"applicationId" db:"application_id"`
	AppTermID     string    `json:"appTermId" db:"app_term_id"`
	CompletedDate time.Time `json:"appCompleteDt" db:"app_complete_dt"`
	Decision      string    `json:"decision" db:"decision"`
	DecisionDate  time.Time `json:"decisionDt" db:"decision_dt"`
	DepositFlag   Flag      `json:"depositFlag" db:"deposit_flag"`
}

// TestScore is a standardized test result
type TestScore struct {
	StudentID int64     `json:"studentId" db:"student_id"`
	TestType  string    `json:"testType" db:"test_type"`
	TestDate  time.Time `json:"testDate" db:"test_date"`
	Score     int       `json:"score" db:"score"`
}
