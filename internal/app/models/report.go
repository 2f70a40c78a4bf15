package models

import "time"

// RiskFlag names one at-risk indicator
type RiskFlag string

const (
	RiskLowEngagement RiskFlag = "low_engagement"
	RiskHighBalance   RiskFlag = "high_balance"
	RiskLowPriorGPA   RiskFlag = "low_prior_gpa"
	RiskNoAdvising    RiskFlag = "no_advising"
)

// RiskFlags lists the indicators in reporting order
var RiskFlags = []RiskFlag{RiskLowEngagement, RiskHighBalance, RiskLowPriorGPA, RiskNoAdvising}

// StudentTermSummary joins one student's records for one term
type StudentTermSummary struct {
	StudentID       int64      `json:"studentId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Program         string     `json:"program"`
	Major           string     `json:"major"`
	TermID          string     `json:"termId"`
	NumCourses      int        `json:"numCourses"`
	TotalUnits      int        `json:"totalUnits"`
	PriorTermGPA    *float64   `json:"priorTermGpa"` // nil without graded work in the preceding term
	EngagementCount int        `json:"engagementEvents"`
	TotalCharges    Money      `json:"totalCharges"`
	TotalPayments   Money      `json:"totalPayments"`
	Balance         Money      `json:"balance"`
	AdvisingCount   int        `json:"advisingCount"`
	LastAdvising    *time.Time `json:"lastAdvisingDate"`
}

// SectionSummary aggregates engagement per section for one term
type SectionSummary struct {
	SectionID        string   `json:"courseSectionId"`
	CourseID         string   `json:"courseId"`
	Title            string   `json:"title"`
	Subject          string   `json:"subject"`
	Modality         Modality `json:"modality"`
	EnrolledStudents int      `json:"enrolledStudents"`
	EventsPerStudent float64  `json:"eventsPerStudent"`
	CompletionRate   float64  `json:"completionRate"`
}

// TermKPIs are the headline figures of a term
type TermKPIs struct {
	TermID        string  `json:"termId"`
	Headcount     int     `json:"headcount"`
	AvgUnits      float64 `json:"avgUnits"`
	AvgCourses    float64 `json:"avgCourses"`
	AvgEngagement float64 `json:"avgEngagementEvents"`
	BalanceRate   float64 `json:"balanceRate"`
	AdvisingRate  float64 `json:"advisingRate"`
}

// AtRiskStudent is a term summary with the raised indicators
type AtRiskStudent struct {
	StudentTermSummary
	Flags []RiskFlag `json:"flags"`
}
