package dto

import (
	"github.com/yigit/student360/internal/app/models"
)

// dateLayout matches the date columns of the exported files
const dateLayout = "2006-01-02"

// TermResponse represents a term in API responses
type TermResponse struct {
	TermID    string `json:"termId" example:"2025FA"`
	TermName  string `json:"termName" example:"Fall 2025"`
	StartDate string `json:"startDate" example:"2025-08-25"`
	EndDate   string `json:"endDate" example:"2025-12-12"`
}

// StudentSummaryResponse represents one student's term summary
type StudentSummaryResponse struct {
	StudentID        int64    `json:"studentId" example:"10000042"`
	FirstName        string   `json:"firstName" example:"Maria"`
	LastName         string   `json:"lastName" example:"Nguyen"`
	Program          string   `json:"program" example:"BS"`
	Major            string   `json:"major" example:"Computer Science"`
	TermID           string   `json:"termId" example:"2025FA"`
	NumCourses       int      `json:"numCourses" example:"4"`
	TotalUnits       int      `json:"totalUnits" example:"13"`
	PriorTermGPA     *float64 `json:"priorTermGpa" example:"3.12"`
	EngagementEvents int      `json:"engagementEvents" example:"24"`
	TotalCharges     float64  `json:"totalCharges" example:"5525.00"`
	TotalPayments    float64  `json:"totalPayments" example:"4200.00"`
	Balance          float64  `json:"balance" example:"1325.00"`
	AdvisingCount    int      `json:"advisingCount" example:"2"`
	LastAdvisingDate *string  `json:"lastAdvisingDate" example:"2025-09-14"`
}

// AtRiskStudentResponse is a student summary with its raised risk flags
type AtRiskStudentResponse struct {
	StudentSummaryResponse
	Flags []models.RiskFlag `json:"flags" example:"low_engagement,no_advising"`
}

// SectionSummaryResponse represents engagement for one section
type SectionSummaryResponse struct {
	SectionID        string  `json:"courseSectionId" example:"CS101-2025FA-S01"`
	CourseID         string  `json:"courseId" example:"CS101"`
	Title            string  `json:"title" example:"CS Foundations"`
	Subject          string  `json:"subject" example:"CS"`
	Modality         string  `json:"modality" example:"HYBRID"`
	EnrolledStudents int     `json:"enrolledStudents" example:"31"`
	EventsPerStudent float64 `json:"eventsPerStudent" example:"6.2"`
	CompletionRate   float64 `json:"completionRate" example:"0.74"`
}

// FromTerm converts a models.Term to a TermResponse
func FromTerm(t models.Term) TermResponse {
	return TermResponse{
		TermID:    t.ID,
		TermName:  t.Name,
		StartDate: t.StartDate.Format(dateLayout),
		EndDate:   t.EndDate.Format(dateLayout),
	}
}

// FromTerms converts a list of terms
func FromTerms(terms []models.Term) []TermResponse {
	out := make([]TermResponse, len(terms))
	for i, t := range terms {
		out[i] = FromTerm(t)
	}
	return out
}

// FromStudentSummary converts a models.StudentTermSummary to its response
func FromStudentSummary(s models.StudentTermSummary) StudentSummaryResponse {
	resp := StudentSummaryResponse{
		StudentID:        s.StudentID,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		Program:          s.Program,
		Major:            s.Major,
		TermID:           s.TermID,
		NumCourses:       s.NumCourses,
		TotalUnits:       s.TotalUnits,
		PriorTermGPA:     s.PriorTermGPA,
		EngagementEvents: s.EngagementCount,
		TotalCharges:     s.TotalCharges.Float(),
		TotalPayments:    s.TotalPayments.Float(),
		Balance:          s.Balance.Float(),
		AdvisingCount:    s.AdvisingCount,
	}
	if s.LastAdvising != nil {
		d := s.LastAdvising.Format(dateLayout)
		resp.LastAdvisingDate = &d
	}
	return resp
}

// FromStudentSummaries converts a list of student summaries
func FromStudentSummaries(rows []models.StudentTermSummary) []StudentSummaryResponse {
	out := make([]StudentSummaryResponse, len(rows))
	for i, r := range rows {
		out[i] = FromStudentSummary(r)
	}
	return out
}

// FromAtRiskStudents converts a list of at-risk students
func FromAtRiskStudents(rows []models.AtRiskStudent) []AtRiskStudentResponse {
	out := make([]AtRiskStudentResponse, len(rows))
	for i, r := range rows {
		out[i] = AtRiskStudentResponse{
			StudentSummaryResponse: FromStudentSummary(r.StudentTermSummary),
			Flags:                  r.Flags,
		}
	}
	return out
}

// FromSectionSummaries converts a list of section summaries
func FromSectionSummaries(rows []models.SectionSummary) []SectionSummaryResponse {
	out := make([]SectionSummaryResponse, len(rows))
	for i, r := range rows {
		out[i] = SectionSummaryResponse{
			SectionID:        r.SectionID,
			CourseID:         r.CourseID,
			Title:            r.Title,
			Subject:          r.Subject,
			Modality:         string(r.Modality),
			EnrolledStudents: r.EnrolledStudents,
			EventsPerStudent: r.EventsPerStudent,
			CompletionRate:   r.CompletionRate,
		}
	}
	return out
}
