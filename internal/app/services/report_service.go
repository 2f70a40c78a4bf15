package services

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/app/repositories"
	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/pkg/helpers"
)

// RiskThresholds are the cut-offs of the at-risk indicators
type RiskThresholds struct {
	MinEngagementEvents int          // fewer events raise low_engagement
	MaxBalance          models.Money // a larger balance raises high_balance
	MinPriorGPA         float64      // a lower prior-term GPA raises low_prior_gpa
}

// DefaultRiskThresholds are the cut-offs used by the report API
var DefaultRiskThresholds = RiskThresholds{
	MinEngagementEvents: 25,
	MaxBalance:          models.Dollars(1000),
	MinPriorGPA:         2.0,
}

// StudentFilter narrows the students of a term report
type StudentFilter struct {
	Majors  []string // any of; empty means all
	Program string
	Query   string // digits match the student id exactly, anything else a name fragment
}

// ReportService defines the read-only report operations
type ReportService interface {
	ListTerms(ctx context.Context) []models.Term
	GetTermKPIs(ctx context.Context, termID string, filter StudentFilter) (*models.TermKPIs, error)
	GetStudentSummaries(ctx context.Context, termID string, filter StudentFilter, page, size int) ([]models.StudentTermSummary, int64, error)
	GetSectionSummaries(ctx context.Context, termID string) ([]models.SectionSummary, error)
	GetAtRiskStudents(ctx context.Context, termID string, filter StudentFilter, flags []models.RiskFlag) ([]models.AtRiskStudent, error)
}

// reportServiceImpl implements ReportService over an in-memory dataset
type reportServiceImpl struct {
	repo       *repositories.DatasetRepository
	thresholds RiskThresholds
}

// NewReportService creates a new report service
func NewReportService(repo *repositories.DatasetRepository, thresholds RiskThresholds) ReportService {
	return &reportServiceImpl{
		repo:       repo,
		thresholds: thresholds,
	}
}

// ListTerms returns the terms, latest first
func (s *reportServiceImpl) ListTerms(ctx context.Context) []models.Term {
	terms := s.repo.Terms()
	for i, j := 0, len(terms)-1; i < j; i, j = i+1, j-1 {
		terms[i], terms[j] = terms[j], terms[i]
	}
	return terms
}

// GetTermKPIs aggregates the filtered students of a term
func (s *reportServiceImpl) GetTermKPIs(ctx context.Context, termID string, filter StudentFilter) (*models.TermKPIs, error) {
	rows, err := s.filtered(termID, filter)
	if err != nil {
		return nil, err
	}

	kpis := &models.TermKPIs{TermID: termID, Headcount: len(rows)}
	if len(rows) == 0 {
		return kpis, nil
	}

	var units, courses, events, withBalance, advised int
	for _, r := range rows {
		units += r.TotalUnits
		courses += r.NumCourses
		events += r.EngagementCount
		if r.Balance > 0 {
			withBalance++
		}
		if r.AdvisingCount > 0 {
			advised++
		}
	}
	n := float64(len(rows))
	kpis.AvgUnits = round2(float64(units) / n)
	kpis.AvgCourses = round2(float64(courses) / n)
	kpis.AvgEngagement = round2(float64(events) / n)
	kpis.BalanceRate = round2(float64(withBalance) / n)
	kpis.AdvisingRate = round2(float64(advised) / n)
	return kpis, nil
}

// GetStudentSummaries returns one page of the filtered students and the total match count
func (s *reportServiceImpl) GetStudentSummaries(ctx context.Context, termID string, filter StudentFilter, page, size int) ([]models.StudentTermSummary, int64, error) {
	rows, err := s.filtered(termID, filter)
	if err != nil {
		return nil, 0, err
	}

	_, limit := helpers.CalculateOffsetLimit(page, size)
	start, end := helpers.CalculateSliceIndices(page, limit, len(rows))
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], int64(len(rows)), nil
}

// GetSectionSummaries returns the section summaries of a term
func (s *reportServiceImpl) GetSectionSummaries(ctx context.Context, termID string) ([]models.SectionSummary, error) {
	return s.repo.SectionSummaries(termID)
}

// GetAtRiskStudents returns the filtered students raising at least one
// indicator. When flags is non-empty a student must raise all of them.
func (s *reportServiceImpl) GetAtRiskStudents(ctx context.Context, termID string, filter StudentFilter, flags []models.RiskFlag) ([]models.AtRiskStudent, error) {
	rows, err := s.filtered(termID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.AtRiskStudent, 0)
	for _, r := range rows {
		raised := s.riskFlags(r)
		if len(raised) == 0 || !containsAll(raised, flags) {
			continue
		}
		out = append(out, models.AtRiskStudent{StudentTermSummary: r, Flags: raised})
	}
	return out, nil
}

func (s *reportServiceImpl) riskFlags(r models.StudentTermSummary) []models.RiskFlag {
	var flags []models.RiskFlag
	if r.EngagementCount < s.thresholds.MinEngagementEvents {
		flags = append(flags, models.RiskLowEngagement)
	}
	if r.Balance > s.thresholds.MaxBalance {
		flags = append(flags, models.RiskHighBalance)
	}
	if r.PriorTermGPA != nil && *r.PriorTermGPA < s.thresholds.MinPriorGPA {
		flags = append(flags, models.RiskLowPriorGPA)
	}
	if r.AdvisingCount == 0 {
		flags = append(flags, models.RiskNoAdvising)
	}
	return flags
}

func (s *reportServiceImpl) filtered(termID string, filter StudentFilter) ([]models.StudentTermSummary, error) {
	all, err := s.repo.StudentSummaries(termID)
	if err != nil {
		return nil, err
	}

	majors := make(map[string]bool, len(filter.Majors))
	for _, m := range filter.Majors {
		majors[m] = true
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	var studentID int64 = -1
	if query != "" && isDigits(query) {
		studentID, _ = strconv.ParseInt(query, 10, 64)
	}

	out := make([]models.StudentTermSummary, 0, len(all))
	for _, r := range all {
		if len(majors) > 0 && !majors[r.Major] {
			continue
		}
		if filter.Program != "" && r.Program != filter.Program {
			continue
		}
		if query != "" {
			if studentID >= 0 {
				if r.StudentID != studentID {
					continue
				}
			} else if !strings.Contains(strings.ToLower(r.FirstName), query) &&
				!strings.Contains(strings.ToLower(r.LastName), query) {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseRiskFlags parses a comma separated flag list. Unknown names are rejected.
func ParseRiskFlags(raw string) ([]models.RiskFlag, error) {
	var flags []models.RiskFlag
	for _, part := range SplitList(raw) {
		flag := models.RiskFlag(part)
		if !slices.Contains(models.RiskFlags, flag) {
			return nil, apperrors.NewBadRequestError("unknown risk flag: " + part)
		}
		flags = append(flags, flag)
	}
	return flags, nil
}

// SplitList splits a comma separated query value, dropping blanks
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAll(have, want []models.RiskFlag) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
