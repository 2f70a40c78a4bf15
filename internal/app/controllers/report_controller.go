package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/student360/internal/app/models/dto"
	"github.com/yigit/student360/internal/app/services"
	"github.com/yigit/student360/internal/middleware"
	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/pkg/helpers"
	"github.com/yigit/student360/internal/pkg/validation"
)

// ReportController serves the read-only term reports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// termID returns the termId path parameter once it has the YYYY(SP|SU|FA) shape
func termID(ctx *gin.Context) (string, error) {
	id := ctx.Param("termId")
	if !validation.IsTermID(id) {
		return "", apperrors.NewValidationError("termId", "expected a term id such as 2025FA, got "+id)
	}
	return id, nil
}

// studentFilter reads the major, program and q query parameters
func studentFilter(ctx *gin.Context) (services.StudentFilter, error) {
	q := ctx.Query("q")
	if !validation.IsSearchQuery(q) {
		return services.StudentFilter{}, apperrors.NewValidationError("q", "query is too long")
	}
	return services.StudentFilter{
		Majors:  services.SplitList(ctx.Query("major")),
		Program: ctx.Query("program"),
		Query:   q,
	}, nil
}

// termRequest reads the term id and the student filter of a report request
func termRequest(ctx *gin.Context) (string, services.StudentFilter, error) {
	id, err := termID(ctx)
	if err != nil {
		return "", services.StudentFilter{}, err
	}
	filter, err := studentFilter(ctx)
	return id, filter, err
}

// GetTerms lists the terms
// @Summary List terms
// @Description Lists every term, latest first
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TermResponse} "Terms retrieved successfully"
// @Router /terms [get]
func (c *ReportController) GetTerms(ctx *gin.Context) {
	terms := c.reportService.ListTerms(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromTerms(terms)))
}

// GetTermKPIs returns the headline figures of a term
// @Summary Term KPIs
// @Description Headcount, average units, courses and engagement, balance and advising rates
// @Tags reports
// @Produce json
// @Param termId path string true "Term ID"
// @Param major query string false "Comma separated majors"
// @Param q query string false "Student id or name fragment"
// @Success 200 {object} dto.APIResponse{data=models.TermKPIs} "KPIs computed"
// @Failure 400 {object} dto.ErrorResponse "Malformed term id"
// @Failure 404 {object} dto.ErrorResponse "Term not found"
// @Router /terms/{termId}/kpis [get]
func (c *ReportController) GetTermKPIs(ctx *gin.Context) {
	id, filter, err := termRequest(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	kpis, err := c.reportService.GetTermKPIs(ctx, id, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(kpis))
}

// GetStudents returns a page of student term summaries
// @Summary Student term summaries
// @Description Units, courses, prior-term GPA, engagement, account and advising per student
// @Tags reports
// @Produce json
// @Param termId path string true "Term ID"
// @Param major query string false "Comma separated majors"
// @Param program query string false "Program"
// @Param q query string false "Student id or name fragment"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(25)
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentSummaryResponse} "Summaries retrieved"
// @Failure 400 {object} dto.ErrorResponse "Malformed term id"
// @Failure 404 {object} dto.ErrorResponse "Term not found"
// @Router /terms/{termId}/students [get]
func (c *ReportController) GetStudents(ctx *gin.Context) {
	id, filter, err := termRequest(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	rows, total, err := c.reportService.GetStudentSummaries(ctx, id, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:    true,
		Data:       dto.FromStudentSummaries(rows),
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetSections returns the section engagement summary of a term
// @Summary Section summary
// @Description Enrolled students, events per student and on-time completion rate per section
// @Tags reports
// @Produce json
// @Param termId path string true "Term ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.SectionSummaryResponse} "Sections retrieved"
// @Failure 400 {object} dto.ErrorResponse "Malformed term id"
// @Failure 404 {object} dto.ErrorResponse "Term not found"
// @Router /terms/{termId}/sections [get]
func (c *ReportController) GetSections(ctx *gin.Context) {
	id, err := termID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.GetSectionSummaries(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromSectionSummaries(rows)))
}

// GetAtRisk returns the students raising risk indicators
// @Summary At-risk students
// @Description Students with low engagement, high balance, low prior GPA or no advising
// @Tags reports
// @Produce json
// @Param termId path string true "Term ID"
// @Param flags query string false "Comma separated flags that must all be raised"
// @Param major query string false "Comma separated majors"
// @Success 200 {object} dto.APIResponse{data=[]dto.AtRiskStudentResponse} "At-risk students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Unknown flag or malformed term id"
// @Failure 404 {object} dto.ErrorResponse "Term not found"
// @Router /terms/{termId}/at-risk [get]
func (c *ReportController) GetAtRisk(ctx *gin.Context) {
	id, filter, err := termRequest(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	flags, err := services.ParseRiskFlags(ctx.Query("flags"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows, err := c.reportService.GetAtRiskStudents(ctx, id, filter, flags)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromAtRiskStudents(rows)))
}
