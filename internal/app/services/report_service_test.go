package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/app/repositories"
	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/pkg/helpers"
	"github.com/yigit/student360/internal/seed"
)

const (
	ada   int64 = 10000000
	alan  int64 = 10000001
	grace int64 = 10000002

	fall   = "2024FA"
	spring = "2025SP"

	csFall     = "CS101-2024FA-S01"
	csSpring   = "CS101-2025SP-S01"
	mathSpring = "MATH201-2025SP-S01"
)

func points(v float64) *float64 { return &v }

func events(student int64, section string, n int) []models.LMSEvent {
	out := make([]models.LMSEvent, n)
	for i := range out {
		out[i] = models.LMSEvent{
			StudentID:   student,
			LMSCourseID: seed.LMSCourseID(section),
			Timestamp:   helpers.Date(2025, 2, 1),
			EventType:   "login",
		}
	}
	return out
}

func submissions(student int64, section string, late ...models.Flag) []models.Submission {
	out := make([]models.Submission, len(late))
	for i, f := range late {
		out[i] = models.Submission{
			StudentID:   student,
			LMSCourseID: seed.LMSCourseID(section),
			Score:       80,
			MaxScore:    100,
			LateFlag:    f,
		}
	}
	return out
}

// fixture is a two-term dataset small enough to aggregate by hand
func fixture() *seed.Dataset {
	ds := &seed.Dataset{
		Terms: []models.Term{
			{ID: fall, Name: "Fall 2024", StartDate: helpers.Date(2024, 8, 26), EndDate: helpers.Date(2024, 12, 13)},
			{ID: spring, Name: "Spring 2025", StartDate: helpers.Date(2025, 1, 13), EndDate: helpers.Date(2025, 5, 9)},
		},
		Courses: []models.Course{
			{ID: "CS101", Subject: "CS", CatalogNbr: "101", Title: "CS Foundations", Units: 3},
			{ID: "MATH201", Subject: "MATH", CatalogNbr: "201", Title: "MATH Methods", Units: 4},
		},
		Sections: []models.Section{
			{ID: csFall, CourseID: "CS101", TermID: fall, SectionNbr: 1, Modality: models.ModalityInPerson},
			{ID: csSpring, CourseID: "CS101", TermID: spring, SectionNbr: 1, Modality: models.ModalityOnline},
			{ID: mathSpring, CourseID: "MATH201", TermID: spring, SectionNbr: 1, Modality: models.ModalityHybrid},
		},
		Students: []models.Student{
			{ID: ada, FirstName: "Ada", LastName: "Lovelace", Program: "BS", Major: "Computer Science"},
			{ID: alan, FirstName: "Alan", LastName: "Turing", Program: "BS", Major: "Mathematics"},
			{ID: grace, FirstName: "Grace", LastName: "Hopper", Program: "MS", Major: "Computer Science"},
		},
		Enrollments: []models.Enrollment{
			{StudentID: ada, SectionID: csFall, TermID: fall, Status: models.StatusCompleted, GradeLetter: "D", GradePoints: points(1.0)},
			{StudentID: grace, SectionID: csFall, TermID: fall, Status: models.StatusCompleted, GradeLetter: "A", GradePoints: points(4.0)},
			{StudentID: ada, SectionID: csSpring, TermID: spring, Status: models.StatusEnrolled},
			{StudentID: ada, SectionID: mathSpring, TermID: spring, Status: models.StatusEnrolled},
			{StudentID: alan, SectionID: mathSpring, TermID: spring, Status: models.StatusEnrolled},
		},
		Accounts: []models.StudentAccount{
			{StudentID: ada, TermID: spring, TotalCharges: models.Dollars(5000), TotalPayments: models.Dollars(3500), Balance: models.Dollars(1500)},
			{StudentID: alan, TermID: spring, TotalCharges: models.Dollars(4000), TotalPayments: models.Dollars(4000), Balance: 0},
		},
		Appointments: []models.Appointment{
			{ID: "APT0000001", StudentID: ada, AdvisorID: "ADV001", Date: helpers.Date(2025, 2, 10)},
			{ID: "APT0000002", StudentID: ada, AdvisorID: "ADV001", Date: helpers.Date(2025, 6, 1)},
		},
	}
	ds.LMSEvents = append(events(ada, csSpring, 30), events(alan, mathSpring, 10)...)
	ds.Submissions = append(
		submissions(ada, csSpring, models.FlagNo, models.FlagNo, models.FlagNo, models.FlagNo),
		submissions(alan, mathSpring, models.FlagNo, models.FlagYes, models.FlagNo, models.FlagYes)...,
	)
	return ds
}

func newService() ReportService {
	return NewReportService(repositories.NewDatasetRepository(fixture()), DefaultRiskThresholds)
}

func TestListTermsLatestFirst(t *testing.T) {
	svc := newService()
	terms := svc.ListTerms(context.Background())
	require.Len(t, terms, 2)
	assert.Equal(t, spring, terms[0].ID)
	assert.Equal(t, fall, terms[1].ID)

	// reversing must not reorder the repository's terms
	again := svc.ListTerms(context.Background())
	assert.Equal(t, spring, again[0].ID)
}

func TestGetTermKPIs(t *testing.T) {
	kpis, err := newService().GetTermKPIs(context.Background(), spring, StudentFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.TermKPIs{
		TermID:        spring,
		Headcount:     2,
		AvgUnits:      5.5,
		AvgCourses:    1.5,
		AvgEngagement: 20,
		BalanceRate:   0.5,
		AdvisingRate:  0.5,
	}, *kpis)
}

func TestGetTermKPIsFiltered(t *testing.T) {
	kpis, err := newService().GetTermKPIs(context.Background(), spring, StudentFilter{Majors: []string{"Mathematics"}})
	require.NoError(t, err)
	assert.Equal(t, 1, kpis.Headcount)
	assert.Equal(t, 4.0, kpis.AvgUnits)
	assert.Equal(t, 0.0, kpis.AdvisingRate)

	empty, err := newService().GetTermKPIs(context.Background(), spring, StudentFilter{Majors: []string{"History"}})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Headcount)
	assert.Zero(t, empty.AvgUnits)
}

func TestUnknownTermIsNotFound(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GetTermKPIs(ctx, "2031FA", StudentFilter{})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	_, _, err = svc.GetStudentSummaries(ctx, "2031FA", StudentFilter{}, 1, 10)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	_, err = svc.GetSectionSummaries(ctx, "2031FA")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	_, err = svc.GetAtRiskStudents(ctx, "2031FA", StudentFilter{}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestStudentSummariesAggregates(t *testing.T) {
	rows, total, err := newService().GetStudentSummaries(context.Background(), spring, StudentFilter{}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	a := rows[0]
	assert.Equal(t, ada, a.StudentID)
	assert.Equal(t, 2, a.NumCourses)
	assert.Equal(t, 7, a.TotalUnits)
	require.NotNil(t, a.PriorTermGPA)
	assert.Equal(t, 1.0, *a.PriorTermGPA)
	assert.Equal(t, 30, a.EngagementCount)
	assert.Equal(t, models.Dollars(5000), a.TotalCharges)
	assert.Equal(t, models.Dollars(3500), a.TotalPayments)
	assert.Equal(t, models.Dollars(1500), a.Balance)
	assert.Equal(t, 1, a.AdvisingCount, "appointments after the term end are ignored")
	require.NotNil(t, a.LastAdvising)
	assert.Equal(t, helpers.Date(2025, 2, 10), *a.LastAdvising)

	b := rows[1]
	assert.Equal(t, alan, b.StudentID)
	assert.Nil(t, b.PriorTermGPA)
	assert.Equal(t, 10, b.EngagementCount)
	assert.Zero(t, b.AdvisingCount)
	assert.Nil(t, b.LastAdvising)
}

func TestStudentSummariesFirstTermHasNoPriorGPA(t *testing.T) {
	rows, _, err := newService().GetStudentSummaries(context.Background(), fall, StudentFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Nil(t, r.PriorTermGPA)
		assert.Zero(t, r.Balance, "no account in the first term")
	}
}

func TestStudentSummariesFilters(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	ids := func(termID string, f StudentFilter) []int64 {
		rows, _, err := svc.GetStudentSummaries(ctx, termID, f, 1, 10)
		require.NoError(t, err)
		out := make([]int64, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.StudentID)
		}
		return out
	}

	assert.Equal(t, []int64{ada}, ids(spring, StudentFilter{Majors: []string{"Computer Science"}}))
	assert.Equal(t, []int64{ada, alan}, ids(spring, StudentFilter{Majors: []string{"Computer Science", "Mathematics"}}))
	assert.Equal(t, []int64{alan}, ids(spring, StudentFilter{Query: "tur"}))
	assert.Equal(t, []int64{alan}, ids(spring, StudentFilter{Query: "ALAN"}))
	assert.Equal(t, []int64{alan}, ids(spring, StudentFilter{Query: "10000001"}))
	assert.Empty(t, ids(spring, StudentFilter{Query: "1000000"}), "ids match exactly")
	assert.Equal(t, []int64{grace}, ids(fall, StudentFilter{Program: "MS"}))
}

func TestStudentSummariesPagination(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	page1, total, err := svc.GetStudentSummaries(ctx, spring, StudentFilter{}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page1, 1)
	assert.Equal(t, ada, page1[0].StudentID)

	page2, _, err := svc.GetStudentSummaries(ctx, spring, StudentFilter{}, 2, 1)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, alan, page2[0].StudentID)

	page3, total, err := svc.GetStudentSummaries(ctx, spring, StudentFilter{}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, page3)
}

func TestStudentSummariesHugePageIsEmpty(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, page := range []int{math.MaxInt64/25 + 7, math.MaxInt64, 1 << 62} {
		rows, total, err := svc.GetStudentSummaries(ctx, spring, StudentFilter{}, page, 25)
		require.NoError(t, err, "page %d", page)
		assert.Equal(t, int64(2), total)
		assert.Empty(t, rows, "page %d", page)
	}
}

func TestSectionSummaries(t *testing.T) {
	rows, err := newService().GetSectionSummaries(context.Background(), spring)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.SectionSummary{
		SectionID:        csSpring,
		CourseID:         "CS101",
		Title:            "CS Foundations",
		Subject:          "CS",
		Modality:         models.ModalityOnline,
		EnrolledStudents: 1,
		EventsPerStudent: 30,
		CompletionRate:   1,
	}, rows[0])

	assert.Equal(t, mathSpring, rows[1].SectionID)
	assert.Equal(t, 2, rows[1].EnrolledStudents)
	assert.Equal(t, 5.0, rows[1].EventsPerStudent)
	assert.Equal(t, 0.25, rows[1].CompletionRate)
}

func TestAtRiskStudents(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	all, err := svc.GetAtRiskStudents(ctx, spring, StudentFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ada, all[0].StudentID)
	assert.Equal(t, []models.RiskFlag{models.RiskHighBalance, models.RiskLowPriorGPA}, all[0].Flags)
	assert.Equal(t, alan, all[1].StudentID)
	assert.Equal(t, []models.RiskFlag{models.RiskLowEngagement, models.RiskNoAdvising}, all[1].Flags)

	balance, err := svc.GetAtRiskStudents(ctx, spring, StudentFilter{}, []models.RiskFlag{models.RiskHighBalance})
	require.NoError(t, err)
	require.Len(t, balance, 1)
	assert.Equal(t, ada, balance[0].StudentID)

	both, err := svc.GetAtRiskStudents(ctx, spring, StudentFilter{}, []models.RiskFlag{models.RiskNoAdvising, models.RiskLowEngagement})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, alan, both[0].StudentID)

	none, err := svc.GetAtRiskStudents(ctx, spring, StudentFilter{}, []models.RiskFlag{models.RiskHighBalance, models.RiskNoAdvising})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAtRiskCustomThresholds(t *testing.T) {
	lenient := RiskThresholds{MinEngagementEvents: 5, MaxBalance: models.Dollars(2000), MinPriorGPA: 1.0}
	svc := NewReportService(repositories.NewDatasetRepository(fixture()), lenient)

	rows, err := svc.GetAtRiskStudents(context.Background(), spring, StudentFilter{}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, alan, rows[0].StudentID)
	assert.Equal(t, []models.RiskFlag{models.RiskNoAdvising}, rows[0].Flags)
}

func TestParseRiskFlags(t *testing.T) {
	flags, err := ParseRiskFlags(" low_engagement, ,no_advising")
	require.NoError(t, err)
	assert.Equal(t, []models.RiskFlag{models.RiskLowEngagement, models.RiskNoAdvising}, flags)

	flags, err = ParseRiskFlags("")
	require.NoError(t, err)
	assert.Empty(t, flags)

	_, err = ParseRiskFlags("low_engagement,sleepy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}
