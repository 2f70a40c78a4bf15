package seed

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/apperrors"
)

func generate(t *testing.T, students int, seed int64) *Dataset {
	t.Helper()
	ds, err := Generate(Options{Students: students, Seed: seed}, zerolog.Nop())
	require.NoError(t, err)
	return ds
}

func TestGenerateRejectsNonPositiveStudents(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Generate(Options{Students: n, Seed: 1}, zerolog.Nop())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := generate(t, 50, 360)
	b := generate(t, 50, 360)

	assert.Equal(t, a.Courses, b.Courses)
	assert.Equal(t, a.Sections, b.Sections)
	assert.Equal(t, a.Students, b.Students)
	assert.Equal(t, a.Enrollments, b.Enrollments)
	assert.Equal(t, a.LMSEvents, b.LMSEvents)
	assert.Equal(t, a.Transactions, b.Transactions)
	assert.Equal(t, a.Appointments, b.Appointments)
}

func TestGenerateDiffersBySeed(t *testing.T) {
	a := generate(t, 20, 1)
	b := generate(t, 20, 2)
	assert.NotEqual(t, a.Enrollments, b.Enrollments)
}

func TestGenerateSingleStudent(t *testing.T) {
	ds := generate(t, 1, 42)
	require.Len(t, ds.Students, 1)
	assert.Equal(t, int64(10000000), ds.Students[0].ID)
	assert.Len(t, ds.Applications, 1)

	current := 0
	for _, e := range ds.Enrollments {
		if e.TermID == "2025FA" {
			current++
		}
	}
	assert.Contains(t, []int{4, 5}, current)
	assert.NotEmpty(t, ds.Accounts)
}

func TestEnrollmentTermMatchesSectionTerm(t *testing.T) {
	ds := generate(t, 200, 7)
	for _, e := range ds.Enrollments {
		sec, ok := ds.Lookups.Section(e.SectionID)
		require.True(t, ok, "unknown section %s", e.SectionID)
		require.Equal(t, sec.TermID, e.TermID)

		switch e.Status {
		case models.StatusEnrolled:
			assert.Empty(t, e.GradeLetter)
			assert.Nil(t, e.GradePoints)
		case models.StatusCompleted:
			require.NotNil(t, e.GradePoints)
			want, ok := GradePoints(e.GradeLetter)
			require.True(t, ok, "unknown grade %q", e.GradeLetter)
			assert.Equal(t, want, *e.GradePoints)
		default:
			t.Fatalf("unexpected status %q", e.Status)
		}
	}
}

func TestAdmitTermPrecedesCurrentTerm(t *testing.T) {
	ds := generate(t, 300, 5)
	for _, st := range ds.Students {
		assert.Equal(t, "2025FA", st.CurrentTermID)
		assert.Less(t, ds.Lookups.TermIndex(st.AdmitTermID), ds.Lookups.TermIndex(st.CurrentTermID))
	}
}

func TestApplicationAnchoredToAdmitTerm(t *testing.T) {
	ds := generate(t, 100, 9)
	require.Len(t, ds.Applications, len(ds.Students))
	for i, app := range ds.Applications {
		st := ds.Students[i]
		assert.Equal(t, st.ID, app.StudentID)
		assert.Equal(t, st.AdmitTermID, app.AppTermID)
		assert.True(t, app.DecisionDate.After(app.CompletedDate))
	}
	for _, ts := range ds.TestScores {
		switch ts.TestType {
		case "ACT":
			assert.True(t, ts.Score >= 18 && ts.Score <= 35)
		case "SAT":
			assert.True(t, ts.Score >= 900 && ts.Score <= 1550)
		default:
			t.Fatalf("unexpected test type %q", ts.TestType)
		}
	}
}

func TestFinancialsReconcile(t *testing.T) {
	ds := generate(t, 500, 360)

	type key struct {
		student int64
		term    string
	}
	charges := map[key][]models.Money{}
	payments := map[key]models.Money{}
	for _, tx := range ds.Transactions {
		k := key{tx.StudentID, tx.TermID}
		switch tx.Type {
		case models.TransactionCharge:
			charges[k] = append(charges[k], tx.Amount)
		case models.TransactionPayment:
			payments[k] += tx.Amount
		}
	}
	aid := map[key]models.Money{}
	for _, a := range ds.AidAwards {
		k := key{a.StudentID, a.TermID}
		_, dup := aid[k]
		require.False(t, dup, "more than one award for %v", k)
		aid[k] = a.Amount
	}

	require.Len(t, charges, len(ds.Accounts))
	for _, acc := range ds.Accounts {
		k := key{acc.StudentID, acc.TermID}
		require.Len(t, charges[k], 1, "exactly one CHARGE per account")
		assert.Equal(t, acc.TotalCharges, charges[k][0])
		assert.Equal(t, acc.TotalPayments, payments[k]+aid[k])
		assert.Equal(t, acc.Balance, acc.TotalCharges-acc.TotalPayments)
	}
}

func TestChargesFollowUnits(t *testing.T) {
	ds := generate(t, 100, 3)
	units := map[int64]int{}
	for _, e := range ds.Enrollments {
		if e.TermID == "2025FA" {
			units[e.StudentID] += ds.Lookups.SectionUnits(e.SectionID)
		}
	}
	for _, acc := range ds.Accounts {
		if acc.TermID != "2025FA" {
			continue
		}
		u := units[acc.StudentID]
		low := models.Dollars(u*350 + 100)
		high := models.Dollars(u*650 + 400)
		assert.True(t, acc.TotalCharges >= low && acc.TotalCharges <= high,
			"charges %s outside [%s, %s]", acc.TotalCharges, low, high)
	}
}

func TestLMSActivityWithinTerm(t *testing.T) {
	ds := generate(t, 100, 21)
	require.Len(t, ds.LMSMappings, len(ds.Sections))
	require.Len(t, ds.LMSEvents, 6*len(ds.Enrollments))
	require.Len(t, ds.Submissions, 4*len(ds.Enrollments))

	for i, e := range ds.Enrollments {
		term, ok := ds.Lookups.Term(e.TermID)
		require.True(t, ok)
		lmsID := LMSCourseID(e.SectionID)

		for _, ev := range ds.LMSEvents[i*6 : (i+1)*6] {
			assert.Equal(t, e.StudentID, ev.StudentID)
			assert.Equal(t, lmsID, ev.LMSCourseID)
			assert.True(t, term.Contains(ev.Timestamp), "event %s outside %s", ev.Timestamp, term.ID)
			h := ev.Timestamp.Hour()
			assert.True(t, h >= 8 && h <= 20)
		}
		for j, sub := range ds.Submissions[i*4 : (i+1)*4] {
			assert.Equal(t, fmt.Sprintf("A%02d", j+1), sub.AssignmentID)
			assert.True(t, term.Contains(sub.Timestamp))
			assert.True(t, sub.Score >= 60 && sub.Score <= sub.MaxScore)
		}
	}
}

func TestNotesShareAppointment(t *testing.T) {
	ds := generate(t, 300, 13)
	type key struct {
		student int64
		advisor string
		day     string
	}
	appts := map[key]bool{}
	perStudent := map[int64]int{}
	for _, a := range ds.Appointments {
		appts[key{a.StudentID, a.AdvisorID, a.Date.Format("2006-01-02")}] = true
		perStudent[a.StudentID]++
	}
	for id, n := range perStudent {
		assert.LessOrEqual(t, n, 3, "student %d", id)
	}
	for _, n := range ds.Notes {
		assert.True(t, appts[key{n.StudentID, n.AdvisorID, n.Date.Format("2006-01-02")}],
			"note %s has no matching appointment", n.ID)
	}
}

func TestScenarioSeed360(t *testing.T) {
	ds := generate(t, 2000, 360)

	current := map[int64]int{}
	prior := map[int64]bool{}
	for _, e := range ds.Enrollments {
		if e.TermID == "2025FA" {
			current[e.StudentID]++
		} else {
			prior[e.StudentID] = true
		}
	}
	require.Len(t, current, 2000)
	for id, n := range current {
		require.Contains(t, []int{4, 5}, n, "student %d", id)
	}
	assert.InDelta(t, 0.40, float64(len(prior))/2000, 0.04)

	assert.InDelta(t, 0.55, float64(len(ds.AidAwards))/float64(len(ds.Accounts)), 0.04)
}

func TestSeniorWhenAdmittedInFirstTerm(t *testing.T) {
	assert.Equal(t, models.StandingSenior, ClassStandingFor(2))
	assert.Equal(t, models.StandingJunior, ClassStandingFor(1))
	assert.Equal(t, models.StandingSophomore, ClassStandingFor(0))
	assert.Equal(t, models.StandingSenior, ClassStandingFor(10))

	ds := generate(t, 200, 360)
	found := false
	for _, st := range ds.Students {
		if st.AdmitTermID == "2024FA" {
			found = true
			assert.Equal(t, models.StandingSenior, st.ClassStanding)
		}
	}
	assert.True(t, found, "no student admitted in the first term")
}
