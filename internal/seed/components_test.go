package seed

import (
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/random"
)

func TestGenerateTermsChronological(t *testing.T) {
	terms := GenerateTerms()
	require.Len(t, terms, 3)
	for i, term := range terms {
		assert.True(t, term.StartDate.Before(term.EndDate), term.ID)
		if i > 0 {
			assert.True(t, terms[i-1].EndDate.Before(term.StartDate))
		}
	}
	assert.Equal(t, []string{"2024FA", "2025SP", "2025FA"}, []string{terms[0].ID, terms[1].ID, terms[2].ID})
}

func TestGenerateCourses(t *testing.T) {
	courses := GenerateCourses(random.New(1), DefaultCourseCount)
	require.Len(t, courses, DefaultCourseCount)
	for _, c := range courses {
		assert.Equal(t, c.Subject+c.CatalogNbr, c.ID)
		assert.Contains(t, []int{3, 4}, c.Units)
		assert.Regexp(t, `^[1-4]\d\d$`, c.CatalogNbr)
	}
}

func TestGenerateSectionsNumbering(t *testing.T) {
	src := random.New(2)
	terms := GenerateTerms()
	courses := GenerateCourses(src, 30)
	sections := GenerateSections(src, courses, terms)

	type key struct{ course, term string }
	last := map[key]int{}
	for _, s := range sections {
		k := key{s.CourseID, s.TermID}
		assert.Equal(t, last[k]+1, s.SectionNbr, s.ID)
		last[k] = s.SectionNbr
		assert.Equal(t, SectionID(s.CourseID, s.TermID, s.SectionNbr), s.ID)
		assert.Contains(t, []models.Modality{models.ModalityInPerson, models.ModalityOnline, models.ModalityHybrid}, s.Modality)
	}
	for k, n := range last {
		assert.GreaterOrEqual(t, n, 1, "%v", k)
	}
	assert.Equal(t, "CS101-2025FA-S01", SectionID("CS101", "2025FA", 1))
}

func TestGenerateSectionsContinuesNumberingForRepeatedCourse(t *testing.T) {
	terms := GenerateTerms()[:1]
	course := models.Course{ID: "CS101", Subject: "CS", CatalogNbr: "101", Title: "CS Intro", Units: 3}
	sections := GenerateSections(random.New(5), []models.Course{course, course}, terms)

	require.GreaterOrEqual(t, len(sections), 2)
	for i, s := range sections {
		assert.Equal(t, i+1, s.SectionNbr)
		assert.Equal(t, SectionID("CS101", terms[0].ID, i+1), s.ID)
	}
}

func TestGeneratedSectionsUniqueAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		ds, err := Generate(Options{Students: 200, Seed: seed}, zerolog.Nop())
		require.NoError(t, err)
		require.Len(t, ds.Courses, DefaultCourseCount)

		ids := make(map[string]bool, len(ds.Sections))
		for _, s := range ds.Sections {
			assert.False(t, ids[s.ID], "seed %d: duplicate section %s", seed, s.ID)
			ids[s.ID] = true
		}

		type pair struct {
			student int64
			section string
		}
		seen := make(map[pair]bool, len(ds.Enrollments))
		for _, e := range ds.Enrollments {
			p := pair{e.StudentID, e.SectionID}
			assert.False(t, seen[p], "seed %d: student %d enrolled twice in %s", seed, e.StudentID, e.SectionID)
			seen[p] = true
		}

		assert.Len(t, ds.LMSMappings, len(ds.Sections))
	}
}

func TestGenerateAdvisors(t *testing.T) {
	advisors := GenerateAdvisors(random.New(3), DefaultAdvisorCount)
	require.Len(t, advisors, 50)
	assert.Equal(t, "ADV001", advisors[0].ID)
	assert.Equal(t, "ADV050", advisors[49].ID)
}

func TestGenerateStudentsEmail(t *testing.T) {
	src := random.New(4)
	terms := GenerateTerms()
	students := GenerateStudents(src, 30, terms, GenerateAdvisors(src, 5))
	emailRe := regexp.MustCompile(`^[a-z]+\.[a-z]+\d{1,3}@example\.edu$`)
	for _, st := range students {
		assert.Regexp(t, emailRe, st.Email)
		assert.Equal(t, "Undergraduate", st.Program)
		assert.NotEqual(t, "2025FA", st.AdmitTermID)
		assert.False(t, st.DOB.Before(dobBase))
	}
}

func TestLMSCourseIDStable(t *testing.T) {
	id := LMSCourseID("CS101-2025FA-S01")
	assert.Equal(t, id, LMSCourseID("CS101-2025FA-S01"))
	assert.Regexp(t, `^LMS-\d{7}$`, id)
	assert.NotEqual(t, id, LMSCourseID("CS101-2025FA-S02"))
}

func TestLookupsUnitsLastDefinitionWins(t *testing.T) {
	terms := GenerateTerms()
	courses := []models.Course{
		{ID: "CS101", Subject: "CS", CatalogNbr: "101", Units: 3},
		{ID: "CS101", Subject: "CS", CatalogNbr: "101", Units: 4},
	}
	sections := []models.Section{{ID: SectionID("CS101", "2025FA", 1), CourseID: "CS101", TermID: "2025FA", SectionNbr: 1}}
	lk := NewLookups(terms, courses, sections)

	assert.Equal(t, 4, lk.SectionUnits("CS101-2025FA-S01"))
	assert.Equal(t, 0, lk.SectionUnits("missing"))
	assert.Equal(t, "2025FA", lk.CurrentTerm().ID)
	assert.Equal(t, "2025SP", lk.PriorTerm().ID)
	assert.Equal(t, -1, lk.TermIndex("1999XX"))
	_, ok := lk.Term("1999XX")
	assert.False(t, ok)
}

func TestLookupsReturnCopies(t *testing.T) {
	terms := GenerateTerms()
	sections := []models.Section{{ID: "CS101-2025FA-S01", CourseID: "CS101", TermID: "2025FA", SectionNbr: 1}}
	lk := NewLookups(terms, []models.Course{{ID: "CS101", Units: 3}}, sections)

	got := lk.SectionsInTerm("2025FA")
	require.Len(t, got, 1)
	got[0].ID = "mutated"
	assert.Equal(t, "CS101-2025FA-S01", lk.SectionsInTerm("2025FA")[0].ID)

	ts := lk.Terms()
	ts[0].ID = "mutated"
	assert.Equal(t, terms[0].ID, lk.Terms()[0].ID)
}

func TestFinancialsSingleGroup(t *testing.T) {
	terms := GenerateTerms()
	courses := []models.Course{{ID: "MATH200", Units: 3}, {ID: "BIO310", Units: 4}}
	sections := []models.Section{
		{ID: "MATH200-2025FA-S01", CourseID: "MATH200", TermID: "2025FA", SectionNbr: 1},
		{ID: "BIO310-2025FA-S01", CourseID: "BIO310", TermID: "2025FA", SectionNbr: 1},
	}
	lk := NewLookups(terms, courses, sections)
	enrollments := []models.Enrollment{
		{StudentID: 10000000, SectionID: "MATH200-2025FA-S01", TermID: "2025FA", Status: models.StatusEnrolled},
		{StudentID: 10000000, SectionID: "BIO310-2025FA-S01", TermID: "2025FA", Status: models.StatusEnrolled},
	}

	for seed := int64(0); seed < 30; seed++ {
		fin := GenerateFinancials(random.New(seed), enrollments, lk)
		require.Len(t, fin.Accounts, 1)
		acc := fin.Accounts[0]

		charges := 0
		for _, tx := range fin.Transactions {
			if tx.Type == models.TransactionCharge {
				charges++
				assert.Equal(t, "BILLING", tx.Method)
				assert.Equal(t, terms[2].ChargeDate, tx.Date)
			} else {
				assert.Equal(t, terms[2].PaymentDate, tx.Date)
			}
		}
		assert.Equal(t, 1, charges)
		assert.LessOrEqual(t, len(fin.Transactions), 4)
		assert.LessOrEqual(t, len(fin.AidAwards), 1)

		low, high := models.Dollars(7*350+100), models.Dollars(7*650+400)
		assert.True(t, acc.TotalCharges >= low && acc.TotalCharges <= high)
	}
}
