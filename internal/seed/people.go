package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/helpers"
	"github.com/yigit/student360/internal/pkg/random"
)

var dobBase = helpers.Date(1998, time.January, 1)

// GenerateAdvisors returns n advisors with sequential ids ADV001, ADV002, ...
func GenerateAdvisors(src *random.Source, n int) []models.Advisor {
	advisors := make([]models.Advisor, 0, n)
	for i := 1; i <= n; i++ {
		name := random.Pick(src, advisorFirstNames) + " " + random.Pick(src, advisorLastNames)
		advisors = append(advisors, models.Advisor{
			ID:         fmt.Sprintf("ADV%03d", i),
			Name:       name,
			Department: random.Pick(src, departments),
		})
	}
	return advisors
}

// GenerateStudents draws n students. Each is admitted in any term but the last
// and is currently in the last term.
func GenerateStudents(src *random.Source, n int, terms []models.Term, advisors []models.Advisor) []models.Student {
	current := terms[len(terms)-1]
	admitCandidates := terms[:len(terms)-1]

	students := make([]models.Student, 0, n)
	for i := 0; i < n; i++ {
		sid := int64(studentIDBase + i)
		first := random.Pick(src, studentFirstNames)
		last := random.Pick(src, studentLastNames)
		dob := dobBase.AddDate(0, 0, src.IntRange(0, 365*10))
		gender := random.Pick(src, genders)
		res := residency.Pick(src)
		major := random.Pick(src, majors)
		admitIdx := src.IntN(len(admitCandidates))
		advisor := random.Pick(src, advisors)
		ethnicity := random.Pick(src, ethnicities)

		students = append(students, models.Student{
			ID:            sid,
			FirstName:     first,
			LastName:      last,
			Email:         fmt.Sprintf("%s.%s%d@example.edu", strings.ToLower(first), strings.ToLower(last), sid%1000),
			DOB:           dob,
			Gender:        gender,
			Ethnicity:     ethnicity,
			Residency:     res,
			Program:       program,
			Major:         major,
			AdmitTermID:   admitCandidates[admitIdx].ID,
			CurrentTermID: current.ID,
			ClassStanding: ClassStandingFor(len(terms) - 1 - admitIdx),
			AdvisorID:     advisor.ID,
		})
	}
	return students
}

// ClassStandingFor maps the number of terms between admission and the current
// term onto a standing. The admit term itself counts, so a student admitted two
// terms ago has attended three terms and is a Senior; the index is clamped to
// the four standings.
func ClassStandingFor(termDistance int) models.ClassStanding {
	idx := termDistance + 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(models.Standings)-1 {
		idx = len(models.Standings) - 1
	}
	return models.Standings[idx]
}
