package seed

import (
	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/random"
)

// GenerateEnrollments registers every student in 4-5 sections of the current
// term and, for about 40% of students, in 3-4 graded sections of the prior term.
func GenerateEnrollments(src *random.Source, students []models.Student, lk *Lookups) []models.Enrollment {
	current := lk.CurrentTerm()
	prior := lk.PriorTerm()
	currentSections := lk.SectionsInTerm(current.ID)
	priorSections := lk.SectionsInTerm(prior.ID)

	var enrollments []models.Enrollment
	for _, st := range students {
		for _, sec := range random.Sample(src, currentSections, currentLoad.Pick(src)) {
			enrollments = append(enrollments, models.Enrollment{
				StudentID: st.ID,
				SectionID: sec.ID,
				TermID:    current.ID,
				Status:    models.StatusEnrolled,
			})
		}

		if !hasPriorTerm.Pick(src) {
			continue
		}
		for _, sec := range random.Sample(src, priorSections, priorLoad.Pick(src)) {
			letter := random.Pick(src, gradeLetters)
			points := gradePoints[letter]
			enrollments = append(enrollments, models.Enrollment{
				StudentID:   st.ID,
				SectionID:   sec.ID,
				TermID:      prior.ID,
				Status:      models.StatusCompleted,
				GradeLetter: letter,
				GradePoints: &points,
			})
		}
	}
	return enrollments
}
