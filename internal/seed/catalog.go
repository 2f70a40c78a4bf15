package seed

import (
	"fmt"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/helpers"
	"github.com/yigit/student360/internal/pkg/random"
)

// GenerateTerms returns the three hand-specified terms in chronological order.
// The last term is the current term and the one before it the prior term.
func GenerateTerms() []models.Term {
	return []models.Term{
		{
			ID:               "2024FA",
			Name:             "Fall 2024",
			StartDate:        helpers.Date(2024, time.August, 26),
			EndDate:          helpers.Date(2024, time.December, 13),
			ChargeDate:       helpers.Date(2024, time.August, 29),
			PaymentDate:      helpers.Date(2024, time.September, 2),
			AidDisbursedDate: helpers.Date(2024, time.August, 21),
		},
		{
			ID:               "2025SP",
			Name:             "Spring 2025",
			StartDate:        helpers.Date(2025, time.January, 13),
			EndDate:          helpers.Date(2025, time.May, 2),
			ChargeDate:       helpers.Date(2025, time.January, 20),
			PaymentDate:      helpers.Date(2025, time.February, 1),
			AidDisbursedDate: helpers.Date(2025, time.January, 10),
		},
		{
			ID:               "2025FA",
			Name:             "Fall 2025",
			StartDate:        helpers.Date(2025, time.August, 25),
			EndDate:          helpers.Date(2025, time.December, 12),
			ChargeDate:       helpers.Date(2025, time.August, 28),
			PaymentDate:      helpers.Date(2025, time.September, 1),
			AidDisbursedDate: helpers.Date(2025, time.August, 20),
		},
	}
}

// GenerateCourses draws n courses with replacement from the subject and title
// vocabularies. Course ids that collide are kept as they are.
func GenerateCourses(src *random.Source, n int) []models.Course {
	courses := make([]models.Course, 0, n)
	for len(courses) < n {
		subj := random.Pick(src, subjects)
		catalogNbr := fmt.Sprintf("%d", src.IntRange(100, 499))
		title := subj + " " + random.Pick(src, courseTitles)
		units := courseUnits.Pick(src)
		courses = append(courses, models.Course{
			ID:         subj + catalogNbr,
			Subject:    subj,
			CatalogNbr: catalogNbr,
			Title:      title,
			Units:      units,
		})
	}
	return courses
}

// GenerateSections allocates 1-3 sections for every (term, catalog entry) pair.
// Terms are the outer loop so sections of one term are contiguous. Section
// numbers continue per (course id, term), so a course id drawn twice into the
// catalog gets S01..S0n across both entries and section ids stay unique.
func GenerateSections(src *random.Source, courses []models.Course, terms []models.Term) []models.Section {
	var sections []models.Section
	next := make(map[[2]string]int, len(courses)*len(terms))
	for _, term := range terms {
		for _, course := range courses {
			count := sectionCount.Pick(src)
			key := [2]string{course.ID, term.ID}
			for i := 0; i < count; i++ {
				next[key]++
				nbr := next[key]
				sections = append(sections, models.Section{
					ID:         SectionID(course.ID, term.ID, nbr),
					CourseID:   course.ID,
					TermID:     term.ID,
					SectionNbr: nbr,
					Modality:   modalities.Pick(src),
				})
			}
		}
	}
	return sections
}

// SectionID builds the course section identifier, e.g. CS101-2025FA-S01
func SectionID(courseID, termID string, nbr int) string {
	return fmt.Sprintf("%s-%s-S%02d", courseID, termID, nbr)
}
