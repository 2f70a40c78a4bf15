package seed

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/random"
)

// LearningActivity is the output of the LMS derivation
type LearningActivity struct {
	Mappings    []models.LMSCourseMapping
	Events      []models.LMSEvent
	Submissions []models.Submission
}

// LMSCourseID derives the platform course id of a section. It depends only on
// the section id, so it is stable across runs and processes.
func LMSCourseID(sectionID string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sectionID))
	return fmt.Sprintf("LMS-%07d", h.Sum64()%10_000_000)
}

// GenerateLearningActivity maps every section to a platform course and derives
// 6 events and 4 submissions per enrollment, all dated inside the enrollment's term.
func GenerateLearningActivity(src *random.Source, enrollments []models.Enrollment, sections []models.Section, lk *Lookups) LearningActivity {
	out := LearningActivity{
		Mappings:    make([]models.LMSCourseMapping, 0, len(sections)),
		Events:      make([]models.LMSEvent, 0, len(enrollments)*EventsPerEnrollment),
		Submissions: make([]models.Submission, 0, len(enrollments)*AssignmentsPerEnrollment),
	}

	lmsIDs := make(map[string]string, len(sections))
	for _, sec := range sections {
		id := LMSCourseID(sec.ID)
		lmsIDs[sec.ID] = id
		out.Mappings = append(out.Mappings, models.LMSCourseMapping{SectionID: sec.ID, LMSCourseID: id})
	}

	for _, enr := range enrollments {
		term, _ := lk.Term(enr.TermID)
		days := term.Days()
		lmsID := lmsIDs[enr.SectionID]

		for i := 0; i < EventsPerEnrollment; i++ {
			ts := term.StartDate.
				AddDate(0, 0, src.IntRange(0, days)).
				Add(time.Duration(src.IntRange(8, 20))*time.Hour + time.Duration(src.IntRange(0, 59))*time.Minute)
			out.Events = append(out.Events, models.LMSEvent{
				StudentID:   enr.StudentID,
				LMSCourseID: lmsID,
				Timestamp:   ts,
				EventType:   random.Pick(src, eventTypes),
			})
		}

		for a := 1; a <= AssignmentsPerEnrollment; a++ {
			ts := term.StartDate.AddDate(0, 0, src.IntRange(7, days))
			out.Submissions = append(out.Submissions, models.Submission{
				StudentID:    enr.StudentID,
				LMSCourseID:  lmsID,
				AssignmentID: fmt.Sprintf("A%02d", a),
				Timestamp:    ts,
				Score:        src.IntRange(60, 100),
				MaxScore:     maxScore,
				LateFlag:     lateFlag.Pick(src),
			})
		}
	}
	return out
}
