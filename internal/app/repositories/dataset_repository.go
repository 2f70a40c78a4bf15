package repositories

import (
	"math"
	"sort"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/seed"
)

type studentCourse struct {
	studentID   int64
	lmsCourseID string
}

type studentTerm struct {
	studentID int64
	termID    string
}

// DatasetRepository answers report queries from a generated dataset held in
// memory. Summaries are computed once at construction and never modified, so
// concurrent readers need no locking.
type DatasetRepository struct {
	terms     []models.Term
	termIndex map[string]int
	students  map[int64]models.Student
	summaries map[string][]models.StudentTermSummary
	sections  map[string][]models.SectionSummary
}

// NewDatasetRepository indexes ds and precomputes the per-term summaries
func NewDatasetRepository(ds *seed.Dataset) *DatasetRepository {
	r := &DatasetRepository{
		terms:     ds.Terms,
		termIndex: make(map[string]int, len(ds.Terms)),
		students:  make(map[int64]models.Student, len(ds.Students)),
		summaries: make(map[string][]models.StudentTermSummary, len(ds.Terms)),
		sections:  make(map[string][]models.SectionSummary, len(ds.Terms)),
	}
	for i, t := range ds.Terms {
		r.termIndex[t.ID] = i
	}
	for _, s := range ds.Students {
		r.students[s.ID] = s
	}

	lk := ds.Lookups
	if lk == nil {
		lk = seed.NewLookups(ds.Terms, ds.Courses, ds.Sections)
	}

	events := make(map[studentCourse]int)
	for _, e := range ds.LMSEvents {
		events[studentCourse{e.StudentID, e.LMSCourseID}]++
	}
	onTime := make(map[studentCourse]int)
	for _, s := range ds.Submissions {
		if !s.LateFlag.Bool() {
			onTime[studentCourse{s.StudentID, s.LMSCourseID}]++
		}
	}

	byStudentTerm := make(map[studentTerm][]models.Enrollment)
	bySection := make(map[string][]int64)
	for _, e := range ds.Enrollments {
		key := studentTerm{e.StudentID, e.TermID}
		byStudentTerm[key] = append(byStudentTerm[key], e)
		bySection[e.SectionID] = append(bySection[e.SectionID], e.StudentID)
	}

	accounts := make(map[studentTerm]models.StudentAccount, len(ds.Accounts))
	for _, a := range ds.Accounts {
		accounts[studentTerm{a.StudentID, a.TermID}] = a
	}

	appointments := make(map[int64][]time.Time)
	for _, a := range ds.Appointments {
		appointments[a.StudentID] = append(appointments[a.StudentID], a.Date)
	}

	for i, term := range ds.Terms {
		var prior *models.Term
		if i > 0 {
			prior = &ds.Terms[i-1]
		}

		var list []models.StudentTermSummary
		for key, enrs := range byStudentTerm {
			if key.termID != term.ID {
				continue
			}
			st, ok := r.students[key.studentID]
			if !ok {
				continue
			}
			sum := models.StudentTermSummary{
				StudentID:  st.ID,
				FirstName:  st.FirstName,
				LastName:   st.LastName,
				Program:    st.Program,
				Major:      st.Major,
				TermID:     term.ID,
				NumCourses: len(enrs),
			}

			seen := make(map[string]bool, len(enrs))
			for _, e := range enrs {
				sum.TotalUnits += lk.SectionUnits(e.SectionID)
				lmsID := seed.LMSCourseID(e.SectionID)
				if !seen[lmsID] {
					seen[lmsID] = true
					sum.EngagementCount += events[studentCourse{st.ID, lmsID}]
				}
			}

			if prior != nil {
				sum.PriorTermGPA = termGPA(byStudentTerm[studentTerm{st.ID, prior.ID}], lk)
			}

			if acct, ok := accounts[key]; ok {
				sum.TotalCharges = acct.TotalCharges
				sum.TotalPayments = acct.TotalPayments
				sum.Balance = acct.Balance
			}

			for _, d := range appointments[st.ID] {
				if d.After(term.EndDate) {
					continue
				}
				sum.AdvisingCount++
				if sum.LastAdvising == nil || d.After(*sum.LastAdvising) {
					last := d
					sum.LastAdvising = &last
				}
			}

			list = append(list, sum)
		}
		sort.Slice(list, func(a, b int) bool { return list[a].StudentID < list[b].StudentID })
		r.summaries[term.ID] = list

		r.sections[term.ID] = sectionSummaries(ds.Courses, lk.SectionsInTerm(term.ID), bySection, events, onTime)
	}

	return r
}

// termGPA is the unit-weighted grade point average of the graded enrollments
func termGPA(enrs []models.Enrollment, lk *seed.Lookups) *float64 {
	var points float64
	var units int
	for _, e := range enrs {
		if e.GradePoints == nil {
			continue
		}
		u := lk.SectionUnits(e.SectionID)
		points += *e.GradePoints * float64(u)
		units += u
	}
	if units == 0 {
		return nil
	}
	gpa := math.Round(points/float64(units)*100) / 100
	return &gpa
}

func sectionSummaries(
	courses []models.Course,
	secs []models.Section,
	bySection map[string][]int64,
	events, onTime map[studentCourse]int,
) []models.SectionSummary {
	catalog := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		catalog[c.ID] = c
	}

	out := make([]models.SectionSummary, 0, len(secs))
	done := make(map[string]bool, len(secs))
	for _, sec := range secs {
		if done[sec.ID] {
			continue
		}
		done[sec.ID] = true

		course := catalog[sec.CourseID]
		sum := models.SectionSummary{
			SectionID: sec.ID,
			CourseID:  sec.CourseID,
			Title:     course.Title,
			Subject:   course.Subject,
			Modality:  sec.Modality,
		}

		lmsID := seed.LMSCourseID(sec.ID)
		enrolled := make(map[int64]bool)
		var totalEvents, totalOnTime int
		for _, sid := range bySection[sec.ID] {
			if enrolled[sid] {
				continue
			}
			enrolled[sid] = true
			totalEvents += events[studentCourse{sid, lmsID}]
			totalOnTime += onTime[studentCourse{sid, lmsID}]
		}
		sum.EnrolledStudents = len(enrolled)
		if sum.EnrolledStudents > 0 {
			sum.EventsPerStudent = round2(float64(totalEvents) / float64(sum.EnrolledStudents))
			sum.CompletionRate = round2(float64(totalOnTime) / float64(sum.EnrolledStudents*seed.AssignmentsPerEnrollment))
		}
		out = append(out, sum)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].EventsPerStudent != out[b].EventsPerStudent {
			return out[a].EventsPerStudent > out[b].EventsPerStudent
		}
		return out[a].SectionID < out[b].SectionID
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Terms returns every term in chronological order
func (r *DatasetRepository) Terms() []models.Term {
	out := make([]models.Term, len(r.terms))
	copy(out, r.terms)
	return out
}

// GetTerm retrieves a term by ID
func (r *DatasetRepository) GetTerm(termID string) (models.Term, error) {
	i, ok := r.termIndex[termID]
	if !ok {
		return models.Term{}, apperrors.NewResourceNotFoundError("term not found: " + termID)
	}
	return r.terms[i], nil
}

// StudentSummaries returns the summaries of students enrolled in the term,
// ordered by student id. Callers must not modify the returned slice.
func (r *DatasetRepository) StudentSummaries(termID string) ([]models.StudentTermSummary, error) {
	if _, err := r.GetTerm(termID); err != nil {
		return nil, err
	}
	return r.summaries[termID], nil
}

// SectionSummaries returns the section summaries of the term, busiest first
func (r *DatasetRepository) SectionSummaries(termID string) ([]models.SectionSummary, error) {
	if _, err := r.GetTerm(termID); err != nil {
		return nil, err
	}
	return r.sections[termID], nil
}
