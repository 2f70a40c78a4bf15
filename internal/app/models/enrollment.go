package models

// Enrollment is a student's registration in a section for a term
type Enrollment struct {
	StudentID   int64            `json:"studentId" db:"student_id"`
	SectionID   string           `json:"courseSectionId" db:"course_section_id"`
	TermID      string           `json:"termId" db:"term_id"`
	Status      EnrollmentStatus `json:"enrollmentStatus" db:"enrollment_status"`
	GradeLetter string           `json:"gradeLetter,omitempty" db:"grade_letter"`
	GradePoints *float64         `json:"gradePoints,omitempty" db:"grade_points"` // nil while ENROLLED
}
