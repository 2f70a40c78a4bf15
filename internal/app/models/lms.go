package models

import "time"

// LMSCourseMapping links a section to its learning-platform course
type LMSCourseMapping struct {
	SectionID   string `json:"courseSectionId" db:"course_section_id"`
	LMSCourseID string `json:"lmsCourseId" db:"lms_course_id" example:"LMS-0042137"`
}

// LMSEvent is a login or page interaction on the learning platform
type LMSEvent struct {
	StudentID   int64     `json:"studentId" db:"student_id"`
	LMSCourseID string    `json:"lmsCourseId" db:"lms_course_id"`
	Timestamp   time.Time `json:"eventTs" db:"event_ts"`
	EventType   string    `json:"eventType" db:"event_type"`
}

// Submission is one assignment hand-in
type Submission struct {
	StudentID    int64     `json:"studentId" db:"student_id"`
	LMSCourseID  string    `json:"lmsCourseId" db:"lms_course_id"`
	AssignmentID string    `json:"assignmentId" db:"assignment_id"`
	Timestamp    time.Time `json:"submittedTs" db:"submitted_ts"`
	Score        int       `json:"score" db:"score"`
	MaxScore     int       `json:"maxScore" db:"max_score"`
	LateFlag     Flag      `json:"lateFlag" db:"late_flag"`
}
