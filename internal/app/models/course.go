package models

// Course is one catalog entry
type Course struct {
	ID         string `json:"courseId" db:"course_id" example:"CS101"` // Subject + catalog number, not guaranteed unique
	Subject    string `json:"subject" db:"subject" example:"CS"`
	CatalogNbr string `json:"catalogNbr" db:"catalog_nbr" example:"101"`
	Title      string `json:"title" db:"title" example:"CS Foundations"`
	Units      int    `json:"units" db:"units" example:"3"`
}

// Section is one offering of a course within a term
type Section struct {
	ID         string   `json:"courseSectionId" db:"course_section_id" example:"CS101-2025FA-S01"`
	CourseID   string   `json:"courseId" db:"course_id"`
	TermID     string   `json:"termId" db:"term_id"`
	SectionNbr int      `json:"sectionNbr" db:"section_nbr"`
	Modality   Modality `json:"modality" db:"modality"`
}
