package seed

import (
	"slices"

	"github.com/yigit/student360/internal/app/models"
)

// Lookups are the read-only indexes built once after the catalog components
// finish. Downstream derivers receive them by pointer and never modify them.
type Lookups struct {
	terms          []models.Term
	termIndex      map[string]int
	courseUnits    map[string]int
	sectionByID    map[string]models.Section
	sectionsByTerm map[string][]models.Section
}

// NewLookups indexes terms, courses and sections. For duplicate course ids the
// last catalog entry wins, matching how units are resolved for billing.
func NewLookups(terms []models.Term, courses []models.Course, sections []models.Section) *Lookups {
	lk := &Lookups{
		terms:          terms,
		termIndex:      make(map[string]int, len(terms)),
		courseUnits:    make(map[string]int, len(courses)),
		sectionByID:    make(map[string]models.Section, len(sections)),
		sectionsByTerm: make(map[string][]models.Section, len(terms)),
	}
	for i, t := range terms {
		lk.termIndex[t.ID] = i
	}
	for _, c := range courses {
		lk.courseUnits[c.ID] = c.Units
	}
	for _, s := range sections {
		lk.sectionByID[s.ID] = s
		lk.sectionsByTerm[s.TermID] = append(lk.sectionsByTerm[s.TermID], s)
	}
	return lk
}

// Terms returns a copy of the terms in chronological order
func (lk *Lookups) Terms() []models.Term {
	return slices.Clone(lk.terms)
}

// CurrentTerm is the last term
func (lk *Lookups) CurrentTerm() models.Term {
	return lk.terms[len(lk.terms)-1]
}

// PriorTerm is the second-to-last term
func (lk *Lookups) PriorTerm() models.Term {
	return lk.terms[len(lk.terms)-2]
}

// Term returns the term with the given id
func (lk *Lookups) Term(id string) (models.Term, bool) {
	i, ok := lk.termIndex[id]
	if !ok {
		return models.Term{}, false
	}
	return lk.terms[i], true
}

// TermIndex returns the chronological position of a term, or -1
func (lk *Lookups) TermIndex(id string) int {
	if i, ok := lk.termIndex[id]; ok {
		return i
	}
	return -1
}

// Section returns the section with the given id
func (lk *Lookups) Section(id string) (models.Section, bool) {
	s, ok := lk.sectionByID[id]
	return s, ok
}

// SectionsInTerm returns a copy of the sections of a term in catalog order
func (lk *Lookups) SectionsInTerm(termID string) []models.Section {
	return slices.Clone(lk.sectionsByTerm[termID])
}

// SectionUnits returns the units of the course a section belongs to
func (lk *Lookups) SectionUnits(sectionID string) int {
	s, ok := lk.sectionByID[sectionID]
	if !ok {
		return 0
	}
	return lk.courseUnits[s.CourseID]
}
