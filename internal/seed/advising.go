package seed

import (
	"fmt"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/helpers"
	"github.com/yigit/student360/internal/pkg/random"
)

const advisingYear = 2025

// Advising is the output of the advising derivation
type Advising struct {
	Appointments []models.Appointment
	Notes        []models.Note
}

// GenerateAdvising books 0-3 appointments per student. Each appointment may
// come with a note that shares its date and advisor.
func GenerateAdvising(src *random.Source, students []models.Student, advisors []models.Advisor) Advising {
	var out Advising
	apptSeq, noteSeq := 1, 1
	for _, st := range students {
		for k := appointmentCount.Pick(src); k > 0; k-- {
			advisor := random.Pick(src, advisors)
			month := time.Month(random.Pick(src, appointmentMonths))
			date := helpers.Date(advisingYear, month, src.IntRange(1, 28))
			out.Appointments = append(out.Appointments, models.Appointment{
				ID:        fmt.Sprintf("APT%07d", apptSeq),
				StudentID: st.ID,
				AdvisorID: advisor.ID,
				Date:      date,
				Outcome:   random.Pick(src, appointmentOutcome),
			})
			apptSeq++

			if !takesNote.Pick(src) {
				continue
			}
			out.Notes = append(out.Notes, models.Note{
				ID:        fmt.Sprintf("NOTE%07d", noteSeq),
				StudentID: st.ID,
				AdvisorID: advisor.ID,
				Date:      date,
				Category:  random.Pick(src, noteCategories),
				RiskFlag:  noteRisk.Pick(src),
			})
			noteSeq++
		}
	}
	return out
}
