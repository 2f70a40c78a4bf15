package seed

import (
	"fmt"
	"time"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/helpers"
	"github.com/yigit/student360/internal/pkg/random"
)

var applicationWindowStart = helpers.Date(2024, time.January, 1)

// Admissions is the output of the admissions derivation
type Admissions struct {
	Applications []models.Application
	TestScores   []models.TestScore
}

// GenerateAdmissions creates one application per student, anchored to the
// student's admit term, and a test score for about 60% of students.
func GenerateAdmissions(src *random.Source, students []models.Student) Admissions {
	out := Admissions{Applications: make([]models.Application, 0, len(students))}
	for _, st := range students {
		completed := applicationWindowStart.AddDate(0, 0, src.IntRange(0, 200))
		decided := completed.AddDate(0, 0, src.IntRange(5, 30))
		out.Applications = append(out.Applications, models.Application{
			StudentID:     st.ID,
			ApplicationID: fmt.Sprintf("APP%d", st.ID),
			AppTermID:     st.AdmitTermID,
			CompletedDate: completed,
			Decision:      "Admit",
			DecisionDate:  decided,
			DepositFlag:   depositFlag.Pick(src),
		})

		if !hasTestScore.Pick(src) {
			continue
		}
		testType := random.Pick(src, testTypes)
		testDate := completed.AddDate(0, 0, -src.IntRange(30, 180))
		out.TestScores = append(out.TestScores, models.TestScore{
			StudentID: st.ID,
			TestType:  testType,
			TestDate:  testDate,
			Score:     testScore(src, testType),
		})
	}
	return out
}

func testScore(src *random.Source, testType string) int {
	if testType == "ACT" {
		return src.IntRange(18, 35)
	}
	return src.IntRange(900, 1550)
}
