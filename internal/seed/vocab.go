package seed

import (
	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/random"
)

// Default sizes of the fixed pools
const (
	DefaultCourseCount  = 120
	DefaultAdvisorCount = 50

	// Per-enrollment learning activity
	EventsPerEnrollment      = 6
	AssignmentsPerEnrollment = 4

	studentIDBase = 10000000
	maxScore      = 100
)

var (
	subjects = []string{
		"MATH", "ENG", "CS", "BIO", "CHEM", "HIST", "ECON",
		"PSYC", "PHYS", "ART", "STAT", "BUS", "SOC", "PHIL",
	}
	courseTitles = []string{
		"Introduction", "Foundations", "Principles", "Advanced Topics", "Methods", "Applications",
		"Data Analysis", "Algorithms", "Laboratory", "Seminar", "Design",
	}
	courseUnits  = random.Uniform(3, 3, 3, 4)
	sectionCount = random.MustWeighted(
		random.Choice[int]{Value: 1, Weight: 3},
		random.Choice[int]{Value: 2, Weight: 1},
		random.Choice[int]{Value: 3, Weight: 1},
	)
	modalities = random.Uniform(models.ModalityInPerson, models.ModalityOnline, models.ModalityHybrid)
)

var (
	advisorFirstNames = []string{
		"Alex", "Jordan", "Taylor", "Casey", "Riley", "Morgan", "Jamie", "Avery", "Quinn", "Parker",
		"Reese", "Blake", "Drew", "Rowan", "Skyler", "Hayden", "Kendall", "Logan", "Emerson", "Finley",
	}
	advisorLastNames = []string{
		"Smith", "Johnson", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez",
		"Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	}
	departments = []string{"Engineering", "Science", "Arts", "Business", "Social Sciences", "Education", "Health", "Undeclared"}
)

var (
	studentFirstNames = []string{
		"Olivia", "Liam", "Emma", "Noah", "Ava", "Oliver", "Sophia", "Elijah", "Isabella", "Mateo",
		"Mia", "Lucas", "Amelia", "Levi", "Harper", "Asher", "Evelyn", "James", "Luna", "Benjamin",
	}
	studentLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	genders     = []string{"F", "M", "X"}
	ethnicities = []string{"Not Disclosed", "Hispanic or Latino", "White", "Black or African American", "Asian", "Multiracial"}
	residency   = random.MustWeighted(
		random.Choice[string]{Value: "IN_STATE", Weight: 70},
		random.Choice[string]{Value: "OUT_OF_STATE", Weight: 25},
		random.Choice[string]{Value: "INTERNATIONAL", Weight: 5},
	)
	majors = []string{
		"Computer Science", "Mathematics", "Biology", "Chemistry", "Economics", "Psychology", "History", "Art",
		"Business Administration", "Sociology", "Statistics", "Physics", "Philosophy", "Education", "Nursing",
	}
)

const program = "Undergraduate"

var (
	currentLoad  = random.Uniform(4, 4, 5)
	priorLoad    = random.Uniform(3, 4)
	hasPriorTerm = random.Chance(40)
	gradeLetters = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "D", "F"}
	gradePoints  = map[string]float64{
		"A": 4.0, "A-": 3.7, "B+": 3.3, "B": 3.0, "B-": 2.7,
		"C+": 2.3, "C": 2.0, "D": 1.0, "F": 0.0,
	}
)

var (
	eventTypes = []string{"login", "view", "discussion_view", "resource_click"}
	lateFlag   = random.MustWeighted(
		random.Choice[models.Flag]{Value: models.FlagNo, Weight: 3},
		random.Choice[models.Flag]{Value: models.FlagYes, Weight: 1},
	)
)

var (
	depositFlag = random.MustWeighted(
		random.Choice[models.Flag]{Value: models.FlagYes, Weight: 3},
		random.Choice[models.Flag]{Value: models.FlagNo, Weight: 1},
	)
	hasTestScore = random.Chance(60)
	testTypes    = []string{"SAT", "ACT"}
)

var (
	tuitionRate = random.MustWeighted(
		random.Choice[int]{Value: 350, Weight: 70},
		random.Choice[int]{Value: 650, Weight: 30},
	)
	receivesAid    = random.Chance(55)
	aidTypes       = []string{"Grant", "Scholarship", "Loan"}
	paymentCount   = random.Uniform(1, 2, 3)
	paymentMethods = []string{"CARD", "ACH", "CASH"}
)

var (
	appointmentCount   = random.Uniform(0, 0, 1, 1, 2, 3)
	appointmentMonths  = []int{2, 3, 9, 10}
	appointmentOutcome = []string{"Completed", "No Show", "Rescheduled", "Action Plan"}
	takesNote          = random.Chance(50)
	noteCategories     = []string{"Academic", "Financial", "Wellness", "Career"}
	noteRisk           = random.MustWeighted(
		random.Choice[models.Flag]{Value: models.FlagNo, Weight: 2},
		random.Choice[models.Flag]{Value: models.FlagYes, Weight: 1},
	)
)

// GradePoints returns the GPA points of a letter grade
func GradePoints(letter string) (float64, bool) {
	p, ok := gradePoints[letter]
	return p, ok
}
