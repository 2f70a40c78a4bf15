package seed

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/pkg/random"
)

var validate = validator.New()

// Options are the generator parameters
type Options struct {
	Students int   `validate:"gt=0"`
	Seed     int64 // any value, including 0 and negatives
}

// Validate rejects non-positive student counts with ErrInvalidArgument
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return apperrors.NewInvalidArgumentError(fmt.Sprintf("student count must be positive, got %d", o.Students))
	}
	return nil
}

// Dataset is one fully materialized, immutable snapshot of every table
type Dataset struct {
	Options Options

	Terms       []models.Term
	Courses     []models.Course
	Sections    []models.Section
	Advisors    []models.Advisor
	Students    []models.Student
	Enrollments []models.Enrollment

	LMSMappings []models.LMSCourseMapping
	LMSEvents   []models.LMSEvent
	Submissions []models.Submission

	Applications []models.Application
	TestScores   []models.TestScore

	Accounts     []models.StudentAccount
	Transactions []models.Transaction
	AidAwards    []models.AidAward

	Appointments []models.Appointment
	Notes        []models.Note

	Lookups *Lookups
}

// Generate runs every component in dependency order against one random
// source seeded from opts.Seed. The same options always produce the same dataset.
func Generate(opts Options, lgr zerolog.Logger) (*Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	src := random.New(opts.Seed)
	ds := &Dataset{Options: opts}

	ds.Terms = GenerateTerms()
	ds.Courses = GenerateCourses(src, DefaultCourseCount)
	ds.Sections = GenerateSections(src, ds.Courses, ds.Terms)
	ds.Lookups = NewLookups(ds.Terms, ds.Courses, ds.Sections)
	lgr.Debug().Int("terms", len(ds.Terms)).Int("courses", len(ds.Courses)).Int("sections", len(ds.Sections)).Msg("Catalog generated")

	ds.Advisors = GenerateAdvisors(src, DefaultAdvisorCount)
	ds.Students = GenerateStudents(src, opts.Students, ds.Terms, ds.Advisors)
	ds.Enrollments = GenerateEnrollments(src, ds.Students, ds.Lookups)
	lgr.Debug().Int("students", len(ds.Students)).Int("enrollments", len(ds.Enrollments)).Msg("Enrollment records generated")

	lms := GenerateLearningActivity(src, ds.Enrollments, ds.Sections, ds.Lookups)
	ds.LMSMappings, ds.LMSEvents, ds.Submissions = lms.Mappings, lms.Events, lms.Submissions
	lgr.Debug().Int("events", len(ds.LMSEvents)).Int("submissions", len(ds.Submissions)).Msg("Learning activity generated")

	adm := GenerateAdmissions(src, ds.Students)
	ds.Applications, ds.TestScores = adm.Applications, adm.TestScores

	fin := GenerateFinancials(src, ds.Enrollments, ds.Lookups)
	ds.Accounts, ds.Transactions, ds.AidAwards = fin.Accounts, fin.Transactions, fin.AidAwards
	lgr.Debug().Int("accounts", len(ds.Accounts)).Int("aidAwards", len(ds.AidAwards)).Msg("Financials generated")

	adv := GenerateAdvising(src, ds.Students, ds.Advisors)
	ds.Appointments, ds.Notes = adv.Appointments, adv.Notes

	lgr.Info().
		Int("students", opts.Students).
		Int64("seed", opts.Seed).
		Int("enrollments", len(ds.Enrollments)).
		Int("transactions", len(ds.Transactions)).
		Int("appointments", len(ds.Appointments)).
		Msg("Dataset generated")
	return ds, nil
}
