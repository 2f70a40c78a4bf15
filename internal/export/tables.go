// Package export turns a generated dataset into named tables of typed rows.
// The CSV writer and the warehouse loader both consume these tables, so the
// column order of a file and of its warehouse table is defined once here.
package export

import (
	"path"

	"github.com/yigit/student360/internal/seed"
)

// Kind tells writers how to render a column value
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindMoney
	KindDate
	KindTimestamp
	KindGradePoints
)

// Column is one named, typed column
type Column struct {
	Name string
	Kind Kind
}

// Output directories, one per source system
const (
	DirEnrollment = "enrollment-records"
	DirLearning   = "learning-activity"
	DirAdmissions = "admissions"
	DirFinancials = "financials"
	DirAdvising   = "advising"
)

// Dirs lists the output directories in write order
var Dirs = []string{DirEnrollment, DirLearning, DirAdmissions, DirFinancials, DirAdvising}

// warehouseSchemas maps each output directory to its warehouse schema
var warehouseSchemas = map[string]string{
	DirEnrollment: "sis",
	DirLearning:   "lms",
	DirAdmissions: "admissions",
	DirFinancials: "financials",
	DirAdvising:   "advising",
}

// Table is one output file: where it goes, its columns and its rows. Row
// values are string, int, int64, models.Money, time.Time or *float64,
// matching the column kinds.
type Table struct {
	Dir     string
	Name    string
	Columns []Column
	Rows    [][]any
}

// Path returns the file path relative to the output root, e.g. financials/transactions.csv
func (t Table) Path() string {
	return path.Join(t.Dir, t.Name+".csv")
}

// Schema returns the warehouse schema of the table
func (t Table) Schema() string {
	return warehouseSchemas[t.Dir]
}

// Header returns the column names in order
func (t Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func text(name string) Column      { return Column{Name: name, Kind: KindText} }
func integer(name string) Column   { return Column{Name: name, Kind: KindInt} }
func money(name string) Column     { return Column{Name: name, Kind: KindMoney} }
func date(name string) Column      { return Column{Name: name, Kind: KindDate} }
func timestamp(name string) Column { return Column{Name: name, Kind: KindTimestamp} }

// Tables lays out every table of ds in write order
func Tables(ds *seed.Dataset) []Table {
	return []Table{
		students(ds),
		terms(ds),
		courses(ds),
		sections(ds),
		enrollments(ds),

		lmsCrosswalk(ds),
		lmsLogins(ds),
		submissions(ds),

		applications(ds),
		testScores(ds),

		studentAccounts(ds),
		transactions(ds),
		aidAwards(ds),

		advisors(ds),
		appointments(ds),
		notes(ds),
	}
}

func students(ds *seed.Dataset) Table {
	t := Table{
		Dir:  DirEnrollment,
		Name: "students",
		Columns: []Column{
			integer("student_id"), text("first_name"), text("last_name"), text("email"), date("dob"),
			text("gender"), text("ethnicity"), text("residency"), text("program"), text("major"),
			text("admit_term_id"), text("current_term_id"), text("class_standing"), text("advisor_id"),
		},
		Rows: make([][]any, 0, len(ds.Students)),
	}
	for _, s := range ds.Students {
		t.Rows = append(t.Rows, []any{
			s.ID, s.FirstName, s.LastName, s.Email, s.DOB,
			s.Gender, s.Ethnicity, s.Residency, s.Program, s.Major,
			s.AdmitTermID, s.CurrentTermID, string(s.ClassStanding), s.AdvisorID,
		})
	}
	return t
}

func terms(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirEnrollment,
		Name:    "terms",
		Columns: []Column{text("term_id"), text("term_name"), date("start_date"), date("end_date")},
	}
	for _, term := range ds.Terms {
		t.Rows = append(t.Rows, []any{term.ID, term.Name, term.StartDate, term.EndDate})
	}
	return t
}

func courses(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirEnrollment,
		Name:    "courses",
		Columns: []Column{text("course_id"), text("subject"), text("catalog_nbr"), text("title"), integer("units")},
	}
	for _, c := range ds.Courses {
		t.Rows = append(t.Rows, []any{c.ID, c.Subject, c.CatalogNbr, c.Title, c.Units})
	}
	return t
}

func sections(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirEnrollment,
		Name:    "sections",
		Columns: []Column{text("course_section_id"), text("course_id"), text("term_id"), integer("section_nbr"), text("modality")},
	}
	for _, s := range ds.Sections {
		t.Rows = append(t.Rows, []any{s.ID, s.CourseID, s.TermID, s.SectionNbr, string(s.Modality)})
	}
	return t
}

func enrollments(ds *seed.Dataset) Table {
	t := Table{
		Dir:  DirEnrollment,
		Name: "enrollments",
		Columns: []Column{
			integer("student_id"), text("course_section_id"), text("term_id"),
			text("enrollment_status"), text("grade_letter"), {Name: "grade_points", Kind: KindGradePoints},
		},
		Rows: make([][]any, 0, len(ds.Enrollments)),
	}
	for _, e := range ds.Enrollments {
		t.Rows = append(t.Rows, []any{e.StudentID, e.SectionID, e.TermID, string(e.Status), e.GradeLetter, e.GradePoints})
	}
	return t
}

func lmsCrosswalk(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirLearning,
		Name:    "course_xwalk",
		Columns: []Column{text("course_section_id"), text("lms_course_id")},
	}
	for _, m := range ds.LMSMappings {
		t.Rows = append(t.Rows, []any{m.SectionID, m.LMSCourseID})
	}
	return t
}

func lmsLogins(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirLearning,
		Name:    "lms_logins",
		Columns: []Column{integer("student_id"), text("lms_course_id"), timestamp("event_ts"), text("event_type")},
		Rows:    make([][]any, 0, len(ds.LMSEvents)),
	}
	for _, e := range ds.LMSEvents {
		t.Rows = append(t.Rows, []any{e.StudentID, e.LMSCourseID, e.Timestamp, e.EventType})
	}
	return t
}

func submissions(ds *seed.Dataset) Table {
	t := Table{
		Dir:  DirLearning,
		Name: "submissions",
		Columns: []Column{
			integer("student_id"), text("lms_course_id"), text("assignment_id"), timestamp("submitted_ts"),
			integer("score"), integer("max_score"), text("late_flag"),
		},
		Rows: make([][]any, 0, len(ds.Submissions)),
	}
	for _, s := range ds.Submissions {
		t.Rows = append(t.Rows, []any{s.StudentID, s.LMSCourseID, s.AssignmentID, s.Timestamp, s.Score, s.MaxScore, string(s.LateFlag)})
	}
	return t
}

func applications(ds *seed.Dataset) Table {
	t := Table{
		Dir:  DirAdmissions,
		Name: "applications",
		Columns: []Column{
			integer("student_id"), text("application_id"), text("app_term_id"), date("app_complete_dt"),
			text("decision"), date("decision_dt"), text("deposit_flag"),
		},
	}
	for _, a := range ds.Applications {
		t.Rows = append(t.Rows, []any{a.StudentID, a.ApplicationID, a.AppTermID, a.CompletedDate, a.Decision, a.DecisionDate, string(a.DepositFlag)})
	}
	return t
}

func testScores(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirAdmissions,
		Name:    "tests",
		Columns: []Column{integer("student_id"), text("test_type"), date("test_date"), integer("score")},
	}
	for _, s := range ds.TestScores {
		t.Rows = append(t.Rows, []any{s.StudentID, s.TestType, s.TestDate, s.Score})
	}
	return t
}

func studentAccounts(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirFinancials,
		Name:    "student_accounts",
		Columns: []Column{integer("student_id"), text("term_id"), money("total_charges"), money("total_payments"), money("balance")},
	}
	for _, a := range ds.Accounts {
		t.Rows = append(t.Rows, []any{a.StudentID, a.TermID, a.TotalCharges, a.TotalPayments, a.Balance})
	}
	return t
}

func transactions(ds *seed.Dataset) Table {
	t := Table{
		Dir:  DirFinancials,
		Name: "transactions",
		Columns: []Column{
			text("transaction_id"), integer("student_id"), text("term_id"), date("trans_dt"),
			text("trans_type"), money("amount"), text("method"),
		},
		Rows: make([][]any, 0, len(ds.Transactions)),
	}
	for _, tx := range ds.Transactions {
		t.Rows = append(t.Rows, []any{tx.ID, tx.StudentID, tx.TermID, tx.Date, string(tx.Type), tx.Amount, tx.Method})
	}
	return t
}

func aidAwards(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirFinancials,
		Name:    "aid_awards",
		Columns: []Column{text("award_id"), integer("student_id"), text("term_id"), text("aid_type"), money("amount"), date("disbursed_dt")},
	}
	for _, a := range ds.AidAwards {
		t.Rows = append(t.Rows, []any{a.ID, a.StudentID, a.TermID, a.AidType, a.Amount, a.DisbursedDate})
	}
	return t
}

func advisors(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirAdvising,
		Name:    "advisors",
		Columns: []Column{text("advisor_id"), text("advisor_name"), text("department")},
	}
	for _, a := range ds.Advisors {
		t.Rows = append(t.Rows, []any{a.ID, a.Name, a.Department})
	}
	return t
}

func appointments(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirAdvising,
		Name:    "appointments",
		Columns: []Column{text("appointment_id"), integer("student_id"), text("advisor_id"), date("appointment_dt"), text("outcome")},
	}
	for _, a := range ds.Appointments {
		t.Rows = append(t.Rows, []any{a.ID, a.StudentID, a.AdvisorID, a.Date, a.Outcome})
	}
	return t
}

func notes(ds *seed.Dataset) Table {
	t := Table{
		Dir:     DirAdvising,
		Name:    "notes",
		Columns: []Column{text("note_id"), integer("student_id"), text("advisor_id"), date("note_dt"), text("category"), text("risk_flag")},
	}
	for _, n := range ds.Notes {
		t.Rows = append(t.Rows, []any{n.ID, n.StudentID, n.AdvisorID, n.Date, n.Category, string(n.RiskFlag)})
	}
	return t
}
