package models

// EnrollmentStatus defines the registration state of an enrollment
type EnrollmentStatus string

const (
	StatusEnrolled  EnrollmentStatus = "ENROLLED"  // In progress, no grade yet
	StatusCompleted EnrollmentStatus = "COMPLETED" // Graded
)

// Modality defines how a section is delivered
type Modality string

const (
	ModalityInPerson Modality = "INPERSON"
	ModalityOnline   Modality = "ONLINE"
	ModalityHybrid   Modality = "HYBRID"
)

// TransactionType distinguishes ledger entries on a student account
type TransactionType string

const (
	TransactionCharge  TransactionType = "CHARGE"
	TransactionPayment TransactionType = "PAYMENT"
)

// ClassStanding is the coarse progression label of a student
type ClassStanding string

const (
	StandingFreshman  ClassStanding = "Freshman"
	StandingSophomore ClassStanding = "Sophomore"
	StandingJunior    ClassStanding = "Junior"
	StandingSenior    ClassStanding = "Senior"
)

// Standings lists class standings in progression order
var Standings = []ClassStanding{StandingFreshman, StandingSophomore, StandingJunior, StandingSenior}

// Flag is a "0"/"1" indicator as written to the output files
type Flag string

const (
	FlagNo  Flag = "0"
	FlagYes Flag = "1"
)

// Bool reports whether the flag is set
func (f Flag) Bool() bool {
	return f == FlagYes
}
