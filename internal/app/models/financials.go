package models

import "time"

// StudentAccount summarizes one student's bill for one term
type StudentAccount struct {
	StudentID     int64  `json:"studentId" db:"student_id"`
	TermID        string `json:"termId" db:"term_id"`
	TotalCharges  Money  `json:"totalCharges" db:"total_charges"`
	TotalPayments Money  `json:"totalPayments" db:"total_payments"` // payments plus aid
	Balance       Money  `json:"balance" db:"balance"`
}

// Transaction is one ledger entry on a student account
type Transaction struct {
	ID        string          `json:"transactionId" db:"transaction_id" example:"TX000000001"`
	StudentID int64           `json:"studentId" db:"student_id"`
	TermID    string          `json:"termId" db:"term_id"`
	Date      time.Time       `json:"transDt" db:"trans_dt"`
	Type      TransactionType `json:"transType" db:"trans_type"`
	Amount    Money           `json:"amount" db:"amount"`
	Method    string          `json:"method" db:"method"`
}

// AidAward is a grant, scholarship or loan applied to a term balance
type AidAward struct {
	ID            string    `json:"awardId" db:"award_id" example:"AWD0000001"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	TermID        string    `json:"termId" db:"term_id"`
	AidType       string    `json:"aidType" db:"aid_type"`
	Amount        Money     `json:"amount" db:"amount"`
	DisbursedDate time.Time `json:"disbursedDt" db:"disbursed_dt"`
}
