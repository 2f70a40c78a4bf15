package seed

import (
	"fmt"

	"github.com/yigit/student360/internal/app/models"
	"github.com/yigit/student360/internal/pkg/random"
)

// Financials is the output of the financials derivation. For every account,
// the PAYMENT transactions plus the award of the same (student, term) sum to
// TotalPayments, and exactly one CHARGE equals TotalCharges.
type Financials struct {
	Accounts     []models.StudentAccount
	Transactions []models.Transaction
	AidAwards    []models.AidAward
}

type accountKey struct {
	studentID int64
	termID    string
}

// GenerateFinancials bills every (student, term) group of enrollments, in the
// order the groups first appear.
func GenerateFinancials(src *random.Source, enrollments []models.Enrollment, lk *Lookups) Financials {
	var order []accountKey
	units := make(map[accountKey]int)
	for _, enr := range enrollments {
		key := accountKey{studentID: enr.StudentID, termID: enr.TermID}
		if _, seen := units[key]; !seen {
			order = append(order, key)
		}
		units[key] += lk.SectionUnits(enr.SectionID)
	}

	var out Financials
	txSeq, awardSeq := 1, 1
	for _, key := range order {
		term, _ := lk.Term(key.termID)

		rate := tuitionRate.Pick(src)
		fee := src.IntRange(100, 400)
		totalCharges := models.Dollars(units[key]*rate + fee)

		var aid models.Money
		if receivesAid.Pick(src) {
			aid = models.Dollars(src.IntRange(500, 3500))
			out.AidAwards = append(out.AidAwards, models.AidAward{
				ID:            fmt.Sprintf("AWD%07d", awardSeq),
				StudentID:     key.studentID,
				TermID:        key.termID,
				AidType:       random.Pick(src, aidTypes),
				Amount:        aid,
				DisbursedDate: term.AidDisbursedDate,
			})
			awardSeq++
		}

		var payments models.Money
		for n := paymentCount.Pick(src); n > 0; n-- {
			amt := models.Dollars(src.IntRange(200, 2000))
			payments += amt
			out.Transactions = append(out.Transactions, models.Transaction{
				ID:        fmt.Sprintf("TX%09d", txSeq),
				StudentID: key.studentID,
				TermID:    key.termID,
				Date:      term.PaymentDate,
				Type:      models.TransactionPayment,
				Amount:    amt,
				Method:    random.Pick(src, paymentMethods),
			})
			txSeq++
		}

		out.Transactions = append(out.Transactions, models.Transaction{
			ID:        fmt.Sprintf("TX%09d", txSeq),
			StudentID: key.studentID,
			TermID:    key.termID,
			Date:      term.ChargeDate,
			Type:      models.TransactionCharge,
			Amount:    totalCharges,
			Method:    "BILLING",
		})
		txSeq++

		totalPayments := payments + aid
		out.Accounts = append(out.Accounts, models.StudentAccount{
			StudentID:     key.studentID,
			TermID:        key.termID,
			TotalCharges:  totalCharges,
			TotalPayments: totalPayments,
			Balance:       totalCharges - totalPayments,
		})
	}
	return out
}
