package models

import (
	"fmt"
	"math"
)

// Money is an amount in integer cents. Totals are summed in cents so account
// summaries reconcile exactly with their ledger.
type Money int64

// Dollars converts a whole-dollar amount to Money
func Dollars(d int) Money {
	return Money(d) * 100
}

// Float returns the amount in dollars
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String formats the amount with two decimals, e.g. "1450.00" or "-12.50"
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// RoundMoney rounds a dollar float to the nearest cent
func RoundMoney(dollars float64) Money {
	return Money(math.Round(dollars * 100))
}
