package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// Borrowing policy
const (
	LoanPeriodDays = 14
	MaxLoanLimit   = 5

	// feeTierDays is the number of overdue days billed at the first rate
	feeTierDays = 7

	patronIDLength  = 6
	isbnLength      = 13
	maxTitleLength  = 200
	maxAuthorLength = 100
)

// Fee rates
var (
	FeeRateFirstTier = decimal.RequireFromString("0.50")
	FeeRateLaterDays = decimal.RequireFromString("1.00")
	MaxFee           = decimal.RequireFromString("15.00")
)

// IsValidPatronID reports whether id is exactly six ASCII digits
func IsValidPatronID(id string) bool {
	if len(id) != patronIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidBookID reports whether id is a positive integer
func IsValidBookID(id int) bool {
	return id > 0
}

// Clock returns the current instant
type Clock func() time.Time
