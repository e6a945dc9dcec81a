package services

import (
	"context"
	"errors"
	"log"
	"time"

	"library-desk/internal/core/domain"

	"github.com/shopspring/decimal"
)

// FeeService computes late fees for open loans
type FeeService struct {
	bookStore BookStore
	loanStore LoanStore
}

// NewFeeService creates a new fee service
func NewFeeService(bookStore BookStore, loanStore LoanStore) *FeeService {
	return &FeeService{
		bookStore: bookStore,
		loanStore: loanStore,
	}
}

// DaysOverdue counts the calendar days by which now is past due, floored at zero.
// Time of day is ignored; due is read in now's location.
func DaysOverdue(due, now time.Time) int {
	due = due.In(now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := int(today.Sub(dueDay).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FeeForDays applies the tiered rates and the cap to a count of overdue days
func FeeForDays(days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}

	firstTier := min(days, feeTierDays)
	laterDays := max(days-feeTierDays, 0)

	fee := FeeRateFirstTier.Mul(decimal.NewFromInt(int64(firstTier))).
		Add(FeeRateLaterDays.Mul(decimal.NewFromInt(int64(laterDays))))

	return decimal.Min(fee, MaxFee).Round(2)
}

// LateFee returns the fee and overdue day count for a loan due at due
func LateFee(due, now time.Time) (decimal.Decimal, int) {
	days := DaysOverdue(due, now)
	return FeeForDays(days), days
}

// CalculateFee builds the fee report for the patron's open loan of a book.
// Every failure is reported through the status; nothing is written.
func (s *FeeService) CalculateFee(ctx context.Context, patronID string, bookID int, now time.Time) domain.FeeReport {
	if !IsValidPatronID(patronID) {
		return zeroFee(domain.FeeStatusInvalidPatron)
	}
	if !IsValidBookID(bookID) {
		return zeroFee(domain.FeeStatusInvalidBook)
	}

	if _, err := s.bookStore.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return zeroFee(domain.FeeStatusBookNotFound)
		}
		log.Printf("❌ Fee lookup failed for book %d: %v", bookID, err)
		return zeroFee(domain.FeeStatusLookupFailed)
	}

	loan := s.findActiveLoan(ctx, patronID, bookID)
	if loan == nil {
		return zeroFee(domain.FeeStatusNoActiveBorrow)
	}

	fee, days := LateFee(loan.DueDate, now)
	return domain.FeeReport{
		FeeAmount:   fee,
		DaysOverdue: days,
		Status:      domain.FeeStatusOK,
	}
}

// findActiveLoan treats a failed lookup the same as no open loan
func (s *FeeService) findActiveLoan(ctx context.Context, patronID string, bookID int) *domain.ActiveLoan {
	loans, err := s.loanStore.ListActiveByPatron(ctx, patronID)
	if err != nil {
		log.Printf("⚠️ Active loan lookup failed for patron %s: %v", patronID, err)
		return nil
	}

	for _, loan := range loans {
		if loan.BookID == bookID {
			return loan
		}
	}
	return nil
}

func zeroFee(status domain.FeeStatus) domain.FeeReport {
	return domain.FeeReport{
		FeeAmount:   decimal.Zero,
		DaysOverdue: 0,
		Status:      status,
	}
}
