package services

import (
	"context"
	"log"
	"time"

	"library-desk/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Patron report statuses
const (
	ReportStatusOK            = "OK"
	ReportStatusInvalidPatron = "Invalid patron ID"
	ReportStatusUnavailable   = "Patron records unavailable"
)

// ReportService builds patron status reports
type ReportService struct {
	loanStore  LoanStore
	feeService *FeeService
	now        Clock
}

// NewReportService creates a new report service
func NewReportService(loanStore LoanStore, feeService *FeeService) *ReportService {
	return &ReportService{
		loanStore:  loanStore,
		feeService: feeService,
		now:        time.Now,
	}
}

// StatusReport lists the patron's open loans with their fees, the fee total
// and the full borrowing history
func (s *ReportService) StatusReport(ctx context.Context, patronID string) domain.PatronReport {
	if !IsValidPatronID(patronID) {
		return failedReport(ReportStatusInvalidPatron)
	}

	active, err := s.loanStore.ListActiveByPatron(ctx, patronID)
	if err != nil {
		log.Printf("❌ Failed to list active loans for patron %s: %v", patronID, err)
		return failedReport(ReportStatusUnavailable)
	}

	now := s.now()
	total := decimal.Zero
	current := make([]domain.CurrentBorrow, 0, len(active))
	for _, loan := range active {
		fee := s.feeService.CalculateFee(ctx, patronID, loan.BookID, now)
		total = total.Add(fee.FeeAmount)

		current = append(current, domain.CurrentBorrow{
			BookID:    loan.BookID,
			Title:     loan.Title,
			Author:    loan.Author,
			DueDate:   loan.DueDate.Format(domain.DateLayout),
			IsOverdue: fee.DaysOverdue > 0,
			Fee:       fee.FeeAmount.Round(2),
		})
	}

	records, err := s.loanStore.HistoryByPatron(ctx, patronID)
	if err != nil {
		log.Printf("❌ Failed to load history for patron %s: %v", patronID, err)
		return failedReport(ReportStatusUnavailable)
	}

	return domain.PatronReport{
		Status:         ReportStatusOK,
		CurrentBorrows: current,
		TotalLateFees:  total.Round(2),
		BorrowCount:    len(active),
		History:        buildHistory(records),
	}
}

func failedReport(status string) domain.PatronReport {
	return domain.PatronReport{
		Status:         status,
		CurrentBorrows: []domain.CurrentBorrow{},
		TotalLateFees:  decimal.Zero,
		History:        []domain.HistoryEntry{},
	}
}

func buildHistory(records []*domain.HistoryRecord) []domain.HistoryEntry {
	history := make([]domain.HistoryEntry, 0, len(records))
	for _, r := range records {
		entry := domain.HistoryEntry{
			BookID:     r.BookID,
			Title:      r.Title,
			Author:     r.Author,
			BorrowDate: r.BorrowDate.Format(domain.DateLayout),
			DueDate:    r.DueDate.Format(domain.DateLayout),
			Status:     domain.HistoryStatusBorrowed,
		}
		if r.ReturnDate != nil {
			returned := r.ReturnDate.Format(domain.DateLayout)
			entry.ReturnDate = &returned
			entry.Status = domain.HistoryStatusReturned
		}
		history = append(history, entry)
	}
	return history
}
