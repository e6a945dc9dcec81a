package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the plain date format used in messages and reports
const DateLayout = "2006-01-02"

// Book represents a catalog entry in the domain layer
type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// Loan represents a borrow record
type Loan struct {
	ID         int
	PatronID   string
	BookID     int
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
}

// IsActive reports whether the loan has not been returned yet
func (l *Loan) IsActive() bool {
	return l.ReturnDate == nil
}

// ActiveLoan is an open loan joined with the book fields
type ActiveLoan struct {
	Loan
	Title  string
	Author string
}

// HistoryRecord is one row of a patron's borrowing history, open or closed
type HistoryRecord struct {
	ID         int
	PatronID   string
	BookID     int
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	Title      string
	Author     string
}

// FeeStatus classifies the outcome of a fee calculation
type FeeStatus string

const (
	FeeStatusOK             FeeStatus = "OK"
	FeeStatusInvalidPatron  FeeStatus = "Invalid patron ID"
	FeeStatusInvalidBook    FeeStatus = "Invalid book ID"
	FeeStatusBookNotFound   FeeStatus = "Book not found"
	FeeStatusNoActiveBorrow FeeStatus = "No active borrow for this patron/book"
	FeeStatusLookupFailed   FeeStatus = "Record lookup failed"
)

// FeeReport is derived on demand from a loan's due date and is never stored
type FeeReport struct {
	FeeAmount   decimal.Decimal `json:"fee_amount"`
	DaysOverdue int             `json:"days_overdue"`
	Status      FeeStatus       `json:"status"`
}

// Outcome is the success flag and message of a catalog or loan operation
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Succeeded builds a successful outcome
func Succeeded(message string) Outcome {
	return Outcome{Success: true, Message: message}
}

// Failed builds a failed outcome
func Failed(message string) Outcome {
	return Outcome{Success: false, Message: message}
}

// PaymentResult is the transient record of a fee payment attempt
type PaymentResult struct {
	Success       bool            `json:"success"`
	TransactionID *string         `json:"transaction_id"`
	Status        string          `json:"status"`
	AmountCharged decimal.Decimal `json:"amount_charged"`
}

// RefundResult is the transient record of a refund attempt
type RefundResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// CurrentBorrow is one active loan line of a patron report
type CurrentBorrow struct {
	BookID    int             `json:"book_id"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	DueDate   string          `json:"due_date"`
	IsOverdue bool            `json:"is_overdue"`
	Fee       decimal.Decimal `json:"fee"`
}

// History entry statuses
const (
	HistoryStatusBorrowed = "borrowed"
	HistoryStatusReturned = "returned"
)

// HistoryEntry is one line of a patron's borrowing history
type HistoryEntry struct {
	BookID     int     `json:"book_id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	BorrowDate string  `json:"borrow_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
	Status     string  `json:"status"`
}

// PatronReport is the status view of a patron
type PatronReport struct {
	Status         string          `json:"status"`
	CurrentBorrows []CurrentBorrow `json:"current_borrows"`
	TotalLateFees  decimal.Decimal `json:"total_late_fees"`
	BorrowCount    int             `json:"borrow_count"`
	History        []HistoryEntry  `json:"history"`
}
