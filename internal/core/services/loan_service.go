package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"library-desk/internal/core/domain"
)

// Loan service messages
const (
	MsgTitleRequired     = "Title is required."
	MsgTitleTooLong      = "Title must be less than 200 characters."
	MsgAuthorRequired    = "Author is required."
	MsgAuthorTooLong     = "Author must be less than 100 characters."
	MsgInvalidISBN       = "ISBN must be exactly 13 digits."
	MsgInvalidCopies     = "Total copies must be a positive integer."
	MsgAddBookDBError    = "Database error occurred while adding the book."
	MsgInvalidPatronID   = "Invalid patron ID. Must be exactly 6 digits."
	MsgInvalidBookID     = "Invalid book ID."
	MsgBookNotFound      = "Book not found."
	MsgBookUnavailable   = "This book is currently not available."
	MsgBorrowRecordError = "Database error occurred while creating borrow record."
	MsgAvailabilityError = "Database error occurred while updating book availability."
	MsgLookupError       = "Database error occurred while looking up records."
	MsgReturnBadPatron   = "Invalid patron ID: must be 6 digits."
	MsgReturnInvalidBook = "Invalid book: no record found."
	MsgNotBorrowed       = "No record found: this book was not borrowed by the patron."
	MsgReturnDBError     = "Database error occurred while recording the return."
)

// LoanService enforces the borrowing policy over the record store
type LoanService struct {
	bookStore  BookStore
	loanStore  LoanStore
	feeService *FeeService
	now        Clock
}

// NewLoanService creates a new loan service
func NewLoanService(bookStore BookStore, loanStore LoanStore, feeService *FeeService) *LoanService {
	return &LoanService{
		bookStore:  bookStore,
		loanStore:  loanStore,
		feeService: feeService,
		now:        time.Now,
	}
}

// AddToCatalog validates and inserts a new book with every copy available
func (s *LoanService) AddToCatalog(ctx context.Context, title, author, isbn string, totalCopies int) domain.Outcome {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	switch {
	case title == "":
		return domain.Failed(MsgTitleRequired)
	case utf8.RuneCountInString(title) > maxTitleLength:
		return domain.Failed(MsgTitleTooLong)
	case author == "":
		return domain.Failed(MsgAuthorRequired)
	case utf8.RuneCountInString(author) > maxAuthorLength:
		return domain.Failed(MsgAuthorTooLong)
	case utf8.RuneCountInString(isbn) != isbnLength:
		return domain.Failed(MsgInvalidISBN)
	case totalCopies <= 0:
		return domain.Failed(MsgInvalidCopies)
	}

	existing, err := s.bookStore.GetByISBN(ctx, isbn)
	if err != nil && !errors.Is(err, domain.ErrBookNotFound) {
		log.Printf("❌ ISBN lookup failed for %s: %v", isbn, err)
		return domain.Failed(MsgAddBookDBError)
	}
	if existing != nil {
		return domain.Failed(duplicateISBNMessage(isbn))
	}

	book := &domain.Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
	}
	if err := s.bookStore.Create(ctx, book); err != nil {
		if errors.Is(err, domain.ErrDuplicateISBN) {
			return domain.Failed(duplicateISBNMessage(isbn))
		}
		log.Printf("❌ Failed to add book %q: %v", title, err)
		return domain.Failed(MsgAddBookDBError)
	}

	log.Printf("📚 Book %d added to catalog: %s", book.ID, title)
	return domain.Succeeded(fmt.Sprintf("Book %q has been successfully added to the catalog.", title))
}

// Borrow opens a loan for the patron, due LoanPeriodDays from now.
// All preconditions are checked before anything is written.
func (s *LoanService) Borrow(ctx context.Context, patronID string, bookID int) domain.Outcome {
	if !IsValidPatronID(patronID) {
		return domain.Failed(MsgInvalidPatronID)
	}
	if !IsValidBookID(bookID) {
		return domain.Failed(MsgBookNotFound)
	}

	book, err := s.bookStore.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return domain.Failed(MsgBookNotFound)
		}
		log.Printf("❌ Book lookup failed for %d: %v", bookID, err)
		return domain.Failed(MsgLookupError)
	}

	if book.AvailableCopies <= 0 {
		return domain.Failed(MsgBookUnavailable)
	}

	active, err := s.loanStore.CountActiveByPatron(ctx, patronID)
	if err != nil {
		log.Printf("❌ Active loan count failed for patron %s: %v", patronID, err)
		return domain.Failed(MsgLookupError)
	}
	if active >= MaxLoanLimit {
		return domain.Failed(fmt.Sprintf("You have reached the maximum borrowing limit of %d books.", MaxLoanLimit))
	}

	borrowDate := s.now()
	loan := &domain.Loan{
		PatronID:   patronID,
		BookID:     bookID,
		BorrowDate: borrowDate,
		DueDate:    borrowDate.AddDate(0, 0, LoanPeriodDays),
	}

	// The loan and the availability change are not rolled back together;
	// a failure on the second write leaves the loan in place.
	if err := s.loanStore.Create(ctx, loan); err != nil {
		log.Printf("❌ Failed to create loan for patron %s book %d: %v", patronID, bookID, err)
		return domain.Failed(MsgBorrowRecordError)
	}
	if err := s.bookStore.AdjustAvailability(ctx, bookID, -1); err != nil {
		log.Printf("❌ Failed to decrement availability of book %d: %v", bookID, err)
		return domain.Failed(MsgAvailabilityError)
	}

	return domain.Succeeded(fmt.Sprintf("Successfully borrowed %q. Due date: %s.",
		book.Title, loan.DueDate.Format(domain.DateLayout)))
}

// Return closes the patron's open loan of the book and reports any late fee
func (s *LoanService) Return(ctx context.Context, patronID string, bookID int) domain.Outcome {
	if !IsValidPatronID(patronID) {
		return domain.Failed(MsgReturnBadPatron)
	}
	if !IsValidBookID(bookID) {
		return domain.Failed(MsgInvalidBookID)
	}

	book, err := s.bookStore.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return domain.Failed(MsgReturnInvalidBook)
		}
		log.Printf("❌ Book lookup failed for %d: %v", bookID, err)
		return domain.Failed(MsgLookupError)
	}

	now := s.now()

	// The fee is read while the loan is still open
	report := s.feeService.CalculateFee(ctx, patronID, bookID, now)

	closed, err := s.loanStore.CloseActive(ctx, patronID, bookID, now)
	if err != nil {
		log.Printf("❌ Failed to close loan for patron %s book %d: %v", patronID, bookID, err)
		return domain.Failed(MsgReturnDBError)
	}
	if closed == 0 {
		return domain.Failed(MsgNotBorrowed)
	}

	if book.AvailableCopies < book.TotalCopies {
		if err := s.bookStore.AdjustAvailability(ctx, bookID, 1); err != nil {
			log.Printf("⚠️ Failed to increment availability of book %d: %v", bookID, err)
		}
	}

	if report.FeeAmount.IsPositive() {
		return domain.Succeeded(fmt.Sprintf("Book returned successfully. Late fee: $%s.", report.FeeAmount.StringFixed(2)))
	}
	return domain.Succeeded("Book returned successfully. No late fee.")
}

func duplicateISBNMessage(isbn string) string {
	return fmt.Sprintf("A book with ISBN %s already exists.", isbn)
}
