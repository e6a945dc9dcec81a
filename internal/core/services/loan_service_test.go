package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"library-desk/internal/core/domain"
	"library-desk/internal/core/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLoanService(books *mocks.BookStore, loans *mocks.LoanStore) *LoanService {
	svc := NewLoanService(books, loans, NewFeeService(books, loans))
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestLoanService_AddToCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("adds with every copy available", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByISBN", ctx, "9780441172719").Return(nil, domain.ErrBookNotFound)
		books.On("Create", ctx, mock.MatchedBy(func(b *domain.Book) bool {
			return b.Title == "Dune" && b.Author == "Frank Herbert" &&
				b.TotalCopies == 3 && b.AvailableCopies == 3
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Book).ID = 7
		}).Return(nil)

		out := newTestLoanService(books, loans).AddToCatalog(ctx, "  Dune ", "Frank Herbert", "9780441172719", 3)

		assert.True(t, out.Success)
		assert.Equal(t, `Book "Dune" has been successfully added to the catalog.`, out.Message)
		books.AssertExpectations(t)
	})

	t.Run("existing isbn is rejected", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByISBN", ctx, "9780441172719").Return(&domain.Book{ID: 1, Title: "Dune"}, nil)

		out := newTestLoanService(books, loans).AddToCatalog(ctx, "Something Else", "Someone", "9780441172719", 1)

		assert.False(t, out.Success)
		assert.Equal(t, "A book with ISBN 9780441172719 already exists.", out.Message)
		books.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate detected on insert", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByISBN", ctx, "9780441172719").Return(nil, domain.ErrBookNotFound)
		books.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateISBN)

		out := newTestLoanService(books, loans).AddToCatalog(ctx, "Dune", "Frank Herbert", "9780441172719", 1)

		assert.False(t, out.Success)
		assert.Contains(t, out.Message, "already exists")
	})

	t.Run("store failure", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByISBN", ctx, "9780441172719").Return(nil, domain.ErrBookNotFound)
		books.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

		out := newTestLoanService(books, loans).AddToCatalog(ctx, "Dune", "Frank Herbert", "9780441172719", 1)

		assert.False(t, out.Success)
		assert.Equal(t, MsgAddBookDBError, out.Message)
	})

	t.Run("isbn lookup failure", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByISBN", ctx, "9780441172719").Return(nil, errors.New("timeout"))

		out := newTestLoanService(books, loans).AddToCatalog(ctx, "Dune", "Frank Herbert", "9780441172719", 1)

		assert.Equal(t, MsgAddBookDBError, out.Message)
		books.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLoanService_AddToCatalogValidation(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		isbn   string
		copies int
		want   string
	}{
		{name: "blank title", title: "   ", author: "A", isbn: "1234567890123", copies: 1, want: MsgTitleRequired},
		{name: "long title", title: strings.Repeat("t", 201), author: "A", isbn: "1234567890123", copies: 1, want: MsgTitleTooLong},
		{name: "blank author", title: "T", author: "", isbn: "1234567890123", copies: 1, want: MsgAuthorRequired},
		{name: "long author", title: "T", author: strings.Repeat("a", 101), isbn: "1234567890123", copies: 1, want: MsgAuthorTooLong},
		{name: "short isbn", title: "T", author: "A", isbn: "123456789012", copies: 1, want: MsgInvalidISBN},
		{name: "long isbn", title: "T", author: "A", isbn: "12345678901234", copies: 1, want: MsgInvalidISBN},
		{name: "zero copies", title: "T", author: "A", isbn: "1234567890123", copies: 0, want: MsgInvalidCopies},
		{name: "negative copies", title: "T", author: "A", isbn: "1234567890123", copies: -3, want: MsgInvalidCopies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := new(mocks.BookStore)
			loans := new(mocks.LoanStore)

			out := newTestLoanService(books, loans).AddToCatalog(context.Background(), tt.title, tt.author, tt.isbn, tt.copies)

			assert.False(t, out.Success)
			assert.Equal(t, tt.want, out.Message)
			books.AssertNotCalled(t, "GetByISBN", mock.Anything, mock.Anything)
			books.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLoanService_Borrow(t *testing.T) {
	ctx := context.Background()
	dune := &domain.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", TotalCopies: 2, AvailableCopies: 1}

	t.Run("fifth loan is allowed", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(dune, nil)
		loans.On("CountActiveByPatron", ctx, "123456").Return(int64(4), nil)
		loans.On("Create", ctx, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.PatronID == "123456" && l.BookID == 1 &&
				l.BorrowDate.Equal(testNow) &&
				l.DueDate.Equal(testNow.AddDate(0, 0, LoanPeriodDays)) &&
				l.ReturnDate == nil
		})).Return(nil)
		books.On("AdjustAvailability", ctx, 1, -1).Return(nil)

		out := newTestLoanService(books, loans).Borrow(ctx, "123456", 1)

		assert.True(t, out.Success)
		assert.Equal(t, `Successfully borrowed "Dune". Due date: 2024-06-29.`, out.Message)
		books.AssertExpectations(t)
		loans.AssertExpectations(t)
	})

	t.Run("sixth loan is rejected", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(dune, nil)
		loans.On("CountActiveByPatron", ctx, "123456").Return(int64(5), nil)

		out := newTestLoanService(books, loans).Borrow(ctx, "123456", 1)

		assert.False(t, out.Success)
		assert.Equal(t, "You have reached the maximum borrowing limit of 5 books.", out.Message)
		loans.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		books.AssertNotCalled(t, "AdjustAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no copies left", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(&domain.Book{ID: 1, Title: "Dune", TotalCopies: 1}, nil)

		out := newTestLoanService(books, loans).Borrow(ctx, "123456", 1)

		assert.Equal(t, MsgBookUnavailable, out.Message)
		loans.AssertNotCalled(t, "CountActiveByPatron", mock.Anything, mock.Anything)
	})

	t.Run("invalid patron", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)

		out := newTestLoanService(books, loans).Borrow(ctx, "12345", 1)

		assert.Equal(t, MsgInvalidPatronID, out.Message)
		books.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown book", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 99).Return(nil, domain.ErrBookNotFound)

		svc := newTestLoanService(books, loans)
		assert.Equal(t, MsgBookNotFound, svc.Borrow(ctx, "123456", 99).Message)
		assert.Equal(t, MsgBookNotFound, svc.Borrow(ctx, "123456", 0).Message)
	})

	t.Run("loan insert fails", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(dune, nil)
		loans.On("CountActiveByPatron", ctx, "123456").Return(int64(0), nil)
		loans.On("Create", ctx, mock.Anything).Return(errors.New("constraint"))

		out := newTestLoanService(books, loans).Borrow(ctx, "123456", 1)

		assert.Equal(t, MsgBorrowRecordError, out.Message)
		books.AssertNotCalled(t, "AdjustAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("availability update fails", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(dune, nil)
		loans.On("CountActiveByPatron", ctx, "123456").Return(int64(0), nil)
		loans.On("Create", ctx, mock.Anything).Return(nil)
		books.On("AdjustAvailability", ctx, 1, -1).Return(errors.New("lock timeout"))

		out := newTestLoanService(books, loans).Borrow(ctx, "123456", 1)

		assert.False(t, out.Success)
		assert.Equal(t, MsgAvailabilityError, out.Message)
	})
}

func TestLoanService_Return(t *testing.T) {
	ctx := context.Background()
	lent := &domain.Book{ID: 1, Title: "Dune", TotalCopies: 2, AvailableCopies: 1}

	t.Run("late return reports the fee", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(lent, nil)
		loans.On("ListActiveByPatron", ctx, "123456").Return([]*domain.ActiveLoan{
			activeLoan("123456", 1, testNow.AddDate(0, 0, -10)),
		}, nil)
		loans.On("CloseActive", ctx, "123456", 1, testNow).Return(int64(1), nil)
		books.On("AdjustAvailability", ctx, 1, 1).Return(nil)

		out := newTestLoanService(books, loans).Return(ctx, "123456", 1)

		assert.True(t, out.Success)
		assert.Equal(t, "Book returned successfully. Late fee: $6.50.", out.Message)
		books.AssertExpectations(t)
		loans.AssertExpectations(t)
	})

	t.Run("on time return", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(lent, nil)
		loans.On("ListActiveByPatron", ctx, "123456").Return([]*domain.ActiveLoan{
			activeLoan("123456", 1, testNow.AddDate(0, 0, 2)),
		}, nil)
		loans.On("CloseActive", ctx, "123456", 1, testNow).Return(int64(1), nil)
		books.On("AdjustAvailability", ctx, 1, 1).Return(nil)

		out := newTestLoanService(books, loans).Return(ctx, "123456", 1)

		assert.Equal(t, "Book returned successfully. No late fee.", out.Message)
	})

	t.Run("not borrowed by patron", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(lent, nil)
		loans.On("ListActiveByPatron", ctx, "654321").Return([]*domain.ActiveLoan{}, nil)
		loans.On("CloseActive", ctx, "654321", 1, testNow).Return(int64(0), nil)

		out := newTestLoanService(books, loans).Return(ctx, "654321", 1)

		assert.False(t, out.Success)
		assert.Equal(t, MsgNotBorrowed, out.Message)
		books.AssertNotCalled(t, "AdjustAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("availability is capped at total", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(&domain.Book{ID: 1, Title: "Dune", TotalCopies: 2, AvailableCopies: 2}, nil)
		loans.On("ListActiveByPatron", ctx, "123456").Return([]*domain.ActiveLoan{
			activeLoan("123456", 1, testNow),
		}, nil)
		loans.On("CloseActive", ctx, "123456", 1, testNow).Return(int64(1), nil)

		out := newTestLoanService(books, loans).Return(ctx, "123456", 1)

		assert.True(t, out.Success)
		books.AssertNotCalled(t, "AdjustAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed increment still succeeds", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(lent, nil)
		loans.On("ListActiveByPatron", ctx, "123456").Return([]*domain.ActiveLoan{
			activeLoan("123456", 1, testNow),
		}, nil)
		loans.On("CloseActive", ctx, "123456", 1, testNow).Return(int64(1), nil)
		books.On("AdjustAvailability", ctx, 1, 1).Return(errors.New("deadlock"))

		out := newTestLoanService(books, loans).Return(ctx, "123456", 1)

		assert.True(t, out.Success)
	})

	t.Run("unknown book", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 5).Return(nil, domain.ErrBookNotFound)

		out := newTestLoanService(books, loans).Return(ctx, "123456", 5)

		assert.Equal(t, MsgReturnInvalidBook, out.Message)
		loans.AssertNotCalled(t, "CloseActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid identifiers", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		svc := newTestLoanService(books, loans)

		assert.Equal(t, "Invalid patron ID: must be 6 digits.", svc.Return(ctx, "abcdef", 1).Message)
		assert.Equal(t, MsgInvalidBookID, svc.Return(ctx, "123456", -1).Message)
	})

	t.Run("close fails", func(t *testing.T) {
		books := new(mocks.BookStore)
		loans := new(mocks.LoanStore)
		books.On("GetByID", ctx, 1).Return(lent, nil)
		loans.On("ListActiveByPatron", ctx, "123456").Return([]*domain.ActiveLoan{}, nil)
		loans.On("CloseActive", ctx, "123456", 1, testNow).Return(int64(0), errors.New("io"))

		out := newTestLoanService(books, loans).Return(ctx, "123456", 1)

		assert.Equal(t, MsgReturnDBError, out.Message)
	})
}
