package services

import (
	"context"
	"time"

	"library-desk/internal/core/domain"

	"github.com/shopspring/decimal"
)

// BookStore is the catalog side of the record store.
// GetByID and GetByISBN return domain.ErrBookNotFound when the book is absent.
type BookStore interface {
	GetByID(ctx context.Context, id int) (*domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) error
	AdjustAvailability(ctx context.Context, id int, delta int) error
	List(ctx context.Context) ([]*domain.Book, error)
}

// LoanStore is the borrow-record side of the record store
type LoanStore interface {
	CountActiveByPatron(ctx context.Context, patronID string) (int64, error)
	Create(ctx context.Context, loan *domain.Loan) error
	// CloseActive sets the return timestamp on the patron's open loan for the
	// book and returns the number of records it touched.
	CloseActive(ctx context.Context, patronID string, bookID int, returnedAt time.Time) (int64, error)
	ListActiveByPatron(ctx context.Context, patronID string) ([]*domain.ActiveLoan, error)
	// HistoryByPatron lists every loan of the patron, newest borrow first.
	HistoryByPatron(ctx context.Context, patronID string) ([]*domain.HistoryRecord, error)
}

// PaymentGateway is the external collaborator that moves money
type PaymentGateway interface {
	Charge(ctx context.Context, patronID string, amount decimal.Decimal) (domain.GatewayResponse, error)
	Refund(ctx context.Context, transactionID string, amount decimal.Decimal) (domain.GatewayResponse, error)
}
