package models

import (
	"time"

	"library-desk/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Catalog
// ============================================================

// Book represents books table
type Book struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"size:200;not null;index" json:"title"`
	Author          string    `gorm:"size:100;not null;index" json:"author"`
	ISBN            string    `gorm:"column:isbn;uniqueIndex;size:13;not null" json:"isbn"`
	TotalCopies     int       `gorm:"not null" json:"total_copies"`
	AvailableCopies int       `gorm:"not null" json:"available_copies"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// ToDomain converts the row into a domain book
func (b *Book) ToDomain() *domain.Book {
	return &domain.Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

// BookFromDomain builds a row from a domain book
func BookFromDomain(b *domain.Book) *Book {
	return &Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

// ============================================================
// Circulation
// ============================================================

// BorrowRecord represents borrow_records table.
// A nil ReturnDate marks the loan as still open.
type BorrowRecord struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	PatronID   string     `gorm:"size:6;not null;index:idx_borrow_patron_book" json:"patron_id"`
	BookID     int        `gorm:"not null;index:idx_borrow_patron_book" json:"book_id"`
	BorrowDate time.Time  `gorm:"not null" json:"borrow_date"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	ReturnDate *time.Time `gorm:"index" json:"return_date,omitempty"`

	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (BorrowRecord) TableName() string {
	return "borrow_records"
}

// ToDomain converts the row into a domain loan
func (r *BorrowRecord) ToDomain() *domain.Loan {
	return &domain.Loan{
		ID:         r.ID,
		PatronID:   r.PatronID,
		BookID:     r.BookID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
	}
}

// ToActiveLoan converts the row and its preloaded book into an active loan
func (r *BorrowRecord) ToActiveLoan() *domain.ActiveLoan {
	loan := &domain.ActiveLoan{Loan: *r.ToDomain()}
	if r.Book != nil {
		loan.Title = r.Book.Title
		loan.Author = r.Book.Author
	}
	return loan
}

// HistoryRow is the scan target of the history join
type HistoryRow struct {
	ID         int        `gorm:"column:id"`
	PatronID   string     `gorm:"column:patron_id"`
	BookID     int        `gorm:"column:book_id"`
	BorrowDate time.Time  `gorm:"column:borrow_date"`
	DueDate    time.Time  `gorm:"column:due_date"`
	ReturnDate *time.Time `gorm:"column:return_date"`
	Title      string     `gorm:"column:title"`
	Author     string     `gorm:"column:author"`
}

// ToDomain converts the row into a history record
func (h *HistoryRow) ToDomain() *domain.HistoryRecord {
	return &domain.HistoryRecord{
		ID:         h.ID,
		PatronID:   h.PatronID,
		BookID:     h.BookID,
		BorrowDate: h.BorrowDate,
		DueDate:    h.DueDate,
		ReturnDate: h.ReturnDate,
		Title:      h.Title,
		Author:     h.Author,
	}
}

// AutoMigrate creates or updates the circulation tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Book{}, &BorrowRecord{})
}
