package repositories

import (
	"context"
	"time"

	"library-desk/internal/adapters/persistence/models"
	"library-desk/internal/core/domain"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"    // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"gorm.io/gorm"
)

const (
	tableBorrowRecords = "borrow_records"
	tableBooks         = "books"
)

// LoanRepository handles borrow record data access
type LoanRepository struct {
	db      *gorm.DB
	dialect goqu.DialectWrapper
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{
		db:      db,
		dialect: goqu.Dialect(goquDialect(db.Dialector.Name())),
	}
}

// CountActiveByPatron counts the patron's open loans
func (r *LoanRepository) CountActiveByPatron(ctx context.Context, patronID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BorrowRecord{}).
		Where("patron_id = ? AND return_date IS NULL", patronID).
		Count(&count).Error
	return count, err
}

// Create inserts a borrow record and fills in its ID
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	row := &models.BorrowRecord{
		PatronID:   loan.PatronID,
		BookID:     loan.BookID,
		BorrowDate: loan.BorrowDate,
		DueDate:    loan.DueDate,
		ReturnDate: loan.ReturnDate,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	loan.ID = row.ID
	return nil
}

// CloseActive stamps the return date on the patron's open loans of the book
func (r *LoanRepository) CloseActive(ctx context.Context, patronID string, bookID int, returnedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.BorrowRecord{}).
		Where("patron_id = ? AND book_id = ? AND return_date IS NULL", patronID, bookID).
		Update("return_date", returnedAt)
	return result.RowsAffected, result.Error
}

// ListActiveByPatron lists the patron's open loans with their books, earliest due first
func (r *LoanRepository) ListActiveByPatron(ctx context.Context, patronID string) ([]*domain.ActiveLoan, error) {
	var rows []*models.BorrowRecord
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("patron_id = ? AND return_date IS NULL", patronID).
		Order("due_date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*domain.ActiveLoan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.ToActiveLoan())
	}
	return loans, nil
}

// HistoryByPatron lists every loan of the patron, newest borrow first
func (r *LoanRepository) HistoryByPatron(ctx context.Context, patronID string) ([]*domain.HistoryRecord, error) {
	query, _, err := r.dialect.
		From(goqu.T(tableBorrowRecords).As("br")).
		Join(goqu.T(tableBooks).As("b"), goqu.On(goqu.I("br.book_id").Eq(goqu.I("b.id")))).
		Select(
			goqu.I("br.id"),
			goqu.I("br.patron_id"),
			goqu.I("br.book_id"),
			goqu.I("br.borrow_date"),
			goqu.I("br.due_date"),
			goqu.I("br.return_date"),
			goqu.I("b.title"),
			goqu.I("b.author"),
		).
		Where(goqu.I("br.patron_id").Eq(patronID)).
		Order(r.borrowTimeDesc(), goqu.I("br.id").Desc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []*models.HistoryRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToDomain())
	}
	return records, nil
}

// borrowTimeDesc orders by the borrow instant. SQLite keeps timestamps as
// text with their original offset, so they go through julianday first.
func (r *LoanRepository) borrowTimeDesc() exp.OrderedExpression {
	if r.db.Dialector.Name() == "sqlite" {
		return goqu.L("julianday(?)", goqu.I("br.borrow_date")).Desc()
	}
	return goqu.I("br.borrow_date").Desc()
}

// goquDialect maps a gorm dialector name to the matching goqu dialect
func goquDialect(name string) string {
	switch name {
	case "sqlite":
		return "sqlite3"
	case "postgres", "mysql":
		return name
	default:
		return "default"
	}
}
