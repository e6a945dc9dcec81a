package repositories

import (
	"context"
	"errors"

	"library-desk/internal/adapters/persistence/models"
	"library-desk/internal/core/domain"

	"gorm.io/gorm"
)

// BookRepository handles catalog data access
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// GetByID gets a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return book.ToDomain(), nil
}

// GetByISBN gets a book by ISBN
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return book.ToDomain(), nil
}

// Create inserts a book and fills in its ID
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	row := models.BookFromDomain(book)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateISBN
		}
		return err
	}
	book.ID = row.ID
	return nil
}

// AdjustAvailability adds delta to the available copies of a book
func (r *BookRepository) AdjustAvailability(ctx context.Context, id int, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.Book{}).
		Where("id = ?", id).
		Update("available_copies", gorm.Expr("available_copies + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// List lists all books ordered by title
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	var rows []*models.Book
	if err := r.db.WithContext(ctx).Order("title ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	books := make([]*domain.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.ToDomain())
	}
	return books, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrBookNotFound
	}
	return err
}
