package services

import (
	"context"
	"errors"
	"strings"

	"library-desk/internal/core/domain"
)

// Catalog search types
const (
	SearchByTitle  = "title"
	SearchByAuthor = "author"
	SearchByISBN   = "isbn"
)

// CatalogService answers read-only catalog queries
type CatalogService struct {
	bookStore BookStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(bookStore BookStore) *CatalogService {
	return &CatalogService{bookStore: bookStore}
}

// List returns every book in the catalog
func (s *CatalogService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.bookStore.List(ctx)
}

// Search matches title or author case-insensitively by substring, or isbn exactly.
// A blank term or an unknown search type yields no results.
func (s *CatalogService) Search(ctx context.Context, term, searchType string) ([]*domain.Book, error) {
	q := strings.TrimSpace(term)
	st := strings.ToLower(strings.TrimSpace(searchType))
	if q == "" {
		return []*domain.Book{}, nil
	}

	switch st {
	case SearchByISBN:
		book, err := s.bookStore.GetByISBN(ctx, q)
		if err != nil {
			if errors.Is(err, domain.ErrBookNotFound) {
				return []*domain.Book{}, nil
			}
			return nil, err
		}
		return []*domain.Book{book}, nil

	case SearchByTitle, SearchByAuthor:
		books, err := s.bookStore.List(ctx)
		if err != nil {
			return nil, err
		}

		needle := strings.ToLower(q)
		results := make([]*domain.Book, 0)
		for _, b := range books {
			value := b.Title
			if st == SearchByAuthor {
				value = b.Author
			}
			if strings.Contains(strings.ToLower(value), needle) {
				results = append(results, b)
			}
		}
		return results, nil
	}

	return []*domain.Book{}, nil
}
