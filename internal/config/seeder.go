package config

import (
	"errors"
	"log"

	"library-desk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedCatalog(); err != nil {
		log.Printf("⚠️ Catalog seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// sampleBooks is the starter catalog for development databases
var sampleBooks = []models.Book{
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", ISBN: "9780743273565", TotalCopies: 3},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "9780061120084", TotalCopies: 2},
	{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", TotalCopies: 1},
}

// seedCatalog inserts the sample books whose ISBN is not in the catalog yet
func (s *Seeder) seedCatalog() error {
	for _, b := range sampleBooks {
		var existing models.Book
		err := s.db.Where("isbn = ?", b.ISBN).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		book := b
		book.AvailableCopies = book.TotalCopies
		if err := s.db.Create(&book).Error; err != nil {
			return err
		}
		log.Printf("   Created book: %s", book.Title)
	}
	return nil
}
