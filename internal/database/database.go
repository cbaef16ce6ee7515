// Package database persists the extracted highlight library in SQLite so
// the HTTP service survives restarts. Book and highlight rows keep their
// insertion order, which mirrors first-appearance order in the source
// export.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/clippings/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.BookHighlights{},
		&entities.Highlight{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReplaceLibrary swaps the stored library for the given one in a single
// transaction. Imports are whole-batch operations, so replace semantics
// keep the table an exact mirror of the last extraction.
func (d *Database) ReplaceLibrary(library *entities.HighlightLibrary) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Highlight{}).Error; err != nil {
			return fmt.Errorf("failed to clear highlights: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.BookHighlights{}).Error; err != nil {
			return fmt.Errorf("failed to clear books: %w", err)
		}

		for i := range library.Books {
			book := entities.BookHighlights{
				Title:      library.Books[i].Title,
				Author:     library.Books[i].Author,
				Highlights: make([]entities.Highlight, len(library.Books[i].Highlights)),
			}
			for j, h := range library.Books[i].Highlights {
				h.ID = 0
				h.BookID = 0
				book.Highlights[j] = h
			}
			if err := tx.Create(&book).Error; err != nil {
				return fmt.Errorf("failed to store book %q: %w", book.Title, err)
			}
		}
		return nil
	})
}

// LoadLibrary rebuilds the in-memory library from the stored rows,
// preserving insertion order.
func (d *Database) LoadLibrary() (*entities.HighlightLibrary, error) {
	var books []entities.BookHighlights
	err := d.DB.Preload("Highlights", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	library := &entities.HighlightLibrary{Books: books}
	library.TotalHighlights = library.CountHighlights()

	// LastUpdated reflects the latest stored annotation rather than load time
	for i := range library.Books {
		for _, h := range library.Books[i].Highlights {
			if h.DateAdded.After(library.LastUpdated) {
				library.LastUpdated = h.DateAdded
			}
		}
	}

	return library, nil
}

// UpdateHighlightTags writes back the tag list of a single highlight.
func (d *Database) UpdateHighlightTags(id uint, tags []string) error {
	return d.DB.Model(&entities.Highlight{}).Where("id = ?", id).Update("tags", tags).Error
}

// CountHighlights returns the number of stored highlights.
func (d *Database) CountHighlights() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Highlight{}).Count(&count).Error
	return count, err
}
