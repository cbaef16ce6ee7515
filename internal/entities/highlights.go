package entities

import (
	"time"
)

// EntryType classifies a single clipping from the e-reader export.
type EntryType string

const (
	EntryTypeHighlight EntryType = "highlight"
	EntryTypeNote      EntryType = "note"
	EntryTypeBookmark  EntryType = "bookmark"
)

// LocationUnknown is the location value used when the metadata line
// carries no parseable location.
const LocationUnknown = "unknown"

// Highlight is one annotation unit extracted from the clippings export.
// Location and Page keep the exact captured substrings (e.g. "12-13")
// since exports and summaries render them verbatim.
type Highlight struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	BookID uint `gorm:"index" json:"-"`

	Title     string    `gorm:"index;size:512" json:"title"`
	Author    string    `gorm:"size:256" json:"author,omitempty"`
	Content   string    `gorm:"type:text" json:"content"`
	Location  string    `gorm:"size:32" json:"location"`
	Page      string    `gorm:"size:32" json:"page,omitempty"`
	DateAdded time.Time `json:"dateAdded"`
	Type      EntryType `gorm:"size:20;default:'highlight'" json:"type"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	UserNotes string    `gorm:"type:text" json:"userNotes,omitempty"`
}

// HasTag reports whether the highlight already carries the given tag.
func (h *Highlight) HasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag, keeping the tag list unique and ordered.
func (h *Highlight) AddTag(tag string) {
	if h.HasTag(tag) {
		return
	}
	h.Tags = append(h.Tags, tag)
}

// BookHighlights groups the highlights belonging to one title.
// Author comes from the first highlight seen for the title.
type BookHighlights struct {
	ID         uint        `gorm:"primaryKey" json:"-"`
	Title      string      `gorm:"index;size:512" json:"title"`
	Author     string      `gorm:"size:256" json:"author,omitempty"`
	Highlights []Highlight `gorm:"foreignKey:BookID" json:"highlights"`
}

// HighlightLibrary is the full extracted collection, books ordered by
// first appearance of each title in the source export.
type HighlightLibrary struct {
	Books           []BookHighlights `json:"books"`
	TotalHighlights int              `json:"totalHighlights"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

// FindBook returns the book with the exact title, or nil.
// Title matching is exact string equality, no normalization.
func (l *HighlightLibrary) FindBook(title string) *BookHighlights {
	for i := range l.Books {
		if l.Books[i].Title == title {
			return &l.Books[i]
		}
	}
	return nil
}

// CountHighlights sums the per-book highlight counts.
func (l *HighlightLibrary) CountHighlights() int {
	total := 0
	for i := range l.Books {
		total += len(l.Books[i].Highlights)
	}
	return total
}

// Flashcard is one generated question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Source   string `json:"source"`
}

func (BookHighlights) TableName() string {
	return "books"
}

func (Highlight) TableName() string {
	return "highlights"
}
