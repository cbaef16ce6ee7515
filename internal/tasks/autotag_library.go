package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/database"
)

// AutoTagLibraryTask applies the keyword table to every untagged stored
// highlight. Enqueued after each import so fresh highlights get their
// heuristic tags without blocking the import request.
type AutoTagLibraryTask struct{}

// Config returns the queue configuration for auto-tagging tasks.
func (t AutoTagLibraryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "autotag_library",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// AutoTagLibraryProcessor creates the processor for AutoTagLibraryTask.
func AutoTagLibraryProcessor(db *database.Database) backlite.QueueProcessor[AutoTagLibraryTask] {
	return func(ctx context.Context, task AutoTagLibraryTask) error {
		if db == nil {
			return fmt.Errorf("database not configured")
		}

		library, err := db.LoadLibrary()
		if err != nil {
			return fmt.Errorf("load library for auto-tagging: %w", err)
		}

		analyzer.AutoTag(library, nil)

		tagged := 0
		for i := range library.Books {
			for _, h := range library.Books[i].Highlights {
				if len(h.Tags) == 0 {
					continue
				}
				if err := db.UpdateHighlightTags(h.ID, h.Tags); err != nil {
					return fmt.Errorf("store tags for highlight %d: %w", h.ID, err)
				}
				tagged++
			}
		}

		log.Printf("[TASK] Auto-tagged library: %d highlights carry tags", tagged)
		return nil
	}
}

// NewAutoTagLibraryQueue creates a backlite queue for auto-tagging tasks.
func NewAutoTagLibraryQueue(db *database.Database) backlite.Queue {
	return backlite.NewQueue(AutoTagLibraryProcessor(db))
}
