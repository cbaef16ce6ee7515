package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/entities"
	"github.com/mrlokans/clippings/internal/exporters"
	"github.com/mrlokans/clippings/internal/utils"
)

// ExportSyncScheduler periodically renders the stored library to per-book
// markdown files in the configured output directory.
type ExportSyncScheduler struct {
	db  *database.Database
	cfg config.ExportSync

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewExportSyncScheduler(db *database.Database, cfg config.ExportSync) *ExportSyncScheduler {
	return &ExportSyncScheduler{
		db:   db,
		cfg:  cfg,
		cron: cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if export sync is enabled.
func (s *ExportSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Export sync scheduler: disabled")
		return nil
	}

	if s.cfg.OutputDir == "" {
		log.Printf("Export sync scheduler: output directory not configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export sync '%s': %w", s.cfg.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Export sync scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job.
func (s *ExportSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Export sync scheduler: stopped")
}

// RunNow triggers an immediate export.
func (s *ExportSyncScheduler) RunNow() {
	go s.runSync()
}

// IsRunning reports whether the scheduler is active.
func (s *ExportSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next export will occur.
func (s *ExportSyncScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *ExportSyncScheduler) runSync() {
	log.Printf("Export sync: starting export to %s", s.cfg.OutputDir)
	start := time.Now()

	library, err := s.db.LoadLibrary()
	if err != nil {
		log.Printf("Export sync: failed to load library: %v", err)
		return
	}

	if len(library.Books) == 0 {
		log.Printf("Export sync: no books to export")
		return
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0755); err != nil {
		log.Printf("Export sync: failed to create output directory: %v", err)
		return
	}

	exported := 0
	for i := range library.Books {
		if err := s.exportBook(library, &library.Books[i]); err != nil {
			log.Printf("Export sync: failed to export %q: %v", library.Books[i].Title, err)
			continue
		}
		exported++
	}

	log.Printf("Export sync: exported %d/%d books in %v", exported, len(library.Books), time.Since(start).Round(time.Millisecond))
}

func (s *ExportSyncScheduler) exportBook(library *entities.HighlightLibrary, book *entities.BookHighlights) error {
	content, err := exporters.Export(library, exporters.FormatMarkdown, exporters.ExportOptions{
		IncludeBooks: []string{book.Title},
	})
	if err != nil {
		return err
	}

	path := filepath.Join(s.cfg.OutputDir, utils.SanitizeFilename(book.Title)+".md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
