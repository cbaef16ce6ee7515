package http

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/kindle"
	"github.com/mrlokans/clippings/internal/tasks"
)

const (
	maxClippingsFileSize = 10 * 1024 * 1024 // 10 MB
)

type KindleImportController struct {
	db         *database.Database
	taskClient *tasks.Client
}

func NewKindleImportController(db *database.Database, taskClient *tasks.Client) *KindleImportController {
	return &KindleImportController{
		db:         db,
		taskClient: taskClient,
	}
}

type KindleImportResult struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error,omitempty"`
	BooksImported      int      `json:"books_imported"`
	HighlightsImported int      `json:"highlights_imported"`
	Warnings           []string `json:"warnings,omitempty"`
}

// Import accepts a "My Clippings.txt" upload, extracts the library,
// replaces the stored one, and queues background auto-tagging.
func (c *KindleImportController) Import(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("clippings_file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, &KindleImportResult{
			Success: false,
			Error:   "Clippings file not provided",
		})
		return
	}
	defer file.Close()

	if header.Size > maxClippingsFileSize {
		ctx.JSON(http.StatusBadRequest, &KindleImportResult{
			Success: false,
			Error:   fmt.Sprintf("File too large (max %d MB)", maxClippingsFileSize/(1024*1024)),
		})
		return
	}

	limitedReader := io.LimitReader(file, maxClippingsFileSize+1)

	parser := kindle.NewParser()
	library, warnings, err := parser.ParseStrict(limitedReader)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, &KindleImportResult{
			Success: false,
			Error:   fmt.Sprintf("Failed to parse clippings: %v", err),
		})
		return
	}

	if err := c.db.ReplaceLibrary(library); err != nil {
		ctx.JSON(http.StatusInternalServerError, &KindleImportResult{
			Success: false,
			Error:   fmt.Sprintf("Failed to store library: %v", err),
		})
		return
	}

	if c.taskClient != nil {
		if _, err := c.taskClient.Add(tasks.AutoTagLibraryTask{}).Save(); err != nil {
			// Tagging can be re-run manually, the import itself succeeded
			log.Printf("failed to enqueue auto-tag task: %v", err)
		}
	}

	result := &KindleImportResult{
		Success:            true,
		BooksImported:      len(library.Books),
		HighlightsImported: library.TotalHighlights,
	}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.String())
	}

	ctx.JSON(http.StatusOK, result)
}
