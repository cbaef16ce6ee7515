package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/tasks"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Database   *database.Database
	TaskClient *tasks.Client

	// Application info
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/api/health", health.Status)

	importController := NewKindleImportController(cfg.Database, cfg.TaskClient)
	router.POST("/api/import/kindle", importController.Import)

	libraryController := NewLibraryController(cfg.Database)
	router.GET("/api/library", libraryController.GetLibrary)
	router.GET("/api/books/:title", libraryController.GetBook)

	summaryController := NewSummaryController(cfg.Database)
	router.GET("/api/books/:title/summary", summaryController.GetSummary)

	searchController := NewSearchController(cfg.Database)
	router.GET("/api/search", searchController.Search)

	tagsController := NewTagsController(cfg.Database)
	router.POST("/api/tags/auto", tagsController.AutoTag)
	router.GET("/api/tags/groups", tagsController.GetGroups)

	exportController := NewExportController(cfg.Database)
	router.GET("/api/export", exportController.Export)

	flashcardsController := NewFlashcardsController(cfg.Database)
	router.GET("/api/flashcards", flashcardsController.GetFlashcards)

	return router
}
