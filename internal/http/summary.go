package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/database"
)

type SummaryController struct {
	db *database.Database
}

func NewSummaryController(db *database.Database) *SummaryController {
	return &SummaryController{db: db}
}

// GetSummary renders the markdown outline of one book's highlights.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}

	book := library.FindBook(ctx.Param("title"))
	if book == nil {
		respondNotFound(ctx, "book")
		return
	}

	summary := analyzer.Summarize(book)
	ctx.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(summary))
}
