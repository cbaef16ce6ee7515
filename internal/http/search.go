package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/entities"
)

type SearchController struct {
	db *database.Database
}

func NewSearchController(db *database.Database) *SearchController {
	return &SearchController{db: db}
}

type SearchResponse struct {
	Query   string               `json:"query"`
	Total   int                  `json:"total"`
	Results []entities.Highlight `json:"results"`
}

// Search runs a full-text query over the stored library.
// Filters: case_sensitive, whole_word, include_books, exclude_books, types.
func (c *SearchController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		respondBadRequest(ctx, "query parameter 'q' is required")
		return
	}

	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}

	opts := analyzer.SearchOptions{
		CaseSensitive: queryBool(ctx, "case_sensitive"),
		WholeWord:     queryBool(ctx, "whole_word"),
		IncludeBooks:  queryList(ctx, "include_books"),
		ExcludeBooks:  queryList(ctx, "exclude_books"),
	}
	for _, t := range queryList(ctx, "types") {
		opts.Types = append(opts.Types, entities.EntryType(t))
	}

	results := analyzer.Search(library, query, opts)
	if results == nil {
		results = []entities.Highlight{}
	}

	ctx.JSON(http.StatusOK, SearchResponse{
		Query:   query,
		Total:   len(results),
		Results: results,
	})
}
