package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/exporters"
)

type ExportController struct {
	db *database.Database
}

func NewExportController(db *database.Database) *ExportController {
	return &ExportController{db: db}
}

var exportContentTypes = map[string]string{
	exporters.FormatMarkdown: "text/markdown; charset=utf-8",
	exporters.FormatCSV:      "text/csv; charset=utf-8",
	exporters.FormatJSON:     "application/json; charset=utf-8",
}

// Export renders the stored library as markdown, csv, or json.
// Filters: books (titles), tags, flat (markdown only).
func (c *ExportController) Export(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", exporters.FormatMarkdown)

	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}

	opts := exporters.ExportOptions{
		IncludeBooks: queryList(ctx, "books"),
		IncludeTags:  queryList(ctx, "tags"),
		Flat:         queryBool(ctx, "flat"),
	}

	output, err := exporters.Export(library, format, opts)
	if err != nil {
		if errors.Is(err, exporters.ErrUnsupportedFormat) {
			respondBadRequest(ctx, err.Error())
			return
		}
		respondInternalError(ctx, err, "export library")
		return
	}

	ctx.Data(http.StatusOK, exportContentTypes[format], []byte(output))
}
