package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/database"
)

type LibraryController struct {
	db *database.Database
}

func NewLibraryController(db *database.Database) *LibraryController {
	return &LibraryController{db: db}
}

// GetLibrary returns the full stored library.
func (c *LibraryController) GetLibrary(ctx *gin.Context) {
	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}
	ctx.JSON(http.StatusOK, library)
}

// GetBook returns a single book by its exact title.
func (c *LibraryController) GetBook(ctx *gin.Context) {
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
	ctx.JSON(http.StatusOK, book)
}
