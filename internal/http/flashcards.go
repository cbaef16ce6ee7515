package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/entities"
)

type FlashcardsController struct {
	db *database.Database
}

func NewFlashcardsController(db *database.Database) *FlashcardsController {
	return &FlashcardsController{db: db}
}

type FlashcardsResponse struct {
	Total int                  `json:"total"`
	Cards []entities.Flashcard `json:"cards"`
}

// GetFlashcards synthesizes question/answer cards from stored highlights.
// Filters: tags, max.
func (c *FlashcardsController) GetFlashcards(ctx *gin.Context) {
	opts := analyzer.FlashcardOptions{
		OnlyTagged: queryList(ctx, "tags"),
	}

	if raw := ctx.Query("max"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil || max < 0 {
			respondBadRequest(ctx, "parameter 'max' must be a non-negative integer")
			return
		}
		opts.MaxCards = max
	}

	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}

	cards := analyzer.MakeFlashcards(library, opts)
	if cards == nil {
		cards = []entities.Flashcard{}
	}

	ctx.JSON(http.StatusOK, FlashcardsResponse{
		Total: len(cards),
		Cards: cards,
	})
}
