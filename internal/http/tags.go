package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/entities"
)

type TagsController struct {
	db *database.Database
}

func NewTagsController(db *database.Database) *TagsController {
	return &TagsController{db: db}
}

type AutoTagRequest struct {
	// CustomTags replaces or extends the default keyword table,
	// keyed by tag name.
	CustomTags map[string][]string `json:"custom_tags"`
}

type AutoTagResponse struct {
	Message          string `json:"message"`
	TaggedHighlights int    `json:"tagged_highlights"`
	TotalHighlights  int    `json:"total_highlights"`
}

// AutoTag applies the keyword table to every untagged stored highlight
// and persists the result.
func (c *TagsController) AutoTag(ctx *gin.Context) {
	var req AutoTagRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondBadRequest(ctx, "invalid request body: "+err.Error())
			return
		}
	}

	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}

	analyzer.AutoTag(library, req.CustomTags)

	tagged := 0
	for i := range library.Books {
		for _, h := range library.Books[i].Highlights {
			if len(h.Tags) == 0 {
				continue
			}
			if err := c.db.UpdateHighlightTags(h.ID, h.Tags); err != nil {
				respondInternalError(ctx, err, "store tags")
				return
			}
			tagged++
		}
	}

	ctx.JSON(http.StatusOK, AutoTagResponse{
		Message:          "auto-tagging complete",
		TaggedHighlights: tagged,
		TotalHighlights:  library.TotalHighlights,
	})
}

type TagGroupsResponse struct {
	// Tags lists the group keys in first-encounter order so clients can
	// iterate the buckets deterministically.
	Tags   []string                        `json:"tags"`
	Groups map[string][]entities.Highlight `json:"groups"`
}

// GetGroups buckets stored highlights by tag.
func (c *TagsController) GetGroups(ctx *gin.Context) {
	library, err := c.db.LoadLibrary()
	if err != nil {
		respondInternalError(ctx, err, "load library")
		return
	}

	tags := analyzer.TagOrder(library)
	if tags == nil {
		tags = []string{}
	}

	ctx.JSON(http.StatusOK, TagGroupsResponse{
		Tags:   tags,
		Groups: analyzer.GroupByTags(library),
	})
}
