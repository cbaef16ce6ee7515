package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsController_AutoTag(t *testing.T) {
	t.Run("tags highlights matching default keywords", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		seedLibrary(t, db)

		controller := NewTagsController(db)
		router := gin.New()
		router.POST("/api/tags/auto", controller.AutoTag)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/tags/auto", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response AutoTagResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.TaggedHighlights)
		assert.Equal(t, 3, response.TotalHighlights)

		// Tags must survive a reload
		library, err := db.LoadLibrary()
		require.NoError(t, err)
		book := library.FindBook("Atomic Habits")
		require.NotNil(t, book)
		assert.Equal(t, []string{"example"}, book.Highlights[1].Tags)
	})

	t.Run("accepts custom tag rules", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		seedLibrary(t, db)

		controller := NewTagsController(db)
		router := gin.New()
		router.POST("/api/tags/auto", controller.AutoTag)

		body, _ := json.Marshal(AutoTagRequest{
			CustomTags: map[string][]string{"stoic": {"power over"}},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/tags/auto", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response AutoTagResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.TaggedHighlights)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		controller := NewTagsController(db)
		router := gin.New()
		router.POST("/api/tags/auto", controller.AutoTag)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/tags/auto", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTagsController_GetGroups(t *testing.T) {
	t.Run("groups stored highlights by tag", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		seedLibrary(t, db)

		controller := NewTagsController(db)
		router := gin.New()
		router.POST("/api/tags/auto", controller.AutoTag)
		router.GET("/api/tags/groups", controller.GetGroups)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/tags/auto", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/tags/groups", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response TagGroupsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Contains(t, response.Groups, "example")
		assert.Len(t, response.Groups["example"], 1)
		assert.Equal(t, []string{"example"}, response.Tags)
	})

	t.Run("lists tag keys in first-encounter order", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		library := seedLibrary(t, db)
		library.Books[0].Highlights[0].Tags = []string{"habits", "compound"}
		library.Books[1].Highlights[0].Tags = []string{"stoic", "habits"}
		require.NoError(t, db.ReplaceLibrary(library))

		controller := NewTagsController(db)
		router := gin.New()
		router.GET("/api/tags/groups", controller.GetGroups)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/tags/groups", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response TagGroupsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"habits", "compound", "stoic"}, response.Tags)
		assert.Len(t, response.Groups, 3)
	})

	t.Run("returns empty tag list for untagged library", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		seedLibrary(t, db)

		controller := NewTagsController(db)
		router := gin.New()
		router.GET("/api/tags/groups", controller.GetGroups)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/tags/groups", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response TagGroupsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotNil(t, response.Tags)
		assert.Empty(t, response.Tags)
		assert.Empty(t, response.Groups)
	})
}
