package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardsController_GetFlashcards(t *testing.T) {
	t.Run("generates cards from stored highlights", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		seedLibrary(t, db)

		controller := NewFlashcardsController(db)
		router := gin.New()
		router.GET("/api/flashcards", controller.GetFlashcards)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/flashcards", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response FlashcardsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.Total)
		for _, card := range response.Cards {
			assert.NotEmpty(t, card.Question)
			assert.NotEmpty(t, card.Answer)
			assert.NotEmpty(t, card.Source)
		}
	})

	t.Run("caps cards at max", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		seedLibrary(t, db)

		controller := NewFlashcardsController(db)
		router := gin.New()
		router.GET("/api/flashcards", controller.GetFlashcards)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/flashcards?max=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response FlashcardsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Total)
	})

	t.Run("rejects non-numeric max", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		controller := NewFlashcardsController(db)
		router := gin.New()
		router.GET("/api/flashcards", controller.GetFlashcards)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/flashcards?max=lots", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns empty array when nothing is stored", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		controller := NewFlashcardsController(db)
		router := gin.New()
		router.GET("/api/flashcards", controller.GetFlashcards)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/flashcards", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response FlashcardsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 0, response.Total)
		assert.NotNil(t, response.Cards)
	})
}
