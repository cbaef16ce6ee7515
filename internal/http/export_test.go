package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExportController_Export(t *testing.T) {
	newExportRouter := func(t *testing.T) (*gin.Engine, func()) {
		db, cleanup := setupTestDB(t)
		seedLibrary(t, db)

		controller := NewExportController(db)
		router := gin.New()
		router.GET("/api/export", controller.Export)
		return router, cleanup
	}

	t.Run("defaults to markdown", func(t *testing.T) {
		router, cleanup := newExportRouter(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "# Atomic Habits")
		assert.Contains(t, w.Body.String(), "# Meditations")
	})

	t.Run("renders csv with header row", func(t *testing.T) {
		router, cleanup := newExportRouter(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export?format=csv", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		assert.Equal(t, "Book Title,Author,Content,Location,Page,Date Added,Type,Tags", lines[0])
		assert.Len(t, lines, 4)
	})

	t.Run("filters by book title", func(t *testing.T) {
		router, cleanup := newExportRouter(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export?books=Meditations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "# Meditations")
		assert.NotContains(t, w.Body.String(), "Atomic Habits")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		router, cleanup := newExportRouter(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export?format=xml", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "xml")
	})
}
