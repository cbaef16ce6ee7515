package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	t.Run("removes invalid characters", func(t *testing.T) {
		assert.Equal(t, "What If", SanitizeFilename(`What If?`))
		assert.Equal(t, "AB", SanitizeFilename(`A/B`))
		assert.Equal(t, "Either Or", SanitizeFilename("Either\tOr"))
	})

	t.Run("replaces brackets and hashes", func(t *testing.T) {
		assert.Equal(t, "Draft (v2)", SanitizeFilename("Draft [v2]"))
		assert.Equal(t, "Tagged", SanitizeFilename("#Tagged"))
	})

	t.Run("empty titles fall back to Untitled", func(t *testing.T) {
		assert.Equal(t, "Untitled", SanitizeFilename("///"))
	})
}
