package exporters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrlokans/clippings/internal/entities"
)

// jsonExport is the serialized shape: the filtered book list with a
// recomputed total and a fresh export timestamp. Struct fields keep the
// key order stable.
type jsonExport struct {
	Books           []entities.BookHighlights `json:"books"`
	TotalHighlights int                       `json:"totalHighlights"`
	LastUpdated     time.Time                 `json:"lastUpdated"`
}

func renderJSON(books []entities.BookHighlights) (string, error) {
	export := jsonExport{
		Books:       books,
		LastUpdated: time.Now(),
	}
	if export.Books == nil {
		export.Books = []entities.BookHighlights{}
	}
	for i := range export.Books {
		export.TotalHighlights += len(export.Books[i].Highlights)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize library: %w", err)
	}
	return string(data), nil
}
