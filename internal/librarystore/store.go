package librarystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/clippings/internal/entities"
)

// Store persists a HighlightLibrary as a JSON document on disk. The core
// only produces and consumes the in-memory structure; this boundary owns
// the actual read/write and restores timestamps on load.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Serialize renders the library as indented JSON with RFC 3339 timestamps.
func Serialize(library *entities.HighlightLibrary) ([]byte, error) {
	data, err := json.MarshalIndent(library, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize library: %w", err)
	}
	return data, nil
}

// Deserialize restores a library from its JSON form.
func Deserialize(data []byte) (*entities.HighlightLibrary, error) {
	var library entities.HighlightLibrary
	if err := json.Unmarshal(data, &library); err != nil {
		return nil, fmt.Errorf("failed to deserialize library: %w", err)
	}
	return &library, nil
}

// Save writes the library atomically: a temp file in the same directory,
// then a rename over the target.
func (s *Store) Save(library *entities.HighlightLibrary) error {
	data, err := Serialize(library)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".library-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write library: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace library file: %w", err)
	}
	return nil
}

// Load reads the library from disk. A missing file is reported as-is so
// callers can distinguish "not yet saved" from corruption.
func (s *Store) Load() (*entities.HighlightLibrary, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}
	return Deserialize(data)
}

// Exists reports whether a saved library is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
