package config

// Default paths for local data
const (
	// DefaultDatabasePath is the default path for the highlights database
	DefaultDatabasePath = "./clippings.db"

	// DefaultLibraryPath is the default path for the JSON library file
	// used by the CLI commands
	DefaultLibraryPath = "./library.json"
)
