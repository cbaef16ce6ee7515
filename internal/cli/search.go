package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/entities"
	"github.com/mrlokans/clippings/internal/librarystore"
)

// SearchCommand runs a full-text query over the local library file.
type SearchCommand struct {
	Query         string
	LibraryPath   string
	CaseSensitive bool
	WholeWord     bool
	IncludeBooks  string
	ExcludeBooks  string
	Types         string
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.Query, "q", "", "Text to search for (required)")
	fs.StringVar(&cmd.LibraryPath, "library", config.DefaultLibraryPath, "Path to the library file")
	fs.BoolVar(&cmd.CaseSensitive, "case-sensitive", false, "Match case exactly")
	fs.BoolVar(&cmd.WholeWord, "whole-word", false, "Match whole words only")
	fs.StringVar(&cmd.IncludeBooks, "books", "", "Comma-separated book titles to search in")
	fs.StringVar(&cmd.ExcludeBooks, "exclude-books", "", "Comma-separated book titles to skip")
	fs.StringVar(&cmd.Types, "types", "", "Comma-separated entry types to match (highlight, note, bookmark)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -q <text> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search highlights in the local library file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Query == "" {
		return fmt.Errorf("required flag -q not provided")
	}

	return nil
}

func (cmd *SearchCommand) Run() error {
	store := librarystore.New(cmd.LibraryPath)
	library, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	opts := analyzer.SearchOptions{
		CaseSensitive: cmd.CaseSensitive,
		WholeWord:     cmd.WholeWord,
		IncludeBooks:  splitList(cmd.IncludeBooks),
		ExcludeBooks:  splitList(cmd.ExcludeBooks),
	}
	for _, t := range splitList(cmd.Types) {
		opts.Types = append(opts.Types, entities.EntryType(t))
	}

	results := analyzer.Search(library, cmd.Query, opts)
	if len(results) == 0 {
		fmt.Println("No matches found")
		return nil
	}

	fmt.Printf("Found %d matching highlights:\n\n", len(results))
	for i, h := range results {
		fmt.Printf("%d. \"%s\"", i+1, h.Title)
		if h.Author != "" {
			fmt.Printf(" by %s", h.Author)
		}
		fmt.Printf(" (location %s)\n", h.Location)
		fmt.Printf("   %s\n\n", h.Content)
	}

	return nil
}

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
