package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/kindle"
	"github.com/mrlokans/clippings/internal/librarystore"
)

// ImportCommand extracts highlights from a Kindle "My Clippings.txt"
// export into the local library file.
type ImportCommand struct {
	ClippingsPath string
	LibraryPath   string
	AutoTag       bool
	Verbose       bool
	DryRun        bool
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.ClippingsPath, "file", "", "Path to Kindle 'My Clippings.txt' file (required)")
	fs.StringVar(&cmd.LibraryPath, "library", config.DefaultLibraryPath, "Path to the library file the highlights are stored in")
	fs.BoolVar(&cmd.AutoTag, "auto-tag", false, "Tag imported highlights using the default keyword rules")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extract highlights from a Kindle 'My Clippings.txt' export.\n\n")
		fmt.Fprintf(os.Stderr, "The clippings file is typically found at:\n")
		fmt.Fprintf(os.Stderr, "  /Volumes/Kindle/documents/My Clippings.txt\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import from a connected Kindle device:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file \"/Volumes/Kindle/documents/My Clippings.txt\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what would be imported:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file \"My Clippings.txt\" -dry-run -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ClippingsPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	file, err := os.Open(cmd.ClippingsPath)
	if err != nil {
		return fmt.Errorf("failed to open clippings file: %w", err)
	}
	defer file.Close()

	parser := kindle.NewParser()
	library, warnings, err := parser.ParseStrict(file)
	if err != nil {
		return fmt.Errorf("failed to parse clippings: %w", err)
	}

	if len(library.Books) == 0 {
		fmt.Println("No books with highlights found in clippings file")
		return nil
	}

	fmt.Printf("Found %d books with %d total highlights\n", len(library.Books), library.TotalHighlights)

	for _, w := range warnings {
		fmt.Printf("  [WARN] %s\n", w)
	}

	if cmd.Verbose {
		fmt.Println("\n=== Books Found ===")
		for i, book := range library.Books {
			authorStr := book.Author
			if authorStr == "" {
				authorStr = "(no author)"
			}
			fmt.Printf("%d. \"%s\" by %s (%d highlights)\n",
				i+1, book.Title, authorStr, len(book.Highlights))
		}
	}

	if cmd.AutoTag {
		analyzer.AutoTag(library, nil)
		tagged := 0
		for i := range library.Books {
			for _, h := range library.Books[i].Highlights {
				if len(h.Tags) > 0 {
					tagged++
				}
			}
		}
		fmt.Printf("\nAuto-tagged %d highlights\n", tagged)
	}

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	store := librarystore.New(cmd.LibraryPath)
	if err := store.Save(library); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}

	fmt.Printf("\nSaved library to %s\n", store.Path())
	return nil
}
