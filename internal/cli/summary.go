package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/librarystore"
)

// SummaryCommand prints a markdown outline of one book's highlights.
type SummaryCommand struct {
	LibraryPath string
	Title       string
}

func NewSummaryCommand() *SummaryCommand {
	return &SummaryCommand{}
}

func (cmd *SummaryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "book", "", "Exact title of the book to summarize (required)")
	fs.StringVar(&cmd.LibraryPath, "library", config.DefaultLibraryPath, "Path to the library file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s summary -book <title> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render a markdown outline of a book's highlights, ordered by location.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Title == "" {
		return fmt.Errorf("required flag -book not provided")
	}

	return nil
}

func (cmd *SummaryCommand) Run() error {
	store := librarystore.New(cmd.LibraryPath)
	library, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	book := library.FindBook(cmd.Title)
	if book == nil {
		return fmt.Errorf("book %q not found in library", cmd.Title)
	}

	fmt.Print(analyzer.Summarize(book))
	return nil
}
