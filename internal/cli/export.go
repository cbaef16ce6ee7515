package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/exporters"
	"github.com/mrlokans/clippings/internal/librarystore"
)

// ExportCommand renders the local library file as markdown, csv, or json.
type ExportCommand struct {
	LibraryPath string
	Format      string
	Output      string
	Books       string
	Tags        string
	Flat        bool
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.LibraryPath, "library", config.DefaultLibraryPath, "Path to the library file")
	fs.StringVar(&cmd.Format, "format", exporters.FormatMarkdown, "Output format: markdown, csv, or json")
	fs.StringVar(&cmd.Output, "output", "", "Write to a file instead of stdout")
	fs.StringVar(&cmd.Books, "books", "", "Comma-separated book titles to export")
	fs.StringVar(&cmd.Tags, "tags", "", "Only export highlights carrying one of these tags")
	fs.BoolVar(&cmd.Flat, "flat", false, "Render markdown as a flat list instead of grouping by book")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the local library as markdown, csv, or json.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -format csv -output highlights.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -books \"Atomic Habits\" -tags important\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	store := librarystore.New(cmd.LibraryPath)
	library, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	output, err := exporters.Export(library, cmd.Format, exporters.ExportOptions{
		IncludeBooks: splitList(cmd.Books),
		IncludeTags:  splitList(cmd.Tags),
		Flat:         cmd.Flat,
	})
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		fmt.Print(output)
		return nil
	}

	if err := os.WriteFile(cmd.Output, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}
	fmt.Printf("Exported library to %s\n", cmd.Output)
	return nil
}
