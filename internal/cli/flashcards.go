package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/clippings/internal/analyzer"
	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/librarystore"
)

// FlashcardsCommand generates question/answer cards from the library.
type FlashcardsCommand struct {
	LibraryPath string
	Tags        string
	MaxCards    int
	JSON        bool
}

func NewFlashcardsCommand() *FlashcardsCommand {
	return &FlashcardsCommand{}
}

func (cmd *FlashcardsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("flashcards", flag.ExitOnError)

	fs.StringVar(&cmd.LibraryPath, "library", config.DefaultLibraryPath, "Path to the library file")
	fs.StringVar(&cmd.Tags, "tags", "", "Only use highlights carrying one of these tags")
	fs.IntVar(&cmd.MaxCards, "max", 0, "Maximum number of cards to generate (0 = unlimited)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print cards as JSON instead of text")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s flashcards [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate study flashcards from stored highlights.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *FlashcardsCommand) Run() error {
	store := librarystore.New(cmd.LibraryPath)
	library, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	cards := analyzer.MakeFlashcards(library, analyzer.FlashcardOptions{
		OnlyTagged: splitList(cmd.Tags),
		MaxCards:   cmd.MaxCards,
	})

	if len(cards) == 0 {
		fmt.Println("No flashcards could be generated")
		return nil
	}

	if cmd.JSON {
		data, err := json.MarshalIndent(cards, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode flashcards: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Generated %d flashcards:\n\n", len(cards))
	for i, card := range cards {
		fmt.Printf("%d. Q: %s\n", i+1, card.Question)
		fmt.Printf("   A: %s\n", card.Answer)
		fmt.Printf("   Source: %s\n\n", card.Source)
	}

	return nil
}
