package analyzer

import (
	"fmt"
	"strings"

	"github.com/mrlokans/clippings/internal/entities"
)

// BlankMarker replaces the hidden token in fill-in-the-blank questions.
const BlankMarker = "_____"

// minFlashcardTokens is the smallest content, in space-separated tokens,
// worth turning into a card at all; blanking additionally needs enough
// surrounding words for context.
const (
	minFlashcardTokens = 5
	minBlankTokens     = 7
)

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true, "for": true,
}

// FlashcardOptions narrows flashcard generation.
type FlashcardOptions struct {
	// OnlyTagged keeps highlights carrying at least one of these tags.
	OnlyTagged []string
	// MaxCards stops generation once reached; zero means unbounded.
	MaxCards int
}

// MakeFlashcards synthesizes question/answer cards from highlight content,
// in book-then-highlight encounter order. The answer is always the full
// original content; the question comes from the first rule that applies:
// an "X is/are Y" split, a quote attribution, or a fill-in-the-blank over
// the longest non-stop-word token.
func MakeFlashcards(library *entities.HighlightLibrary, opts FlashcardOptions) []entities.Flashcard {
	if library == nil {
		return nil
	}

	wanted := toSet(opts.OnlyTagged)

	var cards []entities.Flashcard
	for i := range library.Books {
		book := &library.Books[i]
		for _, h := range book.Highlights {
			if opts.MaxCards > 0 && len(cards) >= opts.MaxCards {
				return cards
			}
			if len(wanted) > 0 && !hasAnyTag(&h, wanted) {
				continue
			}

			tokens := strings.Fields(h.Content)
			if len(tokens) < minFlashcardTokens {
				continue
			}

			question := generateQuestion(&h, tokens)
			if question == "" {
				continue
			}

			cards = append(cards, entities.Flashcard{
				Question: question,
				Answer:   h.Content,
				Source:   cardSource(book),
			})
		}
	}
	return cards
}

func generateQuestion(h *entities.Highlight, tokens []string) string {
	if q := definitionQuestion(h.Content); q != "" {
		return q
	}
	if h.HasTag("quote") {
		return fmt.Sprintf("Who said: \"%s\"?", h.Content)
	}
	if len(tokens) >= minBlankTokens {
		return blankQuestion(tokens)
	}
	return ""
}

// definitionQuestion splits on the first " is " or " are " and asks about
// the subject. Content with an empty subject falls through to later rules.
func definitionQuestion(content string) string {
	idx := -1
	for _, sep := range []string{" is ", " are "} {
		if i := strings.Index(content, sep); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return ""
	}
	subject := strings.TrimSpace(content[:idx])
	if subject == "" {
		return ""
	}
	return fmt.Sprintf("What is %s?", subject)
}

// blankQuestion hides the longest token that is not a stop word, ties
// broken by first occurrence. Trailing punctuation is stripped only for
// the stop-word check and the length comparison; the full token is what
// gets replaced.
func blankQuestion(tokens []string) string {
	longest := -1
	for i, token := range tokens {
		candidate := strings.TrimRight(token, ".,!?;:\"'")
		if candidate == "" || stopWords[strings.ToLower(candidate)] {
			continue
		}
		if longest < 0 || len(candidate) > len(strings.TrimRight(tokens[longest], ".,!?;:\"'")) {
			longest = i
		}
	}
	if longest < 0 {
		return ""
	}

	blanked := make([]string, len(tokens))
	copy(blanked, tokens)
	blanked[longest] = BlankMarker
	return strings.Join(blanked, " ")
}

func hasAnyTag(h *entities.Highlight, wanted map[string]bool) bool {
	for _, tag := range h.Tags {
		if wanted[tag] {
			return true
		}
	}
	return false
}

func cardSource(book *entities.BookHighlights) string {
	if book.Author != "" {
		return fmt.Sprintf("%s by %s", book.Title, book.Author)
	}
	return book.Title
}
