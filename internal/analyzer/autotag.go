package analyzer

import (
	"sort"
	"strings"

	"github.com/mrlokans/clippings/internal/entities"
)

// TagRule binds a tag to the keywords that trigger it.
type TagRule struct {
	Tag      string
	Keywords []string
}

// DefaultTagRules is the built-in keyword-to-tag table, scanned in order.
func DefaultTagRules() []TagRule {
	return []TagRule{
		{Tag: "definition", Keywords: []string{"is defined as", "means", "refers to", "definition of"}},
		{Tag: "example", Keywords: []string{"for example", "for instance", "such as", "e.g."}},
		{Tag: "quote", Keywords: []string{"said", "according to", "once remarked"}},
		{Tag: "important", Keywords: []string{"important", "crucial", "essential", "critical", "key point"}},
		{Tag: "concept", Keywords: []string{"concept", "theory", "principle", "framework", "idea of"}},
	}
}

// AutoTag scans every untagged highlight against the keyword table and
// assigns matching tags in place, returning the same library. Highlights
// that already carry tags are left untouched, so manual tags are never
// overwritten and repeated runs are idempotent.
//
// customTags entries replace the keyword list of a default tag with the
// same name; unknown tag names are appended after the defaults.
func AutoTag(library *entities.HighlightLibrary, customTags map[string][]string) *entities.HighlightLibrary {
	if library == nil {
		return nil
	}

	rules := mergeTagRules(DefaultTagRules(), customTags)

	for i := range library.Books {
		book := &library.Books[i]
		for j := range book.Highlights {
			h := &book.Highlights[j]
			if len(h.Tags) > 0 {
				continue
			}
			content := strings.ToLower(h.Content)
			for _, rule := range rules {
				for _, keyword := range rule.Keywords {
					if strings.Contains(content, strings.ToLower(keyword)) {
						h.AddTag(rule.Tag)
						break
					}
				}
			}
		}
	}

	return library
}

func mergeTagRules(defaults []TagRule, customTags map[string][]string) []TagRule {
	if len(customTags) == 0 {
		return defaults
	}

	rules := make([]TagRule, 0, len(defaults)+len(customTags))
	seen := make(map[string]bool, len(defaults))
	for _, rule := range defaults {
		if keywords, ok := customTags[rule.Tag]; ok {
			rule.Keywords = keywords
		}
		seen[rule.Tag] = true
		rules = append(rules, rule)
	}

	// Custom-only tags go after the defaults, sorted for a stable scan order
	extra := make([]string, 0, len(customTags))
	for tag := range customTags {
		if !seen[tag] {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		rules = append(rules, TagRule{Tag: tag, Keywords: customTags[tag]})
	}

	return rules
}

// TagOrder returns the distinct tags present in the library in
// first-encounter order (books, then highlights, then each highlight's
// tag list). It gives callers a deterministic iteration order over the
// buckets GroupByTags builds.
func TagOrder(library *entities.HighlightLibrary) []string {
	var order []string
	if library == nil {
		return order
	}
	seen := make(map[string]bool)
	for i := range library.Books {
		for _, h := range library.Books[i].Highlights {
			for _, tag := range h.Tags {
				if !seen[tag] {
					seen[tag] = true
					order = append(order, tag)
				}
			}
		}
	}
	return order
}

// GroupByTags buckets highlights by every tag they carry, preserving
// book-then-highlight encounter order within each bucket. A highlight
// with N tags appears in N buckets.
func GroupByTags(library *entities.HighlightLibrary) map[string][]entities.Highlight {
	groups := make(map[string][]entities.Highlight)
	if library == nil {
		return groups
	}
	for i := range library.Books {
		for _, h := range library.Books[i].Highlights {
			for _, tag := range h.Tags {
				groups[tag] = append(groups[tag], h)
			}
		}
	}
	return groups
}
