package recommend

import (
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/filter"
)

// buildDocument assembles the recommendation document for one catalog item.
// Book-like categories concatenate, subject to the filter toggles: cleaned
// title, cutter code + author, classification integer + genres, topical
// terms — in that order. Periodicals only ever contribute the cleaned
// title. Unknown categories fall through to the default rule. When the
// toggles leave the document empty, the author is preferred, then the
// cleaned title, so every titled item lands in the corpus.
func buildDocument(item domain.CatalogItem, author string, f filter.Filter) string {
	title := cleanTitle(item.Title)

	var parts []string
	switch {
	case item.Category.IsBookLike():
		if f.IncludeTitle() {
			parts = appendPart(parts, title)
		}
		if f.IncludeAuthor() {
			parts = appendPart(parts, joinFields(item.CutterCode, author))
		}
		if f.IncludeGenres() {
			parts = appendPart(parts, joinFields(classificationInteger(item.ClassificationCode), item.Genres))
		}
		if f.IncludeTopicalTerms() {
			parts = appendPart(parts, item.TopicalTerms)
		}
	case item.Category.IsPeriodical():
		if f.IncludeTitle() {
			parts = appendPart(parts, title)
		}
	}

	doc := strings.Join(parts, " ")
	if strings.TrimSpace(doc) != "" {
		return doc
	}

	// Default fallback, also taken by unknown categories.
	if author != "" {
		return author
	}
	return title
}

// cleanTitle strips digit characters from the title. Volume and edition
// numbers carry no topical signal.
func cleanTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// classificationInteger returns the text before the first decimal point of
// a hierarchical classification code, discarding the fractional digits.
func classificationInteger(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if i := strings.IndexByte(code, '.'); i >= 0 {
		return code[:i]
	}
	return code
}

// appendPart adds a block to the document, skipping blank blocks so the
// joined result never carries double spaces.
func appendPart(parts []string, part string) []string {
	part = strings.TrimSpace(part)
	if part == "" {
		return parts
	}
	return append(parts, part)
}

func joinFields(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
