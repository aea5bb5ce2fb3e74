package catalog

import (
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/category"
)

// Hash field names.
const (
	fieldTitle          = "title"
	fieldCategory       = "category"
	fieldClassification = "classification"
	fieldCutter         = "cutter"
	fieldGenres         = "genres"
	fieldTopics         = "topics"
	fieldAuthor         = "author"
	fieldWithdrawn      = "withdrawn"
)

// buildHashFields flattens a catalog item into a Redis hash. The withdrawn
// flag is always written: HSET merges into an existing hash, so omitting
// it would make a withdrawn item impossible to reinstate.
func buildHashFields(item domain.CatalogItem) map[string]string {
	withdrawn := "0"
	if item.Withdrawn {
		withdrawn = "1"
	}
	return map[string]string{
		fieldTitle:          item.Title,
		fieldCategory:       string(item.Category),
		fieldClassification: item.ClassificationCode,
		fieldCutter:         item.CutterCode,
		fieldGenres:         item.Genres,
		fieldTopics:         item.TopicalTerms,
		fieldAuthor:         item.AuthorName,
		fieldWithdrawn:      withdrawn,
	}
}

// parseHashFields reconstructs a catalog item from its hash.
func parseHashFields(id string, m map[string]string) domain.CatalogItem {
	return domain.CatalogItem{
		ID:                 id,
		Title:              m[fieldTitle],
		Category:           category.Parse(m[fieldCategory]),
		ClassificationCode: m[fieldClassification],
		CutterCode:         m[fieldCutter],
		Genres:             m[fieldGenres],
		TopicalTerms:       m[fieldTopics],
		AuthorName:         m[fieldAuthor],
		Withdrawn:          m[fieldWithdrawn] == "1",
	}
}
