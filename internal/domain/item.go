package domain

import "github.com/shelfwise/shelfwise/internal/domain/category"

// CatalogItem is a read-only catalog record supplied by the catalog store.
// The recommendation engine never mutates it.
type CatalogItem struct {
	ID                 string
	Title              string
	Category           category.Category
	ClassificationCode string
	CutterCode         string
	Genres             string
	TopicalTerms       string
	AuthorName         string
	Withdrawn          bool
}
