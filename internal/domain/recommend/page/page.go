// Package page holds the paginated recommendation result.
package page

import "github.com/shelfwise/shelfwise/internal/domain"

// Page is one slice of a ranked item list plus pagination metadata.
type Page struct {
	items        []domain.CatalogItem
	pageIndex    int
	pageSize     int
	totalItems   int
	totalPages   int
	personalized bool
}

// New creates a result page.
func New(items []domain.CatalogItem, pageIndex, pageSize, totalItems, totalPages int, personalized bool) Page {
	return Page{
		items:        items,
		pageIndex:    pageIndex,
		pageSize:     pageSize,
		totalItems:   totalItems,
		totalPages:   totalPages,
		personalized: personalized,
	}
}

// Items returns the items on this page.
func (p *Page) Items() []domain.CatalogItem { return p.items }

// PageIndex returns the effective 1-based page index.
func (p *Page) PageIndex() int { return p.pageIndex }

// PageSize returns the page size used for slicing.
func (p *Page) PageSize() int { return p.pageSize }

// TotalItems returns the pre-pagination item count.
func (p *Page) TotalItems() int { return p.totalItems }

// TotalPages returns ceil(totalItems / pageSize).
func (p *Page) TotalPages() int { return p.totalPages }

// Personalized reports whether the page came from the personalized engine
// rather than the popularity fallback.
func (p *Page) Personalized() bool { return p.personalized }
