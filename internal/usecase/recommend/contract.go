package recommend

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/page"
)

// CatalogReader supplies catalog items and their metadata. Candidate items
// must already exclude withdrawn records.
type CatalogReader interface {
	CandidateItems(ctx context.Context) ([]domain.CatalogItem, error)
	PrimaryAuthor(ctx context.Context, itemID string) (string, error)
	ClassificationCodes(ctx context.Context, itemIDs []string) ([]string, error)
}

// ActivityReader supplies per-reader interaction history.
type ActivityReader interface {
	ReaderInteractions(ctx context.Context, readerID string) ([]domain.Interaction, error)
	ReaderExists(ctx context.Context, readerID string) (bool, error)
}

// PopularityProvider serves the non-personalized ranking used when the
// reader is unknown, has no history, or the candidate catalog is empty.
type PopularityProvider interface {
	PopularItems(ctx context.Context, pageIndex, pageSize int) (page.Page, error)
}
