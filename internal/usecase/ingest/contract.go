package ingest

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// CatalogWriter persists catalog items.
type CatalogWriter interface {
	Upsert(ctx context.Context, item domain.CatalogItem) error
	UpsertBatch(ctx context.Context, items []domain.CatalogItem) error
	Delete(ctx context.Context, id string) error
}

// ActivityWriter persists reader interactions.
type ActivityWriter interface {
	UpsertInteraction(ctx context.Context, readerID string, in domain.Interaction) error
}

// BorrowLedger tracks borrow counts for the popularity ranking.
type BorrowLedger interface {
	RecordBorrow(ctx context.Context, itemID string) error
}
