package popularity

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Leaderboard supplies the global borrow-count ranking.
type Leaderboard interface {
	TopItems(ctx context.Context, offset, count int) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// ItemLoader resolves item IDs into catalog items, skipping withdrawn
// and missing ones.
type ItemLoader interface {
	ItemsByID(ctx context.Context, ids []string) ([]domain.CatalogItem, error)
}
