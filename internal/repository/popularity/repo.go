// Package popularity maintains a global borrow-count leaderboard in a
// Redis sorted set.
package popularity

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/db"
)

const leaderboardKey = "shelfwise:popular"

// store is the consumer interface for the leaderboard (ISP).
type store interface {
	ZIncrBy(ctx context.Context, key, member string, increment float64) error
	ZRevRange(ctx context.Context, key string, start, stop int) ([]db.SortedSetMember, error)
	ZCard(ctx context.Context, key string) (int, error)
}

// Repo implements usecase/popularity.Leaderboard.
type Repo struct {
	store store
}

// New creates a popularity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// RecordBorrow bumps an item's borrow count on the leaderboard.
func (r *Repo) RecordBorrow(ctx context.Context, itemID string) error {
	if err := r.store.ZIncrBy(ctx, leaderboardKey, itemID, 1); err != nil {
		return fmt.Errorf("record borrow %s: %w", itemID, err)
	}
	return nil
}

// TopItems returns item IDs ordered by descending borrow count, starting
// at the given offset.
func (r *Repo) TopItems(ctx context.Context, offset, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	members, err := r.store.ZRevRange(ctx, leaderboardKey, offset, offset+count-1)
	if err != nil {
		return nil, fmt.Errorf("top items: %w", err)
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.Member
	}
	return ids, nil
}

// Count returns the number of items on the leaderboard.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.ZCard(ctx, leaderboardKey)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}
