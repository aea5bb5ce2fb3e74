// Package activity stores reader registrations and their per-item
// interaction history.
package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
)

const (
	readerKeyPrefix     = "shelfwise:reader:"
	interactionKeyInfix = ":interaction:"
	fieldRegistered     = "registered"
)

// store is the consumer interface for activity persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/recommend.ActivityReader plus the write side
// used by the interaction ingest endpoint.
type Repo struct {
	store store
}

// New creates an activity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// RegisterReader marks a reader as known to the system.
func (r *Repo) RegisterReader(ctx context.Context, readerID string) error {
	fields := map[string]string{fieldRegistered: "1"}
	if err := r.store.HSet(ctx, readerKey(readerID), fields); err != nil {
		return fmt.Errorf("register reader %s: %w", readerID, err)
	}
	return nil
}

// ReaderExists reports whether the reader has been registered.
func (r *Repo) ReaderExists(ctx context.Context, readerID string) (bool, error) {
	exists, err := r.store.Exists(ctx, readerKey(readerID))
	if err != nil {
		return false, fmt.Errorf("check reader %s: %w", readerID, err)
	}
	return exists, nil
}

// UpsertInteraction stores a reader's interaction with an item and marks
// the reader as known.
func (r *Repo) UpsertInteraction(ctx context.Context, readerID string, in domain.Interaction) error {
	if err := r.RegisterReader(ctx, readerID); err != nil {
		return err
	}
	key := interactionKey(readerID, in.ItemID)
	if err := r.store.HSet(ctx, key, buildHashFields(in)); err != nil {
		return fmt.Errorf("store interaction %s/%s: %w", readerID, in.ItemID, err)
	}
	return nil
}

// ReaderInteractions returns every recorded interaction for the reader.
func (r *Repo) ReaderInteractions(ctx context.Context, readerID string) ([]domain.Interaction, error) {
	keys, err := r.store.Scan(ctx, readerKey(readerID)+interactionKeyInfix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan interactions %s: %w", readerID, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load interactions %s: %w", readerID, err)
	}

	out := make([]domain.Interaction, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		out = append(out, parseHashFields(interactionItemID(readerID, keys[i]), m))
	}
	return out, nil
}

func readerKey(readerID string) string {
	return readerKeyPrefix + readerID
}

func interactionKey(readerID, itemID string) string {
	return readerKey(readerID) + interactionKeyInfix + itemID
}

func interactionItemID(readerID, key string) string {
	return strings.TrimPrefix(key, readerKey(readerID)+interactionKeyInfix)
}
