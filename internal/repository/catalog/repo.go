// Package catalog stores catalog items as Redis hashes keyed by item ID.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/db"
	"github.com/shelfwise/shelfwise/internal/domain"
)

const keyPrefix = "shelfwise:item:"

// store is the consumer interface for catalog persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
}

// Repo implements usecase/recommend.CatalogReader plus the write side used
// by the item ingest endpoint.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert stores a catalog item.
func (r *Repo) Upsert(ctx context.Context, item domain.CatalogItem) error {
	if err := r.store.HSet(ctx, itemKey(item.ID), buildHashFields(item)); err != nil {
		return fmt.Errorf("store item %s: %w", item.ID, err)
	}
	return nil
}

// UpsertBatch stores a batch of catalog items in one pipelined write.
func (r *Repo) UpsertBatch(ctx context.Context, items []domain.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := make([]db.HashSetItem, len(items))
	for i, item := range items {
		batch[i] = db.HashSetItem{Key: itemKey(item.ID), Fields: buildHashFields(item)}
	}
	if err := r.store.HSetMulti(ctx, batch); err != nil {
		return fmt.Errorf("store %d items: %w", len(items), err)
	}
	return nil
}

// Delete removes a catalog item.
func (r *Repo) Delete(ctx context.Context, id string) error {
	exists, err := r.store.Exists(ctx, itemKey(id))
	if err != nil {
		return fmt.Errorf("check item %s: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("delete item %s: %w", id, domain.ErrItemNotFound)
	}
	if err := r.store.Del(ctx, itemKey(id)); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

// CandidateItems returns every non-withdrawn catalog item.
func (r *Repo) CandidateItems(ctx context.Context) ([]domain.CatalogItem, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	items := make([]domain.CatalogItem, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		item := parseHashFields(itemID(keys[i]), m)
		if item.Withdrawn {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemsByID loads the given items, preserving input order. Missing or
// withdrawn items are skipped.
func (r *Repo) ItemsByID(ctx context.Context, ids []string) ([]domain.CatalogItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	items := make([]domain.CatalogItem, 0, len(ids))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		item := parseHashFields(ids[i], m)
		if item.Withdrawn {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// PrimaryAuthor resolves an item's author name. Missing items yield an
// empty author, not an error: the engine treats the lookup as best-effort.
func (r *Repo) PrimaryAuthor(ctx context.Context, itemID string) (string, error) {
	m, err := r.store.HGetAll(ctx, itemKey(itemID))
	if err != nil {
		return "", fmt.Errorf("load item %s: %w", itemID, err)
	}
	return m[fieldAuthor], nil
}

// ClassificationCodes returns the classification code per requested item,
// empty for items that no longer exist.
func (r *Repo) ClassificationCodes(ctx context.Context, itemIDs []string) ([]string, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		keys[i] = itemKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	codes := make([]string, len(itemIDs))
	for i, m := range hashes {
		codes[i] = m[fieldClassification]
	}
	return codes, nil
}

func itemKey(id string) string {
	return keyPrefix + id
}

func itemID(key string) string {
	return strings.TrimPrefix(key, keyPrefix)
}
