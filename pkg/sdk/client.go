package shelfwise

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/db"
	dbRedis "github.com/shelfwise/shelfwise/internal/db/redis"
	"github.com/shelfwise/shelfwise/internal/domain"
	domfilter "github.com/shelfwise/shelfwise/internal/domain/recommend/filter"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/page"
	activityrepo "github.com/shelfwise/shelfwise/internal/repository/activity"
	catalogrepo "github.com/shelfwise/shelfwise/internal/repository/catalog"
	popularityrepo "github.com/shelfwise/shelfwise/internal/repository/popularity"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	ingestuc "github.com/shelfwise/shelfwise/internal/usecase/ingest"
	popularityuc "github.com/shelfwise/shelfwise/internal/usecase/popularity"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the use case services.
type recommendUseCase interface {
	Recommend(ctx context.Context, readerID string, f domfilter.Filter) (page.Page, error)
}

type popularUseCase interface {
	PopularItems(ctx context.Context, pageIndex, pageSize int) (page.Page, error)
}

type ingestUseCase interface {
	UpsertItem(ctx context.Context, item domain.CatalogItem) error
	UpsertItems(ctx context.Context, items []domain.CatalogItem) error
	DeleteItem(ctx context.Context, id string) error
	RecordInteraction(ctx context.Context, readerID string, in domain.Interaction) error
}

// Client is the shelfwise SDK entry point.
type Client struct {
	store     db.Store
	recommend recommendUseCase
	popular   popularUseCase
	ingest    ingestUseCase
	health    healthUseCase
}

// New creates a shelfwise Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("shelfwise: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("shelfwise: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("shelfwise: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	log := cfg.logger
	if log == nil {
		log = zap.NewNop()
	}

	catalogRepo := catalogrepo.New(store)
	activityRepo := activityrepo.New(store)
	popularityRepo := popularityrepo.New(store)

	popularSvc := popularityuc.New(popularityRepo, catalogRepo, log)

	return &Client{
		store:     store,
		recommend: recommenduc.New(catalogRepo, activityRepo, popularSvc, log),
		popular:   popularSvc,
		ingest:    ingestuc.New(catalogRepo, activityRepo, popularityRepo, log),
		health:    healthuc.New(store),
	}
}

// Close releases the database connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Recommend returns one page of recommendations for the reader. Readers
// without usable history get the popularity ranking (Personalized=false).
func (c *Client) Recommend(ctx context.Context, readerID string, f Filter) (Page, error) {
	p, err := c.recommend.Recommend(ctx, readerID, filterToDomain(f))
	if err != nil {
		return Page{}, err
	}
	return pageFromDomain(p), nil
}

// Popular returns one page of the most-borrowed items.
func (c *Client) Popular(ctx context.Context, pageIndex, pageSize int) (Page, error) {
	f := filterToDomain(Filter{Page: pageIndex, PageSize: pageSize})
	p, err := c.popular.PopularItems(ctx, f.Page(), f.PageSize())
	if err != nil {
		return Page{}, err
	}
	return pageFromDomain(p), nil
}

// UpsertItem stores a catalog item.
func (c *Client) UpsertItem(ctx context.Context, item Item) error {
	return c.ingest.UpsertItem(ctx, itemToDomain(item))
}

// UpsertItems stores a batch of catalog items in one pipelined write.
func (c *Client) UpsertItems(ctx context.Context, items []Item) error {
	converted := make([]domain.CatalogItem, len(items))
	for i, item := range items {
		converted[i] = itemToDomain(item)
	}
	return c.ingest.UpsertItems(ctx, converted)
}

// DeleteItem removes a catalog item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.ingest.DeleteItem(ctx, id)
}

// RecordInteraction stores a reader's interaction with an item.
func (c *Client) RecordInteraction(ctx context.Context, readerID string, in Interaction) error {
	return c.ingest.RecordInteraction(ctx, readerID, interactionToDomain(in))
}
