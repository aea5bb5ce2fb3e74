// Package ingest is the write side of the service: catalog items and
// reader interactions enter the system here.
package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
)

const maxRating = 5

// Service validates and stores catalog items and interactions.
type Service struct {
	catalog  CatalogWriter
	activity ActivityWriter
	borrows  BorrowLedger
	logger   *zap.Logger
}

// New creates an ingest service.
func New(catalog CatalogWriter, activity ActivityWriter, borrows BorrowLedger, log *zap.Logger) *Service {
	return &Service{catalog: catalog, activity: activity, borrows: borrows, logger: log}
}

// UpsertItem stores a catalog item. An unknown category string has already
// been normalized to the unknown arm by the caller.
func (s *Service) UpsertItem(ctx context.Context, item domain.CatalogItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := s.catalog.Upsert(ctx, item); err != nil {
		return err
	}
	s.logger.Debug("item stored", zap.String("item_id", item.ID))
	return nil
}

// UpsertItems stores a batch of catalog items. The whole batch is rejected
// when any item fails validation, so a partial write never happens.
func (s *Service) UpsertItems(ctx context.Context, items []domain.CatalogItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: batch must not be empty", domain.ErrInvalidArgument)
	}
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	if err := s.catalog.UpsertBatch(ctx, items); err != nil {
		return err
	}
	s.logger.Debug("item batch stored", zap.Int("count", len(items)))
	return nil
}

func validateItem(item domain.CatalogItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: item id is required", domain.ErrInvalidArgument)
	}
	if item.Title == "" && item.AuthorName == "" {
		return fmt.Errorf("%w: item needs a title or an author", domain.ErrInvalidArgument)
	}
	return nil
}

// DeleteItem removes a catalog item.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: item id is required", domain.ErrInvalidArgument)
	}
	return s.catalog.Delete(ctx, id)
}

// RecordInteraction stores a reader's interaction with an item and bumps
// the borrow leaderboard when the interaction carries a borrow.
func (s *Service) RecordInteraction(ctx context.Context, readerID string, in domain.Interaction) error {
	if readerID == "" {
		return fmt.Errorf("%w: reader id is required", domain.ErrInvalidArgument)
	}
	if in.ItemID == "" {
		return fmt.Errorf("%w: item id is required", domain.ErrInvalidArgument)
	}
	if in.Rating < 0 || in.Rating > maxRating {
		return fmt.Errorf("%w: rating must be between 0 and %d", domain.ErrInvalidArgument, maxRating)
	}
	if in.BorrowCount < 0 || in.ReserveCount < 0 {
		return fmt.Errorf("%w: counters must not be negative", domain.ErrInvalidArgument)
	}

	if err := s.activity.UpsertInteraction(ctx, readerID, in); err != nil {
		return err
	}

	if in.Borrowed {
		if err := s.borrows.RecordBorrow(ctx, in.ItemID); err != nil {
			return fmt.Errorf("record borrow: %w", err)
		}
	}

	s.logger.Debug("interaction stored",
		zap.String("reader_id", readerID),
		zap.String("item_id", in.ItemID))
	return nil
}
