// Package popularity serves the non-personalized most-borrowed ranking.
package popularity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain/recommend/page"
)

// Service pages through the global borrow leaderboard.
type Service struct {
	board  Leaderboard
	items  ItemLoader
	logger *zap.Logger
}

// New creates a popularity service.
func New(board Leaderboard, items ItemLoader, log *zap.Logger) *Service {
	return &Service{board: board, items: items, logger: log}
}

// PopularItems returns one page of the most-borrowed items. An
// out-of-range page index falls back to the first page.
func (s *Service) PopularItems(ctx context.Context, pageIndex, pageSize int) (page.Page, error) {
	total, err := s.board.Count(ctx)
	if err != nil {
		return page.Page{}, fmt.Errorf("leaderboard size: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	if pageIndex < 1 || (totalPages > 0 && pageIndex > totalPages) {
		pageIndex = 1
	}

	ids, err := s.board.TopItems(ctx, (pageIndex-1)*pageSize, pageSize)
	if err != nil {
		return page.Page{}, fmt.Errorf("leaderboard page: %w", err)
	}

	items, err := s.items.ItemsByID(ctx, ids)
	if err != nil {
		return page.Page{}, fmt.Errorf("load popular items: %w", err)
	}

	s.logger.Debug("served popular page",
		zap.Int("page", pageIndex),
		zap.Int("items", len(items)),
		zap.Int("total", total))

	return page.New(items, pageIndex, pageSize, total, totalPages, false), nil
}
