package recommend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/filter"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/page"
	"github.com/shelfwise/shelfwise/internal/metrics"
)

// Service is the content-based recommendation engine. It is stateless
// across requests: every call rebuilds the vocabulary and vectors from the
// current catalog snapshot, so concurrent calls never share mutable state.
type Service struct {
	catalog  CatalogReader
	activity ActivityReader
	popular  PopularityProvider
	logger   *zap.Logger
}

// New creates a recommendation service.
func New(catalog CatalogReader, activity ActivityReader, popular PopularityProvider, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, activity: activity, popular: popular, logger: logger}
}

// Recommend returns one page of personalized recommendations for the
// reader. Unknown readers, empty history, and an empty candidate catalog
// fall back to the popularity ranking; collaborator failures propagate.
func (s *Service) Recommend(ctx context.Context, readerID string, f filter.Filter) (page.Page, error) {
	start := time.Now()

	exists, err := s.activity.ReaderExists(ctx, readerID)
	if err != nil {
		return page.Page{}, fmt.Errorf("check reader %s: %w", readerID, err)
	}
	if !exists {
		return s.fallback(ctx, readerID, "unknown reader", f, start)
	}

	interactions, err := s.activity.ReaderInteractions(ctx, readerID)
	if err != nil {
		return page.Page{}, fmt.Errorf("load interactions for %s: %w", readerID, err)
	}
	history := qualifyingInteractions(interactions)
	if len(history) == 0 {
		return s.fallback(ctx, readerID, "no interaction history", f, start)
	}

	items, err := s.catalog.CandidateItems(ctx)
	if err != nil {
		return page.Page{}, fmt.Errorf("load candidate items: %w", err)
	}
	if len(items) == 0 {
		return s.fallback(ctx, readerID, "empty candidate catalog", f, start)
	}

	authorByItem := s.resolveAuthors(ctx, items)

	docs := make([]itemDocument, len(items))
	for i, item := range items {
		docs[i] = itemDocument{
			itemID: item.ID,
			text:   buildDocument(item, authorByItem[item.ID], f),
		}
	}
	vectors := buildVectors(docs)
	metrics.CatalogVocabularyTerms.Set(float64(vocabularySize(vectors)))

	vectorsByID := make(map[string]ItemVector, len(vectors))
	for _, v := range vectors {
		vectorsByID[v.ItemID] = v
	}

	profile := buildProfile(vectorsByID, history)
	metrics.ProfileInteractions.Observe(float64(len(history)))
	if len(profile) == 0 {
		return s.fallback(ctx, readerID, "no qualifying interactions", f, start)
	}

	interacted := make(map[string]struct{}, len(history))
	interactedIDs := make([]string, 0, len(history))
	for _, in := range history {
		if _, ok := interacted[in.ItemID]; ok {
			continue
		}
		interacted[in.ItemID] = struct{}{}
		interactedIDs = append(interactedIDs, in.ItemID)
	}

	historyCodes, err := s.catalog.ClassificationCodes(ctx, interactedIDs)
	if err != nil {
		return page.Page{}, fmt.Errorf("load classification codes: %w", err)
	}

	codesByItem := make(map[string]string, len(items))
	itemsByID := make(map[string]domain.CatalogItem, len(items))
	for _, item := range items {
		codesByItem[item.ID] = item.ClassificationCode
		itemsByID[item.ID] = item
	}

	ranked := rank(vectors, profile, interacted, codesByItem, newClassificationRange(historyCodes))

	rankedIDs := make([]string, len(ranked))
	for i, r := range ranked {
		rankedIDs[i] = r.itemID
	}
	rankedIDs = diversify(rankedIDs, authorByItem, f.LimitPerAuthor())

	pageIDs, effectivePage, total, totalPages := paginate(rankedIDs, f.Page(), f.PageSize())
	pageItems := make([]domain.CatalogItem, len(pageIDs))
	for i, id := range pageIDs {
		pageItems[i] = itemsByID[id]
	}

	metrics.RecommendationsTotal.WithLabelValues(metrics.ModePersonalized).Inc()
	metrics.RecommendationDuration.WithLabelValues(metrics.ModePersonalized).Observe(time.Since(start).Seconds())

	return page.New(pageItems, effectivePage, f.PageSize(), total, totalPages, true), nil
}

// fallback serves the popularity ranking. Not an error path: the engine
// simply cannot personalize for this reader right now.
func (s *Service) fallback(
	ctx context.Context, readerID, reason string, f filter.Filter, start time.Time,
) (page.Page, error) {
	s.logger.Info("serving popularity fallback",
		zap.String("reader_id", readerID),
		zap.String("reason", reason),
	)

	p, err := s.popular.PopularItems(ctx, f.Page(), f.PageSize())
	if err != nil {
		return page.Page{}, fmt.Errorf("popularity fallback: %w", err)
	}

	metrics.RecommendationsTotal.WithLabelValues(metrics.ModeFallback).Inc()
	metrics.RecommendationDuration.WithLabelValues(metrics.ModeFallback).Observe(time.Since(start).Seconds())
	return p, nil
}

// resolveAuthors prefers the author carried on the item record and falls
// back to a best-effort catalog lookup; a failed lookup yields an empty
// author, never an error.
func (s *Service) resolveAuthors(ctx context.Context, items []domain.CatalogItem) map[string]string {
	authors := make(map[string]string, len(items))
	for _, item := range items {
		if item.AuthorName != "" {
			authors[item.ID] = item.AuthorName
			continue
		}
		author, err := s.catalog.PrimaryAuthor(ctx, item.ID)
		if err != nil {
			s.logger.Debug("author lookup failed", zap.String("item_id", item.ID), zap.Error(err))
			continue
		}
		authors[item.ID] = author
	}
	return authors
}

// qualifyingInteractions drops records carrying no engagement signal.
func qualifyingInteractions(interactions []domain.Interaction) []domain.Interaction {
	out := make([]domain.Interaction, 0, len(interactions))
	for _, in := range interactions {
		if in.HasSignal() {
			out = append(out, in)
		}
	}
	return out
}

func vocabularySize(vectors []ItemVector) int {
	terms := make(map[string]struct{})
	for _, v := range vectors {
		for term := range v.Weights {
			terms[term] = struct{}{}
		}
	}
	return len(terms)
}
