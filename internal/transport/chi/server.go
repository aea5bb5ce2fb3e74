package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/filter"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	ingestuc "github.com/shelfwise/shelfwise/internal/usecase/ingest"
	popularityuc "github.com/shelfwise/shelfwise/internal/usecase/popularity"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the recommendation engine over HTTP.
type Server struct {
	recommend     *recommenduc.Service
	popular       *popularityuc.Service
	ingest        *ingestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	recommend *recommenduc.Service,
	popular *popularityuc.Service,
	ingest *ingestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		recommend: recommend,
		popular:   popular,
		ingest:    ingest,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/v1/readers/{readerID}/recommendations", s.GetRecommendations)
	r.Post("/api/v1/readers/{readerID}/interactions", s.RecordInteraction)
	r.Get("/api/v1/items/popular", s.GetPopularItems)
	r.Post("/api/v1/items", s.UpsertItems)
	r.Put("/api/v1/items/{itemID}", s.UpsertItem)
	r.Delete("/api/v1/items/{itemID}", s.DeleteItem)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// GetRecommendations handles GET /api/v1/readers/{readerID}/recommendations.
func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	readerID := chi.URLParam(r, "readerID")
	f := filterFromQuery(r)

	p, err := s.recommend.Recommend(r.Context(), readerID, f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(p))
}

// GetPopularItems handles GET /api/v1/items/popular.
func (s *Server) GetPopularItems(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)

	p, err := s.popular.PopularItems(r.Context(), f.Page(), f.PageSize())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(p))
}

// UpsertItem handles PUT /api/v1/items/{itemID}.
func (s *Server) UpsertItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req upsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item := itemFromUpsert(itemID, req)
	if err := s.ingest.UpsertItem(r.Context(), item); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToResponse(item))
}

// UpsertItems handles POST /api/v1/items, a batch ingest of catalog items.
func (s *Server) UpsertItems(w http.ResponseWriter, r *http.Request) {
	var req batchItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	items := make([]domain.CatalogItem, len(req.Items))
	for i, entry := range req.Items {
		items[i] = itemFromUpsert(entry.ID, entry.upsertItemRequest)
	}

	if err := s.ingest.UpsertItems(r.Context(), items); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/v1/items/{itemID}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.ingest.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordInteraction handles POST /api/v1/readers/{readerID}/interactions.
func (s *Server) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	readerID := chi.URLParam(r, "readerID")

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.ingest.RecordInteraction(r.Context(), readerID, interactionFromRequest(req)); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// filterFromQuery builds a Filter from query parameters. Toggles default
// to enabled; malformed pagination values are normalized by the filter
// constructor, not rejected.
func filterFromQuery(r *http.Request) filter.Filter {
	q := r.URL.Query()
	return filter.New(
		boolParam(q.Get("include_title"), true),
		boolParam(q.Get("include_author"), true),
		boolParam(q.Get("include_genres"), true),
		boolParam(q.Get("include_topics"), true),
		boolParam(q.Get("limit_per_author"), true),
		intParam(q.Get("page"), 1),
		intParam(q.Get("page_size"), filter.DefaultPageSize),
	)
}

func boolParam(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidArgument,
		domain.ErrItemNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
