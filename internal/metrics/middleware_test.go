package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest("GET", "/api/test", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	requestsVal := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/test", "200"))
	if requestsVal < 1 {
		t.Errorf("expected http_requests_total >= 1, got %f", requestsVal)
	}

	durationCount := testutil.CollectAndCount(httpRequestDuration)
	if durationCount == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath(""); got != "unknown" {
		t.Errorf("normalizePath(\"\") = %q, want \"unknown\"", got)
	}
	if got := normalizePath("/api/v1/items/popular"); got != "/api/v1/items/popular" {
		t.Errorf("normalizePath() = %q", got)
	}
}

func TestRegisterRecommendationMetrics_Idempotent(t *testing.T) {
	RegisterRecommendationMetrics()
	// A second call must not panic on duplicate registration.
	RegisterRecommendationMetrics()

	RecommendationsTotal.WithLabelValues(ModePersonalized).Inc()
	if v := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(ModePersonalized)); v < 1 {
		t.Errorf("expected recommendations_total >= 1, got %f", v)
	}
}
