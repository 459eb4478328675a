package healthhandler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"ems/internal/platform/metrics"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func get(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	h.RegisterMetrics(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDatabaseHealth(t *testing.T) {
	up := get(NewHandler(stubPinger{}, nil), "/health/db")
	if up.Code != http.StatusOK || strings.TrimSpace(up.Body.String()) != `{"database":"up"}` {
		t.Fatalf("unexpected up response %d %s", up.Code, up.Body.String())
	}

	down := get(NewHandler(stubPinger{err: errors.New("refused")}, nil), "/health/db")
	if down.Code != http.StatusOK || strings.TrimSpace(down.Body.String()) != `{"database":"down"}` {
		t.Fatalf("unexpected down response %d %s", down.Code, down.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	collector := metrics.New()
	collector.Record(200, 0)

	rec := get(NewHandler(stubPinger{}, collector), "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"requestsTotal":1`) {
		t.Fatalf("unexpected metrics response %d %s", rec.Code, rec.Body.String())
	}

	if rec := get(NewHandler(stubPinger{}, nil), "/metrics"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected metrics to be unmounted, got %d", rec.Code)
	}
}
