package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ems/internal/domain/auth"
	"ems/internal/platform/config"
	"ems/internal/platform/metrics"
)

func testConfig() config.Config {
	return config.Config{
		Environment:        "test",
		JWTSecret:          "routes-test-secret",
		JWTIssuer:          "ems",
		JWTAudience:        "ems-clients",
		JWTExpiryMinutes:   60,
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 3,
	}
}

// newTestApp builds the router without a database. Only requests that are
// rejected before reaching a store are safe to send.
func newTestApp() *App {
	app := &App{Config: testConfig(), Metrics: metrics.New()}
	app.Router = app.routes()
	return app
}

func send(app *App, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func mintToken(t *testing.T, cfg config.Config) string {
	t.Helper()
	issuer := auth.NewTokenIssuer(auth.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Expiry:   time.Hour,
	})
	session, err := issuer.Mint(auth.User{ID: "u1", Email: "hr@x.com", Role: "HR", FullName: "H R"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return session.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()
	for _, path := range []string{"/api/employees", "/api/departments", "/api/attendance", "/api/salaries", "/api/reports/employees/pdf", "/api/me"} {
		rec := send(app, http.MethodGet, path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}

	if rec := send(app, http.MethodGet, "/api/employees", "", "not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", rec.Code)
	}
}

func TestValidTokenReachesHandlers(t *testing.T) {
	app := newTestApp()
	token := mintToken(t, app.Config)

	rec := send(app, http.MethodGet, "/api/me", "", token)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":"u1"`) {
		t.Fatalf("unexpected /me response %d %s", rec.Code, rec.Body.String())
	}

	if rec := send(app, http.MethodGet, "/api/reports/payroll/pdf", "", token); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown report kind, got %d", rec.Code)
	}
}

func TestRegisterValidationRunsBeforeStore(t *testing.T) {
	app := newTestApp()
	rec := send(app, http.MethodPost, "/api/auth/register", `{"fullName":"Jane","email":"jane@x.com","password":"123"}`, "")
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	app := newTestApp()
	var last *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		last = send(app, http.MethodPost, "/api/auth/login", `{}`, "")
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after exceeding the limit, got %d", last.Code)
	}
}

func TestCommonHeadersAndMetrics(t *testing.T) {
	app := newTestApp()
	rec := send(app, http.MethodGet, "/api/employees", "", "")

	if rec.Header().Get("X-Request-ID") == "" || rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing common headers %v", rec.Header())
	}

	metricsRec := send(app, http.MethodGet, "/metrics", "", "")
	if metricsRec.Code != http.StatusOK || !strings.Contains(metricsRec.Body.String(), `"unauthorizedTotal":1`) {
		t.Fatalf("unexpected metrics %d %s", metricsRec.Code, metricsRec.Body.String())
	}
}

func TestMetricsDisabled(t *testing.T) {
	app := &App{Config: testConfig()}
	app.Router = app.routes()
	if rec := send(app, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be absent, got %d", rec.Code)
	}
}
