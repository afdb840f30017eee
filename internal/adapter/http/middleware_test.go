package adapthttp_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	adapthttp "github.com/webqianduansong/shn-jade-demo-sub001/internal/adapter/http"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/adapter/memory"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
)

func newTestHandler(t *testing.T, db *memory.DB) http.Handler {
	t.Helper()

	if db == nil {
		db = memory.New()
	}

	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html>storefront</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	catalogSvc := app.NewCatalogService(db)
	cartSvc := app.NewCartService(db)
	authSvc := app.NewAuthService(db)
	adminSvc := app.NewAdminService(db, memory.NewSessionRepo(db), []string{"boss@example.com"})

	return adapthttp.New(catalogSvc, cartSvc, authSvc, adminSvc, adapthttp.OIDCConfig{}, webDir).Handler()
}

func TestAdminRouteRedirectsWithoutSession(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name         string
		path         string
		wantLocation string
	}{
		{
			"locale-prefixed admin page",
			"/zh/admin/dashboard",
			"/zh/admin/login?redirect=%2Fzh%2Fadmin%2Fdashboard",
		},
		{
			"unprefixed admin page defaults to zh",
			"/admin/dashboard",
			"/zh/admin/login?redirect=%2Fadmin%2Fdashboard",
		},
		{
			"japanese admin page keeps its locale",
			"/ja/admin/products",
			"/ja/admin/login?redirect=%2Fja%2Fadmin%2Fproducts",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != http.StatusTemporaryRedirect {
				t.Fatalf("expected 307, got %d", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", loc, tc.wantLocation)
			}
		})
	}
}

func TestAdminLoginPageNeverRedirected(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, path := range []string{"/zh/admin/login", "/admin/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestAdminRoutePassesWithSessionCookie(t *testing.T) {
	h := newTestHandler(t, nil)

	// The gate checks cookie presence only; the value is not verified here.
	req := httptest.NewRequest(http.MethodGet, "/zh/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "anything"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDefaultLocalePrefixRedirectsToUnprefixed(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/en/products?page=2", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/products?page=2" {
		t.Fatalf("Location = %q, want %q", loc, "/products?page=2")
	}
}

func TestLocalePrefixNegotiation(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		path       string
		wantLocale string
	}{
		{"/fr/products", "fr"},
		{"/zh", "zh"},
		{"/products", "en"},
		{"/", "en"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", tc.path, w.Code)
			continue
		}
		if got := w.Header().Get("Content-Language"); got != tc.wantLocale {
			t.Errorf("%s: Content-Language = %q, want %q", tc.path, got, tc.wantLocale)
		}
	}
}

func TestApiRoutesBypassPageMiddleware(t *testing.T) {
	h := newTestHandler(t, nil)

	// An API path under a locale-looking prefix must not be rewritten or
	// redirected.
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
