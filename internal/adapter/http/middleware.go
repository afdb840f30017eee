package adapthttp

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

type contextKey string

const localeContextKey contextKey = "locale"

// adminRedirectLocale is used for the admin login redirect when the path
// carries no valid locale prefix.
const adminRedirectLocale = domain.LocaleZH

// pageMiddleware applies the admin gate and locale-prefix negotiation to
// page requests, then delegates to the page handler. API routes, static
// assets, and paths with a file extension bypass it entirely.
func (s *Server) pageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if skipPageRouting(path) {
			next.ServeHTTP(w, r)
			return
		}

		if isAdminRoute(path) {
			if _, err := r.Cookie(adminSessionCookie); err != nil {
				loc := adminLocale(path)
				target := "/" + loc.String() + "/admin/login?redirect=" + url.QueryEscape(path)
				http.Redirect(w, r, target, http.StatusTemporaryRedirect)
				return
			}
		}

		seg := firstSegment(path)
		if loc, ok := domain.ParseLocale(seg); ok {
			if loc == domain.DefaultLocale {
				// As-needed policy: the default locale is never prefixed.
				target := strings.TrimPrefix(path, "/"+seg)
				if target == "" {
					target = "/"
				}
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusTemporaryRedirect)
				return
			}
			r2 := r.Clone(withLocale(r.Context(), loc))
			r2.URL.Path = strings.TrimPrefix(path, "/"+seg)
			if r2.URL.Path == "" {
				r2.URL.Path = "/"
			}
			next.ServeHTTP(w, r2)
			return
		}

		next.ServeHTTP(w, r.Clone(withLocale(r.Context(), domain.DefaultLocale)))
	})
}

// skipPageRouting reports whether the path is outside the page matcher:
// API routes, static assets, internal paths, and anything with a file
// extension.
func skipPageRouting(path string) bool {
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/_") {
		return true
	}
	last := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		last = path[i+1:]
	}
	return strings.Contains(last, ".")
}

// isAdminRoute reports whether the path is a gated admin page: anything
// under admin, with or without a locale prefix, except the login page.
func isAdminRoute(path string) bool {
	segs := pathSegments(path)
	adminIdx := -1
	if len(segs) > 0 && segs[0] == "admin" {
		adminIdx = 0
	} else if len(segs) > 1 && segs[1] == "admin" {
		if _, ok := domain.ParseLocale(segs[0]); ok {
			adminIdx = 1
		}
	}
	if adminIdx < 0 {
		return false
	}
	// The login page itself is never gated.
	return len(segs) <= adminIdx+1 || segs[adminIdx+1] != "login"
}

// adminLocale extracts the locale for the admin login redirect, defaulting
// to adminRedirectLocale when the first segment is not a valid locale.
func adminLocale(path string) domain.Locale {
	if loc, ok := domain.ParseLocale(firstSegment(path)); ok {
		return loc
	}
	return adminRedirectLocale
}

func firstSegment(path string) string {
	segs := pathSegments(path)
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func withLocale(ctx context.Context, loc domain.Locale) context.Context {
	return context.WithValue(ctx, localeContextKey, loc)
}

// localeFromContext returns the locale negotiated by the page middleware.
func localeFromContext(ctx context.Context) domain.Locale {
	if loc, ok := ctx.Value(localeContextKey).(domain.Locale); ok {
		return loc
	}
	return domain.DefaultLocale
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs method, path, status, and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
