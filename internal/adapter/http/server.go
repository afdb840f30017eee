package adapthttp

import (
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/oauth2"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
)

// Cookie names used across the storefront.
const (
	authCookie         = "auth_user"
	adminSessionCookie = "admin_session"
	cartSessionCookie  = "cart_session"
)

const (
	authCookieMaxAge = 7 * 24 * 3600
	cartCookieMaxAge = 30 * 24 * 3600
)

// OIDCConfig holds the optional admin SSO configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	catalog *app.CatalogService
	cart    *app.CartService
	auth    *app.AuthService
	admin   *app.AdminService

	oidcConfig OIDCConfig
	webDir     string

	// client fetches upstream images for the proxy endpoint.
	client *http.Client
}

// New creates a Server wired to the given application services.
func New(catalog *app.CatalogService, cart *app.CartService, auth *app.AuthService, admin *app.AdminService, oidcConfig OIDCConfig, webDir string) *Server {
	return &Server{
		catalog:    catalog,
		cart:       cart,
		auth:       auth,
		admin:      admin,
		oidcConfig: oidcConfig,
		webDir:     webDir,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(s.loggingMiddleware)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		api.Get("/banners", s.handleBanners)
		api.Get("/categories", s.handleCategories)
		api.Get("/products/{id}", s.handleProduct)
		api.Get("/img", s.handleImageProxy)

		api.Route("/cart", func(c chi.Router) {
			c.Get("/get", s.handleCartGet)
			c.Post("/add", s.handleCartAdd)
			c.Post("/remove", s.handleCartRemove)
			c.Post("/clear", s.handleCartClear)
		})

		api.Route("/auth", func(a chi.Router) {
			a.Get("/me", s.handleAuthMe)
			a.Post("/login", s.handleAuthLogin)
			a.Post("/register", s.handleAuthRegister)
			a.Post("/logout", s.handleAuthLogout)
		})

		api.Route("/admin", func(a chi.Router) {
			a.Get("/me", s.handleAdminMe)
			a.Post("/login", s.handleAdminLogin)
			a.Post("/logout", s.handleAdminLogout)
			a.Get("/sso/login", s.handleAdminSSOLogin)
			a.Get("/sso/callback", s.handleAdminSSOCallback)
		})

		api.Route("/debug", func(d chi.Router) {
			d.Get("/env", s.handleDebugEnv)
			d.HandleFunc("/echo", s.handleDebugEcho)
		})
	})

	// Everything else is a storefront/admin page; the page middleware
	// handles locale prefixes and the admin gate before serving markup.
	pages := s.pageMiddleware(pagesFromDisk(s.webDir))
	r.NotFound(pages.ServeHTTP)

	return r
}
