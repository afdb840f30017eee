package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	adapthttp "github.com/webqianduansong/shn-jade-demo-sub001/internal/adapter/http"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/adapter/postgres"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/adapter/redisx"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	rdb := redisx.New(cfg.RedisAddr)
	defer func() { _ = rdb.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)
	cartRepo := redisx.NewCartRepo(rdb)

	catalogSvc := app.NewCatalogService(db)
	cartSvc := app.NewCartService(cartRepo)
	authSvc := app.NewAuthService(db)
	adminSvc := app.NewAdminService(db, sessionRepo, cfg.AdminEmails)

	oidcConfig := loadOIDC(cfg)

	h := adapthttp.New(catalogSvc, cartSvc, authSvc, adminSvc, oidcConfig, cfg.WebDir).Handler()
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: h}

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// loadOIDC configures the optional admin SSO flow. SSO stays disabled when
// no issuer is configured or discovery fails.
func loadOIDC(cfg config.Config) adapthttp.OIDCConfig {
	if cfg.OIDCIssuer == "" {
		return adapthttp.OIDCConfig{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		log.Printf("warn: oidc discovery failed, sso disabled: %v", err)
		return adapthttp.OIDCConfig{}
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}
}
