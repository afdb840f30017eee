// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config is the immutable process configuration, read once at startup.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string
	WebDir      string
	AdminEmails []string

	// Optional OIDC SSO for the admin area; disabled when the issuer is empty.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		WebDir:      getenv("WEB_DIR", "web"),
		AdminEmails: splitCSV(os.Getenv("ADMIN_EMAILS")),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
