package adapthttp

import (
	"io"
	"net/http"
	"os"
)

// handleDebugEnv reports which required environment variables are set,
// without leaking their values.
func (s *Server) handleDebugEnv(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"databaseUrl": os.Getenv("DATABASE_URL") != "",
		"adminEmails": os.Getenv("ADMIN_EMAILS") != "",
		"redisAddr":   os.Getenv("REDIS_ADDR") != "",
	})
}

// handleDebugEcho echoes the request back for client debugging.
func (s *Server) handleDebugEcho(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"method":  r.Method,
		"path":    r.URL.Path,
		"query":   r.URL.RawQuery,
		"headers": headers,
		"body":    string(body),
	})
}
