package adapthttp

import (
	"errors"
	"io"
	"net/http"
)

// handleImageProxy fetches a remote image and streams it back same-origin,
// so remote catalog images never trigger cross-origin fetches in the
// browser.
func (s *Server) handleImageProxy(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("u")
	if u == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing u parameter"))
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, u, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid u parameter"))
		return
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("failed to fetch image"))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		writeError(w, http.StatusBadGateway, errors.New("upstream returned "+resp.Status))
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.Copy(w, resp.Body)
}
