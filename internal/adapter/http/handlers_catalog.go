package adapthttp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
)

func (s *Server) handleBanners(w http.ResponseWriter, r *http.Request) {
	res := s.catalog.Banners(r.Context())

	// Banner failures never break the page; the envelope stays successful
	// with an empty list and a diagnostic field.
	payload := map[string]any{"success": true, "banners": res.Banners}
	if res.Note != "" {
		payload["note"] = res.Note
	}
	if res.Err != "" {
		payload["error"] = res.Err
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "categories": categories})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := s.catalog.GetProduct(r.Context(), id)
	if errors.Is(err, app.ErrProductNotFound) {
		writeFailure(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}
