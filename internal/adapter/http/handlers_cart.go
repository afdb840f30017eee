package adapthttp

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
)

// cartSession returns the cart session id from the cart cookie, or "".
func cartSession(r *http.Request) string {
	cookie, err := r.Cookie(cartSessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ensureCartSession returns the cart session id, issuing a fresh one in a
// cookie when the request carries none.
func (s *Server) ensureCartSession(w http.ResponseWriter, r *http.Request) string {
	if sid := cartSession(r); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartSessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cartCookieMaxAge,
	})
	return sid
}

func (s *Server) handleCartGet(w http.ResponseWriter, r *http.Request) {
	state, err := s.cart.Get(r.Context(), cartSession(r))
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": state})
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	sid := s.ensureCartSession(w, r)
	state, err := s.cart.Add(r.Context(), sid, body.ProductID, body.Quantity)
	if errors.Is(err, app.ErrMissingProduct) || errors.Is(err, app.ErrInvalidQuantity) {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "added to cart", "data": state})
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := s.cart.Remove(r.Context(), cartSession(r), body.ProductID)
	if errors.Is(err, app.ErrMissingProduct) {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "removed from cart", "data": state})
}

func (s *Server) handleCartClear(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Clear(r.Context(), cartSession(r)); err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
}
