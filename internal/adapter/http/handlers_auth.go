// Package adapthttp implements the HTTP adapter for the storefront.
package adapthttp

import (
	"errors"
	"net/http"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

func setAuthCookie(w http.ResponseWriter, user domain.AuthUser) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    app.EncodeUserCookie(user),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   authCookieMaxAge,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// authCookieValue returns the raw auth cookie value, or "".
func authCookieValue(r *http.Request) string {
	cookie, err := r.Cookie(authCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *Server) handleAuthMe(w http.ResponseWriter, r *http.Request) {
	user, err := app.RequireAuth(authCookieValue(r))
	if err != nil {
		writeFailure(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}

func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.auth.Login(r.Context(), body.Email, body.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeFailure(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	setAuthCookie(w, *user)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}

func (s *Server) handleAuthRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.auth.Register(r.Context(), body.Email, body.Name, body.Password)
	if errors.Is(err, app.ErrEmailTaken) {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	setAuthCookie(w, *user)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}

func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, authCookie)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
