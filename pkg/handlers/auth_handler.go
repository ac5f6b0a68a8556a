package handlers

import (
	"net/http"
	"strings"
	"time"

	domain "event-marketplace/internal/core"
	"event-marketplace/pkg/middleware"

	"github.com/pocketbase/pocketbase/core"
)

type AuthHandler struct {
	Renderer      *Renderer
	Auth          domain.AuthGateway
	SecureCookies bool
	SessionTTL    time.Duration
}

func (h *AuthHandler) ShowLogin(e *core.RequestEvent) error {
	return h.renderLogin(e, http.StatusOK, "", "")
}

func (h *AuthHandler) ProcessLogin(e *core.RequestEvent) error {
	email := strings.TrimSpace(e.Request.FormValue("email"))
	password := e.Request.FormValue("password")

	token, err := h.Auth.SignIn(email, password)
	if err != nil {
		return h.renderLogin(e, http.StatusUnauthorized, email, "Invalid email or password.")
	}

	http.SetCookie(e.Response, &http.Cookie{
		Name:     middleware.AuthCookie,
		Value:    token,
		Path:     "/",
		Secure:   h.SecureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.SessionTTL),
	})

	return e.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) Logout(e *core.RequestEvent) error {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     middleware.AuthCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return e.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderLogin(e *core.RequestEvent, status int, email, message string) error {
	return h.Renderer.Page(e, status, "public/login.html", map[string]interface{}{
		"Title": "Log in",
		"Email": email,
		"Error": message,
	})
}
