package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	domain "event-marketplace/internal/core"
	"event-marketplace/internal/service"
	"event-marketplace/pkg/metrics"

	"github.com/pocketbase/pocketbase/core"
)

const (
	msgRegistered     = "Registration successful! Please check your email to verify your account."
	msgRegisterFailed = "An error occurred during registration. Please try again."
	msgMissingFields  = "Please fill in all required fields."
)

type VendorHandler struct {
	Renderer     *Renderer
	Registration *service.RegistrationService
}

// ShowRegistration renders the empty vendor form
// GET /vendor/register
func (h *VendorHandler) ShowRegistration(e *core.RequestEvent) error {
	return h.render(e, http.StatusOK, domain.RegistrationForm{}, "", "")
}

// Register handles the form submit: sign-up, then vendor profile insert
// POST /vendor/register
func (h *VendorHandler) Register(e *core.RequestEvent) error {
	form := domain.RegistrationForm{
		BusinessName: strings.TrimSpace(e.Request.FormValue("businessName")),
		Description:  strings.TrimSpace(e.Request.FormValue("description")),
		Location:     strings.TrimSpace(e.Request.FormValue("location")),
		Email:        strings.TrimSpace(e.Request.FormValue("email")),
		Phone:        strings.TrimSpace(e.Request.FormValue("phone")),
		Password:     e.Request.FormValue("password"),
	}

	vp, err := h.Registration.Register(form)
	switch {
	case err == nil:
		metrics.RecordRegistration("success")
		log.Printf("✅ [REGISTRATION] vendor %s (%s) registered", vp.ID, vp.BusinessName)
		return h.render(e, http.StatusOK, domain.RegistrationForm{}, "success", msgRegistered)

	case errors.Is(err, service.ErrMissingFields):
		metrics.RecordRegistration("invalid")
		return h.render(e, http.StatusBadRequest, form, "error", msgMissingFields)

	case errors.Is(err, service.ErrSignUpFailed):
		metrics.RecordRegistration("signup_failed")
	default:
		metrics.RecordRegistration("profile_failed")
	}

	log.Printf("❌ [REGISTRATION] %s: %v", form.Email, err)
	return h.render(e, http.StatusUnprocessableEntity, form, "error", msgRegisterFailed)
}

func (h *VendorHandler) render(e *core.RequestEvent, status int, form domain.RegistrationForm, kind, message string) error {
	// Never echo the password back
	form.Password = ""

	return h.Renderer.Page(e, status, "public/vendor_register.html", map[string]interface{}{
		"Title":     "Become a Vendor",
		"Form":      form,
		"AlertKind": kind,
		"Alert":     message,
	})
}
