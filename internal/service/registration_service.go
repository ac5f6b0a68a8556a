package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"event-marketplace/internal/core"
)

// RegistrationService signs up a vendor and creates their business profile
type RegistrationService struct {
	auth          core.AuthGateway
	vendors       core.VendorRepository
	notifications core.NotificationService
}

// NewRegistrationService; notifications may be nil
func NewRegistrationService(
	auth core.AuthGateway,
	vendors core.VendorRepository,
	notifications core.NotificationService,
) *RegistrationService {
	return &RegistrationService{
		auth:          auth,
		vendors:       vendors,
		notifications: notifications,
	}
}

// Register runs sign-up then profile insert. A failed insert leaves the
// new identity in place; there is no compensation step.
func (s *RegistrationService) Register(form core.RegistrationForm) (*core.VendorProfile, error) {
	if missing := form.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	// 1. Auth identity
	identity, err := s.auth.SignUp(form.Email, form.Password, core.RoleVendor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignUpFailed, err)
	}

	// 2. Vendor profile keyed by the identity
	// TODO: persist form.Phone once vendor_profiles has a phone field
	vp := &core.VendorProfile{
		ID:           identity.ID,
		BusinessName: form.BusinessName,
		Description:  form.Description,
		Location:     form.Location,
	}
	if err := s.vendors.CreateProfile(vp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileFailed, err)
	}

	// 3. Best effort follow-ups
	if err := s.auth.SendVerification(identity.ID); err != nil {
		log.Printf("⚠️ [REGISTRATION] verification mail for %s: %v", identity.ID, err)
	}

	if s.notifications != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.notifications.NotifyVendorRegistered(ctx, vp.ID, vp.BusinessName); err != nil {
				log.Printf("❌ [REGISTRATION] push for %s: %v", vp.ID, err)
			}
		}()
	}

	return vp, nil
}
