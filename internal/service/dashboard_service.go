package service

import (
	"fmt"
	"log"

	"event-marketplace/internal/core"
)

// DashboardService loads the bookings visible to the signed-in account
type DashboardService struct {
	profiles core.ProfileRepository
	bookings core.BookingRepository
}

func NewDashboardService(profiles core.ProfileRepository, bookings core.BookingRepository) *DashboardService {
	return &DashboardService{profiles: profiles, bookings: bookings}
}

// Load always returns a view. A non-nil error means the booking fetch failed
// and the view holds an empty list.
func (s *DashboardService) Load(identity *core.Identity) (*core.DashboardView, error) {
	view := &core.DashboardView{Bookings: []core.BookingView{}}
	if identity == nil {
		return view, nil
	}
	view.Authenticated = true
	view.NeedsVerification = !identity.Verified

	// Unknown role falls back to the customer scope
	view.Role = core.RoleCustomer
	profile, err := s.profiles.GetByID(identity.ID)
	if err != nil {
		log.Printf("⚠️ [DASHBOARD] profile %s: %v", identity.ID, err)
	} else if profile.Role == core.RoleVendor {
		view.Role = core.RoleVendor
	}

	var bookings []*core.Booking
	if view.Role == core.RoleVendor {
		bookings, err = s.bookings.FindByVendor(identity.ID)
	} else {
		bookings, err = s.bookings.FindByCustomer(identity.ID)
	}
	if err != nil {
		return view, fmt.Errorf("fetch %s bookings: %w", view.Role, err)
	}

	for _, b := range bookings {
		view.Bookings = append(view.Bookings, ToBookingView(b))
	}
	return view, nil
}
