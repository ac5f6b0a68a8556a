package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "event-marketplace/internal/core"
	"event-marketplace/internal/service"
)

func newDashboardHandler(t *testing.T, profiles map[string]*domain.Profile, bookings *fakeBookingRepo) *DashboardHandler {
	return &DashboardHandler{
		Renderer:  newRenderer(t),
		Dashboard: service.NewDashboardService(&fakeProfileRepo{profiles: profiles}, bookings),
	}
}

func TestDashboard_SignedOut(t *testing.T) {
	bookings := &fakeBookingRepo{}
	h := newDashboardHandler(t, nil, bookings)
	e, rec := newEvent(httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if err := h.Show(e); err != nil {
		t.Fatalf("Show: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Please log in to view your dashboard") {
		t.Error("missing login prompt")
	}
	if !strings.Contains(body, "You need to be logged in to access this page.") {
		t.Error("missing login hint")
	}
	if bookings.calls != 0 {
		t.Errorf("fetched bookings %d times while signed out", bookings.calls)
	}
}

func TestDashboard_SignedIn(t *testing.T) {
	profiles := map[string]*domain.Profile{
		"u1": {ID: "u1", FullName: "Asha", Role: domain.RoleCustomer},
	}

	tests := []struct {
		name        string
		verified    bool
		bookings    []*domain.Booking
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "no bookings",
			verified:    true,
			wantContain: []string{"Your Bookings", "No bookings found."},
			wantMissing: []string{"Please verify your email address."},
		},
		{
			name:        "unverified email shows hint",
			wantContain: []string{"Please verify your email address.", "No bookings found."},
		},
		{
			name:     "one confirmed booking",
			verified: true,
			bookings: []*domain.Booking{{
				ID:           "b1",
				BookingDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Status:       domain.StatusConfirmed,
				ServiceName:  "Photography",
				BusinessName: "Lens Studio",
			}},
			wantContain: []string{"Photography with Lens Studio", "Mar 15, 2024", "Status: confirmed", "Confirmed", "bg-green-100 text-green-800", "ago)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{bookings: tt.bookings}
			h := newDashboardHandler(t, profiles, bookings)
			e, rec := newEvent(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
			e.Set("identity", &domain.Identity{ID: "u1", Email: "asha@example.com", Verified: tt.verified})

			if err := h.Show(e); err != nil {
				t.Fatalf("Show: %v", err)
			}
			if bookings.calls != 1 {
				t.Errorf("booking fetches = %d, want 1", bookings.calls)
			}

			body := rec.Body.String()
			for _, s := range tt.wantContain {
				if !strings.Contains(body, s) {
					t.Errorf("body missing %q", s)
				}
			}
			for _, s := range tt.wantMissing {
				if strings.Contains(body, s) {
					t.Errorf("body unexpectedly contains %q", s)
				}
			}
		})
	}
}
