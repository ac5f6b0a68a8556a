package core

import "time"

// Role decides which bookings a viewer may see on the dashboard
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

// Booking statuses known to the UI. Any other value is rendered as "other".
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Identity is the authenticated account behind a session cookie
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// Profile represents a marketplace account (customer or vendor)
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// VendorProfile is the business page of a vendor. ID equals the owning profile ID.
type VendorProfile struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
}

// Service is a catalog entry, e.g. "Photography"
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VendorService links a vendor to one service it offers.
// Vendor and Service are filled from the expanded relations.
type VendorService struct {
	ID      string         `json:"id"`
	Vendor  *VendorProfile `json:"vendor_profile"`
	Service *Service       `json:"service"`
}

// Booking is a customer's reservation of a vendor service on a date
type Booking struct {
	ID              string    `json:"id"`
	BookingDate     time.Time `json:"booking_date"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests"`

	VendorServiceID string `json:"vendor_service"`
	CustomerID      string `json:"customer"`

	// Joined display fields
	ServiceName  string   `json:"service_name"`
	BusinessName string   `json:"business_name"`
	Customer     *Profile `json:"customer_profile"`
}

// ============ VIEW MODELS ============

// VendorCard is the flat card shown on the Services grid
type VendorCard struct {
	ID           string
	BusinessName string
	Description  string
	Location     string
	Service      Service
}

// BookingView is one row of the dashboard list
type BookingView struct {
	ID              string
	Title           string
	Date            string
	BookingDate     time.Time
	Status          string
	StatusLabel     string
	BadgeClass      string
	SpecialRequests string
	CustomerName    string
}

// DashboardView is everything the dashboard page needs
type DashboardView struct {
	Authenticated bool
	// Email not yet confirmed through the verification mail
	NeedsVerification bool
	Role              Role
	Bookings          []BookingView
}

// RegistrationForm holds the vendor sign-up fields
type RegistrationForm struct {
	BusinessName string
	Description  string
	Location     string
	Email        string
	Phone        string
	Password     string
}

// Missing returns the names of the required fields left blank
func (f RegistrationForm) Missing() []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"businessName", f.BusinessName},
		{"description", f.Description},
		{"location", f.Location},
		{"email", f.Email},
		{"phone", f.Phone},
		{"password", f.Password},
	}
	for _, field := range fields {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}
