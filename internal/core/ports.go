package core

import "context"

// AuthGateway wraps the backend's authentication API
type AuthGateway interface {
	SignUp(email, password string, role Role) (*Identity, error)
	SignIn(email, password string) (string, error)
	IdentityFromToken(token string) (*Identity, error)
	SendVerification(identityID string) error
}

// ProfileRepository defines data access for Profiles
type ProfileRepository interface {
	GetByID(id string) (*Profile, error)
}

// VendorRepository defines data access for vendor profiles and their offerings
type VendorRepository interface {
	// ListOfferings returns vendor_services joined with vendor profile and service.
	// An empty serviceName means no filter.
	ListOfferings(serviceName string) ([]*VendorService, error)
	CreateProfile(vp *VendorProfile) error
}

// BookingRepository defines data access methods for Bookings
type BookingRepository interface {
	FindByCustomer(customerID string) ([]*Booking, error)
	FindByVendor(vendorID string) ([]*Booking, error)
}

// NotificationService pushes marketplace events to subscribed devices
type NotificationService interface {
	NotifyVendorRegistered(ctx context.Context, vendorID, businessName string) error
}
