package service

import (
	"context"
	"errors"

	"event-marketplace/internal/core"
)

// callLog records port calls in order, shared by the fakes of one test
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

type fakeVendorRepo struct {
	log        *callLog
	offerings  []*core.VendorService
	listErr    error
	createErr  error
	categories []string
	created    []*core.VendorProfile
}

func (f *fakeVendorRepo) ListOfferings(serviceName string) ([]*core.VendorService, error) {
	f.categories = append(f.categories, serviceName)
	if f.log != nil {
		f.log.add("list:" + serviceName)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*core.VendorService
	for _, o := range f.offerings {
		if serviceName == "" || (o.Service != nil && o.Service.Name == serviceName) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) CreateProfile(vp *core.VendorProfile) error {
	if f.log != nil {
		f.log.add("create_profile:" + vp.ID)
	}
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, vp)
	return nil
}

type fakeAuth struct {
	log       *callLog
	signUpErr error
	verifyErr error
	nextID    string
	roles     []core.Role
}

func (f *fakeAuth) SignUp(email, password string, role core.Role) (*core.Identity, error) {
	f.log.add("sign_up:" + email)
	f.roles = append(f.roles, role)
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &core.Identity{ID: f.nextID, Email: email}, nil
}

func (f *fakeAuth) SignIn(email, password string) (string, error) {
	f.log.add("sign_in:" + email)
	return "", errors.New("not used")
}

func (f *fakeAuth) IdentityFromToken(token string) (*core.Identity, error) {
	f.log.add("identity")
	return nil, errors.New("not used")
}

func (f *fakeAuth) SendVerification(identityID string) error {
	f.log.add("verify:" + identityID)
	return f.verifyErr
}

type fakeProfileRepo struct {
	log      *callLog
	profiles map[string]*core.Profile
}

func (f *fakeProfileRepo) GetByID(id string) (*core.Profile, error) {
	f.log.add("profile:" + id)
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return p, nil
}

type fakeBookingRepo struct {
	log      *callLog
	bookings []*core.Booking
	err      error
}

func (f *fakeBookingRepo) FindByCustomer(customerID string) ([]*core.Booking, error) {
	f.log.add("bookings_by_customer:" + customerID)
	return f.bookings, f.err
}

func (f *fakeBookingRepo) FindByVendor(vendorID string) ([]*core.Booking, error) {
	f.log.add("bookings_by_vendor:" + vendorID)
	return f.bookings, f.err
}

type fakeNotifier struct {
	sent chan string
}

func (f *fakeNotifier) NotifyVendorRegistered(ctx context.Context, vendorID, businessName string) error {
	f.sent <- vendorID
	return nil
}
