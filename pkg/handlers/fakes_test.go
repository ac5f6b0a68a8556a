package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	internalApp "event-marketplace/internal/app"
	domain "event-marketplace/internal/core"

	"github.com/pocketbase/pocketbase/core"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	tmpl, err := internalApp.InitTemplates("../../views")
	if err != nil {
		t.Fatalf("InitTemplates: %v", err)
	}
	return &Renderer{Templates: tmpl, Dir: "../../views", SiteName: "Test Site"}
}

func newEvent(req *http.Request) (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e, rec
}

func newFormRequest(target string, fields map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type fakeVendorRepo struct {
	queries   []string
	offerings []*domain.VendorService
	listErr   error
	created   []*domain.VendorProfile
	createErr error
}

func (f *fakeVendorRepo) ListOfferings(serviceName string) ([]*domain.VendorService, error) {
	f.queries = append(f.queries, serviceName)
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.VendorService
	for _, o := range f.offerings {
		if serviceName == "" || (o.Service != nil && o.Service.Name == serviceName) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) CreateProfile(vp *domain.VendorProfile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, vp)
	return nil
}

type fakeAuth struct {
	signUpErr error
	signInErr error
	token     string
}

func (f *fakeAuth) SignUp(email, password string, role domain.Role) (*domain.Identity, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &domain.Identity{ID: "new-id", Email: email}, nil
}

func (f *fakeAuth) SignIn(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return f.token, nil
}

func (f *fakeAuth) IdentityFromToken(token string) (*domain.Identity, error) {
	return nil, errors.New("not used")
}

func (f *fakeAuth) SendVerification(identityID string) error {
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func (f *fakeProfileRepo) GetByID(id string) (*domain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, errors.New("not found")
}

type fakeBookingRepo struct {
	calls    int
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) FindByCustomer(customerID string) ([]*domain.Booking, error) {
	f.calls++
	return f.bookings, nil
}

func (f *fakeBookingRepo) FindByVendor(vendorID string) ([]*domain.Booking, error) {
	f.calls++
	return f.bookings, nil
}
