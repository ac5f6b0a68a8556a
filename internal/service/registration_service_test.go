package service

import (
	"errors"
	"testing"
	"time"

	"event-marketplace/internal/core"
)

func validForm() core.RegistrationForm {
	return core.RegistrationForm{
		BusinessName: "Spice Route",
		Description:  "South Indian wedding catering",
		Location:     "Vijayawada",
		Email:        "hello@spiceroute.test",
		Phone:        "+91 90000 00000",
		Password:     "s3cret-pass",
	}
}

func TestRegistrationService_Success(t *testing.T) {
	log := &callLog{}
	auth := &fakeAuth{log: log, nextID: "abc123"}
	vendors := &fakeVendorRepo{log: log}
	svc := NewRegistrationService(auth, vendors, nil)

	vp, err := svc.Register(validForm())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	expected := []string{"sign_up:hello@spiceroute.test", "create_profile:abc123", "verify:abc123"}
	if len(log.calls) != len(expected) {
		t.Fatalf("calls = %v; want %v", log.calls, expected)
	}
	for i := range expected {
		if log.calls[i] != expected[i] {
			t.Errorf("call %d = %q; want %q", i, log.calls[i], expected[i])
		}
	}

	if vp.ID != "abc123" || vp.BusinessName != "Spice Route" || vp.Location != "Vijayawada" {
		t.Errorf("unexpected profile: %+v", vp)
	}
	if len(auth.roles) != 1 || auth.roles[0] != core.RoleVendor {
		t.Errorf("expected vendor role on sign-up, got %v", auth.roles)
	}
}

func TestRegistrationService_SignUpFails(t *testing.T) {
	log := &callLog{}
	auth := &fakeAuth{log: log, signUpErr: errors.New("email already in use")}
	vendors := &fakeVendorRepo{log: log}
	svc := NewRegistrationService(auth, vendors, nil)

	_, err := svc.Register(validForm())
	if !errors.Is(err, ErrSignUpFailed) {
		t.Fatalf("expected ErrSignUpFailed, got %v", err)
	}
	if len(log.calls) != 1 {
		t.Errorf("profile insert must not be attempted, calls = %v", log.calls)
	}
	if len(vendors.created) != 0 {
		t.Error("no vendor profile should be created")
	}
}

func TestRegistrationService_ProfileFailsKeepsIdentity(t *testing.T) {
	log := &callLog{}
	auth := &fakeAuth{log: log, nextID: "abc123"}
	vendors := &fakeVendorRepo{log: log, createErr: errors.New("constraint failed")}
	svc := NewRegistrationService(auth, vendors, nil)

	_, err := svc.Register(validForm())
	if !errors.Is(err, ErrProfileFailed) {
		t.Fatalf("expected ErrProfileFailed, got %v", err)
	}

	// No rollback and no verification mail after a failed insert
	expected := []string{"sign_up:hello@spiceroute.test", "create_profile:abc123"}
	if len(log.calls) != len(expected) {
		t.Fatalf("calls = %v; want %v", log.calls, expected)
	}
}

func TestRegistrationService_MissingFields(t *testing.T) {
	log := &callLog{}
	svc := NewRegistrationService(&fakeAuth{log: log}, &fakeVendorRepo{log: log}, nil)

	form := validForm()
	form.Phone = ""
	form.Location = ""

	_, err := svc.Register(form)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if len(log.calls) != 0 {
		t.Errorf("expected no backend calls, got %v", log.calls)
	}
}

func TestRegistrationService_VerificationFailureIsNotFatal(t *testing.T) {
	log := &callLog{}
	auth := &fakeAuth{log: log, nextID: "abc123", verifyErr: errors.New("smtp down")}
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	svc := NewRegistrationService(auth, &fakeVendorRepo{log: log}, notifier)

	if _, err := svc.Register(validForm()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	select {
	case id := <-notifier.sent:
		if id != "abc123" {
			t.Errorf("push sent for %q; want abc123", id)
		}
	case <-time.After(time.Second):
		t.Error("push notification timeout")
	}
}
