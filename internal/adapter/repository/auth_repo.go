package repository

import (
	"errors"
	"fmt"

	"event-marketplace/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/mails"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// PBAuthGateway implements core.AuthGateway on the `profiles` auth collection
type PBAuthGateway struct {
	app pbCore.App
}

func NewAuthGateway(app pbCore.App) core.AuthGateway {
	return &PBAuthGateway{app: app}
}

// SignUp creates a new, unverified auth identity
func (g *PBAuthGateway) SignUp(email, password string, role core.Role) (*core.Identity, error) {
	collection, err := g.app.FindCollectionByNameOrId(ProfilesCollection)
	if err != nil {
		return nil, err
	}

	record := pbCore.NewRecord(collection)
	record.SetEmail(email)
	record.SetPassword(password)
	record.SetVerified(false)
	record.Set("role", string(role))

	if err := g.app.Save(record); err != nil {
		return nil, err
	}

	return identityFromRecord(record), nil
}

// SignIn validates the credentials and returns a fresh auth token
func (g *PBAuthGateway) SignIn(email, password string) (string, error) {
	record, err := g.app.FindAuthRecordByEmail(ProfilesCollection, email)
	if err != nil || !record.ValidatePassword(password) {
		return "", ErrInvalidCredentials
	}

	token, err := record.NewAuthToken()
	if err != nil {
		return "", fmt.Errorf("new auth token: %w", err)
	}
	return token, nil
}

// IdentityFromToken resolves a session token. Tokens from other auth collections are rejected.
func (g *PBAuthGateway) IdentityFromToken(token string) (*core.Identity, error) {
	record, err := g.app.FindAuthRecordByToken(token, pbCore.TokenTypeAuth)
	if err != nil {
		return nil, err
	}
	if record.Collection().Name != ProfilesCollection {
		return nil, fmt.Errorf("token belongs to %q", record.Collection().Name)
	}
	return identityFromRecord(record), nil
}

// SendVerification mails the verification link to the identity
func (g *PBAuthGateway) SendVerification(identityID string) error {
	record, err := g.app.FindRecordById(ProfilesCollection, identityID)
	if err != nil {
		return err
	}
	return mails.SendRecordVerification(g.app, record)
}

func identityFromRecord(record *pbCore.Record) *core.Identity {
	return &core.Identity{
		ID:       record.Id,
		Email:    record.Email(),
		Verified: record.Verified(),
	}
}
