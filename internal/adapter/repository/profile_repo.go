package repository

import (
	"event-marketplace/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// ProfilesCollection is the auth collection holding every marketplace account
const ProfilesCollection = "profiles"

type PBProfileRepo struct {
	app pbCore.App
}

func NewProfileRepo(app pbCore.App) core.ProfileRepository {
	return &PBProfileRepo{app: app}
}

func (r *PBProfileRepo) GetByID(id string) (*core.Profile, error) {
	record, err := r.app.FindRecordById(ProfilesCollection, id)
	if err != nil {
		return nil, err
	}
	return profileFromRecord(record), nil
}

func profileFromRecord(record *pbCore.Record) *core.Profile {
	return &core.Profile{
		ID:       record.Id,
		FullName: record.GetString("full_name"),
		Email:    record.Email(),
		Role:     core.Role(record.GetString("role")),
	}
}
