package repository

import (
	"log"

	"event-marketplace/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBVendorRepo struct {
	app pbCore.App
}

func NewVendorRepo(app pbCore.App) core.VendorRepository {
	return &PBVendorRepo{app: app}
}

// ListOfferings fetches vendor_services with their vendor profile and service expanded
func (r *PBVendorRepo) ListOfferings(serviceName string) ([]*core.VendorService, error) {
	filter := ""
	var params dbx.Params
	if serviceName != "" {
		filter = "service.name = {:name}"
		params = dbx.Params{"name": serviceName}
	}

	records, err := r.app.FindRecordsByFilter("vendor_services", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}

	for path, expandErr := range r.app.ExpandRecords(records, []string{"vendor_profile", "service"}, nil) {
		log.Printf("⚠️ [VENDOR_REPO] expand %s: %v", path, expandErr)
	}

	offerings := make([]*core.VendorService, 0, len(records))
	for _, rec := range records {
		vs := &core.VendorService{ID: rec.Id}
		if vp := rec.ExpandedOne("vendor_profile"); vp != nil {
			vs.Vendor = vendorFromRecord(vp)
		}
		if svc := rec.ExpandedOne("service"); svc != nil {
			vs.Service = &core.Service{
				ID:          svc.Id,
				Name:        svc.GetString("name"),
				Description: svc.GetString("description"),
			}
		}
		offerings = append(offerings, vs)
	}
	return offerings, nil
}

// CreateProfile inserts a vendor profile keyed by vp.ID
func (r *PBVendorRepo) CreateProfile(vp *core.VendorProfile) error {
	collection, err := r.app.FindCollectionByNameOrId("vendor_profiles")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("id", vp.ID)
	record.Set("business_name", vp.BusinessName)
	record.Set("description", vp.Description)
	record.Set("location", vp.Location)

	return r.app.Save(record)
}

func vendorFromRecord(record *pbCore.Record) *core.VendorProfile {
	return &core.VendorProfile{
		ID:           record.Id,
		BusinessName: record.GetString("business_name"),
		Description:  record.GetString("description"),
		Location:     record.GetString("location"),
	}
}
