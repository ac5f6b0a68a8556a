package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Collections in dependency order; rollback deletes them in reverse.
// API rules stay nil (superuser-only): all access goes through the Go server.
var marketplaceCollections = []string{"profiles", "vendor_profiles", "services", "vendor_services", "bookings"}

func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// PROFILES (auth): every marketplace account
		// ----------------------------------------------------
		profiles := core.NewAuthCollection("profiles")
		profiles.Fields.Add(&core.TextField{Name: "full_name"})
		profiles.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"customer", "vendor"},
		})
		addTimestamps(profiles)

		if err := app.Save(profiles); err != nil {
			return err
		}

		// ----------------------------------------------------
		// VENDOR PROFILES: id is the owning profile's id
		// ----------------------------------------------------
		vendorProfiles := core.NewBaseCollection("vendor_profiles")
		vendorProfiles.Fields.Add(&core.TextField{Name: "business_name", Required: true})
		vendorProfiles.Fields.Add(&core.TextField{Name: "description"})
		vendorProfiles.Fields.Add(&core.TextField{Name: "location"})
		addTimestamps(vendorProfiles)

		if err := app.Save(vendorProfiles); err != nil {
			return err
		}

		// ----------------------------------------------------
		// SERVICES: the fixed catalog
		// ----------------------------------------------------
		services := core.NewBaseCollection("services")
		services.Fields.Add(&core.TextField{Name: "name", Required: true})
		services.Fields.Add(&core.TextField{Name: "description"})
		addTimestamps(services)
		services.AddIndex("idx_services_name", true, "name", "")

		if err := app.Save(services); err != nil {
			return err
		}

		// ----------------------------------------------------
		// VENDOR SERVICES: what each vendor offers
		// ----------------------------------------------------
		vendorServices := core.NewBaseCollection("vendor_services")
		vendorServices.Fields.Add(&core.RelationField{
			Name:          "vendor_profile",
			CollectionId:  vendorProfiles.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		vendorServices.Fields.Add(&core.RelationField{
			Name:         "service",
			CollectionId: services.Id,
			MaxSelect:    1,
			Required:     true,
		})
		addTimestamps(vendorServices)
		vendorServices.AddIndex("idx_vendor_services_pair", true, "vendor_profile, service", "")

		if err := app.Save(vendorServices); err != nil {
			return err
		}

		// ----------------------------------------------------
		// BOOKINGS
		// ----------------------------------------------------
		bookings := core.NewBaseCollection("bookings")
		bookings.Fields.Add(&core.DateField{Name: "booking_date", Required: true})
		bookings.Fields.Add(&core.TextField{Name: "status", Required: true})
		bookings.Fields.Add(&core.TextField{Name: "special_requests"})
		bookings.Fields.Add(&core.RelationField{
			Name:         "vendor_service",
			CollectionId: vendorServices.Id,
			MaxSelect:    1,
			Required:     true,
		})
		bookings.Fields.Add(&core.RelationField{
			Name:         "customer",
			CollectionId: profiles.Id,
			MaxSelect:    1,
			Required:     true,
		})
		addTimestamps(bookings)
		bookings.AddIndex("idx_bookings_customer", false, "customer", "")

		return app.Save(bookings)

	}, func(app core.App) error {
		for i := len(marketplaceCollections) - 1; i >= 0; i-- {
			collection, err := app.FindCollectionByNameOrId(marketplaceCollections[i])
			if err != nil {
				continue
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}

func addTimestamps(c *core.Collection) {
	if c.Fields.GetByName("created") == nil {
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	}
	if c.Fields.GetByName("updated") == nil {
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	}
}
