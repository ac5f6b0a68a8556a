package main

import (
	"fmt"
	"log"
	"os"
	"time"

	domain "event-marketplace/internal/core"
	_ "event-marketplace/migrations"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const (
	vendorEmail   = "vendor@demo.local"
	customerEmail = "customer@demo.local"
)

func main() {
	app := pocketbase.New()

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "demo-pass-123"
	}

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		if err := seed(app, password); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func seed(app core.App, password string) error {
	vendor, err := ensureProfile(app, vendorEmail, password, "Demo Vendor", domain.RoleVendor)
	if err != nil {
		return err
	}
	customer, err := ensureProfile(app, customerEmail, password, "Demo Customer", domain.RoleCustomer)
	if err != nil {
		return err
	}

	if err := ensureVendorProfile(app, vendor.Id); err != nil {
		return err
	}

	offerings, err := ensureOfferings(app, vendor.Id)
	if err != nil {
		return err
	}
	if len(offerings) == 0 {
		return fmt.Errorf("no services found, run migrations first")
	}

	existing, err := app.CountRecords("bookings", dbx.HashExp{"customer": customer.Id})
	if err != nil {
		return err
	}
	if existing > 0 {
		fmt.Printf("Bookings already seeded for %s\n", customerEmail)
		return nil
	}

	bookings, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		return err
	}

	now := time.Now()
	demo := []struct {
		offset   time.Duration
		status   string
		requests string
	}{
		{7 * 24 * time.Hour, domain.StatusPending, "Vegetarian menu for 200 guests"},
		{14 * 24 * time.Hour, domain.StatusConfirmed, ""},
		{-3 * 24 * time.Hour, domain.StatusCancelled, "Evening slot only"},
	}

	for i, d := range demo {
		record := core.NewRecord(bookings)
		record.Set("booking_date", now.Add(d.offset))
		record.Set("status", d.status)
		record.Set("special_requests", d.requests)
		record.Set("vendor_service", offerings[i%len(offerings)])
		record.Set("customer", customer.Id)
		if err := app.Save(record); err != nil {
			return err
		}
		fmt.Printf("Created %s booking: %s\n", d.status, record.Id)
	}

	return nil
}

func ensureProfile(app core.App, email, password, name string, role domain.Role) (*core.Record, error) {
	if record, err := app.FindAuthRecordByEmail("profiles", email); err == nil {
		fmt.Printf("Profile already exists: %s\n", email)
		return record, nil
	}

	collection, err := app.FindCollectionByNameOrId("profiles")
	if err != nil {
		return nil, err
	}

	record := core.NewRecord(collection)
	record.SetEmail(email)
	record.SetPassword(password)
	record.SetVerified(true)
	record.Set("full_name", name)
	record.Set("role", string(role))
	if err := app.Save(record); err != nil {
		return nil, err
	}

	fmt.Printf("Created profile: %s (%s)\n", email, role)
	return record, nil
}

func ensureVendorProfile(app core.App, id string) error {
	if _, err := app.FindRecordById("vendor_profiles", id); err == nil {
		return nil
	}

	collection, err := app.FindCollectionByNameOrId("vendor_profiles")
	if err != nil {
		return err
	}

	record := core.NewRecord(collection)
	record.Set("id", id)
	record.Set("business_name", "Sri Events Co.")
	record.Set("description", "Full-service event partner for weddings and celebrations")
	record.Set("location", "Hyderabad")
	return app.Save(record)
}

// ensureOfferings links the vendor to every catalog service and returns the vendor_service ids
func ensureOfferings(app core.App, vendorID string) ([]string, error) {
	collection, err := app.FindCollectionByNameOrId("vendor_services")
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range domain.Catalog {
		svc, err := app.FindFirstRecordByFilter("services", "name = {:name}", dbx.Params{"name": entry.Name})
		if err != nil {
			continue
		}

		existing, err := app.FindFirstRecordByFilter(
			"vendor_services",
			"vendor_profile = {:vendor} && service = {:service}",
			dbx.Params{"vendor": vendorID, "service": svc.Id},
		)
		if err == nil {
			ids = append(ids, existing.Id)
			continue
		}

		record := core.NewRecord(collection)
		record.Set("vendor_profile", vendorID)
		record.Set("service", svc.Id)
		if err := app.Save(record); err != nil {
			return nil, err
		}
		ids = append(ids, record.Id)
	}
	return ids, nil
}
