package repository

import (
	"log"

	"event-marketplace/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

// Relations needed to render a booking: service name, vendor business name, customer
var bookingExpand = []string{
	"vendor_service.service",
	"vendor_service.vendor_profile",
	"customer",
}

type PBBookingRepo struct {
	app pbCore.App
}

func NewBookingRepo(app pbCore.App) core.BookingRepository {
	return &PBBookingRepo{app: app}
}

// Mapping helper: Record -> Domain Model
func (r *PBBookingRepo) toDomain(record *pbCore.Record) *core.Booking {
	b := &core.Booking{
		ID:              record.Id,
		BookingDate:     record.GetDateTime("booking_date").Time(),
		Status:          record.GetString("status"),
		SpecialRequests: record.GetString("special_requests"),
		VendorServiceID: record.GetString("vendor_service"),
		CustomerID:      record.GetString("customer"),
	}

	if vs := record.ExpandedOne("vendor_service"); vs != nil {
		if svc := vs.ExpandedOne("service"); svc != nil {
			b.ServiceName = svc.GetString("name")
		}
		if vp := vs.ExpandedOne("vendor_profile"); vp != nil {
			b.BusinessName = vp.GetString("business_name")
		}
	}

	if customer := record.ExpandedOne("customer"); customer != nil {
		b.Customer = profileFromRecord(customer)
	}

	return b
}

// FindByCustomer returns the bookings made by a customer
func (r *PBBookingRepo) FindByCustomer(customerID string) ([]*core.Booking, error) {
	return r.find("customer = {:customerId}", dbx.Params{"customerId": customerID})
}

// FindByVendor returns the bookings placed on any service of the vendor
func (r *PBBookingRepo) FindByVendor(vendorID string) ([]*core.Booking, error) {
	return r.find("vendor_service.vendor_profile = {:vendorId}", dbx.Params{"vendorId": vendorID})
}

func (r *PBBookingRepo) find(filter string, params dbx.Params) ([]*core.Booking, error) {
	records, err := r.app.FindRecordsByFilter("bookings", filter, "-booking_date", 0, 0, params)
	if err != nil {
		return nil, err
	}

	// Missing relations only blank the joined fields
	for path, expandErr := range r.app.ExpandRecords(records, bookingExpand, nil) {
		log.Printf("⚠️ [BOOKING_REPO] expand %s: %v", path, expandErr)
	}

	bookings := make([]*core.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, r.toDomain(rec))
	}
	return bookings, nil
}
