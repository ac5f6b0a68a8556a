package service

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"event-marketplace/internal/core"
)

// Badge classes for the dashboard status pill
const (
	BadgeGreen  = "bg-green-100 text-green-800"
	BadgeYellow = "bg-yellow-100 text-yellow-800"
	BadgeRed    = "bg-red-100 text-red-800"
)

// ToVendorCard flattens a vendor_services row. Rows without a vendor profile are dropped.
func ToVendorCard(vs *core.VendorService) (core.VendorCard, bool) {
	if vs == nil || vs.Vendor == nil {
		return core.VendorCard{}, false
	}

	card := core.VendorCard{
		ID:           vs.Vendor.ID,
		BusinessName: vs.Vendor.BusinessName,
		Description:  vs.Vendor.Description,
		Location:     vs.Vendor.Location,
	}
	if vs.Service != nil {
		card.Service = *vs.Service
	}
	return card, true
}

// ToBookingView maps a joined booking to its dashboard row
func ToBookingView(b *core.Booking) core.BookingView {
	view := core.BookingView{
		ID:              b.ID,
		Title:           fmt.Sprintf("%s with %s", b.ServiceName, b.BusinessName),
		Status:          b.Status,
		StatusLabel:     StatusLabel(b.Status),
		BadgeClass:      BadgeClass(b.Status),
		SpecialRequests: b.SpecialRequests,
	}

	if !b.BookingDate.IsZero() {
		view.Date = b.BookingDate.Format("Jan 2, 2006")
		view.BookingDate = b.BookingDate
	}

	if b.Customer != nil {
		view.CustomerName = b.Customer.FullName
		if view.CustomerName == "" {
			view.CustomerName = b.Customer.Email
		}
	}

	return view
}

// BadgeClass: confirmed=green, pending=yellow, anything else=red
func BadgeClass(status string) string {
	switch status {
	case core.StatusConfirmed:
		return BadgeGreen
	case core.StatusPending:
		return BadgeYellow
	default:
		return BadgeRed
	}
}

// StatusLabel upper-cases the first letter for display
func StatusLabel(status string) string {
	r, size := utf8.DecodeRuneInString(status)
	if r == utf8.RuneError {
		return status
	}
	return string(unicode.ToUpper(r)) + status[size:]
}
