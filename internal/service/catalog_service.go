package service

import (
	"fmt"

	"event-marketplace/internal/core"
)

// CatalogService backs the Services page
type CatalogService struct {
	vendors core.VendorRepository
}

func NewCatalogService(vendors core.VendorRepository) *CatalogService {
	return &CatalogService{vendors: vendors}
}

// ListVendors issues one fetch per call; an empty category lists every offering
func (s *CatalogService) ListVendors(category string) ([]core.VendorCard, error) {
	offerings, err := s.vendors.ListOfferings(category)
	if err != nil {
		return nil, fmt.Errorf("list offerings for %q: %w", category, err)
	}

	cards := make([]core.VendorCard, 0, len(offerings))
	for _, o := range offerings {
		if card, ok := ToVendorCard(o); ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}
