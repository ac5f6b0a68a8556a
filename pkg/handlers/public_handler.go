package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	domain "event-marketplace/internal/core"
	"event-marketplace/internal/service"
	"event-marketplace/pkg/metrics"

	"github.com/pocketbase/pocketbase/core"
)

type PublicHandler struct {
	Renderer *Renderer
	Catalog  *service.CatalogService
}

// FilterOption is one exclusive category button on the Services page.
// URL fetches the grid partial; PageURL is pushed to the address bar.
type FilterOption struct {
	Name     string
	Icon     string
	URL      string
	PageURL  string
	Selected bool
}

// Home renders the landing page with the static catalog
// GET /
func (h *PublicHandler) Home(e *core.RequestEvent) error {
	return h.Renderer.Page(e, http.StatusOK, "public/home.html", map[string]interface{}{
		"Catalog": domain.Catalog,
	})
}

// Services renders the page shell; the grid is loaded by VendorGrid
// GET /services?category=
func (h *PublicHandler) Services(e *core.RequestEvent) error {
	category := categoryParam(e.Request)

	return h.Renderer.Page(e, http.StatusOK, "public/services.html", map[string]interface{}{
		"Title":      "Services",
		"Selected":   category,
		"PartialURL": vendorsURL(category),
	})
}

// VendorGrid fetches vendors for one category and renders the filter bar + grid
// GET /services/vendors?category=
func (h *PublicHandler) VendorGrid(e *core.RequestEvent) error {
	category := categoryParam(e.Request)

	vendors, err := h.Catalog.ListVendors(category)
	metrics.RecordVendorFetch(metricsCategory(category), err)
	if err != nil {
		// Degrades to the empty state
		log.Printf("❌ [CATALOG] %v", err)
		vendors = nil
	}

	return h.Renderer.Partial(e, http.StatusOK, "vendor_browser", map[string]interface{}{
		"Filters": filterOptions(category),
		"Vendors": vendors,
	})
}

func categoryParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("category"))
}

func vendorsURL(category string) string {
	return withCategory("/services/vendors", category)
}

func servicesURL(category string) string {
	return withCategory("/services", category)
}

func withCategory(path, category string) string {
	if category == "" {
		return path
	}
	return path + "?" + url.Values{"category": {category}}.Encode()
}

func filterOptions(selected string) []FilterOption {
	options := make([]FilterOption, 0, len(domain.Catalog)+1)
	options = append(options, FilterOption{
		Name:     "All",
		URL:      vendorsURL(""),
		PageURL:  servicesURL(""),
		Selected: selected == "",
	})
	for _, c := range domain.Catalog {
		options = append(options, FilterOption{
			Name:     c.Name,
			Icon:     c.Icon,
			URL:      vendorsURL(c.Name),
			PageURL:  servicesURL(c.Name),
			Selected: selected == c.Name,
		})
	}
	return options
}

// Keeps the metric label set bounded to the catalog
func metricsCategory(category string) string {
	if category == "" {
		return ""
	}
	for _, c := range domain.Catalog {
		if c.Name == category {
			return category
		}
	}
	return "other"
}
