package core

// CatalogEntry is one of the fixed service categories shown on Home and as filters
type CatalogEntry struct {
	Name        string
	Icon        string // Font Awesome class
	Description string
}

// Catalog lists the service categories the marketplace offers.
// Names must match the `services` collection seed.
var Catalog = []CatalogEntry{
	{Name: "Function Halls", Icon: "fa-solid fa-house", Description: "Find the perfect venue for your special occasion"},
	{Name: "DJ Services", Icon: "fa-solid fa-music", Description: "Professional DJs to make your event memorable"},
	{Name: "Photography", Icon: "fa-solid fa-camera", Description: "Capture your precious moments"},
	{Name: "Catering", Icon: "fa-solid fa-utensils", Description: "Delicious food for all occasions"},
	{Name: "Decoration", Icon: "fa-solid fa-palette", Description: "Beautiful decorations for your events"},
}
