package catalog

import "github.com/samber/lo"

// Category places a service on the marketing site: top services get front
// page placement, core services the main grid, extended the long tail.
type Category string

const (
	CategoryTop      Category = "top"
	CategoryCore     Category = "core"
	CategoryExtended Category = "extended"
)

// ServiceDefinition is a statically defined service. Never mutated.
type ServiceDefinition struct {
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Category Category `json:"category"`
}

// SubServiceOption is one selectable kind of work within a service. An
// option either has no subtypes (the wizard skips that step) or a non-empty
// ordered list the user must pick from.
type SubServiceOption struct {
	Label    string   `json:"label"`
	Subtypes []string `json:"subtypes,omitempty"`
}

var services = []ServiceDefinition{
	{Name: "Plumbing", Slug: "plumbing", Category: CategoryTop},
	{Name: "Electrical", Slug: "electrical", Category: CategoryTop},
	{Name: "HVAC", Slug: "hvac", Category: CategoryTop},
	{Name: "Painting", Slug: "painting", Category: CategoryTop},
	{Name: "Roofing", Slug: "roofing", Category: CategoryCore},
	{Name: "Flooring", Slug: "flooring", Category: CategoryCore},
	{Name: "Carpentry", Slug: "carpentry", Category: CategoryCore},
	{Name: "Drywall", Slug: "drywall", Category: CategoryCore},
	{Name: "Landscaping", Slug: "landscaping", Category: CategoryCore},
	{Name: "Tiling", Slug: "tiling", Category: CategoryCore},
	{Name: "Masonry", Slug: "masonry", Category: CategoryExtended},
	{Name: "Gutter Cleaning", Slug: "gutter-cleaning", Category: CategoryExtended},
	{Name: "Pressure Washing", Slug: "pressure-washing", Category: CategoryExtended},
	{Name: "Fence Installation", Slug: "fence-installation", Category: CategoryExtended},
	{Name: "Appliance Repair", Slug: "appliance-repair", Category: CategoryExtended},
}

var subServices = map[string][]SubServiceOption{
	"plumbing": {
		{Label: "Leak Repair"},
		{Label: "Drain Cleaning"},
		{Label: "Water Heater", Subtypes: []string{"Install", "Repair", "Replace"}},
		{Label: "Faucet & Fixtures", Subtypes: []string{"Install", "Repair"}},
		{Label: "Pipe Work", Subtypes: []string{"Repiping", "Burst Pipe", "Frozen Pipe"}},
		{Label: "Other"},
	},
	"electrical": {
		{Label: "Panel Upgrade"},
		{Label: "Wiring", Subtypes: []string{"New Circuit", "Rewiring", "Troubleshooting"}},
		{Label: "Lighting", Subtypes: []string{"Indoor", "Outdoor", "Recessed"}},
		{Label: "Outlets & Switches"},
		{Label: "EV Charger", Subtypes: []string{"Install", "Repair"}},
		{Label: "Other"},
	},
	"hvac": {
		{Label: "Air Conditioning", Subtypes: []string{"Install", "Repair", "Tune-Up"}},
		{Label: "Heating", Subtypes: []string{"Furnace", "Boiler", "Heat Pump"}},
		{Label: "Duct Work", Subtypes: []string{"Cleaning", "Sealing", "Install"}},
		{Label: "Thermostat"},
		{Label: "Other"},
	},
	"painting": {
		{Label: "Interior Painting"},
		{Label: "Exterior Painting"},
		{Label: "Cabinet Painting"},
		{Label: "Wallpaper", Subtypes: []string{"Install", "Removal"}},
		{Label: "Other"},
	},
	"roofing": {
		{Label: "Repair"},
		{Label: "Full Replacement", Subtypes: []string{"Asphalt Shingle", "Metal", "Tile", "Flat"}},
		{Label: "Inspection"},
		{Label: "Other"},
	},
	"flooring": {
		{Label: "Hardwood", Subtypes: []string{"Install", "Refinish", "Repair"}},
		{Label: "Tile"},
		{Label: "Laminate & Vinyl"},
		{Label: "Carpet", Subtypes: []string{"Install", "Removal"}},
		{Label: "Other"},
	},
}

// defaultSubServices covers services without a specific catalog entry.
var defaultSubServices = []SubServiceOption{
	{Label: "Installation"},
	{Label: "Repair"},
	{Label: "Maintenance"},
	{Label: "Consultation"},
	{Label: "Other"},
}

// ServiceBySlug looks a service up by slug.
func ServiceBySlug(slug string) (ServiceDefinition, bool) {
	return lo.Find(services, func(s ServiceDefinition) bool { return s.Slug == slug })
}

// Services returns all services, optionally filtered by category.
func Services(category Category) []ServiceDefinition {
	if category == "" {
		out := make([]ServiceDefinition, len(services))
		copy(out, services)
		return out
	}
	return lo.Filter(services, func(s ServiceDefinition, _ int) bool { return s.Category == category })
}

// SubServices returns the ordered sub-service options for a service slug,
// falling back to the generic default list for unknown slugs.
func SubServices(slug string) []SubServiceOption {
	if opts, ok := subServices[slug]; ok {
		return opts
	}
	return defaultSubServices
}

// SubServiceByLabel finds an option within a service by its label.
func SubServiceByLabel(slug, label string) (SubServiceOption, bool) {
	return lo.Find(SubServices(slug), func(o SubServiceOption) bool { return o.Label == label })
}
