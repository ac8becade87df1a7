package model

// AppConfig holds kitchen-wide preferences applied when generating orders.
type AppConfig struct {
	// Defaults applied to new generation inputs
	DefaultMinimumOrderLbs float64 `json:"default_minimum_order_lbs"`
	DefaultLeadTimeDays    int     `json:"default_lead_time_days"`

	// Vendor contact details used when sending the rendered order
	VendorContactName  string `json:"vendor_contact_name"`
	VendorContactEmail string `json:"vendor_contact_email"`

	// Application preferences
	CatalogPath string   `json:"catalog_path"` // empty = default location
	RecentPlans []string `json:"recent_plans"`
}

// DefaultAppConfig returns an AppConfig populated with the engine defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultMinimumOrderLbs: DefaultMinimumOrderLbs,
		DefaultLeadTimeDays:    DefaultLeadTimeDays,
		RecentPlans:            []string{},
	}
}

// ApplyToInput copies the configured defaults into a GenerationInput that
// did not set them explicitly.
func (c AppConfig) ApplyToInput(in *GenerationInput) {
	if in.MinimumOrderLbs <= 0 {
		in.MinimumOrderLbs = c.DefaultMinimumOrderLbs
	}
}

// maxRecentPlans caps the recent-plans list.
const maxRecentPlans = 10

// AddRecentPlan puts path at the front of RecentPlans, dropping any
// earlier entry for the same path and capping the list length.
func (c *AppConfig) AddRecentPlan(path string) {
	recent := []string{path}
	for _, p := range c.RecentPlans {
		if p == path {
			continue
		}
		recent = append(recent, p)
		if len(recent) == maxRecentPlans {
			break
		}
	}
	c.RecentPlans = recent
}
