package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// HourlyRates overrides individual catalog rate classes, keyed by rate
	// class name. Unset classes use the built-in defaults.
	HourlyRates map[string]float64 `json:"hourly_rates"`

	// Application preferences
	Currency         string   `json:"currency"`           // Display hint only; the engine never formats amounts
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentEstimates  []string `json:"recent_estimates"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		HourlyRates:      map[string]float64{},
		Currency:         "USD",
		AutoSaveInterval: 0,
		RecentEstimates:  []string{},
	}
}
