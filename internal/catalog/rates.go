// Package catalog holds the read-only reference data the derivation engine
// prices items from: hourly rate classes, item templates keyed by rule key,
// and per-category waste factor tables. Consumers never mutate the catalog;
// lookups that miss degrade to "no item produced" rather than erroring.
package catalog

// RateClass identifies which trade's hourly rate applies to a labor task.
type RateClass string

const (
	RateTile       RateClass = "tile"
	RateDemolition RateClass = "demolition"
	RateCarpentry  RateClass = "carpentry"
	RatePlumbing   RateClass = "plumbing"
	RateElectrical RateClass = "electrical"
	RatePaint      RateClass = "paint"
	RateGeneral    RateClass = "general"
)

// Rates maps a rate class to a charged hourly amount.
type Rates map[RateClass]float64

// DefaultRates returns the built-in hourly rates. Callers may override
// individual classes from the app config before deriving.
func DefaultRates() Rates {
	return Rates{
		RateTile:       95,
		RateDemolition: 65,
		RateCarpentry:  85,
		RatePlumbing:   120,
		RateElectrical: 115,
		RatePaint:      70,
		RateGeneral:    75,
	}
}

// WithOverrides returns a copy of r with individual classes replaced by the
// given overrides, keyed by rate class name. Zero and negative overrides are
// ignored. This is how app-config rates reach the engine.
func (r Rates) WithOverrides(overrides map[string]float64) Rates {
	merged := make(Rates, len(r))
	for rc, v := range r {
		merged[rc] = v
	}
	for name, v := range overrides {
		if v > 0 {
			merged[RateClass(name)] = v
		}
	}
	return merged
}

// Rate returns the hourly amount for the class, falling back to the general
// rate for unknown or unset classes so a labor item is never priced from an
// undefined rate.
func (r Rates) Rate(rc RateClass) float64 {
	if v, ok := r[rc]; ok && v > 0 {
		return v
	}
	if v, ok := r[RateGeneral]; ok && v > 0 {
		return v
	}
	return DefaultRates()[RateGeneral]
}
