package model

// Category identifies one work category of a bathroom remodel estimate.
type Category string

const (
	CategoryDemolition  Category = "demolition"
	CategoryFloors      Category = "floors"
	CategoryShowerBase  Category = "shower_base"
	CategoryShowerWalls Category = "shower_walls"
	CategoryFinishings  Category = "finishings"
	CategoryStructural  Category = "structural"
	CategoryTrade       Category = "trade"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryDemolition,
	CategoryFloors,
	CategoryShowerBase,
	CategoryShowerWalls,
	CategoryFinishings,
	CategoryStructural,
	CategoryTrade,
}

// DisplayName returns the human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryDemolition:
		return "Demolition"
	case CategoryFloors:
		return "Floors"
	case CategoryShowerBase:
		return "Shower Base"
	case CategoryShowerWalls:
		return "Shower Walls"
	case CategoryFinishings:
		return "Finishings"
	case CategoryStructural:
		return "Structural"
	case CategoryTrade:
		return "Trade"
	default:
		return string(c)
	}
}

// PricingMode selects how a category is priced.
type PricingMode string

const (
	ModeMetered PricingMode = "metered"  // Itemized hourly labor plus materials
	ModeFlatFee PricingMode = "flat_fee" // One negotiated price replaces itemized labor
)

// Scope groups items by phase or trade for subtotal display.
// It never participates in pricing logic.
type Scope string

const (
	ScopeDesign       Scope = "design"
	ScopeConstruction Scope = "construction"
	ScopeDemolition   Scope = "demolition"
	ScopeFinishing    Scope = "finishing"
	ScopeStructural   Scope = "structural"
	ScopeTrade        Scope = "trade"
)
