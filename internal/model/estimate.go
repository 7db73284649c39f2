package model

// CategorySection holds one category's pricing mode and item collections.
// The section is owned by the caller; the engine reads and returns
// replacement collections but keeps no state of its own.
type CategorySection struct {
	Mode      PricingMode    `json:"mode"`
	FlatFee   *FlatFeeItem   `json:"flat_fee,omitempty"`
	Labor     []LaborItem    `json:"labor"`
	Materials []MaterialItem `json:"materials"`

	// PreviousFlatFee remembers the last negotiated amount so flipping a
	// category back into flat-fee mode can reseed it.
	PreviousFlatFee *FlatFeeItem `json:"previous_flat_fee,omitempty"`
}

// NewCategorySection returns an empty metered section.
func NewCategorySection() *CategorySection {
	return &CategorySection{
		Mode:      ModeMetered,
		Labor:     []LaborItem{},
		Materials: []MaterialItem{},
	}
}

// Estimate ties everything together for save/load: the per-category
// measurements and choices, and the stored item collections they derive into.
type Estimate struct {
	Name string `json:"name"`

	Demolition        DemolitionChoices        `json:"demolition"`
	FloorMeasure      Measurement              `json:"floor_measure"`
	FloorDesign       FloorDesignChoices       `json:"floor_design"`
	FloorConstruction FloorConstructionChoices `json:"floor_construction"`
	BaseMeasure       Measurement              `json:"base_measure"`
	ShowerBase        ShowerBaseChoices        `json:"shower_base"`
	WallMeasure       Measurement              `json:"wall_measure"`
	ShowerWalls       ShowerWallChoices        `json:"shower_walls"`
	Finishings        FinishingChoices         `json:"finishings"`
	Structural        StructuralChoices        `json:"structural"`
	Trade             TradeChoices             `json:"trade"`

	Sections map[Category]*CategorySection `json:"sections"`
}

// NewEstimate creates an estimate with every category at its documented
// defaults and empty item collections.
func NewEstimate(name string) *Estimate {
	sections := make(map[Category]*CategorySection, len(AllCategories))
	for _, c := range AllCategories {
		sections[c] = NewCategorySection()
	}
	return &Estimate{
		Name:        name,
		FloorDesign: DefaultFloorDesignChoices(),
		ShowerBase:  DefaultShowerBaseChoices(),
		ShowerWalls: DefaultShowerWallChoices(),
		Sections:    sections,
	}
}

// Section returns the section for a category, creating it if absent.
// Loaded estimates may predate a category, so the accessor never returns nil.
func (e *Estimate) Section(c Category) *CategorySection {
	if e.Sections == nil {
		e.Sections = make(map[Category]*CategorySection, len(AllCategories))
	}
	sec, ok := e.Sections[c]
	if !ok || sec == nil {
		sec = NewCategorySection()
		e.Sections[c] = sec
	}
	return sec
}

// ResetChoices restores one category's choices and measurement to their
// defaults. Stored items are left alone; the caller re-derives afterwards.
func (e *Estimate) ResetChoices(c Category) {
	switch c {
	case CategoryDemolition:
		e.Demolition = DemolitionChoices{}
	case CategoryFloors:
		e.FloorMeasure = Measurement{}
		e.FloorDesign = DefaultFloorDesignChoices()
		e.FloorConstruction = FloorConstructionChoices{}
	case CategoryShowerBase:
		e.BaseMeasure = Measurement{}
		e.ShowerBase = DefaultShowerBaseChoices()
	case CategoryShowerWalls:
		e.WallMeasure = Measurement{}
		e.ShowerWalls = DefaultShowerWallChoices()
	case CategoryFinishings:
		e.Finishings = FinishingChoices{}
	case CategoryStructural:
		e.Structural = StructuralChoices{}
	case CategoryTrade:
		e.Trade = TradeChoices{}
	}
}
