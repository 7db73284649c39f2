package engine

import (
	"fmt"

	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/model"
)

// FloorsInput bundles everything the floor rules read.
type FloorsInput struct {
	Measure      model.Measurement
	Design       model.FloorDesignChoices
	Construction model.FloorConstructionChoices
	Rates        catalog.Rates
}

func (in FloorsInput) sqft() float64 {
	return in.Measure.TotalSquareFeet()
}

// measured reports whether the floor has been given any area yet. Nothing
// area-based derives from an unmeasured floor.
func (in FloorsInput) measured() bool {
	return in.sqft() > 0
}

var floorLaborRules = []laborRule[FloorsInput]{
	{
		key:  "tile-install",
		when: FloorsInput.measured,
		item: func(in FloorsInput) (model.LaborItem, bool) {
			item, ok := laborFromCatalog(model.CategoryFloors, "tile-install", in.Rates, model.ScopeDesign, in.sqft())
			if !ok {
				return item, false
			}
			item.Name = fmt.Sprintf("%s (%s)", item.Name, in.Design.Pattern.DisplayName())
			return item, true
		},
	},
	{
		key:  "grout",
		when: FloorsInput.measured,
		item: func(in FloorsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryFloors, "grout", in.Rates, model.ScopeDesign, in.sqft())
		},
	},
	{
		key:  "self-leveling",
		when: func(in FloorsInput) bool { return in.Construction.SelfLeveling && in.measured() },
		item: func(in FloorsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryFloors, "self-leveling", in.Rates, model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "plywood-underlayment",
		when: func(in FloorsInput) bool { return in.Construction.PlywoodUnderlayment && in.measured() },
		item: func(in FloorsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryFloors, "plywood-underlayment", in.Rates, model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "heated-floor",
		when: func(in FloorsInput) bool { return in.Construction.HeatedFloor && in.measured() },
		item: func(in FloorsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryFloors, "heated-floor", in.Rates, model.ScopeConstruction, in.sqft())
		},
	},
}

var floorMaterialRules = []materialRule[FloorsInput]{
	{
		key:  "tile",
		when: func(in FloorsInput) bool { return in.measured() && !in.Design.ClientSuppliesTile },
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			item, ok := materialFromCatalog(model.CategoryFloors, "tile", model.ScopeDesign, in.sqft())
			if !ok {
				return item, false
			}
			item.Name = fmt.Sprintf("%s (%s)", item.Name, in.Design.TileSize)
			item.Quantity = in.sqft() * catalog.FloorWasteFactor(in.Design.Pattern)
			return item, true
		},
	},
	{
		key:  "thinset",
		when: FloorsInput.measured,
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFloors, "thinset", model.ScopeDesign, in.sqft())
		},
	},
	{
		key:  "grout-bag",
		when: FloorsInput.measured,
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFloors, "grout-bag", model.ScopeDesign, in.sqft())
		},
	},
	{
		key:  "leveling-compound",
		when: func(in FloorsInput) bool { return in.Construction.SelfLeveling && in.measured() },
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFloors, "leveling-compound", model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "plywood-sheet",
		when: func(in FloorsInput) bool { return in.Construction.PlywoodUnderlayment && in.measured() },
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFloors, "plywood-sheet", model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "heat-kit",
		when: func(in FloorsInput) bool { return in.Construction.HeatedFloor && in.measured() },
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFloors, "heat-kit", model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "heat-thermostat",
		when: func(in FloorsInput) bool { return in.Construction.HeatedFloor },
		item: func(in FloorsInput) (model.MaterialItem, bool) {
			// Thermostat quantity is always 1 regardless of area.
			return materialFromCatalog(model.CategoryFloors, "heat-thermostat", model.ScopeConstruction, in.sqft())
		},
	},
}

// DeriveFloors computes the floor category's calculated items from the
// current measurement and choices.
func DeriveFloors(in FloorsInput) ([]model.LaborItem, []model.MaterialItem) {
	labor := collectLabor(model.CategoryFloors, in, floorLaborRules)
	materials := collectMaterials(model.CategoryFloors, in, floorMaterialRules)
	return labor, materials
}
