package engine

import (
	"fmt"

	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/model"
)

// ShowerWallsInput bundles everything the shower wall rules read.
type ShowerWallsInput struct {
	Measure model.Measurement
	Choices model.ShowerWallChoices
	Rates   catalog.Rates
}

func (in ShowerWallsInput) sqft() float64 {
	return in.Measure.TotalSquareFeet()
}

func (in ShowerWallsInput) tiling() bool {
	return in.Choices.TileWalls && in.sqft() > 0
}

func (in ShowerWallsInput) niches() int {
	return model.ParseCount(in.Choices.NicheCount)
}

func (in ShowerWallsInput) grabBars() int {
	return model.ParseCount(in.Choices.GrabBarCount)
}

var showerWallLaborRules = []laborRule[ShowerWallsInput]{
	{
		key:  "wall-board",
		when: func(in ShowerWallsInput) bool { return in.Choices.InstallBoard && in.sqft() > 0 },
		item: func(in ShowerWallsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerWalls, "wall-board", in.Rates, model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "waterproof-membrane",
		when: func(in ShowerWallsInput) bool { return in.Choices.Waterproofing && in.sqft() > 0 },
		item: func(in ShowerWallsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerWalls, "waterproof-membrane", in.Rates, model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "tile-install",
		when: ShowerWallsInput.tiling,
		item: func(in ShowerWallsInput) (model.LaborItem, bool) {
			item, ok := laborFromCatalog(model.CategoryShowerWalls, "tile-install", in.Rates, model.ScopeDesign, in.sqft())
			if !ok {
				return item, false
			}
			item.Name = fmt.Sprintf("%s (%s)", item.Name, in.Choices.Pattern.DisplayName())
			return item, true
		},
	},
	{
		key:  "grout",
		when: ShowerWallsInput.tiling,
		item: func(in ShowerWallsInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerWalls, "grout", in.Rates, model.ScopeDesign, in.sqft())
		},
	},
	{
		key:  "niche",
		when: func(in ShowerWallsInput) bool { return in.niches() > 0 },
		item: func(in ShowerWallsInput) (model.LaborItem, bool) {
			item, ok := laborFromCatalog(model.CategoryShowerWalls, "niche", in.Rates, model.ScopeDesign, 0)
			if !ok {
				return item, false
			}
			n := in.niches()
			item.Name = fmt.Sprintf("%s (x%d)", item.Name, n)
			item.Hours *= float64(n)
			return item, true
		},
	},
	{
		key:  "grab-bars",
		when: func(in ShowerWallsInput) bool { return in.grabBars() > 0 },
		item: func(in ShowerWallsInput) (model.LaborItem, bool) {
			item, ok := laborFromCatalog(model.CategoryShowerWalls, "grab-bars", in.Rates, model.ScopeConstruction, 0)
			if !ok {
				return item, false
			}
			n := in.grabBars()
			item.Name = fmt.Sprintf("%s (x%d)", item.Name, n)
			item.Hours *= float64(n)
			return item, true
		},
	},
}

var showerWallMaterialRules = []materialRule[ShowerWallsInput]{
	{
		key:  "tile",
		when: func(in ShowerWallsInput) bool { return in.tiling() && !in.Choices.ClientSuppliesTile },
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			item, ok := materialFromCatalog(model.CategoryShowerWalls, "tile", model.ScopeDesign, in.sqft())
			if !ok {
				return item, false
			}
			item.Name = fmt.Sprintf("%s (%s)", item.Name, in.Choices.TileSize)
			item.Quantity = in.sqft() * catalog.WallWasteFactor(in.Choices.Pattern)
			return item, true
		},
	},
	{
		key:  "thinset",
		when: ShowerWallsInput.tiling,
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryShowerWalls, "thinset", model.ScopeDesign, in.sqft())
		},
	},
	{
		key:  "grout-bag",
		when: ShowerWallsInput.tiling,
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryShowerWalls, "grout-bag", model.ScopeDesign, in.sqft())
		},
	},
	{
		key:  "wall-board-panel",
		when: func(in ShowerWallsInput) bool { return in.Choices.InstallBoard && in.sqft() > 0 },
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryShowerWalls, "wall-board-panel", model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "membrane-pail",
		when: func(in ShowerWallsInput) bool { return in.Choices.Waterproofing && in.sqft() > 0 },
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryShowerWalls, "membrane-pail", model.ScopeConstruction, in.sqft())
		},
	},
	{
		key:  "niche-unit",
		when: func(in ShowerWallsInput) bool { return in.niches() > 0 },
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			item, ok := materialFromCatalog(model.CategoryShowerWalls, "niche-unit", model.ScopeDesign, 0)
			if !ok {
				return item, false
			}
			item.Quantity = float64(in.niches())
			return item, true
		},
	},
	{
		key:  "grab-bar-unit",
		when: func(in ShowerWallsInput) bool { return in.grabBars() > 0 },
		item: func(in ShowerWallsInput) (model.MaterialItem, bool) {
			item, ok := materialFromCatalog(model.CategoryShowerWalls, "grab-bar-unit", model.ScopeConstruction, 0)
			if !ok {
				return item, false
			}
			item.Quantity = float64(in.grabBars())
			return item, true
		},
	},
}

// DeriveShowerWalls computes the shower wall category's calculated items.
func DeriveShowerWalls(in ShowerWallsInput) ([]model.LaborItem, []model.MaterialItem) {
	labor := collectLabor(model.CategoryShowerWalls, in, showerWallLaborRules)
	materials := collectMaterials(model.CategoryShowerWalls, in, showerWallMaterialRules)
	return labor, materials
}
