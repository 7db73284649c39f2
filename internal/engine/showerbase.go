package engine

import (
	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/model"
)

// ShowerBaseInput bundles everything the shower base rules read.
type ShowerBaseInput struct {
	Measure model.Measurement
	Choices model.ShowerBaseChoices
	Rates   catalog.Rates
}

func (in ShowerBaseInput) tiled() bool {
	return in.Choices.BaseType == model.BaseTiled
}

// systemKeys maps the waterproofing choice onto its catalog entries.
// Unrecognized systems fall back to Schluter, the baseline product line.
func systemKeys(w model.WaterproofingSystem) (labor, kit string) {
	switch w {
	case model.WaterproofWedi:
		return "system-wedi", "kit-wedi"
	case model.WaterproofLiquid:
		return "system-liquid", "kit-liquid"
	default:
		return "system-schluter", "kit-schluter"
	}
}

var showerBaseLaborRules = []laborRule[ShowerBaseInput]{
	{
		key:  "tile-base",
		when: ShowerBaseInput.tiled,
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerBase, "tile-base", in.Rates, model.ScopeDesign, in.Measure.TotalSquareFeet())
		},
	},
	{
		key:  "build-curb",
		when: func(in ShowerBaseInput) bool { return in.tiled() && in.Choices.EntryType == model.EntryCurb },
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerBase, "build-curb", in.Rates, model.ScopeConstruction, 0)
		},
	},
	{
		key:  "curbless-entry",
		when: func(in ShowerBaseInput) bool { return in.tiled() && in.Choices.EntryType == model.EntryCurbless },
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerBase, "curbless-entry", in.Rates, model.ScopeConstruction, 0)
		},
	},
	{
		key:  "install-drain",
		when: ShowerBaseInput.tiled,
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			key := "drain-regular"
			if in.Choices.DrainType == model.DrainLinear {
				key = "drain-linear"
			}
			return laborFromCatalog(model.CategoryShowerBase, key, in.Rates, model.ScopeConstruction, 0)
		},
	},
	{
		key:  "base-system",
		when: ShowerBaseInput.tiled,
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			laborKey, _ := systemKeys(in.Choices.Waterproofing)
			return laborFromCatalog(model.CategoryShowerBase, laborKey, in.Rates, model.ScopeDesign, 0)
		},
	},
	{
		key:  "install-tub",
		when: func(in ShowerBaseInput) bool { return in.Choices.BaseType == model.BaseTub },
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerBase, "install-tub", in.Rates, model.ScopeConstruction, 0)
		},
	},
	{
		key:  "install-acrylic-base",
		when: func(in ShowerBaseInput) bool { return in.Choices.BaseType == model.BaseAcrylic },
		item: func(in ShowerBaseInput) (model.LaborItem, bool) {
			return laborFromCatalog(model.CategoryShowerBase, "install-acrylic-base", in.Rates, model.ScopeConstruction, 0)
		},
	},
}

var showerBaseMaterialRules = []materialRule[ShowerBaseInput]{
	{
		key:  "drain-hardware",
		when: ShowerBaseInput.tiled,
		item: func(in ShowerBaseInput) (model.MaterialItem, bool) {
			key := "drain-regular-kit"
			if in.Choices.DrainType == model.DrainLinear {
				key = "drain-linear-kit"
			}
			return materialFromCatalog(model.CategoryShowerBase, key, model.ScopeConstruction, 0)
		},
	},
	{
		key:  "system-kit",
		when: ShowerBaseInput.tiled,
		item: func(in ShowerBaseInput) (model.MaterialItem, bool) {
			_, kitKey := systemKeys(in.Choices.Waterproofing)
			return materialFromCatalog(model.CategoryShowerBase, kitKey, model.ScopeDesign, 0)
		},
	},
	{
		key:  "tub-unit",
		when: func(in ShowerBaseInput) bool { return in.Choices.BaseType == model.BaseTub },
		item: func(in ShowerBaseInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryShowerBase, "tub-unit", model.ScopeConstruction, 0)
		},
	},
	{
		key:  "acrylic-base-unit",
		when: func(in ShowerBaseInput) bool { return in.Choices.BaseType == model.BaseAcrylic },
		item: func(in ShowerBaseInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryShowerBase, "acrylic-base-unit", model.ScopeConstruction, 0)
		},
	},
}

// DeriveShowerBase computes the shower base category's calculated items.
// Entry, drain, and waterproofing choices only matter for a tiled base;
// their rules stay inactive on the tub and acrylic branches.
func DeriveShowerBase(in ShowerBaseInput) ([]model.LaborItem, []model.MaterialItem) {
	labor := collectLabor(model.CategoryShowerBase, in, showerBaseLaborRules)
	materials := collectMaterials(model.CategoryShowerBase, in, showerBaseMaterialRules)
	return labor, materials
}
