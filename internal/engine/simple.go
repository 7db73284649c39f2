package engine

import (
	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/model"
)

// The remaining categories are plain toggle-to-task tables: every rule is a
// fixed-hour catalog entry activated by one choice.

// DemolitionInput bundles the demolition rules' inputs.
type DemolitionInput struct {
	Choices model.DemolitionChoices
	Rates   catalog.Rates
}

var demolitionLaborRules = []laborRule[DemolitionInput]{
	{key: "remove-tub", when: func(in DemolitionInput) bool { return in.Choices.RemoveTub },
		item: demoLabor("remove-tub")},
	{key: "remove-shower-walls", when: func(in DemolitionInput) bool { return in.Choices.RemoveShowerWalls },
		item: demoLabor("remove-shower-walls")},
	{key: "remove-flooring", when: func(in DemolitionInput) bool { return in.Choices.RemoveFlooring },
		item: demoLabor("remove-flooring")},
	{key: "remove-vanity", when: func(in DemolitionInput) bool { return in.Choices.RemoveVanity },
		item: demoLabor("remove-vanity")},
	{key: "remove-toilet", when: func(in DemolitionInput) bool { return in.Choices.RemoveToilet },
		item: demoLabor("remove-toilet")},
	{key: "remove-accessories", when: func(in DemolitionInput) bool { return in.Choices.RemoveAccessories },
		item: demoLabor("remove-accessories")},
	{key: "open-walls", when: func(in DemolitionInput) bool { return in.Choices.OpenWalls },
		item: demoLabor("open-walls")},
}

func demoLabor(key string) func(DemolitionInput) (model.LaborItem, bool) {
	return func(in DemolitionInput) (model.LaborItem, bool) {
		return laborFromCatalog(model.CategoryDemolition, key, in.Rates, model.ScopeDemolition, 0)
	}
}

var demolitionMaterialRules = []materialRule[DemolitionInput]{
	{key: "disposal-bin", when: func(in DemolitionInput) bool { return in.Choices.DebrisDisposal },
		item: func(in DemolitionInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryDemolition, "disposal-bin", model.ScopeDemolition, 0)
		}},
	{key: "contractor-bags", when: func(in DemolitionInput) bool { return in.Choices.DebrisDisposal },
		item: func(in DemolitionInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryDemolition, "contractor-bags", model.ScopeDemolition, 0)
		}},
}

// DeriveDemolition computes the demolition category's calculated items.
func DeriveDemolition(in DemolitionInput) ([]model.LaborItem, []model.MaterialItem) {
	return collectLabor(model.CategoryDemolition, in, demolitionLaborRules),
		collectMaterials(model.CategoryDemolition, in, demolitionMaterialRules)
}

// FinishingsInput bundles the finishing rules' inputs.
type FinishingsInput struct {
	Choices model.FinishingChoices
	Rates   catalog.Rates
}

var finishingLaborRules = []laborRule[FinishingsInput]{
	{key: "vanity", when: func(in FinishingsInput) bool { return in.Choices.InstallVanity },
		item: finishingLabor("vanity")},
	{key: "toilet", when: func(in FinishingsInput) bool { return in.Choices.InstallToilet },
		item: finishingLabor("toilet")},
	{key: "accessories", when: func(in FinishingsInput) bool { return in.Choices.InstallAccessories },
		item: finishingLabor("accessories")},
	{key: "mirror", when: func(in FinishingsInput) bool { return in.Choices.InstallMirror },
		item: finishingLabor("mirror")},
	{key: "painting", when: func(in FinishingsInput) bool { return in.Choices.Painting },
		item: finishingLabor("painting")},
	{key: "trim", when: func(in FinishingsInput) bool { return in.Choices.InstallTrim },
		item: finishingLabor("trim")},
	// Silicone and caulking accompanies any finishing work.
	{key: "silicone", when: func(in FinishingsInput) bool { return in.Choices.Any() },
		item: finishingLabor("silicone")},
}

func finishingLabor(key string) func(FinishingsInput) (model.LaborItem, bool) {
	return func(in FinishingsInput) (model.LaborItem, bool) {
		return laborFromCatalog(model.CategoryFinishings, key, in.Rates, model.ScopeFinishing, 0)
	}
}

var finishingMaterialRules = []materialRule[FinishingsInput]{
	{key: "paint-gallon", when: func(in FinishingsInput) bool { return in.Choices.Painting },
		item: func(in FinishingsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFinishings, "paint-gallon", model.ScopeFinishing, 0)
		}},
	{key: "silicone-tube", when: func(in FinishingsInput) bool { return in.Choices.Any() },
		item: func(in FinishingsInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryFinishings, "silicone-tube", model.ScopeFinishing, 0)
		}},
}

// DeriveFinishings computes the finishing category's calculated items.
func DeriveFinishings(in FinishingsInput) ([]model.LaborItem, []model.MaterialItem) {
	return collectLabor(model.CategoryFinishings, in, finishingLaborRules),
		collectMaterials(model.CategoryFinishings, in, finishingMaterialRules)
}

// StructuralInput bundles the structural rules' inputs.
type StructuralInput struct {
	Choices model.StructuralChoices
	Rates   catalog.Rates
}

var structuralLaborRules = []laborRule[StructuralInput]{
	{key: "subfloor", when: func(in StructuralInput) bool { return in.Choices.ReinforceSubfloor },
		item: structuralLabor("subfloor")},
	{key: "framing", when: func(in StructuralInput) bool { return in.Choices.FrameWalls },
		item: structuralLabor("framing")},
	{key: "blocking", when: func(in StructuralInput) bool { return in.Choices.GrabBarBlocking },
		item: structuralLabor("blocking")},
}

func structuralLabor(key string) func(StructuralInput) (model.LaborItem, bool) {
	return func(in StructuralInput) (model.LaborItem, bool) {
		return laborFromCatalog(model.CategoryStructural, key, in.Rates, model.ScopeStructural, 0)
	}
}

var structuralMaterialRules = []materialRule[StructuralInput]{
	{key: "lumber-2x10", when: func(in StructuralInput) bool { return in.Choices.ReinforceSubfloor },
		item: func(in StructuralInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryStructural, "lumber-2x10", model.ScopeStructural, 0)
		}},
	{key: "studs-2x4", when: func(in StructuralInput) bool { return in.Choices.FrameWalls },
		item: func(in StructuralInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryStructural, "studs-2x4", model.ScopeStructural, 0)
		}},
}

// DeriveStructural computes the structural category's calculated items.
func DeriveStructural(in StructuralInput) ([]model.LaborItem, []model.MaterialItem) {
	return collectLabor(model.CategoryStructural, in, structuralLaborRules),
		collectMaterials(model.CategoryStructural, in, structuralMaterialRules)
}

// TradeInput bundles the trade rules' inputs.
type TradeInput struct {
	Choices model.TradeChoices
	Rates   catalog.Rates
}

var tradeLaborRules = []laborRule[TradeInput]{
	{key: "plumbing", when: func(in TradeInput) bool { return in.Choices.PlumbingRoughIn },
		item: tradeLabor("plumbing")},
	{key: "electrical", when: func(in TradeInput) bool { return in.Choices.ElectricalRoughIn },
		item: tradeLabor("electrical")},
	{key: "fan", when: func(in TradeInput) bool { return in.Choices.VentilationFan },
		item: tradeLabor("fan")},
}

func tradeLabor(key string) func(TradeInput) (model.LaborItem, bool) {
	return func(in TradeInput) (model.LaborItem, bool) {
		return laborFromCatalog(model.CategoryTrade, key, in.Rates, model.ScopeTrade, 0)
	}
}

var tradeMaterialRules = []materialRule[TradeInput]{
	{key: "fan-unit", when: func(in TradeInput) bool { return in.Choices.VentilationFan },
		item: func(in TradeInput) (model.MaterialItem, bool) {
			return materialFromCatalog(model.CategoryTrade, "fan-unit", model.ScopeTrade, 0)
		}},
}

// DeriveTrade computes the trade category's calculated items.
func DeriveTrade(in TradeInput) ([]model.LaborItem, []model.MaterialItem) {
	return collectLabor(model.CategoryTrade, in, tradeLaborRules),
		collectMaterials(model.CategoryTrade, in, tradeMaterialRules)
}
