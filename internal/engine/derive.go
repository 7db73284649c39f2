package engine

import (
	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/model"
)

// Derive computes one category's calculated items from the estimate's
// current measurements and choices, priced with the given rates.
// Identical inputs always yield item lists identical in content.
// Unknown categories derive nothing.
func Derive(est *model.Estimate, c model.Category, rates catalog.Rates) ([]model.LaborItem, []model.MaterialItem) {
	switch c {
	case model.CategoryDemolition:
		return DeriveDemolition(DemolitionInput{Choices: est.Demolition, Rates: rates})
	case model.CategoryFloors:
		return DeriveFloors(FloorsInput{
			Measure:      est.FloorMeasure,
			Design:       est.FloorDesign,
			Construction: est.FloorConstruction,
			Rates:        rates,
		})
	case model.CategoryShowerBase:
		return DeriveShowerBase(ShowerBaseInput{Measure: est.BaseMeasure, Choices: est.ShowerBase, Rates: rates})
	case model.CategoryShowerWalls:
		return DeriveShowerWalls(ShowerWallsInput{Measure: est.WallMeasure, Choices: est.ShowerWalls, Rates: rates})
	case model.CategoryFinishings:
		return DeriveFinishings(FinishingsInput{Choices: est.Finishings, Rates: rates})
	case model.CategoryStructural:
		return DeriveStructural(StructuralInput{Choices: est.Structural, Rates: rates})
	case model.CategoryTrade:
		return DeriveTrade(TradeInput{Choices: est.Trade, Rates: rates})
	default:
		return nil, nil
	}
}
