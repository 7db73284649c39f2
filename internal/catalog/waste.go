package catalog

import "github.com/piwi3910/BathQuote/internal/model"

// Each tiled category owns its own waste factor table. The tables are kept
// separate on purpose: floor and wall cut loss differ for the same pattern.
// Unrecognized patterns map to the category default, never to an undefined
// value.

// FloorWasteFactor returns the material waste multiplier for a floor
// installation pattern. Default (stacked and anything unrecognized) is 1.10.
func FloorWasteFactor(p model.TilePattern) float64 {
	switch p {
	case model.PatternOffset, model.PatternDiagonal:
		return 1.20
	case model.PatternHerringbone:
		return 1.25
	case model.PatternCheckerboard:
		return 1.15
	case model.PatternHexagonal:
		return 1.13
	default:
		return 1.10
	}
}

// WallWasteFactor returns the material waste multiplier for a wall
// installation pattern. Default is 1.10.
func WallWasteFactor(p model.TilePattern) float64 {
	switch p {
	case model.PatternOffset:
		return 1.15
	case model.PatternHerringbone:
		return 1.25
	default:
		return 1.10
	}
}
