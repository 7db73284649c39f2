package engine

import (
	"testing"

	"github.com/piwi3910/BathQuote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveShowerWalls_FullBuildout(t *testing.T) {
	// 96" x 90" of wall = 60 sq/ft.
	in := ShowerWallsInput{
		Measure: model.Measurement{Width: 96, Length: 90},
		Choices: model.ShowerWallChoices{
			TileWalls:     true,
			TileSize:      model.Tile3x6,
			Pattern:       model.PatternOffset,
			InstallBoard:  true,
			Waterproofing: true,
			NicheCount:    "1",
			GrabBarCount:  "2",
		},
		Rates: defaultTestRates(),
	}

	labor, materials := DeriveShowerWalls(in)

	board := findLabor(t, labor, "wall-board")
	assert.InDelta(t, 2.0, board.Hours, 1e-9) // 60/30
	assert.Equal(t, 85.0, board.Rate)

	membrane := findLabor(t, labor, "waterproof-membrane")
	assert.InDelta(t, 1.5, membrane.Hours, 1e-9) // 60/40

	install := findLabor(t, labor, "tile-install")
	assert.Equal(t, "Install Wall Tile (Offset)", install.Name)
	assert.InDelta(t, 20.0, install.Hours, 1e-9) // 60/3

	grout := findLabor(t, labor, "grout")
	assert.InDelta(t, 3.0, grout.Hours, 1e-9) // 60/20

	niche := findLabor(t, labor, "niche")
	assert.Equal(t, "Install Tile Niche (x1)", niche.Name)
	assert.Equal(t, 2.5, niche.Hours)

	bars := findLabor(t, labor, "grab-bars")
	assert.Equal(t, "Install Grab Bars (x2)", bars.Name)
	assert.Equal(t, 1.5, bars.Hours) // 0.75 each

	tile := findMaterial(t, materials, "tile")
	assert.Equal(t, "Wall Tile (3x6)", tile.Name)
	assert.InDelta(t, 69.0, tile.Quantity, 1e-9) // 60 * 1.15 wall offset waste

	panels := findMaterial(t, materials, "wall-board-panel")
	assert.Equal(t, 4.0, panels.Quantity) // ceil(60/15)

	pail := findMaterial(t, materials, "membrane-pail")
	assert.Equal(t, 2.0, pail.Quantity) // ceil(60/50)

	nicheUnit := findMaterial(t, materials, "niche-unit")
	assert.Equal(t, 1.0, nicheUnit.Quantity)

	barUnit := findMaterial(t, materials, "grab-bar-unit")
	assert.Equal(t, 2.0, barUnit.Quantity)
	assert.Equal(t, 45.0, barUnit.UnitPrice)
}

func TestDeriveShowerWalls_NothingSelected(t *testing.T) {
	in := ShowerWallsInput{
		Measure: model.Measurement{Width: 96, Length: 90},
		Choices: model.DefaultShowerWallChoices(),
		Rates:   defaultTestRates(),
	}

	labor, materials := DeriveShowerWalls(in)

	require.Empty(t, labor)
	require.Empty(t, materials)
}

func TestDeriveShowerWalls_TilingWithoutMeasurement(t *testing.T) {
	in := ShowerWallsInput{
		Choices: model.ShowerWallChoices{
			TileWalls:    true,
			TileSize:     model.Tile12x12,
			Pattern:      model.PatternStacked,
			NicheCount:   "0",
			GrabBarCount: "0",
		},
		Rates: defaultTestRates(),
	}

	labor, materials := DeriveShowerWalls(in)

	require.Empty(t, labor)
	require.Empty(t, materials)
}

func TestDeriveShowerWalls_BadCountsIgnored(t *testing.T) {
	in := ShowerWallsInput{
		Measure: model.Measurement{Width: 96, Length: 90},
		Choices: model.ShowerWallChoices{
			TileWalls:    true,
			TileSize:     model.Tile12x24,
			Pattern:      model.PatternStacked,
			NicheCount:   "two",
			GrabBarCount: "-1",
		},
		Rates: defaultTestRates(),
	}

	labor, materials := DeriveShowerWalls(in)

	assert.False(t, hasLabor(labor, "niche"))
	assert.False(t, hasLabor(labor, "grab-bars"))
	assert.False(t, hasMaterial(materials, "niche-unit"))
	assert.False(t, hasMaterial(materials, "grab-bar-unit"))
}

func TestDeriveShowerWalls_ClientSuppliesTile(t *testing.T) {
	in := ShowerWallsInput{
		Measure: model.Measurement{Width: 96, Length: 90},
		Choices: model.ShowerWallChoices{
			TileWalls:          true,
			TileSize:           model.Tile12x24,
			Pattern:            model.PatternStacked,
			ClientSuppliesTile: true,
			NicheCount:         "0",
			GrabBarCount:       "0",
		},
		Rates: defaultTestRates(),
	}

	labor, materials := DeriveShowerWalls(in)

	assert.True(t, hasLabor(labor, "tile-install"))
	assert.False(t, hasMaterial(materials, "tile"))
	assert.True(t, hasMaterial(materials, "thinset"))
}
