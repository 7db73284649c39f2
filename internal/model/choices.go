package model

// TileSize is the nominal tile format selected for a tiled surface.
type TileSize string

const (
	Tile12x24  TileSize = "12x24"
	Tile12x12  TileSize = "12x12"
	Tile24x24  TileSize = "24x24"
	Tile3x6    TileSize = "3x6"
	TileMosaic TileSize = "mosaic"
)

// TilePattern is the installation pattern for a tiled surface.
// Each category applies its own waste factor table to the pattern.
type TilePattern string

const (
	PatternStacked      TilePattern = "stacked"
	PatternOffset       TilePattern = "offset"
	PatternDiagonal     TilePattern = "diagonal"
	PatternHerringbone  TilePattern = "herringbone"
	PatternCheckerboard TilePattern = "checkerboard"
	PatternHexagonal    TilePattern = "hexagonal"
)

// DisplayName returns the human-readable pattern name.
func (p TilePattern) DisplayName() string {
	switch p {
	case PatternOffset:
		return "Offset"
	case PatternDiagonal:
		return "Diagonal"
	case PatternHerringbone:
		return "Herringbone"
	case PatternCheckerboard:
		return "Checkerboard"
	case PatternHexagonal:
		return "Hexagonal"
	default:
		return "Stacked"
	}
}

// BaseType is the kind of shower base being installed.
type BaseType string

const (
	BaseTub     BaseType = "tub"
	BaseAcrylic BaseType = "acrylic_base"
	BaseTiled   BaseType = "tiled_base"
)

// EntryType is the shower entry style. Only meaningful for a tiled base.
type EntryType string

const (
	EntryCurb     EntryType = "curb"
	EntryCurbless EntryType = "curbless"
)

// DrainType is the drain style for a tiled base.
type DrainType string

const (
	DrainRegular DrainType = "regular"
	DrainLinear  DrainType = "linear"
)

// WaterproofingSystem is the shower waterproofing product line.
type WaterproofingSystem string

const (
	WaterproofSchluter WaterproofingSystem = "schluter"
	WaterproofWedi     WaterproofingSystem = "wedi"
	WaterproofLiquid   WaterproofingSystem = "liquid_membrane"
)

// DisplayName returns the product name used in item display names.
func (w WaterproofingSystem) DisplayName() string {
	switch w {
	case WaterproofWedi:
		return "Wedi"
	case WaterproofLiquid:
		return "Liquid Membrane"
	default:
		return "Schluter"
	}
}

// DemolitionChoices holds the demolition category's toggles.
type DemolitionChoices struct {
	RemoveTub         bool `json:"remove_tub"`
	RemoveShowerWalls bool `json:"remove_shower_walls"`
	RemoveFlooring    bool `json:"remove_flooring"`
	RemoveVanity      bool `json:"remove_vanity"`
	RemoveToilet      bool `json:"remove_toilet"`
	RemoveAccessories bool `json:"remove_accessories"`
	OpenWalls         bool `json:"open_walls"`
	DebrisDisposal    bool `json:"debris_disposal"`
}

// FloorDesignChoices holds the floor category's design selections.
type FloorDesignChoices struct {
	TileSize           TileSize    `json:"tile_size"`
	Pattern            TilePattern `json:"pattern"`
	ClientSuppliesTile bool        `json:"client_supplies_tile"`
}

// FloorConstructionChoices holds the floor category's construction toggles.
type FloorConstructionChoices struct {
	SelfLeveling        bool `json:"self_leveling"`
	PlywoodUnderlayment bool `json:"plywood_underlayment"`
	HeatedFloor         bool `json:"heated_floor"`
}

// ShowerBaseChoices holds the shower base category's selections.
// Entry, drain, and waterproofing are ignored by derivation unless
// BaseType is BaseTiled.
type ShowerBaseChoices struct {
	BaseType      BaseType            `json:"base_type"`
	EntryType     EntryType           `json:"entry_type"`
	DrainType     DrainType           `json:"drain_type"`
	Waterproofing WaterproofingSystem `json:"waterproofing"`
}

// ShowerWallChoices holds the shower wall category's selections.
// NicheCount and GrabBarCount are numeric strings as entered by the user.
type ShowerWallChoices struct {
	TileWalls          bool        `json:"tile_walls"`
	TileSize           TileSize    `json:"tile_size"`
	Pattern            TilePattern `json:"pattern"`
	InstallBoard       bool        `json:"install_board"`
	Waterproofing      bool        `json:"waterproofing"`
	NicheCount         string      `json:"niche_count"`
	GrabBarCount       string      `json:"grab_bar_count"`
	ClientSuppliesTile bool        `json:"client_supplies_tile"`
}

// FinishingChoices holds the finishing category's toggles.
type FinishingChoices struct {
	InstallVanity      bool `json:"install_vanity"`
	InstallToilet      bool `json:"install_toilet"`
	InstallAccessories bool `json:"install_accessories"`
	InstallMirror      bool `json:"install_mirror"`
	Painting           bool `json:"painting"`
	InstallTrim        bool `json:"install_trim"`
}

// Any reports whether any finishing work is selected.
func (f FinishingChoices) Any() bool {
	return f.InstallVanity || f.InstallToilet || f.InstallAccessories ||
		f.InstallMirror || f.Painting || f.InstallTrim
}

// StructuralChoices holds the structural category's toggles.
type StructuralChoices struct {
	ReinforceSubfloor bool `json:"reinforce_subfloor"`
	FrameWalls        bool `json:"frame_walls"`
	GrabBarBlocking   bool `json:"grab_bar_blocking"`
}

// TradeChoices holds the trade category's toggles.
type TradeChoices struct {
	PlumbingRoughIn   bool `json:"plumbing_rough_in"`
	ElectricalRoughIn bool `json:"electrical_rough_in"`
	VentilationFan    bool `json:"ventilation_fan"`
}

func DefaultFloorDesignChoices() FloorDesignChoices {
	return FloorDesignChoices{
		TileSize: Tile12x24,
		Pattern:  PatternStacked,
	}
}

func DefaultShowerBaseChoices() ShowerBaseChoices {
	return ShowerBaseChoices{
		BaseType:      BaseTub,
		EntryType:     EntryCurb,
		DrainType:     DrainRegular,
		Waterproofing: WaterproofSchluter,
	}
}

func DefaultShowerWallChoices() ShowerWallChoices {
	return ShowerWallChoices{
		TileSize:     Tile12x24,
		Pattern:      PatternStacked,
		NicheCount:   "0",
		GrabBarCount: "0",
	}
}
