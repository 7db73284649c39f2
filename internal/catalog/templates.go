package catalog

import "github.com/piwi3910/BathQuote/internal/model"

// Template describes how one catalog entry renders into an estimate item.
// Labor entries use Hours or Coverage plus a rate class; material entries
// use Quantity or Coverage plus a unit price. A zero Coverage means the
// base Hours/Quantity is used as-is.
type Template struct {
	Name        string    // Display name; rules may parameterize it further
	Hours       float64   // Base hours for labor entries
	Coverage    float64   // Square feet per hour (labor) or per unit (material)
	Rate        RateClass // Rate class for labor entries
	Quantity    float64   // Base quantity for material entries
	MinQuantity float64   // Floor applied to coverage-derived quantities
	Unit        string    // Purchase unit for material entries
	UnitPrice   float64   // Price per unit for material entries
}

// templates is the static reference table keyed by category then entry key.
// Entry keys are catalog-internal; derivation rules decide which entry backs
// which rule key.
var templates = map[model.Category]map[string]Template{
	model.CategoryDemolition: {
		"remove-tub":          {Name: "Remove Tub", Hours: 3, Rate: RateDemolition},
		"remove-shower-walls": {Name: "Demo Shower Walls", Hours: 4, Rate: RateDemolition},
		"remove-flooring":     {Name: "Remove Flooring", Hours: 3, Rate: RateDemolition},
		"remove-vanity":       {Name: "Remove Vanity", Hours: 1, Rate: RateDemolition},
		"remove-toilet":       {Name: "Remove Toilet", Hours: 0.5, Rate: RateDemolition},
		"remove-accessories":  {Name: "Remove Accessories", Hours: 1, Rate: RateDemolition},
		"open-walls":          {Name: "Open Walls and Ceiling", Hours: 2, Rate: RateDemolition},
		"disposal-bin":        {Name: "Disposal Bin Rental", Quantity: 1, Unit: "bin", UnitPrice: 450},
		"contractor-bags":     {Name: "Contractor Bags", Quantity: 10, Unit: "bag", UnitPrice: 2.50},
	},
	model.CategoryFloors: {
		"tile-install":         {Name: "Install Floor Tile", Coverage: 4, Rate: RateTile},
		"grout":                {Name: "Grout Floor", Coverage: 40, Rate: RateTile},
		"self-leveling":        {Name: "Pour Self-Leveling Compound", Coverage: 50, Rate: RateGeneral},
		"plywood-underlayment": {Name: "Install Plywood Underlayment", Coverage: 30, Rate: RateCarpentry},
		"heated-floor":         {Name: "Install Heated Floor System", Coverage: 25, Rate: RateTile},
		"tile":                 {Name: "Floor Tile", Unit: "sq/ft", UnitPrice: 6.50},
		"thinset":              {Name: "Thinset Mortar", Coverage: 50, MinQuantity: 1, Unit: "bag", UnitPrice: 22},
		"grout-bag":            {Name: "Grout", Coverage: 100, MinQuantity: 1, Unit: "bag", UnitPrice: 18},
		"leveling-compound":    {Name: "Self-Leveling Compound", Coverage: 30, MinQuantity: 1, Unit: "bag", UnitPrice: 38},
		"plywood-sheet":        {Name: "Plywood Underlayment", Coverage: 32, MinQuantity: 1, Unit: "sheet", UnitPrice: 55},
		"heat-kit":             {Name: "Heated Floor Kit", Coverage: 40, MinQuantity: 1, Unit: "kit", UnitPrice: 250},
		"heat-thermostat":      {Name: "Heating Thermostat", Quantity: 1, Unit: "each", UnitPrice: 180},
	},
	model.CategoryShowerBase: {
		"tile-base":            {Name: "Tile Shower Base", Hours: 4, Rate: RateTile},
		"build-curb":           {Name: "Build Curb", Hours: 2, Rate: RateCarpentry},
		"curbless-entry":       {Name: "Form Curbless Entry", Hours: 3, Rate: RateCarpentry},
		"drain-regular":        {Name: "Install Regular Drain", Hours: 1.5, Rate: RatePlumbing},
		"drain-linear":         {Name: "Install Linear Drain", Hours: 2.5, Rate: RatePlumbing},
		"system-schluter":      {Name: "Install Schluter Base System", Hours: 4, Rate: RateTile},
		"system-wedi":          {Name: "Install Wedi Base System", Hours: 3.5, Rate: RateTile},
		"system-liquid":        {Name: "Install Liquid Membrane Base System", Hours: 3, Rate: RateTile},
		"install-tub":          {Name: "Install Tub", Hours: 6, Rate: RatePlumbing},
		"install-acrylic-base": {Name: "Install Acrylic Base", Hours: 3, Rate: RateGeneral},
		"drain-regular-kit":    {Name: "Standard Shower Drain", Quantity: 1, Unit: "each", UnitPrice: 50},
		"drain-linear-kit":     {Name: "Linear Shower Drain", Quantity: 1, Unit: "each", UnitPrice: 180},
		"kit-schluter":         {Name: "Schluter-Kerdi Kit", Quantity: 1, Unit: "kit", UnitPrice: 800},
		"kit-wedi":             {Name: "Wedi Fundo Kit", Quantity: 1, Unit: "kit", UnitPrice: 950},
		"kit-liquid":           {Name: "Liquid Membrane Kit", Quantity: 1, Unit: "kit", UnitPrice: 120},
		"tub-unit":             {Name: "Alcove Tub", Quantity: 1, Unit: "each", UnitPrice: 650},
		"acrylic-base-unit":    {Name: "Acrylic Shower Base", Quantity: 1, Unit: "each", UnitPrice: 400},
	},
	model.CategoryShowerWalls: {
		"wall-board":          {Name: "Install Wall Board", Coverage: 30, Rate: RateCarpentry},
		"waterproof-membrane": {Name: "Apply Waterproofing Membrane", Coverage: 40, Rate: RateTile},
		"tile-install":        {Name: "Install Wall Tile", Coverage: 3, Rate: RateTile},
		"grout":               {Name: "Grout Shower Walls", Coverage: 20, Rate: RateTile},
		"niche":               {Name: "Install Tile Niche", Hours: 2.5, Rate: RateTile},
		"grab-bars":           {Name: "Install Grab Bars", Hours: 0.75, Rate: RateCarpentry},
		"tile":                {Name: "Wall Tile", Unit: "sq/ft", UnitPrice: 7.50},
		"thinset":             {Name: "Thinset Mortar", Coverage: 50, MinQuantity: 1, Unit: "bag", UnitPrice: 22},
		"grout-bag":           {Name: "Grout", Coverage: 100, MinQuantity: 1, Unit: "bag", UnitPrice: 18},
		"wall-board-panel":    {Name: "Waterproof Wall Board", Coverage: 15, MinQuantity: 1, Unit: "panel", UnitPrice: 70},
		"membrane-pail":       {Name: "Waterproofing Membrane", Coverage: 50, MinQuantity: 1, Unit: "pail", UnitPrice: 90},
		"niche-unit":          {Name: "Prefab Niche", Unit: "each", UnitPrice: 120},
		"grab-bar-unit":       {Name: "Grab Bar", Unit: "each", UnitPrice: 45},
	},
	model.CategoryFinishings: {
		"vanity":        {Name: "Install Vanity", Hours: 3, Rate: RateGeneral},
		"toilet":        {Name: "Install Toilet", Hours: 1.5, Rate: RatePlumbing},
		"accessories":   {Name: "Install Accessories", Hours: 1.5, Rate: RateGeneral},
		"mirror":        {Name: "Hang Mirror", Hours: 1, Rate: RateGeneral},
		"painting":      {Name: "Paint Bathroom", Hours: 4, Rate: RatePaint},
		"trim":          {Name: "Install Trim", Hours: 2, Rate: RateCarpentry},
		"silicone":      {Name: "Silicone and Caulking", Hours: 1.5, Rate: RateGeneral},
		"paint-gallon":  {Name: "Paint", Quantity: 2, Unit: "gallon", UnitPrice: 55},
		"silicone-tube": {Name: "Silicone", Quantity: 2, Unit: "tube", UnitPrice: 12},
	},
	model.CategoryStructural: {
		"subfloor":    {Name: "Reinforce Subfloor", Hours: 4, Rate: RateCarpentry},
		"framing":     {Name: "Frame Walls", Hours: 6, Rate: RateCarpentry},
		"blocking":    {Name: "Install Grab Bar Blocking", Hours: 1.5, Rate: RateCarpentry},
		"lumber-2x10": {Name: "2x10 Lumber", Quantity: 6, Unit: "board", UnitPrice: 18},
		"studs-2x4":   {Name: "2x4 Studs", Quantity: 12, Unit: "stud", UnitPrice: 5.50},
	},
	model.CategoryTrade: {
		"plumbing":   {Name: "Plumbing Rough-In", Hours: 8, Rate: RatePlumbing},
		"electrical": {Name: "Electrical Rough-In", Hours: 6, Rate: RateElectrical},
		"fan":        {Name: "Install Ventilation Fan", Hours: 2.5, Rate: RateElectrical},
		"fan-unit":   {Name: "Ventilation Fan", Quantity: 1, Unit: "each", UnitPrice: 220},
	},
}

// Lookup returns the template for (category, key). The second return is
// false on a miss; derivation treats a miss as "no item produced".
func Lookup(c model.Category, key string) (Template, bool) {
	entries, ok := templates[c]
	if !ok {
		return Template{}, false
	}
	t, ok := entries[key]
	return t, ok
}
