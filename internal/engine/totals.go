package engine

import "github.com/piwi3910/BathQuote/internal/model"

// CategoryTotals holds one category's aggregated amounts.
type CategoryTotals struct {
	Labor     float64 `json:"labor"`
	Materials float64 `json:"materials"`
	Total     float64 `json:"total"`
}

// SectionTotals aggregates one section under its pricing mode. Labor and
// material subtotals always reflect the itemized lines; the category total
// is labor plus materials in metered mode, or the flat fee in flat-fee mode.
// Note lines never price.
func SectionTotals(sec *model.CategorySection) CategoryTotals {
	var t CategoryTotals
	for _, li := range sec.Labor {
		if li.Source != model.SourceNote {
			t.Labor += li.Total()
		}
	}
	for _, mi := range sec.Materials {
		if mi.Source != model.SourceNote {
			t.Materials += mi.Total()
		}
	}
	if sec.Mode == model.ModeFlatFee && sec.FlatFee != nil {
		t.Total = sec.FlatFee.Price
	} else {
		t.Total = t.Labor + t.Materials
	}
	return t
}

// EstimateTotals holds per-category and project-wide amounts.
type EstimateTotals struct {
	Categories map[model.Category]CategoryTotals `json:"categories"`
	GrandTotal float64                           `json:"grand_total"`
}

// Totals aggregates every category of the estimate.
func Totals(est *model.Estimate) EstimateTotals {
	totals := EstimateTotals{
		Categories: make(map[model.Category]CategoryTotals, len(model.AllCategories)),
	}
	for _, c := range model.AllCategories {
		ct := SectionTotals(est.Section(c))
		totals.Categories[c] = ct
		totals.GrandTotal += ct.Total
	}
	return totals
}

// ScopeSubtotals returns combined labor and material subtotals grouped by
// scope tag, computed in a single pass over each collection.
func ScopeSubtotals(sec *model.CategorySection) map[model.Scope]float64 {
	subtotals := make(map[model.Scope]float64)
	for _, li := range sec.Labor {
		if li.Source != model.SourceNote {
			subtotals[li.Scope] += li.Total()
		}
	}
	for _, mi := range sec.Materials {
		if mi.Source != model.SourceNote {
			subtotals[mi.Scope] += mi.Total()
		}
	}
	return subtotals
}
