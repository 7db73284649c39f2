package engine

import "github.com/piwi3910/BathQuote/internal/model"

// ReconcileLabor merges freshly derived labor into the previously stored
// list:
//
//   - A derived item whose identity already exists keeps the stored hourly
//     rate (the user-editable field) while every other field refreshes to
//     the derived values.
//   - A derived item with no counterpart is inserted as-is.
//   - A stored calculated item with no derived counterpart is removed; its
//     triggering choice was turned off.
//   - Custom and note items pass through untouched, after the calculated
//     block, in their stored order.
func ReconcileLabor(previous, derived []model.LaborItem) []model.LaborItem {
	prevRate := make(map[string]float64, len(previous))
	for _, p := range previous {
		if p.Source == model.SourceCalculated {
			prevRate[p.ID] = p.Rate
		}
	}

	next := make([]model.LaborItem, 0, len(previous)+len(derived))
	for _, d := range derived {
		if rate, ok := prevRate[d.ID]; ok {
			d.Rate = rate
		}
		next = append(next, d)
	}
	for _, p := range previous {
		if p.Source != model.SourceCalculated {
			next = append(next, p)
		}
	}
	return next
}

// ReconcileMaterials is the material counterpart of ReconcileLabor; the
// preserved user-editable field is the unit price.
func ReconcileMaterials(previous, derived []model.MaterialItem) []model.MaterialItem {
	prevPrice := make(map[string]float64, len(previous))
	for _, p := range previous {
		if p.Source == model.SourceCalculated {
			prevPrice[p.ID] = p.UnitPrice
		}
	}

	next := make([]model.MaterialItem, 0, len(previous)+len(derived))
	for _, d := range derived {
		if price, ok := prevPrice[d.ID]; ok {
			d.UnitPrice = price
		}
		next = append(next, d)
	}
	for _, p := range previous {
		if p.Source != model.SourceCalculated {
			next = append(next, p)
		}
	}
	return next
}

// flatFeeRuleKey names the single flat-fee slot of a category.
const flatFeeRuleKey = "flat-fee"

// EnterFlatFee switches a section into flat-fee mode as one atomic
// transition: all calculated labor is removed and exactly one flat-fee item
// is inserted. The fee is seeded from the last known flat fee, or failing
// that from the labor total being replaced.
func EnterFlatFee(c model.Category, sec *model.CategorySection) {
	if sec.Mode == model.ModeFlatFee {
		return
	}

	fee := sec.PreviousFlatFee
	if fee == nil {
		var laborTotal float64
		for _, li := range sec.Labor {
			if li.Source == model.SourceCalculated {
				laborTotal += li.Total()
			}
		}
		fee = &model.FlatFeeItem{
			ID:    model.CalculatedID(c, flatFeeRuleKey),
			Name:  c.DisplayName() + " Flat Fee",
			Price: laborTotal,
		}
	}

	kept := make([]model.LaborItem, 0, len(sec.Labor))
	for _, li := range sec.Labor {
		if li.Source != model.SourceCalculated {
			kept = append(kept, li)
		}
	}
	sec.Labor = kept
	sec.FlatFee = fee
	sec.Mode = model.ModeFlatFee
}

// LeaveFlatFee switches a section back to metered mode, remembering the fee
// for a later re-entry. The caller re-derives calculated items from the
// current choices immediately afterwards.
func LeaveFlatFee(sec *model.CategorySection) {
	if sec.Mode != model.ModeFlatFee {
		return
	}
	sec.PreviousFlatFee = sec.FlatFee
	sec.FlatFee = nil
	sec.Mode = model.ModeMetered
}
