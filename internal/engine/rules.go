// Package engine implements the derivation and reconciliation core of the
// estimate: pure functions that map a category's measurements and choices to
// priced labor and material items, merge re-derivations into previously
// stored items without disturbing user edits, and aggregate totals. The
// engine holds no state between calls; all previous state is passed in by
// the caller.
package engine

import (
	"math"

	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/model"
)

// laborRule pairs an activation predicate with an item producer. Each
// category declares one table of labor rules and collectLabor evaluates
// every table the same way, so "if choice then item" logic lives in data
// instead of per-category branching.
type laborRule[I any] struct {
	key  string
	when func(I) bool
	item func(I) (model.LaborItem, bool)
}

// materialRule is the material counterpart of laborRule.
type materialRule[I any] struct {
	key  string
	when func(I) bool
	item func(I) (model.MaterialItem, bool)
}

// collectLabor evaluates a category's labor rule table in order. Inactive
// rules and producers that decline (catalog misses) contribute nothing.
// Every produced item gets its deterministic identity, rule key, and
// calculated source stamped here so producers cannot get them wrong.
func collectLabor[I any](c model.Category, in I, rules []laborRule[I]) []model.LaborItem {
	items := make([]model.LaborItem, 0, len(rules))
	for _, r := range rules {
		if r.when != nil && !r.when(in) {
			continue
		}
		item, ok := r.item(in)
		if !ok {
			continue
		}
		item.ID = model.CalculatedID(c, r.key)
		item.RuleKey = r.key
		item.Source = model.SourceCalculated
		items = append(items, item)
	}
	return items
}

// collectMaterials evaluates a category's material rule table in order.
func collectMaterials[I any](c model.Category, in I, rules []materialRule[I]) []model.MaterialItem {
	items := make([]model.MaterialItem, 0, len(rules))
	for _, r := range rules {
		if r.when != nil && !r.when(in) {
			continue
		}
		item, ok := r.item(in)
		if !ok {
			continue
		}
		item.ID = model.CalculatedID(c, r.key)
		item.RuleKey = r.key
		item.Source = model.SourceCalculated
		items = append(items, item)
	}
	return items
}

// scaledHours is the area-scaled hour estimate with its floor of one hour:
// hours = max(1, sqft/coverage).
func scaledHours(sqft, coverage float64) float64 {
	if coverage <= 0 {
		return 0
	}
	return math.Max(1, sqft/coverage)
}

// coverageUnits converts an area into whole purchase units:
// ceil(sqft/coverage), never below the template minimum.
func coverageUnits(sqft, coverage, minQty float64) float64 {
	if coverage <= 0 {
		return minQty
	}
	n := math.Ceil(sqft / coverage)
	if n < minQty {
		n = minQty
	}
	return n
}

// laborFromCatalog builds a labor item from a catalog entry. Entries with a
// coverage rate are area-scaled; others use their fixed base hours. A
// catalog miss declines the item.
func laborFromCatalog(c model.Category, key string, rates catalog.Rates, scope model.Scope, sqft float64) (model.LaborItem, bool) {
	t, ok := catalog.Lookup(c, key)
	if !ok {
		return model.LaborItem{}, false
	}
	hours := t.Hours
	if t.Coverage > 0 {
		hours = scaledHours(sqft, t.Coverage)
	}
	return model.LaborItem{
		Name:  t.Name,
		Hours: hours,
		Rate:  rates.Rate(t.Rate),
		Scope: scope,
	}, true
}

// materialFromCatalog builds a material item from a catalog entry, deriving
// the quantity from the coverage rate when one is set.
func materialFromCatalog(c model.Category, key string, scope model.Scope, sqft float64) (model.MaterialItem, bool) {
	t, ok := catalog.Lookup(c, key)
	if !ok {
		return model.MaterialItem{}, false
	}
	qty := t.Quantity
	if t.Coverage > 0 {
		qty = coverageUnits(sqft, t.Coverage, t.MinQuantity)
	}
	return model.MaterialItem{
		Name:      t.Name,
		Quantity:  qty,
		Unit:      t.Unit,
		UnitPrice: t.UnitPrice,
		Scope:     scope,
	}, true
}
