// Package session owns the mutable estimate state between engine
// invocations. The engine is pure and remembers nothing; the store passes
// the previously stored items in explicitly on every recalculation and
// keeps whatever the engine returns. Custom item identity is minted here,
// never inside the engine.
package session

import (
	"github.com/google/uuid"

	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/engine"
	"github.com/piwi3910/BathQuote/internal/model"
)

// Store wraps one estimate and the rates it is priced with.
type Store struct {
	Estimate *model.Estimate
	Rates    catalog.Rates
}

// NewStore creates a store around a fresh estimate with default rates.
func NewStore(name string) *Store {
	return &Store{
		Estimate: model.NewEstimate(name),
		Rates:    catalog.DefaultRates(),
	}
}

// Open wraps an existing estimate, typically one loaded from disk.
// A nil rates table falls back to the defaults.
func Open(est *model.Estimate, rates catalog.Rates) *Store {
	if rates == nil {
		rates = catalog.DefaultRates()
	}
	return &Store{Estimate: est, Rates: rates}
}

// Recalculate runs derive then reconcile for one category and stores the
// result. In flat-fee mode no calculated labor exists, so only materials
// re-derive.
func (s *Store) Recalculate(c model.Category) {
	sec := s.Estimate.Section(c)
	labor, materials := engine.Derive(s.Estimate, c, s.Rates)
	if sec.Mode == model.ModeFlatFee {
		labor = nil
	}
	sec.Labor = engine.ReconcileLabor(sec.Labor, labor)
	sec.Materials = engine.ReconcileMaterials(sec.Materials, materials)
}

// RecalculateAll recalculates every category.
func (s *Store) RecalculateAll() {
	for _, c := range model.AllCategories {
		s.Recalculate(c)
	}
}

// SetMode flips a category's pricing mode as an atomic transition. Entering
// flat-fee mode replaces calculated labor with one fee item; leaving it
// re-derives calculated items from the current choices.
func (s *Store) SetMode(c model.Category, mode model.PricingMode) {
	sec := s.Estimate.Section(c)
	if sec.Mode == mode {
		return
	}
	if mode == model.ModeFlatFee {
		engine.EnterFlatFee(c, sec)
		s.Recalculate(c)
	} else {
		engine.LeaveFlatFee(sec)
		s.Recalculate(c)
	}
}

// EditFlatFee updates the negotiated amount for a flat-fee category.
// Returns false when the category is not in flat-fee mode.
func (s *Store) EditFlatFee(c model.Category, name string, price float64) bool {
	sec := s.Estimate.Section(c)
	if sec.Mode != model.ModeFlatFee || sec.FlatFee == nil {
		return false
	}
	if name != "" {
		sec.FlatFee.Name = name
	}
	sec.FlatFee.Price = price
	return true
}

// newCustomID mints an identity for a user-created item. The engine never
// generates identity; only the session layer does.
func newCustomID() string {
	return model.CustomID(uuid.New().String()[:8])
}

// AddCustomLabor appends a user-created labor item to a category and
// returns it. Custom items are never touched by re-derivation.
func (s *Store) AddCustomLabor(c model.Category, name string, hours, rate float64, scope model.Scope) model.LaborItem {
	item := model.LaborItem{
		ID:     newCustomID(),
		Name:   name,
		Hours:  hours,
		Rate:   rate,
		Scope:  scope,
		Source: model.SourceCustom,
	}
	sec := s.Estimate.Section(c)
	sec.Labor = append(sec.Labor, item)
	return item
}

// AddCustomMaterial appends a user-created material item to a category.
func (s *Store) AddCustomMaterial(c model.Category, name string, qty float64, unit string, unitPrice float64, scope model.Scope) model.MaterialItem {
	item := model.MaterialItem{
		ID:        newCustomID(),
		Name:      name,
		Quantity:  qty,
		Unit:      unit,
		UnitPrice: unitPrice,
		Scope:     scope,
		Source:    model.SourceCustom,
	}
	sec := s.Estimate.Section(c)
	sec.Materials = append(sec.Materials, item)
	return item
}

// AddNote appends a free-form note line to a category's labor list.
// Notes never price and survive every recalculation.
func (s *Store) AddNote(c model.Category, text string) model.LaborItem {
	item := model.LaborItem{
		ID:     newCustomID(),
		Name:   text,
		Source: model.SourceNote,
	}
	sec := s.Estimate.Section(c)
	sec.Labor = append(sec.Labor, item)
	return item
}

// AddImported appends imported line items to a category, assigning each a
// custom identity. Imported items behave exactly like hand-entered ones.
func (s *Store) AddImported(c model.Category, labor []model.LaborItem, materials []model.MaterialItem) {
	sec := s.Estimate.Section(c)
	for _, li := range labor {
		li.ID = newCustomID()
		li.Source = model.SourceCustom
		sec.Labor = append(sec.Labor, li)
	}
	for _, mi := range materials {
		mi.ID = newCustomID()
		mi.Source = model.SourceCustom
		sec.Materials = append(sec.Materials, mi)
	}
}

// EditLaborRate sets the hourly rate on a labor item by identity.
// The edit survives later re-derivations of the same rule.
func (s *Store) EditLaborRate(c model.Category, id string, rate float64) bool {
	sec := s.Estimate.Section(c)
	for i := range sec.Labor {
		if sec.Labor[i].ID == id {
			sec.Labor[i].Rate = rate
			return true
		}
	}
	return false
}

// EditMaterialPrice sets the unit price on a material item by identity.
func (s *Store) EditMaterialPrice(c model.Category, id string, price float64) bool {
	sec := s.Estimate.Section(c)
	for i := range sec.Materials {
		if sec.Materials[i].ID == id {
			sec.Materials[i].UnitPrice = price
			return true
		}
	}
	return false
}

// RemoveLabor deletes a user-created labor item by identity. Calculated
// items belong to derivation; deleting one here would only see it come back
// on the next recalculation, so the store refuses.
func (s *Store) RemoveLabor(c model.Category, id string) bool {
	sec := s.Estimate.Section(c)
	for i, li := range sec.Labor {
		if li.ID == id && li.Source != model.SourceCalculated {
			sec.Labor = append(sec.Labor[:i], sec.Labor[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMaterial deletes a user-created material item by identity.
func (s *Store) RemoveMaterial(c model.Category, id string) bool {
	sec := s.Estimate.Section(c)
	for i, mi := range sec.Materials {
		if mi.ID == id && mi.Source != model.SourceCalculated {
			sec.Materials = append(sec.Materials[:i], sec.Materials[i+1:]...)
			return true
		}
	}
	return false
}

// ResetCategory restores one category's choices to defaults and
// recalculates. Derived items disappear with their triggering choices;
// custom items and notes stay.
func (s *Store) ResetCategory(c model.Category) {
	s.Estimate.ResetChoices(c)
	s.Recalculate(c)
}

// Totals aggregates the wrapped estimate.
func (s *Store) Totals() engine.EstimateTotals {
	return engine.Totals(s.Estimate)
}
