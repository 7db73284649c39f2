package model

import "fmt"

// ItemSource records how an item came to exist.
type ItemSource int

const (
	SourceCalculated ItemSource = iota // Produced by derivation from choices
	SourceCustom                       // Added manually by the user
	SourceNote                         // Free-form note line, never priced by derivation
)

func (s ItemSource) String() string {
	switch s {
	case SourceCustom:
		return "Custom"
	case SourceNote:
		return "Note"
	default:
		return "Calculated"
	}
}

// LaborItem represents one priced labor task on the estimate.
type LaborItem struct {
	ID      string     `json:"id"`
	RuleKey string     `json:"rule_key,omitempty"` // Catalog rule that produced the item; empty for custom/note
	Name    string     `json:"name"`
	Hours   float64    `json:"hours"`
	Rate    float64    `json:"rate"` // Hourly rate; the user-editable field
	Scope   Scope      `json:"scope"`
	Source  ItemSource `json:"source"`
}

// Total returns the priced amount for this labor line.
func (li LaborItem) Total() float64 {
	return li.Hours * li.Rate
}

// MaterialItem represents one material purchase on the estimate.
type MaterialItem struct {
	ID        string     `json:"id"`
	RuleKey   string     `json:"rule_key,omitempty"`
	Name      string     `json:"name"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit"`
	UnitPrice float64    `json:"unit_price"` // The user-editable field
	Scope     Scope      `json:"scope"`
	Source    ItemSource `json:"source"`
}

// Total returns the priced amount for this material line.
func (mi MaterialItem) Total() float64 {
	return mi.Quantity * mi.UnitPrice
}

// FlatFeeItem replaces itemized labor when a category is in flat-fee mode.
// At most one exists per category.
type FlatFeeItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CalculatedID builds the deterministic identity for a calculated item.
// The identity is a pure function of category and rule key so the
// reconciler can match old and new derivations of the same rule.
func CalculatedID(c Category, ruleKey string) string {
	return string(c) + "/" + ruleKey
}

// CalculatedIDN builds a disambiguated identity for rules that emit more
// than one item of the same kind.
func CalculatedIDN(c Category, ruleKey string, n int) string {
	return fmt.Sprintf("%s/%s#%d", c, ruleKey, n)
}

// CustomID builds the identity for a user-created item from a caller-supplied
// token. Custom identities live in their own namespace so they can never
// collide with calculated ones.
func CustomID(token string) string {
	return "custom/" + token
}
