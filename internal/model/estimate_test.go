package model

import "testing"

func TestNewEstimateDefaults(t *testing.T) {
	est := NewEstimate("Smith Bathroom")

	if est.Name != "Smith Bathroom" {
		t.Errorf("expected name to be set, got %q", est.Name)
	}
	if est.ShowerBase.BaseType != BaseTub {
		t.Errorf("expected default base type tub, got %q", est.ShowerBase.BaseType)
	}
	if est.FloorDesign.Pattern != PatternStacked {
		t.Errorf("expected default floor pattern stacked, got %q", est.FloorDesign.Pattern)
	}
	if est.ShowerWalls.NicheCount != "0" {
		t.Errorf("expected default niche count 0, got %q", est.ShowerWalls.NicheCount)
	}

	for _, c := range AllCategories {
		sec := est.Section(c)
		if sec.Mode != ModeMetered {
			t.Errorf("%s: expected metered mode, got %q", c, sec.Mode)
		}
		if len(sec.Labor) != 0 || len(sec.Materials) != 0 {
			t.Errorf("%s: expected empty item collections", c)
		}
	}
}

func TestSectionCreatesMissingSections(t *testing.T) {
	est := &Estimate{Name: "Loaded"}
	sec := est.Section(CategoryFloors)
	if sec == nil {
		t.Fatal("expected a section for a missing category")
	}
	if sec != est.Section(CategoryFloors) {
		t.Error("expected repeated access to return the same section")
	}
}

func TestResetChoicesRestoresDefaults(t *testing.T) {
	est := NewEstimate("Test")
	est.ShowerBase.BaseType = BaseTiled
	est.ShowerBase.DrainType = DrainLinear
	est.BaseMeasure = Measurement{Width: 32, Length: 60}

	est.ResetChoices(CategoryShowerBase)

	if est.ShowerBase.BaseType != BaseTub {
		t.Errorf("expected base type reset to tub, got %q", est.ShowerBase.BaseType)
	}
	if est.BaseMeasure.TotalSquareFeet() != 0 {
		t.Error("expected base measurement cleared")
	}
}

func TestItemTotals(t *testing.T) {
	li := LaborItem{Hours: 4, Rate: 95}
	if li.Total() != 380 {
		t.Errorf("expected labor total 380, got %.2f", li.Total())
	}
	mi := MaterialItem{Quantity: 3, UnitPrice: 22}
	if mi.Total() != 66 {
		t.Errorf("expected material total 66, got %.2f", mi.Total())
	}
}

func TestIdentityNamespaces(t *testing.T) {
	calc := CalculatedID(CategoryFloors, "tile-install")
	if calc != "floors/tile-install" {
		t.Errorf("unexpected calculated identity %q", calc)
	}
	if CalculatedIDN(CategoryFloors, "tile-install", 2) != "floors/tile-install#2" {
		t.Error("unexpected disambiguated identity")
	}
	custom := CustomID("ab12cd34")
	if custom != "custom/ab12cd34" {
		t.Errorf("unexpected custom identity %q", custom)
	}
}
