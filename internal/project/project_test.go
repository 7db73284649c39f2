package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BathQuote/internal/model"
)

func TestSaveLoadEstimate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "smith.json")

	est := model.NewEstimate("Smith Bathroom")
	est.FloorMeasure = model.Measurement{Width: 60, Length: 96}
	est.FloorDesign.Pattern = model.PatternHerringbone
	est.Demolition.RemoveTub = true
	sec := est.Section(model.CategoryFloors)
	sec.Labor = []model.LaborItem{
		{ID: "floors/tile-install", RuleKey: "tile-install", Name: "Install Floor Tile (Herringbone)",
			Hours: 10, Rate: 95, Scope: model.ScopeDesign, Source: model.SourceCalculated},
	}

	if err := SaveEstimate(path, est); err != nil {
		t.Fatalf("failed to save estimate: %v", err)
	}

	loaded, err := LoadEstimate(path)
	if err != nil {
		t.Fatalf("failed to load estimate: %v", err)
	}

	if loaded.Name != "Smith Bathroom" {
		t.Errorf("expected name preserved, got %q", loaded.Name)
	}
	if loaded.FloorDesign.Pattern != model.PatternHerringbone {
		t.Errorf("expected pattern preserved, got %q", loaded.FloorDesign.Pattern)
	}
	if !loaded.Demolition.RemoveTub {
		t.Error("expected demolition toggle preserved")
	}
	got := loaded.Section(model.CategoryFloors)
	if len(got.Labor) != 1 {
		t.Fatalf("expected 1 labor item, got %d", len(got.Labor))
	}
	if got.Labor[0].Source != model.SourceCalculated {
		t.Errorf("expected source preserved through JSON, got %v", got.Labor[0].Source)
	}
	if got.Labor[0].ID != "floors/tile-install" {
		t.Errorf("expected identity preserved, got %q", got.Labor[0].ID)
	}
}

func TestSaveEstimateNil(t *testing.T) {
	if err := SaveEstimate(filepath.Join(t.TempDir(), "x.json"), nil); err == nil {
		t.Error("expected an error for a nil estimate")
	}
}

func TestLoadEstimateNormalizesOldFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.json")

	// A file written before some categories existed.
	old := []byte(`{"name": "Legacy", "sections": {"floors": {"labor": null}}}`)
	if err := os.WriteFile(path, old, 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadEstimate(path)
	if err != nil {
		t.Fatalf("failed to load estimate: %v", err)
	}
	for _, c := range model.AllCategories {
		sec := loaded.Section(c)
		if sec.Mode != model.ModeMetered {
			t.Errorf("%s: expected metered mode filled in, got %q", c, sec.Mode)
		}
		if sec.Labor == nil || sec.Materials == nil {
			t.Errorf("%s: expected non-nil collections", c)
		}
	}
}

func TestLoadEstimateMissingFile(t *testing.T) {
	if _, err := LoadEstimate(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSaveLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	config := model.DefaultAppConfig()
	config.HourlyRates["tile"] = 105
	config.RecentEstimates = []string{"/tmp/smith.json"}

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.HourlyRates["tile"] != 105 {
		t.Errorf("expected rate override preserved, got %.2f", loaded.HourlyRates["tile"])
	}
	if len(loaded.RecentEstimates) != 1 {
		t.Errorf("expected recent estimates preserved, got %v", loaded.RecentEstimates)
	}
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("expected defaults for a missing file, got error: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if loaded.Currency != defaults.Currency {
		t.Errorf("expected default currency %q, got %q", defaults.Currency, loaded.Currency)
	}
}

func TestExportImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup", "all.json")

	config := model.DefaultAppConfig()
	config.HourlyRates["plumbing"] = 130

	est := model.NewEstimate("Backup Test")
	est.Trade.VentilationFan = true

	if err := ExportAllData(path, config, []model.Estimate{*est}); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if backup.Config.HourlyRates["plumbing"] != 130 {
		t.Error("expected config rates preserved")
	}
	if len(backup.Estimates) != 1 || backup.Estimates[0].Name != "Backup Test" {
		t.Fatalf("expected one estimate named Backup Test, got %v", backup.Estimates)
	}
	// Imported estimates come back normalized.
	sec := backup.Estimates[0].Section(model.CategoryTrade)
	if sec.Labor == nil || sec.Materials == nil {
		t.Error("expected normalized collections on imported estimates")
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"estimates": []}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected an error for a backup without a version")
	}
}
