package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/BathQuote/internal/model"
)

func TestDetectCSVDelimiterComma(t *testing.T) {
	data := []byte("name,kind,hours,rate\nDemo Vanity,labor,1,65\n")
	if delim := DetectCSVDelimiter(data); delim != ',' {
		t.Errorf("expected comma, got %q", delim)
	}
}

func TestDetectCSVDelimiterSemicolon(t *testing.T) {
	data := []byte("name;kind;hours;rate\nDemo Vanity;labor;1;65\nPatch Wall;labor;2;75\n")
	if delim := DetectCSVDelimiter(data); delim != ';' {
		t.Errorf("expected semicolon, got %q", delim)
	}
}

func TestDetectCSVDelimiterTab(t *testing.T) {
	data := []byte("name\tkind\thours\nDemo Vanity\tlabor\t1\n")
	if delim := DetectCSVDelimiter(data); delim != '\t' {
		t.Errorf("expected tab, got %q", delim)
	}
}

func TestDetectColumnsWithHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Description", "Type", "Qty", "Unit Price"})
	if !hasHeader {
		t.Fatal("expected a header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Description mapped to name at 0, got %d", mapping.Name)
	}
	if mapping.Kind != 1 {
		t.Errorf("expected Type mapped to kind at 1, got %d", mapping.Kind)
	}
	if mapping.Quantity != 2 {
		t.Errorf("expected Qty mapped to quantity at 2, got %d", mapping.Quantity)
	}
	if mapping.Price != 3 {
		t.Errorf("expected Unit Price mapped to price at 3, got %d", mapping.Price)
	}
	if mapping.Hours != -1 {
		t.Errorf("expected hours unmapped, got %d", mapping.Hours)
	}
}

func TestDetectColumnsPositionalFallback(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Demo Vanity", "labor", "1", "65"})
	if hasHeader {
		t.Fatal("expected no header for a data row")
	}
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Hours != 2 || mapping.Rate != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

func TestImportCSVFromReaderMixedItems(t *testing.T) {
	csvData := `name,kind,hours,rate,quantity,unit,price,scope
Demo Vanity,labor,1,65,,,,demolition
Transition Strip,material,,,2,each,35,design
Patch Drywall,task,2,75,,,,
Grout Caulk,m,,,3,tube,"$12.50",finishing
`
	result := ImportCSVFromReader(strings.NewReader(csvData), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Labor) != 2 {
		t.Fatalf("expected 2 labor items, got %d", len(result.Labor))
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 material items, got %d", len(result.Materials))
	}

	demo := result.Labor[0]
	if demo.Name != "Demo Vanity" || demo.Hours != 1 || demo.Rate != 65 {
		t.Errorf("unexpected labor item: %+v", demo)
	}
	if demo.Scope != model.ScopeDemolition {
		t.Errorf("expected demolition scope, got %q", demo.Scope)
	}
	if demo.Source != model.SourceCustom {
		t.Errorf("expected custom source, got %v", demo.Source)
	}
	if demo.ID != "" {
		t.Error("imported items must carry no identity")
	}

	// Blank scope defaults to construction without a warning.
	patch := result.Labor[1]
	if patch.Scope != model.ScopeConstruction {
		t.Errorf("expected construction default, got %q", patch.Scope)
	}

	caulk := result.Materials[1]
	if caulk.Quantity != 3 || caulk.UnitPrice != 12.50 {
		t.Errorf("unexpected material item: %+v", caulk)
	}
}

func TestImportRowErrors(t *testing.T) {
	csvData := `name,kind,hours,rate,quantity,unit,price
,labor,1,65,,,
Bad Hours,labor,abc,65,,,
No Quantity,material,,,,each,10
Widget,gadget,,,1,each,5
Good Row,labor,2,80,,,
`
	result := ImportCSVFromReader(strings.NewReader(csvData), ',')

	if len(result.Errors) != 4 {
		t.Fatalf("expected 4 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if len(result.Labor) != 1 || result.Labor[0].Name != "Good Row" {
		t.Errorf("expected only the good row imported, got %+v", result.Labor)
	}
}

func TestImportUnknownScopeWarns(t *testing.T) {
	csvData := `name,kind,hours,rate,scope
Demo Vanity,labor,1,65,landscaping
`
	result := ImportCSVFromReader(strings.NewReader(csvData), ',')

	if len(result.Labor) != 1 {
		t.Fatalf("expected the row imported despite the odd scope, got %d", len(result.Labor))
	}
	if result.Labor[0].Scope != model.ScopeConstruction {
		t.Errorf("expected construction fallback, got %q", result.Labor[0].Scope)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown scope") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unknown-scope warning, got %v", result.Warnings)
	}
}

func TestImportHeaderWithoutNameColumn(t *testing.T) {
	csvData := `kind,hours,rate
labor,1,65
`
	result := ImportCSVFromReader(strings.NewReader(csvData), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected an error for a header missing the name column")
	}
	if !strings.Contains(result.Errors[0], "Name") {
		t.Errorf("unexpected error: %s", result.Errors[0])
	}
}

func TestImportCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.csv")
	content := "name;kind;hours;rate\nDemo Vanity;labor;1;65\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Labor) != 1 {
		t.Fatalf("expected 1 labor item, got %d", len(result.Labor))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSVMissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

func TestImportFileDispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.csv")
	if err := os.WriteFile(path, []byte("name,kind,hours\nX,labor,1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result := ImportFile(path)
	if len(result.Labor) != 1 {
		t.Errorf("expected the CSV branch to import 1 item, got %d", len(result.Labor))
	}
}
