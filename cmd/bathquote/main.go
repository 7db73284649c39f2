// BathQuote — bathroom remodel estimate calculator
//
// Loads or creates an estimate file, recalculates every category from its
// stored choices, and prints the totals. Optionally imports custom line
// items from CSV/xlsx and exports the estimate as an xlsx workbook.
//
// Build:
//
//	go build -o bathquote ./cmd/bathquote
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/piwi3910/BathQuote/internal/catalog"
	"github.com/piwi3910/BathQuote/internal/export"
	"github.com/piwi3910/BathQuote/internal/importer"
	"github.com/piwi3910/BathQuote/internal/model"
	"github.com/piwi3910/BathQuote/internal/project"
	"github.com/piwi3910/BathQuote/internal/session"
)

func main() {
	var (
		estimatePath = pflag.String("estimate", "", "path to the estimate JSON file")
		newName      = pflag.String("new", "", "create a new estimate with this name")
		importPath   = pflag.String("import", "", "import custom line items from a CSV or xlsx file")
		categoryName = pflag.String("category", "", "target category for --import")
		exportPath   = pflag.String("export", "", "export the estimate to an xlsx workbook")
		configPath   = pflag.String("config", project.DefaultConfigPath(), "path to the app config file")
		save         = pflag.Bool("save", false, "write the recalculated estimate back to --estimate")
	)
	pflag.Parse()

	if err := run(*estimatePath, *newName, *importPath, *categoryName, *exportPath, *configPath, *save); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(estimatePath, newName, importPath, categoryName, exportPath, configPath string, save bool) error {
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rates := catalog.DefaultRates().WithOverrides(config.HourlyRates)

	var store *session.Store
	switch {
	case newName != "":
		store = session.Open(model.NewEstimate(newName), rates)
	case estimatePath != "":
		est, err := project.LoadEstimate(estimatePath)
		if err != nil {
			return err
		}
		store = session.Open(est, rates)
	default:
		return fmt.Errorf("either --estimate or --new is required")
	}

	store.RecalculateAll()

	if importPath != "" {
		c, err := parseCategory(categoryName)
		if err != nil {
			return err
		}
		result := importer.ImportFile(importPath)
		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		if len(result.Errors) > 0 {
			return fmt.Errorf("import failed:\n  %s", strings.Join(result.Errors, "\n  "))
		}
		store.AddImported(c, result.Labor, result.Materials)
		fmt.Printf("Imported %d labor and %d material items into %s\n",
			len(result.Labor), len(result.Materials), c.DisplayName())
	}

	printTotals(store)

	if exportPath != "" {
		if err := export.ExportExcel(exportPath, store.Estimate); err != nil {
			return err
		}
		fmt.Println("Exported workbook to", exportPath)
	}

	if save {
		if estimatePath == "" {
			return fmt.Errorf("--save requires --estimate")
		}
		if err := project.SaveEstimate(estimatePath, store.Estimate); err != nil {
			return err
		}
		fmt.Println("Saved estimate to", estimatePath)
	}
	return nil
}

// parseCategory resolves a user-entered category name.
func parseCategory(name string) (model.Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, c := range model.AllCategories {
		if normalized == string(c) || normalized == strings.ToLower(c.DisplayName()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (use one of: %s)", name, categoryList())
}

func categoryList() string {
	names := make([]string, len(model.AllCategories))
	for i, c := range model.AllCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func printTotals(store *session.Store) {
	totals := store.Totals()

	fmt.Printf("\n%s\n", store.Estimate.Name)
	fmt.Printf("%-14s %12s %12s %12s\n", "Category", "Labor", "Materials", "Total")
	for _, c := range model.AllCategories {
		ct := totals.Categories[c]
		if ct.Total == 0 && ct.Labor == 0 && ct.Materials == 0 {
			continue
		}
		suffix := ""
		if store.Estimate.Section(c).Mode == model.ModeFlatFee {
			suffix = " (flat fee)"
		}
		fmt.Printf("%-14s %12.2f %12.2f %12.2f%s\n", c.DisplayName(), ct.Labor, ct.Materials, ct.Total, suffix)
	}
	fmt.Printf("%-14s %12s %12s %12.2f\n", "Grand Total", "", "", totals.GrandTotal)
}
