// Package export provides functionality for exporting estimates to file
// formats the client can review.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/BathQuote/internal/engine"
	"github.com/piwi3910/BathQuote/internal/model"
)

const summarySheet = "Summary"

// ExportExcel writes the estimate to an xlsx workbook: a summary sheet with
// per-category and grand totals, then one sheet per non-empty category
// listing its labor and material lines with scope subtotals. Amounts are
// plain numbers; currency formatting is left to the spreadsheet.
func ExportExcel(path string, est *model.Estimate) error {
	if est == nil {
		return fmt.Errorf("no estimate to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create bold style: %w", err)
	}

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}
	if err := writeSummary(f, est, headerStyle, boldStyle); err != nil {
		return err
	}

	for _, c := range model.AllCategories {
		sec := est.Section(c)
		if len(sec.Labor) == 0 && len(sec.Materials) == 0 && sec.FlatFee == nil {
			continue
		}
		if err := writeCategory(f, c, sec, headerStyle, boldStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, est *model.Estimate, headerStyle, boldStyle int) error {
	totals := engine.Totals(est)

	title := est.Name
	if title == "" {
		title = "Estimate"
	}
	if err := f.SetCellValue(summarySheet, "A1", title); err != nil {
		return fmt.Errorf("write summary title: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", boldStyle); err != nil {
		return fmt.Errorf("style summary title: %w", err)
	}

	headers := []string{"Category", "Labor", "Materials", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return fmt.Errorf("write summary header: %w", err)
		}
		if err := f.SetCellStyle(summarySheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style summary header: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 18); err != nil {
		return fmt.Errorf("set summary col width: %w", err)
	}

	row := 4
	for _, c := range model.AllCategories {
		ct := totals.Categories[c]
		values := []interface{}{c.DisplayName(), ct.Labor, ct.Materials, ct.Total}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("write summary row: %w", err)
			}
		}
		row++
	}

	labelCell, _ := excelize.CoordinatesToCellName(1, row)
	totalCell, _ := excelize.CoordinatesToCellName(4, row)
	if err := f.SetCellValue(summarySheet, labelCell, "Grand Total"); err != nil {
		return fmt.Errorf("write grand total: %w", err)
	}
	if err := f.SetCellValue(summarySheet, totalCell, totals.GrandTotal); err != nil {
		return fmt.Errorf("write grand total: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, labelCell, totalCell, boldStyle); err != nil {
		return fmt.Errorf("style grand total: %w", err)
	}
	return nil
}

func writeCategory(f *excelize.File, c model.Category, sec *model.CategorySection, headerStyle, boldStyle int) error {
	sheet := c.DisplayName()
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 36); err != nil {
		return fmt.Errorf("set col width %s: %w", sheet, err)
	}

	row := 1
	if sec.Mode == model.ModeFlatFee && sec.FlatFee != nil {
		if err := setRow(f, sheet, row, boldStyle, sec.FlatFee.Name, "", "", sec.FlatFee.Price); err != nil {
			return err
		}
		row += 2
	}

	if len(sec.Labor) > 0 {
		if err := setRow(f, sheet, row, headerStyle, "Labor", "Hours", "Rate", "Total"); err != nil {
			return err
		}
		row++
		for _, li := range sec.Labor {
			if err := setRow(f, sheet, row, 0, li.Name, li.Hours, li.Rate, li.Total()); err != nil {
				return err
			}
			row++
		}
		row++
	}

	if len(sec.Materials) > 0 {
		if err := setRow(f, sheet, row, headerStyle, "Materials", "Quantity", "Unit Price", "Total"); err != nil {
			return err
		}
		row++
		for _, mi := range sec.Materials {
			name := mi.Name
			if mi.Unit != "" {
				name = fmt.Sprintf("%s (%s)", mi.Name, mi.Unit)
			}
			if err := setRow(f, sheet, row, 0, name, mi.Quantity, mi.UnitPrice, mi.Total()); err != nil {
				return err
			}
			row++
		}
		row++
	}

	subtotals := engine.ScopeSubtotals(sec)
	if len(subtotals) > 0 {
		if err := setRow(f, sheet, row, headerStyle, "Scope", "", "", "Subtotal"); err != nil {
			return err
		}
		row++
		// Iterate scopes in a fixed order so workbooks are reproducible.
		for _, scope := range []model.Scope{
			model.ScopeDesign, model.ScopeConstruction, model.ScopeDemolition,
			model.ScopeFinishing, model.ScopeStructural, model.ScopeTrade,
		} {
			amount, ok := subtotals[scope]
			if !ok {
				continue
			}
			if err := setRow(f, sheet, row, 0, string(scope), "", "", amount); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// setRow writes up to four cells on one row, optionally applying a style
// across them. Empty string values leave the cell blank.
func setRow(f *excelize.File, sheet string, row, style int, values ...interface{}) error {
	for i, v := range values {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, row, err)
		}
	}
	if style != 0 {
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(values), row)
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return fmt.Errorf("style %s row %d: %w", sheet, row, err)
		}
	}
	return nil
}
