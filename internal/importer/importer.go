// Package importer provides CSV and Excel import of custom estimate line
// items. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition, so a contractor can
// pull a price list straight out of a spreadsheet.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/BathQuote/internal/model"
)

// ImportResult holds the results of an import operation. Imported items
// carry no identity; the session store assigns custom IDs when they are
// added to an estimate.
type ImportResult struct {
	Labor     []model.LaborItem
	Materials []model.MaterialItem
	Errors    []string
	Warnings  []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Kind     int
	Hours    int
	Rate     int
	Quantity int
	Unit     int
	Price    int
	Scope    int
}

// headerAliases maps canonical column names to their accepted aliases (all
// lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "item", "task", "label", "description", "desc"},
	"kind":     {"kind", "type", "category", "item type"},
	"hours":    {"hours", "hrs", "time", "labor hours"},
	"rate":     {"rate", "hourly rate", "hourly", "rate/hr"},
	"quantity": {"quantity", "qty", "count", "amount", "units"},
	"unit":     {"unit", "uom", "measure", "per"},
	"price":    {"price", "unit price", "cost", "unit cost", "each"},
	"scope":    {"scope", "phase", "group"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent multi-column split across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, Kind: -1, Hours: -1, Rate: -1,
		Quantity: -1, Unit: -1, Price: -1, Scope: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "name":
					if mapping.Name == -1 {
						mapping.Name = i
					}
				case "kind":
					if mapping.Kind == -1 {
						mapping.Kind = i
					}
				case "hours":
					if mapping.Hours == -1 {
						mapping.Hours = i
					}
				case "rate":
					if mapping.Rate == -1 {
						mapping.Rate = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				case "unit":
					if mapping.Unit == -1 {
						mapping.Unit = i
					}
				case "price":
					if mapping.Price == -1 {
						mapping.Price = i
					}
				case "scope":
					if mapping.Scope == -1 {
						mapping.Scope = i
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Name, Kind, Hours, Rate, Quantity, Unit, Price, Scope
		return ColumnMapping{
			Name: 0, Kind: 1, Hours: 2, Rate: 3,
			Quantity: 4, Unit: 5, Price: 6, Scope: 7,
		}, false
	}

	return mapping, true
}

// parseScope converts a scope string to a model.Scope value.
// It returns the scope and whether the string was recognized.
func parseScope(s string) (model.Scope, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "design":
		return model.ScopeDesign, true
	case "construction", "":
		return model.ScopeConstruction, true
	case "demolition", "demo":
		return model.ScopeDemolition, true
	case "finishing", "finishings":
		return model.ScopeFinishing, true
	case "structural":
		return model.ScopeStructural, true
	case "trade":
		return model.ScopeTrade, true
	default:
		return model.ScopeConstruction, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow extracts one labor or material item from a row using the given
// column mapping. Exactly one of the returned items is set on success.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (*model.LaborItem, *model.MaterialItem, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		return nil, nil, fmt.Sprintf("%s: Missing item name", rowLabel), ""
	}

	kind := strings.ToLower(getCell(row, mapping.Kind))
	if kind == "" {
		kind = "labor"
	}

	var warning string
	scope, ok := parseScope(getCell(row, mapping.Scope))
	if !ok {
		warning = fmt.Sprintf("%s: Unknown scope '%s', defaulting to construction", rowLabel, getCell(row, mapping.Scope))
	}

	switch kind {
	case "labor", "l", "task":
		hoursStr := getCell(row, mapping.Hours)
		if hoursStr == "" {
			return nil, nil, fmt.Sprintf("%s: Missing hours value", rowLabel), ""
		}
		hours, err := strconv.ParseFloat(hoursStr, 64)
		if err != nil || hours <= 0 {
			return nil, nil, fmt.Sprintf("%s: Invalid hours '%s'", rowLabel, hoursStr), ""
		}
		rate := model.ParseAmount(getCell(row, mapping.Rate))
		item := model.LaborItem{
			Name:   name,
			Hours:  hours,
			Rate:   rate,
			Scope:  scope,
			Source: model.SourceCustom,
		}
		return &item, nil, "", warning
	case "material", "m", "purchase":
		qtyStr := getCell(row, mapping.Quantity)
		if qtyStr == "" {
			return nil, nil, fmt.Sprintf("%s: Missing quantity value", rowLabel), ""
		}
		qty, err := strconv.ParseFloat(qtyStr, 64)
		if err != nil || qty <= 0 {
			return nil, nil, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
		unit := getCell(row, mapping.Unit)
		if unit == "" {
			unit = "each"
		}
		item := model.MaterialItem{
			Name:      name,
			Quantity:  qty,
			Unit:      unit,
			UnitPrice: model.ParseAmount(getCell(row, mapping.Price)),
			Scope:     scope,
			Source:    model.SourceCustom,
		}
		return nil, &item, "", warning
	default:
		return nil, nil, fmt.Sprintf("%s: Unknown item kind '%s'", rowLabel, kind), ""
	}
}

// ImportCSV imports line items from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports line items from a CSV reader with a specific
// delimiter. Useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports line items from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches to the CSV or Excel importer by file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into items.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		if mapping.Name == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Name")
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		labor, material, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		if labor != nil {
			result.Labor = append(result.Labor, *labor)
		}
		if material != nil {
			result.Materials = append(result.Materials, *material)
		}
	}

	return result
}
