package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/BathQuote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportTestEstimate() *model.Estimate {
	est := model.NewEstimate("Smith Bathroom")
	floors := est.Section(model.CategoryFloors)
	floors.Labor = []model.LaborItem{
		{ID: "floors/tile-install", Name: "Install Floor Tile (Stacked)",
			Hours: 10, Rate: 95, Scope: model.ScopeDesign, Source: model.SourceCalculated},
	}
	floors.Materials = []model.MaterialItem{
		{ID: "floors/tile", Name: "Floor Tile (12x24)", Quantity: 44, Unit: "sq/ft",
			UnitPrice: 6.50, Scope: model.ScopeDesign, Source: model.SourceCalculated},
	}
	trade := est.Section(model.CategoryTrade)
	trade.Mode = model.ModeFlatFee
	trade.FlatFee = &model.FlatFeeItem{ID: "trade/flat-fee", Name: "Trade Flat Fee", Price: 1500}
	return est
}

func TestExportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.xlsx")
	est := exportTestEstimate()

	require.NoError(t, ExportExcel(path, est))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Only the non-empty categories get their own sheet.
	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Floors")
	assert.Contains(t, sheets, "Trade")
	assert.NotContains(t, sheets, "Demolition")

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Smith Bathroom", title)

	// Category rows follow the display order starting at row 4; floors is
	// second.
	name, err := f.GetCellValue("Summary", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Floors", name)
	total, err := f.GetCellValue("Summary", "D5")
	require.NoError(t, err)
	assert.Equal(t, "1236", total) // 950 labor + 286 materials

	label, err := f.GetCellValue("Summary", "A11")
	require.NoError(t, err)
	assert.Equal(t, "Grand Total", label)
	grand, err := f.GetCellValue("Summary", "D11")
	require.NoError(t, err)
	assert.Equal(t, "2736", grand) // 1236 + 1500 flat fee

	// Floors sheet: labor header then the single line.
	header, err := f.GetCellValue("Floors", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Labor", header)
	line, err := f.GetCellValue("Floors", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Install Floor Tile (Stacked)", line)

	materialLine, err := f.GetCellValue("Floors", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Floor Tile (12x24) (sq/ft)", materialLine)

	// Trade sheet leads with the flat fee row.
	fee, err := f.GetCellValue("Trade", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Trade Flat Fee", fee)
	feeAmount, err := f.GetCellValue("Trade", "D1")
	require.NoError(t, err)
	assert.Equal(t, "1500", feeAmount)
}

func TestExportExcelNilEstimate(t *testing.T) {
	err := ExportExcel(filepath.Join(t.TempDir(), "x.xlsx"), nil)
	assert.Error(t, err)
}

func TestExportExcelEmptyEstimate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ExportExcel(path, model.NewEstimate("")))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Summary"}, f.GetSheetList())
	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Estimate", title)
}
