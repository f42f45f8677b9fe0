package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookLayout(t *testing.T) {
	data, err := Workbook(Sheet{
		Title:     "Fuel Consumption",
		Period:    "Period: 2026-01-01 - 2026-06-30",
		Headers:   []string{"License Plate", "Liters", "Cost"},
		Rows:      [][]any{{"KZ123ABC", 120.5, 54000.0}, {"KZ456DEF", 80.0, 36000.0}},
		MoneyCols: []int{2},
		Summary:   []any{"Total", "", 90000.0},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fuel Consumption", title)

	period, err := f.GetCellValue("Report", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Period: 2026-01-01 - 2026-06-30", period)

	// headers start on row 4, data directly below
	header, err := f.GetCellValue("Report", "A4")
	require.NoError(t, err)
	assert.Equal(t, "License Plate", header)

	plate, err := f.GetCellValue("Report", "A5")
	require.NoError(t, err)
	assert.Equal(t, "KZ123ABC", plate)

	summary, err := f.GetCellValue("Report", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Total", summary)
}

func TestCSVHasBOMAndRows(t *testing.T) {
	data, err := CSV([]string{"category", "total"}, [][]string{{"fuel", "120.50"}})
	require.NoError(t, err)
	require.True(t, len(data) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Equal(t, "category,total\nfuel,120.50\n", string(data[3:]))
}
