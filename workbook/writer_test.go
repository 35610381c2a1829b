package workbook

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"github.com/orayew2002/rast-columns/domain"
	"github.com/orayew2002/rast-columns/excel"
)

func TestWriteToBytes(t *testing.T) {
	cols := domain.Columns(-2, 4)
	cols[0].Title = "left"
	cols[2].Title = "zero"

	data, err := WriteToBytes(cols, Options{Grid: excel.Grid{Origin: 2}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"nB", "nA", "A", "B"}, rows[0])
	assert.Equal(t, []string{"left", "", "zero"}, rows[1])

	width, err := f.GetColWidth(DefaultSheet, "D")
	require.NoError(t, err)
	assert.Equal(t, float64(columnWidth), width)
}

func TestWriteToBytesColumnLeftOfSheet(t *testing.T) {
	_, err := WriteToBytes(domain.Columns(-3, 1), Options{Grid: excel.Grid{Origin: 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write headers")
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.xlsx")
	require.NoError(t, WriteToFile(domain.GenerateColumns(700, 3), Options{Grid: excel.Grid{Origin: -700}, Sheet: "Columns"}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Columns"}, f.GetSheetList())
	for cell, want := range map[string]string{"A1": "ZY", "B1": "ZZ", "C1": "AAA"} {
		got, err := f.GetCellValue("Columns", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
	title, err := f.GetCellValue("Columns", "A2")
	require.NoError(t, err)
	assert.NotEmpty(t, title)
}
