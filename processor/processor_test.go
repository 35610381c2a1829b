package processor

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/orayew2002/rast-columns/excel"
	"github.com/orayew2002/rast-columns/template"
)

func templateBytes(t *testing.T, cells map[string]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellStr("Sheet1", cell, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestProcessBytes(t *testing.T) {
	r := template.New()
	template.RegisterDefaults(r, excel.Grid{Origin: 1})
	template.RegisterReplaceHandler(r, "{{title}}", "Columns")

	core, logs := observer.New(zap.DebugLevel)
	p := New(r, zap.New(core))

	data := templateBytes(t, map[string]string{
		"A1": "{{title}}",
		"A2": "{{column}}",
		"B2": "{{column}}",
		"A3": "{{index:ZZ}}",
		"A4": "{{headers:nA:3}}",
		"C5": "untouched",
		"D5": "{{index:AB",
	})

	out, err := p.ProcessBytes(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	for cell, want := range map[string]string{
		"A1": "Columns",
		"A2": "nA",
		"B2": "A",
		"A3": "701",
		"A4": "nA",
		"B4": "A",
		"C4": "B",
		"C5": "untouched",
		"D5": "{{index:AB",
	} {
		got, err := f.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	assert.Equal(t, 5, logs.FilterMessage("cell rewritten").Len())
	require.Equal(t, 1, logs.FilterMessage("sheet processed").Len())
}

func TestProcessBytesInvalidLabel(t *testing.T) {
	r := template.New()
	template.RegisterIndexHandler(r)

	_, err := New(r, nil).ProcessBytes(templateBytes(t, map[string]string{"B3": "{{index:AnZ}}"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, excel.ErrInvalidColumnName))
	assert.Contains(t, err.Error(), `sheet "Sheet1"`)
	assert.Contains(t, err.Error(), "cell B3")
}

func TestProcessBytesNotExcel(t *testing.T) {
	_, err := New(template.New(), nil).ProcessBytes([]byte("not a workbook"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open from bytes")
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xlsx")
	out := filepath.Join(dir, "out.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellStr("Sheet1", "AA1", "{{column}}"))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	r := template.New()
	template.RegisterColumnHandler(r, excel.Grid{})
	require.NoError(t, New(r, zap.NewNop()).ProcessFile(in, out))

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	got, err := res.GetCellValue("Sheet1", "AA1")
	require.NoError(t, err)
	assert.Equal(t, "AA", got)

	err = New(r, nil).ProcessFile(filepath.Join(dir, "missing.xlsx"), out)
	require.Error(t, err)
}
