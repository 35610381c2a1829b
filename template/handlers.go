package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/orayew2002/rast-columns/excel"
	"github.com/xuri/excelize/v2"
)

// RegisterDefaults registers the built-in column handlers ({{column}},
// {{index:LABEL}} and {{headers:START:COUNT}}) for the given grid.
func RegisterDefaults(r *Registry, grid excel.Grid) {
	RegisterColumnHandler(r, grid)
	RegisterIndexHandler(r)
	RegisterHeadersHandler(r, grid)
}

// ---------- {{column}} ----------

// RegisterColumnHandler registers {{column}}, replaced by the signed label of
// the cell's own column.
//
//	grid.Origin = 2, "{{column}}" in A5 → "nB"
func RegisterColumnHandler(r *Registry, grid excel.Grid) {
	r.Register("{{column}}", func(f *excelize.File, sheet string, row, col int, value string) error {
		return setStr(f, sheet, row, col, strings.ReplaceAll(value, "{{column}}", grid.Label(col)))
	})
}

// ---------- {{index:LABEL}} ----------

var indexPat = regexp.MustCompile(`\{\{index:([^}]*)\}\}`)

// RegisterIndexHandler registers {{index:LABEL}}, replaced by the signed index
// LABEL decodes to. A cell holding only the placeholder becomes a number.
//
//	"{{index:AA}}"      → 26
//	"col {{index:nA}}"  → "col -1"
func RegisterIndexHandler(r *Registry) {
	r.Register("{{index:", handleIndex)
}

func handleIndex(f *excelize.File, sheet string, row, col int, value string) error {
	matches := indexPat.FindAllStringSubmatch(value, -1)
	if matches == nil {
		return ErrSkip // "{{index:" without a closing brace
	}

	if len(matches) == 1 && matches[0][0] == strings.TrimSpace(value) {
		n, err := excel.ParseColumnName(matches[0][1])
		if err != nil {
			return fmt.Errorf("index handler: %w", err)
		}
		return setInt(f, sheet, row, col, n)
	}

	replaced := value
	for _, m := range matches {
		n, err := excel.ParseColumnName(m[1])
		if err != nil {
			return fmt.Errorf("index handler: %w", err)
		}
		replaced = strings.Replace(replaced, m[0], strconv.FormatInt(n, 10), 1)
	}
	return setStr(f, sheet, row, col, replaced)
}

// ---------- {{headers:START:COUNT}} ----------

var headersPat = regexp.MustCompile(`\{\{headers:(-?\d+|n?[A-Z]+):(\d+)\}\}`)

// RegisterHeadersHandler registers {{headers:START:COUNT}}. The placeholder
// cell and the COUNT-1 cells to its right receive the labels of COUNT
// consecutive columns starting at START, which is a signed integer or a label.
//
//	"{{headers:-2:4}}" → nB | nA | A | B
//	"{{headers:ZY:3}}" → ZY | ZZ | AAA
//
// The grid is only used to name the offending cell in errors.
func RegisterHeadersHandler(r *Registry, grid excel.Grid) {
	h := &headersHandler{grid: grid, styles: make(map[*excelize.File]*StyleManager)}
	r.Register("{{headers:", h.handle)
}

// headersHandler keeps one StyleManager per file so the header style is
// created once however many placeholders the file holds.
type headersHandler struct {
	grid   excel.Grid
	styles map[*excelize.File]*StyleManager
}

func (h *headersHandler) styleManager(f *excelize.File) *StyleManager {
	sm, ok := h.styles[f]
	if !ok {
		sm = NewStyleManager(f)
		h.styles[f] = sm
	}
	return sm
}

func (h *headersHandler) handle(f *excelize.File, sheet string, row, col int, value string) error {
	m := headersPat.FindStringSubmatch(value)
	if m == nil {
		return fmt.Errorf("headers handler: malformed placeholder %q at column %s", value, h.grid.Label(col))
	}

	start, err := parseStart(m[1])
	if err != nil {
		return fmt.Errorf("headers handler: %w", err)
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		return fmt.Errorf("headers handler: count: %w", err)
	}
	if count == 0 {
		return setStr(f, sheet, row, col, "")
	}
	if count > excel.MaxSheetColumns-col {
		return fmt.Errorf("headers handler: %d columns from %s exceed the sheet", count, excel.CellName(row, col))
	}

	style, err := h.styleManager(f).Header()
	if err != nil {
		return fmt.Errorf("headers handler: style: %w", err)
	}

	for i := 0; i < count; i++ {
		idx := start + int64(i)
		if idx < start {
			return fmt.Errorf("headers handler: column %d past %s overflows", i, excel.ColumnName(start))
		}
		cell := excel.CellName(row, col+i)
		if err := f.SetCellStr(sheet, cell, excel.ColumnName(idx)); err != nil {
			return fmt.Errorf("headers handler: set %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("headers handler: style %s: %w", cell, err)
		}
	}

	return nil
}

// parseStart accepts a signed integer or a column label.
func parseStart(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return excel.ParseColumnName(s)
}

// ---------- ReplaceHandler ----------

// ReplaceHandler accumulates key→value pairs and registers a single shared
// handler for all of them. Because the registry stops at the first matched
// handler per cell, sharing one handler ensures ALL pairs are replaced in one
// pass, even when a cell contains several keys at once (e.g. "{{year}} {{month}}").
//
// Usage:
//
//	rh := template.NewReplaceHandler()
//	rh.Add("{{title}}", "Ledger")
//	rh.Add("{{owner}}", "Finance")
//	rh.Register(registry)
type ReplaceHandler struct {
	pairs []replacePair
}

type replacePair struct{ key, val string }

// NewReplaceHandler creates an empty ReplaceHandler.
func NewReplaceHandler() *ReplaceHandler {
	return &ReplaceHandler{}
}

// Add appends a key→val pair. Returns h so calls can be chained.
func (h *ReplaceHandler) Add(key, val string) *ReplaceHandler {
	h.pairs = append(h.pairs, replacePair{key, val})
	return h
}

// Len reports how many pairs were added.
func (h *ReplaceHandler) Len() int {
	return len(h.pairs)
}

// Register registers h into r for every key added via Add.
func (h *ReplaceHandler) Register(r *Registry) {
	for _, p := range h.pairs {
		r.Register(p.key, h.apply)
	}
}

func (h *ReplaceHandler) apply(f *excelize.File, sheet string, row, col int, value string) error {
	replaced := value
	for _, p := range h.pairs {
		replaced = strings.ReplaceAll(replaced, p.key, p.val)
	}

	if err := setStr(f, sheet, row, col, replaced); err != nil {
		return fmt.Errorf("replace handler: %w", err)
	}
	return nil
}

// RegisterReplaceHandler is a convenience wrapper for a single key→val pair.
// For cells that contain multiple keys, use NewReplaceHandler instead.
func RegisterReplaceHandler(r *Registry, key, val string) {
	NewReplaceHandler().Add(key, val).Register(r)
}

// ---------- helpers ----------

// setStr writes value into the cell, keeping the cell's existing style.
func setStr(f *excelize.File, sheet string, row, col int, value string) error {
	cell := excel.CellName(row, col)
	styleID, _ := f.GetCellStyle(sheet, cell)

	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return restoreStyle(f, sheet, cell, styleID)
}

// setInt writes n into the cell as a number, keeping the cell's existing style.
func setInt(f *excelize.File, sheet string, row, col int, n int64) error {
	cell := excel.CellName(row, col)
	styleID, _ := f.GetCellStyle(sheet, cell)

	if err := f.SetCellInt(sheet, cell, int(n)); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return restoreStyle(f, sheet, cell, styleID)
}

func restoreStyle(f *excelize.File, sheet, cell string, styleID int) error {
	if styleID == 0 {
		return nil
	}
	if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("restore style: %w", err)
	}
	return nil
}
