package excel

import "fmt"

// CellName converts 0-based row and column indices to an Excel cell reference (e.g. 0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", IndexToColumn(col), row+1)
}

// IndexToColumn converts a 0-based sheet column index to Excel column letters (0→A, 25→Z, 26→AA).
// Sheet columns are never negative; use Grid for signed columns.
func IndexToColumn(n int) string {
	if n < 0 {
		panic("excel: negative sheet column")
	}
	return ColumnName(int64(n))
}

// Grid places a signed column space onto a sheet. Origin is the 0-based sheet
// column that holds signed column 0; sheet columns left of it are negative.
type Grid struct {
	Origin int
}

// Index returns the signed column shown at sheet column col.
func (g Grid) Index(col int) int64 {
	return int64(col) - int64(g.Origin)
}

// Label returns the signed label of sheet column col (e.g. Origin 2: 0→"nB", 2→"A").
func (g Grid) Label(col int) string {
	return ColumnName(g.Index(col))
}

// SheetColumn returns the 0-based sheet column holding signed column index.
func (g Grid) SheetColumn(index int64) (int, error) {
	col, ok := checkedAdd(index, int64(g.Origin))
	if !ok || col < 0 || col >= MaxSheetColumns {
		return 0, fmt.Errorf("column %s is outside the sheet (origin %d)", ColumnName(index), g.Origin)
	}
	return int(col), nil
}

// MaxSheetColumns is the column limit of an xlsx worksheet (A..XFD).
const MaxSheetColumns = 16384
