package template

import "github.com/xuri/excelize/v2"

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Header returns the bold, centered, bordered style used for column labels.
func (sm *StyleManager) Header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      &excelize.Font{Family: defaultFamily, Size: defaultSize, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

const (
	defaultFamily = "Calibri"
	defaultSize   = 11
)

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
