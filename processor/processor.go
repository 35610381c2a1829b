package processor

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/orayew2002/rast-columns/excel"
	"github.com/orayew2002/rast-columns/template"
)

// Processor applies registered template handlers to Excel files.
type Processor struct {
	registry *template.Registry
	logger   *zap.Logger
}

// New creates a Processor with the given template registry.
// A nil logger discards all output.
func New(registry *template.Registry, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{registry: registry, logger: logger}
}

// ProcessFile opens the input Excel file, processes all sheets and saves the
// result to output.
func (p *Processor) ProcessFile(input, output string) error {
	f, err := excelize.OpenFile(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	if err := p.process(f); err != nil {
		return err
	}

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	p.logger.Info("workbook written", zap.String("input", input), zap.String("output", output))
	return nil
}

// ProcessBytes reads an Excel file from raw bytes, processes all sheets,
// and returns the resulting file as bytes.
func (p *Processor) ProcessBytes(data []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open from bytes: %w", err)
	}
	defer f.Close()

	if err := p.process(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func (p *Processor) process(f *excelize.File) error {
	for _, sheet := range f.GetSheetList() {
		n, err := p.processSheet(f, sheet)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		p.logger.Debug("sheet processed", zap.String("sheet", sheet), zap.Int("cells", n))
	}
	return nil
}

// processSheet returns the number of cells a handler rewrote.
func (p *Processor) processSheet(f *excelize.File, sheet string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("get rows: %w", err)
	}

	handled := 0
	for row := range rows {
		for col := range rows[row] {
			value := rows[row][col]
			if value == "" {
				continue
			}

			pattern, err := p.registry.Process(f, sheet, row, col, value)
			cell := excel.CellName(row, col)
			if err != nil {
				return handled, fmt.Errorf("cell %s: %w", cell, err)
			}
			if pattern != "" {
				handled++
				p.logger.Debug("cell rewritten", zap.String("cell", cell), zap.String("pattern", pattern))
			}
		}
	}

	return handled, nil
}
