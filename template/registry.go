package template

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// HandlerFunc rewrites one template cell.
// It receives the file, sheet name, 0-based row/col indices, and the raw cell value.
type HandlerFunc func(f *excelize.File, sheet string, row, col int, value string) error

// ErrSkip is returned by a handler that matched a pattern but left the cell
// unchanged. Process treats it as no match.
var ErrSkip = errors.New("template: cell left unchanged")

// Registry maps placeholder patterns to handlers.
type Registry struct {
	handlers []entry
}

type entry struct {
	pattern string
	handler HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a handler for the given pattern (e.g. "{{column}}").
// Handlers are checked in registration order; the first match wins.
func (r *Registry) Register(pattern string, handler HandlerFunc) {
	r.handlers = append(r.handlers, entry{pattern: pattern, handler: handler})
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Process runs the first handler whose pattern occurs in value and returns
// that pattern, or "" if nothing matched or the handler returned ErrSkip.
func (r *Registry) Process(f *excelize.File, sheet string, row, col int, value string) (string, error) {
	for _, e := range r.handlers {
		if !strings.Contains(value, e.pattern) {
			continue
		}
		if err := e.handler(f, sheet, row, col, value); err != nil {
			if errors.Is(err, ErrSkip) {
				return "", nil
			}
			return e.pattern, err
		}
		return e.pattern, nil
	}

	return "", nil
}
