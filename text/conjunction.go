// Package text formats values for human-facing messages.
package text

import (
	"fmt"
	"strings"
)

// None is returned by JoinWithConjunction for an empty list.
const None = "(none)"

// JoinWithConjunction returns a human-friendly list of items, joined at the
// end by conjunction.
//
//	[]          → "(none)"
//	[x]         → "x"
//	[x y]       → "x and y"
//	[x y z]     → "x, y, and z"
//
// Items are rendered with fmt.Sprint, so fmt.Stringer is honoured.
func JoinWithConjunction[T any](conjunction string, items []T) string {
	switch len(items) {
	case 0:
		return None
	case 1:
		return fmt.Sprint(items[0])
	case 2:
		return fmt.Sprintf("%v %s %v", items[0], conjunction, items[1])
	}

	var sb strings.Builder
	for _, it := range items[:len(items)-1] {
		fmt.Fprintf(&sb, "%v, ", it)
	}
	sb.WriteString(conjunction)
	fmt.Fprintf(&sb, " %v", items[len(items)-1])
	return sb.String()
}
