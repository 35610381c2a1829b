package excel

import (
	"errors"
	"fmt"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrInvalidColumnName is returned when a label is malformed or decodes
// outside the int64 range.
var ErrInvalidColumnName = errors.New("invalid column name")

// ColumnName returns the label of a signed column index.
//
//	0 → "A", 25 → "Z", 26 → "AA", 702 → "AAA"
//	-1 → "nA", -26 → "nZ", -27 → "nAA"
//
// Negative indices mirror non-negative ones shifted by one (-1 mirrors 0), so
// there is no "negative zero" and math.MinInt64 maps onto math.MaxInt64.
func ColumnName(n int64) string {
	negative := n < 0
	if negative {
		n = -(n + 1)
	}

	// 14 letters cover MaxInt64, plus the sign.
	buf := make([]byte, 0, 15)
	for {
		buf = append(buf, letters[n%26])
		n /= 26
		if n <= 0 {
			break
		}
		n--
	}
	if negative {
		buf = append(buf, 'n')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnFromName decodes a label produced by ColumnName. The second result is
// false if s is not a well-formed label or is out of range.
func ColumnFromName(s string) (int64, bool) {
	negative := false
	if len(s) > 0 && s[0] == 'n' {
		negative = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	ret, ok := digit(s[0])
	if !ok {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		d, ok := digit(s[i])
		if !ok {
			return 0, false
		}
		if ret, ok = checkedAdd(ret, 1); !ok {
			return 0, false
		}
		if ret, ok = checkedMul(ret, 26); !ok {
			return 0, false
		}
		if ret, ok = checkedAdd(ret, d); !ok {
			return 0, false
		}
	}

	if negative {
		ret = -ret - 1
	}
	return ret, true
}

// ParseColumnName is ColumnFromName for callers that propagate errors.
func ParseColumnName(s string) (int64, error) {
	n, ok := ColumnFromName(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumnName, s)
	}
	return n, nil
}

func digit(c byte) (int64, bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int64(c - 'A'), true
}
