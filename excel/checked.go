package excel

import "golang.org/x/exp/constraints"

// checkedAdd returns a+b and false if the sum overflowed T.
func checkedAdd[T constraints.Signed](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

// checkedMul returns a*b and false if the product overflowed T.
func checkedMul[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) {
		return c, false
	}
	if c/b != a {
		return c, false
	}
	return c, true
}
