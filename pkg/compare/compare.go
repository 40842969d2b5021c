// Package compare provides the pure 3-way comparison strategies used by
// the sorting and set-algebra engines. Every strategy is stateless and
// side-effect free; stability and direction are layered on by callers.
package compare

import (
	"errors"
	"math"
	"strings"

	"github.com/odvcencio/ordo/pkg/omap"
)

// ErrUnknownStrategy is returned when a Strategy value is out of range.
var ErrUnknownStrategy = errors.New("unknown comparison strategy")

// Strategy selects one of the builtin comparison strategies.
type Strategy int

const (
	// Smart compares numerically when both operands are numbers or
	// canonical numeric literals, and as byte sequences otherwise.
	Smart Strategy = iota
	// Numeric coerces both operands to floating point and compares
	// numerically. Coercion of a non-numeric string never fails: it
	// yields the longest valid leading numeric prefix, or 0. NaN
	// orders before every number and equals itself.
	Numeric
	// String compares the text rendering of both operands byte for byte.
	String
	// StringCI is String with ASCII case folding.
	StringCI
)

// Func is a pure 3-way comparison over two operand values. It returns a
// negative, zero, or positive result; zero is the exact equality
// predicate set-algebra matching and sort tie-break detection rely on.
type Func func(a, b any) int

// KeyFunc is a pure 3-way comparison over two keys.
type KeyFunc func(a, b omap.Key) int

// UserFunc is a caller-supplied comparator. A returned error aborts the
// whole operation it was invoked from; no partial result is produced.
type UserFunc func(a, b any) (int, error)

// SmartValue and SmartKey are the default comparators, used wherever a
// builtin comparison is implied and no strategy was named.
var (
	SmartValue Func    = smartCompare
	SmartKey   KeyFunc = func(a, b omap.Key) int { return smartCompare(a.Value(), b.Value()) }
)

// Value returns the value comparator for strategy s.
func Value(s Strategy) (Func, error) {
	switch s {
	case Smart:
		return smartCompare, nil
	case Numeric:
		return numericCompare, nil
	case String:
		return stringCompare, nil
	case StringCI:
		return stringCICompare, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// Key returns the key comparator for strategy s. Keys compare by the same
// rules as values: an integer key behaves like its int64 value, a string
// key like its string value.
func Key(s Strategy) (KeyFunc, error) {
	vf, err := Value(s)
	if err != nil {
		return nil, err
	}
	return func(a, b omap.Key) int {
		return vf(a.Value(), b.Value())
	}, nil
}

// smartCompare compares numerically when both operands are numeric: a
// number, or a string that is a canonical numeric literal. Everything
// else compares by text rendering.
func smartCompare(a, b any) int {
	oa := normalize(a)
	ob := normalize(b)
	if oa.numeric() && ob.numeric() {
		if oa.isInt && ob.isInt {
			return compareInt64(oa.i, ob.i)
		}
		return compareFloat64(oa.float(), ob.float())
	}
	return strings.Compare(oa.render(), ob.render())
}

// numericCompare coerces both operands to float64 and compares.
func numericCompare(a, b any) int {
	return compareFloat64(normalize(a).coerceFloat(), normalize(b).coerceFloat())
}

func stringCompare(a, b any) int {
	return strings.Compare(normalize(a).render(), normalize(b).render())
}

func stringCICompare(a, b any) int {
	return compareFoldASCII(normalize(a).render(), normalize(b).render())
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloat64 orders NaN before every other value and equal to
// itself, so the numeric path stays a total order.
func compareFloat64(a, b float64) int {
	aNaN := math.IsNaN(a)
	bNaN := math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFoldASCII compares two strings byte for byte with ASCII case
// folding.
func compareFoldASCII(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca := lowerASCII(a[i])
		cb := lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return compareInt64(int64(len(a)), int64(len(b)))
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
