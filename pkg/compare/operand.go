package compare

import (
	"fmt"
	"strconv"
)

type kind int

const (
	kindNil kind = iota
	kindBool
	kindInt
	kindFloat
	kindStr
)

// operand is a value reduced to the kinds the strategies understand.
// Unsupported dynamic types degrade to their fmt rendering.
type operand struct {
	k     kind
	b     bool
	i     int64
	f     float64
	s     string
	isInt bool
}

func normalize(v any) operand {
	switch x := v.(type) {
	case nil:
		return operand{k: kindNil}
	case bool:
		return operand{k: kindBool, b: x}
	case int:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case int8:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case int16:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case int32:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case int64:
		return operand{k: kindInt, i: x, isInt: true}
	case uint:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case uint8:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case uint16:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case uint32:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case uint64:
		return operand{k: kindInt, i: int64(x), isInt: true}
	case float32:
		return operand{k: kindFloat, f: float64(x)}
	case float64:
		return operand{k: kindFloat, f: x}
	case string:
		return operand{k: kindStr, s: x}
	default:
		return operand{k: kindStr, s: fmt.Sprint(x)}
	}
}

// Classify reports how the smart strategy sees v: whether it takes the
// numeric path, its numeric value when it does, and its text rendering.
// Membership indexes bucket their candidates on this; equal operands
// always share a numeric value or a rendering, though the converse
// needs verifying with the comparator itself.
func Classify(v any) (numeric bool, num float64, text string) {
	o := normalize(v)
	if o.numeric() {
		return true, o.float(), o.render()
	}
	return false, 0, o.render()
}

// numeric reports whether the operand takes the numeric path under the
// smart strategy: a number, or a canonical numeric literal.
func (o operand) numeric() bool {
	switch o.k {
	case kindInt, kindFloat:
		return true
	case kindStr:
		return isCanonicalNumber(o.s)
	default:
		return false
	}
}

// float returns the numeric value of an operand for which numeric() is
// true. Canonical literals always parse.
func (o operand) float() float64 {
	switch o.k {
	case kindInt:
		return float64(o.i)
	case kindFloat:
		return o.f
	default:
		f, _ := strconv.ParseFloat(o.s, 64)
		return f
	}
}

// coerceFloat converts any operand to a float for the Numeric strategy.
// Strings yield their longest leading numeric prefix, or 0.
func (o operand) coerceFloat() float64 {
	switch o.k {
	case kindNil:
		return 0
	case kindBool:
		if o.b {
			return 1
		}
		return 0
	case kindInt:
		return float64(o.i)
	case kindFloat:
		return o.f
	default:
		return numericPrefix(o.s)
	}
}

// render returns the operand's text form used by the string strategies
// and by the smart strategy's non-numeric path. Integers render as
// canonical decimal, floats in shortest round-trip form, true as "1",
// false and nil as "".
func (o operand) render() string {
	switch o.k {
	case kindNil:
		return ""
	case kindBool:
		if o.b {
			return "1"
		}
		return ""
	case kindInt:
		return strconv.FormatInt(o.i, 10)
	case kindFloat:
		return strconv.FormatFloat(o.f, 'g', -1, 64)
	default:
		return o.s
	}
}
