package omap

import "strconv"

// Key is the key of one array slot: either an integer position or a
// string name. The zero value is IntKey(0).
type Key struct {
	str   string
	num   int64
	isStr bool
}

// IntKey returns an integer key.
func IntKey(i int64) Key {
	return Key{num: i}
}

// StringKey returns a string key.
func StringKey(s string) Key {
	return Key{str: s, isStr: true}
}

// IsString reports whether the key is a string key.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer form of an integer key. It is 0 for string keys.
func (k Key) Int() int64 { return k.num }

// String returns the canonical text of the key: the string itself for a
// string key, the decimal rendering for an integer key.
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.FormatInt(k.num, 10)
}

// Value returns the key's native value, int64 or string. This is the
// operand form handed to user-supplied comparators.
func (k Key) Value() any {
	if k.isStr {
		return k.str
	}
	return k.num
}
