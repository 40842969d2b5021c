package setops

import (
	"math"

	"github.com/odvcencio/ordo/pkg/compare"
	"github.com/odvcencio/ordo/pkg/omap"
)

// memberIndex is the builtin-comparator fast path: one other array,
// indexed once by the smart-comparison class of the axis the mode
// consults.
//
// Smart equality is not transitive across mixed operands (1 matches
// both true and "1.0", which do not match each other), so no sorted
// order can drive a binary search over such an array. Instead, entries
// are bucketed by numeric value and by text rendering; a probe looks up
// both buckets it could match in and verifies every candidate with the
// real comparator.
type memberIndex struct {
	mode    Mode
	entries []omap.Entry
	byNum   map[float64][]int // entries whose axis operand is numeric
	byText  map[string][]int  // every entry, under its operand's rendering
	nan     []int
}

func newMemberIndex(a *omap.Array, mode Mode) *memberIndex {
	x := &memberIndex{
		mode:    mode,
		entries: a.Entries(),
		byNum:   make(map[float64][]int),
		byText:  make(map[string][]int),
	}
	for i, e := range x.entries {
		numeric, num, text := compare.Classify(x.operand(e))
		if numeric {
			if math.IsNaN(num) {
				x.nan = append(x.nan, i)
			} else {
				x.byNum[num] = append(x.byNum[num], i)
			}
		}
		x.byText[text] = append(x.byText[text], i)
	}
	return x
}

// operand selects the part of an entry the mode's primary axis compares.
func (x *memberIndex) operand(e omap.Entry) any {
	if x.mode == Normal {
		return e.Value
	}
	return e.Key.Value()
}

func (x *memberIndex) contains(e omap.Entry) (bool, error) {
	numeric, num, text := compare.Classify(x.operand(e))
	if numeric {
		numBucket := x.byNum[num]
		if math.IsNaN(num) {
			numBucket = x.nan
		}
		if x.verify(numBucket, e) {
			return true, nil
		}
		// A numeric probe can still text-match a non-numeric entry:
		// true renders "1" and matches the number 1.
	}
	return x.verify(x.byText[text], e), nil
}

// verify applies the mode's real match predicate to each candidate.
func (x *memberIndex) verify(candidates []int, e omap.Entry) bool {
	for _, i := range candidates {
		o := x.entries[i]
		switch x.mode {
		case Normal:
			if compare.SmartValue(o.Value, e.Value) == 0 {
				return true
			}
		case Key:
			if compare.SmartKey(o.Key, e.Key) == 0 {
				return true
			}
		default:
			if compare.SmartKey(o.Key, e.Key) == 0 && compare.SmartValue(o.Value, e.Value) == 0 {
				return true
			}
		}
	}
	return false
}

// scanSet is the user-comparator fallback: pairwise scanning of one
// other array, bounded by one comparison per axis per pair.
type scanSet struct {
	arr  *omap.Array
	opts Options
}

func newScanSet(a *omap.Array, opts Options) *scanSet {
	return &scanSet{arr: a, opts: opts}
}

func (s *scanSet) contains(e omap.Entry) (bool, error) {
	for i := 0; i < s.arr.Len(); i++ {
		matched, err := matchPair(e, s.arr.At(i), s.opts)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// matchPair applies the mode's predicate to one base/other entry pair,
// routing each axis through the user comparator when one is configured.
func matchPair(e, o omap.Entry, opts Options) (bool, error) {
	if opts.Mode != Normal {
		eq, err := keyEqual(e.Key, o.Key, opts.KeyCmp)
		if err != nil || !eq {
			return false, err
		}
		if opts.Mode == Key {
			return true, nil
		}
	}
	return dataEqual(e.Value, o.Value, opts.DataCmp)
}

func keyEqual(a, b omap.Key, user compare.UserFunc) (bool, error) {
	if user != nil {
		c, err := user(a.Value(), b.Value())
		return c == 0, err
	}
	return compare.SmartKey(a, b) == 0, nil
}

func dataEqual(a, b any, user compare.UserFunc) (bool, error) {
	if user != nil {
		c, err := user(a, b)
		return c == 0, err
	}
	return compare.SmartValue(a, b) == 0, nil
}
