// Package setops computes diff and intersect across ordered arrays. The
// result is always an order-preserving filtered subsequence of the base
// array: entries keep their original keys and values and are never
// re-sorted.
package setops

import (
	"errors"
	"fmt"

	"github.com/odvcencio/ordo/pkg/compare"
	"github.com/odvcencio/ordo/pkg/omap"
)

// ErrConfig is returned when Options name an unknown operation or mode.
// It is detected at call entry, before any comparison runs.
var ErrConfig = errors.New("invalid set operation configuration")

// Op selects the set operation.
type Op int

const (
	// Diff keeps base entries matched by no entry in any other array.
	Diff Op = iota
	// Intersect keeps base entries matched by at least one entry in
	// every other array. Each array may match via a different entry.
	Intersect
)

// Mode selects which parts of two entries the match predicate compares.
type Mode int

const (
	// Normal matches on values only.
	Normal Mode = iota
	// Key matches on keys only.
	Key
	// Assoc matches on key and value together.
	Assoc
)

// Options configure one Compute call.
//
// KeyCmp and DataCmp are independent: either axis may carry a user
// comparator while the other stays builtin. Outside Assoc mode only the
// axis the mode consults is ever invoked.
type Options struct {
	Op   Op
	Mode Mode
	// KeyCmp is the key-axis comparator. Nil selects the builtin smart
	// comparison. It receives native key values (int64 or string).
	KeyCmp compare.UserFunc
	// DataCmp is the data-axis comparator. Nil selects the builtin
	// smart comparison.
	DataCmp compare.UserFunc
}

// userDriven reports whether any comparator the mode consults is
// caller-supplied.
func (o Options) userDriven() bool {
	switch o.Mode {
	case Normal:
		return o.DataCmp != nil
	case Key:
		return o.KeyCmp != nil
	default:
		return o.KeyCmp != nil || o.DataCmp != nil
	}
}

// Compute runs the configured set operation of base against others.
//
// With builtin comparators each other array is indexed once by
// comparison class and membership probes run in expected constant
// time, O(ΣN) overall. A user comparator on a consulted axis forces
// pairwise scanning, O(|base| · Σ|others|): an arbitrary callback
// induces neither a consistent order nor usable equality classes, so
// indexed matching would be unsound. This asymmetry is a deliberate
// performance cliff, not an accident.
//
// With zero others both operations return a copy of base unchanged.
// An error from a user comparator aborts the call with no result.
func Compute(base *omap.Array, others []*omap.Array, opts Options) (*omap.Array, error) {
	if opts.Op != Diff && opts.Op != Intersect {
		return nil, fmt.Errorf("setops: %w: op %d", ErrConfig, opts.Op)
	}
	if opts.Mode != Normal && opts.Mode != Key && opts.Mode != Assoc {
		return nil, fmt.Errorf("setops: %w: mode %d", ErrConfig, opts.Mode)
	}

	if len(others) == 0 {
		return base.Clone(), nil
	}

	var sets []memberSet
	if opts.userDriven() {
		for _, o := range others {
			sets = append(sets, newScanSet(o, opts))
		}
	} else {
		for _, o := range others {
			sets = append(sets, newMemberIndex(o, opts.Mode))
		}
	}

	keep := make([]omap.Entry, 0, base.Len())
	for i := 0; i < base.Len(); i++ {
		e := base.At(i)
		include := true
		for _, s := range sets {
			matched, err := s.contains(e)
			if err != nil {
				return nil, fmt.Errorf("setops: user comparator: %w", err)
			}
			if matched == (opts.Op == Diff) {
				include = false
				break
			}
		}
		if include {
			keep = append(keep, e)
		}
	}
	return omap.FromEntries(keep)
}

// memberSet answers whether an entry of the base array matches some
// entry of one other array.
type memberSet interface {
	contains(e omap.Entry) (bool, error)
}
