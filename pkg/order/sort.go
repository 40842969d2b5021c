// Package order sorts ordered arrays. It layers direction and stability
// as independent wrappers over the pure strategies in pkg/compare, so
// every strategy gets every combination without hand-expanding them.
package order

import (
	"errors"
	"fmt"
	"sort"

	"github.com/odvcencio/ordo/pkg/compare"
	"github.com/odvcencio/ordo/pkg/omap"
)

// ErrConfig is returned when Options name an unknown strategy or
// direction. It is detected at call entry, before any comparison runs.
var ErrConfig = errors.New("invalid sort configuration")

// Direction selects ascending or descending order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Options configure one sort call. The zero value sorts values ascending
// with the smart strategy, unstably.
type Options struct {
	// Key sorts by entry key instead of entry value.
	Key bool
	// Strategy selects the builtin comparator. Ignored when User is set.
	Strategy compare.Strategy
	// User is an optional caller-supplied comparator. It receives the
	// selected operands (values, or native key values when Key is set).
	// An error from it aborts the sort with no result.
	User compare.UserFunc
	// Direction reverses the primary comparison only; ties keep their
	// forward original order even in a descending stable sort.
	Direction Direction
	// Stable preserves the original relative order of entries the
	// comparator treats as equal.
	Stable bool
	// Renumber discards keys and reassigns sequential integer keys in
	// the result order (list-style sort).
	Renumber bool
}

// item pairs an entry with its original position. Positions exist only
// for the duration of one Sort call; they are never written back onto
// entries.
type item struct {
	entry omap.Entry
	pos   int
}

// Sort returns a new array holding a's entries in sorted order. The
// input array is not modified.
//
// When Stable is set the result is the unique permutation that is
// ordered under the comparator and preserves the original relative
// order of equal entries. Stability is achieved by tie-breaking on the
// original position, so it does not depend on the underlying sort
// algorithm being stable. The sort makes O(N log N) comparator
// invocations and terminates within that bound even if a user
// comparator violates antisymmetry or transitivity (the resulting order
// is then unspecified).
func Sort(a *omap.Array, opts Options) (*omap.Array, error) {
	primary, err := comparator(opts)
	if err != nil {
		return nil, err
	}

	items := make([]item, a.Len())
	for i := 0; i < a.Len(); i++ {
		items[i] = item{entry: a.At(i), pos: i}
	}

	if len(items) > 1 {
		var cmpErr error
		sort.Slice(items, func(i, j int) bool {
			if cmpErr != nil {
				return false
			}
			c, err := primary(items[i].entry, items[j].entry)
			if err != nil {
				cmpErr = err
				return false
			}
			if opts.Direction == Desc {
				c = -c
			}
			if c == 0 && opts.Stable {
				// Tie-break on original position, never negated.
				return items[i].pos < items[j].pos
			}
			return c < 0
		})
		if cmpErr != nil {
			return nil, fmt.Errorf("sort: user comparator: %w", cmpErr)
		}
	}

	entries := make([]omap.Entry, len(items))
	for i, it := range items {
		entries[i] = it.entry
		if opts.Renumber {
			entries[i].Key = omap.IntKey(int64(i))
		}
	}
	return omap.FromEntries(entries)
}

// comparator resolves Options to a 3-way entry comparison, validating
// the configuration before any entry is examined.
func comparator(opts Options) (func(a, b omap.Entry) (int, error), error) {
	if opts.Direction != Asc && opts.Direction != Desc {
		return nil, fmt.Errorf("sort: %w: direction %d", ErrConfig, opts.Direction)
	}

	if opts.User != nil {
		user := opts.User
		if opts.Key {
			return func(a, b omap.Entry) (int, error) {
				return user(a.Key.Value(), b.Key.Value())
			}, nil
		}
		return func(a, b omap.Entry) (int, error) {
			return user(a.Value, b.Value)
		}, nil
	}

	if opts.Key {
		kf, err := compare.Key(opts.Strategy)
		if err != nil {
			return nil, fmt.Errorf("sort: %w: %v", ErrConfig, err)
		}
		return func(a, b omap.Entry) (int, error) {
			return kf(a.Key, b.Key), nil
		}, nil
	}

	vf, err := compare.Value(opts.Strategy)
	if err != nil {
		return nil, fmt.Errorf("sort: %w: %v", ErrConfig, err)
	}
	return func(a, b omap.Entry) (int, error) {
		return vf(a.Value, b.Value), nil
	}, nil
}
