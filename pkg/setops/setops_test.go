package setops

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/ordo/pkg/compare"
	"github.com/odvcencio/ordo/pkg/omap"
)

func assoc(t *testing.T, pairs ...any) *omap.Array {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	a := omap.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(omap.StringKey(pairs[i].(string)), pairs[i+1])
	}
	return a
}

func keyStrings(a *omap.Array) []string {
	out := make([]string, a.Len())
	for i := range out {
		out[i] = a.At(i).Key.String()
	}
	return out
}

func TestDiffNormal(t *testing.T) {
	base := omap.FromValues(int64(1), int64(2), int64(3), int64(4))
	other := omap.FromValues(int64(2), int64(4))

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Normal})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(3)}, got.Values())
	// Surviving entries keep their original keys.
	assert.Equal(t, []string{"0", "2"}, keyStrings(got))
}

func TestIntersectAssoc(t *testing.T) {
	base := assoc(t, "x", int64(1), "y", int64(2))
	o1 := assoc(t, "x", int64(1), "z", int64(3))
	o2 := assoc(t, "x", int64(1))

	got, err := Compute(base, []*omap.Array{o1, o2}, Options{Op: Intersect, Mode: Assoc})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, keyStrings(got))
	v, ok := got.Get(omap.StringKey("x"))
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestDiffKeyTwoOthers(t *testing.T) {
	base := assoc(t, "a", 1, "b", 2, "c", 3)
	o1 := assoc(t, "a", 99)
	o2 := assoc(t, "b", 99)

	got, err := Compute(base, []*omap.Array{o1, o2}, Options{Op: Diff, Mode: Key})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, keyStrings(got))
}

func TestIntersectNormalEachOtherMayMatchDifferently(t *testing.T) {
	// 2 survives by matching a different entry in each other array.
	base := omap.FromValues(int64(1), int64(2), int64(3))
	o1 := omap.FromValues(int64(2), int64(3))
	o2 := omap.FromValues(int64(2), int64(1))

	got, err := Compute(base, []*omap.Array{o1, o2}, Options{Op: Intersect, Mode: Normal})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(2)}, got.Values())
}

func TestZeroOthers(t *testing.T) {
	base := assoc(t, "a", 1, "b", 2)
	for _, op := range []Op{Diff, Intersect} {
		got, err := Compute(base, nil, Options{Op: op, Mode: Normal})
		require.NoError(t, err)
		assert.Equal(t, base.Entries(), got.Entries())
	}
}

func TestResultPreservesBaseOrder(t *testing.T) {
	base := omap.FromValues("d", "b", "c", "a")
	other := omap.FromValues("b")

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Normal})
	require.NoError(t, err)
	// Filtered subsequence, never re-sorted.
	assert.Equal(t, []any{"d", "c", "a"}, got.Values())
}

func TestSmartMatchingAcrossKeyVariants(t *testing.T) {
	// Integer key 5 and string key "5" match under the smart rule.
	base := omap.New()
	base.Set(omap.IntKey(5), "v")
	base.Set(omap.StringKey("a"), "w")
	other := omap.New()
	other.Set(omap.StringKey("5"), "anything")

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Key})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keyStrings(got))
}

func TestUserComparatorFallbackAgreesWithInternal(t *testing.T) {
	base := omap.FromValues(int64(1), int64(2), int64(3), int64(4), int64(5))
	o1 := omap.FromValues(int64(2), int64(4))
	o2 := omap.FromValues(int64(4), int64(5))

	smartLike := func(a, b any) (int, error) {
		x := a.(int64)
		y := b.(int64)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}

	for _, op := range []Op{Diff, Intersect} {
		internal, err := Compute(base, []*omap.Array{o1, o2}, Options{Op: op, Mode: Normal})
		require.NoError(t, err)
		user, err := Compute(base, []*omap.Array{o1, o2}, Options{Op: op, Mode: Normal, DataCmp: smartLike})
		require.NoError(t, err)
		assert.Equal(t, internal.Entries(), user.Entries(), "op %d", op)
	}
}

func TestAssocIndependentSources(t *testing.T) {
	base := assoc(t, "x", "A", "y", "B")
	other := assoc(t, "x", "a", "y", "Z")

	// Internal key comparison, user case-insensitive data comparison:
	// x matches (A ~ a), y does not (B vs Z).
	foldCI := func(a, b any) (int, error) {
		x := []byte(a.(string))
		y := []byte(b.(string))
		for i := 0; i < len(x) && i < len(y); i++ {
			cx := x[i] | 0x20
			cy := y[i] | 0x20
			if cx != cy {
				return int(cx) - int(cy), nil
			}
		}
		return len(x) - len(y), nil
	}

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Intersect, Mode: Assoc, DataCmp: foldCI})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, keyStrings(got))

	// And the mirror image: user key comparison, internal data.
	keyCI := foldCI
	base2 := assoc(t, "K", int64(1))
	other2 := assoc(t, "k", int64(1))
	got2, err := Compute(base2, []*omap.Array{other2}, Options{Op: Intersect, Mode: Assoc, KeyCmp: keyCI})
	require.NoError(t, err)
	assert.Equal(t, []string{"K"}, keyStrings(got2))
}

func TestMixedNumericTextValues(t *testing.T) {
	// Smart comparison is cyclic over these values ("10" < "1a" < "2"
	// as text, "2" < "10" numerically), so membership must not depend
	// on any single ordering of the other array.
	base := omap.FromValues("1a")
	other := omap.FromValues("10", "1a", "2", "100", "2b", "30")

	diff, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Normal})
	require.NoError(t, err)
	assert.Zero(t, diff.Len(), `"1a" is present in the other array`)

	inter, err := Compute(base, []*omap.Array{other}, Options{Op: Intersect, Mode: Normal})
	require.NoError(t, err)
	assert.Equal(t, []any{"1a"}, inter.Values())
}

func TestMixedNumericTextKeys(t *testing.T) {
	base := omap.New()
	base.Set(omap.StringKey("1a"), "x")
	base.Set(omap.IntKey(2), "y")
	base.Set(omap.StringKey("30"), "z")

	other := omap.New()
	for _, k := range []string{"10", "1a", "2", "100", "2b", "30"} {
		other.Set(omap.StringKey(k), "v")
	}

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Key})
	require.NoError(t, err)
	assert.Zero(t, got.Len(), "every base key is present in the other array")
}

func TestFastPathAgreesWithPairwiseScan(t *testing.T) {
	// Forcing the fallback path with the builtin comparison must never
	// change the result, whatever the arrangement of the other array.
	smartUser := func(a, b any) (int, error) { return compare.SmartValue(a, b), nil }

	values := []any{"10", "1a", "2", "100", "2b", "30", int64(2), true, nil}
	base := omap.FromValues("1a", int64(10), "not-there", true, "2b")

	for rot := range values {
		other := omap.New()
		for i := range values {
			other.Append(values[(rot+i)%len(values)])
		}
		for _, op := range []Op{Diff, Intersect} {
			fast, err := Compute(base, []*omap.Array{other}, Options{Op: op, Mode: Normal})
			require.NoError(t, err)
			scan, err := Compute(base, []*omap.Array{other}, Options{Op: op, Mode: Normal, DataCmp: smartUser})
			require.NoError(t, err)
			assert.Equal(t, scan.Entries(), fast.Entries(), "op %d rotation %d", op, rot)
		}
	}
}

func TestCrossTypeEquality(t *testing.T) {
	// true and 1 compare equal under the smart rule (both render "1"),
	// 1 and "1.0" compare equal numerically, but true and "1.0" do
	// not match: smart equality is not transitive, and the fast path
	// must honor each pairing individually.
	base := omap.New()
	base.Set(omap.StringKey("t"), true)
	base.Set(omap.StringKey("n"), int64(1))

	one := omap.FromValues(int64(1))
	oneDotZero := omap.FromValues("1.0")

	got, err := Compute(base, []*omap.Array{one}, Options{Op: Intersect, Mode: Normal})
	require.NoError(t, err)
	assert.Equal(t, []string{"t", "n"}, keyStrings(got))

	got, err = Compute(base, []*omap.Array{oneDotZero}, Options{Op: Intersect, Mode: Normal})
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, keyStrings(got), `true does not match "1.0"`)
}

func TestNaNValuesMatchEachOther(t *testing.T) {
	base := omap.FromValues(math.NaN(), 1.5)
	other := omap.FromValues(math.NaN())

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Intersect, Mode: Normal})
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.True(t, math.IsNaN(got.At(0).Value.(float64)))

	diff, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Normal})
	require.NoError(t, err)
	assert.Equal(t, []any{1.5}, diff.Values())
}

func TestUserComparatorErrorAborts(t *testing.T) {
	base := omap.FromValues(1, 2)
	other := omap.FromValues(2)
	boom := errors.New("boom")
	failing := func(a, b any) (int, error) { return 0, boom }

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Normal, DataCmp: failing})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, got, "no partial result")
}

func TestUnusedAxisComparatorNotConsulted(t *testing.T) {
	// In Key mode the data comparator must never run.
	base := assoc(t, "a", 1)
	other := assoc(t, "b", 1)
	failing := func(a, b any) (int, error) { return 0, errors.New("data axis consulted") }

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Diff, Mode: Key, DataCmp: failing})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keyStrings(got))
}

func TestConfigErrors(t *testing.T) {
	base := omap.FromValues(1)

	_, err := Compute(base, nil, Options{Op: Op(7), Mode: Normal})
	require.ErrorIs(t, err, ErrConfig)

	_, err = Compute(base, nil, Options{Op: Diff, Mode: Mode(7)})
	require.ErrorIs(t, err, ErrConfig)
}

func TestDuplicateValuesInOthers(t *testing.T) {
	// Several entries can share a matching key; every candidate in the
	// bucket must be checked, not just the first.
	base := omap.New()
	base.Set(omap.StringKey("k"), int64(2))
	other := omap.New()
	other.Set(omap.StringKey("k"), int64(1))
	other.Set(omap.IntKey(0), int64(9))
	other.Set(omap.StringKey("k2"), int64(2))

	got, err := Compute(base, []*omap.Array{other}, Options{Op: Intersect, Mode: Key})
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keyStrings(got))

	none, err := Compute(base, []*omap.Array{other}, Options{Op: Intersect, Mode: Assoc})
	require.NoError(t, err)
	assert.Zero(t, none.Len(), "key matches but value differs")
}
