package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCanonicalNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"7", true},
		{"42", true},
		{"-3", true},
		{"+3", true},
		{"0.5", true},
		{"-0.5", true},
		{"3.14", true},
		{"1e2", true},
		{"1.5e-3", true},
		{"2E+8", true},

		{"", false},
		{"007", false}, // leading zeros
		{"01", false},
		{"-07", false},
		{".5", false}, // no integer digits
		{"5.", false}, // empty fraction
		{"1e", false}, // empty exponent
		{"1e+", false},
		{"--1", false},
		{"1.2.3", false},
		{"9a", false},
		{"abc", false},
		{" 1", false}, // no whitespace skipping
		{"1 ", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, isCanonicalNumber(tc.in), "isCanonicalNumber(%q)", tc.in)
		})
	}
}

func TestNumericPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"9a", 9},
		{"10", 10},
		{"-2.5kg", -2.5},
		{"+4x", 4},
		{"3.14pie", 3.14},
		{"1e2", 100},
		{"1e2x", 100},
		{"1e", 1}, // incomplete exponent stops the prefix
		{"1e+", 1},
		{"5.", 5}, // trailing dot dropped
		{".5", 0.5},
		{"007", 7}, // coercion is not canonical-only
		{"", 0},
		{"x7", 0},
		{".", 0},
		{"-", 0},
		{"abc", 0},
		{" 5", 0}, // no whitespace skipping
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, numericPrefix(tc.in), "numericPrefix(%q)", tc.in)
		})
	}
}
