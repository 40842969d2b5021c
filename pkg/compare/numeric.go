package compare

import "strconv"

// isCanonicalNumber reports whether s is a canonical numeric literal:
// optional sign, digits with no leading zero (unless the integer part is
// exactly "0"), optional fraction, optional exponent. Only canonical
// literals take the numeric path under the smart strategy, so "007" and
// "1." compare as text.
func isCanonicalNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	digits := i - start
	if digits == 0 {
		return false
	}
	if digits > 1 && s[start] == '0' {
		return false
	}

	if i < len(s) && s[i] == '.' {
		i++
		frac := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			frac++
		}
		if frac == 0 {
			return false
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}

	return i == len(s)
}

// numericPrefix returns the float value of the longest valid leading
// numeric prefix of s, or 0 if s has none. "9a" yields 9, "-2.5kg"
// yields -2.5, "x7" yields 0. This coercion is deterministic and never
// an error.
func numericPrefix(s string) float64 {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		// A bare "." extends the prefix only if digits surround it.
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return 0
	}

	// Include an exponent only when it is complete; "1e" stops at "1".
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}

	f, err := strconv.ParseFloat(trimPrefixDot(s[:i]), 64)
	if err != nil {
		return 0
	}
	return f
}

// trimPrefixDot drops a trailing '.' so "5." parses as "5".
func trimPrefixDot(s string) string {
	if len(s) > 0 && s[len(s)-1] == '.' {
		return s[:len(s)-1]
	}
	return s
}
