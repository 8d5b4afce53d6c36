package callsite

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// numberKey returns the string JS produces for a numeric literal, e.g.
// "16" for 0x10 and "1e+21" for 1e21. Text that is not a valid literal is
// returned unchanged.
func numberKey(text string) string {
	s := strings.ReplaceAll(text, "_", "")
	if b, ok := strings.CutSuffix(s, "n"); ok {
		n, ok := new(big.Int).SetString(b, 0)
		if !ok {
			return text
		}
		return n.String()
	}

	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, ok := new(big.Int).SetString(s, 0)
			if !ok {
				return text
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return formatNumber(f)
		}
		if legacyOctal(s) {
			n, err := strconv.ParseUint(s[1:], 8, 64)
			if err != nil {
				return text
			}
			return formatNumber(float64(n))
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return text
	}
	return formatNumber(f)
}

// legacyOctal reports whether s is a sloppy-mode octal literal like 010.
func legacyOctal(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// formatNumber renders f the way JS Number.prototype.toString does.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
