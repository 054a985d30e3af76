package report

import (
	"math"
	"strconv"
	"strings"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1100

// exponentThreshold is the magnitude from which values print in shortest
// exponent form instead of fixed notation.
const exponentThreshold = 1e21

// FormatFixed formats x with prec fractional digits. Exact ties round away
// from zero, negative zero prints without a sign and magnitudes of 1e21 or
// more print in shortest exponent form (1e+22).
func FormatFixed(x float64, prec int) string {
	if x == 0 {
		x = 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', prec, 64)
	}
	if math.Abs(x) >= exponentThreshold {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	neg := x < 0
	abs := math.Abs(x)
	out := strconv.FormatFloat(abs, 'f', prec, 64)
	if isExactTie(abs, prec) {
		out = roundUpDecimal(truncateDecimal(abs, prec))
	}
	if neg {
		return "-" + out
	}
	return out
}

// isExactTie reports whether abs sits exactly halfway between two values
// representable with prec fractional digits.
func isExactTie(abs float64, prec int) bool {
	exact := strings.TrimRight(strconv.FormatFloat(abs, 'f', exactDigits, 64), "0")
	dot := strings.IndexByte(exact, '.')
	frac := exact[dot+1:]
	return len(frac) == prec+1 && frac[prec] == '5'
}

func truncateDecimal(abs float64, prec int) string {
	exact := strconv.FormatFloat(abs, 'f', exactDigits, 64)
	dot := strings.IndexByte(exact, '.')
	if prec == 0 {
		return exact[:dot]
	}
	return exact[:dot+1+prec]
}

// roundUpDecimal adds one unit in the last place of a non-negative decimal.
func roundUpDecimal(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		switch {
		case b[i] == '.':
			continue
		case b[i] < '9':
			b[i]++
			return string(b)
		default:
			b[i] = '0'
		}
	}
	return "1" + string(b)
}
