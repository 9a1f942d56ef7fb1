package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat returns the shortest decimal representation of f that parses
// back to f. Fixed notation is used for decimal exponents from -6 to 20,
// exponential notation (1e+21, 1.5e-7) outside of that range.
// Path data has no literal for NaN or infinities: NaN is written as 0 and
// infinities as the largest finite value of the same sign.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "0"
	case math.IsInf(f, 1):
		f = math.MaxFloat64
	case math.IsInf(f, -1):
		f = -math.MaxFloat64
	}
	if f == 0 {
		return "0" // also for -0
	}
	neg := f < 0
	if neg {
		f = -f
	}

	// d.ddde±x
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, _ := strconv.Atoi(exp)
	k := len(digits)
	n := x + 1 // position of the decimal point relative to digits

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if x >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}

// FormatNumber formats f for path data: the shortest representation with a
// redundant leading zero removed, so 0.5 becomes ".5" and -0.5 becomes "-.5".
func FormatNumber(f float64) string {
	s := formatFloat(f)
	switch {
	case 0 < f && f < 1 && s[0] == '0':
		return s[1:]
	case -1 < f && f < 0 && len(s) > 1 && s[1] == '0':
		return s[:1] + s[2:]
	}
	return s
}
