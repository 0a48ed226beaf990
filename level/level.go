package level

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// FractionSeparator splits an explicit-fraction value into numerator and denominator.
	FractionSeparator = "/"

	// DecimalSeparator splits a half-integer value into whole and fractional parts.
	DecimalSeparator = "."
)

// reNumeric matches the values Render rewrites: an optional digit run, a
// single '/' or '.', and an optional digit run.
var reNumeric = regexp.MustCompile(`\A\d*[/.]\d*\z`)

// logger receives warnings about unsupported fractional parts.
// Replaced via SetLogger; never nil.
var logger = zap.NewNop()

// SetLogger installs l as the warning sink for this package. A nil l
// restores the default no-op logger. Intended for initialization time only;
// concurrent use with Render is not synchronized.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// IsNumeric reports whether raw is in one of the two numeric encodings
// Render rewrites (explicit fraction or half-integer decimal).
func IsNumeric(raw string) bool {
	return reNumeric.MatchString(raw)
}

// Render converts an encoded level value to its LaTeX form.
//
// Explicit fractions ("3/2") and half-integer decimals ("2.5", "3.0")
// reduce to a plain integer when evenly divisible, otherwise render as
// \frac{numerator}{denominator}. Values in neither encoding are returned
// verbatim.
//
// Example:
//
//	Render("3/2") // \frac{3}{2}
//	Render("4/2") // 2
//	Render("2.5") // \frac{5}{2}
//	Render("po")  // po
func Render(raw string) string {
	if !reNumeric.MatchString(raw) {
		return raw
	}

	var num, den int
	if strings.Contains(raw, FractionSeparator) {
		a, b, _ := strings.Cut(raw, FractionSeparator)
		num, den = atoiOrZero(a), atoiOrZero(b)
	} else {
		a, b, _ := strings.Cut(raw, DecimalSeparator)
		num, den = halfInteger(raw, a, b)
	}

	if den == 0 {
		// Nothing sensible to reduce; keep the encoded form.
		return raw
	}
	if num%den == 0 {
		return strconv.Itoa(num / den)
	}

	return fmt.Sprintf(`\frac{%d}{%d}`, num, den)
}

// halfInteger converts the whole/fractional parts of a decimal-encoded
// value to a numerator and denominator. Fractional digits other than "0"
// and "5" are not part of the notation: they are warned about and dropped,
// keeping only the whole part.
func halfInteger(raw, whole, frac string) (num, den int) {
	a := atoiOrZero(whole)
	switch frac {
	case "0":
		return 2 * a, 1
	case "5":
		return 2*a + 1, 2
	default:
		logger.Warn("unsupported fractional part, ignoring",
			zap.String("value", raw),
			zap.String("fraction", frac))

		return a, 1
	}
}

// atoiOrZero parses s as a base-10 integer, treating an empty digit run
// (permitted by the grammar) as zero.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
