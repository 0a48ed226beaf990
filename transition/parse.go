package transition

import (
	"fmt"
	"strings"
)

// ToLaTeX renders a transition descriptor as a LaTeX label.
//
// The descriptor must contain exactly one "__" splitting it into the upper
// and lower level descriptions. Both halves are consumed label by label in
// lock-step; see the package documentation for the grammar.
//
// Example:
//
//	ToLaTeX("v0_j1__v0_j0") // "$\nu=0$ ($J=1$ $\to$ $J=0$)"
//
// Errors: ErrBadFormat, ErrAsymmetry, ErrUnrecognized.
func ToLaTeX(descriptor string) (string, error) {
	if strings.Count(descriptor, LevelSeparator) != 1 {
		return "", fmt.Errorf("%w: got %q", ErrBadFormat, descriptor)
	}
	high, low, _ := strings.Cut(descriptor, LevelSeparator)

	var acc []classified
	for high != "" && low != "" {
		tok, err := nextToken(high, low)
		if err != nil {
			return "", err
		}
		if tok.tier != tierHyperfine {
			acc = append(acc, classify(tok))
		}
		high = advance(high, tok.highLen)
		low = advance(low, tok.lowLen)
	}
	// The loop exits as soon as either half empties; the other must be
	// empty too or the halves carried different label counts.
	if high != low {
		return "", fmt.Errorf("%w: remainder high %q, low %q", ErrAsymmetry, high, low)
	}

	return assemble(acc), nil
}

// advance drops the consumed token plus the separator that follows it, if any.
func advance(rest string, n int) string {
	return strings.TrimPrefix(rest[n:], LabelSeparator)
}
