package transition

import (
	"fmt"
	"regexp"
	"strings"
)

// tier identifies one grammar pattern in the fixed priority order.
type tier int

const (
	// tierFraction — label + digits + encoded fraction ("j3_2").
	tierFraction tier = iota
	// tierDecimal — label + digits + decimal marker + digits ("j1d5").
	tierDecimal
	// tierInteger — label + bare digits ("j1").
	tierInteger
	// tierElectronicLong — "el" + digits + po|so|do suffix.
	tierElectronicLong
	// tierElectronicShort — "el" + digits + p|s|d suffix.
	tierElectronicShort
	// tierHyperfine — "(pp|pm)_fif" marker: consumed, never rendered.
	tierHyperfine

	tierCount
)

// tierPatterns holds the anchored pattern for each tier, tried in
// declaration order. \A keeps every match glued to the front of the
// remaining text.
var tierPatterns = [tierCount]*regexp.Regexp{
	tierFraction:        regexp.MustCompile(`\A(j|v|n|f|ka|kc)\d*_2`),
	tierDecimal:         regexp.MustCompile(`\A(j|v|n|f|ka|kc)\d*d\d*`),
	tierInteger:         regexp.MustCompile(`\A(j|v|n|f|ka|kc)\d*`),
	tierElectronicLong:  regexp.MustCompile(`\Ael\d*(po|so|do)`),
	tierElectronicShort: regexp.MustCompile(`\Ael\d*(p|s|d)`),
	tierHyperfine:       regexp.MustCompile(`\A(pp|pm)_fif\d*`),
}

// reLabelName extracts the label-name prefix of a matched numeric token.
var reLabelName = regexp.MustCompile(`\A(j|v|n|f|ka|kc)`)

// token is one matched level pair: the tier it matched, the shared label
// name, both translated values, and how many bytes each half consumed.
type token struct {
	tier    tier
	name    string // empty for the hyperfine tier
	high    string
	low     string
	highLen int
	lowLen  int
}

// nextToken finds the first tier whose pattern matches the front of both
// halves. A tier matching only one side means the halves disagree on the
// label vocabulary at this position (ErrAsymmetry); no tier matching at all
// is ErrUnrecognized.
func nextToken(high, low string) (token, error) {
	for k := tier(0); k < tierCount; k++ {
		locHigh := tierPatterns[k].FindStringIndex(high)
		locLow := tierPatterns[k].FindStringIndex(low)
		if locHigh == nil && locLow == nil {
			continue
		}
		if locHigh == nil || locLow == nil {
			return token{}, fmt.Errorf("%w: tier matched only one side (high %q, low %q)",
				ErrAsymmetry, high, low)
		}

		return newToken(k, high[:locHigh[1]], low[:locLow[1]])
	}

	return token{}, fmt.Errorf("%w: high %q, low %q", ErrUnrecognized, high, low)
}

// newToken builds a token from the matched prefixes eHigh and eLow,
// stripping the label name and translating the encoded markers.
func newToken(k tier, eHigh, eLow string) (token, error) {
	tok := token{tier: k, highLen: len(eHigh), lowLen: len(eLow)}

	switch k {
	case tierFraction, tierDecimal, tierInteger:
		nHigh := reLabelName.FindString(eHigh)
		nLow := reLabelName.FindString(eLow)
		if nHigh != nLow {
			return token{}, fmt.Errorf("%w: label %q on the high side, %q on the low side",
				ErrAsymmetry, nHigh, nLow)
		}
		tok.name = nHigh
		tok.high = translateValue(k, strings.TrimPrefix(eHigh, nHigh))
		tok.low = translateValue(k, strings.TrimPrefix(eLow, nLow))

	case tierElectronicLong, tierElectronicShort:
		tok.name = electronicName
		tok.high = strings.TrimPrefix(eHigh, electronicName)
		tok.low = strings.TrimPrefix(eLow, electronicName)

	case tierHyperfine:
		// Addressed but unrendered: the marker is consumed and dropped.
	}

	return tok, nil
}

// translateValue rewrites the encoded markers of a numeric value: the
// fraction tier's "_" becomes "/", the decimal tier's "d" becomes ".".
func translateValue(k tier, v string) string {
	switch k {
	case tierFraction:
		return strings.ReplaceAll(v, LabelSeparator, fractionTranslated)
	case tierDecimal:
		return strings.ReplaceAll(v, decimalMarker, decimalTranslated)
	default:
		return v
	}
}
