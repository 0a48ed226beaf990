// Package level renders a single encoded quantum-level value as a LaTeX
// numeric string, applying the half-integer conventions of the flat-string
// line notation.
//
// 🚀 What does it handle?
//
//	Two encodings of a numeric level:
//	  • explicit fractions  — "3/2" → \frac{3}{2}, "4/2" → 2
//	  • half-integer decimals — "2.5" → \frac{5}{2}, "3.0" → 3
//
//	Anything else (bare integers, electronic-configuration codes) passes
//	through untouched, so callers can feed every raw value through Render
//	without pre-classifying it.
//
// ⚙️ Half-integer rules:
//
//	"a.0" → 2a/1 (a whole number)
//	"a.5" → (2a+1)/2 (a half-integer)
//
//	Any other fractional digit is not part of the notation. Render logs a
//	warning and keeps only the integer part; the loss is deliberate and
//	kept for compatibility with existing plot labels.
//
// The warning sink is a *zap.Logger, a no-op by default; install one with
// SetLogger during program initialization.
package level
