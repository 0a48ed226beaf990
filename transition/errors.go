// errors.go — sentinel errors for the transition package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Sentinels carry no parameters; call sites attach context via %w.

package transition

import "errors"

// ErrBadFormat indicates the descriptor does not contain exactly one
// occurrence of the "__" level separator.
// Usage: if errors.Is(err, ErrBadFormat) { /* reject the line name */ }.
var ErrBadFormat = errors.New("transition: descriptor must contain exactly one level separator")

// ErrAsymmetry indicates the upper and lower level descriptions are out of
// sync: they exhaust at different label counts, carry different label names
// at the same position, or only one side matches a grammar tier.
// Usage: if errors.Is(err, ErrAsymmetry) { /* inconsistent input data */ }.
var ErrAsymmetry = errors.New("transition: upper and lower level descriptions out of sync")

// ErrUnrecognized indicates leftover descriptor text that matches no grammar
// tier while both halves are still non-empty. The wrapped message carries
// both remainders for diagnosability.
var ErrUnrecognized = errors.New("transition: unrecognized level format")
