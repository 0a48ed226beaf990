// Package lines works with full spectral-line identifiers of the form
// "<molecule>_<transition>" (e.g. "co_j1__j0"): splitting them into their
// molecule and transition halves, filtering line lists by species, and
// rendering complete LaTeX labels.
//
// ⚙️ Splitting:
//
//	The molecule half is the longest known molecule name prefixing the
//	line (so "h2o_..." is water, not molecular hydrogen); unknown species
//	fall back to everything before the first underscore. The remainder is
//	the transition descriptor handled by the transition package.
//
// Rendering composes molecule.ToLaTeX and transition.ToLaTeX:
//
//	lines.ToLaTeX("co_j1__j0") // "$CO$ ($J=1$ $\to$ $J=0$)"
//
// Errors:
//
//	ErrBadLineName — the line lacks the molecule_transition shape.
//	Transition grammar errors propagate unchanged from the transition
//	package (ErrBadFormat, ErrAsymmetry, ErrUnrecognized).
package lines
