// Package molecule holds the fixed tables of the flat-string notation:
// molecule names to LaTeX display forms, plus the common shorthand aliases.
//
// Tables are immutable; every function is a pure lookup and safe for
// concurrent use. Unknown names pass through verbatim so callers can render
// species the tables do not cover yet.
package molecule
