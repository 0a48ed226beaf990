// Package transition parses underscore-encoded transition descriptors and
// renders them as LaTeX labels.
//
// 🚀 What is a descriptor?
//
//	A flat string naming an upper and a lower energy level, separated by a
//	double underscore:
//
//	    j1__j0            one rotational label, J=1 → J=0
//	    v0_j2__v0_j0      vibrational level constant, rotational transition
//	    j3_2__j1_2        fraction-encoded levels, J=3/2 → J=1/2
//	    j1d5__j0d5        half-integer decimals, J=3/2 → J=1/2
//	    el2p__el1s        electronic configurations
//
// ⚙️ How parsing works:
//
//	Both halves are consumed in lock-step against a fixed priority list of
//	grammar tiers (fraction, decimal, bare integer, electronic long/short,
//	hyperfine marker). At every step the same tier must match the front of
//	both halves with the same label name; anything else fails loudly.
//	Labels whose upper and lower values are equal are rendered once as
//	constants; the others form the high → low transition pair. Constants
//	come first in the output, the transition lists follow in parentheses.
//
// Errors:
//
//	ErrBadFormat    — descriptor does not contain exactly one "__".
//	ErrAsymmetry    — upper and lower level descriptions out of sync.
//	ErrUnrecognized — leftover text matches no grammar tier.
//
// All functions are pure; concurrent use needs no synchronization.
package transition
