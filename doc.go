// Package linetex renders spectral-line identifiers written in flat-string
// notation (molecule name + transition descriptor, e.g. "co_j1__j0") as
// LaTeX labels for plots and reports.
//
// 🚀 What is linetex?
//
//	A small, pure-Go library that brings together:
//		• level/      — numeric quantum-level rendering (fractions & half-integers)
//		• transition/ — the descriptor grammar: matching, classification, assembly
//		• molecule/   — molecule-name tables, aliases and LaTeX display forms
//		• lines/      — full line-name helpers: split, filter, render
//
// ✨ Why choose linetex?
//
//   - Strict validation — malformed descriptors fail loudly with sentinel errors
//   - Pure Go — no cgo, no I/O, safe for concurrent use
//   - Faithful output — labels match the Meudon PDR plotting conventions
//
// Quick example:
//
//	label, err := lines.ToLaTeX("co_j1__j0")
//	// label == "$CO$ ($J=1$ $\to$ $J=0$)"
//
// A small CLI lives in cmd/linetex for rendering and filtering line lists
// from the shell.
//
//	go get github.com/katalvlaran/linetex
package linetex
