package molecule

import (
	"sort"
	"strings"
)

// ToLaTeX returns the display form of the formatted molecule name mol,
// wrapped in math mode. Unknown names are returned verbatim.
func ToLaTeX(mol string) string {
	if tex, ok := moleculesToLaTeX[mol]; ok {
		return "$" + tex + "$"
	}

	return mol
}

// Resolve normalizes mol (trimmed, lowercased) and expands shorthand
// aliases to the canonical formatted name.
func Resolve(mol string) string {
	mol = strings.ToLower(strings.TrimSpace(mol))
	if canonical, ok := aliases[mol]; ok {
		return canonical
	}

	return mol
}

// Known returns all formatted molecule names in the display table, sorted.
func Known() []string {
	names := make([]string, 0, len(moleculesToLaTeX))
	for name := range moleculesToLaTeX {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// PrefixOf returns the longest known molecule name prefixing line, and
// whether any matched. Longest-match wins so "h2o_..." resolves to "h2o",
// not "h".
func PrefixOf(line string) (string, bool) {
	best := ""
	for name := range moleculesToLaTeX {
		if strings.HasPrefix(line, name) && len(name) > len(best) {
			best = name
		}
	}

	return best, best != ""
}
