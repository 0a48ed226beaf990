package lines

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/linetex/molecule"
	"github.com/katalvlaran/linetex/transition"
)

// nameSeparator separates the molecule prefix from the transition suffix.
const nameSeparator = "_"

// ErrBadLineName indicates a line name without the molecule_transition
// shape (no underscore at all).
// Usage: if errors.Is(err, ErrBadLineName) { /* reject the line */ }.
var ErrBadLineName = errors.New("lines: line name is not in molecule_transition format")

// Split returns the molecule and transition halves of a formatted line
// name. The molecule is the longest known name prefixing the (trimmed,
// lowercased) line; unknown species split at the first underscore.
func Split(line string) (mol, trans string, err error) {
	if !strings.Contains(line, nameSeparator) {
		return "", "", fmt.Errorf("%w: %q", ErrBadLineName, line)
	}
	line = strings.ToLower(strings.TrimSpace(line))

	if prefix, ok := molecule.PrefixOf(line); ok {
		rest := strings.TrimPrefix(line[len(prefix):], nameSeparator)

		return prefix, rest, nil
	}

	mol, trans, _ = strings.Cut(line, nameSeparator)

	return mol, trans, nil
}

// Molecule returns the molecule half of line.
func Molecule(line string) (string, error) {
	mol, _, err := Split(line)

	return mol, err
}

// Transition returns the transition half of line.
func Transition(line string) (string, error) {
	_, trans, err := Split(line)

	return trans, err
}

// IsLineOf reports whether line is a line of the chemical species mol.
// mol may be an alias ("13co" matches "13c_o" lines).
func IsLineOf(line, mol string) bool {
	m, _, err := Split(line)

	return err == nil && m == molecule.Resolve(mol)
}

// Molecules returns the distinct molecules of the given lines, in
// first-seen order.
func Molecules(names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		mol, _, err := Split(name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[mol]; ok {
			continue
		}
		seen[mol] = struct{}{}
		out = append(out, mol)
	}

	return out, nil
}

// Filter returns the subset of names whose molecule is one of mols, in the
// original order. Aliases are resolved. With no molecules given, names is
// returned unchanged.
func Filter(names []string, mols ...string) ([]string, error) {
	if len(mols) == 0 {
		return names, nil
	}

	want := make(map[string]struct{}, len(mols))
	for _, mol := range mols {
		want[molecule.Resolve(mol)] = struct{}{}
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		mol, _, err := Split(name)
		if err != nil {
			return nil, err
		}
		if _, ok := want[mol]; ok {
			out = append(out, name)
		}
	}

	return out, nil
}

// ToLaTeX renders the full formatted line name as a LaTeX label: the
// molecule display form, a space, then the transition label. The double
// space left by an empty constants segment is collapsed.
func ToLaTeX(line string) (string, error) {
	mol, trans, err := Split(line)
	if err != nil {
		return "", err
	}

	texTrans, err := transition.ToLaTeX(trans)
	if err != nil {
		return "", err
	}

	out := molecule.ToLaTeX(mol) + " " + texTrans

	return strings.ReplaceAll(out, "  ", " "), nil
}
