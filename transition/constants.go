// Package transition constants: the structural separators and markers of
// the flat-string notation, plus the label display table.
package transition

const (
	// LevelSeparator splits a descriptor into its upper and lower halves.
	LevelSeparator = "__"

	// LabelSeparator separates consecutive labels inside one half.
	LabelSeparator = "_"

	// decimalMarker encodes the decimal point inside a level value ("j1d5").
	decimalMarker = "d"

	// fractionTranslated is the literal the fraction tier's encoded "_" maps to.
	fractionTranslated = "/"

	// decimalTranslated is the literal the decimal tier's "d" marker maps to.
	decimalTranslated = "."

	// electronicName is the label name shared by both electronic tiers.
	electronicName = "el"

	// Arrow is the LaTeX arrow placed between the high and low renderings.
	Arrow = `$\to$`
)

// energyToLaTeX maps label names to their typeset symbols. Names absent
// from the table render verbatim.
var energyToLaTeX = map[string]string{
	"j":  "J",
	"v":  `\nu`,
	"f":  "f",
	"n":  "n",
	"ka": "k_a",
	"kc": "k_c",
}
