package molecule

// moleculesToLaTeX maps formatted molecule names to their LaTeX bodies
// (without the math-mode wrapping).
var moleculesToLaTeX = map[string]string{
	"h":       "H",
	"h2":      "H_2",
	"hd":      "HD",
	"co":      "CO",
	"13c_o":   "^{13}CO",
	"c_18o":   "C^{18}O",
	"13c_18o": "^{13}C^{18}O",
	"c":       "C",
	"n":       "N",
	"o":       "O",
	"s":       "S",
	"si":      "Si",
	"cs":      "CS",
	"cn":      "CN",
	"hcn":     "HCN",
	"hnc":     "HNC",
	"oh":      "OH",
	"h2o":     "H_2O",
	"h2_18o":  "H_2^{18}O",
	"c2h":     "C_2H",
	"c_c3h2":  "c-C_3H_2",
	"so":      "SO",
	"cp":      "C^+",
	"sp":      "S^+",
	"hcop":    "HCO^+",
	"chp":     "CH^+",
	"ohp":     "OH^+",
	"shp":     "SH^+",
}

// aliases maps common shorthand spellings to the canonical formatted name.
var aliases = map[string]string{
	"13co":   "13c_o",
	"c18o":   "c_18o",
	"13c18o": "13c_18o",
	"cc3h2":  "c_c3h2",
}
