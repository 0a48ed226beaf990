package transition

import (
	"fmt"

	"github.com/katalvlaran/linetex/level"
)

// classified is the rendered form of one label pair. For a constant label
// High and Low hold the same string and IsTransition is false.
type classified struct {
	Name         string
	High         string
	Low          string
	IsTransition bool
}

// classify renders a matched token into its constant or transition form.
//
// Numeric labels render through the level package when the value is in a
// fraction or decimal encoding; bare integers are used as-is. The display
// name comes from the energyToLaTeX table, defaulting to the raw name.
// Electronic labels skip numeric rendering and carry no "name=" prefix:
// the configuration code is the whole label.
func classify(tok token) classified {
	if tok.tier == tierElectronicLong || tok.tier == tierElectronicShort {
		c := classified{
			Name: tok.name,
			High: fmt.Sprintf("$%s$", tok.high),
			Low:  fmt.Sprintf("$%s$", tok.low),
		}
		c.IsTransition = tok.high != tok.low

		return c
	}

	name := tok.name
	if tex, ok := energyToLaTeX[name]; ok {
		name = tex
	}

	high, low := tok.high, tok.low
	if level.IsNumeric(high) {
		high = level.Render(high)
		low = level.Render(low)
	}

	return classified{
		Name:         tok.name,
		High:         fmt.Sprintf("$%s=%s$", name, high),
		Low:          fmt.Sprintf("$%s=%s$", name, low),
		IsTransition: high != low,
	}
}
