package transition

import (
	"fmt"
	"strings"
)

// assemble composes the final label from the classified accumulator:
// constant labels first (original order, space-joined), then the high → low
// transition lists in parentheses (original order, comma-joined).
//
// The parenthesised segment renders even with zero transitions, producing
// " ( $\to$ )" after a run of constants. Existing plot consumers depend on
// that exact shape, so it is kept rather than special-cased. An empty
// accumulator yields "".
func assemble(acc []classified) string {
	if len(acc) == 0 {
		return ""
	}

	var constants, highs, lows []string
	for _, c := range acc {
		if c.IsTransition {
			highs = append(highs, c.High)
			lows = append(lows, c.Low)
		} else {
			constants = append(constants, c.Low)
		}
	}

	return fmt.Sprintf("%s (%s %s %s)",
		strings.Join(constants, " "),
		strings.Join(highs, ", "),
		Arrow,
		strings.Join(lows, ", "))
}
