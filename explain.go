package bach

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Explain renders a ParseError as a short, colourised multi-line message
// suitable for a terminal: the reason and position, followed by the
// hint (spec.md §4.4.8) when one is available.
func Explain(err ParseError) string {
	reason := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(err.Reason())
	msg := fmt.Sprintf("%s\n  at %s", reason, err.Start())
	if hint := err.Hint(); hint != "" {
		msg += "\n  " + pterm.NewStyle(pterm.FgYellow).Sprintf("hint: %s", hint)
	}
	return msg
}
