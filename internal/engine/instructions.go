package engine

import (
	"fmt"
	"strings"

	"github.com/avetrov/parkcut/internal/model"
)

// Instructions renders a cutting plan as human-readable text suitable for
// embedding in order paperwork. Board remainders at or above MinRemainder are
// flagged as keepable offcuts, smaller ones as scrap.
func (o *Optimizer) Instructions(result model.OptimizeResult) string {
	var b strings.Builder

	if len(result.Plan) == 0 {
		b.WriteString("No boards used.\n")
	} else {
		b.WriteString("Cutting plan:\n")
		for i, entry := range result.Plan {
			cuts := make([]string, len(entry.Cuts))
			for j, c := range entry.Cuts {
				cuts[j] = formatMeters(c)
			}
			fmt.Fprintf(&b, "  Board %d (%s m): cut %s", i+1, formatMeters(entry.StockLength), strings.Join(cuts, ", "))
			remainder := entry.Remainder()
			if remainder > lengthEps {
				fmt.Fprintf(&b, "; remainder %s m — %s", formatMeters(remainder), o.classifyRemainder(remainder))
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Boards used: %d, remaining in stock: %d\n", len(result.UsedBoards), len(result.RemainingBoards))
	fmt.Fprintf(&b, "Total waste: %s m\n", formatMeters(result.TotalWaste))
	fmt.Fprintf(&b, "Efficiency: %.1f%%\n", result.EfficiencyPercent)

	if len(result.UncutRequirements) > 0 {
		uncut := make([]string, len(result.UncutRequirements))
		for i, r := range result.UncutRequirements {
			uncut[i] = formatMeters(r)
		}
		fmt.Fprintf(&b, "Could not cut: %s m\n", strings.Join(uncut, ", "))
	} else {
		b.WriteString("All requirements placed.\n")
	}

	return b.String()
}

func (o *Optimizer) classifyRemainder(remainder float64) string {
	if remainder >= o.MinRemainder {
		return "keepable offcut"
	}
	return "scrap"
}

// formatMeters prints a length with two decimals so plan columns line up.
func formatMeters(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
