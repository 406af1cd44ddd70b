// Package warehouse decides whether an expanded order is fulfillable from the
// current stock snapshot, and applies cutting results back to the stock.
package warehouse

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/avetrov/parkcut/internal/engine"
	"github.com/avetrov/parkcut/internal/model"
)

// Shortfall describes one material that blocks order fulfillment.
type Shortfall struct {
	Material string `json:"material"`
	Reason   string `json:"reason"`
}

func (s Shortfall) String() string {
	return s.Material + ": " + s.Reason
}

// Check compares a requirements map against the warehouse snapshot. It
// returns one shortfall per blocking material; an empty slice means the order
// is fulfillable. Materials missing from the catalog are reported outright.
// Fasteners compare summed counts. Lumber runs the optimizer's own placement
// check on the flattened board multiset; its shortfall reports total meters,
// which can understate fragmentation-caused infeasibility.
func Check(req model.Requirements, stock *model.Warehouse, catalog *model.Catalog) []Shortfall {
	materials := make([]string, 0, len(req))
	for name := range req {
		materials = append(materials, name)
	}
	sort.Strings(materials)

	var shortfalls []Shortfall
	for _, name := range materials {
		m := catalog.FindMaterial(name)
		if m == nil {
			shortfalls = append(shortfalls, Shortfall{
				Material: name,
				Reason:   "not found in material catalog",
			})
			continue
		}

		switch m.Type {
		case model.MaterialFastener:
			needed := req.Total(name)
			available := stock.Count(name)
			if needed > available {
				shortfalls = append(shortfalls, Shortfall{
					Material: name,
					Reason:   fmt.Sprintf("required %s, available %s", formatAmount(needed), formatAmount(available)),
				})
			}

		case model.MaterialLumber:
			cuts := req.Values(name)
			boards := stock.BoardLengths(name)
			if !engine.CanPlaceAllCuts(boards, cuts) {
				var totalAvailable float64
				for _, b := range boards {
					totalAvailable += b
				}
				shortfalls = append(shortfalls, Shortfall{
					Material: name,
					Reason: fmt.Sprintf("required %s m, available %s m",
						formatAmount(req.Total(name)), formatAmount(totalAvailable)),
				})
			}

		default:
			shortfalls = append(shortfalls, Shortfall{
				Material: name,
				Reason:   fmt.Sprintf("unknown material type %q", m.Type),
			})
		}
	}
	return shortfalls
}

// Apply writes an optimization result back into the warehouse: every used
// board is removed from stock and its remainder is re-inserted as a new
// board when it is at least minRemainder long.
func Apply(stock *model.Warehouse, material string, result model.OptimizeResult, minRemainder float64) error {
	for _, entry := range result.Plan {
		if !stock.RemoveBoard(material, entry.StockLength) {
			return fmt.Errorf("material %q: no %s m board in stock to consume",
				material, formatAmount(entry.StockLength))
		}
		if remainder := entry.Remainder(); remainder >= minRemainder {
			stock.AddBoard(material, remainder)
		}
	}
	return nil
}

// formatAmount prints a quantity without trailing zeros, so counts read as
// whole numbers. Values are rounded to millimeter precision first to keep
// floating-point residue out of shortfall messages.
func formatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
