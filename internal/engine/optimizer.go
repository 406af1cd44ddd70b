// Package engine implements the 1-D cutting-stock optimizer: assignment of
// required cut lengths to available boards, feasibility checks, purchase
// suggestions and cost breakdowns. It is pure computation over value
// collections; infeasibility is a normal result, not an error.
package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/avetrov/parkcut/internal/model"
)

// lengthEps absorbs floating-point residue when comparing board lengths.
const lengthEps = 1e-9

// Optimizer runs the best-fit-decreasing cutting algorithm.
type Optimizer struct {
	// MinRemainder is the smallest offcut (meters) worth keeping as stock.
	// It classifies remainders for reporting and stock updates; it never
	// prevents a cut from being placed.
	MinRemainder float64
}

func New() *Optimizer {
	return &Optimizer{MinRemainder: model.MinUsefulRemainder}
}

// Optimize assigns the required cut lengths to the available board lengths,
// minimizing per-board waste. Requirements are processed largest first; each
// placed requirement claims the board with the smallest leftover, then the
// board's remainder is greedily stuffed with smaller pending requirements.
// Neither input slice is mutated. Requirements that cannot be placed are
// reported in UncutRequirements; Success is true only when that list is empty.
// An error is returned only for malformed input (non-positive or non-finite
// lengths), never for infeasibility.
func (o *Optimizer) Optimize(available, required []float64) (model.OptimizeResult, error) {
	if err := validateLengths("available", available); err != nil {
		return model.OptimizeResult{}, err
	}
	if err := validateLengths("required", required); err != nil {
		return model.OptimizeResult{}, err
	}
	return buildResult(placeCuts(available, required), required), nil
}

// OptimizeMaterials runs Optimize independently for each material. A material
// with no requirements succeeds vacuously; a material with requirements but
// no stock fails outright with every requirement uncut.
func (o *Optimizer) OptimizeMaterials(demands map[string]model.MaterialDemand) (map[string]model.OptimizeResult, error) {
	results := make(map[string]model.OptimizeResult, len(demands))
	for material, d := range demands {
		switch {
		case len(d.Required) == 0:
			results[material] = model.OptimizeResult{
				RemainingBoards: sortedDesc(d.Available),
				Success:         true,
			}
		case len(d.Available) == 0:
			results[material] = model.OptimizeResult{
				UncutRequirements: sortedDesc(d.Required),
			}
		default:
			res, err := o.Optimize(d.Available, d.Required)
			if err != nil {
				return nil, fmt.Errorf("material %q: %w", material, err)
			}
			results[material] = res
		}
	}
	return results, nil
}

// CanPlaceAllCuts reports whether every required cut fits into the available
// stock. It runs the same placement loop as Optimize, so the availability
// check and the real optimizer can never disagree.
func CanPlaceAllCuts(available, required []float64) bool {
	return len(placeCuts(available, required).uncut) == 0
}

// SuggestBoardLength picks the best single standard board length to purchase
// for the given cut list. Each candidate is simulated with an unlimited
// supply (one board per requirement) and scored by efficiency minus a waste
// penalty; candidates that cannot place every cut are not eligible.
func (o *Optimizer) SuggestBoardLength(required, standards []float64) (model.BoardSuggestion, error) {
	if err := validateLengths("required", required); err != nil {
		return model.BoardSuggestion{}, err
	}
	if len(required) == 0 {
		return model.BoardSuggestion{}, fmt.Errorf("no requirements to suggest a board length for")
	}

	best := model.BoardSuggestion{Score: math.Inf(-1)}
	found := false
	for _, length := range standards {
		if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
			continue
		}
		supply := make([]float64, len(required))
		for i := range supply {
			supply[i] = length
		}
		res, err := o.Optimize(supply, required)
		if err != nil {
			return model.BoardSuggestion{}, err
		}
		if !res.Success {
			continue
		}
		score := res.EfficiencyPercent - 0.1*res.TotalWaste
		if score > best.Score {
			best = model.BoardSuggestion{
				Length:       length,
				BoardsNeeded: len(res.UsedBoards),
				Score:        score,
				Result:       res,
			}
			found = true
		}
	}
	if !found {
		return model.BoardSuggestion{}, fmt.Errorf("no standard length can satisfy all %d requirements", len(required))
	}
	return best, nil
}

// CostBreakdown prices a cutting plan at the given per-meter rate.
// CostPerUsefulMeter is defined as zero when the plan cut nothing.
func (o *Optimizer) CostBreakdown(result model.OptimizeResult, pricePerMeter decimal.Decimal) model.MaterialCost {
	totalMeters := result.UsedMeters()
	usefulMeters := result.CutMeters()
	wasteMeters := totalMeters - usefulMeters

	cost := model.MaterialCost{
		TotalMeters:  totalMeters,
		UsefulMeters: usefulMeters,
		WasteMeters:  wasteMeters,
		TotalCost:    decimal.NewFromFloat(totalMeters).Mul(pricePerMeter),
		UsefulCost:   decimal.NewFromFloat(usefulMeters).Mul(pricePerMeter),
		WasteCost:    decimal.NewFromFloat(wasteMeters).Mul(pricePerMeter),
	}
	if usefulMeters > 0 {
		cost.CostPerUsefulMeter = cost.TotalCost.Div(decimal.NewFromFloat(usefulMeters))
	}
	return cost
}

// placement is the raw outcome of the best-fit loop before statistics.
type placement struct {
	plan      []model.PlanEntry
	used      []float64
	remaining []float64
	uncut     []float64
}

// placeCuts is the shared placement core. Both slices are copied and sorted
// descending; the caller's collections are never touched.
func placeCuts(available, required []float64) placement {
	boards := sortedDesc(available)
	pending := sortedDesc(required)

	var p placement
	for len(pending) > 0 {
		r := pending[0]
		pending = pending[1:]

		// Best fit: smallest leftover among boards long enough. Ties keep
		// the first candidate, which is the longer board in descending order.
		best := -1
		for i, b := range boards {
			if b+lengthEps < r {
				continue
			}
			if best < 0 || b < boards[best] {
				best = i
			}
		}
		if best < 0 {
			p.uncut = append(p.uncut, r)
			continue
		}

		board := boards[best]
		boards = append(boards[:best], boards[best+1:]...)
		cuts := []float64{r}
		remaining := board - r

		// Stuff the board's remainder with smaller pending requirements.
		for i := 0; i < len(pending); {
			if pending[i] <= remaining+lengthEps {
				cuts = append(cuts, pending[i])
				remaining -= pending[i]
				pending = append(pending[:i], pending[i+1:]...)
			} else {
				i++
			}
		}

		p.plan = append(p.plan, model.PlanEntry{StockLength: board, Cuts: cuts})
		p.used = append(p.used, board)
	}

	p.remaining = boards
	return p
}

// buildResult derives the aggregate statistics from a placement.
// Efficiency relates the total ordered length (placed or not) to the stock
// length consumed, and is zero when no boards were used.
func buildResult(p placement, required []float64) model.OptimizeResult {
	result := model.OptimizeResult{
		Plan:              p.plan,
		UsedBoards:        p.used,
		RemainingBoards:   p.remaining,
		UncutRequirements: p.uncut,
		Success:           len(p.uncut) == 0,
	}

	var usedLength float64
	for _, e := range p.plan {
		result.TotalWaste += e.Remainder()
		usedLength += e.StockLength
	}
	if usedLength > 0 {
		var requiredTotal float64
		for _, r := range required {
			requiredTotal += r
		}
		result.EfficiencyPercent = 100 * requiredTotal / usedLength
	}
	return result
}

func sortedDesc(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	copy(out, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

func validateLengths(name string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s lengths contain a non-finite value", name)
		}
		if v <= 0 {
			return fmt.Errorf("%s lengths must be positive, got %v", name, v)
		}
	}
	return nil
}
