package model

// PlanEntry is one used board in a cutting plan: the stock length consumed
// and the cuts assigned to it.
type PlanEntry struct {
	StockLength float64   `json:"stock_length"`
	Cuts        []float64 `json:"cuts"`
}

// UsedLength returns the sum of cuts assigned to this board.
func (e PlanEntry) UsedLength() float64 {
	var total float64
	for _, c := range e.Cuts {
		total += c
	}
	return total
}

// Remainder returns the unused length left on this board.
func (e PlanEntry) Remainder() float64 {
	return e.StockLength - e.UsedLength()
}

// OptimizeResult holds the full solution of a single-material cutting-stock
// instance. UsedBoards and RemainingBoards partition the original available
// lengths; Success is true exactly when every requirement was placed.
type OptimizeResult struct {
	Plan              []PlanEntry `json:"plan"`
	UsedBoards        []float64   `json:"used_boards"`
	RemainingBoards   []float64   `json:"remaining_boards"`
	UncutRequirements []float64   `json:"uncut_requirements"`
	TotalWaste        float64     `json:"total_waste"`
	EfficiencyPercent float64     `json:"efficiency_percent"`
	Success           bool        `json:"success"`
}

// UsedMeters returns the total stock length consumed by the plan.
func (r OptimizeResult) UsedMeters() float64 {
	var total float64
	for _, b := range r.UsedBoards {
		total += b
	}
	return total
}

// CutMeters returns the total length of all cuts placed in the plan.
func (r OptimizeResult) CutMeters() float64 {
	var total float64
	for _, e := range r.Plan {
		total += e.UsedLength()
	}
	return total
}
