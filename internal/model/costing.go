package model

import "github.com/shopspring/decimal"

// MaterialCost breaks down the money spent on a cutting plan.
type MaterialCost struct {
	TotalMeters  float64         `json:"total_meters"`
	UsefulMeters float64         `json:"useful_meters"`
	WasteMeters  float64         `json:"waste_meters"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	UsefulCost   decimal.Decimal `json:"useful_cost"`
	WasteCost    decimal.Decimal `json:"waste_cost"`
	// CostPerUsefulMeter is zero when no useful length was produced.
	CostPerUsefulMeter decimal.Decimal `json:"cost_per_useful_meter"`
}

// BoardSuggestion is the outcome of a purchase advisory run: the best
// standard board length to buy for a given cut list.
type BoardSuggestion struct {
	Length       float64        `json:"length"`
	BoardsNeeded int            `json:"boards_needed"`
	Score        float64        `json:"score"`
	Result       OptimizeResult `json:"result"`
}
