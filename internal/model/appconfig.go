package model

// AppConfig holds workshop-wide preferences and defaults.
type AppConfig struct {
	// UsefulRemainder is the minimum offcut length (meters) kept as stock.
	UsefulRemainder float64 `json:"useful_remainder"`
	// StandardLengths lists board lengths (meters) available from suppliers,
	// used by purchase suggestions.
	StandardLengths []float64 `json:"standard_lengths"`
	Currency        string    `json:"currency"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		UsefulRemainder: MinUsefulRemainder,
		StandardLengths: append([]float64(nil), DefaultStandardLengths...),
		Currency:        "RUB",
	}
}
