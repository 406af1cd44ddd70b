package model

// Requirement is a single demand item for one material: a required cut length
// for lumber, or a unit count for fasteners. Origin describes which order line
// generated it and is used only for diagnostics.
type Requirement struct {
	Value  float64 `json:"value"`
	Origin string  `json:"origin"`
}

// Requirements maps a material name to its individual demand items.
// Entries are kept separately (never pre-summed) because the cutting
// optimizer needs each cut length on its own.
type Requirements map[string][]Requirement

// Add appends a demand item for the given material.
func (r Requirements) Add(material string, req Requirement) {
	r[material] = append(r[material], req)
}

// Values returns the bare demand values for one material.
func (r Requirements) Values(material string) []float64 {
	reqs := r[material]
	if len(reqs) == 0 {
		return nil
	}
	values := make([]float64, len(reqs))
	for i, req := range reqs {
		values[i] = req.Value
	}
	return values
}

// Total sums all demand values for one material.
func (r Requirements) Total(material string) float64 {
	var total float64
	for _, req := range r[material] {
		total += req.Value
	}
	return total
}

// MaterialDemand pairs the available stock lengths and the required cut
// lengths for a single lumber material, ready for optimization.
type MaterialDemand struct {
	Available []float64 `json:"available"`
	Required  []float64 `json:"required"`
}
