package model

// MaterialType classifies how a material is measured and consumed.
type MaterialType string

const (
	// MaterialLumber is consumed by length: stock is boards of varying
	// lengths in meters and demand is individual cut lengths.
	MaterialLumber MaterialType = "lumber"
	// MaterialFastener is consumed by unit count; length is not meaningful.
	MaterialFastener MaterialType = "fastener"
)

func (t MaterialType) String() string {
	switch t {
	case MaterialLumber:
		return "Lumber"
	case MaterialFastener:
		return "Fastener"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the known material types.
func (t MaterialType) Valid() bool {
	return t == MaterialLumber || t == MaterialFastener
}

// MinUsefulRemainder is the minimum board remainder (in meters) worth keeping
// as reusable stock. Offcuts below this are scrap.
const MinUsefulRemainder = 0.3

// Material is a catalog entry for one raw material.
// PricePerUnit is per meter for lumber and per piece for fasteners.
type Material struct {
	Name         string       `json:"name"`
	Type         MaterialType `json:"type"`
	PricePerUnit float64      `json:"price_per_unit"`
}

// StockEntry is one warehouse row: a board length with a quantity for lumber,
// or a bare count (Length == 0) for fasteners.
type StockEntry struct {
	Material string  `json:"material"`
	Length   float64 `json:"length"`
	Quantity float64 `json:"quantity"`
}

// Warehouse is an in-memory snapshot of current stock.
type Warehouse struct {
	Entries []StockEntry `json:"entries"`
}

// BoardLengths expands the (length, quantity) rows for a lumber material into
// a flat multiset of individual board lengths.
func (w *Warehouse) BoardLengths(material string) []float64 {
	var lengths []float64
	for _, e := range w.Entries {
		if e.Material != material || e.Length <= 0 {
			continue
		}
		n := int(e.Quantity + 0.5)
		for i := 0; i < n; i++ {
			lengths = append(lengths, e.Length)
		}
	}
	return lengths
}

// Count sums the stock quantity for a fastener material.
func (w *Warehouse) Count(material string) float64 {
	var total float64
	for _, e := range w.Entries {
		if e.Material == material {
			total += e.Quantity
		}
	}
	return total
}

// RemoveBoard decrements the quantity of the first entry matching the given
// material and board length. Entries that reach zero are dropped.
// Returns false if no matching board is in stock.
func (w *Warehouse) RemoveBoard(material string, length float64) bool {
	for i := range w.Entries {
		e := &w.Entries[i]
		if e.Material == material && e.Length == length && e.Quantity >= 1 {
			e.Quantity--
			if e.Quantity <= 0 {
				w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
			}
			return true
		}
	}
	return false
}

// AddBoard inserts a single board of the given length, merging with an
// existing entry of the same length when one exists.
func (w *Warehouse) AddBoard(material string, length float64) {
	for i := range w.Entries {
		e := &w.Entries[i]
		if e.Material == material && e.Length == length {
			e.Quantity++
			return
		}
	}
	w.Entries = append(w.Entries, StockEntry{Material: material, Length: length, Quantity: 1})
}
