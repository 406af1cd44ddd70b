package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComponentLine is one row of a product or stage-part composition: how much
// of a material one unit of the parent consumes. For lumber with a Length,
// Quantity is the number of cuts of that length; otherwise Quantity is a
// unit count.
type ComponentLine struct {
	Material string       `json:"material"`
	Type     MaterialType `json:"type"`
	Quantity float64      `json:"quantity"`
	Length   float64      `json:"length,omitempty"`
}

// Product is a finished item composed of raw materials.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Composition []ComponentLine `json:"composition"`
}

// NewProduct creates a Product with a generated ID.
func NewProduct(name string, price decimal.Decimal, composition []ComponentLine) Product {
	return Product{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Price:       price,
		Composition: composition,
	}
}

// ProductUse references a product consumed inside a stage part.
type ProductUse struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// StagePart is one position bucket of a construction stage. Start and end
// parts are consumed once per stage; the meter part is consumed once per
// effective meter of the stage's length.
type StagePart struct {
	Components []ComponentLine `json:"components,omitempty"`
	Products   []ProductUse    `json:"products,omitempty"`
}

// Stage is a multi-part installation phase (e.g. a rope bridge section)
// whose consumption depends on the ordered length.
type Stage struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Start StagePart `json:"start"`
	Meter StagePart `json:"meter"`
	End   StagePart `json:"end"`
}

// NewStage creates a Stage with a generated ID.
func NewStage(name string, start, meter, end StagePart) Stage {
	return Stage{
		ID:    uuid.New().String()[:8],
		Name:  name,
		Start: start,
		Meter: meter,
		End:   end,
	}
}

// ItemKind distinguishes order line item types.
type ItemKind string

const (
	ItemProduct ItemKind = "product"
	ItemStage   ItemKind = "stage"
)

// OrderItem is one order line: a product with a quantity, or a stage with a
// target length in meters.
type OrderItem struct {
	Kind   ItemKind `json:"kind"`
	RefID  string   `json:"ref_id"`
	Amount float64  `json:"amount"`
}

// Order is a customer order to be priced, checked and cut.
type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Items    []OrderItem `json:"items"`
}

// NewOrder creates an Order with a generated ID.
func NewOrder(customer string, items []OrderItem) Order {
	return Order{
		ID:       uuid.New().String()[:8],
		Customer: customer,
		Items:    items,
	}
}

// Catalog holds the workshop's materials, products and stages.
type Catalog struct {
	Materials []Material `json:"materials"`
	Products  []Product  `json:"products"`
	Stages    []Stage    `json:"stages"`
}

// FindMaterial returns a pointer to the material with the given name, or nil.
func (c *Catalog) FindMaterial(name string) *Material {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindProduct returns a pointer to the product with the given ID, or nil.
func (c *Catalog) FindProduct(id string) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindStage returns a pointer to the stage with the given ID, or nil.
func (c *Catalog) FindStage(id string) *Stage {
	for i := range c.Stages {
		if c.Stages[i].ID == id {
			return &c.Stages[i]
		}
	}
	return nil
}

// FindProductByName returns a pointer to the first product with the given name, or nil.
func (c *Catalog) FindProductByName(name string) *Product {
	for i := range c.Products {
		if c.Products[i].Name == name {
			return &c.Products[i]
		}
	}
	return nil
}

// FindStageByName returns a pointer to the first stage with the given name, or nil.
func (c *Catalog) FindStageByName(name string) *Stage {
	for i := range c.Stages {
		if c.Stages[i].Name == name {
			return &c.Stages[i]
		}
	}
	return nil
}

// DefaultStandardLengths lists the board lengths (meters) commonly sold by
// suppliers, used for purchase suggestions.
var DefaultStandardLengths = []float64{2.0, 3.0, 4.0, 6.0}

// DefaultCatalog returns a catalog populated with common rope-park defaults.
func DefaultCatalog() Catalog {
	pineBoard := Material{Name: "Pine board 40x90", Type: MaterialLumber, PricePerUnit: 180}
	larchBeam := Material{Name: "Larch beam 100x100", Type: MaterialLumber, PricePerUnit: 420}
	anchorBolt := Material{Name: "Anchor bolt M12", Type: MaterialFastener, PricePerUnit: 35}
	woodScrew := Material{Name: "Wood screw 6x90", Type: MaterialFastener, PricePerUnit: 4}

	transition := NewProduct("Simple transition", decimal.NewFromInt(1200), []ComponentLine{
		{Material: pineBoard.Name, Type: MaterialLumber, Quantity: 2, Length: 1.2},
		{Material: woodScrew.Name, Type: MaterialFastener, Quantity: 8},
	})
	platform := NewProduct("Platform 1x1", decimal.NewFromInt(4500), []ComponentLine{
		{Material: pineBoard.Name, Type: MaterialLumber, Quantity: 10, Length: 1.0},
		{Material: larchBeam.Name, Type: MaterialLumber, Quantity: 4, Length: 0.9},
		{Material: anchorBolt.Name, Type: MaterialFastener, Quantity: 4},
	})

	bridge := NewStage("Rope bridge", StagePart{
		Components: []ComponentLine{
			{Material: larchBeam.Name, Type: MaterialLumber, Quantity: 1, Length: 2.5},
			{Material: anchorBolt.Name, Type: MaterialFastener, Quantity: 6},
		},
	}, StagePart{
		Products: []ProductUse{{ProductID: transition.ID, Quantity: 1}},
	}, StagePart{
		Components: []ComponentLine{
			{Material: larchBeam.Name, Type: MaterialLumber, Quantity: 1, Length: 2.5},
			{Material: anchorBolt.Name, Type: MaterialFastener, Quantity: 6},
		},
	})

	return Catalog{
		Materials: []Material{pineBoard, larchBeam, anchorBolt, woodScrew},
		Products:  []Product{transition, platform},
		Stages:    []Stage{bridge},
	}
}
