package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avetrov/parkcut/internal/model"
)

// OrderCost prices an order: product lines cost price x quantity, stage lines
// cost start + meter x effective-meters + end, where each part sums its
// component materials and nested products.
func (a *Aggregator) OrderCost(o model.Order) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, item := range o.Items {
		switch item.Kind {
		case model.ItemProduct:
			p := a.Catalog.FindProduct(item.RefID)
			if p == nil {
				return decimal.Zero, fmt.Errorf("order item %d: unknown product %q", i+1, item.RefID)
			}
			total = total.Add(p.Price.Mul(decimal.NewFromFloat(item.Amount)))

		case model.ItemStage:
			s := a.Catalog.FindStage(item.RefID)
			if s == nil {
				return decimal.Zero, fmt.Errorf("order item %d: unknown stage %q", i+1, item.RefID)
			}
			cost, err := a.stageCost(*s, item.Amount)
			if err != nil {
				return decimal.Zero, fmt.Errorf("order item %d: %w", i+1, err)
			}
			total = total.Add(cost)

		default:
			return decimal.Zero, fmt.Errorf("order item %d: unknown item kind %q", i+1, item.Kind)
		}
	}
	return total, nil
}

func (a *Aggregator) stageCost(s model.Stage, requested float64) (decimal.Decimal, error) {
	eff := decimal.NewFromFloat(EffectiveMeters(requested))

	start, err := a.partCost(s.Start)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stage %q, start part: %w", s.Name, err)
	}
	meter, err := a.partCost(s.Meter)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stage %q, meter part: %w", s.Name, err)
	}
	end, err := a.partCost(s.End)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stage %q, end part: %w", s.Name, err)
	}

	return start.Add(meter.Mul(eff)).Add(end), nil
}

// partCost sums component cost x component quantity over a part's materials
// and nested products. Lumber components cost per meter of the cut length.
func (a *Aggregator) partCost(part model.StagePart) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range part.Components {
		m := a.Catalog.FindMaterial(line.Material)
		if m == nil {
			return decimal.Zero, fmt.Errorf("unknown material %q", line.Material)
		}
		unit := decimal.NewFromFloat(m.PricePerUnit)
		if line.Type == model.MaterialLumber && line.Length > 0 {
			unit = unit.Mul(decimal.NewFromFloat(line.Length))
		}
		total = total.Add(unit.Mul(decimal.NewFromFloat(line.Quantity)))
	}
	for _, use := range part.Products {
		p := a.Catalog.FindProduct(use.ProductID)
		if p == nil {
			return decimal.Zero, fmt.Errorf("unknown product %q", use.ProductID)
		}
		total = total.Add(p.Price.Mul(decimal.NewFromFloat(use.Quantity)))
	}
	return total, nil
}
