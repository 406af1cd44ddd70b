// Package order expands customer orders into per-material demand lists and
// prices them. Products contribute their material composition scaled by
// quantity; stages contribute start/meter/end parts scaled by the ordered
// length, including recursively nested products.
package order

import (
	"fmt"
	"math"

	"github.com/avetrov/parkcut/internal/model"
)

// Aggregator expands orders against a catalog snapshot.
type Aggregator struct {
	Catalog *model.Catalog
}

func NewAggregator(catalog *model.Catalog) *Aggregator {
	return &Aggregator{Catalog: catalog}
}

// Expand converts an order into a requirements map: one entry per individual
// lumber cut, one summed entry per fastener demand. Origins describe the
// order line that produced each entry and are diagnostic only.
// Unknown product or stage references are errors; unknown materials are not,
// they surface later as shortfalls in the availability check.
func (a *Aggregator) Expand(o model.Order) (model.Requirements, error) {
	req := make(model.Requirements)
	for i, item := range o.Items {
		switch item.Kind {
		case model.ItemProduct:
			p := a.Catalog.FindProduct(item.RefID)
			if p == nil {
				return nil, fmt.Errorf("order item %d: unknown product %q", i+1, item.RefID)
			}
			origin := fmt.Sprintf("product %q x%g", p.Name, item.Amount)
			expandProduct(*p, item.Amount, origin, req)

		case model.ItemStage:
			s := a.Catalog.FindStage(item.RefID)
			if s == nil {
				return nil, fmt.Errorf("order item %d: unknown stage %q", i+1, item.RefID)
			}
			if err := a.expandStage(*s, item.Amount, req); err != nil {
				return nil, fmt.Errorf("order item %d: %w", i+1, err)
			}

		default:
			return nil, fmt.Errorf("order item %d: unknown item kind %q", i+1, item.Kind)
		}
	}
	return req, nil
}

// EffectiveMeters is the billing length of a stage: requested meters rounded
// up, since a partial meter still consumes a full unit of per-meter materials.
func EffectiveMeters(requested float64) float64 {
	return math.Ceil(math.Max(0, requested))
}

// expandStage adds the demand of one stage of the given requested length.
// Start and end parts contribute once; the meter part contributes once per
// effective meter.
func (a *Aggregator) expandStage(s model.Stage, requested float64, req model.Requirements) error {
	eff := EffectiveMeters(requested)
	parts := []struct {
		name       string
		part       model.StagePart
		multiplier float64
	}{
		{"start", s.Start, 1},
		{"meter", s.Meter, eff},
		{"end", s.End, 1},
	}

	for _, p := range parts {
		if p.multiplier == 0 {
			continue
		}
		origin := fmt.Sprintf("stage %q, %s part", s.Name, p.name)
		expandComponents(p.part.Components, p.multiplier, origin, req)

		for _, use := range p.part.Products {
			nested := a.Catalog.FindProduct(use.ProductID)
			if nested == nil {
				return fmt.Errorf("stage %q, %s part: unknown product %q", s.Name, p.name, use.ProductID)
			}
			nestedOrigin := fmt.Sprintf("%s, product %q", origin, nested.Name)
			expandProduct(*nested, use.Quantity*p.multiplier, nestedOrigin, req)
		}
	}
	return nil
}

func expandProduct(p model.Product, multiplier float64, origin string, req model.Requirements) {
	expandComponents(p.Composition, multiplier, origin, req)
}

// expandComponents applies the per-material-type demand rule: lumber lines
// with a cut length produce floor(quantity x multiplier) individual cut
// entries; everything else produces one summed count entry.
func expandComponents(lines []model.ComponentLine, multiplier float64, origin string, req model.Requirements) {
	for _, line := range lines {
		if line.Type == model.MaterialLumber && line.Length > 0 {
			n := int(math.Floor(line.Quantity * multiplier))
			for i := 0; i < n; i++ {
				req.Add(line.Material, model.Requirement{Value: line.Length, Origin: origin})
			}
		} else {
			req.Add(line.Material, model.Requirement{Value: line.Quantity * multiplier, Origin: origin})
		}
	}
}
