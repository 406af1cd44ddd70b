// ParkCut — workshop order planner and cutting-stock optimizer.
//
// Reads an order file, expands it into per-material requirements, checks the
// warehouse for shortfalls, computes cutting plans for lumber materials and
// optionally writes order paperwork or applies the plans to the stock.
//
// Build:
//   go build -o parkcut ./cmd/parkcut
//
// Typical usage:
//   parkcut -order order.json
//   parkcut -order order.json -pdf order.pdf -apply
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/avetrov/parkcut/internal/engine"
	"github.com/avetrov/parkcut/internal/export"
	"github.com/avetrov/parkcut/internal/model"
	"github.com/avetrov/parkcut/internal/order"
	"github.com/avetrov/parkcut/internal/project"
	"github.com/avetrov/parkcut/internal/warehouse"
)

func main() {
	var (
		configPath    = flag.String("config", project.DefaultConfigPath(), "application config file")
		catalogPath   = flag.String("catalog", project.DefaultCatalogPath(), "catalog file")
		warehousePath = flag.String("warehouse", project.DefaultWarehousePath(), "warehouse snapshot file")
		orderPath     = flag.String("order", "", "order file to process (required)")
		pdfPath       = flag.String("pdf", "", "write order paperwork PDF to this path")
		apply         = flag.Bool("apply", false, "apply cutting plans to the warehouse and save it")
		suggest       = flag.Bool("suggest", false, "suggest board lengths to purchase for unmet requirements")
	)
	flag.Parse()

	if *orderPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*configPath, *catalogPath, *warehousePath, *orderPath, *pdfPath, *apply, *suggest); err != nil {
		fmt.Fprintln(os.Stderr, "parkcut:", err)
		os.Exit(1)
	}
}

func run(configPath, catalogPath, warehousePath, orderPath, pdfPath string, apply, suggest bool) error {
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	catalog, err := project.LoadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	stock, err := project.LoadWarehouse(warehousePath)
	if err != nil {
		return fmt.Errorf("load warehouse: %w", err)
	}
	o, err := project.LoadOrder(orderPath)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}

	agg := order.NewAggregator(&catalog)
	requirements, err := agg.Expand(o)
	if err != nil {
		return fmt.Errorf("expand order: %w", err)
	}
	totalCost, err := agg.OrderCost(o)
	if err != nil {
		return fmt.Errorf("price order: %w", err)
	}

	fmt.Printf("Order %s for %s — total %s %s\n", o.ID, o.Customer, totalCost.Round(2), config.Currency)

	shortfalls := warehouse.Check(requirements, &stock, &catalog)
	if len(shortfalls) == 0 {
		fmt.Println("All materials available.")
	} else {
		fmt.Println("Shortfalls:")
		for _, s := range shortfalls {
			fmt.Println("  " + s.String())
		}
	}

	opt := engine.New()
	opt.MinRemainder = config.UsefulRemainder

	demands := make(map[string]model.MaterialDemand)
	for name := range requirements {
		m := catalog.FindMaterial(name)
		if m == nil || m.Type != model.MaterialLumber {
			continue
		}
		demands[name] = model.MaterialDemand{
			Available: stock.BoardLengths(name),
			Required:  requirements.Values(name),
		}
	}
	results, err := opt.OptimizeMaterials(demands)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	materials := make([]string, 0, len(results))
	for name := range results {
		materials = append(materials, name)
	}
	sort.Strings(materials)

	instructions := make(map[string]string, len(results))
	for _, name := range materials {
		res := results[name]
		instructions[name] = opt.Instructions(res)
		fmt.Printf("\n== %s ==\n%s", name, instructions[name])

		if suggest && !res.Success {
			suggestion, err := opt.SuggestBoardLength(res.UncutRequirements, config.StandardLengths)
			if err != nil {
				fmt.Printf("No standard board length covers the unmet cuts: %v\n", err)
				continue
			}
			fmt.Printf("Suggested purchase: %d x %.1f m boards (efficiency %.1f%%)\n",
				suggestion.BoardsNeeded, suggestion.Length, suggestion.Result.EfficiencyPercent)
		}
	}

	if pdfPath != "" {
		doc := export.OrderDocument{
			Order:        o,
			Catalog:      &catalog,
			TotalCost:    totalCost.Round(2).String(),
			Currency:     config.Currency,
			Shortfalls:   shortfalls,
			Results:      results,
			Instructions: instructions,
		}
		if err := export.ExportOrderPDF(pdfPath, doc); err != nil {
			return fmt.Errorf("export PDF: %w", err)
		}
		fmt.Printf("\nPaperwork written to %s\n", pdfPath)
	}

	if apply {
		if len(shortfalls) > 0 {
			return fmt.Errorf("refusing to apply cutting plans while shortfalls remain")
		}
		for _, name := range materials {
			if err := warehouse.Apply(&stock, name, results[name], config.UsefulRemainder); err != nil {
				return fmt.Errorf("apply %q: %w", name, err)
			}
		}
		if err := project.SaveWarehouse(warehousePath, stock); err != nil {
			return fmt.Errorf("save warehouse: %w", err)
		}
		fmt.Println("Warehouse updated.")
	}

	return nil
}
