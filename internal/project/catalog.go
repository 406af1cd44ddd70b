package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/avetrov/parkcut/internal/model"
)

// DefaultCatalogPath returns the default file path for the catalog file.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
func SaveCatalog(path string, catalog model.Catalog) error {
	return writeJSON(path, catalog)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.Catalog{}, err
	}
	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.Catalog{}, err
	}
	return catalog, nil
}

// ImportCatalog merges products, stages and materials from another catalog
// file into an existing catalog. Entries with duplicate IDs or material
// names are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	materialNames := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		materialNames[m.Name] = true
	}
	for _, m := range imported.Materials {
		if !materialNames[m.Name] {
			existing.Materials = append(existing.Materials, m)
			materialNames[m.Name] = true
		}
	}

	productIDs := make(map[string]bool, len(existing.Products))
	for _, p := range existing.Products {
		productIDs[p.ID] = true
	}
	for _, p := range imported.Products {
		if !productIDs[p.ID] {
			existing.Products = append(existing.Products, p)
			productIDs[p.ID] = true
		}
	}

	stageIDs := make(map[string]bool, len(existing.Stages))
	for _, s := range existing.Stages {
		stageIDs[s.ID] = true
	}
	for _, s := range imported.Stages {
		if !stageIDs[s.ID] {
			existing.Stages = append(existing.Stages, s)
			stageIDs[s.ID] = true
		}
	}

	return existing, nil
}
