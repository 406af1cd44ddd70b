package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/avetrov/parkcut/internal/model"
)

// DefaultWarehousePath returns the default file path for the warehouse file.
func DefaultWarehousePath() string {
	return filepath.Join(DefaultConfigDir(), "warehouse.json")
}

// SaveWarehouse writes the warehouse snapshot to the specified JSON file.
func SaveWarehouse(path string, stock model.Warehouse) error {
	return writeJSON(path, stock)
}

// LoadWarehouse reads a warehouse snapshot from the specified JSON file.
// A missing file is an empty warehouse, not an error.
func LoadWarehouse(path string) (model.Warehouse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Warehouse{}, nil
		}
		return model.Warehouse{}, err
	}
	var stock model.Warehouse
	if err := json.Unmarshal(data, &stock); err != nil {
		return model.Warehouse{}, err
	}
	return stock, nil
}

// LoadOrder reads an order from the specified JSON file.
func LoadOrder(path string) (model.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Order{}, err
	}
	var o model.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// SaveOrder writes an order to the specified JSON file.
func SaveOrder(path string, o model.Order) error {
	return writeJSON(path, o)
}

// OrderPath returns a stable file path for an order under the data directory.
func OrderPath(orderID string) string {
	return filepath.Join(DefaultConfigDir(), "orders", orderID+".json")
}
