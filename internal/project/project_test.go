package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/parkcut/internal/model"
)

func TestLoadCatalog_CreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Materials)
	assert.NotEmpty(t, catalog.Products)
	assert.FileExists(t, path)

	// A second load reads the saved file back identically.
	reloaded, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Products), len(reloaded.Products))
}

func TestSaveLoadCatalog_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	catalog := model.DefaultCatalog()

	require.NoError(t, SaveCatalog(path, catalog))
	loaded, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, catalog.Materials, loaded.Materials)
	assert.Equal(t, len(catalog.Stages), len(loaded.Stages))
}

func TestImportCatalog_SkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.json")

	imported := model.DefaultCatalog()
	require.NoError(t, SaveCatalog(path, imported))

	existing := model.DefaultCatalog()
	before := len(existing.Materials)

	// Default catalogs share material names, so nothing should double up.
	merged, err := ImportCatalog(path, existing)
	require.NoError(t, err)
	assert.Len(t, merged.Materials, before)
}

func TestLoadWarehouse_MissingFileIsEmpty(t *testing.T) {
	stock, err := LoadWarehouse(filepath.Join(t.TempDir(), "warehouse.json"))
	require.NoError(t, err)
	assert.Empty(t, stock.Entries)
}

func TestSaveLoadWarehouse_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warehouse.json")
	stock := model.Warehouse{Entries: []model.StockEntry{
		{Material: "Pine board 40x90", Length: 6.0, Quantity: 12},
		{Material: "Anchor bolt M12", Quantity: 200},
	}}

	require.NoError(t, SaveWarehouse(path, stock))
	loaded, err := LoadWarehouse(path)
	require.NoError(t, err)
	assert.Equal(t, stock, loaded)
}

func TestSaveLoadOrder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.json")
	o := model.NewOrder("Forest Park LLC", []model.OrderItem{
		{Kind: model.ItemProduct, RefID: "p1", Amount: 3},
		{Kind: model.ItemStage, RefID: "s1", Amount: 12.5},
	})

	require.NoError(t, SaveOrder(path, o))
	loaded, err := LoadOrder(path)
	require.NoError(t, err)
	assert.Equal(t, o, loaded)
}

func TestLoadAppConfig_DefaultsWhenMissing(t *testing.T) {
	config, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, model.MinUsefulRemainder, config.UsefulRemainder)
	assert.NotEmpty(t, config.StandardLengths)
}

func TestLoadAppConfig_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveAppConfig(path, model.AppConfig{Currency: "EUR"}))

	config, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", config.Currency)
	assert.Equal(t, model.MinUsefulRemainder, config.UsefulRemainder)
	assert.NotEmpty(t, config.StandardLengths)
}
