package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetrov/parkcut/internal/engine"
	"github.com/avetrov/parkcut/internal/model"
	"github.com/avetrov/parkcut/internal/warehouse"
)

// buildTestDocument creates a realistic order document for testing.
func buildTestDocument(t *testing.T) OrderDocument {
	t.Helper()

	catalog := model.DefaultCatalog()
	order := model.NewOrder("Forest Park LLC", []model.OrderItem{
		{Kind: model.ItemProduct, RefID: catalog.Products[0].ID, Amount: 2},
		{Kind: model.ItemStage, RefID: catalog.Stages[0].ID, Amount: 6},
	})

	opt := engine.New()
	res, err := opt.Optimize([]float64{6.0, 6.0, 4.5}, []float64{2.5, 1.8, 1.2, 1.2})
	require.NoError(t, err)

	return OrderDocument{
		Order:     order,
		Catalog:   &catalog,
		TotalCost: "14850",
		Currency:  "RUB",
		Results:   map[string]model.OptimizeResult{"Pine board 40x90": res},
		Instructions: map[string]string{
			"Pine board 40x90": opt.Instructions(res),
		},
	}
}

func TestExportOrderPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.pdf")
	doc := buildTestDocument(t)

	require.NoError(t, ExportOrderPDF(path, doc))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000), "PDF should have substantial content")
}

func TestExportOrderPDF_WithShortfalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.pdf")
	doc := buildTestDocument(t)
	doc.Shortfalls = []warehouse.Shortfall{
		{Material: "Anchor bolt M12", Reason: "required 120, available 100"},
	}

	require.NoError(t, ExportOrderPDF(path, doc))
	assert.FileExists(t, path)
}

func TestExportOrderPDF_EmptyOrderFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.pdf")
	err := ExportOrderPDF(path, OrderDocument{Order: model.Order{ID: "x"}})
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
