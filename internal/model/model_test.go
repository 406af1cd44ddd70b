package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialType(t *testing.T) {
	assert.True(t, MaterialLumber.Valid())
	assert.True(t, MaterialFastener.Valid())
	assert.False(t, MaterialType("glue").Valid())

	assert.Equal(t, "Lumber", MaterialLumber.String())
	assert.Equal(t, "Fastener", MaterialFastener.String())
}

func TestWarehouse_BoardLengthsExpandsQuantities(t *testing.T) {
	w := Warehouse{Entries: []StockEntry{
		{Material: "board", Length: 3.0, Quantity: 2},
		{Material: "board", Length: 6.0, Quantity: 1},
		{Material: "beam", Length: 4.0, Quantity: 5},
		{Material: "screw", Quantity: 100},
	}}

	assert.Equal(t, []float64{3.0, 3.0, 6.0}, w.BoardLengths("board"))
	assert.Empty(t, w.BoardLengths("screw"), "fastener entries have no board lengths")
}

func TestWarehouse_RemoveBoard(t *testing.T) {
	w := Warehouse{Entries: []StockEntry{
		{Material: "board", Length: 3.0, Quantity: 2},
	}}

	assert.True(t, w.RemoveBoard("board", 3.0))
	assert.Equal(t, 1.0, w.Entries[0].Quantity)

	assert.True(t, w.RemoveBoard("board", 3.0))
	assert.Empty(t, w.Entries, "entry dropped when quantity reaches zero")

	assert.False(t, w.RemoveBoard("board", 3.0))
}

func TestWarehouse_AddBoardMerges(t *testing.T) {
	w := Warehouse{}
	w.AddBoard("board", 2.5)
	w.AddBoard("board", 2.5)
	w.AddBoard("board", 4.0)

	require.Len(t, w.Entries, 2)
	assert.Equal(t, 2.0, w.Entries[0].Quantity)
}

func TestRequirements_ValuesAndTotal(t *testing.T) {
	req := make(Requirements)
	req.Add("board", Requirement{Value: 1.5, Origin: "a"})
	req.Add("board", Requirement{Value: 2.5, Origin: "b"})

	assert.Equal(t, []float64{1.5, 2.5}, req.Values("board"))
	assert.InDelta(t, 4.0, req.Total("board"), 1e-9)
	assert.Nil(t, req.Values("missing"))
}

func TestPlanEntry_Remainder(t *testing.T) {
	e := PlanEntry{StockLength: 4.5, Cuts: []float64{2.5, 1.8}}
	assert.InDelta(t, 4.3, e.UsedLength(), 1e-9)
	assert.InDelta(t, 0.2, e.Remainder(), 1e-9)
}

func TestCatalog_Finders(t *testing.T) {
	catalog := DefaultCatalog()

	m := catalog.FindMaterial("Pine board 40x90")
	require.NotNil(t, m)
	assert.Equal(t, MaterialLumber, m.Type)
	assert.Nil(t, catalog.FindMaterial("ghost"))

	p := catalog.FindProductByName("Simple transition")
	require.NotNil(t, p)
	assert.Equal(t, p, catalog.FindProduct(p.ID))

	s := catalog.FindStageByName("Rope bridge")
	require.NotNil(t, s)
	assert.Equal(t, s, catalog.FindStage(s.ID))
}

func TestCatalog_JSONRoundTrip(t *testing.T) {
	catalog := DefaultCatalog()

	data, err := json.Marshal(catalog)
	require.NoError(t, err)

	var loaded Catalog
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, catalog.Materials, loaded.Materials)
	require.Len(t, loaded.Products, len(catalog.Products))
	assert.True(t, loaded.Products[0].Price.Equal(catalog.Products[0].Price))
}

func TestNewOrderGeneratesID(t *testing.T) {
	o := NewOrder("customer", nil)
	assert.Len(t, o.ID, 8)
}
