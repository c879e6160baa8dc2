package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository/memory"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store), store
}

func addFulfillment(t *testing.T, store *memory.Store, pharmacistID string, price float64) {
	t.Helper()
	err := store.Fulfillments().Create(context.Background(), &model.Fulfillment{
		PrescriptionID: "rx",
		PharmacistID:   pharmacistID,
		FulfillDate:    "2026-02-01",
		Price:          price,
	})
	require.NoError(t, err)
}

func TestTopPharmacist_EmptyLog(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.TopPharmacist(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
	assert.Contains(t, err.Error(), "no top pharmacist found")
}

func TestTopPharmacist_MostFulfillmentsWins(t *testing.T) {
	svc, store := newTestService(t)

	addFulfillment(t, store, "pharm1", 100)
	addFulfillment(t, store, "pharm2", 5)
	addFulfillment(t, store, "pharm2", 5)

	top, err := svc.TopPharmacist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pharm2", top.PharmacistID)
	assert.Equal(t, 2, top.TotalFulfillments)
	assert.Equal(t, 10.0, top.TotalRevenue)
}

func TestTopPharmacist_RevenueBreaksCountTie(t *testing.T) {
	svc, store := newTestService(t)

	addFulfillment(t, store, "pharm1", 10)
	addFulfillment(t, store, "pharm2", 25)

	top, err := svc.TopPharmacist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pharm2", top.PharmacistID)
}

func TestTopPharmacist_IDBreaksFullTie(t *testing.T) {
	svc, store := newTestService(t)

	addFulfillment(t, store, "pharm9", 10)
	addFulfillment(t, store, "pharm2", 10)

	top, err := svc.TopPharmacist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pharm2", top.PharmacistID)
}

func TestLowStock_FlagsDrugsLowAnywhere(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// aspirin is plentiful for pharm1 but scarce for pharm2, so pharm1's
	// aspirin row is still flagged
	for _, item := range []*model.InventoryItem{
		{PharmacistID: "pharm1", DrugName: "aspirin", Quantity: 50},
		{PharmacistID: "pharm2", DrugName: "aspirin", Quantity: 3},
		{PharmacistID: "pharm1", DrugName: "ibuprofen", Quantity: 40},
	} {
		require.NoError(t, store.Inventory().Insert(ctx, item))
	}

	levels, err := svc.LowStock(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "aspirin", levels[0].DrugName)
	assert.Equal(t, 50, levels[0].Quantity)
}

func TestLowStock_NoneFlagged(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Inventory().Insert(ctx, &model.InventoryItem{
		PharmacistID: "pharm1", DrugName: "aspirin", Quantity: 50,
	}))

	levels, err := svc.LowStock(ctx, "pharm1")
	require.NoError(t, err)
	assert.Empty(t, levels)
}

func TestStockLevels(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Inventory().Insert(ctx, &model.InventoryItem{
		PharmacistID: "pharm1", DrugName: "aspirin", Quantity: 12,
	}))

	levels, err := svc.StockLevels(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, 12, levels[0].Quantity)
}
