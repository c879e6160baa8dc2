package order

import (
	"context"
	"testing"
	"time"

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

func strptr(s string) *string { return &s }

func TestPlace(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	o, err := svc.Place(ctx, &model.PlaceOrderRequest{
		DrugName:        "Aspirin",
		OrderedQuantity: 50,
		SupplierID:      "supp1",
		PharmacistID:    "pharm1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, model.OrderStatusPending, o.Status)

	orders, err := store.Orders().ListByPharmacist(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 50, orders[0].OrderedQuantity)
}

func TestPlace_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	for _, qty := range []int{0, -5} {
		_, err := svc.Place(context.Background(), &model.PlaceOrderRequest{
			DrugName:        "Aspirin",
			OrderedQuantity: qty,
			SupplierID:      "supp1",
			PharmacistID:    "pharm1",
		})
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidQuantity))
	}
}

func TestConfirm_TopsUpExistingStock(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Inventory().Insert(ctx, &model.InventoryItem{
		PharmacistID: "pharm1", DrugName: "Aspirin", Quantity: 30, SupplierID: strptr("supp1"),
	}))
	o, err := svc.Place(ctx, &model.PlaceOrderRequest{
		DrugName: "Aspirin", OrderedQuantity: 50, SupplierID: "supp1", PharmacistID: "pharm1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, o.ID))

	items, err := store.Inventory().ListByPharmacist(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 80, items[0].Quantity)
	require.NotNil(t, items[0].LastOrderDate)
	assert.WithinDuration(t, time.Now(), *items[0].LastOrderDate, time.Minute)

	orders, err := store.Orders().ListByPharmacist(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusConfirmed, orders[0].Status)
}

func TestConfirm_InsertsRowForNewDrug(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	o, err := svc.Place(ctx, &model.PlaceOrderRequest{
		DrugName: "Ibuprofen", OrderedQuantity: 25, SupplierID: "supp2", PharmacistID: "pharm1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, o.ID))

	items, err := store.Inventory().ListByPharmacist(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ibuprofen", items[0].DrugName)
	assert.Equal(t, 25, items[0].Quantity)
	require.NotNil(t, items[0].SupplierID)
	assert.Equal(t, "supp2", *items[0].SupplierID)
}

func TestConfirm_SecondConfirmRejected(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	o, err := svc.Place(ctx, &model.PlaceOrderRequest{
		DrugName: "Aspirin", OrderedQuantity: 50, SupplierID: "supp1", PharmacistID: "pharm1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, o.ID))

	err = svc.Confirm(ctx, o.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))

	// stock counted exactly once
	items, err := store.Inventory().ListByPharmacist(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Quantity)
}

func TestConfirm_UnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Confirm(context.Background(), "no-such-order")
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
	assert.Contains(t, err.Error(), "order not found or already confirmed")
}

func TestListPendingForSupplier_ExcludesConfirmed(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Identities().Create(ctx, &model.Identity{
		ID: "supp1", Username: "acme", Password: "pw", Role: model.RoleSupplier,
	}))
	require.NoError(t, store.Identities().Create(ctx, &model.Identity{
		ID: "pharm1", Username: "carol", Password: "pw", Role: model.RolePharmacist,
	}))

	o1, err := svc.Place(ctx, &model.PlaceOrderRequest{
		DrugName: "Aspirin", OrderedQuantity: 50, SupplierID: "supp1", PharmacistID: "pharm1",
	})
	require.NoError(t, err)
	_, err = svc.Place(ctx, &model.PlaceOrderRequest{
		DrugName: "Ibuprofen", OrderedQuantity: 20, SupplierID: "supp1", PharmacistID: "pharm1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, o1.ID))

	pending, err := svc.ListPendingForSupplier(ctx, "supp1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Ibuprofen", pending[0].DrugName)
	require.NotNil(t, pending[0].PharmacistUsername)
	assert.Equal(t, "carol", *pending[0].PharmacistUsername)
}
