package supplier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository/memory"
	orderService "github.com/jwalitptl/pharmacy-api/internal/service/order"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	tokens := token.NewService("test-secret", time.Hour)
	tok, err := tokens.Issue("supp1", string(model.RoleSupplier))
	require.NoError(t, err)

	authMW := middleware.NewAuthMiddleware(tokens)
	r := gin.New()
	api := r.Group("/api", authMW.Authenticate(), authMW.RequireRole(model.RoleSupplier))
	NewHandler(orderService.NewService(store)).RegisterRoutes(api)
	return r, store, tok
}

func doRequest(t *testing.T, r *gin.Engine, method, path, tok string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	return w
}

func seedPendingOrder(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	require.NoError(t, store.Orders().Create(context.Background(), &model.Order{
		ID: id, SupplierID: "supp1", PharmacistID: "pharm1",
		DrugName: "Aspirin", OrderedQuantity: 50, OrderDate: time.Now(),
		Status: model.OrderStatusPending,
	}))
}

func TestListPendingOrders(t *testing.T) {
	r, store, tok := newTestRouter(t)
	ctx := context.Background()

	name := "Acme Pharma"
	require.NoError(t, store.Identities().Create(ctx, &model.Identity{
		ID: "supp1", Username: "acme", Password: "pw", Role: model.RoleSupplier, Name: &name,
	}))
	seedPendingOrder(t, store, "ord1")

	w := doRequest(t, r, http.MethodGet, "/api/supplier/orders", tok)
	require.Equal(t, http.StatusOK, w.Code)

	var views []model.SupplierOrderView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "ord1", views[0].OrderID)
	require.NotNil(t, views[0].SupplierName)
	assert.Equal(t, "Acme Pharma", *views[0].SupplierName)
}

func TestConfirmOrder(t *testing.T) {
	r, store, tok := newTestRouter(t)
	seedPendingOrder(t, store, "ord1")

	w := doRequest(t, r, http.MethodPost, "/api/supplier/orders/ord1/confirm", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order confirmed")

	items, err := store.Inventory().ListByPharmacist(context.Background(), "pharm1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Quantity)

	// confirming again must not double-count
	w = doRequest(t, r, http.MethodPost, "/api/supplier/orders/ord1/confirm", tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "order not found or already confirmed")
}

func TestConfirmOrderWrongMethod(t *testing.T) {
	r, store, tok := newTestRouter(t)
	seedPendingOrder(t, store, "ord1")

	w := doRequest(t, r, http.MethodPut, "/api/supplier/orders/ord1/confirm", tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
