package admin

import (
	"bytes"
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
	directoryService "github.com/jwalitptl/pharmacy-api/internal/service/directory"
	reportService "github.com/jwalitptl/pharmacy-api/internal/service/report"
	supplierchangeService "github.com/jwalitptl/pharmacy-api/internal/service/supplierchange"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	tokens := token.NewService("test-secret", time.Hour)
	tok, err := tokens.Issue("admin1", string(model.RoleAdmin))
	require.NoError(t, err)

	authMW := middleware.NewAuthMiddleware(tokens)
	h := NewHandler(
		directoryService.NewService(store),
		reportService.NewService(store),
		supplierchangeService.NewService(store),
	)

	r := gin.New()
	api := r.Group("/api", authMW.Authenticate(), authMW.RequireRole(model.RoleAdmin))
	h.RegisterRoutes(api)
	return r, store, tok
}

func doRequest(t *testing.T, r *gin.Engine, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	return w
}

func seedDoctor(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	require.NoError(t, store.Identities().Create(context.Background(), &model.Identity{
		ID: id, Username: "u-" + id, Password: "pw", Role: model.RoleDoctor,
	}))
}

func TestListDoctors(t *testing.T) {
	r, store, tok := newTestRouter(t)
	seedDoctor(t, store, "doc1")
	seedDoctor(t, store, "doc2")

	w := doRequest(t, r, http.MethodGet, "/api/admin/doctors", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doctors []model.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	assert.Len(t, doctors, 2)
}

func TestUpdateDoctor_AllFieldsRequired(t *testing.T) {
	r, store, tok := newTestRouter(t)
	seedDoctor(t, store, "doc1")

	w := doRequest(t, r, http.MethodPut, "/api/admin/doctors/doc1", tok, map[string]string{
		"specialty": "oncology",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/admin/doctors/doc1", tok, model.UpdateDoctorRequest{
		Username:  "u-doc1",
		Specialty: "oncology",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateDoctor_NotFound(t *testing.T) {
	r, _, tok := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/admin/doctors/doc404", tok, model.UpdateDoctorRequest{
		Username:  "nobody",
		Specialty: "oncology",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDoctor_Cascades(t *testing.T) {
	r, store, tok := newTestRouter(t)
	ctx := context.Background()
	seedDoctor(t, store, "doc1")
	require.NoError(t, store.Prescriptions().Create(ctx, &model.Prescription{
		ID: "rx1", PatientID: "pat1", DoctorID: "doc1",
		PrescriptionDate: "2026-02-01", Medications: "aspirin",
	}))

	w := doRequest(t, r, http.MethodDelete, "/api/admin/doctors/doc1", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := store.Prescriptions().Get(ctx, "rx1")
	assert.Error(t, err)
}

func TestTopPharmacist(t *testing.T) {
	r, store, tok := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/admin/top-pharmacist", tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, store.Fulfillments().Create(context.Background(), &model.Fulfillment{
		PrescriptionID: "rx1", PharmacistID: "pharm1", FulfillDate: "2026-02-01", Price: 20,
	}))

	w = doRequest(t, r, http.MethodGet, "/api/admin/top-pharmacist", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.PharmacistStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, "pharm1", stats.PharmacistID)
	assert.Equal(t, 1, stats.TotalFulfillments)
}

func TestFulfillSupplierChange(t *testing.T) {
	r, store, tok := newTestRouter(t)
	ctx := context.Background()

	supp := "supp1"
	require.NoError(t, store.Inventory().Insert(ctx, &model.InventoryItem{
		PharmacistID: "pharm1", DrugName: "aspirin", Quantity: 10, SupplierID: &supp,
	}))
	require.NoError(t, store.SupplierChanges().Create(ctx, &model.SupplierChangeRequest{
		ID: "req1", PharmacistID: "pharm1", NewSupplierID: "supp9",
		RequestDate: time.Now(), Status: model.RequestStatusPending,
	}))

	w := doRequest(t, r, http.MethodPut, "/api/admin/fulfill-supplier-change/req1", tok, model.FulfillSupplierChangeRequest{
		PharmacistID:  "pharm1",
		NewSupplierID: "supp9",
	})
	require.Equal(t, http.StatusOK, w.Code)

	items, err := store.Inventory().ListByPharmacist(ctx, "pharm1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "supp9", *items[0].SupplierID)

	pending, err := store.SupplierChanges().ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
