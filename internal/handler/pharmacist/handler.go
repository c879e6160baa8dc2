package pharmacist

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	"github.com/jwalitptl/pharmacy-api/internal/model"
	orderService "github.com/jwalitptl/pharmacy-api/internal/service/order"
	prescriptionService "github.com/jwalitptl/pharmacy-api/internal/service/prescription"
	reportService "github.com/jwalitptl/pharmacy-api/internal/service/report"
	supplierchangeService "github.com/jwalitptl/pharmacy-api/internal/service/supplierchange"
	"github.com/jwalitptl/pharmacy-api/pkg/httputil"
)

type Handler struct {
	prescriptions prescriptionService.Servicer
	orders        orderService.Servicer
	reports       reportService.Servicer
	changes       supplierchangeService.Servicer
}

func NewHandler(
	prescriptions prescriptionService.Servicer,
	orders orderService.Servicer,
	reports reportService.Servicer,
	changes supplierchangeService.Servicer,
) *Handler {
	return &Handler{
		prescriptions: prescriptions,
		orders:        orders,
		reports:       reports,
		changes:       changes,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	pharmacist := r.Group("/pharmacist")
	{
		pharmacist.GET("/inventory", h.Inventory)
		pharmacist.GET("/check", h.LowStock)
		pharmacist.GET("/orders", h.ListOrders)
		pharmacist.POST("/orders", h.PlaceOrder)
		pharmacist.GET("/prescriptions/:id", h.GetPrescription)
		pharmacist.POST("/prescriptions/fulfill", h.FulfillPrescription)
		pharmacist.POST("/changesupplier", h.ChangeSupplier)
	}
}

func (h *Handler) Inventory(c *gin.Context) {
	levels, err := h.reports.StockLevels(c.Request.Context(), c.GetString(middleware.ContextAccountID))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (h *Handler) LowStock(c *gin.Context) {
	levels, err := h.reports.LowStock(c.Request.Context(), c.GetString(middleware.ContextAccountID))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListForPharmacist(c.Request.Context(), c.GetString(middleware.ContextAccountID))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req model.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	if !sameID(c.GetString(middleware.ContextAccountID), req.PharmacistID) {
		c.JSON(http.StatusForbidden, httputil.ErrorBody{Error: "pharmacists can only order for themselves"})
		return
	}

	o, err := h.orders.Place(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) GetPrescription(c *gin.Context) {
	view, err := h.prescriptions.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) FulfillPrescription(c *gin.Context) {
	var req model.FulfillPrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	if !sameID(c.GetString(middleware.ContextAccountID), req.PharmacistID) {
		c.JSON(http.StatusForbidden, httputil.ErrorBody{Error: "pharmacists can only fulfill from their own inventory"})
		return
	}

	if err := h.prescriptions.Fulfill(c.Request.Context(), &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, http.StatusOK, "prescription fulfilled successfully")
}

func (h *Handler) ChangeSupplier(c *gin.Context) {
	var req model.ChangeSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	if !sameID(c.GetString(middleware.ContextAccountID), req.PharmacistID) {
		c.JSON(http.StatusForbidden, httputil.ErrorBody{Error: "pharmacists can only change their own supplier"})
		return
	}

	r, err := h.changes.Submit(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func sameID(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
