package supplier

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	orderService "github.com/jwalitptl/pharmacy-api/internal/service/order"
	"github.com/jwalitptl/pharmacy-api/pkg/httputil"
)

type Handler struct {
	orders orderService.Servicer
}

func NewHandler(orders orderService.Servicer) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	supplier := r.Group("/supplier")
	{
		supplier.GET("/orders", h.ListPendingOrders)
		supplier.POST("/orders/:id/confirm", h.ConfirmOrder)
	}
}

func (h *Handler) ListPendingOrders(c *gin.Context) {
	orders, err := h.orders.ListPendingForSupplier(c.Request.Context(), c.GetString(middleware.ContextAccountID))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ConfirmOrder(c *gin.Context) {
	if err := h.orders.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, http.StatusOK, "order confirmed and inventory updated")
}
