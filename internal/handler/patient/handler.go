package patient

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	prescriptionService "github.com/jwalitptl/pharmacy-api/internal/service/prescription"
	"github.com/jwalitptl/pharmacy-api/pkg/httputil"
)

type Handler struct {
	prescriptions prescriptionService.Servicer
}

func NewHandler(prescriptions prescriptionService.Servicer) *Handler {
	return &Handler{prescriptions: prescriptions}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patient := r.Group("/patient")
	{
		patient.GET("/prescription/:patientId", h.ListPrescriptions)
	}
}

func (h *Handler) ListPrescriptions(c *gin.Context) {
	patientID := c.Param("patientId")
	caller := c.GetString(middleware.ContextAccountID)
	if !strings.EqualFold(strings.TrimSpace(caller), strings.TrimSpace(patientID)) {
		c.JSON(http.StatusForbidden, httputil.ErrorBody{Error: "patients can only view their own prescriptions"})
		return
	}

	prescriptions, err := h.prescriptions.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}
