package doctor

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	"github.com/jwalitptl/pharmacy-api/internal/model"
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
	doctor := r.Group("/doctor")
	{
		doctor.POST("/prescriptions", h.CreatePrescription)
		doctor.GET("/prescriptions/:doctorId", h.ListPrescriptions)
	}
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	if !sameID(c.GetString(middleware.ContextAccountID), req.DoctorID) {
		c.JSON(http.StatusForbidden, httputil.ErrorBody{Error: "doctors can only write prescriptions as themselves"})
		return
	}

	p, err := h.prescriptions.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPrescriptions(c *gin.Context) {
	doctorID := c.Param("doctorId")
	if !sameID(c.GetString(middleware.ContextAccountID), doctorID) {
		c.JSON(http.StatusForbidden, httputil.ErrorBody{Error: "doctors can only view their own prescriptions"})
		return
	}

	prescriptions, err := h.prescriptions.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// sameID compares account ids ignoring case and surrounding whitespace.
func sameID(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
