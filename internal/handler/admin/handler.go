package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	directoryService "github.com/jwalitptl/pharmacy-api/internal/service/directory"
	reportService "github.com/jwalitptl/pharmacy-api/internal/service/report"
	supplierchangeService "github.com/jwalitptl/pharmacy-api/internal/service/supplierchange"
	"github.com/jwalitptl/pharmacy-api/pkg/httputil"
)

type Handler struct {
	directory directoryService.Servicer
	reports   reportService.Servicer
	changes   supplierchangeService.Servicer
}

func NewHandler(directory directoryService.Servicer, reports reportService.Servicer, changes supplierchangeService.Servicer) *Handler {
	return &Handler{
		directory: directory,
		reports:   reports,
		changes:   changes,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/doctors", h.ListDoctors)
		admin.PUT("/doctors/:id", h.UpdateDoctor)
		admin.DELETE("/doctors/:id", h.DeleteDoctor)

		admin.GET("/pharmacists", h.ListPharmacists)
		admin.PUT("/pharmacists/:id", h.UpdatePharmacist)
		admin.DELETE("/pharmacists/:id", h.DeletePharmacist)

		admin.GET("/patients", h.ListPatients)
		admin.PUT("/patients/:id", h.UpdatePatient)
		admin.DELETE("/patients/:id", h.DeletePatient)

		admin.GET("/suppliers", h.ListSuppliers)
		admin.PUT("/suppliers/:id", h.UpdateSupplier)
		admin.DELETE("/suppliers/:id", h.DeleteSupplier)

		admin.GET("/top-pharmacist", h.TopPharmacist)
		admin.GET("/supplier-change-requests", h.ListSupplierChangeRequests)
		admin.PUT("/fulfill-supplier-change/:id", h.FulfillSupplierChange)
	}
}

func (h *Handler) ListDoctors(c *gin.Context)     { h.list(c, model.RoleDoctor) }
func (h *Handler) ListPharmacists(c *gin.Context) { h.list(c, model.RolePharmacist) }
func (h *Handler) ListPatients(c *gin.Context)    { h.list(c, model.RolePatient) }
func (h *Handler) ListSuppliers(c *gin.Context)   { h.list(c, model.RoleSupplier) }

func (h *Handler) list(c *gin.Context, role model.Role) {
	identities, err := h.directory.List(c.Request.Context(), role)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, identities)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}
	h.update(c, &model.Identity{
		ID:        c.Param("id"),
		Role:      model.RoleDoctor,
		Specialty: &req.Specialty,
	})
}

func (h *Handler) UpdatePharmacist(c *gin.Context) {
	var req model.UpdatePharmacistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}
	h.update(c, &model.Identity{
		ID:               c.Param("id"),
		Role:             model.RolePharmacist,
		PharmacyLocation: &req.PharmacyLocation,
	})
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}
	h.update(c, &model.Identity{
		ID:          c.Param("id"),
		Role:        model.RolePatient,
		ContactInfo: &req.ContactInfo,
		DateOfBirth: &req.DateOfBirth,
	})
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	var req model.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}
	h.update(c, &model.Identity{
		ID:          c.Param("id"),
		Role:        model.RoleSupplier,
		ContactInfo: &req.ContactInfo,
		Address:     &req.Address,
	})
}

func (h *Handler) update(c *gin.Context, identity *model.Identity) {
	if err := h.directory.Update(c.Request.Context(), identity); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, http.StatusOK, "record updated successfully")
}

func (h *Handler) DeleteDoctor(c *gin.Context)     { h.delete(c, model.RoleDoctor) }
func (h *Handler) DeletePharmacist(c *gin.Context) { h.delete(c, model.RolePharmacist) }
func (h *Handler) DeletePatient(c *gin.Context)    { h.delete(c, model.RolePatient) }
func (h *Handler) DeleteSupplier(c *gin.Context)   { h.delete(c, model.RoleSupplier) }

func (h *Handler) delete(c *gin.Context, role model.Role) {
	if err := h.directory.Delete(c.Request.Context(), role, c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, http.StatusOK, "record deleted successfully")
}

func (h *Handler) TopPharmacist(c *gin.Context) {
	stats, err := h.reports.TopPharmacist(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListSupplierChangeRequests(c *gin.Context) {
	requests, err := h.changes.ListPending(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) FulfillSupplierChange(c *gin.Context) {
	var req model.FulfillSupplierChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	if err := h.changes.Fulfill(c.Request.Context(), &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, http.StatusOK, "supplier change fulfilled")
}
