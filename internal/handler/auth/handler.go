package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	authService "github.com/jwalitptl/pharmacy-api/internal/service/auth"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
	"github.com/jwalitptl/pharmacy-api/pkg/httputil"
)

type Handler struct {
	service authService.Servicer
}

func NewHandler(service authService.Servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		// an unknown username is a bad login attempt, not a missing resource
		if apperror.IsCode(err, apperror.CodeNotFound) {
			c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: "user not found"})
			return
		}
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.ErrorBody{Error: err.Error()})
		return
	}

	identity, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.RegisterResponse{
		Message: "registration successful",
		ID:      identity.ID,
		Role:    identity.Role,
	})
}
