package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/handler"
	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit  float64
	RateBurst  int
	Timeout    time.Duration
	CORSConfig middleware.CORSConfig
}

// Router wires the role-scoped route groups behind the shared middleware
// stack. Every group except auth and health requires a token carrying the
// matching role.
type Router struct {
	engine      *gin.Engine
	auth        *middleware.AuthMiddleware
	healthH     *handler.Handler
	authH       Handler
	adminH      Handler
	doctorH     Handler
	patientH    Handler
	pharmacistH Handler
	supplierH   Handler
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	healthH *handler.Handler,
	authH Handler,
	adminH Handler,
	doctorH Handler,
	patientH Handler,
	pharmacistH Handler,
	supplierH Handler,
	m *metrics.Metrics,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(m),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(config.RateLimit, config.RateBurst)
	engine.Use(rateLimiter.Limit())

	return &Router{
		engine:      engine,
		auth:        auth,
		healthH:     healthH,
		authH:       authH,
		adminH:      adminH,
		doctorH:     doctorH,
		patientH:    patientH,
		pharmacistH: pharmacistH,
		supplierH:   supplierH,
	}
}

func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.setupHealthCheck(api)
	r.authH.RegisterRoutes(api)

	r.registerScoped(api, model.RoleAdmin, r.adminH)
	r.registerScoped(api, model.RoleDoctor, r.doctorH)
	r.registerScoped(api, model.RolePatient, r.patientH)
	r.registerScoped(api, model.RolePharmacist, r.pharmacistH)
	r.registerScoped(api, model.RoleSupplier, r.supplierH)
}

func (r *Router) registerScoped(api *gin.RouterGroup, role model.Role, h Handler) {
	group := api.Group("", r.auth.Authenticate(), r.auth.RequireRole(role))
	h.RegisterRoutes(group)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.healthH.LivenessCheck)
		health.GET("/ready", r.healthH.ReadinessCheck)
		health.GET("/metrics", r.healthH.MetricsHandler)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
