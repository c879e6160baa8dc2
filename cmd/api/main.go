package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/pharmacy-api/internal/config"
	"github.com/jwalitptl/pharmacy-api/internal/handler"
	adminHandler "github.com/jwalitptl/pharmacy-api/internal/handler/admin"
	authHandler "github.com/jwalitptl/pharmacy-api/internal/handler/auth"
	doctorHandler "github.com/jwalitptl/pharmacy-api/internal/handler/doctor"
	patientHandler "github.com/jwalitptl/pharmacy-api/internal/handler/patient"
	pharmacistHandler "github.com/jwalitptl/pharmacy-api/internal/handler/pharmacist"
	supplierHandler "github.com/jwalitptl/pharmacy-api/internal/handler/supplier"
	"github.com/jwalitptl/pharmacy-api/internal/middleware"
	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository/postgres"
	"github.com/jwalitptl/pharmacy-api/internal/router"
	authService "github.com/jwalitptl/pharmacy-api/internal/service/auth"
	directoryService "github.com/jwalitptl/pharmacy-api/internal/service/directory"
	orderService "github.com/jwalitptl/pharmacy-api/internal/service/order"
	prescriptionService "github.com/jwalitptl/pharmacy-api/internal/service/prescription"
	reportService "github.com/jwalitptl/pharmacy-api/internal/service/report"
	supplierchangeService "github.com/jwalitptl/pharmacy-api/internal/service/supplierchange"
	"github.com/jwalitptl/pharmacy-api/pkg/logger"
	"github.com/jwalitptl/pharmacy-api/pkg/metrics"
	"github.com/jwalitptl/pharmacy-api/pkg/security"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

func main() {
	logger.SetupGlobal(zerolog.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := model.RegisterValidations(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validations")
	}

	store := postgres.NewStore(db)
	tokens := token.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	authSvc := authService.NewService(store, tokens, hasher)
	directorySvc := directoryService.NewService(store)
	orderSvc := orderService.NewService(store)
	prescriptionSvc := prescriptionService.NewService(store)
	changeSvc := supplierchangeService.NewService(store)
	reportSvc := reportService.NewService(store)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	m := metrics.New("pharmacy")

	r := router.NewRouter(
		authMiddleware,
		handler.NewHandler(db),
		authHandler.NewHandler(authSvc),
		adminHandler.NewHandler(directorySvc, reportSvc, changeSvc),
		doctorHandler.NewHandler(prescriptionSvc),
		patientHandler.NewHandler(prescriptionSvc),
		pharmacistHandler.NewHandler(prescriptionSvc, orderSvc, reportSvc, changeSvc),
		supplierHandler.NewHandler(orderSvc),
		m,
		router.Config{
			RateLimit:  cfg.RateLimit.RequestsPerSecond,
			RateBurst:  cfg.RateLimit.Burst,
			Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
