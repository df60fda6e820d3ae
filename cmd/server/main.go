package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarflow/internal/config"
	"solarflow/internal/handler"
	"solarflow/internal/httpserver"
	"solarflow/internal/progress"
	"solarflow/internal/repository"
	"solarflow/internal/service"
	"solarflow/pkg/db"
	"solarflow/pkg/logger"
	"solarflow/pkg/mq"
	pkgredis "solarflow/pkg/redis"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting solarflow server...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("weight_scheme", cfg.Progress.WeightScheme),
	)

	scheme, err := progress.ParseWeightScheme(cfg.Progress.WeightScheme)
	if err != nil {
		log.Fatal("Invalid weight scheme", zap.Error(err))
	}

	// DB
	log.Info("Initializing database connection...")
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()
	log.Info("Database connection established successfully")

	// Redis
	redisClient := pkgredis.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	// MQ
	log.Info("Initializing MQ publisher...")
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	customerRepo := repository.NewCustomerRepository(dbConn, log)
	documentRepo := repository.NewDocumentRepository(dbConn, log)
	checklistRepo := repository.NewChecklistRepository(dbConn, log)
	wiringRepo := repository.NewWiringRepository(dbConn, log)
	inspectionRepo := repository.NewInspectionRepository(dbConn, log)
	commissioningRepo := repository.NewCommissioningRepository(dbConn, log)
	activityLogRepo := repository.NewActivityLogRepository(dbConn, log)
	userRepo := repository.NewUserRepository(dbConn, log)

	// Services
	progressService := service.NewProgressService(
		documentRepo,
		checklistRepo,
		wiringRepo,
		inspectionRepo,
		commissioningRepo,
		customerRepo,
		publisher,
		redisClient,
		scheme,
		time.Duration(cfg.Progress.CacheTTLSeconds)*time.Second,
		log,
	)
	customerService := service.NewCustomerService(
		customerRepo,
		documentRepo,
		checklistRepo,
		wiringRepo,
		inspectionRepo,
		commissioningRepo,
		activityLogRepo,
		log,
	)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, log)

	// HTTP server
	handlers := httpserver.Handlers{
		Auth:          handler.NewAuthHandler(authService, log),
		Customer:      handler.NewCustomerHandler(customerService, log),
		Document:      handler.NewDocumentHandler(documentRepo, progressService, log),
		Checklist:     handler.NewChecklistHandler(checklistRepo, progressService, log),
		Wiring:        handler.NewWiringHandler(wiringRepo, progressService, log),
		Inspection:    handler.NewInspectionHandler(inspectionRepo, progressService, log),
		Commissioning: handler.NewCommissioningHandler(commissioningRepo, progressService, log),
		Progress:      handler.NewProgressHandler(progressService, activityLogRepo, log),
	}
	router := httpserver.NewRouter(handlers, cfg.JWT.Secret, log, dbConn, publisher)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("solarflow server is fully initialized and running",
		zap.String("http_port", cfg.Server.Port),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down solarflow server gracefully...")

	log.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("Closing MQ publisher...")
	publisher.Close()

	log.Info("Closing database connection...")
	dbConn.Close()

	log.Info("solarflow server shutdown complete")
}
