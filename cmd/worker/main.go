package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarflow/contracts/mq"
	"solarflow/internal/config"
	"solarflow/internal/mqhandler"
	"solarflow/internal/repository"
	"solarflow/pkg/db"
	"solarflow/pkg/logger"
	pkgmq "solarflow/pkg/mq"
	pkgredis "solarflow/pkg/redis"
	pkgutil "solarflow/pkg/util"

	"go.uber.org/zap"
)

// The worker consumes fulfillment events and maintains the activity feed.
// It runs separately from the API server so notification processing never
// blocks request handling.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting solarflow worker...",
		zap.String("db_host", cfg.DB.Host),
		zap.String("mq_url", cfg.MQ.URL),
	)

	// DB
	log.Info("Initializing database connection...")
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis for notification dedup
	redisClient := pkgredis.NewRedisClient(cfg.Redis)
	defer redisClient.Close()
	deduper := pkgutil.NewDeduper(redisClient, 24*time.Hour, log)

	activityLogRepo := repository.NewActivityLogRepository(dbConn, log)

	sectionUnlockedHandler := mqhandler.NewSectionUnlockedHandler(activityLogRepo, deduper, log)
	progressRecomputedHandler := mqhandler.NewProgressRecomputedHandler(activityLogRepo, deduper, log)

	// MQ Consumer for section.unlocked
	log.Info("Initializing MQ consumer for section.unlocked...",
		zap.String("queue", "section.unlocked.q"),
		zap.String("routing_key", mq.RoutingKeySectionUnlocked),
	)
	unlockedConsumer, err := pkgmq.NewConsumer(cfg.MQ.URL, "section.unlocked.q", mq.RoutingKeySectionUnlocked, log)
	if err != nil {
		log.Fatal("Failed to init section.unlocked consumer", zap.Error(err))
	}
	defer unlockedConsumer.Close()

	unlockedConsumer.SetHandler(sectionUnlockedHandler.Handle)

	go func() {
		log.Info("Starting section.unlocked consumer...")
		if err := unlockedConsumer.StartConsuming(); err != nil {
			log.Fatal("section.unlocked consumer failed", zap.Error(err))
		}
	}()

	// MQ Consumer for progress.recomputed
	log.Info("Initializing MQ consumer for progress.recomputed...",
		zap.String("queue", "progress.recomputed.q"),
		zap.String("routing_key", mq.RoutingKeyProgressRecomputed),
	)
	recomputedConsumer, err := pkgmq.NewConsumer(cfg.MQ.URL, "progress.recomputed.q", mq.RoutingKeyProgressRecomputed, log)
	if err != nil {
		log.Fatal("Failed to init progress.recomputed consumer", zap.Error(err))
	}
	defer recomputedConsumer.Close()

	recomputedConsumer.SetHandler(progressRecomputedHandler.Handle)

	go func() {
		log.Info("Starting progress.recomputed consumer...")
		if err := recomputedConsumer.StartConsuming(); err != nil {
			log.Fatal("progress.recomputed consumer failed", zap.Error(err))
		}
	}()

	log.Info("solarflow worker is fully initialized and running",
		zap.String("mq_queue_unlocked", "section.unlocked.q"),
		zap.String("mq_queue_recomputed", "progress.recomputed.q"),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down solarflow worker gracefully...")

	log.Info("Stopping MQ consumers...")
	unlockedConsumer.Close()
	recomputedConsumer.Close()

	log.Info("Closing database connection...")
	dbConn.Close()

	log.Info("solarflow worker shutdown complete")
}
