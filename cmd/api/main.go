package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "steelcatalog/api/swagger" // swagger docs
	"steelcatalog/internal/config"
	"steelcatalog/internal/database"
	"steelcatalog/internal/events"
	"steelcatalog/internal/handler"
	"steelcatalog/internal/identity"
	"steelcatalog/internal/logging"
	"steelcatalog/internal/middleware"
	"steelcatalog/internal/repository"
	"steelcatalog/internal/service"
	"steelcatalog/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// @title           Steel Catalog API
// @version         1.0
// @description     Storefront catalog and back-office API for steel products, categories and users.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey FirebaseUID
// @in header
// @name firebase-uid
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("error").Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Server.LogLevel)
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(ctx, cfg.DSN(), log)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	log.Info("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	sinks := events.Fanout{wsHub}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.CatalogTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Warn("kafka writer close failed", "error", err)
			}
		}()
		sinks = append(sinks, kafkaPublisher)
		log.Info("publishing catalog events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.CatalogTopic)
	}

	var rateCounter middleware.Counter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("redis unreachable, rate limiter fails open", "addr", cfg.Redis.Addr, "error", err)
		}
		cancel()
		rateCounter = middleware.NewRedisCounter(rdb)
	}

	var verifier identity.Verifier
	if cfg.Firebase.VerifyIDTokens {
		fv, err := identity.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsJSON)
		if err != nil {
			log.Error("firebase initialisation failed", "error", err)
			os.Exit(1)
		}
		verifier = fv
	}

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	services := handler.Services{
		Products:   service.NewProductService(productRepo, categoryRepo, auditRepo, txManager, sinks),
		Categories: service.NewCategoryService(categoryRepo, auditRepo, txManager, sinks),
		Users:      service.NewUserService(userRepo, auditRepo, txManager, sinks),
		Auth:       service.NewAuthService(userRepo),
		Audit:      service.NewAuditService(auditRepo),
	}

	router := handler.NewRouter(services, handler.RouterOptions{
		Logger:       log,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Verifier:     verifier,
		RateCounter:  rateCounter,
		RateLimit:    cfg.Redis.RateLimitPerMinute,
		Metrics:      middleware.NewMetrics(prometheus.DefaultRegisterer),
		Hub:          wsHub,
		TicketSecret: []byte(cfg.WebSocket.TicketSecret),
		TicketTTL:    cfg.WebSocket.TicketTTL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
