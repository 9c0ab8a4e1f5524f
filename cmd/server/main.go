package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classroom-planner-service/internal/adapters/primary/http/handlers"
	"classroom-planner-service/internal/adapters/primary/http/middleware"
	"classroom-planner-service/internal/adapters/secondary/aigateway"
	"classroom-planner-service/internal/adapters/secondary/postgres"
	redisadapter "classroom-planner-service/internal/adapters/secondary/redis"
	"classroom-planner-service/internal/config"
	output "classroom-planner-service/internal/core/ports/output"
	"classroom-planner-service/internal/core/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	outcomeRepo := postgres.NewOutcomeRepository(pool)
	subjectRepo := postgres.NewSubjectRepository(pool)
	coverageRepo := postgres.NewCoverageRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	assessmentRepo := postgres.NewAssessmentRepository(pool)
	studentRepo := postgres.NewStudentRepository(pool)
	reflectionRepo := postgres.NewReflectionRepository(pool)
	newsletterRepo := postgres.NewNewsletterRepository(pool)

	// Summary Cache (Optional - based on config)
	var summaryCache output.SummaryCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Warnf("redis init failed (continuing without summary cache): %v", err)
		} else {
			summaryCache = redisadapter.NewSummaryCache(client)
			log.Info("redis summary cache initialized")
		}
	} else {
		log.Info("redis summary cache disabled")
	}

	// AI Gateway Client (Optional - based on config)
	var aiGatewayClient output.AIGatewayClient
	if cfg.AIGateway.Enabled {
		aiGatewayClient = aigateway.NewAIGatewayClient(&cfg.AIGateway)
		log.Info("AI Gateway client initialized")
	} else {
		log.Info("AI Gateway integration disabled")
	}

	// Core Services (Application Layer)
	auditSvc := services.NewAuditService(coverageRepo, summaryCache, cfg.Redis.SummaryTTL, cfg.Audit.OverusedThreshold)
	exportSvc := services.NewExportService(auditSvc)
	outcomeSvc := services.NewOutcomeService(outcomeRepo, subjectRepo)
	subjectSvc := services.NewSubjectService(subjectRepo, outcomeRepo)
	activitySvc := services.NewActivityService(activityRepo, subjectRepo)
	assessmentSvc := services.NewAssessmentService(assessmentRepo, studentRepo)
	studentSvc := services.NewStudentService(studentRepo)
	reflectionSvc := services.NewReflectionService(reflectionRepo)
	newsletterSvc := services.NewNewsletterService(newsletterRepo, aiGatewayClient, cfg.AIGateway.MaxRetries, cfg.AIGateway.RetryDelay)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(auditSvc, exportSvc, outcomeSvc, subjectSvc, activitySvc, assessmentSvc, studentSvc, reflectionSvc, newsletterSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1/planner")
	api.Use(middleware.Auth(cfg.Auth.JWTSecret))
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
