package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/resqnet/sos_coordination_system/internal/dispatch"
	v1 "github.com/resqnet/sos_coordination_system/internal/handler/http/v1"
	"github.com/resqnet/sos_coordination_system/internal/repository"
	"github.com/resqnet/sos_coordination_system/internal/service"
	"github.com/resqnet/sos_coordination_system/pkg/logger"
	"github.com/resqnet/sos_coordination_system/pkg/postgres"
	redisclient "github.com/resqnet/sos_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/resqnet/sos_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SOS Coordination System API
// @version 1.0
// @description SOS event lifecycle and volunteer response coordination API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Alert queue publisher and delivery worker
	alertPublisher := dispatch.NewRedisAlertPublisher(redisClient)
	alertWorker := dispatch.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Repositories
	eventRepo := repository.NewEventRepository(dbpool, redisClient)
	volunteerRepo := repository.NewVolunteerRepository(dbpool)
	responseRepo := repository.NewResponseRepository(dbpool)

	// Dispatch router
	router := dispatch.NewRouter(volunteerRepo, alertPublisher, log)

	// Services
	sosService := service.NewSOSService(eventRepo, responseRepo, volunteerRepo, router, log, cfg)
	volunteerService := service.NewVolunteerService(volunteerRepo, log)
	responseService := service.NewResponseService(eventRepo, responseRepo, log, cfg)

	// Handlers
	handler := v1.NewHandler(sosService, volunteerService, responseService, log, cfg)

	// Gin router
	engine := gin.Default()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Swagger UI route
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: engine,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
