package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ycliu87/Car-Garage/internal/api/controller"
	"ycliu87/Car-Garage/internal/api/repository"
	"ycliu87/Car-Garage/internal/api/service"
	"ycliu87/Car-Garage/internal/config"
	"ycliu87/Car-Garage/internal/db"
	"ycliu87/Car-Garage/internal/logger"
	"ycliu87/Car-Garage/internal/server"
	"ycliu87/Car-Garage/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Create repositories for the configured backend
	carRepo, userRepo, err := buildRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize store backend: %v", err)
	}

	// Create services
	tokens := service.NewTokenManager([]byte(cfg.SessionSecret), cfg.SessionTTL)
	catalogService := service.NewCatalogService(carRepo)
	authService := service.NewAuthService(userRepo, tokens)

	// Create controllers
	catalogController := controller.NewCatalogController(catalogService)
	authController := controller.NewAuthController(authService, controller.AuthControllerConfig{
		CookieSecure: cfg.CookieSecure,
		SessionTTL:   cfg.SessionTTL,
	})

	// Create the Gin-based server
	srv := server.NewServer(server.Config{
		TemplatesGlob: cfg.TemplatesGlob,
		StaticDir:     cfg.StaticDir,
	}, catalogController, authController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.ServerAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// buildRepositories wires the car and user stores for the configured backend.
// Memory is the default; nothing survives a restart there.
func buildRepositories(ctx context.Context, cfg *config.Config) (repository.CarRepository, repository.UserRepository, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		pool, err := db.Connect(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Initialize(pool); err != nil {
			return nil, nil, err
		}
		return repository.NewSQLiteCarRepository(pool), repository.NewSQLiteUserRepository(pool), nil

	case config.BackendRedis:
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisCarRepository(rdb), repository.NewRedisUserRepository(rdb), nil

	default:
		return repository.NewMemoryCarRepository(), repository.NewMemoryUserRepository(), nil
	}
}
