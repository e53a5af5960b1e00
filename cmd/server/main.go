package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"event-portal.backend/internal/config"
	mongods "event-portal.backend/internal/infrastructure/datasources/mongo"
	"event-portal.backend/internal/infrastructure/repositories"
	"event-portal.backend/internal/interfaces/http/handlers"
	"event-portal.backend/internal/interfaces/http/middleware"
	"event-portal.backend/internal/usecases"
	"event-portal.backend/pkg/logger"
	"event-portal.backend/pkg/session"
	"event-portal.backend/pkg/token"
)

var (
	loadDotenv   = godotenv.Load
	loadCfg      = config.Load
	initLog      = logger.Init
	initSessions = session.Init
	connectMongo = mongods.NewConnection
	serveHTTP    = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initSessions(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := connectMongo(cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	logger.Info(context.Background(), "Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	coll := mongods.Collection(client, cfg.Mongo)
	registrationRepo := repositories.NewRegistrationRepository(coll)

	// Index creation failure is not fatal; the collection still works.
	if err := registrationRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn(context.Background(), "Index creation error", zap.Error(err))
	}

	sessions, err := session.NewStore(cfg.Session.Secret)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	tokens := token.NewService(cfg.Session.Secret, cfg.Session.TTL)

	registrationUsecase := usecases.NewRegistrationUsecase(registrationRepo)
	adminUsecase := usecases.NewAdminUsecase(cfg.Admin, cfg.Session, sessions, tokens)
	exportUsecase := usecases.NewExportUsecase(registrationRepo)

	pagesHandler := handlers.NewPagesHandler()
	registrationHandler := handlers.NewRegistrationHandler(registrationUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, registrationUsecase, exportUsecase, cfg.Session.TTL)
	healthHandler := handlers.NewHealthHandler(client)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerRoutes(r, routeDeps{
		pagesHandler:        pagesHandler,
		registrationHandler: registrationHandler,
		adminHandler:        adminHandler,
		healthHandler:       healthHandler,
		adminAuth:           middleware.AdminAuth(sessions, tokens),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
		if err := serveHTTP(srv); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
