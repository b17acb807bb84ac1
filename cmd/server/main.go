package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/karizzz/subletez-backend/internal/api"
	"github.com/karizzz/subletez-backend/internal/blob"
	"github.com/karizzz/subletez-backend/internal/config"
	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/db"
	"github.com/karizzz/subletez-backend/internal/identity"
	"github.com/karizzz/subletez-backend/internal/middleware"
)

func main() {
	// Local development convenience; in deployment the environment is set
	// by the platform and no .env exists.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load application configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.NewClients(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()
	zapLogger.Info("Firebase clients initialized",
		zap.String("project", appConfig.FirebaseProjectID),
		zap.String("bucket", appConfig.StorageBucket))

	// Repositories and collaborators.
	profileRepo := db.NewFirestoreProfileRepository(clients.Firestore)
	listingRepo := db.NewFirestoreListingRepository(clients.Firestore)
	idClient := identity.NewFirebaseClient(clients.Auth, appConfig.FirebaseWebAPIKey)
	mediaStore := blob.NewBucketMediaStore(clients.Bucket, appConfig.StorageBucket)

	// Services.
	accountService := core.NewAccountService(idClient, profileRepo, zapLogger)
	profileService := core.NewProfileService(profileRepo)
	listingService := core.NewListingService(listingRepo, core.SubstringFilter{}, zapLogger)

	// Optional Redis-backed login rate limiter.
	var loginLimiter gin.HandlerFunc
	if appConfig.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
		})
		if err := rdb.Ping(initCtx).Err(); err != nil {
			zapLogger.Warn("Redis unreachable, login rate limiter disabled", zap.Error(err))
		} else {
			loginLimiter = middleware.LoginRateLimiter(rdb, 10, time.Minute)
			zapLogger.Info("login rate limiter enabled", zap.String("redis", appConfig.RedisAddr))
		}
	}

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.Recovery(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	authMW := middleware.NewAuthMiddleware(idClient, zapLogger)
	api.SetupRoutes(router, zapLogger, accountService, profileService, listingService, mediaStore, authMW, loginLimiter)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("address", httpServer.Addr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited gracefully")
}
