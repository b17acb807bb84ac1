package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/karizzz/subletez-backend/internal/blob"
	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/middleware"
)

// SetupRoutes wires handlers and route-level middleware onto the engine.
// Global middleware (logging, recovery, CORS) is applied by the caller
// before this runs. loginLimiter may be nil when no Redis is configured.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	accounts core.AccountService,
	profiles core.ProfileService,
	listings core.ListingService,
	media blob.MediaStore,
	authMW *middleware.AuthMiddleware,
	loginLimiter gin.HandlerFunc,
) {
	RegisterValidators()

	authHandler := NewAuthHandler(accounts)
	profileHandler := NewProfileHandler(profiles)
	listingHandler := NewListingHandler(listings)
	mediaHandler := NewMediaHandler(media)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			if loginLimiter != nil {
				authGroup.POST("/login", loginLimiter, authHandler.Login)
			} else {
				authGroup.POST("/login", authHandler.Login)
			}
			authGroup.POST("/signout", authMW.VerifyToken(), authHandler.SignOut)
		}

		profileGroup := apiV1.Group("/profile", authMW.VerifyToken())
		{
			profileGroup.GET("/me", profileHandler.GetMe)
			profileGroup.PATCH("/me", profileHandler.UpdateMe)
		}

		listingGroup := apiV1.Group("/listings")
		{
			listingGroup.GET("", listingHandler.List)
			listingGroup.POST("", authMW.VerifyToken(), listingHandler.Create)
		}

		mediaGroup := apiV1.Group("/media", authMW.VerifyToken())
		{
			mediaGroup.POST("/images", mediaHandler.UploadImage)
			mediaGroup.POST("/videos", mediaHandler.UploadVideo)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("API routes configured", zap.Bool("loginRateLimiter", loginLimiter != nil))
}
