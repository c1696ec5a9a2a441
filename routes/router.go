package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"imokay/config"
	"imokay/controllers"
	"imokay/engine"
	"imokay/gemini"
	"imokay/middleware"
	"imokay/store"
	"imokay/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(appCtx context.Context, st *store.Store, eng *engine.Engine, gen gemini.Generator) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	checkinController := controllers.NewCheckInController(appCtx, st, eng, gen)
	stateController := controllers.NewStateController(st, eng)
	friendController := controllers.NewFriendController(appCtx, st, eng, gen)
	chatController := controllers.NewChatController(appCtx, st, gen)
	shopController := controllers.NewShopController(st)
	profileController := controllers.NewProfileController(st)

	api := r.Group("/api/v1")

	api.GET("/state", stateController.GetState)
	api.GET("/streak/formatted", stateController.FormattedStreak)
	api.GET("/share", stateController.Share)
	api.GET("/affirmation", checkinController.Affirmation)

	api.GET("/friends", friendController.ListFriends)
	api.GET("/friends/:id", friendController.GetFriend)
	api.GET("/friends/:id/contact", friendController.Contact)
	api.GET("/friends/:id/messages", chatController.ListMessages)
	api.GET("/requests", friendController.ListRequests)
	api.GET("/shop/items", shopController.ListItems)

	mutating := api.Group("")
	mutating.Use(middleware.RateLimitMiddleware())
	mutating.POST("/checkin", checkinController.CheckIn)
	mutating.DELETE("/friends/:id", friendController.DeleteFriend)
	mutating.POST("/friends/:id/support", friendController.SendSupport)
	mutating.POST("/friends/:id/messages", chatController.SendMessage)
	mutating.POST("/requests/simulate", friendController.SimulateRequest)
	mutating.POST("/requests/:id/accept", friendController.AcceptRequest)
	mutating.POST("/requests/:id/decline", friendController.DeclineRequest)
	mutating.POST("/shop/buy", shopController.Buy)
	mutating.PATCH("/profile", profileController.UpdateProfile)
	mutating.POST("/profile/mood", profileController.SetMood)
	mutating.POST("/settings/language", profileController.SetLanguage)
	mutating.POST("/settings/notifications", profileController.SetNotifications)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
