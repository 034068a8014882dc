package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/gifter/config"
	"github.com/cppla/gifter/controllers"
	"github.com/cppla/gifter/middleware"
	"github.com/cppla/gifter/repositories"
	"github.com/cppla/gifter/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
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
	r.Use(middleware.RequestID())
	// Access log and panic recovery go to their own rolling file
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, true))
	} else {
		utils.Sugar.Warnw("gin file logger unavailable, using default recovery", "path", cfg.GinPath, "error", err)
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	profileRepo := repositories.NewUserProfileRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	profileController := controllers.NewUserProfileController(profileRepo)
	postController := controllers.NewPostController(postRepo, commentRepo)
	commentController := controllers.NewCommentController(commentRepo)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api")
	api.Use(middleware.RateLimitWrites(cfg.RateLimitPerMinute))

	profiles := api.Group("/userprofile")
	profiles.GET("", profileController.List)
	profiles.GET("/:id", profileController.Get) // also GetWithPosts{id}
	profiles.POST("", profileController.Create)
	profiles.PUT("/:id", profileController.Update)
	profiles.DELETE("/:id", profileController.Delete)

	posts := api.Group("/post")
	posts.GET("", postController.List)
	posts.GET("/:id", postController.Get) // also GetWithComments and GetWithComments{id}
	posts.GET("/:id/comments", postController.ListComments)
	posts.POST("", postController.Create)
	posts.PUT("/:id", postController.Update)
	posts.DELETE("/:id", postController.Delete)

	comments := api.Group("/comment")
	comments.GET("/:id", commentController.Get)
	comments.POST("", commentController.Create)
	comments.PUT("/:id", commentController.Update)
	comments.DELETE("/:id", commentController.Delete)

	api.GET("/stats", statsController.GetStats)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		utils.Error(ctx, http.StatusNotFound, 40401, "not found")
	})

	return r
}
