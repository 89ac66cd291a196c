package server

import (
	"time"

	httpHandler "playlist-grid/interfaces/http"
	"playlist-grid/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultAllowOrigins = []string{"http://localhost:4200", "http://localhost:10001"}

func InitiateRouter(
	playlistHandler httpHandler.IPlaylistHandler,
	settingsHandler httpHandler.ISettingsHandler,
	healthHandler httpHandler.IHealthHandler,
	secretKey string,
	allowOrigins []string,
) *gin.Engine {
	if len(allowOrigins) == 0 {
		allowOrigins = defaultAllowOrigins
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", playlistHandler.Page)
	router.GET("/shortcode/"+httpHandler.ShortcodeTag, playlistHandler.Fragment)
	router.GET("/healthz", healthHandler.Healthz)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(secretKey))
	{
		admin.GET("/settings", settingsHandler.Form)
		admin.POST("/settings", settingsHandler.Save)
		admin.POST("/cache/refresh", playlistHandler.RefreshCache)
	}

	return router
}
