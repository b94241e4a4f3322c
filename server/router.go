package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vidtube/domain/repository"
	httpHandler "vidtube/interfaces/http"
	"vidtube/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	videoHandler httpHandler.IVideoHandler,
	dashboardHandler httpHandler.IDashboardHandler,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")

	// Read-only catalog and channel routes
	api.GET("/videos", videoHandler.ListVideos)
	api.GET("/videos/:videoId", videoHandler.GetVideoByID)
	api.GET("/channels/:channelId/stats", dashboardHandler.GetChannelStats)
	api.GET("/channels/:channelId/videos", dashboardHandler.GetChannelVideos)

	// Mutations require an authenticated caller
	authed := api.Group("")
	authed.Use(middleware.Auth(userRepository))
	authed.POST("/videos", videoHandler.PublishVideo)
	authed.PATCH("/videos/:videoId", videoHandler.UpdateVideo)
	authed.DELETE("/videos/:videoId", videoHandler.DeleteVideo)
	authed.PATCH("/videos/:videoId/publish", videoHandler.TogglePublishStatus)

	return router
}
