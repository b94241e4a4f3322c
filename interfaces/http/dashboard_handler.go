package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/dto"
	"vidtube/usecase"
)

// IDashboardHandler defines the channel-facing HTTP handlers.
type IDashboardHandler interface {
	GetChannelStats(ctx *gin.Context)
	GetChannelVideos(ctx *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
	videoUsecase     usecase.IVideoUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase, videoUsecase usecase.IVideoUsecase) IDashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		videoUsecase:     videoUsecase,
	}
}

// GetChannelStats handles GET /api/channels/:channelId/stats
func (h *DashboardHandler) GetChannelStats(ctx *gin.Context) {
	stats, err := h.dashboardUsecase.ChannelStats(ctx.Request.Context(), ctx.Param("channelId"))
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRes(stats))
}

// GetChannelVideos handles GET /api/channels/:channelId/videos
func (h *DashboardHandler) GetChannelVideos(ctx *gin.Context) {
	videos, err := h.videoUsecase.ChannelVideos(ctx.Request.Context(), ctx.Param("channelId"))
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRes(videos))
}
