package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/infrastructure/logger"
	"vidtube/usecase"
)

// IVideoHandler defines the video HTTP handlers.
type IVideoHandler interface {
	ListVideos(ctx *gin.Context)
	PublishVideo(ctx *gin.Context)
	GetVideoByID(ctx *gin.Context)
	UpdateVideo(ctx *gin.Context)
	DeleteVideo(ctx *gin.Context)
	TogglePublishStatus(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// writeErr maps an error to its status and writes the failure envelope.
func writeErr(ctx *gin.Context, err error) {
	status := apperror.StatusOf(err)
	ctx.JSON(status, dto.NewResErr(status, apperror.MessageOf(err)))
}

// ListVideos handles GET /api/videos
func (h *VideoHandler) ListVideos(ctx *gin.Context) {
	req, err := dto.NewVideoListRequest(
		ctx.Query("page"),
		ctx.Query("limit"),
		ctx.Query("query"),
		ctx.Query("sortBy"),
		ctx.Query("sortType"),
		ctx.Query("userId"),
	)
	if err != nil {
		writeErr(ctx, err)
		return
	}

	videos, total, err := h.videoUsecase.List(ctx.Request.Context(), req)
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPagedRes(videos, total, req.Page, req.Limit))
}

// PublishVideo handles POST /api/videos
func (h *VideoHandler) PublishVideo(ctx *gin.Context) {
	req := dto.VideoUploadRequest{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}
	if file, err := ctx.FormFile("file"); err == nil {
		req.File = file
	}

	video, err := h.videoUsecase.Create(ctx.Request.Context(), ctx.GetString("user_id"), req)
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewRes(video))
}

// GetVideoByID handles GET /api/videos/:videoId
func (h *VideoHandler) GetVideoByID(ctx *gin.Context) {
	video, err := h.videoUsecase.GetByID(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRes(video))
}

// UpdateVideo handles PATCH /api/videos/:videoId
func (h *VideoHandler) UpdateVideo(ctx *gin.Context) {
	var req dto.VideoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		writeErr(ctx, apperror.NewValidation("invalid request body"))
		return
	}

	video, err := h.videoUsecase.Update(ctx.Request.Context(), ctx.Param("videoId"), req)
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRes(video))
}

// DeleteVideo handles DELETE /api/videos/:videoId
func (h *VideoHandler) DeleteVideo(ctx *gin.Context) {
	if err := h.videoUsecase.Delete(ctx.Request.Context(), ctx.Param("videoId")); err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRes(gin.H{"message": "Video deleted successfully"}))
}

// TogglePublishStatus handles PATCH /api/videos/:videoId/publish
func (h *VideoHandler) TogglePublishStatus(ctx *gin.Context) {
	video, err := h.videoUsecase.TogglePublish(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRes(video))
}
