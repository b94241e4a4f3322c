package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/events"
	"vidtube/infrastructure/logger"
)

// IVideoUsecase is the video lifecycle manager plus the listing engine.
type IVideoUsecase interface {
	List(ctx context.Context, req dto.VideoListRequest) ([]model.Video, int64, error)
	Create(ctx context.Context, userID string, req dto.VideoUploadRequest) (*model.Video, error)
	GetByID(ctx context.Context, videoID string) (*model.Video, error)
	Update(ctx context.Context, videoID string, req dto.VideoUpdateRequest) (*model.Video, error)
	Delete(ctx context.Context, videoID string) error
	TogglePublish(ctx context.Context, videoID string) (*model.Video, error)
	ChannelVideos(ctx context.Context, channelID string) ([]model.Video, error)
}

type VideoUsecase struct {
	videoRepo  repository.IVideo
	userRepo   repository.IUser
	mediaStore repository.IMediaStore
	events     events.IVideoEvents
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	userRepo repository.IUser,
	mediaStore repository.IMediaStore,
	videoEvents events.IVideoEvents,
) IVideoUsecase {
	return &VideoUsecase{
		videoRepo:  videoRepo,
		userRepo:   userRepo,
		mediaStore: mediaStore,
		events:     videoEvents,
	}
}

// List returns the requested page window and the total match count. The total
// is counted independently of the window so callers can derive page counts.
func (u *VideoUsecase) List(ctx context.Context, req dto.VideoListRequest) ([]model.Video, int64, error) {
	if req.UserID != "" {
		if _, err := bson.ObjectIDFromHex(req.UserID); err != nil {
			return nil, 0, apperror.NewValidation("invalid user ID")
		}
	}

	videos, err := u.videoRepo.Search(ctx, req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while searching videos")
		return nil, 0, apperror.NewUpstream("failed to list videos", err)
	}
	total, err := u.videoRepo.Count(ctx, req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while counting videos")
		return nil, 0, apperror.NewUpstream("failed to list videos", err)
	}
	return videos, total, nil
}

// Create uploads the media file and persists the record, published by default.
// The caller identity must resolve in the user directory first.
func (u *VideoUsecase) Create(ctx context.Context, userID string, req dto.VideoUploadRequest) (*model.Video, error) {
	if req.File == nil {
		return nil, apperror.NewValidation("no video file uploaded")
	}
	if userID == "" {
		return nil, apperror.NewAuth("user not authenticated")
	}
	owner, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.NewAuth("user not authenticated")
	}

	user, err := u.userRepo.GetByID(ctx, owner)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching user")
		return nil, apperror.NewUpstream("failed to publish video", err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("user not found")
	}

	url, err := u.mediaStore.Upload(ctx, req.File)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading media")
		return nil, apperror.NewUpstream("failed to publish video", err)
	}

	video, err := u.videoRepo.Create(ctx, model.Video{
		Title:       req.Title,
		Description: req.Description,
		URL:         url,
		Owner:       user.ID,
		IsPublished: true,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while persisting video")
		return nil, apperror.NewUpstream("failed to publish video", err)
	}

	u.publish(ctx, events.VideoCreated, video)
	return video, nil
}

func (u *VideoUsecase) GetByID(ctx context.Context, videoID string) (*model.Video, error) {
	id, err := parseVideoID(videoID)
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching video")
		return nil, apperror.NewUpstream("failed to get video", err)
	}
	if video == nil {
		return nil, apperror.NewNotFound("video not found")
	}
	return video, nil
}

// Update applies only the caller-supplied subset of title, description and
// thumbnail.
func (u *VideoUsecase) Update(ctx context.Context, videoID string, req dto.VideoUpdateRequest) (*model.Video, error) {
	id, err := parseVideoID(videoID)
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepo.UpdateByID(ctx, id, req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating video")
		return nil, apperror.NewUpstream("failed to update video", err)
	}
	if video == nil {
		return nil, apperror.NewNotFound("video not found")
	}
	return video, nil
}

func (u *VideoUsecase) Delete(ctx context.Context, videoID string) error {
	id, err := parseVideoID(videoID)
	if err != nil {
		return err
	}
	video, err := u.videoRepo.DeleteByID(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting video")
		return apperror.NewUpstream("failed to delete video", err)
	}
	if video == nil {
		return apperror.NewNotFound("video not found")
	}
	u.publish(ctx, events.VideoDeleted, video)
	return nil
}

// TogglePublish is a read-modify-write: concurrent toggles on the same record
// race and the last write wins.
func (u *VideoUsecase) TogglePublish(ctx context.Context, videoID string) (*model.Video, error) {
	id, err := parseVideoID(videoID)
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching video")
		return nil, apperror.NewUpstream("failed to toggle publish status", err)
	}
	if video == nil {
		return nil, apperror.NewNotFound("video not found")
	}

	updated, err := u.videoRepo.SetPublished(ctx, id, !video.IsPublished)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while toggling publish status")
		return nil, apperror.NewUpstream("failed to toggle publish status", err)
	}
	if updated == nil {
		return nil, apperror.NewNotFound("video not found")
	}
	u.publish(ctx, events.VideoPublishToggled, updated)
	return updated, nil
}

// ChannelVideos returns every video of a channel, unpaginated. An empty
// result is valid.
func (u *VideoUsecase) ChannelVideos(ctx context.Context, channelID string) ([]model.Video, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return nil, apperror.NewValidation("invalid channel ID")
	}
	videos, err := u.videoRepo.ListByOwner(ctx, channel)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing channel videos")
		return nil, apperror.NewUpstream("failed to retrieve channel videos", err)
	}
	return videos, nil
}

func (u *VideoUsecase) publish(ctx context.Context, eventType string, video *model.Video) {
	if u.events == nil {
		return
	}
	u.events.Publish(ctx, events.VideoEvent{
		Type:       eventType,
		VideoID:    video.ID.Hex(),
		Owner:      video.Owner.Hex(),
		OccurredAt: video.UpdatedAt,
	})
}

func parseVideoID(videoID string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return bson.ObjectID{}, apperror.NewValidation("invalid video ID")
	}
	return id, nil
}
