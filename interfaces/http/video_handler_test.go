package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	httpHandler "vidtube/interfaces/http"
	"vidtube/usecase"
)

type MockVideoUsecase struct {
	mock.Mock
}

func (m *MockVideoUsecase) List(ctx context.Context, req dto.VideoListRequest) ([]model.Video, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoUsecase) Create(ctx context.Context, userID string, req dto.VideoUploadRequest) (*model.Video, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoUsecase) GetByID(ctx context.Context, videoID string) (*model.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoUsecase) Update(ctx context.Context, videoID string, req dto.VideoUpdateRequest) (*model.Video, error) {
	args := m.Called(ctx, videoID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoUsecase) Delete(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockVideoUsecase) TogglePublish(ctx context.Context, videoID string) (*model.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoUsecase) ChannelVideos(ctx context.Context, channelID string) ([]model.Video, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) ChannelStats(ctx context.Context, channelID string) (*dto.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChannelStats), args.Error(1)
}

var _ usecase.IVideoUsecase = (*MockVideoUsecase)(nil)
var _ usecase.IDashboardUsecase = (*MockDashboardUsecase)(nil)

func newTestRouter(videoUC *MockVideoUsecase, dashboardUC *MockDashboardUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	videoHandler := httpHandler.NewVideoHandler(videoUC)
	dashboardHandler := httpHandler.NewDashboardHandler(dashboardUC, videoUC)

	router := gin.New()
	api := router.Group("api")
	api.GET("/videos", videoHandler.ListVideos)
	api.GET("/videos/:videoId", videoHandler.GetVideoByID)
	api.DELETE("/videos/:videoId", videoHandler.DeleteVideo)
	api.PATCH("/videos/:videoId/publish", videoHandler.TogglePublishStatus)
	api.GET("/channels/:channelId/stats", dashboardHandler.GetChannelStats)
	api.GET("/channels/:channelId/videos", dashboardHandler.GetChannelVideos)
	return router
}

func TestListVideos_Envelope(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newTestRouter(videoUC, new(MockDashboardUsecase))

	videoUC.On("List", mock.Anything, mock.MatchedBy(func(req dto.VideoListRequest) bool {
		return req.Page == 2 && req.Limit == 5 && req.Query == "go" && req.SortType == dto.SortAsc
	})).Return([]model.Video{{Title: "a"}, {Title: "b"}}, int64(12), nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/videos?page=2&limit=5&query=go&sortType=asc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(12), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["limit"])
	assert.Len(t, body["data"], 2)
	videoUC.AssertExpectations(t)
}

func TestListVideos_BadPageIsRejectedAtBoundary(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newTestRouter(videoUC, new(MockDashboardUsecase))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/videos?page=banana", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
	videoUC.AssertNotCalled(t, "List")
}

func TestGetVideoByID_NotFound(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newTestRouter(videoUC, new(MockDashboardUsecase))
	id := bson.NewObjectID().Hex()

	videoUC.On("GetByID", mock.Anything, id).
		Return(nil, apperror.NewNotFound("video not found")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/videos/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "video not found", body["message"])
}

func TestDeleteVideo_Confirmation(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newTestRouter(videoUC, new(MockDashboardUsecase))
	id := bson.NewObjectID().Hex()

	videoUC.On("Delete", mock.Anything, id).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/videos/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Video deleted successfully", data["message"])
}

func TestGetChannelStats(t *testing.T) {
	dashboardUC := new(MockDashboardUsecase)
	router := newTestRouter(new(MockVideoUsecase), dashboardUC)
	channel := bson.NewObjectID().Hex()

	dashboardUC.On("ChannelStats", mock.Anything, channel).Return(&dto.ChannelStats{
		TotalVideos:      3,
		TotalSubscribers: 2,
		TotalLikes:       1,
		TotalViews:       30,
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/channels/"+channel+"/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["totalVideos"])
	assert.Equal(t, float64(2), data["totalSubscribers"])
	assert.Equal(t, float64(1), data["totalLikes"])
	assert.Equal(t, float64(30), data["totalViews"])
}

func TestGetChannelStats_UpstreamFailure(t *testing.T) {
	dashboardUC := new(MockDashboardUsecase)
	router := newTestRouter(new(MockVideoUsecase), dashboardUC)
	channel := bson.NewObjectID().Hex()

	dashboardUC.On("ChannelStats", mock.Anything, channel).
		Return(nil, apperror.NewUpstream("failed to retrieve channel statistics", nil)).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/channels/"+channel+"/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "failed to retrieve channel statistics", body["message"])
}

func TestGetChannelVideos_EmptyList(t *testing.T) {
	videoUC := new(MockVideoUsecase)
	router := newTestRouter(videoUC, new(MockDashboardUsecase))
	channel := bson.NewObjectID().Hex()

	videoUC.On("ChannelVideos", mock.Anything, channel).Return([]model.Video{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/channels/"+channel+"/videos", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body["data"])
	assert.Len(t, body["data"], 0)
}
