package dto

import (
	"mime/multipart"
	"strconv"

	"vidtube/domain/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	SortAsc  = "asc"
	SortDesc = "desc"
)

// VideoListRequest is the validated form of the untrusted listing query
// parameters. Build it with NewVideoListRequest; never from raw strings.
type VideoListRequest struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string // unknown field names are passed through to the store
	SortType string
	UserID   string
}

// NewVideoListRequest coerces raw query parameters into a safe request.
// Absent page/limit fall back to defaults; a present but non-numeric value is
// rejected outright rather than mis-coerced; a numeric value below one falls
// back to the default.
func NewVideoListRequest(page, limit, query, sortBy, sortType, userID string) (VideoListRequest, error) {
	req := VideoListRequest{
		Page:     DefaultPage,
		Limit:    DefaultLimit,
		Query:    query,
		SortBy:   sortBy,
		SortType: sortType,
		UserID:   userID,
	}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return VideoListRequest{}, apperror.NewValidation("page must be a positive integer")
		}
		if n >= 1 {
			req.Page = n
		}
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return VideoListRequest{}, apperror.NewValidation("limit must be a positive integer")
		}
		if n >= 1 {
			req.Limit = n
		}
	}
	if req.SortBy == "" {
		req.SortBy = "created_at"
	}
	if req.SortType != SortAsc {
		req.SortType = SortDesc
	}
	return req, nil
}

// Skip is the pagination offset for the requested window.
func (r VideoListRequest) Skip() int {
	return (r.Page - 1) * r.Limit
}

// VideoUploadRequest carries the multipart create payload.
type VideoUploadRequest struct {
	Title       string                `form:"title"`
	Description string                `form:"description"`
	File        *multipart.FileHeader `form:"file"`
}

// VideoUpdateRequest carries the partial update payload; nil fields are left
// untouched on the record.
type VideoUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
}

func (r VideoUpdateRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Thumbnail == nil
}
