package repository

import (
	"context"
	"mime/multipart"
)

// IMediaStore accepts an uploaded file and returns a durable URL.
type IMediaStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}
