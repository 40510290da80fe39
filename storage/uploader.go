package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	// List возвращает ключи объектов с заданным префиксом в лексикографическом порядке.
	List(ctx context.Context, prefix string) ([]string, error)
}
