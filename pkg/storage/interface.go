package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StorageProvider stores bill evidence files that customers attach to
// purchase transactions. Objects live under the bills/ prefix and are
// never public: reviewers fetch them through short-lived signed URLs.
type StorageProvider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// BillKeyPrefix is the object key prefix for bill evidence uploads.
const BillKeyPrefix = "bills/"

// BillCacheControl marks bill objects as non-cacheable. Bill photos
// carry customer purchase details.
const BillCacheControl = "private, no-store"

// BillKey builds a fresh object key for a bill upload. The extension
// must include the leading dot.
func BillKey(ext string) string {
	return fmt.Sprintf("%s%s%s", BillKeyPrefix, primitive.NewObjectID().Hex(), ext)
}

type UploadRequest struct {
	Key         string            `json:"key"`
	Reader      io.Reader         `json:"-"`
	ContentType string            `json:"content_type"`
	Size        int64             `json:"size"`
	Metadata    map[string]string `json:"metadata"`
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
