package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"coursehub/internal/infrastructure/logger"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type Category string

const (
	CategoryProfile Category = "profile"
	CategoryResume  Category = "resume"
	CategoryCourse  Category = "course"
)

// BlobStore is an upload sink that hands back a publicly reachable URL.
type BlobStore interface {
	Upload(ctx context.Context, category Category, key, contentType string, body io.Reader) (string, error)
}

type Buckets struct {
	Profile string
	Resume  string
	Course  string
}

type GCSStore struct {
	log     *logger.Logger
	client  *gcs.Client
	buckets Buckets
	baseURL string
}

func NewGCSStore(ctx context.Context, log *logger.Logger, buckets Buckets, publicBaseURL string, opts ...option.ClientOption) (*GCSStore, error) {
	opts = append(opts, option.WithScopes(gcs.ScopeReadWrite))
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if publicBaseURL == "" {
		publicBaseURL = "https://storage.googleapis.com"
	}
	return &GCSStore{
		log:     log.With("service", "GCSStore"),
		client:  client,
		buckets: buckets,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) bucket(category Category) (string, error) {
	var name string
	switch category {
	case CategoryProfile:
		name = s.buckets.Profile
	case CategoryResume:
		name = s.buckets.Resume
	case CategoryCourse:
		name = s.buckets.Course
	default:
		return "", fmt.Errorf("unknown bucket category: %s", category)
	}
	if name == "" {
		return "", fmt.Errorf("no bucket configured for %s", category)
	}
	return name, nil
}

func (s *GCSStore) Upload(ctx context.Context, category Category, key, contentType string, body io.Reader) (string, error) {
	bucket, err := s.bucket(category)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if contentType == "" {
		contentType = ContentTypeForKey(key)
	}
	w.ContentType = contentType
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	s.log.Debug("object uploaded", "bucket", bucket, "key", key)
	return PublicURL(s.baseURL, bucket, key), nil
}

func PublicURL(baseURL, bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", baseURL, bucket, url.PathEscape(key))
}

func ContentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(s, ".doc"):
		return "application/msword"
	case strings.HasSuffix(s, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// Unavailable fails every upload. It stands in when the storage client could
// not be created so the rest of the API keeps serving.
type Unavailable struct {
	Err error
}

func (u Unavailable) Upload(context.Context, Category, string, string, io.Reader) (string, error) {
	return "", fmt.Errorf("blob storage unavailable: %w", u.Err)
}
