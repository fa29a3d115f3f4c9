package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/storage"
)

type MediaUseCase struct {
	blobs storage.BlobStore
	now   func() time.Time
}

func NewMediaUseCase(blobs storage.BlobStore) *MediaUseCase {
	return &MediaUseCase{blobs: blobs, now: time.Now}
}

// UploadCourseImage returns the public URL. Nothing is persisted.
func (uc *MediaUseCase) UploadCourseImage(ctx context.Context, file *Upload) (string, error) {
	if file == nil {
		return "", domain.NewError(domain.ErrBadRequest, "No image uploaded")
	}
	key := fmt.Sprintf("course_%d_%d.%s", uc.now().UnixMilli(), rand.IntN(1e9), fileExt(file.Filename))
	url, err := uc.blobs.Upload(ctx, storage.CategoryCourse, key, file.ContentType, file.Body)
	if err != nil {
		return "", domain.WrapError(domain.ErrUpstream, "Upload failed", err)
	}
	return url, nil
}
