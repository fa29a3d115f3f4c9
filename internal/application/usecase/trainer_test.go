package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTrainer(t *testing.T) {
	blobs := &fakeBlobStore{}
	uc := NewTrainerUseCase(repository.NewTrainerApplicationRepository(testDB(t)), blobs)
	uc.now = func() time.Time { return time.UnixMilli(42) }
	in := TrainerApplicationInput{Name: "N", Email: "n@x.com", Phone: "1", TrainingCourses: "Go", TrainingExperience: "5y"}

	app, err := uc.Apply(context.Background(), in, &Upload{Filename: "cv.pdf", Body: strings.NewReader("pdf")})
	require.NoError(t, err)
	assert.NotZero(t, app.ID)
	assert.Equal(t, storage.CategoryResume, blobs.category)
	assert.Equal(t, "42-cv.pdf", blobs.key)
	assert.Contains(t, app.ResumeURL, "42-cv.pdf")

	noResume, err := uc.Apply(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Empty(t, noResume.ResumeURL)

	in.Phone = ""
	_, err = uc.Apply(context.Background(), in, nil)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUploadCourseImage(t *testing.T) {
	blobs := &fakeBlobStore{}
	uc := NewMediaUseCase(blobs)

	url, err := uc.UploadCourseImage(context.Background(), &Upload{Filename: "cover.JPG", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, storage.CategoryCourse, blobs.category)
	assert.True(t, strings.HasPrefix(blobs.key, "course_"))
	assert.True(t, strings.HasSuffix(blobs.key, ".JPG"))
	assert.Contains(t, url, blobs.key)

	_, err = uc.UploadCourseImage(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
