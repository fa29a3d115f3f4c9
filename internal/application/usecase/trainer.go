package usecase

import (
	"context"
	"fmt"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/storage"
)

type TrainerApplicationInput struct {
	Name               string
	Email              string
	Phone              string
	TrainingCourses    string
	TrainingExperience string
	LinkedinProfile    string
}

type TrainerUseCase struct {
	apps  *repository.TrainerApplicationRepository
	blobs storage.BlobStore
	now   func() time.Time
}

func NewTrainerUseCase(ar *repository.TrainerApplicationRepository, blobs storage.BlobStore) *TrainerUseCase {
	return &TrainerUseCase{apps: ar, blobs: blobs, now: time.Now}
}

// Apply stores the application. The resume is optional.
func (uc *TrainerUseCase) Apply(ctx context.Context, in TrainerApplicationInput, resume *Upload) (*domain.TrainerApplication, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.TrainingCourses == "" || in.TrainingExperience == "" {
		return nil, domain.NewError(domain.ErrBadRequest, "All required fields must be filled.")
	}

	app := &domain.TrainerApplication{
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		TrainingCourses:    in.TrainingCourses,
		TrainingExperience: in.TrainingExperience,
		LinkedinProfile:    in.LinkedinProfile,
	}
	if resume != nil {
		key := fmt.Sprintf("%d-%s", uc.now().UnixMilli(), resume.Filename)
		url, err := uc.blobs.Upload(ctx, storage.CategoryResume, key, resume.ContentType, resume.Body)
		if err != nil {
			return nil, domain.WrapError(domain.ErrUpstream, "Upload failed", err)
		}
		app.ResumeURL = url
	}

	if err := uc.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
