package usecase

import (
	"context"
	"fmt"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/storage"

	"github.com/google/uuid"
)

type ProfileUseCase struct {
	userRepo *repository.UserRepository
	blobs    storage.BlobStore
	now      func() time.Time
}

func NewProfileUseCase(ur *repository.UserRepository, blobs storage.BlobStore) *ProfileUseCase {
	return &ProfileUseCase{userRepo: ur, blobs: blobs, now: time.Now}
}

func (uc *ProfileUseCase) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// Update changes only the fields set in upd.
func (uc *ProfileUseCase) Update(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	if upd.Gender != nil && !domain.ValidGender(*upd.Gender) {
		return nil, domain.NewError(domain.ErrBadRequest, "Invalid gender")
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	upd.Apply(user)
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePicture stores the avatar as <userId>_profile_<unixMillis>.<ext> and
// returns its URL.
func (uc *ProfileUseCase) UpdatePicture(ctx context.Context, userID uuid.UUID, file *Upload) (string, error) {
	if file == nil {
		return "", domain.ErrNoFile
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s_profile_%d.%s", userID, uc.now().UnixMilli(), fileExt(file.Filename))
	url, err := uc.blobs.Upload(ctx, storage.CategoryProfile, key, file.ContentType, file.Body)
	if err != nil {
		return "", domain.WrapError(domain.ErrUpstream, "Upload failed", err)
	}
	if err := uc.userRepo.UpdateProfilePic(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
