package usecase

import (
	"context"
	"errors"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type WishlistUseCase struct {
	wishlists *repository.WishlistRepository
	now       func() time.Time
}

func NewWishlistUseCase(wr *repository.WishlistRepository) *WishlistUseCase {
	return &WishlistUseCase{wishlists: wr, now: time.Now}
}

// Add is idempotent: a course already on the list is not written again.
func (uc *WishlistUseCase) Add(ctx context.Context, userID uuid.UUID, course domain.CourseSnapshot) ([]domain.WishlistItem, error) {
	if course.CourseID == "" {
		return nil, domain.ErrMissingCourseID
	}
	wl, err := uc.wishlists.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrWishlistNotFound) {
		wl, err = &domain.Wishlist{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	if wl.Add(course, uc.now()) {
		if err := uc.wishlists.Save(ctx, wl); err != nil {
			return nil, err
		}
	}
	return wl.ItemList(), nil
}

func (uc *WishlistUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	wl, err := uc.wishlists.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrWishlistNotFound) {
		return []domain.WishlistItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return wl.ItemList(), nil
}

func (uc *WishlistUseCase) Remove(ctx context.Context, userID uuid.UUID, courseID string) ([]domain.WishlistItem, error) {
	if courseID == "" {
		return nil, domain.ErrMissingCourseID
	}
	wl, err := uc.wishlists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	wl.Remove(courseID)
	if err := uc.wishlists.Save(ctx, wl); err != nil {
		return nil, err
	}
	return wl.ItemList(), nil
}
