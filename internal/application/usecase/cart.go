package usecase

import (
	"context"
	"errors"
	"time"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type CartUseCase struct {
	carts *repository.CartRepository
	now   func() time.Time
}

func NewCartUseCase(cr *repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: cr, now: time.Now}
}

func (uc *CartUseCase) Add(ctx context.Context, userID uuid.UUID, course domain.CourseSnapshot) ([]domain.CartItem, error) {
	if course.CourseID == "" {
		return nil, domain.ErrMissingCourseID
	}
	cart, err := uc.carts.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrCartNotFound) {
		cart, err = &domain.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	cart.Add(course, uc.now())
	if err := uc.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart.ItemList(), nil
}

// List returns an empty list for a user who never added anything.
func (uc *CartUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	cart, err := uc.carts.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.ItemList(), nil
}

// UpdateQuantity never takes a quantity below 1.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID uuid.UUID, courseID, action string) ([]domain.CartItem, error) {
	if courseID == "" || (action != domain.QuantityIncrement && action != domain.QuantityDecrement) {
		return nil, domain.NewError(domain.ErrBadRequest, "Invalid request")
	}
	cart, err := uc.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	i, ok := cart.Find(courseID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	switch {
	case action == domain.QuantityIncrement:
		cart.Items[i].Quantity++
	case cart.Items[i].Quantity > 1:
		cart.Items[i].Quantity--
	}
	if err := uc.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart.ItemList(), nil
}

func (uc *CartUseCase) Remove(ctx context.Context, userID uuid.UUID, courseID string) ([]domain.CartItem, error) {
	if courseID == "" {
		return nil, domain.ErrMissingCourseID
	}
	cart, err := uc.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Remove(courseID)
	if err := uc.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart.ItemList(), nil
}
