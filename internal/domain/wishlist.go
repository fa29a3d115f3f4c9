package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WishlistItem struct {
	CourseSnapshot
	AddedAt time.Time `json:"addedAt"`
}

type Wishlist struct {
	ID        uint                              `gorm:"primaryKey"`
	UserID    uuid.UUID                         `gorm:"type:uuid;uniqueIndex;not null"`
	Items     datatypes.JSONSlice[WishlistItem] `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wishlist) Contains(courseID string) bool {
	for _, it := range w.Items {
		if it.CourseID == courseID {
			return true
		}
	}
	return false
}

// Add reports whether the course was appended. Duplicates are ignored.
func (w *Wishlist) Add(course CourseSnapshot, now time.Time) bool {
	if w.Contains(course.CourseID) {
		return false
	}
	w.Items = append(w.Items, WishlistItem{CourseSnapshot: course, AddedAt: now})
	return true
}

func (w *Wishlist) Remove(courseID string) {
	kept := w.Items[:0]
	for _, it := range w.Items {
		if it.CourseID != courseID {
			kept = append(kept, it)
		}
	}
	w.Items = kept
}

func (w *Wishlist) ItemList() []WishlistItem {
	if w == nil || len(w.Items) == 0 {
		return []WishlistItem{}
	}
	return w.Items
}
