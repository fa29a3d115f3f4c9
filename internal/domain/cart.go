package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	QuantityIncrement = "increment"
	QuantityDecrement = "decrement"
)

type CartItem struct {
	CourseSnapshot
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

type Cart struct {
	ID        uint                          `gorm:"primaryKey"`
	UserID    uuid.UUID                     `gorm:"type:uuid;uniqueIndex;not null"`
	Items     datatypes.JSONSlice[CartItem] `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Cart) Find(courseID string) (int, bool) {
	for i := range c.Items {
		if c.Items[i].CourseID == courseID {
			return i, true
		}
	}
	return -1, false
}

// Add bumps the quantity of an existing course or appends it with quantity 1.
func (c *Cart) Add(course CourseSnapshot, now time.Time) {
	if i, ok := c.Find(course.CourseID); ok {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{CourseSnapshot: course, Quantity: 1, AddedAt: now})
}

// Remove drops the course if present. Missing ids are ignored.
func (c *Cart) Remove(courseID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.CourseID != courseID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// ItemList never returns nil so JSON renders [] for an empty cart.
func (c *Cart) ItemList() []CartItem {
	if c == nil || len(c.Items) == 0 {
		return []CartItem{}
	}
	return c.Items
}
