package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const OrderCounterName = "order"

type OrderStatus string

const (
	OrderStatusSuccess OrderStatus = "success"
	OrderStatusFailure OrderStatus = "failure"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusSuccess || s == OrderStatusFailure
}

type OrderCourse struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
}

// Order is written once by the payment workflow and never updated.
type Order struct {
	ID             uint                             `gorm:"primaryKey" json:"-"`
	OrderID        int64                            `gorm:"uniqueIndex;not null" json:"orderId"`
	UserID         uuid.UUID                        `gorm:"type:uuid;index;not null" json:"userId"`
	Courses        datatypes.JSONSlice[OrderCourse] `gorm:"not null" json:"courses"`
	TotalAmount    float64                          `json:"totalAmount"`
	Status         OrderStatus                      `gorm:"size:16;not null;default:'success'" json:"status"`
	PaymentDate    time.Time                        `gorm:"index" json:"paymentDate"`
	IdempotencyKey *string                          `gorm:"uniqueIndex;size:128" json:"-"`
	CreatedAt      time.Time                        `json:"createdAt"`
}
