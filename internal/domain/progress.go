package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	ProgressEnrolled  ProgressStatus = "enrolled"
	ProgressActive    ProgressStatus = "active"
	ProgressCompleted ProgressStatus = "completed"
)

// Progress is one enrollment of a user in a purchased course.
type Progress struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	CourseID   string         `gorm:"index" json:"courseId"`
	Title      string         `json:"title"`
	Price      float64        `json:"price"`
	Duration   string         `json:"duration"`
	Status     ProgressStatus `gorm:"size:16;not null;default:'enrolled'" json:"status"`
	EnrolledAt time.Time      `json:"enrolledAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (Progress) TableName() string {
	return "progress"
}
