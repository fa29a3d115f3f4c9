package domain

import "time"

type TrainerApplication struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"not null" json:"email"`
	Phone              string    `gorm:"not null" json:"phone"`
	TrainingCourses    string    `gorm:"not null" json:"trainingCourses"`
	TrainingExperience string    `gorm:"not null" json:"trainingExperience"`
	LinkedinProfile    string    `json:"linkedinProfile"`
	ResumeURL          string    `json:"resumeUrl"`
	AppliedAt          time.Time `gorm:"autoCreateTime" json:"appliedAt"`
}
