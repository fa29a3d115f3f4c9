package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	OAuthProviderGoogle   = "google"
	OAuthProviderFacebook = "facebook"
)

var genders = map[string]bool{"Male": true, "Female": true, "Other": true, "": true}

func ValidGender(g string) bool { return genders[g] }

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"uniqueIndex;not null;size:255"`
	Username      string    `gorm:"uniqueIndex;not null;size:100"`
	Phone         string    `gorm:"size:32"`
	Password      string    // bcrypt hash, empty for OAuth-provisioned accounts
	OAuthProvider string    `gorm:"column:oauth_provider;size:16"`

	FullName   string
	Gender     string `gorm:"size:16"`
	Country    string
	Language   string `gorm:"default:'English'"`
	Timezone   string `gorm:"default:'UTC'"`
	ProfilePic string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether credential login is possible for the account.
func (u *User) HasPassword() bool { return u.Password != "" }

// ProfileUpdate holds optional profile fields, nil means "leave as is".
type ProfileUpdate struct {
	FullName *string
	Phone    *string
	Gender   *string
	Country  *string
	Language *string
	Timezone *string
}

func (p ProfileUpdate) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Language != nil {
		u.Language = *p.Language
	}
	if p.Timezone != nil {
		u.Timezone = *p.Timezone
	}
}
