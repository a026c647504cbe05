package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a single identity record shared by every credential path.
// A row created by a membership add ("placeholder") has neither a
// password hash nor a Google ID until the person signs up or signs in
// with Google for the first time.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string    `gorm:"size:100" json:"firstname"`
	LastName  string    `gorm:"size:100" json:"lastname"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:100" json:"-"`
	GoogleID  *string   `gorm:"size:255;uniqueIndex" json:"-"`
	AvatarURL string    `gorm:"size:512" json:"avatarUrl"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCredential reports whether the user can sign in at all.
func (u *User) HasCredential() bool {
	return u.Password != "" || u.GoogleID != nil
}
