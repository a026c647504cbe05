package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is referenced by the membership endpoints but never mutated
// here except through its membership rows.
type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
