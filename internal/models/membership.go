package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership joins a user to a group. At most one row may exist per
// (group, user) pair; the unique index is the safety net against
// concurrent reconciliations creating duplicates.
type Membership struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_group_user" json:"group_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_group_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"member"`
}
