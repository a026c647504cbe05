package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/troopay/troopay-backend/internal/models"
)

// ErrNotFound is returned by lookups when no row matches. It is a
// store-level outcome, distinct from the domain errors the services
// surface to callers.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract the services depend on. Uniqueness
// of email, google_id and (group,user) is enforced by the store; a
// conflicting create fails with the underlying driver error rather than
// being swallowed.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error

	FindGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	FindMembership(ctx context.Context, groupID, userID uuid.UUID) (*models.Membership, error)
	ListGroupMemberships(ctx context.Context, groupID uuid.UUID) ([]models.Membership, error)
	ListUserMemberships(ctx context.Context, userID uuid.UUID) ([]models.Membership, error)
	CreateMembership(ctx context.Context, membership *models.Membership) error
	DeleteMembership(ctx context.Context, groupID, userID uuid.UUID) error
}
