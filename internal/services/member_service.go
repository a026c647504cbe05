package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/troopay/troopay-backend/internal/models"
	"github.com/troopay/troopay-backend/internal/storage"
)

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrMembershipNotFound = errors.New("membership not found")
)

// MemberService converges a group's member set to a caller-supplied
// list of emails and answers membership queries.
type MemberService struct {
	store storage.Store
}

func NewMemberService(store storage.Store) *MemberService {
	return &MemberService{store: store}
}

// ListMembers returns the users belonging to the group.
func (s *MemberService) ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.User, error) {
	if _, err := s.store.FindGroup(ctx, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	memberships, err := s.store.ListGroupMemberships(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := make([]models.User, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, m.User)
	}
	return members, nil
}

// RecentMembers returns every user the caller shares a group with,
// de-duplicated by id and excluding the caller, in first-seen order.
func (s *MemberService) RecentMembers(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	own, err := s.store.ListUserMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	members := make([]models.User, 0)
	for _, m := range own {
		groupMembers, err := s.store.ListGroupMemberships(ctx, m.GroupID)
		if err != nil {
			return nil, err
		}
		for _, gm := range groupMembers {
			if gm.UserID == userID {
				continue
			}
			if _, ok := seen[gm.UserID]; ok {
				continue
			}
			seen[gm.UserID] = struct{}{}
			members = append(members, gm.User)
		}
	}
	return members, nil
}

// UpdateMembers converges the group's membership set to the target
// email list. Memberships whose email appears in both the current and
// the target set are never touched, so unchanged members keep their
// rows. Unknown emails get a placeholder user that sign-up completes
// later.
func (s *MemberService) UpdateMembers(ctx context.Context, groupID uuid.UUID, emails []string) error {
	if _, err := s.store.FindGroup(ctx, groupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrGroupNotFound
		}
		return err
	}

	// Membership snapshot at reconciliation start; the removal pass
	// below works off this, not a re-read, so it cannot delete a row
	// the addition pass just created.
	current, err := s.store.ListGroupMemberships(ctx, groupID)
	if err != nil {
		return err
	}

	currentEmails := make(map[string]struct{}, len(current))
	for _, m := range current {
		currentEmails[m.User.Email] = struct{}{}
	}
	target := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		target[email] = struct{}{}
	}

	for _, email := range emails {
		if _, ok := currentEmails[email]; ok {
			continue
		}

		user, err := s.store.FindUserByEmail(ctx, email)
		if errors.Is(err, storage.ErrNotFound) {
			user = &models.User{ID: uuid.New(), Email: email}
			if err := s.store.CreateUser(ctx, user); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		_, err = s.store.FindMembership(ctx, groupID, user.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		membership := &models.Membership{ID: uuid.New(), GroupID: groupID, UserID: user.ID}
		if err := s.store.CreateMembership(ctx, membership); err != nil {
			return err
		}
	}

	for _, m := range current {
		if _, ok := target[m.User.Email]; ok {
			continue
		}
		if err := s.store.DeleteMembership(ctx, groupID, m.UserID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}

	return nil
}

// RemoveMember deletes a single (group, user) membership.
func (s *MemberService) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if err := s.store.DeleteMembership(ctx, groupID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}
	return nil
}
