package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/troopay/troopay-backend/internal/models"
	"github.com/troopay/troopay-backend/internal/storage"
)

// fakeStore is an in-memory storage.Store. It returns copies of stored
// records so mutations only persist through UpdateUser, like a real
// store. The call counters let tests assert that an operation performed
// no writes.
type fakeStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]models.User
	groups      map[uuid.UUID]models.Group
	memberships []models.Membership

	createUserCalls       int
	createMembershipCalls int
	deleteMembershipCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]models.User),
		groups: make(map[uuid.UUID]models.Group),
	}
}

func (f *fakeStore) addUser(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
}

func (f *fakeStore) addGroup(group models.Group) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups[group.ID] = group
}

func (f *fakeStore) addMembership(m models.Membership) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberships = append(f.memberships, m)
}

func (f *fakeStore) userCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

func (f *fakeStore) membershipCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.memberships)
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) FindUserByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			user := u
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createUserCalls++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeStore) UpdateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeStore) FindGroup(_ context.Context, id uuid.UUID) (*models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.groups[id]; ok {
		group := g
		return &group, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) FindMembership(_ context.Context, groupID, userID uuid.UUID) (*models.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			membership := m
			return &membership, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) ListGroupMemberships(_ context.Context, groupID uuid.UUID) ([]models.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Membership
	for _, m := range f.memberships {
		if m.GroupID == groupID {
			m.User = f.users[m.UserID]
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeStore) ListUserMemberships(_ context.Context, userID uuid.UUID) ([]models.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Membership
	for _, m := range f.memberships {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeStore) CreateMembership(_ context.Context, membership *models.Membership) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createMembershipCalls++
	f.memberships = append(f.memberships, *membership)
	return nil
}

func (f *fakeStore) DeleteMembership(_ context.Context, groupID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteMembershipCalls++
	for i, m := range f.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			f.memberships = append(f.memberships[:i], f.memberships[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}
