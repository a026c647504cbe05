package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troopay/troopay-backend/internal/models"
)

func TestListMembers_GroupNotFound(t *testing.T) {
	svc := NewMemberService(newFakeStore())

	_, err := svc.ListMembers(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestListMembers_ReturnsGroupUsers(t *testing.T) {
	store := newFakeStore()
	group := models.Group{ID: uuid.New(), Name: "Trip"}
	store.addGroup(group)
	a := models.User{ID: uuid.New(), Email: "a@x.com"}
	b := models.User{ID: uuid.New(), Email: "b@x.com"}
	store.addUser(a)
	store.addUser(b)
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: group.ID, UserID: a.ID})
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: group.ID, UserID: b.ID})
	svc := NewMemberService(store)

	members, err := svc.ListMembers(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "a@x.com", members[0].Email)
	assert.Equal(t, "b@x.com", members[1].Email)
}

func TestUpdateMembers_GroupNotFound(t *testing.T) {
	svc := NewMemberService(newFakeStore())

	err := svc.UpdateMembers(context.Background(), uuid.New(), []string{"a@x.com"})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestUpdateMembers_AddsAndProvisionsPlaceholders(t *testing.T) {
	store := newFakeStore()
	group := models.Group{ID: uuid.New()}
	store.addGroup(group)
	store.addUser(models.User{ID: uuid.New(), Email: "a@x.com"})
	svc := NewMemberService(store)

	err := svc.UpdateMembers(context.Background(), group.ID, []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, store.membershipCount())
	assert.Equal(t, 1, store.createUserCalls, "only the unknown email gets a placeholder")
	assert.Equal(t, 2, store.userCount())

	placeholder, err := store.FindUserByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, placeholder.Password)
	assert.Nil(t, placeholder.GoogleID)
}

func TestUpdateMembers_Idempotent(t *testing.T) {
	store := newFakeStore()
	group := models.Group{ID: uuid.New()}
	store.addGroup(group)
	svc := NewMemberService(store)
	ctx := context.Background()

	targets := []string{"a@x.com", "b@x.com"}
	require.NoError(t, svc.UpdateMembers(ctx, group.ID, targets))

	creates := store.createMembershipCalls
	deletes := store.deleteMembershipCalls
	users := store.createUserCalls

	require.NoError(t, svc.UpdateMembers(ctx, group.ID, targets))

	assert.Equal(t, creates, store.createMembershipCalls, "second reconcile must insert nothing")
	assert.Equal(t, deletes, store.deleteMembershipCalls, "second reconcile must delete nothing")
	assert.Equal(t, users, store.createUserCalls)
	assert.Equal(t, 2, store.membershipCount())
}

func TestUpdateMembers_PreservesUnchangedRows(t *testing.T) {
	store := newFakeStore()
	group := models.Group{ID: uuid.New()}
	store.addGroup(group)
	a := models.User{ID: uuid.New(), Email: "a@x.com"}
	store.addUser(a)
	existing := models.Membership{ID: uuid.New(), GroupID: group.ID, UserID: a.ID}
	store.addMembership(existing)
	svc := NewMemberService(store)

	err := svc.UpdateMembers(context.Background(), group.ID, []string{"a@x.com", "c@x.com"})
	require.NoError(t, err)

	kept, err := store.FindMembership(context.Background(), group.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, kept.ID, "unchanged membership row must not be recreated")
}

func TestUpdateMembers_EmptyListRemovesEveryone(t *testing.T) {
	store := newFakeStore()
	group := models.Group{ID: uuid.New()}
	store.addGroup(group)
	svc := NewMemberService(store)
	ctx := context.Background()

	require.NoError(t, svc.UpdateMembers(ctx, group.ID, []string{"a@x.com", "b@x.com"}))
	require.Equal(t, 2, store.membershipCount())

	require.NoError(t, svc.UpdateMembers(ctx, group.ID, []string{}))

	assert.Equal(t, 0, store.membershipCount())
	assert.Equal(t, 2, store.userCount(), "users outlive their memberships")
}

func TestRecentMembers_DedupesAndExcludesCaller(t *testing.T) {
	store := newFakeStore()
	me := models.User{ID: uuid.New(), Email: "me@x.com"}
	friend := models.User{ID: uuid.New(), Email: "friend@x.com"}
	other := models.User{ID: uuid.New(), Email: "other@x.com"}
	store.addUser(me)
	store.addUser(friend)
	store.addUser(other)

	trip := models.Group{ID: uuid.New()}
	rent := models.Group{ID: uuid.New()}
	store.addGroup(trip)
	store.addGroup(rent)

	// friend shares both groups with me; other shares only one
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: trip.ID, UserID: me.ID})
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: trip.ID, UserID: friend.ID})
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: rent.ID, UserID: me.ID})
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: rent.ID, UserID: friend.ID})
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: rent.ID, UserID: other.ID})

	svc := NewMemberService(store)
	members, err := svc.RecentMembers(context.Background(), me.ID)
	require.NoError(t, err)

	require.Len(t, members, 2)
	ids := []uuid.UUID{members[0].ID, members[1].ID}
	assert.Contains(t, ids, friend.ID)
	assert.Contains(t, ids, other.ID)
	assert.NotContains(t, ids, me.ID)
}

func TestRecentMembers_NoGroups(t *testing.T) {
	store := newFakeStore()
	svc := NewMemberService(store)

	members, err := svc.RecentMembers(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestRemoveMember(t *testing.T) {
	store := newFakeStore()
	group := models.Group{ID: uuid.New()}
	store.addGroup(group)
	user := models.User{ID: uuid.New(), Email: "a@x.com"}
	store.addUser(user)
	store.addMembership(models.Membership{ID: uuid.New(), GroupID: group.ID, UserID: user.ID})
	svc := NewMemberService(store)
	ctx := context.Background()

	require.NoError(t, svc.RemoveMember(ctx, group.ID, user.ID))
	assert.Equal(t, 0, store.membershipCount())

	err := svc.RemoveMember(ctx, group.ID, user.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}
