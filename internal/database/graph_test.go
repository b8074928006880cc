package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedUsers creates the named users and returns name→uid.
func seedUsers(t *testing.T, db *Database, names ...string) map[string]string {
	t.Helper()
	ctx := context.Background()
	uids := make(map[string]string, len(names))
	for _, name := range names {
		uid, _, err := db.CreateUser(ctx, name, "secret")
		require.NoError(t, err)
		uids[name] = uid
	}
	return uids
}

func TestFollowUnfollow(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uids := seedUsers(t, db, "alice", "bob")

	require.NoError(t, db.Follow(ctx, uids["alice"], uids["bob"]))

	ok, err := db.IsFollowing(ctx, uids["alice"], uids["bob"])
	require.NoError(t, err)
	assert.True(t, ok)

	following, err := db.Following(ctx, uids["alice"])
	require.NoError(t, err)
	assert.Equal(t, []string{uids["bob"]}, following)

	followers, err := db.Followers(ctx, uids["bob"])
	require.NoError(t, err)
	assert.Equal(t, []string{uids["alice"]}, followers)

	// Following twice is idempotent.
	require.NoError(t, db.Follow(ctx, uids["alice"], uids["bob"]))
	following, err = db.Following(ctx, uids["alice"])
	require.NoError(t, err)
	assert.Len(t, following, 1)

	// Unfollow removes both memberships.
	require.NoError(t, db.Unfollow(ctx, uids["alice"], uids["bob"]))

	ok, err = db.IsFollowing(ctx, uids["alice"], uids["bob"])
	require.NoError(t, err)
	assert.False(t, ok)

	followers, err = db.Followers(ctx, uids["bob"])
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestCommonFollowers(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uids := seedUsers(t, db, "alice", "bob", "carol", "dave")

	// Both alice and bob follow carol; only alice follows dave.
	require.NoError(t, db.Follow(ctx, uids["alice"], uids["carol"]))
	require.NoError(t, db.Follow(ctx, uids["bob"], uids["carol"]))
	require.NoError(t, db.Follow(ctx, uids["alice"], uids["dave"]))

	common, err := db.CommonFollowers(ctx, uids["alice"], uids["bob"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{uids["carol"]}, common)

	// The intersection is symmetric.
	flipped, err := db.CommonFollowers(ctx, uids["bob"], uids["alice"])
	require.NoError(t, err)
	assert.ElementsMatch(t, common, flipped)

	names, err := db.CommonFollowerNames(ctx, uids["alice"], uids["bob"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"carol"}, names)
}

func TestAlsoFollowed(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uids := seedUsers(t, db, "alice", "bob", "carol", "dave")

	// alice follows carol and dave; carol follows bob, dave does not.
	require.NoError(t, db.Follow(ctx, uids["alice"], uids["carol"]))
	require.NoError(t, db.Follow(ctx, uids["alice"], uids["dave"]))
	require.NoError(t, db.Follow(ctx, uids["carol"], uids["bob"]))

	also, err := db.AlsoFollowed(ctx, uids["alice"], uids["bob"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{uids["carol"]}, also)

	names, err := db.AlsoFollowedNames(ctx, uids["alice"], uids["bob"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"carol"}, names)
}

func TestFollowerNames(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	uids := seedUsers(t, db, "alice", "bob", "carol")

	require.NoError(t, db.Follow(ctx, uids["bob"], uids["alice"]))
	require.NoError(t, db.Follow(ctx, uids["carol"], uids["alice"]))

	names, err := db.FollowerNames(ctx, uids["alice"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := db.FollowingNames(ctx, uids["bob"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice"}, following)
}
