package database

import (
	"context"
	"errors"
	"fmt"
)

// Follow records uid following targetUID. The edge is written redundantly
// into both users' sets; set adds are idempotent, so retrying a half-applied
// follow converges. The two writes are not atomic.
func (d *Database) Follow(ctx context.Context, uid, targetUID string) error {
	if err := d.store.SAdd(ctx, followingKey(uid), targetUID); err != nil {
		return fmt.Errorf("add to following of %s: %w", uid, err)
	}
	if err := d.store.SAdd(ctx, followersKey(targetUID), uid); err != nil {
		return fmt.Errorf("%w: add to followers of %s: %w", ErrPartialWrite, targetUID, err)
	}
	return nil
}

// Unfollow removes the edge from both sets.
func (d *Database) Unfollow(ctx context.Context, uid, targetUID string) error {
	if err := d.store.SRem(ctx, followingKey(uid), targetUID); err != nil {
		return fmt.Errorf("remove from following of %s: %w", uid, err)
	}
	if err := d.store.SRem(ctx, followersKey(targetUID), uid); err != nil {
		return fmt.Errorf("%w: remove from followers of %s: %w", ErrPartialWrite, targetUID, err)
	}
	return nil
}

func (d *Database) IsFollowing(ctx context.Context, uid, targetUID string) (bool, error) {
	return d.store.SIsMember(ctx, followingKey(uid), targetUID)
}

func (d *Database) Followers(ctx context.Context, uid string) ([]string, error) {
	return d.store.SMembers(ctx, followersKey(uid))
}

func (d *Database) Following(ctx context.Context, uid string) ([]string, error) {
	return d.store.SMembers(ctx, followingKey(uid))
}

// CommonFollowers returns the uids both users follow.
func (d *Database) CommonFollowers(ctx context.Context, uid, targetUID string) ([]string, error) {
	return d.store.SInter(ctx, followingKey(uid), followingKey(targetUID))
}

// AlsoFollowed returns the uids that uid follows and that follow targetUID
// ("also followed by" on a profile page).
func (d *Database) AlsoFollowed(ctx context.Context, uid, targetUID string) ([]string, error) {
	return d.store.SInter(ctx, followingKey(uid), followersKey(targetUID))
}

// FollowerNames is Followers translated to display names.
func (d *Database) FollowerNames(ctx context.Context, uid string) ([]string, error) {
	uids, err := d.Followers(ctx, uid)
	if err != nil {
		return nil, err
	}
	return d.namesForUIDs(ctx, uids)
}

// FollowingNames is Following translated to display names.
func (d *Database) FollowingNames(ctx context.Context, uid string) ([]string, error) {
	uids, err := d.Following(ctx, uid)
	if err != nil {
		return nil, err
	}
	return d.namesForUIDs(ctx, uids)
}

// CommonFollowerNames is CommonFollowers translated to display names.
func (d *Database) CommonFollowerNames(ctx context.Context, uid, targetUID string) ([]string, error) {
	uids, err := d.CommonFollowers(ctx, uid, targetUID)
	if err != nil {
		return nil, err
	}
	return d.namesForUIDs(ctx, uids)
}

// AlsoFollowedNames is AlsoFollowed translated to display names.
func (d *Database) AlsoFollowedNames(ctx context.Context, uid, targetUID string) ([]string, error) {
	uids, err := d.AlsoFollowed(ctx, uid, targetUID)
	if err != nil {
		return nil, err
	}
	return d.namesForUIDs(ctx, uids)
}

// namesForUIDs resolves each uid to its display name, keeping traversal
// order. Uids with no profile (never expected, but possible after a partial
// signup) are skipped.
func (d *Database) namesForUIDs(ctx context.Context, uids []string) ([]string, error) {
	names := make([]string, 0, len(uids))
	for _, uid := range uids {
		name, err := d.FindName(ctx, uid)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
