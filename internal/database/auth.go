package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/thereayou/microblog/internal/store"
	"github.com/thereayou/microblog/pkg/auth"
)

// AddAuth issues a fresh opaque session token for the named user and stores
// the mapping in both directions. A previously issued token keeps its
// auth:<token> entry until it is explicitly revoked; only the uid side is
// overwritten here.
func (d *Database) AddAuth(ctx context.Context, name string) (string, error) {
	uid, err := d.FindUID(ctx, name)
	if err != nil {
		return "", err
	}

	token := auth.NewToken()
	if err := d.store.Set(ctx, uidAuthKey(uid), token); err != nil {
		return "", fmt.Errorf("set auth for uid %s: %w", uid, err)
	}
	if err := d.store.Set(ctx, authKey(token), uid); err != nil {
		return "", fmt.Errorf("%w: reverse auth mapping for uid %s: %w", ErrPartialWrite, uid, err)
	}
	return token, nil
}

// IsAuthValid reports whether the token maps to a user.
func (d *Database) IsAuthValid(ctx context.Context, token string) (bool, error) {
	return d.store.Exists(ctx, authKey(token))
}

// NameForAuth resolves a session token to the owning username.
func (d *Database) NameForAuth(ctx context.Context, token string) (string, error) {
	uid, err := d.store.Get(ctx, authKey(token))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return d.FindName(ctx, uid)
}

// DeleteAuth revokes the named user's current session, removing both
// directions of the token mapping. Revoking a user without a live session
// is a no-op.
func (d *Database) DeleteAuth(ctx context.Context, name string) error {
	uid, err := d.FindUID(ctx, name)
	if err != nil {
		return err
	}

	token, err := d.store.Get(ctx, uidAuthKey(uid))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return d.store.Del(ctx, uidAuthKey(uid), authKey(token))
}
