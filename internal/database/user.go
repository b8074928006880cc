package database

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/microblog/internal/models"
	"github.com/thereayou/microblog/internal/store"
)

// CreateUser registers a new user and returns its uid together with an
// initial session token. Duplicate usernames are rejected before a uid is
// allocated; the check-then-write is not atomic, which is an accepted race
// for this design.
func (d *Database) CreateUser(ctx context.Context, name, password string) (uid, token string, err error) {
	taken, err := d.store.Exists(ctx, nameUIDKey(name))
	if err != nil {
		return "", "", fmt.Errorf("check name %s: %w", name, err)
	}
	if taken {
		return "", "", ErrNameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	uid, err = d.nextID(ctx, keyGlobalUID)
	if err != nil {
		return "", "", err
	}

	// Profile hash first, then the lookup structures that point at it.
	if err := d.store.HSet(ctx, userKey(uid), map[string]string{
		"name": name,
		"pass": string(hash),
	}); err != nil {
		return "", "", fmt.Errorf("write profile for uid %s: %w", uid, err)
	}
	if err := d.store.Set(ctx, nameUIDKey(name), uid); err != nil {
		return "", "", fmt.Errorf("%w: name mapping for %s: %w", ErrPartialWrite, name, err)
	}
	if err := d.store.RPush(ctx, keyUsers, name); err != nil {
		return "", "", fmt.Errorf("%w: users list append for %s: %w", ErrPartialWrite, name, err)
	}

	token, err = d.AddAuth(ctx, name)
	if err != nil {
		return "", "", fmt.Errorf("%w: initial auth for %s: %w", ErrPartialWrite, name, err)
	}
	return uid, token, nil
}

// FindUID resolves a username to its uid.
func (d *Database) FindUID(ctx context.Context, name string) (string, error) {
	uid, err := d.store.Get(ctx, nameUIDKey(name))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNotFound
	}
	return uid, err
}

// FindName resolves a uid to its display name.
func (d *Database) FindName(ctx context.Context, uid string) (string, error) {
	name, err := d.store.HGet(ctx, userKey(uid), "name")
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNotFound
	}
	return name, err
}

// GetUser loads a profile by uid.
func (d *Database) GetUser(ctx context.Context, uid string) (*models.User, error) {
	fields, err := d.store.HGetAll(ctx, userKey(uid))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &models.User{
		UID:          uid,
		Name:         fields["name"],
		PasswordHash: fields["pass"],
	}, nil
}

// IsUserValid reports whether the username is registered.
func (d *Database) IsUserValid(ctx context.Context, name string) (bool, error) {
	return d.store.Exists(ctx, nameUIDKey(name))
}

// Auth checks a username/password pair. An unknown user is a plain false,
// not an error.
func (d *Database) Auth(ctx context.Context, name, password string) (bool, error) {
	uid, err := d.FindUID(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	hash, err := d.store.HGet(ctx, userKey(uid), "pass")
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// NewUsers pages through registered usernames in signup order.
func (d *Database) NewUsers(ctx context.Context, r models.Range) ([]string, error) {
	return d.store.LRange(ctx, keyUsers, r.Begin, r.End)
}
