package database

import "errors"

var (
	// ErrNotFound means an unknown username, uid or post id.
	ErrNotFound = errors.New("not found")

	// ErrNameTaken is returned by CreateUser when the username is already
	// mapped to a uid.
	ErrNameTaken = errors.New("username already taken")

	// ErrPartialWrite means a later step of a multi-key write failed after
	// earlier steps were applied. There is no rollback; the key space may
	// already reflect part of the operation.
	ErrPartialWrite = errors.New("partial write")
)
