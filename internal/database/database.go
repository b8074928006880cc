package database

import (
	"github.com/thereayou/microblog/internal/store"
)

// Database is the microblog data layer. Every domain relationship (users,
// sessions, the follow graph, feeds, mentions) lives in its own key-value
// structure; the methods on Database keep those structures consistent
// through explicit writes. Multi-key writes are sequential and not
// transactional: a failure partway through surfaces ErrPartialWrite and
// leaves the earlier steps applied.
type Database struct {
	store store.Store
}

func NewDatabase(s store.Store) *Database {
	return &Database{store: s}
}
