package database

import (
	"context"
	"fmt"
	"strconv"
)

// nextID atomically increments the named counter and returns the new value
// as a string id. Ids are never generated locally; uniqueness and
// monotonicity come from the store's atomic increment. Gaps are fine: an id
// allocated for a write that later fails is simply never reused.
func (d *Database) nextID(ctx context.Context, counter string) (string, error) {
	n, err := d.store.Incr(ctx, counter)
	if err != nil {
		return "", fmt.Errorf("incr %s: %w", counter, err)
	}
	return strconv.FormatInt(n, 10), nil
}
