package models

// Range selects a window of a feed list. Indices follow LRANGE semantics:
// both bounds inclusive, 0 is the newest entry, negative values count from
// the oldest end. Out-of-range bounds clip to the list instead of failing.
type Range struct {
	Begin int64
	End   int64
}

// DefaultRange is the first page of a feed.
func DefaultRange() Range {
	return Range{Begin: 0, End: 9}
}
