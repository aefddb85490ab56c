package domain

// TopicFilter narrows topic listings. The zero value lists every live
// topic in lc_name order.
type TopicFilter struct {
	IncludeDeleted bool
	// NameContains filters by case-insensitive substring match.
	NameContains string
	Limit        int
	Offset       int
}
