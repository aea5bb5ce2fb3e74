package domain

// Interaction records a reader's engagement with a single catalog item.
// Rating uses a 0-5 scale where 0 means unrated.
type Interaction struct {
	ItemID       string
	Borrowed     bool
	BorrowCount  int
	Reserved     bool
	ReserveCount int
	Favorite     bool
	Rating       int
}

// HasSignal reports whether the record carries any engagement signal at all.
// Records without a signal never enter the user profile or the exclusion set.
func (i Interaction) HasSignal() bool {
	return i.Borrowed || i.BorrowCount > 0 || i.Reserved || i.ReserveCount > 0 ||
		i.Favorite || i.Rating > 0
}
