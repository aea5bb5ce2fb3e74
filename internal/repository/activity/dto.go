package activity

import (
	"strconv"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Hash field names.
const (
	fieldBorrowed     = "borrowed"
	fieldBorrowCount  = "borrow_count"
	fieldReserved     = "reserved"
	fieldReserveCount = "reserve_count"
	fieldFavorite     = "favorite"
	fieldRating       = "rating"
)

// buildHashFields flattens an interaction into a Redis hash. Every field
// is written explicitly: HSET merges into an existing hash, so a cleared
// flag must overwrite the stored value to record state transitions such
// as a returned loan.
func buildHashFields(in domain.Interaction) map[string]string {
	return map[string]string{
		fieldBorrowed:     boolField(in.Borrowed),
		fieldBorrowCount:  strconv.Itoa(in.BorrowCount),
		fieldReserved:     boolField(in.Reserved),
		fieldReserveCount: strconv.Itoa(in.ReserveCount),
		fieldFavorite:     boolField(in.Favorite),
		fieldRating:       strconv.Itoa(in.Rating),
	}
}

func boolField(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// parseHashFields reconstructs an interaction from its hash. Malformed
// counters parse as zero.
func parseHashFields(itemID string, m map[string]string) domain.Interaction {
	return domain.Interaction{
		ItemID:       itemID,
		Borrowed:     m[fieldBorrowed] == "1",
		BorrowCount:  parseInt(m[fieldBorrowCount]),
		Reserved:     m[fieldReserved] == "1",
		ReserveCount: parseInt(m[fieldReserveCount]),
		Favorite:     m[fieldFavorite] == "1",
		Rating:       parseInt(m[fieldRating]),
	}
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
