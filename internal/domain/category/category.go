// Package category models the catalog item category as a closed enum.
// Unknown categories fall through to the default text-building rule
// rather than silently matching nothing.
package category

// Category is the catalog item kind.
type Category string

// Catalog category constants.
const (
	Book          Category = "book"
	BookSeries    Category = "book_series"
	ReferenceBook Category = "reference_book"
	Newspaper     Category = "newspaper"
	Magazine      Category = "magazine"
	DigitalItem   Category = "digital_item"
	Unknown       Category = "unknown"
)

// Parse maps a raw category string to a known Category, defaulting to Unknown.
func Parse(s string) Category {
	switch Category(s) {
	case Book, BookSeries, ReferenceBook, Newspaper, Magazine, DigitalItem:
		return Category(s)
	default:
		return Unknown
	}
}

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	switch c {
	case Book, BookSeries, ReferenceBook, Newspaper, Magazine, DigitalItem, Unknown:
		return true
	default:
		return false
	}
}

// IsBookLike reports whether the category uses the full recommendation
// document (title, author, classification, genres, topical terms).
func (c Category) IsBookLike() bool {
	return c == Book || c == BookSeries || c == ReferenceBook
}

// IsPeriodical reports whether the category restricts the recommendation
// document to the cleaned title only.
func (c Category) IsPeriodical() bool {
	return c == Newspaper || c == Magazine
}
