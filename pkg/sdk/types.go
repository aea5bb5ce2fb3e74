package shelfwise

import (
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/category"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/filter"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/page"
)

// Category classifies a catalog item.
type Category string

// Category constants.
const (
	CategoryBook          Category = "book"
	CategoryBookSeries    Category = "book_series"
	CategoryReferenceBook Category = "reference_book"
	CategoryNewspaper     Category = "newspaper"
	CategoryMagazine      Category = "magazine"
	CategoryDigitalItem   Category = "digital_item"
	CategoryUnknown       Category = "unknown"
)

// Item is a catalog record.
type Item struct {
	ID                 string
	Title              string
	Category           Category
	ClassificationCode string
	CutterCode         string
	Genres             string
	TopicalTerms       string
	AuthorName         string
	Withdrawn          bool
}

// Interaction is one reader's engagement with an item.
type Interaction struct {
	ItemID       string
	Borrowed     bool
	BorrowCount  int
	Reserved     bool
	ReserveCount int
	Favorite     bool
	Rating       int
}

// Filter controls document assembly, diversification, and pagination.
// The zero value disables every toggle; use DefaultFilter for the usual
// everything-on configuration.
type Filter struct {
	IncludeTitle        bool
	IncludeAuthor       bool
	IncludeGenres       bool
	IncludeTopicalTerms bool
	LimitPerAuthor      bool
	Page                int
	PageSize            int
}

// DefaultFilter enables all content fields and the per-author cap, first
// page, default page size.
func DefaultFilter() Filter {
	return Filter{
		IncludeTitle:        true,
		IncludeAuthor:       true,
		IncludeGenres:       true,
		IncludeTopicalTerms: true,
		LimitPerAuthor:      true,
		Page:                1,
		PageSize:            filter.DefaultPageSize,
	}
}

// Page is one slice of a ranked item list.
type Page struct {
	Items        []Item
	Page         int
	PageSize     int
	TotalItems   int
	TotalPages   int
	Personalized bool
}

func itemToDomain(item Item) domain.CatalogItem {
	return domain.CatalogItem{
		ID:                 item.ID,
		Title:              item.Title,
		Category:           category.Parse(string(item.Category)),
		ClassificationCode: item.ClassificationCode,
		CutterCode:         item.CutterCode,
		Genres:             item.Genres,
		TopicalTerms:       item.TopicalTerms,
		AuthorName:         item.AuthorName,
		Withdrawn:          item.Withdrawn,
	}
}

func itemFromDomain(item domain.CatalogItem) Item {
	return Item{
		ID:                 item.ID,
		Title:              item.Title,
		Category:           Category(item.Category),
		ClassificationCode: item.ClassificationCode,
		CutterCode:         item.CutterCode,
		Genres:             item.Genres,
		TopicalTerms:       item.TopicalTerms,
		AuthorName:         item.AuthorName,
		Withdrawn:          item.Withdrawn,
	}
}

func interactionToDomain(in Interaction) domain.Interaction {
	return domain.Interaction{
		ItemID:       in.ItemID,
		Borrowed:     in.Borrowed,
		BorrowCount:  in.BorrowCount,
		Reserved:     in.Reserved,
		ReserveCount: in.ReserveCount,
		Favorite:     in.Favorite,
		Rating:       in.Rating,
	}
}

func filterToDomain(f Filter) filter.Filter {
	return filter.New(
		f.IncludeTitle, f.IncludeAuthor, f.IncludeGenres, f.IncludeTopicalTerms,
		f.LimitPerAuthor,
		f.Page, f.PageSize,
	)
}

func pageFromDomain(p page.Page) Page {
	items := make([]Item, len(p.Items()))
	for i, item := range p.Items() {
		items[i] = itemFromDomain(item)
	}
	return Page{
		Items:        items,
		Page:         p.PageIndex(),
		PageSize:     p.PageSize(),
		TotalItems:   p.TotalItems(),
		TotalPages:   p.TotalPages(),
		Personalized: p.Personalized(),
	}
}
