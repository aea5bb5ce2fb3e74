// Package filter holds the request-scoped recommendation configuration.
package filter

// Pagination limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Filter controls which metadata fields feed the recommendation documents
// and how the final ranking is diversified and paginated.
type Filter struct {
	includeTitle        bool
	includeAuthor       bool
	includeGenres       bool
	includeTopicalTerms bool
	limitPerAuthor      bool
	page                int
	pageSize            int
}

// New normalizes and returns a Filter. A malformed page or page size is
// replaced with a sane default rather than rejected: page < 1 becomes 1,
// pageSize <= 0 becomes DefaultPageSize, pageSize > MaxPageSize is clamped.
func New(
	includeTitle, includeAuthor, includeGenres, includeTopicalTerms bool,
	limitPerAuthor bool,
	page, pageSize int,
) Filter {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Filter{
		includeTitle:        includeTitle,
		includeAuthor:       includeAuthor,
		includeGenres:       includeGenres,
		includeTopicalTerms: includeTopicalTerms,
		limitPerAuthor:      limitPerAuthor,
		page:                page,
		pageSize:            pageSize,
	}
}

// Default returns a Filter with every content field enabled, the per-author
// cap active, and first-page pagination defaults.
func Default() Filter {
	return New(true, true, true, true, true, 1, DefaultPageSize)
}

// IncludeTitle reports whether the cleaned title feeds the document.
func (f Filter) IncludeTitle() bool { return f.includeTitle }

// IncludeAuthor reports whether cutter code and author feed the document.
func (f Filter) IncludeAuthor() bool { return f.includeAuthor }

// IncludeGenres reports whether classification and genres feed the document.
func (f Filter) IncludeGenres() bool { return f.includeGenres }

// IncludeTopicalTerms reports whether topical terms feed the document.
func (f Filter) IncludeTopicalTerms() bool { return f.includeTopicalTerms }

// LimitPerAuthor reports whether the per-author result cap applies.
func (f Filter) LimitPerAuthor() bool { return f.limitPerAuthor }

// Page returns the 1-based requested page index.
func (f Filter) Page() int { return f.page }

// PageSize returns the normalized page size.
func (f Filter) PageSize() int { return f.pageSize }
