package catalog

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GenreAll disables the genre filter.
const GenreAll = "all"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortTitle     SortKey = "title"
)

// Criteria holds the attribute filters and sort key for a browse request.
// Price bounds are inclusive.
type Criteria struct {
	Genre     string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Sort      SortKey
}

// DefaultCriteria matches everything and preserves catalog order.
func DefaultCriteria() Criteria {
	return Criteria{
		Genre:    GenreAll,
		MaxPrice: math.MaxFloat64,
		Sort:     SortFeatured,
	}
}

// Apply runs the filter/sort pipeline: free-text match first, then attribute
// filters, then a stable sort. The input slice is not modified. Deterministic
// for a given input tuple.
func Apply(books []Book, query string, c Criteria) []Book {
	out := make([]Book, 0, len(books))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, b := range books {
		if !matchesQuery(b, q) {
			continue
		}
		if c.Genre != "" && c.Genre != GenreAll && b.Genre != c.Genre {
			continue
		}
		if b.Price < c.MinPrice || b.Price > c.MaxPrice {
			continue
		}
		if b.Rating < c.MinRating {
			continue
		}
		out = append(out, b)
	}

	sortBooks(out, c.Sort)
	return out
}

func matchesQuery(b Book, q string) bool {
	if q == "" {
		return true
	}
	for _, field := range []string{b.Title, b.Author, b.Genre, b.ISBN, b.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func sortBooks(books []Book, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price < books[j].Price })
	case SortPriceDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price > books[j].Price })
	case SortRating:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Rating > books[j].Rating })
	case SortTitle:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(books, func(i, j int) bool {
			return cl.CompareString(books[i].Title, books[j].Title) < 0
		})
	default:
		// featured: preserve catalog order
	}
}
