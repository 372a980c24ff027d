package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type PriceRange struct {
	Min float64
	Max float64
}

// FilterCriteria describes the derived catalog view: which products
// to retain and in which order. An empty Category means all.
type FilterCriteria struct {
	Category   string
	PriceRange PriceRange
	MinRating  float64
	SortBy     SortKey
	SortOrder  SortOrder
}

// DefaultFilter returns the reset criteria for a catalog: all
// categories, full price span, no rating threshold, name ascending.
func DefaultFilter(catalog []Product) FilterCriteria {
	var maxPrice float64
	for _, p := range catalog {
		maxPrice = max(maxPrice, p.Price)
	}
	return FilterCriteria{
		PriceRange: PriceRange{Min: 0, Max: maxPrice},
		SortBy:     SortByName,
		SortOrder:  SortAsc,
	}
}

// ApplyFilter derives the displayed subset and order from the catalog.
// It is a pure function: the input slice is never mutated and nothing
// is cached. Malformed criteria (min above max) simply yield an empty
// result, no validation happens here.
func ApplyFilter(catalog []Product, c FilterCriteria) []Product {
	kept := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if !matches(p, c) {
			continue
		}
		kept = append(kept, p)
	}

	sortProducts(kept, c.SortBy, c.SortOrder)
	return kept
}

func matches(p Product, c FilterCriteria) bool {
	if c.Category != "" && !strings.EqualFold(p.Category, c.Category) {
		return false
	}
	if p.Price < c.PriceRange.Min || p.Price > c.PriceRange.Max {
		return false
	}
	return p.Rating >= c.MinRating
}

func sortProducts(ps []Product, key SortKey, order SortOrder) {
	var cmp func(a, b Product) int
	switch key {
	case SortByName:
		// Locale-aware comparison, collator per call: collate.Collator
		// is not safe for concurrent use.
		cl := collate.New(language.English)
		cmp = func(a, b Product) int { return cl.CompareString(a.Name, b.Name) }
	case SortByPrice:
		cmp = func(a, b Product) int { return compareFloat(a.Price, b.Price) }
	case SortByRating:
		cmp = func(a, b Product) int { return compareFloat(a.Rating, b.Rating) }
	default:
		return
	}

	if order == SortDesc {
		inner := cmp
		cmp = func(a, b Product) int { return -inner(a, b) }
	}

	// Stable: ties keep prior relative order.
	slices.SortStableFunc(ps, cmp)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
