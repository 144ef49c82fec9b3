package models

import (
	"strconv"
)

// PlanCategory identifies one of the four insurance verticals.
type PlanCategory string

const (
	CategoryTravel PlanCategory = "travel"
	CategoryAuto   PlanCategory = "auto"
	CategoryPet    PlanCategory = "pet"
	CategoryHealth PlanCategory = "health"
)

// ValidCategory reports whether s names a known plan category.
func ValidCategory(s string) bool {
	switch PlanCategory(s) {
	case CategoryTravel, CategoryAuto, CategoryPet, CategoryHealth:
		return true
	}
	return false
}

// InsurancePlan is a single product offering from the static catalog.
// Rating may arrive as a numeric string in raw catalog data; use ParsedRating.
type InsurancePlan struct {
	ID             string       `json:"id"`
	Category       PlanCategory `json:"category"`
	Provider       string       `json:"provider"`
	Name           string       `json:"name"`
	BasePrice      float64      `json:"basePrice"`
	CoverageAmount float64      `json:"coverageAmount"`
	Rating         string       `json:"rating"`
	Features       []string     `json:"features"`
	Tags           []string     `json:"tags,omitempty"`
	Deductible     float64      `json:"deductible,omitempty"`
	Currency       string       `json:"currency,omitempty"`
	Country        string       `json:"country,omitempty"`
}

// ParsedRating returns the rating as a float, or 0 when it is not numeric.
func (p InsurancePlan) ParsedRating() float64 {
	r, err := strconv.ParseFloat(p.Rating, 64)
	if err != nil {
		return 0
	}
	return r
}

// Range is a closed numeric interval, inclusive at both ends.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterCriteria narrows a plan list. Zero value (with ranges spanning
// everything) matches all plans; DefaultCriteria builds that.
type FilterCriteria struct {
	PriceRange      Range    `json:"priceRange"`
	CoverageRange   Range    `json:"coverageRange"`
	DeductibleRange Range    `json:"deductibleRange"`
	Rating          float64  `json:"rating"`
	Providers       []string `json:"providers,omitempty"`
	Features        []string `json:"features,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// Upper bounds for the default (match-everything) criteria ranges.
const (
	MaxPrice      = 10_000_000
	MaxCoverage   = 10_000_000_000
	MaxDeductible = 100_000_000
)

// DefaultCriteria returns criteria that exclude nothing.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		PriceRange:      Range{Min: 0, Max: MaxPrice},
		CoverageRange:   Range{Min: 0, Max: MaxCoverage},
		DeductibleRange: Range{Min: 0, Max: MaxDeductible},
	}
}

// SortOption selects the ordering applied to a plan list.
type SortOption string

const (
	SortRecommended  SortOption = "recommended"
	SortPriceLow     SortOption = "price-low"
	SortPriceHigh    SortOption = "price-high"
	SortRating       SortOption = "rating"
	SortCoverageHigh SortOption = "coverage-high"
	SortCoverageLow  SortOption = "coverage-low"
	SortPopular      SortOption = "popular"
)

// ValidSortOption reports whether s names a known sort mode.
func ValidSortOption(s string) bool {
	switch SortOption(s) {
	case SortRecommended, SortPriceLow, SortPriceHigh, SortRating,
		SortCoverageHigh, SortCoverageLow, SortPopular:
		return true
	}
	return false
}

// FilterOptions is the universe of selectable filter values for a plan set,
// used to populate UI selectors.
type FilterOptions struct {
	Providers []string `json:"providers"`
	Features  []string `json:"features"`
	Tags      []string `json:"tags"`
	Price     Range    `json:"priceRange"`
	Coverage  Range    `json:"coverageRange"`
}

// PlanInsight is a short UI badge attached to a plan in search results.
type PlanInsight struct {
	PlanID string `json:"plan_id"`
	Label  string `json:"label"`
}

// SearchCriteria is the wire form of FilterCriteria: ranges are pointers so
// an absent range (use defaults) is distinguishable from an explicit
// zero-width one like {min:0,max:0}.
type SearchCriteria struct {
	PriceRange      *Range   `json:"priceRange,omitempty"`
	CoverageRange   *Range   `json:"coverageRange,omitempty"`
	DeductibleRange *Range   `json:"deductibleRange,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	Providers       []string `json:"providers,omitempty"`
	Features        []string `json:"features,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// Resolve fills absent ranges with the match-all defaults.
func (c SearchCriteria) Resolve() FilterCriteria {
	out := DefaultCriteria()
	if c.PriceRange != nil {
		out.PriceRange = *c.PriceRange
	}
	if c.CoverageRange != nil {
		out.CoverageRange = *c.CoverageRange
	}
	if c.DeductibleRange != nil {
		out.DeductibleRange = *c.DeductibleRange
	}
	out.Rating = c.Rating
	out.Providers = c.Providers
	out.Features = c.Features
	out.Tags = c.Tags
	return out
}

// SearchPlansRequest is the body of POST /plans/:category/search.
type SearchPlansRequest struct {
	Criteria *SearchCriteria `json:"criteria"`
	Sort     SortOption      `json:"sort"`
}

// SearchPlansResponse carries the ranked plans plus insight badges.
type SearchPlansResponse struct {
	Plans    []InsurancePlan `json:"plans"`
	Insights []PlanInsight   `json:"insights"`
	Total    int             `json:"total"`
}
