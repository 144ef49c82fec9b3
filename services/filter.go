package services

import (
	"sort"
	"strings"

	"github.com/BrikiApp/briki-api/models"
)

// ApplyFilters returns the order-preserving subset of plans matching every
// clause of the criteria. Pure: the input slice is never modified.
func ApplyFilters(plans []models.InsurancePlan, criteria models.FilterCriteria) []models.InsurancePlan {
	out := make([]models.InsurancePlan, 0, len(plans))
	for _, plan := range plans {
		if matchesCriteria(plan, criteria) {
			out = append(out, plan)
		}
	}
	return out
}

func matchesCriteria(plan models.InsurancePlan, c models.FilterCriteria) bool {
	if !c.PriceRange.Contains(plan.BasePrice) {
		return false
	}
	if !c.CoverageRange.Contains(plan.CoverageAmount) {
		return false
	}
	// Deductible defaults to 0 when the catalog omits it, so the zero value
	// already lands inside any range starting at 0.
	if !c.DeductibleRange.Contains(plan.Deductible) {
		return false
	}
	if plan.ParsedRating() < c.Rating {
		return false
	}
	if len(c.Providers) > 0 && !containsExact(c.Providers, plan.Provider) {
		return false
	}
	if len(c.Features) > 0 && !matchesAllFuzzy(plan.Features, c.Features) {
		return false
	}
	if len(c.Tags) > 0 && !matchesAllFuzzy(plan.Tags, c.Tags) {
		return false
	}
	return true
}

func containsExact(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// matchesAllFuzzy requires every wanted entry to be a case-insensitive
// substring of at least one entry in have (AND across wanted, OR within).
func matchesAllFuzzy(have, wanted []string) bool {
	for _, w := range wanted {
		lw := strings.ToLower(w)
		found := false
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), lw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ExtractFilterOptions derives the universe of selectable filter values from
// a plan list, deduplicated and sorted, for populating UI selectors.
func ExtractFilterOptions(plans []models.InsurancePlan) models.FilterOptions {
	providers := map[string]bool{}
	features := map[string]bool{}
	tags := map[string]bool{}
	opts := models.FilterOptions{}

	for i, plan := range plans {
		providers[plan.Provider] = true
		for _, f := range plan.Features {
			features[f] = true
		}
		for _, t := range plan.Tags {
			tags[t] = true
		}
		if i == 0 {
			opts.Price = models.Range{Min: plan.BasePrice, Max: plan.BasePrice}
			opts.Coverage = models.Range{Min: plan.CoverageAmount, Max: plan.CoverageAmount}
			continue
		}
		if plan.BasePrice < opts.Price.Min {
			opts.Price.Min = plan.BasePrice
		}
		if plan.BasePrice > opts.Price.Max {
			opts.Price.Max = plan.BasePrice
		}
		if plan.CoverageAmount < opts.Coverage.Min {
			opts.Coverage.Min = plan.CoverageAmount
		}
		if plan.CoverageAmount > opts.Coverage.Max {
			opts.Coverage.Max = plan.CoverageAmount
		}
	}

	opts.Providers = sortedKeys(providers)
	opts.Features = sortedKeys(features)
	opts.Tags = sortedKeys(tags)
	return opts
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CountActiveFilters counts how many criteria deviate from the defaults, for
// the filter badge in the UI.
func CountActiveFilters(c models.FilterCriteria) int {
	def := models.DefaultCriteria()
	n := 0
	if c.PriceRange != def.PriceRange {
		n++
	}
	if c.CoverageRange != def.CoverageRange {
		n++
	}
	if c.DeductibleRange != def.DeductibleRange {
		n++
	}
	if c.Rating > 0 {
		n++
	}
	if len(c.Providers) > 0 {
		n++
	}
	if len(c.Features) > 0 {
		n++
	}
	if len(c.Tags) > 0 {
		n++
	}
	return n
}
