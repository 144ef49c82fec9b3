package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BrikiApp/briki-api/models"
)

// Recommendation score weights. These are tunable business rules, not derived
// values: rating dominates on a 0-50 scale, value-for-money adds up to 30,
// marketing tags add a bounded bonus.
const (
	ratingWeight      = 10
	valueRatioDivisor = 1000
	valueRatioCap     = 30
	popularTagBonus   = 15
	recomendadoBonus  = 15
	premiumTagBonus   = 10
)

// CalculateRecommendationScore computes the composite ranking score used by
// the "recommended" sort. Plans with a non-positive price skip the
// value-for-money term instead of dividing by zero.
func CalculateRecommendationScore(plan models.InsurancePlan) float64 {
	score := plan.ParsedRating() * ratingWeight

	if plan.BasePrice > 0 {
		ratio := plan.CoverageAmount / plan.BasePrice / valueRatioDivisor
		if ratio > valueRatioCap {
			ratio = valueRatioCap
		}
		score += ratio
	}

	if hasTagContaining(plan, "popular") {
		score += popularTagBonus
	}
	if hasTagContaining(plan, "recomendado") {
		score += recomendadoBonus
	}
	if hasTagContaining(plan, "premium") {
		score += premiumTagBonus
	}
	return score
}

func hasTagContaining(plan models.InsurancePlan, substr string) bool {
	for _, t := range plan.Tags {
		if strings.Contains(strings.ToLower(t), substr) {
			return true
		}
	}
	return false
}

// ApplySort returns a new slice with the plans reordered for the given mode.
// The sort is stable: plans that compare equal keep their input order.
func ApplySort(plans []models.InsurancePlan, mode models.SortOption) []models.InsurancePlan {
	out := make([]models.InsurancePlan, len(plans))
	copy(out, plans)

	switch mode {
	case models.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice < out[j].BasePrice
		})
	case models.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice > out[j].BasePrice
		})
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ParsedRating() > out[j].ParsedRating()
		})
	case models.SortCoverageHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CoverageAmount > out[j].CoverageAmount
		})
	case models.SortCoverageLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CoverageAmount < out[j].CoverageAmount
		})
	case models.SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			pi, pj := hasTagContaining(out[i], "popular"), hasTagContaining(out[j], "popular")
			if pi != pj {
				return pi
			}
			return out[i].ParsedRating() > out[j].ParsedRating()
		})
	default: // recommended
		sort.SliceStable(out, func(i, j int) bool {
			return CalculateRecommendationScore(out[i]) > CalculateRecommendationScore(out[j])
		})
	}
	return out
}

// GeneratePlanInsights attaches UI badge labels to plans in a ranked result:
// best overall score, cheapest, highest coverage.
func GeneratePlanInsights(plans []models.InsurancePlan) []models.PlanInsight {
	if len(plans) == 0 {
		return nil
	}

	best, cheapest, widest := plans[0], plans[0], plans[0]
	bestScore := CalculateRecommendationScore(plans[0])
	for _, p := range plans[1:] {
		if s := CalculateRecommendationScore(p); s > bestScore {
			best, bestScore = p, s
		}
		if p.BasePrice < cheapest.BasePrice {
			cheapest = p
		}
		if p.CoverageAmount > widest.CoverageAmount {
			widest = p
		}
	}

	insights := []models.PlanInsight{
		{PlanID: best.ID, Label: "Mejor opción"},
	}
	if cheapest.ID != best.ID {
		insights = append(insights, models.PlanInsight{PlanID: cheapest.ID, Label: "Mejor precio"})
	}
	if widest.ID != best.ID && widest.ID != cheapest.ID {
		insights = append(insights, models.PlanInsight{PlanID: widest.ID, Label: "Mayor cobertura"})
	}
	for _, p := range plans {
		if p.BasePrice > 0 && CalculateRecommendationScore(p) >= bestScore-5 && p.BasePrice < best.BasePrice {
			insights = append(insights, models.PlanInsight{
				PlanID: p.ID,
				Label:  fmt.Sprintf("Similar a %s por menos", best.Name),
			})
			break
		}
	}
	return insights
}
