package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrikiApp/briki-api/models"
)

func TestCalculateRecommendationScore(t *testing.T) {
	tests := []struct {
		name string
		plan models.InsurancePlan
		want float64
	}{
		{
			name: "rating plus value plus premium tag",
			plan: models.InsurancePlan{
				Rating:         "5",
				CoverageAmount: 100000,
				BasePrice:      100,
				Tags:           []string{"Premium"},
			},
			// 50 + (100000/100)/1000 + 10
			want: 61,
		},
		{
			name: "value ratio is capped at 30",
			plan: models.InsurancePlan{
				Rating:         "4",
				CoverageAmount: 4000000000,
				BasePrice:      100,
			},
			want: 70,
		},
		{
			name: "tag bonuses stack",
			plan: models.InsurancePlan{
				Rating: "3",
				Tags:   []string{"Más Popular", "Recomendado", "Premium"},
			},
			// price 0: value term skipped
			want: 30 + 15 + 15 + 10,
		},
		{
			name: "zero price skips the value term instead of dividing",
			plan: models.InsurancePlan{
				Rating:         "4.5",
				CoverageAmount: 100000,
				BasePrice:      0,
			},
			want: 45,
		},
		{
			name: "non-numeric rating counts as zero",
			plan: models.InsurancePlan{
				Rating:         "n/a",
				CoverageAmount: 1000,
				BasePrice:      100,
			},
			want: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateRecommendationScore(tt.plan), 1e-9)
		})
	}
}

func TestScoreMonotonicInRating(t *testing.T) {
	base := models.InsurancePlan{CoverageAmount: 50000, BasePrice: 100, Tags: []string{"Premium"}}

	low := base
	low.Rating = "3.0"
	high := base
	high.Rating = "4.5"

	assert.Greater(t, CalculateRecommendationScore(high), CalculateRecommendationScore(low))
}

func TestApplySort_PriceModes(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "x", BasePrice: 100, Rating: "4.0"},
		{ID: "y", BasePrice: 50, Rating: "4.5"},
		{ID: "z", BasePrice: 200, Rating: "3.0"},
	}

	assert.Equal(t, []string{"y", "x", "z"}, planIDs(ApplySort(plans, models.SortPriceLow)))
	assert.Equal(t, []string{"z", "x", "y"}, planIDs(ApplySort(plans, models.SortPriceHigh)))
}

func TestApplySort_Rating(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "x", Rating: "3.9"},
		{ID: "y", Rating: "4.7"},
		{ID: "z", Rating: "4.2"},
	}
	assert.Equal(t, []string{"y", "z", "x"}, planIDs(ApplySort(plans, models.SortRating)))
}

func TestApplySort_Coverage(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "x", CoverageAmount: 1000},
		{ID: "y", CoverageAmount: 3000},
		{ID: "z", CoverageAmount: 2000},
	}
	assert.Equal(t, []string{"y", "z", "x"}, planIDs(ApplySort(plans, models.SortCoverageHigh)))
	assert.Equal(t, []string{"x", "z", "y"}, planIDs(ApplySort(plans, models.SortCoverageLow)))
}

func TestApplySort_PopularFirst(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "x", Rating: "4.9"},
		{ID: "y", Rating: "4.8"},
		{ID: "z", Rating: "3.2", Tags: []string{"Most Popular"}},
	}

	got := planIDs(ApplySort(plans, models.SortPopular))

	// The tagged plan leads regardless of rating; the rest fall back to rating.
	assert.Equal(t, []string{"z", "x", "y"}, got)
}

func TestApplySort_Stability(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "first", BasePrice: 100},
		{ID: "second", BasePrice: 100},
		{ID: "third", BasePrice: 50},
	}

	got := planIDs(ApplySort(plans, models.SortPriceLow))

	assert.Equal(t, []string{"third", "first", "second"}, got)
}

func TestApplySort_IsPermutation(t *testing.T) {
	plans := testPlans()
	modes := []models.SortOption{
		models.SortRecommended, models.SortPriceLow, models.SortPriceHigh,
		models.SortRating, models.SortCoverageHigh, models.SortCoverageLow,
		models.SortPopular,
	}

	for _, mode := range modes {
		t.Run(string(mode), func(t *testing.T) {
			got := ApplySort(plans, mode)
			assert.Len(t, got, len(plans))
			assert.ElementsMatch(t, planIDs(plans), planIDs(got))
		})
	}
}

func TestApplySort_DoesNotMutateInput(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "x", BasePrice: 200},
		{ID: "y", BasePrice: 100},
	}

	_ = ApplySort(plans, models.SortPriceLow)

	assert.Equal(t, []string{"x", "y"}, planIDs(plans))
}

func TestApplySort_Empty(t *testing.T) {
	assert.Empty(t, ApplySort(nil, models.SortRecommended))
}

func TestGeneratePlanInsights(t *testing.T) {
	plans := []models.InsurancePlan{
		{ID: "best", Rating: "4.9", BasePrice: 120, CoverageAmount: 5000, Tags: []string{"Recomendado"}},
		{ID: "cheap", Rating: "3.0", BasePrice: 40, CoverageAmount: 1000},
		{ID: "wide", Rating: "3.5", BasePrice: 200, CoverageAmount: 90000},
	}

	insights := GeneratePlanInsights(plans)

	labels := map[string]string{}
	for _, in := range insights {
		labels[in.PlanID] = in.Label
	}
	assert.Equal(t, "Mejor opción", labels["best"])
	assert.Equal(t, "Mejor precio", labels["cheap"])
	assert.Equal(t, "Mayor cobertura", labels["wide"])
}

func TestGeneratePlanInsights_Empty(t *testing.T) {
	assert.Nil(t, GeneratePlanInsights(nil))
}
