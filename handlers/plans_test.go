package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrikiApp/briki-api/models"
)

func newPlanRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &PlanHandler{}

	r := gin.New()
	r.GET("/plans/:category", h.GetPlans)
	r.POST("/plans/:category/search", h.SearchPlans)
	r.GET("/plans/:category/options", h.GetFilterOptions)
	return r
}

func TestGetPlans_UnknownCategory(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/boat", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlans_DefaultSortIsRecommended(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/travel", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plans []models.InsurancePlan `json:"plans"`
		Total int                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Plans)
	assert.Equal(t, resp.Total, len(resp.Plans))

	// The top recommended travel plan carries the popular+recommended tags.
	assert.Equal(t, "travel-assist-card-60", resp.Plans[0].ID)
}

func TestGetPlans_QuickFilters(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/travel?max_price=100000&sort=price-low", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plans []models.InsurancePlan `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, p := range resp.Plans {
		assert.LessOrEqual(t, p.BasePrice, float64(100000))
	}
}

func TestGetPlans_BadSortOption(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/auto?sort=alphabetical", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPlans(t *testing.T) {
	r := newPlanRouter()

	body, err := json.Marshal(models.SearchPlansRequest{
		Criteria: &models.SearchCriteria{
			Rating: 4.0,
		},
		Sort: models.SortPriceLow,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plans/auto/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchPlansResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Plans)
	assert.NotEmpty(t, resp.Insights)

	var prev float64
	for i, p := range resp.Plans {
		assert.GreaterOrEqual(t, p.ParsedRating(), 4.0)
		if i > 0 {
			assert.GreaterOrEqual(t, p.BasePrice, prev)
		}
		prev = p.BasePrice
	}
}

func TestSearchPlans_ExplicitZeroWidthRangeIsHonored(t *testing.T) {
	r := newPlanRouter()

	// Asking for free plans only must not be rewritten into match-all.
	body, err := json.Marshal(models.SearchPlansRequest{
		Criteria: &models.SearchCriteria{
			PriceRange: &models.Range{Min: 0, Max: 0},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plans/travel/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchPlansResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Plans)
	assert.Equal(t, 0, resp.Total)
}

func TestSearchPlans_AbsentRangesUseDefaults(t *testing.T) {
	r := newPlanRouter()

	body, err := json.Marshal(models.SearchPlansRequest{
		Criteria: &models.SearchCriteria{Providers: []string{"SURA"}},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plans/travel/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchPlansResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Plans)
	for _, p := range resp.Plans {
		assert.Equal(t, "SURA", p.Provider)
	}
}

func TestGetPlans_FeatureAndDeductibleQuickFilters(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/plans/travel?features=telemedicina&max_deductible=0", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plans []models.InsurancePlan `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Plans)
	for _, p := range resp.Plans {
		assert.Equal(t, float64(0), p.Deductible)
		found := false
		for _, f := range p.Features {
			if strings.Contains(strings.ToLower(f), "telemedicina") {
				found = true
			}
		}
		assert.True(t, found, "plan %s lacks the requested feature", p.ID)
	}
}

func TestSearchPlans_EmptyBodyCriteria(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plans/pet/search", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchPlansResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Plans)
}

func TestGetFilterOptions(t *testing.T) {
	r := newPlanRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plans/health/options", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var opts models.FilterOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Contains(t, opts.Providers, "SURA")
	assert.NotEmpty(t, opts.Features)
	assert.Greater(t, opts.Price.Max, opts.Price.Min)
}
