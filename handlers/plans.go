package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BrikiApp/briki-api/data"
	"github.com/BrikiApp/briki-api/models"
	"github.com/BrikiApp/briki-api/services"
)

type PlanHandler struct {
	Store *services.ContextStore
}

// GetPlans handles GET /plans/:category with optional sort and quick filters
// in the query string.
func (h *PlanHandler) GetPlans(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown plan category"})
		return
	}

	plans := data.Catalog(models.PlanCategory(category))

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plans = services.ApplyFilters(plans, criteria)

	sortMode := models.SortOption(c.DefaultQuery("sort", string(models.SortRecommended)))
	if !models.ValidSortOption(string(sortMode)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort option"})
		return
	}
	plans = services.ApplySort(plans, sortMode)

	c.JSON(http.StatusOK, gin.H{
		"plans": plans,
		"total": len(plans),
	})
}

// SearchPlans handles POST /plans/:category/search with full criteria in the
// body. Results include insight badges and the search is logged for the
// funnel dashboard.
func (h *PlanHandler) SearchPlans(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown plan category"})
		return
	}

	var req models.SearchPlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria := models.DefaultCriteria()
	if req.Criteria != nil {
		criteria = req.Criteria.Resolve()
	}

	sortMode := req.Sort
	if sortMode == "" {
		sortMode = models.SortRecommended
	}
	if !models.ValidSortOption(string(sortMode)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort option"})
		return
	}

	plans := data.Catalog(models.PlanCategory(category))
	plans = services.ApplyFilters(plans, criteria)
	plans = services.ApplySort(plans, sortMode)

	if h.Store != nil {
		sessionID := c.GetHeader("X-Session-ID")
		if err := h.Store.LogQuoteRequest(c.Request.Context(), sessionID,
			models.PlanCategory(category), criteria, sortMode, len(plans)); err != nil {
			log.Printf("⚠️ Failed to log quote request: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.SearchPlansResponse{
		Plans:    plans,
		Insights: services.GeneratePlanInsights(plans),
		Total:    len(plans),
	})
}

// GetFilterOptions handles GET /plans/:category/options for UI selectors.
func (h *PlanHandler) GetFilterOptions(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown plan category"})
		return
	}

	opts := services.ExtractFilterOptions(data.Catalog(models.PlanCategory(category)))
	c.JSON(http.StatusOK, opts)
}

// criteriaFromQuery builds criteria from quick-filter query params, leaving
// everything else at the match-all defaults.
func criteriaFromQuery(c *gin.Context) (models.FilterCriteria, error) {
	criteria := models.DefaultCriteria()

	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, err
		}
		criteria.PriceRange.Max = f
	}
	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, err
		}
		criteria.PriceRange.Min = f
	}
	if v := c.Query("min_coverage"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, err
		}
		criteria.CoverageRange.Min = f
	}
	if v := c.Query("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, err
		}
		criteria.Rating = f
	}
	if v := c.Query("max_deductible"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, err
		}
		criteria.DeductibleRange.Max = f
	}
	if v := c.Query("providers"); v != "" {
		criteria.Providers = strings.Split(v, ",")
	}
	if v := c.Query("features"); v != "" {
		criteria.Features = strings.Split(v, ",")
	}
	if v := c.Query("tags"); v != "" {
		criteria.Tags = strings.Split(v, ",")
	}

	return criteria, nil
}
