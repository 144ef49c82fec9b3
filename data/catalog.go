package data

import (
	"github.com/BrikiApp/briki-api/models"
)

// Catalog returns the static plan list for a category. The returned slice is
// a copy; callers may filter and reorder it freely.
func Catalog(category models.PlanCategory) []models.InsurancePlan {
	var src []models.InsurancePlan
	switch category {
	case models.CategoryTravel:
		src = travelPlans
	case models.CategoryAuto:
		src = autoPlans
	case models.CategoryPet:
		src = petPlans
	case models.CategoryHealth:
		src = healthPlans
	default:
		return nil
	}
	out := make([]models.InsurancePlan, len(src))
	copy(out, src)
	return out
}

// AllPlans returns every plan across the four categories.
func AllPlans() []models.InsurancePlan {
	out := make([]models.InsurancePlan, 0,
		len(travelPlans)+len(autoPlans)+len(petPlans)+len(healthPlans))
	out = append(out, travelPlans...)
	out = append(out, autoPlans...)
	out = append(out, petPlans...)
	out = append(out, healthPlans...)
	return out
}
