package data

import "github.com/BrikiApp/briki-api/models"

// Static pet catalog. Coverage is the annual veterinary expense ceiling.
var petPlans = []models.InsurancePlan{
	{
		ID:             "pet-sura-integral",
		Category:       models.CategoryPet,
		Provider:       "SURA",
		Name:           "Mascotas Integral",
		BasePrice:      52000,
		CoverageAmount: 18000000,
		Rating:         "4.6",
		Features: []string{
			"Consultas veterinarias ilimitadas",
			"Cirugías y hospitalización",
			"Vacunación anual",
			"Responsabilidad civil por daños a terceros",
		},
		Tags:       []string{"Más Popular", "Recomendado"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "pet-bolivar-guau",
		Category:       models.CategoryPet,
		Provider:       "Seguros Bolívar",
		Name:           "Plan Guau",
		BasePrice:      38000,
		CoverageAmount: 10000000,
		Rating:         "4.3",
		Features: []string{
			"Consultas veterinarias",
			"Urgencias 24 horas",
			"Guardería por hospitalización del dueño",
		},
		Tags:       []string{"Recomendado"},
		Deductible: 80000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "pet-mapfre-basico",
		Category:       models.CategoryPet,
		Provider:       "Mapfre",
		Name:           "Mascota Básico",
		BasePrice:      24000,
		CoverageAmount: 5000000,
		Rating:         "3.9",
		Features: []string{
			"Urgencias veterinarias",
			"Vacunación anual",
		},
		Tags:       []string{"Económico"},
		Deductible: 120000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "pet-liberty-premium",
		Category:       models.CategoryPet,
		Provider:       "Liberty Seguros",
		Name:           "Mascota Premium",
		BasePrice:      68000,
		CoverageAmount: 25000000,
		Rating:         "4.4",
		Features: []string{
			"Consultas veterinarias ilimitadas",
			"Cirugías y hospitalización",
			"Tratamientos de enfermedades crónicas",
			"Eutanasia y cremación",
		},
		Tags:       []string{"Premium"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "pet-hdi-gatos",
		Category:       models.CategoryPet,
		Provider:       "HDI Seguros",
		Name:           "Plan Miau",
		BasePrice:      29000,
		CoverageAmount: 7000000,
		Rating:         "4.1",
		Features: []string{
			"Consultas veterinarias para gatos",
			"Urgencias 24 horas",
		},
		Tags:       []string{"Económico"},
		Deductible: 90000,
		Currency:   "COP",
		Country:    "CO",
	},
}
