package data

import "github.com/BrikiApp/briki-api/models"

// Static health catalog. Coverage is the annual medical expense ceiling.
var healthPlans = []models.InsurancePlan{
	{
		ID:             "health-sura-clasico",
		Category:       models.CategoryHealth,
		Provider:       "SURA",
		Name:           "Salud Clásico",
		BasePrice:      320000,
		CoverageAmount: 800000000,
		Rating:         "4.7",
		Features: []string{
			"Hospitalización y cirugía",
			"Medicina prepagada",
			"Red nacional de clínicas",
			"Telemedicina 24/7",
		},
		Tags:       []string{"Más Popular", "Recomendado"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "health-colsanitas-familiar",
		Category:       models.CategoryHealth,
		Provider:       "Colsanitas",
		Name:           "Plan Familiar",
		BasePrice:      540000,
		CoverageAmount: 1200000000,
		Rating:         "4.5",
		Features: []string{
			"Cobertura familiar hasta 4 personas",
			"Hospitalización y cirugía",
			"Maternidad",
			"Odontología preventiva",
		},
		Tags:       []string{"Premium"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "health-bolivar-esencial",
		Category:       models.CategoryHealth,
		Provider:       "Seguros Bolívar",
		Name:           "Salud Esencial",
		BasePrice:      185000,
		CoverageAmount: 300000000,
		Rating:         "4.2",
		Features: []string{
			"Hospitalización y cirugía",
			"Consulta externa",
			"Urgencias",
		},
		Tags:       []string{"Económico", "Recomendado"},
		Deductible: 250000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "health-axa-joven",
		Category:       models.CategoryHealth,
		Provider:       "AXA Colpatria",
		Name:           "Salud Joven",
		BasePrice:      145000,
		CoverageAmount: 200000000,
		Rating:         "4.0",
		Features: []string{
			"Hospitalización y cirugía",
			"Telemedicina 24/7",
		},
		Tags:       []string{"Económico"},
		Deductible: 300000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "health-allianz-global",
		Category:       models.CategoryHealth,
		Provider:       "Allianz",
		Name:           "Salud Global",
		BasePrice:      720000,
		CoverageAmount: 2000000000,
		Rating:         "4.6",
		Features: []string{
			"Cobertura internacional",
			"Hospitalización y cirugía",
			"Enfermedades de alto costo",
			"Segunda opinión médica internacional",
		},
		Tags:       []string{"Premium"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
}
