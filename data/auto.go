package data

import "github.com/BrikiApp/briki-api/models"

// Static auto catalog. Coverage is the total loss indemnity ceiling.
var autoPlans = []models.InsurancePlan{
	{
		ID:             "auto-sura-global",
		Category:       models.CategoryAuto,
		Provider:       "SURA",
		Name:           "Autos Global",
		BasePrice:      189000,
		CoverageAmount: 120000000,
		Rating:         "4.6",
		Features: []string{
			"Pérdida total y parcial",
			"Responsabilidad civil extracontractual",
			"Carro taller y grúa",
			"Conductor elegido",
			"Vehículo de reemplazo",
		},
		Tags:       []string{"Más Popular", "Recomendado"},
		Deductible: 900000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "auto-bolivar-plus",
		Category:       models.CategoryAuto,
		Provider:       "Seguros Bolívar",
		Name:           "Auto Plus",
		BasePrice:      165000,
		CoverageAmount: 100000000,
		Rating:         "4.4",
		Features: []string{
			"Pérdida total y parcial",
			"Responsabilidad civil extracontractual",
			"Grúa ilimitada",
			"Asistencia jurídica",
		},
		Tags:       []string{"Recomendado"},
		Deductible: 1000000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "auto-axa-esencial",
		Category:       models.CategoryAuto,
		Provider:       "AXA Colpatria",
		Name:           "Auto Esencial",
		BasePrice:      112000,
		CoverageAmount: 70000000,
		Rating:         "4.0",
		Features: []string{
			"Pérdida total",
			"Responsabilidad civil extracontractual",
			"Grúa hasta 50 km",
		},
		Tags:       []string{"Económico"},
		Deductible: 1500000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "auto-allianz-premium",
		Category:       models.CategoryAuto,
		Provider:       "Allianz",
		Name:           "Auto Premium",
		BasePrice:      235000,
		CoverageAmount: 180000000,
		Rating:         "4.5",
		Features: []string{
			"Pérdida total y parcial",
			"Todo riesgo sin deducible",
			"Vehículo de reemplazo ilimitado",
			"Asistencia en viaje internacional",
		},
		Tags:       []string{"Premium"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "auto-mapfre-liviano",
		Category:       models.CategoryAuto,
		Provider:       "Mapfre",
		Name:           "Liviano Protegido",
		BasePrice:      98000,
		CoverageAmount: 60000000,
		Rating:         "3.8",
		Features: []string{
			"Pérdida total",
			"Responsabilidad civil extracontractual",
		},
		Tags:       []string{"Económico"},
		Deductible: 1800000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "auto-liberty-moto",
		Category:       models.CategoryAuto,
		Provider:       "Liberty Seguros",
		Name:           "Moto Segura",
		BasePrice:      76000,
		CoverageAmount: 35000000,
		Rating:         "4.2",
		Features: []string{
			"Pérdida total y parcial para motos",
			"Responsabilidad civil extracontractual",
			"Accidentes personales del conductor",
		},
		Tags:       []string{},
		Deductible: 500000,
		Currency:   "COP",
		Country:    "CO",
	},
}
