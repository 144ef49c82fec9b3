package data

import "github.com/BrikiApp/briki-api/models"

// Static travel catalog. Prices are monthly premiums in COP, coverage is the
// medical assistance ceiling.
var travelPlans = []models.InsurancePlan{
	{
		ID:             "travel-assist-card-60",
		Category:       models.CategoryTravel,
		Provider:       "Assist Card",
		Name:           "AC 60 Internacional",
		BasePrice:      185000,
		CoverageAmount: 240000000,
		Rating:         "4.7",
		Features: []string{
			"Asistencia médica internacional",
			"Cancelación de viaje",
			"Pérdida de equipaje",
			"Telemedicina 24/7",
		},
		Tags:       []string{"Más Popular", "Recomendado"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "travel-sura-mundial",
		Category:       models.CategoryTravel,
		Provider:       "SURA",
		Name:           "Viaje Mundial Plus",
		BasePrice:      210000,
		CoverageAmount: 320000000,
		Rating:         "4.5",
		Features: []string{
			"Asistencia médica internacional",
			"Deportes de aventura",
			"Cancelación de viaje",
			"Repatriación sanitaria",
		},
		Tags:       []string{"Premium"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "travel-axa-basico",
		Category:       models.CategoryTravel,
		Provider:       "AXA Colpatria",
		Name:           "Viajero Básico",
		BasePrice:      95000,
		CoverageAmount: 120000000,
		Rating:         "4.1",
		Features: []string{
			"Asistencia médica internacional",
			"Pérdida de equipaje",
		},
		Tags:       []string{"Económico"},
		Deductible: 150000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "travel-allianz-europa",
		Category:       models.CategoryTravel,
		Provider:       "Allianz",
		Name:           "Europa Schengen",
		BasePrice:      160000,
		CoverageAmount: 200000000,
		Rating:         "4.4",
		Features: []string{
			"Cobertura Schengen certificada",
			"Asistencia médica internacional",
			"Cancelación de viaje",
			"Pérdida de equipaje",
		},
		Tags:       []string{"Recomendado"},
		Deductible: 0,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "travel-mapfre-familiar",
		Category:       models.CategoryTravel,
		Provider:       "Mapfre",
		Name:           "Viaje Familiar",
		BasePrice:      240000,
		CoverageAmount: 260000000,
		Rating:         "4.2",
		Features: []string{
			"Cobertura familiar hasta 5 personas",
			"Asistencia médica internacional",
			"Telemedicina 24/7",
		},
		Tags:       []string{},
		Deductible: 100000,
		Currency:   "COP",
		Country:    "CO",
	},
	{
		ID:             "travel-hdi-mochilero",
		Category:       models.CategoryTravel,
		Provider:       "HDI Seguros",
		Name:           "Mochilero Anual",
		BasePrice:      130000,
		CoverageAmount: 90000000,
		Rating:         "3.9",
		Features: []string{
			"Múltiples viajes al año",
			"Asistencia médica internacional",
		},
		Tags:       []string{"Económico"},
		Deductible: 200000,
		Currency:   "COP",
		Country:    "CO",
	},
}
