package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/BrikiApp/briki-api/models"
)

// ============================================================================
// CONTEXT EXTRACTION
// Scans free-text chat messages (Spanish-first) and fills in the user profile
// used to pre-select categories and pre-fill quote forms. Pure merge: the
// caller owns persistence.
// ============================================================================

type keywordEntry struct {
	keyword string
	value   string
}

// Ordered tables: later entries overwrite earlier ones when both match, so
// the more specific keywords go last.
var vehicleBrands = []keywordEntry{
	{"chevrolet", "Chevrolet"},
	{"renault", "Renault"},
	{"mazda", "Mazda"},
	{"toyota", "Toyota"},
	{"nissan", "Nissan"},
	{"kia", "Kia"},
	{"hyundai", "Hyundai"},
	{"suzuki", "Suzuki"},
	{"ford", "Ford"},
	{"volkswagen", "Volkswagen"},
	{"bmw", "BMW"},
	{"mercedes", "Mercedes-Benz"},
	{"yamaha", "Yamaha"},
	{"bajaj", "Bajaj"},
	{"akt", "AKT"},
}

var vehicleTypes = []keywordEntry{
	{"carro", "car"},
	{"automovil", "car"},
	{"automóvil", "car"},
	{"sedan", "car"},
	{"sedán", "car"},
	{"hatchback", "car"},
	{"camioneta", "suv"},
	{"suv", "suv"},
	{"pickup", "pickup"},
	{"moto", "motorcycle"},
	{"motocicleta", "motorcycle"},
}

var petSpecies = []keywordEntry{
	{"perro", "dog"},
	{"perrito", "dog"},
	{"cachorro", "dog"},
	{"dog", "dog"},
	{"gato", "cat"},
	{"gatito", "cat"},
	{"cat", "cat"},
}

// Breeds imply the species, so a breed match also sets the pet type.
type breedEntry struct {
	keyword string
	breed   string
	species string
}

var petBreeds = []breedEntry{
	{"golden", "Golden Retriever", "dog"},
	{"labrador", "Labrador", "dog"},
	{"bulldog", "Bulldog", "dog"},
	{"pastor aleman", "Pastor Alemán", "dog"},
	{"pastor alemán", "Pastor Alemán", "dog"},
	{"poodle", "Poodle", "dog"},
	{"french", "Bulldog Francés", "dog"},
	{"criollo", "Criollo", "dog"},
	{"siames", "Siamés", "cat"},
	{"siamés", "Siamés", "cat"},
	{"persa", "Persa", "cat"},
	{"angora", "Angora", "cat"},
}

var travelDestinations = []keywordEntry{
	{"europa", "Europa"},
	{"estados unidos", "Estados Unidos"},
	{"eeuu", "Estados Unidos"},
	{"usa", "Estados Unidos"},
	{"miami", "Estados Unidos"},
	{"españa", "España"},
	{"espana", "España"},
	{"mexico", "México"},
	{"méxico", "México"},
	{"argentina", "Argentina"},
	{"brasil", "Brasil"},
	{"peru", "Perú"},
	{"perú", "Perú"},
	{"canada", "Canadá"},
	{"canadá", "Canadá"},
	{"asia", "Asia"},
	{"japon", "Japón"},
	{"japón", "Japón"},
	{"caribe", "Caribe"},
}

var colombianCities = []keywordEntry{
	{"bogota", "Bogotá"},
	{"bogotá", "Bogotá"},
	{"medellin", "Medellín"},
	{"medellín", "Medellín"},
	{"cali", "Cali"},
	{"barranquilla", "Barranquilla"},
	{"cartagena", "Cartagena"},
	{"bucaramanga", "Bucaramanga"},
	{"pereira", "Pereira"},
	{"manizales", "Manizales"},
	{"santa marta", "Santa Marta"},
}

var (
	vehicleYearRe  = regexp.MustCompile(`\b(19[89]\d|20[0-3]\d)\b`)
	platePattern   = regexp.MustCompile(`\b([a-z]{3}[ -]?\d{3}|[a-z]{3}[ -]?\d{2}[a-z])\b`)
	tripDurationRe = regexp.MustCompile(`(\d+)\s*(d[ií]as?|semanas?|mes(?:es)?)`)
	travelersRe    = regexp.MustCompile(`(\d+)\s*(personas?|viajeros?|adultos?|pasajeros?)`)
	personAgeRe    = regexp.MustCompile(`tengo\s+(\d{1,3})\s+años`)
	petAgeRe       = regexp.MustCompile(`(?:de|tiene)\s+(\d{1,2})\s+años`)
	familySizeRe   = regexp.MustCompile(`familia\s+de\s+(\d{1,2})`)
)

// ExtractContext scans a raw chat message and returns a copy of the current
// context with every discovered fact merged in. Checks are independent, so a
// single message can update several sections; within a section the last match
// in table order wins.
func ExtractContext(message string, current models.UserContext) models.UserContext {
	msg := strings.ToLower(message)
	ctx := current.Clone()

	extractAuto(msg, &ctx)
	extractPet(msg, &ctx)
	extractTravel(msg, &ctx)
	extractLocation(msg, &ctx)
	extractHealth(msg, &ctx)

	return ctx
}

func extractAuto(msg string, ctx *models.UserContext) {
	ensure := func() *models.AutoContext {
		if ctx.Auto == nil {
			ctx.Auto = &models.AutoContext{}
		}
		return ctx.Auto
	}

	vehicleSignal := false
	for _, e := range vehicleBrands {
		if strings.Contains(msg, e.keyword) {
			ensure().Brand = e.value
			vehicleSignal = true
		}
	}
	for _, e := range vehicleTypes {
		if strings.Contains(msg, e.keyword) {
			ensure().VehicleType = e.value
			vehicleSignal = true
		}
	}
	if strings.Contains(msg, "placa") {
		vehicleSignal = true
	}

	// A year only reads as a model year next to another vehicle signal in
	// the same message; "viajo en 2026" must not touch a stored auto
	// section from an earlier message.
	if !vehicleSignal {
		return
	}
	if m := vehicleYearRe.FindString(msg); m != "" {
		year, _ := strconv.Atoi(m)
		ensure().Year = year
	}
	if m := platePattern.FindString(msg); m != "" {
		plate := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(m))
		ensure().Plate = plate
	}
}

func extractPet(msg string, ctx *models.UserContext) {
	ensure := func() *models.PetContext {
		if ctx.Pet == nil {
			ctx.Pet = &models.PetContext{}
		}
		return ctx.Pet
	}

	for _, e := range petSpecies {
		if strings.Contains(msg, e.keyword) {
			ensure().Type = e.value
		}
	}
	for _, e := range petBreeds {
		if strings.Contains(msg, e.keyword) {
			p := ensure()
			p.Breed = e.breed
			p.Type = e.species
		}
	}
	if ctx.Pet != nil {
		if m := petAgeRe.FindStringSubmatch(msg); m != nil {
			age, _ := strconv.Atoi(m[1])
			ctx.Pet.Age = age
		}
	}
}

func extractTravel(msg string, ctx *models.UserContext) {
	ensure := func() *models.TravelContext {
		if ctx.Travel == nil {
			ctx.Travel = &models.TravelContext{}
		}
		return ctx.Travel
	}

	for _, e := range travelDestinations {
		if strings.Contains(msg, e.keyword) {
			ensure().Destination = e.value
		}
	}
	if m := tripDurationRe.FindStringSubmatch(msg); m != nil {
		ensure().Duration = m[1] + " " + m[2]
	}
	// A bare "4 personas" is ambiguous; only read it as a traveler count
	// when the conversation already has a trip in it.
	if ctx.Travel != nil {
		if m := travelersRe.FindStringSubmatch(msg); m != nil {
			n, _ := strconv.Atoi(m[1])
			ctx.Travel.Travelers = n
		}
	}
}

func extractLocation(msg string, ctx *models.UserContext) {
	for _, e := range colombianCities {
		if strings.Contains(msg, e.keyword) {
			if ctx.Location == nil {
				ctx.Location = &models.LocationContext{}
			}
			ctx.Location.City = e.value
			ctx.Location.Country = "Colombia"
		}
	}
}

func extractHealth(msg string, ctx *models.UserContext) {
	ensure := func() *models.HealthContext {
		if ctx.Health == nil {
			ctx.Health = &models.HealthContext{}
		}
		return ctx.Health
	}

	if m := personAgeRe.FindStringSubmatch(msg); m != nil {
		age, _ := strconv.Atoi(m[1])
		ensure().Age = age
	}
	if m := familySizeRe.FindStringSubmatch(msg); m != nil {
		n, _ := strconv.Atoi(m[1])
		ensure().FamilySize = n
	}
}

// ============================================================================
// INTENT PREDICATES
// ============================================================================

var greetings = []string{
	"hola",
	"buenas",
	"buenos dias",
	"buenos días",
	"buenas tardes",
	"buenas noches",
	"hey",
	"hi",
	"hello",
	"que tal",
	"qué tal",
}

// Longer messages carry real content even when they open with a greeting.
const maxGreetingLen = 25

// IsGenericGreeting reports whether the message is just a salutation with no
// actionable content.
func IsGenericGreeting(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	msg = strings.Trim(msg, "!¡?¿.,:; ")
	if msg == "" || len([]rune(msg)) > maxGreetingLen {
		return false
	}
	for _, g := range greetings {
		if msg == g || strings.HasPrefix(msg, g+" ") || strings.HasPrefix(msg, g+",") {
			return true
		}
	}
	return false
}

var insuranceVocabulary = []string{
	"seguro",
	"aseguranza",
	"poliza",
	"póliza",
	"asegurar",
	"cobertura",
	"cotizar",
	"cotizacion",
	"cotización",
	"deducible",
	"prima",
	"soat",
	"insurance",
}

// HasInsuranceIntent reports whether the message mentions insurance at all.
func HasInsuranceIntent(message string) bool {
	msg := strings.ToLower(message)
	for _, kw := range insuranceVocabulary {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// SuggestedCategory picks the plan category implied by the context, if any.
// Travel wins over auto when both are present: a trip is the more immediate
// purchase.
func SuggestedCategory(ctx models.UserContext) (models.PlanCategory, bool) {
	switch {
	case ctx.Travel != nil:
		return models.CategoryTravel, true
	case ctx.Auto != nil:
		return models.CategoryAuto, true
	case ctx.Pet != nil:
		return models.CategoryPet, true
	case ctx.Health != nil:
		return models.CategoryHealth, true
	}
	return "", false
}
