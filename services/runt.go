package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BrikiApp/briki-api/models"
)

// ============================================================================
// RUNT VEHICLE LOOKUP
// Queries the Colombian vehicle registry by plate. RUNT_MODE=real hits the
// configured gateway; anything else serves deterministic mock records so the
// auto quote flow works without registry credentials.
// ============================================================================

// Colombian plate formats: AAA123 for cars, AAA12B for motorcycles.
var (
	carPlateRe  = regexp.MustCompile(`^[A-Z]{3}\d{3}$`)
	bikePlateRe = regexp.MustCompile(`^[A-Z]{3}\d{2}[A-Z]$`)
)

var (
	ErrInvalidPlate    = errors.New("invalid plate format")
	ErrVehicleNotFound = errors.New("vehicle not found in registry")
)

const runtCacheTTL = 24 * time.Hour

type RuntService struct {
	db         *sql.DB
	cache      *redis.Client
	baseURL    string
	apiKey     string
	realMode   bool
	httpClient *http.Client
}

func NewRuntService(db *sql.DB, cache *redis.Client) *RuntService {
	return &RuntService{
		db:         db,
		cache:      cache,
		baseURL:    os.Getenv("RUNT_BASE_URL"),
		apiKey:     os.Getenv("RUNT_API_KEY"),
		realMode:   os.Getenv("RUNT_MODE") == "real",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NormalizePlate uppercases and strips separators. Returns an error when the
// result matches neither plate format.
func NormalizePlate(plate string) (string, error) {
	p := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(plate))
	if !carPlateRe.MatchString(p) && !bikePlateRe.MatchString(p) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlate, plate)
	}
	return p, nil
}

// IsMotorcyclePlate reports whether a normalized plate uses the bike format.
func IsMotorcyclePlate(plate string) bool {
	return bikePlateRe.MatchString(plate)
}

// Lookup resolves a plate to a vehicle record, serving from Redis, then
// Postgres, then the registry (or the mock generator).
func (s *RuntService) Lookup(ctx context.Context, plate string) (*models.RuntVehicle, error) {
	normalized, err := NormalizePlate(plate)
	if err != nil {
		return nil, err
	}

	if v := s.fromCache(ctx, normalized); v != nil {
		return v, nil
	}
	if v := s.fromDB(ctx, normalized); v != nil {
		s.fillCache(ctx, v)
		return v, nil
	}

	var vehicle *models.RuntVehicle
	if s.realMode {
		vehicle, err = s.fetchReal(ctx, normalized)
		if err != nil {
			return nil, err
		}
	} else {
		vehicle = mockVehicle(normalized)
	}

	s.persist(ctx, vehicle)
	s.fillCache(ctx, vehicle)
	return vehicle, nil
}

func runtCacheKey(plate string) string {
	return "briki:runt:" + plate
}

func (s *RuntService) fromCache(ctx context.Context, plate string) *models.RuntVehicle {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, runtCacheKey(plate)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("⚠️ RUNT cache read failed: %v", err)
		}
		return nil
	}
	var v models.RuntVehicle
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func (s *RuntService) fillCache(ctx context.Context, v *models.RuntVehicle) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, runtCacheKey(v.Plate), raw, runtCacheTTL).Err(); err != nil {
		log.Printf("⚠️ RUNT cache write failed: %v", err)
	}
}

func (s *RuntService) fromDB(ctx context.Context, plate string) *models.RuntVehicle {
	if s.db == nil {
		return nil
	}
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM runt_lookups
		WHERE plate = $1 AND fetched_at > NOW() - INTERVAL '30 days'
	`, plate).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("⚠️ RUNT db read failed: %v", err)
		}
		return nil
	}
	var v models.RuntVehicle
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func (s *RuntService) persist(ctx context.Context, v *models.RuntVehicle) {
	if s.db == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runt_lookups (plate, payload, fetched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (plate) DO UPDATE SET payload = $2, fetched_at = NOW()
	`, v.Plate, raw)
	if err != nil {
		log.Printf("⚠️ RUNT db write failed: %v", err)
	}
}

func (s *RuntService) fetchReal(ctx context.Context, plate string) (*models.RuntVehicle, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("RUNT_BASE_URL not set")
	}

	url := fmt.Sprintf("%s/vehiculos/%s", strings.TrimRight(s.baseURL, "/"), plate)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build RUNT request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RUNT request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read RUNT response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, plate)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("RUNT returned status %d: %s", resp.StatusCode, string(body))
	}

	var v models.RuntVehicle
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to decode RUNT response: %w", err)
	}
	v.Plate = plate
	v.RetrievedAt = time.Now()
	v.Source = "runt"
	return &v, nil
}

// mockVehicle derives a stable fake record from the plate so repeated
// lookups in development agree with each other.
func mockVehicle(plate string) *models.RuntVehicle {
	brands := []string{"Chevrolet", "Renault", "Mazda", "Toyota", "Kia", "Nissan"}
	mockModels := []string{"Onix", "Logan", "CX-30", "Corolla", "Picanto", "Versa"}

	seed := 0
	for _, r := range plate {
		seed += int(r)
	}

	v := &models.RuntVehicle{
		Plate:       plate,
		Brand:       brands[seed%len(brands)],
		Model:       mockModels[seed%len(mockModels)],
		Year:        2015 + seed%10,
		VehicleType: "Automóvil",
		ServiceType: "Particular",
		CylinderCap: 1200 + (seed%8)*200,
		RetrievedAt: time.Now(),
		Source:      "mock",
	}
	if IsMotorcyclePlate(plate) {
		v.VehicleType = "Motocicleta"
		v.Brand = []string{"Yamaha", "Bajaj", "AKT", "Honda"}[seed%4]
		v.Model = []string{"FZ", "Pulsar", "NKD", "CB160"}[seed%4]
		v.CylinderCap = 125 + (seed%5)*35
	}
	return v
}
