package models

import "time"

// UserContext is the profile inferred from a user's chat messages. All
// sections are optional; they fill in incrementally as messages arrive.
type UserContext struct {
	Location *LocationContext `json:"location,omitempty"`
	Auto     *AutoContext     `json:"auto,omitempty"`
	Travel   *TravelContext   `json:"travel,omitempty"`
	Pet      *PetContext      `json:"pet,omitempty"`
	Health   *HealthContext   `json:"health,omitempty"`
}

type LocationContext struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type AutoContext struct {
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        int    `json:"year,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	Plate       string `json:"plate,omitempty"`
}

type TravelContext struct {
	Destination string `json:"destination,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Travelers   int    `json:"travelers,omitempty"`
}

type PetContext struct {
	Type  string `json:"type,omitempty"`
	Breed string `json:"breed,omitempty"`
	Age   int    `json:"age,omitempty"`
}

type HealthContext struct {
	Age           int    `json:"age,omitempty"`
	FamilySize    int    `json:"family_size,omitempty"`
	PreExisting   bool   `json:"pre_existing,omitempty"`
	CoverageLevel string `json:"coverage_level,omitempty"`
}

// Clone returns a deep copy so extraction can merge without touching the input.
func (c UserContext) Clone() UserContext {
	out := UserContext{}
	if c.Location != nil {
		v := *c.Location
		out.Location = &v
	}
	if c.Auto != nil {
		v := *c.Auto
		out.Auto = &v
	}
	if c.Travel != nil {
		v := *c.Travel
		out.Travel = &v
	}
	if c.Pet != nil {
		v := *c.Pet
		out.Pet = &v
	}
	if c.Health != nil {
		v := *c.Health
		out.Health = &v
	}
	return out
}

// IsEmpty reports whether no section has been populated yet.
func (c UserContext) IsEmpty() bool {
	return c.Location == nil && c.Auto == nil && c.Travel == nil &&
		c.Pet == nil && c.Health == nil
}

// ChatMessageRequest is the body of POST /chat/message.
type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// ChatMessageResponse is the assistant's answer plus the updated context.
type ChatMessageResponse struct {
	SessionID      string          `json:"session_id"`
	Reply          string          `json:"reply"`
	Context        UserContext     `json:"context"`
	SuggestedPlans []InsurancePlan `json:"suggested_plans,omitempty"`
}

// StoredContext is a persisted chat context row.
type StoredContext struct {
	SessionID string      `json:"session_id"`
	Context   UserContext `json:"context"`
	UpdatedAt time.Time   `json:"updated_at"`
}
