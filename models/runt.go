package models

import "time"

// RuntVehicle is the vehicle record returned by the RUNT registry lookup.
type RuntVehicle struct {
	Plate       string    `json:"plate"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	VehicleType string    `json:"vehicle_type"`
	ServiceType string    `json:"service_type"`
	CylinderCap int       `json:"cylinder_capacity"`
	SoatExpiry  string    `json:"soat_expiry,omitempty"`
	TecnoExpiry string    `json:"tecno_expiry,omitempty"`
	RetrievedAt time.Time `json:"retrieved_at"`
	Source      string    `json:"source"`
}
