package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientRecord is a vehicle title case imported from a partner service
// (SHiFT, Car Donation Wizard, You Call We Haul). The widget looks these up
// by contact info during the scripted flow.
type ClientRecord struct {
	Id           uuid.UUID
	Name         string
	Email        string
	Phone        string
	VehicleYear  string
	VehicleMake  string
	VehicleModel string
	State        string
	TitleStatus  string
	TitleRemedy  string
	Source       string // originating partner service
	Metadata     map[string]interface{}
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
