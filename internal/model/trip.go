package model

import "time"

const (
	// TripStatusScheduled is the initial trip status.
	TripStatusScheduled = "Scheduled"
	// TripStatusInProgress marks a trip currently on the road.
	TripStatusInProgress = "In Progress"
	// TripStatusCompleted marks a finished trip; location ingest skips these.
	TripStatusCompleted = "Completed"
)

// Trip is one run of a bus. EstimatedArrival and the current coordinates are
// stored and read back verbatim; nothing here is computed.
type Trip struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	BusID              uint      `json:"bus_id" gorm:"not null;index"`
	Status             string    `json:"status" gorm:"size:64;not null;default:'Scheduled'"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	EstimatedArrival   time.Time `json:"estimated_arrival"`
	CurrentLatitude    float64   `json:"current_latitude"`
	CurrentLongitude   float64   `json:"current_longitude"`
	LastLocationUpdate time.Time `json:"last_location_update"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Bus *Bus `json:"-" gorm:"foreignKey:BusID"`
}
