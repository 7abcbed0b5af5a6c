package model

import "time"

// Schedule is a planned stop for a bus.
type Schedule struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BusID       uint      `json:"bus_id" gorm:"not null;index"`
	PickupTime  time.Time `json:"pickup_time"`
	DropoffTime time.Time `json:"dropoff_time"`
	StopName    string    `json:"stop_name" gorm:"size:255"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Bus *Bus `json:"-" gorm:"foreignKey:BusID"`
}
