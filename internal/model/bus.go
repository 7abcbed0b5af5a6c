package model

import "time"

// BusStatusAvailable is the status a newly created bus starts with.
const BusStatusAvailable = "Available"

// Bus is a vehicle in the fleet. CurrentLatitude/CurrentLongitude mirror the
// most recent GPS fix; the full history lives in BusLocation.
type Bus struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Number           string    `json:"number" gorm:"size:32;not null;index"`
	Capacity         int       `json:"capacity" gorm:"not null;default:50"`
	Status           string    `json:"status" gorm:"size:64;not null;default:'Available'"`
	CurrentLatitude  float64   `json:"current_latitude"`
	CurrentLongitude float64   `json:"current_longitude"`
	DriverID         *uint     `json:"driver_id" gorm:"index"`
	AttendantID      *uint     `json:"attendant_id" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Driver    *Driver       `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Attendant *BusAttendant `json:"attendant,omitempty" gorm:"foreignKey:AttendantID"`
	Students  []Student     `json:"students,omitempty" gorm:"foreignKey:BusID"`
	Trips     []Trip        `json:"trips,omitempty" gorm:"foreignKey:BusID"`
}
