package model

import "time"

// BusLocation is one GPS fix in a bus's location history. Accuracy, speed and
// heading are optional because not every driver device reports them. FixID is
// a server-generated identifier returned in the ingest ack so a device can
// correlate its reports.
type BusLocation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FixID      string    `json:"fix_id" gorm:"size:36;not null;uniqueIndex"`
	BusID      uint      `json:"bus_id" gorm:"not null;index"`
	Latitude   float64   `json:"latitude" gorm:"not null"`
	Longitude  float64   `json:"longitude" gorm:"not null"`
	Accuracy   *float64  `json:"accuracy"`
	Speed      *float64  `json:"speed"`
	Heading    *float64  `json:"heading"`
	RecordedAt time.Time `json:"recorded_at" gorm:"index"`

	// Relations
	Bus *Bus `json:"-" gorm:"foreignKey:BusID"`
}
