package model

import "time"

// Driver operates a bus. Drivers authenticate through the driver page's own
// session, not through the guardian token scheme.
type Driver struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:32;not null"`
	BusID     *uint     `json:"bus_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
