package model

import "time"

// StudentStatusNotOnBus is the status every student starts with.
const StudentStatusNotOnBus = "Not on bus"

// Student is a child record owned by a guardian, optionally assigned to a bus.
type Student struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Grade      string    `json:"grade" gorm:"size:32;not null"`
	Status     string    `json:"status" gorm:"size:64;not null;default:'Not on bus'"`
	LastUpdate time.Time `json:"last_update"`
	GuardianID uint      `json:"guardian_id" gorm:"not null;index"`
	BusID      *uint     `json:"bus_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Guardian *Guardian `json:"-" gorm:"foreignKey:GuardianID"`
	Bus      *Bus      `json:"-" gorm:"foreignKey:BusID"`
}
