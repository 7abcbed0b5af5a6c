package model

import "time"

const (
	// RoleGuardian is the role assigned to every self-registered account.
	RoleGuardian = "guardian"
	// RoleAdmin is never granted through the API; only the seed tool sets it.
	RoleAdmin = "admin"
)

// Guardian is the authenticating principal and the owner of student records.
// Email comparison is exact-match: the column stores what the client sent and
// lookups never fold case.
type Guardian struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	PhoneNumber  string    `json:"phone_number" gorm:"size:32;not null"`
	Address      string    `json:"address" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:50;not null;default:'guardian'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Students []Student `json:"students,omitempty" gorm:"foreignKey:GuardianID"`
}
