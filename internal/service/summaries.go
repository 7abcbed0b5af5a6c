package service

import (
	"time"

	"safarisalama/internal/model"
)

// StudentSummary is the student row shape returned by the API. GuardianName is
// only populated on admin listings.
type StudentSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Grade        string    `json:"grade"`
	GuardianName string    `json:"guardianName,omitempty"`
	BusNumber    string    `json:"busNumber"`
	Status       string    `json:"status"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

// TripSummary is the trip row shape returned by the API. EstimatedArrival and
// the coordinates are echoed as stored.
type TripSummary struct {
	ID               uint          `json:"id"`
	BusNumber        string        `json:"busNumber"`
	Status           string        `json:"status"`
	CurrentLocation  LocationPoint `json:"currentLocation"`
	EstimatedArrival time.Time     `json:"estimatedArrival"`
}

// LocationPoint is a bare coordinate pair.
type LocationPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GuardianSummary is the guardian row shape returned to admins.
type GuardianSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// BusSummary is the bus row shape returned to admins.
type BusSummary struct {
	ID         uint   `json:"id"`
	Number     string `json:"number"`
	Capacity   int    `json:"capacity"`
	DriverName string `json:"driverName"`
	Status     string `json:"status"`
}

func studentBusNumber(s model.Student) string {
	if s.Bus != nil {
		return s.Bus.Number
	}
	return "Unassigned"
}

func tripBusNumber(t model.Trip) string {
	if t.Bus != nil {
		return t.Bus.Number
	}
	return "Unknown"
}
