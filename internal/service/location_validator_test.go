package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "safarisalama/internal/errors"
)

func floatPtr(v float64) *float64 { return &v }

func TestLocationValidator_Validate(t *testing.T) {
	validator := NewLocationValidator()

	tests := []struct {
		name    string
		update  LocationUpdate
		wantErr bool
	}{
		{"nairobi fix", LocationUpdate{BusID: 1, Latitude: -1.2921, Longitude: 36.8219}, false},
		{"equator origin is a valid coordinate", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 0}, false},
		{"full telemetry", LocationUpdate{BusID: 1, Latitude: -1.29, Longitude: 36.82, Accuracy: floatPtr(5), Speed: floatPtr(45.5), Heading: floatPtr(180)}, false},
		{"latitude above range", LocationUpdate{BusID: 1, Latitude: 91, Longitude: 0}, true},
		{"latitude below range", LocationUpdate{BusID: 1, Latitude: -91, Longitude: 0}, true},
		{"longitude above range", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 181}, true},
		{"longitude below range", LocationUpdate{BusID: 1, Latitude: 0, Longitude: -181}, true},
		{"negative accuracy", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 0, Accuracy: floatPtr(-1)}, true},
		{"negative speed", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 0, Speed: floatPtr(-5)}, true},
		{"implausible speed", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 0, Speed: floatPtr(250)}, true},
		{"heading at wraparound", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 0, Heading: floatPtr(360)}, true},
		{"heading north", LocationUpdate{BusID: 1, Latitude: 0, Longitude: 0, Heading: floatPtr(0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.update)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
