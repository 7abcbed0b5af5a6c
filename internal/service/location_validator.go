package service

import (
	apperrors "safarisalama/internal/errors"
)

// maxSpeedKmh caps plausible school-bus speeds; anything above is treated as a
// bad fix rather than stored.
const maxSpeedKmh = 200.0

// LocationValidator checks reported GPS fixes for plausibility before they
// touch the history or the live position.
type LocationValidator struct{}

// NewLocationValidator creates a new location validator.
func NewLocationValidator() *LocationValidator {
	return &LocationValidator{}
}

// Validate checks coordinate ranges and the optional telemetry fields.
func (v *LocationValidator) Validate(update LocationUpdate) error {
	if update.Latitude < -90 || update.Latitude > 90 {
		return apperrors.ErrInvalidLocation
	}
	if update.Longitude < -180 || update.Longitude > 180 {
		return apperrors.ErrInvalidLocation
	}
	if update.Accuracy != nil && *update.Accuracy < 0 {
		return apperrors.ErrInvalidLocation
	}
	if update.Speed != nil && (*update.Speed < 0 || *update.Speed > maxSpeedKmh) {
		return apperrors.ErrInvalidLocation
	}
	if update.Heading != nil && (*update.Heading < 0 || *update.Heading >= 360) {
		return apperrors.ErrInvalidLocation
	}
	return nil
}
