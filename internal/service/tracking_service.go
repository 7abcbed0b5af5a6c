package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"safarisalama/internal/cache"
	apperrors "safarisalama/internal/errors"
	"safarisalama/internal/model"
	"safarisalama/internal/repository"
)

const locationCacheTTL = 5 * time.Minute

// LocationUpdate is a single GPS fix reported by a driver's device.
type LocationUpdate struct {
	BusID     uint
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	Speed     *float64
	Heading   *float64
}

// TrackingService ingests driver GPS fixes and serves the latest known
// position of a bus. Ingest appends to the location history, promotes the fix
// onto the bus and its non-completed trips, and caches it for reads.
type TrackingService interface {
	RecordLocation(ctx context.Context, update LocationUpdate) (*model.BusLocation, error)
	LatestLocation(ctx context.Context, busID uint) (*model.BusLocation, error)
}

type trackingService struct {
	buses     repository.BusRepository
	trips     repository.TripRepository
	locations repository.LocationRepository
	validator *LocationValidator
	cache     *cache.Client
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(
	buses repository.BusRepository,
	trips repository.TripRepository,
	locations repository.LocationRepository,
	validator *LocationValidator,
	cache *cache.Client,
) TrackingService {
	return &trackingService{
		buses:     buses,
		trips:     trips,
		locations: locations,
		validator: validator,
		cache:     cache,
	}
}

func (s *trackingService) cacheKey(busID uint) string {
	return fmt.Sprintf("bus_location:%d", busID)
}

// RecordLocation validates and stores one GPS fix.
func (s *trackingService) RecordLocation(ctx context.Context, update LocationUpdate) (*model.BusLocation, error) {
	if err := s.validator.Validate(update); err != nil {
		return nil, err
	}

	if _, err := s.buses.FindByID(ctx, update.BusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusNotFound
		}
		return nil, fmt.Errorf("find bus: %w", err)
	}

	location := &model.BusLocation{
		FixID:      uuid.NewString(),
		BusID:      update.BusID,
		Latitude:   update.Latitude,
		Longitude:  update.Longitude,
		Accuracy:   update.Accuracy,
		Speed:      update.Speed,
		Heading:    update.Heading,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("record location: %w", err)
	}

	if err := s.buses.UpdatePosition(ctx, update.BusID, update.Latitude, update.Longitude); err != nil {
		return nil, fmt.Errorf("update bus position: %w", err)
	}
	if err := s.trips.UpdatePositionForBus(ctx, update.BusID, update.Latitude, update.Longitude, location.RecordedAt); err != nil {
		return nil, fmt.Errorf("update trip position: %w", err)
	}

	if payload, err := json.Marshal(location); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(update.BusID), payload, locationCacheTTL)
	}

	return location, nil
}

// LatestLocation returns the most recent fix for a bus, cache first.
func (s *trackingService) LatestLocation(ctx context.Context, busID uint) (*model.BusLocation, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(busID)); data != nil {
		var cached model.BusLocation
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	location, err := s.locations.LatestForBus(ctx, busID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("latest location: %w", err)
	}

	if payload, err := json.Marshal(location); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(busID), payload, locationCacheTTL)
	}

	return location, nil
}
