package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "safarisalama/internal/errors"
	"safarisalama/internal/model"
)

func newTrackingFixture() (*MockBusRepository, *MockTripRepository, *MockLocationRepository, TrackingService) {
	buses := new(MockBusRepository)
	trips := new(MockTripRepository)
	locations := new(MockLocationRepository)
	service := NewTrackingService(buses, trips, locations, NewLocationValidator(), nil)
	return buses, trips, locations, service
}

func TestTrackingService_RecordLocation(t *testing.T) {
	t.Run("fix is stored and promoted onto bus and trips", func(t *testing.T) {
		buses, trips, locations, service := newTrackingFixture()

		buses.On("FindByID", mock.Anything, uint(9)).Return(&model.Bus{ID: 9, Number: "KBS-001"}, nil)
		locations.On("Create", mock.Anything, mock.AnythingOfType("*model.BusLocation")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.BusLocation).ID = 41
		}).Return(nil)
		buses.On("UpdatePosition", mock.Anything, uint(9), -1.2921, 36.8219).Return(nil)
		trips.On("UpdatePositionForBus", mock.Anything, uint(9), -1.2921, 36.8219, mock.AnythingOfType("time.Time")).Return(nil)

		speed := 42.5
		location, err := service.RecordLocation(context.Background(), LocationUpdate{
			BusID:     9,
			Latitude:  -1.2921,
			Longitude: 36.8219,
			Speed:     &speed,
		})
		require.NoError(t, err)
		require.NotNil(t, location)

		assert.Equal(t, uint(41), location.ID)
		assert.Equal(t, uint(9), location.BusID)
		assert.Equal(t, -1.2921, location.Latitude)
		require.NotNil(t, location.Speed)
		assert.Equal(t, 42.5, *location.Speed)
		assert.WithinDuration(t, time.Now().UTC(), location.RecordedAt, 5*time.Second)

		// Every fix gets its own well-formed correlation id.
		_, err = uuid.Parse(location.FixID)
		assert.NoError(t, err)

		buses.AssertExpectations(t)
		trips.AssertExpectations(t)
		locations.AssertExpectations(t)
	})

	t.Run("invalid coordinates are rejected before any lookup", func(t *testing.T) {
		buses, _, locations, service := newTrackingFixture()

		_, err := service.RecordLocation(context.Background(), LocationUpdate{
			BusID:     9,
			Latitude:  95,
			Longitude: 36.8219,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)

		buses.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		locations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown bus", func(t *testing.T) {
		buses, _, locations, service := newTrackingFixture()

		buses.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.RecordLocation(context.Background(), LocationUpdate{
			BusID:     404,
			Latitude:  -1.2921,
			Longitude: 36.8219,
		})
		assert.ErrorIs(t, err, apperrors.ErrBusNotFound)

		locations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTrackingService_LatestLocation(t *testing.T) {
	t.Run("latest fix from the repository", func(t *testing.T) {
		_, _, locations, service := newTrackingFixture()

		stored := &model.BusLocation{
			ID:         41,
			FixID:      uuid.NewString(),
			BusID:      9,
			Latitude:   -1.2921,
			Longitude:  36.8219,
			RecordedAt: time.Date(2025, 3, 1, 7, 45, 0, 0, time.UTC),
		}
		locations.On("LatestForBus", mock.Anything, uint(9)).Return(stored, nil)

		location, err := service.LatestLocation(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, stored, location)

		locations.AssertExpectations(t)
	})

	t.Run("bus with no fixes yet", func(t *testing.T) {
		_, _, locations, service := newTrackingFixture()

		locations.On("LatestForBus", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.LatestLocation(context.Background(), 9)
		assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
	})
}
