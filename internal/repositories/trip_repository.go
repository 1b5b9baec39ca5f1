package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "trailmix/internal/models/db_models"
)

type TripRepository interface {
	CreateTripWithItinerary(ctx context.Context, trip *dbm.Trip) error
	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
	ListTrips(ctx context.Context, ownerId *uuid.UUID) ([]dbm.Trip, error)
	UpdateTripFields(ctx context.Context, tripId string, fields map[string]interface{}) (*dbm.Trip, error)
	DeleteTrip(ctx context.Context, tripId string) error
	GetDayById(ctx context.Context, tripId string, dayId string) (*dbm.TripDay, error)
	ReplaceDayStops(ctx context.Context, dayId uuid.UUID, theme string, stops []dbm.TripStop) (*dbm.TripDay, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func orderedDays(db *gorm.DB) *gorm.DB {
	return db.Order("day_index ASC")
}

func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("stop_index ASC")
}

// CreateTripWithItinerary persists the trip and its attached days and stops in
// one cascading create.
func (r *tripRepository) CreateTripWithItinerary(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Preload("Days", orderedDays).
		Preload("Days.Stops", orderedStops).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTrips(ctx context.Context, ownerId *uuid.UUID) ([]dbm.Trip, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if ownerId != nil {
		q = q.Where("owner_id = ?", *ownerId)
	}

	var trips []dbm.Trip
	if err := q.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) UpdateTripFields(ctx context.Context, tripId string, fields map[string]interface{}) (*dbm.Trip, error) {
	res := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripId).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetTripById(ctx, tripId)
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripId string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Delete(&dbm.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tripRepository) GetDayById(ctx context.Context, tripId string, dayId string) (*dbm.TripDay, error) {
	var day dbm.TripDay
	err := r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", dayId, tripId).
		Preload("Stops", orderedStops).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

// ReplaceDayStops swaps the day's theme and stop list in a single transaction
// so a concurrent reader never observes the day with no stops.
func (r *tripRepository) ReplaceDayStops(ctx context.Context, dayId uuid.UUID, theme string, stops []dbm.TripStop) (*dbm.TripDay, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbm.TripDay{}).
			Where("id = ?", dayId).
			Update("theme", theme).Error; err != nil {
			return err
		}

		if err := tx.Where("trip_day_id = ?", dayId).
			Delete(&dbm.TripStop{}).Error; err != nil {
			return err
		}

		for i := range stops {
			stops[i].TripDayID = dayId
		}
		return tx.Create(&stops).Error
	})
	if err != nil {
		return nil, err
	}

	var day dbm.TripDay
	if err := r.db.WithContext(ctx).
		Where("id = ?", dayId).
		Preload("Stops", orderedStops).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}
