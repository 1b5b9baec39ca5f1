package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"trailmix/internal/itinerary"
	dbm "trailmix/internal/models/db_models"
	"trailmix/internal/models/request_models"
	"trailmix/internal/models/response_models"
	"trailmix/internal/repositories"
	"trailmix/pkg/utils"
)

// Trips longer than this are rejected at validation; themes already wrap
// modulo the catalog so the generator itself has no upper bound.
const maxTripDays = 30

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest, tokenUserId string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, ownerId string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripId string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripId string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string) error
	RegenerateDay(ctx context.Context, req request_models.RegenerateDayRequest) (*response_models.DayResponse, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	generator *itinerary.Generator
}

func NewTripService(tripRepo repositories.TripRepository, generator *itinerary.Generator) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		generator: generator,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest, tokenUserId string) (*response_models.TripResponse, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	// Inclusive of both endpoints.
	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxTripDays {
		return nil, utils.ErrInvalidInput
	}

	generated := s.generator.Generate(req.City, days, itinerary.Budget(req.BudgetBand), itinerary.Pace(req.Pace))

	trip := &dbm.Trip{
		City:       req.City,
		StartDate:  start,
		EndDate:    end,
		BudgetBand: req.BudgetBand,
		Pace:       req.Pace,
		FoodPrefs:  req.FoodPrefs,
		Days:       daysToModels(generated),
	}
	if ownerId := resolveOwner(req.OwnerID, tokenUserId); ownerId != nil {
		trip.OwnerID = ownerId
	}

	if err := s.tripRepo.CreateTripWithItinerary(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, ownerId string) ([]response_models.TripResponse, error) {
	var owner *uuid.UUID
	if ownerId != "" {
		parsed, err := uuid.Parse(ownerId)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		owner = &parsed
	}

	trips, err := s.tripRepo.ListTrips(ctx, owner)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *dbm.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripId string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return dbm.BuildTripResponse(trip), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, tripId string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	fields := map[string]interface{}{}
	if req.BudgetBand != "" {
		fields["budget_band"] = req.BudgetBand
	}
	if req.Pace != "" {
		fields["pace"] = req.Pace
	}
	if req.FoodPrefs != nil {
		fields["food_prefs"] = pq.StringArray(req.FoodPrefs)
	}
	if len(fields) == 0 {
		return s.GetTrip(ctx, tripId)
	}

	trip, err := s.tripRepo.UpdateTripFields(ctx, tripId, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return dbm.BuildTripResponse(trip), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripId string) error {
	if err := s.tripRepo.DeleteTrip(ctx, tripId); err != nil {
		trip, getErr := s.tripRepo.GetTripById(ctx, tripId)
		if getErr == nil && trip == nil {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// RegenerateDay discards the day's stops and writes a freshly generated set.
// The delete and insert happen in one transaction inside the repository.
func (s *TripService) RegenerateDay(ctx context.Context, req request_models.RegenerateDayRequest) (*response_models.DayResponse, error) {
	day, err := s.tripRepo.GetDayById(ctx, req.TripID, req.DayID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day == nil {
		return nil, utils.ErrDayNotFound
	}

	generated := s.generator.RegenerateDay(req.City, itinerary.Budget(req.Budget), itinerary.Pace(req.Pace), req.Theme)

	stops := make([]dbm.TripStop, 0, len(generated.Stops))
	for i, stop := range generated.Stops {
		stops = append(stops, stopToModel(stop, i+1))
	}

	updated, err := s.tripRepo.ReplaceDayStops(ctx, day.ID, generated.Theme, stops)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return dbm.BuildDayResponse(updated), nil
}

func daysToModels(days []itinerary.Day) []dbm.TripDay {
	out := make([]dbm.TripDay, 0, len(days))
	for i, day := range days {
		d := dbm.TripDay{
			DayIndex: i + 1,
			Theme:    day.Theme,
		}
		for j, stop := range day.Stops {
			d.Stops = append(d.Stops, stopToModel(stop, j+1))
		}
		out = append(out, d)
	}
	return out
}

func stopToModel(stop itinerary.Stop, index int) dbm.TripStop {
	return dbm.TripStop{
		StopIndex:    index,
		Title:        stop.Title,
		Address:      stop.Address,
		StartTime:    stop.StartTime,
		DurationMins: stop.DurationMins,
		EstCost:      stop.EstCost,
		URL:          stop.URL,
	}
}

func resolveOwner(requested string, tokenUserId string) *uuid.UUID {
	for _, candidate := range []string{requested, tokenUserId} {
		if candidate == "" {
			continue
		}
		if parsed, err := uuid.Parse(candidate); err == nil {
			return &parsed
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
