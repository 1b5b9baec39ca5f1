package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailmix/internal/itinerary"
	dbm "trailmix/internal/models/db_models"
	"trailmix/internal/models/request_models"
	"trailmix/pkg/utils"
)

type fakeTripRepo struct {
	created *dbm.Trip
	trips   map[string]*dbm.Trip
	days    map[string]*dbm.TripDay

	replacedTheme string
	replacedStops []dbm.TripStop
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips: map[string]*dbm.Trip{},
		days:  map[string]*dbm.TripDay{},
	}
}

func (f *fakeTripRepo) CreateTripWithItinerary(ctx context.Context, trip *dbm.Trip) error {
	trip.ID = uuid.New()
	f.created = trip
	f.trips[trip.ID.String()] = trip
	return nil
}

func (f *fakeTripRepo) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	return f.trips[tripId], nil
}

func (f *fakeTripRepo) ListTrips(ctx context.Context, ownerId *uuid.UUID) ([]dbm.Trip, error) {
	var out []dbm.Trip
	for _, t := range f.trips {
		if ownerId == nil || (t.OwnerID != nil && *t.OwnerID == *ownerId) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) UpdateTripFields(ctx context.Context, tripId string, fields map[string]interface{}) (*dbm.Trip, error) {
	trip := f.trips[tripId]
	if trip == nil {
		return nil, nil
	}
	if v, ok := fields["budget_band"]; ok {
		trip.BudgetBand = v.(string)
	}
	if v, ok := fields["pace"]; ok {
		trip.Pace = v.(string)
	}
	return trip, nil
}

func (f *fakeTripRepo) DeleteTrip(ctx context.Context, tripId string) error {
	delete(f.trips, tripId)
	return nil
}

func (f *fakeTripRepo) GetDayById(ctx context.Context, tripId string, dayId string) (*dbm.TripDay, error) {
	day := f.days[dayId]
	if day == nil || day.TripID.String() != tripId {
		return nil, nil
	}
	return day, nil
}

func (f *fakeTripRepo) ReplaceDayStops(ctx context.Context, dayId uuid.UUID, theme string, stops []dbm.TripStop) (*dbm.TripDay, error) {
	f.replacedTheme = theme
	f.replacedStops = stops

	day := f.days[dayId.String()]
	day.Theme = theme
	day.Stops = stops
	return day, nil
}

func newTestTripService(repo *fakeTripRepo) TripServiceInterface {
	gen := itinerary.NewGenerator(rand.New(rand.NewSource(1)))
	return NewTripService(repo, gen)
}

func TestCreateTripInclusiveDayCount(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	trip, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		City:       "Paris",
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-03",
		BudgetBand: "medium",
		Pace:       "relaxed",
		FoodPrefs:  []string{"vegetarian"},
	}, "")
	require.NoError(t, err)

	require.Len(t, trip.Days, 3)
	for i, day := range trip.Days {
		assert.Equal(t, i+1, day.DayIndex)
		assert.Len(t, day.Stops, 3)

		var sum float64
		for j, stop := range day.Stops {
			assert.Equal(t, j+1, stop.StopIndex)
			sum += stop.EstCost
		}
		assert.Equal(t, sum, day.TotalCost)
	}

	assert.Equal(t, []string{"vegetarian"}, trip.FoodPrefs)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Paris", repo.created.City)
}

func TestCreateTripSingleDay(t *testing.T) {
	svc := newTestTripService(newFakeTripRepo())

	trip, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		City:       "Paris",
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-01",
		BudgetBand: "comfortable",
		Pace:       "packed",
	}, "")
	require.NoError(t, err)

	require.Len(t, trip.Days, 1)
	assert.Len(t, trip.Days[0].Stops, 4)
}

func TestCreateTripValidation(t *testing.T) {
	svc := newTestTripService(newFakeTripRepo())

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2026-06-03", "2026-06-01"},
		{"bad start date", "not-a-date", "2026-06-01"},
		{"bad end date", "2026-06-01", "yesterday"},
		{"too long", "2026-06-01", "2026-07-15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
				City:       "Paris",
				StartDate:  tc.start,
				EndDate:    tc.end,
				BudgetBand: "medium",
				Pace:       "relaxed",
			}, "")
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestCreateTripOwnerFromToken(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	owner := uuid.New()
	_, err := svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		City:       "Rome",
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-02",
		BudgetBand: "tight",
		Pace:       "relaxed",
	}, owner.String())
	require.NoError(t, err)

	require.NotNil(t, repo.created.OwnerID)
	assert.Equal(t, owner, *repo.created.OwnerID)
}

func TestGetTripNotFound(t *testing.T) {
	svc := newTestTripService(newFakeTripRepo())

	_, err := svc.GetTrip(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestRegenerateDayNotFound(t *testing.T) {
	svc := newTestTripService(newFakeTripRepo())

	_, err := svc.RegenerateDay(context.Background(), request_models.RegenerateDayRequest{
		TripID:   uuid.New().String(),
		DayID:    uuid.New().String(),
		DayIndex: 1,
		City:     "Paris",
		Budget:   "medium",
		Pace:     "relaxed",
	})
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestRegenerateDayReplacesStops(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newTestTripService(repo)

	tripId := uuid.New()
	dayId := uuid.New()
	repo.days[dayId.String()] = &dbm.TripDay{
		BaseModel: dbm.BaseModel{ID: dayId},
		TripID:    tripId,
		DayIndex:  2,
		Theme:     "Historical Sites",
		Stops:     []dbm.TripStop{{Title: "Old Stop"}},
	}

	day, err := svc.RegenerateDay(context.Background(), request_models.RegenerateDayRequest{
		TripID:   tripId.String(),
		DayID:    dayId.String(),
		DayIndex: 2,
		City:     "Paris",
		Budget:   "medium",
		Pace:     "relaxed",
		Theme:    "Food & Culinary",
	})
	require.NoError(t, err)

	assert.Equal(t, "Food & Culinary", day.Theme)
	require.Len(t, day.Stops, 3)
	for i, stop := range day.Stops {
		assert.Equal(t, i+1, stop.StopIndex)
		assert.NotEqual(t, "Old Stop", stop.Title)
	}

	var sum float64
	for _, s := range repo.replacedStops {
		sum += s.EstCost
	}
	assert.Equal(t, sum, day.TotalCost)
}
