package services

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailmix/internal/models/response_models"
)

func testTripResponse(city string) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:   "trip-1",
		City: city,
		Days: []response_models.DayResponse{
			{
				DayIndex: 1,
				Theme:    "Historical Sites",
				Stops: []response_models.StopResponse{
					{ID: "s1", Title: "Ancient Monument Tour in " + city},
					{ID: "s2", Title: "Historic Downtown Walk in " + city},
				},
			},
			{
				DayIndex: 2,
				Theme:    "Cultural Exploration",
				Stops: []response_models.StopResponse{
					{ID: "s3", Title: "Local Market Visit in " + city},
				},
			},
		},
	}
}

func TestBuildViewKnownCity(t *testing.T) {
	svc := NewStaticMapService(rand.New(rand.NewSource(1)))

	view := svc.BuildView(testTripResponse("Paris"))

	assert.Equal(t, 48.8566, view.Center.Lat)
	assert.Equal(t, 2.3522, view.Center.Lng)
	require.Len(t, view.Markers, 3)

	for _, m := range view.Markers {
		assert.LessOrEqual(t, math.Abs(m.Position.Lat-view.Center.Lat), 0.005)
		assert.LessOrEqual(t, math.Abs(m.Position.Lng-view.Center.Lng), 0.005)
	}

	assert.Equal(t, 1, view.Markers[0].DayIndex)
	assert.Equal(t, 2, view.Markers[2].DayIndex)
}

func TestBuildViewCityLookupIsCaseInsensitive(t *testing.T) {
	svc := NewStaticMapService(rand.New(rand.NewSource(1)))

	view := svc.BuildView(testTripResponse("TOKYO"))
	assert.Equal(t, 35.6762, view.Center.Lat)
}

func TestBuildViewUnknownCityCentersAtOrigin(t *testing.T) {
	svc := NewStaticMapService(rand.New(rand.NewSource(1)))

	view := svc.BuildView(testTripResponse("Atlantis"))
	assert.Equal(t, 0.0, view.Center.Lat)
	assert.Equal(t, 0.0, view.Center.Lng)
	assert.Len(t, view.Markers, 3)
}
