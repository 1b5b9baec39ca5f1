package services

import (
	"math/rand"
	"strings"
	"sync"

	"trailmix/internal/models/response_models"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MapMarker struct {
	StopID   string      `json:"stop_id"`
	Title    string      `json:"title"`
	DayIndex int         `json:"day_index"`
	Theme    string      `json:"theme"`
	Position Coordinates `json:"position"`
}

type MapView struct {
	City    string      `json:"city"`
	Center  Coordinates `json:"center"`
	Markers []MapMarker `json:"markers"`
}

type MapServiceInterface interface {
	BuildView(trip *response_models.TripResponse) MapView
}

// cityCoordinates mirrors the static lookup used by the client-side fallback
// map; unknown cities land at the null island origin.
var cityCoordinates = map[string]Coordinates{
	"paris":     {Lat: 48.8566, Lng: 2.3522},
	"london":    {Lat: 51.5074, Lng: -0.1278},
	"new york":  {Lat: 40.7128, Lng: -74.0060},
	"tokyo":     {Lat: 35.6762, Lng: 139.6503},
	"delhi":     {Lat: 28.6139, Lng: 77.2090},
	"mumbai":    {Lat: 19.0760, Lng: 72.8777},
	"barcelona": {Lat: 41.3851, Lng: 2.1734},
	"rome":      {Lat: 41.9028, Lng: 12.4964},
	"sydney":    {Lat: -33.8688, Lng: 151.2093},
}

// StaticMapService places one jittered marker per stop around the city
// center. No upstream map provider is involved.
type StaticMapService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewStaticMapService(rng *rand.Rand) MapServiceInterface {
	return &StaticMapService{rng: rng}
}

func (s *StaticMapService) BuildView(trip *response_models.TripResponse) MapView {
	s.mu.Lock()
	defer s.mu.Unlock()

	center := cityCoordinates[strings.ToLower(trip.City)]

	view := MapView{
		City:    trip.City,
		Center:  center,
		Markers: []MapMarker{},
	}

	const offset = 0.01
	for _, day := range trip.Days {
		for _, stop := range day.Stops {
			view.Markers = append(view.Markers, MapMarker{
				StopID:   stop.ID,
				Title:    stop.Title,
				DayIndex: day.DayIndex,
				Theme:    day.Theme,
				Position: Coordinates{
					Lat: center.Lat + (s.rng.Float64()-0.5)*offset,
					Lng: center.Lng + (s.rng.Float64()-0.5)*offset,
				},
			})
		}
	}
	return view
}
