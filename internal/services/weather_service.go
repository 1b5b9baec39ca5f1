package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

type DayWeather struct {
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherServiceInterface is the forecast provider. Implementations never
// surface upstream failure: anything that goes wrong degrades to mock data.
type WeatherServiceInterface interface {
	Forecast(ctx context.Context, city string, start, end time.Time) ([]DayWeather, error)
}

// OpenWeatherService calls OpenWeatherMap when an API key is configured and
// falls back to a deterministic mock rotation otherwise. The injected client
// must carry a bounded timeout.
type OpenWeatherService struct {
	httpClient *http.Client
	apiKey     string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewOpenWeatherService(httpClient *http.Client, apiKey string, rng *rand.Rand) WeatherServiceInterface {
	return &OpenWeatherService{
		httpClient: httpClient,
		apiKey:     apiKey,
		rng:        rng,
	}
}

var mockWeathers = []DayWeather{
	{Temperature: 22, Description: "sunny", Icon: "☀️"},
	{Temperature: 18, Description: "partly cloudy", Icon: "⛅"},
	{Temperature: 25, Description: "sunny", Icon: "☀️"},
	{Temperature: 20, Description: "light rain", Icon: "🌦️"},
	{Temperature: 23, Description: "clear", Icon: "☀️"},
}

var weatherIcons = map[string]string{
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Rain":         "🌧️",
	"Drizzle":      "🌦️",
	"Thunderstorm": "⛈️",
	"Snow":         "❄️",
	"Mist":         "🌫️",
	"Fog":          "🌫️",
	"Haze":         "🌫️",
}

func (s *OpenWeatherService) Forecast(ctx context.Context, city string, start, end time.Time) ([]DayWeather, error) {
	if s.apiKey == "" {
		return s.mockForecast(start, end), nil
	}

	forecast, err := s.fetchForecast(ctx, city, start, end)
	if err != nil {
		zap.L().Warn("weather provider failed, using mock forecast",
			zap.String("city", city), zap.Error(err))
		return s.mockForecast(start, end), nil
	}
	return forecast, nil
}

type geocodeEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (s *OpenWeatherService) fetchForecast(ctx context.Context, city string, start, end time.Time) ([]DayWeather, error) {
	geoURL := fmt.Sprintf(
		"https://api.openweathermap.org/geo/1.0/direct?q=%s&limit=1&appid=%s",
		url.QueryEscape(city), s.apiKey)

	var entries []geocodeEntry
	if err := s.getJSON(ctx, geoURL, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("city %q not found", city)
	}

	forecastURL := fmt.Sprintf(
		"https://api.openweathermap.org/data/2.5/forecast?lat=%f&lon=%f&appid=%s&units=metric",
		entries[0].Lat, entries[0].Lon, s.apiKey)

	var raw forecastResponse
	if err := s.getJSON(ctx, forecastURL, &raw); err != nil {
		return nil, err
	}

	// Pick one entry per day, around midday.
	var out []DayWeather
	current := start
	for _, item := range raw.List {
		if current.After(end) {
			break
		}
		ts := time.Unix(item.Dt, 0).UTC()
		if ts.Hour() < 12 || ts.Day() != current.Day() || len(item.Weather) == 0 {
			continue
		}
		out = append(out, DayWeather{
			Date:        current.Format("2006-01-02"),
			Temperature: int(item.Main.Temp + 0.5),
			Description: item.Weather[0].Description,
			Icon:        iconFor(item.Weather[0].Main),
		})
		current = current.AddDate(0, 0, 1)
	}
	return out, nil
}

func (s *OpenWeatherService) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// mockForecast rotates through five canned entries with a ±3° jitter.
func (s *OpenWeatherService) mockForecast(start, end time.Time) []DayWeather {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []DayWeather
	dayIdx := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		w := mockWeathers[dayIdx%len(mockWeathers)]
		out = append(out, DayWeather{
			Date:        d.Format("2006-01-02"),
			Temperature: w.Temperature + s.rng.Intn(7) - 3,
			Description: w.Description,
			Icon:        w.Icon,
		})
		dayIdx++
	}
	return out
}

func iconFor(main string) string {
	if icon, ok := weatherIcons[main]; ok {
		return icon
	}
	return "🌤️"
}
