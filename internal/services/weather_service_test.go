package services

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRoundTripper struct{}

func (failingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("upstream unreachable")
}

func testDates(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2026-07-01")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2026-07-07")
	require.NoError(t, err)
	return start, end
}

func TestForecastWithoutAPIKeyUsesMock(t *testing.T) {
	svc := NewOpenWeatherService(&http.Client{}, "", rand.New(rand.NewSource(1)))
	start, end := testDates(t)

	forecast, err := svc.Forecast(context.Background(), "Paris", start, end)
	require.NoError(t, err)
	require.Len(t, forecast, 7)

	wantDesc := []string{"sunny", "partly cloudy", "sunny", "light rain", "clear"}
	wantTemp := []int{22, 18, 25, 20, 23}
	for i, day := range forecast {
		assert.Equal(t, start.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
		assert.Equal(t, wantDesc[i%5], day.Description)
		assert.NotEmpty(t, day.Icon)

		// Mock temperature carries a ±3° jitter around the canned value.
		assert.GreaterOrEqual(t, day.Temperature, wantTemp[i%5]-3)
		assert.LessOrEqual(t, day.Temperature, wantTemp[i%5]+3)
	}
}

func TestForecastMockRotationWrapsAfterFiveDays(t *testing.T) {
	svc := NewOpenWeatherService(&http.Client{}, "", rand.New(rand.NewSource(1)))
	start, end := testDates(t)

	forecast, err := svc.Forecast(context.Background(), "Paris", start, end)
	require.NoError(t, err)
	require.Len(t, forecast, 7)

	assert.Equal(t, forecast[0].Description, forecast[5].Description)
	assert.Equal(t, forecast[1].Description, forecast[6].Description)
}

func TestForecastUpstreamFailureFallsBackToMock(t *testing.T) {
	client := &http.Client{Transport: failingRoundTripper{}}
	svc := NewOpenWeatherService(client, "some-api-key", rand.New(rand.NewSource(1)))
	start, end := testDates(t)

	forecast, err := svc.Forecast(context.Background(), "Paris", start, end)
	require.NoError(t, err, "upstream failure must never surface")
	assert.Len(t, forecast, 7)
	assert.Equal(t, "sunny", forecast[0].Description)
}

func TestForecastSeededJitterIsDeterministic(t *testing.T) {
	start, end := testDates(t)

	a, err := NewOpenWeatherService(&http.Client{}, "", rand.New(rand.NewSource(9))).
		Forecast(context.Background(), "Paris", start, end)
	require.NoError(t, err)
	b, err := NewOpenWeatherService(&http.Client{}, "", rand.New(rand.NewSource(9))).
		Forecast(context.Background(), "Paris", start, end)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
