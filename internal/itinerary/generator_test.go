package itinerary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerateDayAndStopCounts(t *testing.T) {
	g := newTestGenerator(1)

	relaxed := g.Generate("Paris", 5, BudgetMedium, PaceRelaxed)
	require.Len(t, relaxed, 5)
	for _, day := range relaxed {
		assert.Len(t, day.Stops, 3)
	}

	packed := g.Generate("Paris", 2, BudgetMedium, PacePacked)
	require.Len(t, packed, 2)
	for _, day := range packed {
		assert.Len(t, day.Stops, 4)
	}
}

func TestGenerateStartTimeCadence(t *testing.T) {
	g := newTestGenerator(1)

	days := g.Generate("Tokyo", 1, BudgetMedium, PacePacked)
	require.Len(t, days, 1)

	want := []string{"09:00", "12:00", "15:00", "18:00"}
	for i, stop := range days[0].Stops {
		assert.Equal(t, want[i], stop.StartTime)
	}
}

func TestGenerateCostScaling(t *testing.T) {
	g := newTestGenerator(1)

	// Day 1 stop 1 is always the Ancient Monument Tour, base cost 15.
	medium := g.Generate("Rome", 1, BudgetMedium, PaceRelaxed)
	tight := g.Generate("Rome", 1, BudgetTight, PaceRelaxed)
	comfortable := g.Generate("Rome", 1, BudgetComfortable, PaceRelaxed)

	assert.Equal(t, 15.0, medium[0].Stops[0].EstCost)
	assert.Equal(t, 11.0, tight[0].Stops[0].EstCost)       // round(15 * 0.7)
	assert.Equal(t, 20.0, comfortable[0].Stops[0].EstCost) // round(15 * 1.3)

	// Free activities stay free in every band.
	assert.Equal(t, 0.0, tight[0].Stops[1].EstCost)
	assert.Equal(t, 0.0, comfortable[0].Stops[1].EstCost)
}

func TestGenerateThemePeriodicity(t *testing.T) {
	g := newTestGenerator(1)

	days := g.Generate("London", 12, BudgetMedium, PaceRelaxed)
	require.Len(t, days, 12)

	catalog := MainThemes()
	for i, day := range days {
		assert.Equal(t, catalog[i%len(catalog)], day.Theme)
	}
	for i := 0; i < 6; i++ {
		assert.Equal(t, days[i].Theme, days[i+6].Theme)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGenerator(1).Generate("Paris", 4, BudgetTight, PacePacked)
	b := newTestGenerator(99).Generate("Paris", 4, BudgetTight, PacePacked)
	assert.Equal(t, a, b)
}

func TestGenerateParisRelaxedExample(t *testing.T) {
	g := newTestGenerator(1)

	days := g.Generate("Paris", 3, BudgetTight, PaceRelaxed)
	require.Len(t, days, 3)
	require.Len(t, days[0].Stops, 3)

	assert.Equal(t, MainThemes()[0], days[0].Theme)
	assert.Equal(t, "09:00", days[0].Stops[0].StartTime)
	assert.Equal(t, "12:00", days[0].Stops[1].StartTime)
	assert.Equal(t, "15:00", days[0].Stops[2].StartTime)

	assert.Equal(t, "Ancient Monument Tour in Paris", days[0].Stops[0].Title)
	assert.Equal(t, "Paris City Center", days[0].Stops[0].Address)
	assert.Equal(t, "https://example.com/ancient-monument-tour", days[0].Stops[0].URL)
}

func TestGenerateParisPackedExample(t *testing.T) {
	g := newTestGenerator(1)

	days := g.Generate("Paris", 1, BudgetComfortable, PacePacked)
	require.Len(t, days, 1)
	require.Len(t, days[0].Stops, 4)

	want := []string{"09:00", "12:00", "15:00", "18:00"}
	for i, stop := range days[0].Stops {
		assert.Equal(t, want[i], stop.StartTime)
	}

	// Fourth stop wraps back to the first activity template.
	assert.Equal(t, days[0].Stops[0].Title, days[0].Stops[3].Title)
}

func TestGenerateFallbackThemeActivities(t *testing.T) {
	g := newTestGenerator(1)

	// Day 4 is Nature & Parks, which has no activity list of its own.
	days := g.Generate("Sydney", 4, BudgetMedium, PaceRelaxed)
	require.Len(t, days, 4)
	assert.Equal(t, "Nature & Parks", days[3].Theme)
	assert.Equal(t, "Ancient Monument Tour in Sydney", days[3].Stops[0].Title)
}

func TestRegenerateDayPreferredTheme(t *testing.T) {
	g := newTestGenerator(7)

	for _, theme := range RegenThemes() {
		day := g.RegenerateDay("Paris", BudgetMedium, PaceRelaxed, theme)
		assert.Equal(t, theme, day.Theme)
	}
}

func TestRegenerateDayRandomThemeMembership(t *testing.T) {
	g := newTestGenerator(7)
	catalog := RegenThemes()

	for i := 0; i < 100; i++ {
		day := g.RegenerateDay("Paris", BudgetMedium, PaceRelaxed, "")
		assert.Contains(t, catalog, day.Theme)
	}

	// A theme outside the catalog is ignored, not honored.
	day := g.RegenerateDay("Paris", BudgetMedium, PaceRelaxed, "Space Travel")
	assert.Contains(t, catalog, day.Theme)
	assert.NotEqual(t, "Space Travel", day.Theme)
}

func TestRegenerateDayStopShape(t *testing.T) {
	g := newTestGenerator(7)

	day := g.RegenerateDay("New York", BudgetMedium, PacePacked, "Food & Culinary")
	require.Len(t, day.Stops, 4)

	want := []string{"09:00", "12:00", "15:00", "18:00"}
	for i, stop := range day.Stops {
		assert.Equal(t, want[i], stop.StartTime)
		assert.Contains(t, stop.Address, ", New York")
		assert.Contains(t, stop.URL, "-new-york")
		assert.GreaterOrEqual(t, stop.EstCost, 0.0)
	}
}

func TestRegenerateDayDurationJitter(t *testing.T) {
	g := newTestGenerator(7)

	baseDurations := map[string]int{}
	for _, tmpl := range regenActivities["Nature & Outdoors"] {
		baseDurations[fmt.Sprintf("%s in Lyon", tmpl.Title)] = tmpl.Duration
	}

	for i := 0; i < 50; i++ {
		day := g.RegenerateDay("Lyon", BudgetMedium, PaceRelaxed, "Nature & Outdoors")
		for _, stop := range day.Stops {
			base, ok := baseDurations[stop.Title]
			require.True(t, ok, "unexpected stop %q", stop.Title)
			assert.GreaterOrEqual(t, stop.DurationMins, base-15)
			assert.LessOrEqual(t, stop.DurationMins, base+15)
		}
	}
}

func TestRegenerateDayUnlistedThemeFallsBack(t *testing.T) {
	g := newTestGenerator(7)

	// Shopping & Markets is a valid theme with no activity list of its own.
	day := g.RegenerateDay("Paris", BudgetMedium, PaceRelaxed, "Shopping & Markets")
	assert.Equal(t, "Shopping & Markets", day.Theme)

	fallbackTitles := map[string]bool{}
	for _, tmpl := range regenActivities[defaultRegenTheme] {
		fallbackTitles[fmt.Sprintf("%s in Paris", tmpl.Title)] = true
	}
	for _, stop := range day.Stops {
		assert.True(t, fallbackTitles[stop.Title], "stop %q not from fallback catalog", stop.Title)
	}
}

func TestRegenerateDaySeededDeterminism(t *testing.T) {
	a := newTestGenerator(42).RegenerateDay("Paris", BudgetTight, PacePacked, "")
	b := newTestGenerator(42).RegenerateDay("Paris", BudgetTight, PacePacked, "")
	assert.Equal(t, a, b)
}

func TestRegenerateDayCostScaling(t *testing.T) {
	tight := newTestGenerator(3).RegenerateDay("Paris", BudgetTight, PaceRelaxed, "Food & Culinary")
	medium := newTestGenerator(3).RegenerateDay("Paris", BudgetMedium, PaceRelaxed, "Food & Culinary")

	// Same seed, same shuffle: stop i maps to the same template in both runs.
	require.Len(t, tight.Stops, len(medium.Stops))
	for i := range medium.Stops {
		wantTight := float64(int(medium.Stops[i].EstCost*0.7 + 0.5))
		assert.InDelta(t, wantTight, tight.Stops[i].EstCost, 0.5)
	}
}
