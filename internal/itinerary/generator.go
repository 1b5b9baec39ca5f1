package itinerary

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"trailmix/pkg/utils"
)

type Budget string

const (
	BudgetTight       Budget = "tight"
	BudgetMedium      Budget = "medium"
	BudgetComfortable Budget = "comfortable"
)

type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PacePacked  Pace = "packed"
)

// Stop is a single scheduled activity within a day.
type Stop struct {
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	StartTime    string  `json:"start_time"`
	DurationMins int     `json:"duration_mins"`
	EstCost      float64 `json:"est_cost"`
	URL          string  `json:"url"`
}

// Day is a themed, time-ordered list of stops.
type Day struct {
	Theme string `json:"theme"`
	Stops []Stop `json:"stops"`
}

// Generator turns trip parameters into days and stops. Generate is fully
// deterministic; RegenerateDay draws from rng so callers can seed it in tests.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (b Budget) multiplier() float64 {
	switch b {
	case BudgetTight:
		return 0.7
	case BudgetComfortable:
		return 1.3
	default:
		return 1.0
	}
}

func (p Pace) stopsPerDay() int {
	if p == PacePacked {
		return 4
	}
	return 3
}

// Generate produces one Day per requested day. Themes rotate through the main
// catalog, stops start at 09:00 on a fixed three-hour cadence, and costs scale
// with the budget band.
func (g *Generator) Generate(city string, days int, budget Budget, pace Pace) []Day {
	out := make([]Day, 0, days)
	numStops := pace.stopsPerDay()

	for dayIdx := 0; dayIdx < days; dayIdx++ {
		theme := mainThemes[dayIdx%len(mainThemes)]
		templates, ok := mainActivities[theme]
		if !ok {
			templates = mainActivities[defaultTheme]
		}

		stops := make([]Stop, 0, numStops)
		for i := 0; i < numStops; i++ {
			tmpl := templates[i%len(templates)]
			stops = append(stops, Stop{
				Title:        fmt.Sprintf("%s in %s", tmpl.Title, city),
				Address:      fmt.Sprintf("%s City Center", city),
				StartTime:    startTimeFor(i),
				DurationMins: tmpl.Duration,
				EstCost:      scaledCost(tmpl.Cost, budget),
				URL:          fmt.Sprintf("https://example.com/%s", utils.Slugify(tmpl.Title)),
			})
		}

		out = append(out, Day{Theme: theme, Stops: stops})
	}
	return out
}

// RegenerateDay builds a replacement day. The preferred theme is honored only
// when it is a member of the regeneration catalog; otherwise a theme is picked
// uniformly at random. The theme's activities are shuffled and the first
// numStops taken, with a ±15 minute jitter on each duration.
func (g *Generator) RegenerateDay(city string, budget Budget, pace Pace, preferredTheme string) Day {
	// rand.Rand is not safe for concurrent use; regeneration can run from
	// multiple request handlers at once.
	g.mu.Lock()
	defer g.mu.Unlock()

	theme := preferredTheme
	if !slices.Contains(regenThemes, theme) {
		theme = regenThemes[g.rng.Intn(len(regenThemes))]
	}

	templates, ok := regenActivities[theme]
	if !ok {
		templates = regenActivities[defaultRegenTheme]
	}

	shuffled := make([]ActivityTemplate, len(templates))
	copy(shuffled, templates)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	numStops := pace.stopsPerDay()
	if numStops > len(shuffled) {
		numStops = len(shuffled)
	}

	citySlug := utils.Slugify(city)
	stops := make([]Stop, 0, numStops)
	for i, tmpl := range shuffled[:numStops] {
		stops = append(stops, Stop{
			Title:        fmt.Sprintf("%s in %s", tmpl.Title, city),
			Address:      fmt.Sprintf("%s, %s", tmpl.Address, city),
			StartTime:    startTimeFor(i),
			DurationMins: tmpl.Duration + g.rng.Intn(31) - 15,
			EstCost:      scaledCost(tmpl.Cost, budget),
			URL:          fmt.Sprintf("https://example.com/%s-%s", utils.Slugify(tmpl.Title), citySlug),
		})
	}

	return Day{Theme: theme, Stops: stops}
}

func startTimeFor(stopIdx int) string {
	return fmt.Sprintf("%02d:00", 9+stopIdx*3)
}

func scaledCost(base float64, budget Budget) float64 {
	return math.Round(base * budget.multiplier())
}
