package itinerary

// ActivityTemplate is one synthesizable activity: nominal duration and cost
// before budget scaling. Address is only set in the regeneration catalog.
type ActivityTemplate struct {
	Title    string
	Duration int
	Cost     float64
	Address  string
}

const (
	defaultTheme      = "Historical Sites"
	defaultRegenTheme = "Historical Exploration"
)

// mainThemes rotate over the trip days; day i gets mainThemes[i % len].
var mainThemes = []string{
	"Historical Sites",
	"Cultural Exploration",
	"Local Cuisine",
	"Nature & Parks",
	"Shopping & Markets",
	"Art & Museums",
}

// mainActivities covers the first three themes; anything else falls back to
// defaultTheme's list.
var mainActivities = map[string][]ActivityTemplate{
	"Historical Sites": {
		{Title: "Ancient Monument Tour", Duration: 120, Cost: 15},
		{Title: "Historic Downtown Walk", Duration: 90, Cost: 0},
		{Title: "Cathedral Visit", Duration: 60, Cost: 5},
	},
	"Cultural Exploration": {
		{Title: "Local Market Visit", Duration: 90, Cost: 20},
		{Title: "Traditional Performance", Duration: 120, Cost: 25},
		{Title: "Cultural Center Tour", Duration: 75, Cost: 12},
	},
	"Local Cuisine": {
		{Title: "Street Food Tour", Duration: 120, Cost: 35},
		{Title: "Cooking Class", Duration: 180, Cost: 65},
		{Title: "Local Restaurant Lunch", Duration: 90, Cost: 40},
	},
}

// regenThemes is the larger catalog used when a single day is reshuffled.
var regenThemes = []string{
	"Historical Exploration",
	"Cultural Immersion",
	"Food & Culinary",
	"Nature & Outdoors",
	"Art & Museums",
	"Shopping & Markets",
	"Entertainment & Nightlife",
	"Architecture & Landmarks",
	"Local Neighborhoods",
	"Adventure & Sports",
}

var regenActivities = map[string][]ActivityTemplate{
	"Historical Exploration": {
		{Title: "Ancient Ruins Tour", Duration: 120, Cost: 18, Address: "Historic District"},
		{Title: "Heritage Walking Trail", Duration: 90, Cost: 0, Address: "Old Town"},
		{Title: "Historical Museum Visit", Duration: 75, Cost: 15, Address: "Museum Quarter"},
		{Title: "Castle or Fort Exploration", Duration: 150, Cost: 22, Address: "Fortress Area"},
	},
	"Cultural Immersion": {
		{Title: "Traditional Craft Workshop", Duration: 180, Cost: 45, Address: "Artisan Quarter"},
		{Title: "Local Festival Experience", Duration: 120, Cost: 20, Address: "Cultural Center"},
		{Title: "Community Market Visit", Duration: 90, Cost: 25, Address: "Local Market"},
		{Title: "Cultural Performance Show", Duration: 90, Cost: 35, Address: "Theater District"},
	},
	"Food & Culinary": {
		{Title: "Street Food Tour", Duration: 150, Cost: 40, Address: "Food Street"},
		{Title: "Cooking Class Experience", Duration: 180, Cost: 70, Address: "Culinary School"},
		{Title: "Local Restaurant Crawl", Duration: 120, Cost: 55, Address: "Restaurant District"},
		{Title: "Specialty Food Market", Duration: 90, Cost: 30, Address: "Central Market"},
	},
	"Nature & Outdoors": {
		{Title: "City Park Exploration", Duration: 120, Cost: 0, Address: "Central Park"},
		{Title: "Botanical Gardens Visit", Duration: 90, Cost: 12, Address: "Garden District"},
		{Title: "Outdoor Adventure Activity", Duration: 180, Cost: 60, Address: "Adventure Park"},
		{Title: "Scenic Viewpoint Hike", Duration: 150, Cost: 0, Address: "Hilltop Area"},
	},
	"Art & Museums": {
		{Title: "Contemporary Art Gallery", Duration: 90, Cost: 20, Address: "Arts District"},
		{Title: "Science Museum Exploration", Duration: 120, Cost: 25, Address: "Museum Complex"},
		{Title: "Local Artist Studio Tour", Duration: 60, Cost: 15, Address: "Artist Quarter"},
		{Title: "Interactive Exhibition Visit", Duration: 75, Cost: 18, Address: "Cultural Center"},
	},
}

// RegenThemes returns the theme catalog offered for single-day regeneration.
func RegenThemes() []string {
	out := make([]string, len(regenThemes))
	copy(out, regenThemes)
	return out
}

// MainThemes returns the rotating theme catalog used for full generation.
func MainThemes() []string {
	out := make([]string, len(mainThemes))
	copy(out, mainThemes)
	return out
}
