package response_models

type StopResponse struct {
	ID           string  `json:"id"`
	StopIndex    int     `json:"stop_index"`
	Title        string  `json:"title"`
	Address      string  `json:"address"`
	StartTime    string  `json:"start_time"`
	DurationMins int     `json:"duration_mins"`
	EstCost      float64 `json:"est_cost"`
	URL          string  `json:"url,omitempty"`
}

type DayResponse struct {
	ID        string         `json:"id"`
	DayIndex  int            `json:"day_index"`
	Theme     string         `json:"theme"`
	TotalCost float64        `json:"total_cost"`
	Stops     []StopResponse `json:"stops"`
}

type TripResponse struct {
	ID         string        `json:"id"`
	OwnerID    string        `json:"owner_id,omitempty"`
	City       string        `json:"city"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	BudgetBand string        `json:"budget_band"`
	Pace       string        `json:"pace"`
	FoodPrefs  []string      `json:"food_prefs"`
	Days       []DayResponse `json:"days,omitempty"`
}
