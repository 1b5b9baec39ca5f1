package db_models

import (
	"trailmix/internal/models/response_models"
)

const dateLayout = "2006-01-02"

// BuildTripResponse flattens a trip and its preloaded days/stops into the API
// shape. Day totals are summed here so the displayed total always matches the
// per-stop costs.
func BuildTripResponse(t *Trip) *response_models.TripResponse {
	out := &response_models.TripResponse{
		ID:         t.ID.String(),
		City:       t.City,
		StartDate:  t.StartDate.Format(dateLayout),
		EndDate:    t.EndDate.Format(dateLayout),
		BudgetBand: t.BudgetBand,
		Pace:       t.Pace,
		FoodPrefs:  t.FoodPrefs,
	}
	if t.OwnerID != nil {
		out.OwnerID = t.OwnerID.String()
	}
	if out.FoodPrefs == nil {
		out.FoodPrefs = []string{}
	}

	for i := range t.Days {
		out.Days = append(out.Days, *BuildDayResponse(&t.Days[i]))
	}
	return out
}

func BuildDayResponse(d *TripDay) *response_models.DayResponse {
	day := &response_models.DayResponse{
		ID:       d.ID.String(),
		DayIndex: d.DayIndex,
		Theme:    d.Theme,
		Stops:    make([]response_models.StopResponse, 0, len(d.Stops)),
	}
	for _, s := range d.Stops {
		day.TotalCost += s.EstCost
		day.Stops = append(day.Stops, response_models.StopResponse{
			ID:           s.ID.String(),
			StopIndex:    s.StopIndex,
			Title:        s.Title,
			Address:      s.Address,
			StartTime:    s.StartTime,
			DurationMins: s.DurationMins,
			EstCost:      s.EstCost,
			URL:          s.URL,
		})
	}
	return day
}
