package request_models

type CreateTripRequest struct {
	City       string   `json:"city" binding:"required"`
	StartDate  string   `json:"startDate" binding:"required"`
	EndDate    string   `json:"endDate" binding:"required"`
	BudgetBand string   `json:"budgetBand" binding:"required,oneof=tight medium comfortable"`
	Pace       string   `json:"pace" binding:"required,oneof=relaxed packed"`
	FoodPrefs  []string `json:"foodPrefs"`
	OwnerID    string   `json:"ownerId"`
}

type UpdateTripRequest struct {
	BudgetBand string   `json:"budgetBand" binding:"omitempty,oneof=tight medium comfortable"`
	Pace       string   `json:"pace" binding:"omitempty,oneof=relaxed packed"`
	FoodPrefs  []string `json:"foodPrefs"`
}

type RegenerateDayRequest struct {
	TripID   string `json:"tripId" binding:"required,uuid4"`
	DayID    string `json:"dayId" binding:"required,uuid4"`
	DayIndex int    `json:"dayIndex" binding:"required,min=1"`
	City     string `json:"city" binding:"required"`
	Budget   string `json:"budget" binding:"required,oneof=tight medium comfortable"`
	Pace     string `json:"pace" binding:"required,oneof=relaxed packed"`
	Theme    string `json:"theme"`
}
