package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	OwnerID    *uuid.UUID
	City       string
	StartDate  time.Time
	EndDate    time.Time
	BudgetBand string
	Pace       string
	FoodPrefs  pq.StringArray `gorm:"type:text[]"`

	Days []TripDay
}

type TripDay struct {
	BaseModel
	TripID   uuid.UUID `gorm:"index"`
	DayIndex int
	Theme    string

	Stops []TripStop
}

type TripStop struct {
	BaseModel
	TripDayID    uuid.UUID `gorm:"index"`
	StopIndex    int
	Title        string
	Address      string
	StartTime    string
	DurationMins int
	EstCost      float64
	URL          string
}
