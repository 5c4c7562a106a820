package models

import "time"

// MealType classifies a meal entry.
type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealShahur    MealType = "SHAHUR"
)

// MealEntry is one meal log row. Date carries no time component and is
// formatted YYYY-MM-DD on the wire.
type MealEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note,omitempty"`
	UserID    int64     `json:"userId"`
	Type      MealType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *User     `json:"user,omitempty"`
}

// Key returns the entry's identity for collection deduplication.
func (m MealEntry) Key() int64 { return m.ID }

// MealStats is the server-computed summary for one meals filter.
// UserMeals is null when no user filter is active; callers treat that as 0.
type MealStats struct {
	TotalEntries  int      `json:"totalEntries"`
	TotalMeals    float64  `json:"totalMeals"`
	TodayMeals    float64  `json:"todayMeals"`
	WeeklyMeals   float64  `json:"weeklyMeals"`
	MonthlyMeals  float64  `json:"monthlyMeals"`
	AveragePerDay float64  `json:"averagePerDay"`
	UserMeals     *float64 `json:"userMeals"`
}

// UserMealCount returns UserMeals with null collapsed to 0.
func (s MealStats) UserMealCount() float64 {
	if s.UserMeals == nil {
		return 0
	}
	return *s.UserMeals
}

// CreateMealEntryRequest is the body of POST /meal-entries. Date defaults
// to today on the server when empty.
type CreateMealEntryRequest struct {
	Date   string   `json:"date,omitempty"`
	Amount float64  `json:"amount"`
	Note   string   `json:"note,omitempty"`
	Type   MealType `json:"type"`
}

// UpdateMealEntryRequest is the body of PATCH /meal-entries/:id. Zero-value
// fields are omitted and left unchanged by the server.
type UpdateMealEntryRequest struct {
	Date   string   `json:"date,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Note   *string  `json:"note,omitempty"`
	Type   MealType `json:"type,omitempty"`
}
