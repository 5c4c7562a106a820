package models

// Pagination is the server's cursor block attached to every list response.
// Total and TotalPages are authoritative for the whole filtered collection.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// MealPage is one GET /meal-entries response. Stats is present only when
// includeStats was requested; the server returns identical stats on every
// page of the same filter.
type MealPage struct {
	Data       []MealEntry `json:"data"`
	Pagination Pagination  `json:"pagination"`
	Stats      *MealStats  `json:"stats,omitempty"`
}

// ExpensePage is one GET /expenses response.
type ExpensePage struct {
	Data       []Expense  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
