package models

// FilterOption is a value/label pair for a picker.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UserOption is a user directory row trimmed down for pickers.
type UserOption struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FilterOptions is the GET /meal-entries/filter-options response.
type FilterOptions struct {
	Months       []FilterOption `json:"months"`
	Users        []UserOption   `json:"users"`
	ExpenseTypes []FilterOption `json:"expenseTypes"`
	MealTypes    []FilterOption `json:"mealTypes"`
}
