package models

import "time"

// ExpenseType classifies an expense entry.
type ExpenseType string

const (
	ExpenseBazar ExpenseType = "BAZAR"
	ExpenseOther ExpenseType = "OTHER"
)

// Expense is one shared-expense row.
type Expense struct {
	ID              int64       `json:"id"`
	Date            string      `json:"date"`
	Note            string      `json:"note"`
	Amount          float64     `json:"amount"`
	UserID          int64       `json:"userId"`
	Type            ExpenseType `json:"type"`
	CreatedAt       time.Time   `json:"createdAt"`
	User            *User       `json:"user,omitempty"`
	SharedExpenseID *int64      `json:"sharedExpenseId,omitempty"`
}

// Key returns the expense's identity for collection deduplication.
func (e Expense) Key() int64 { return e.ID }

// CreateExpenseRequest is the body of POST /expenses.
type CreateExpenseRequest struct {
	Date   string      `json:"date,omitempty"`
	Note   string      `json:"note"`
	Amount float64     `json:"amount"`
	Type   ExpenseType `json:"type"`
}

// UpdateExpenseRequest is the body of PATCH /expenses/:id.
type UpdateExpenseRequest struct {
	Date   string      `json:"date,omitempty"`
	Note   *string     `json:"note,omitempty"`
	Amount *float64    `json:"amount,omitempty"`
	Type   ExpenseType `json:"type,omitempty"`
}
