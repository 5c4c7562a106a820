package services

import (
	"context"

	"github.com/dmitrijs2005/messmate/internal/client/api"
	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
)

// ExpenseAPI is the slice of the API client the expense service uses.
type ExpenseAPI interface {
	ListExpenses(ctx context.Context, q api.ExpenseQuery) (*models.ExpensePage, error)
	CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, req models.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

// ExpenseService exposes the expense ledger.
type ExpenseService struct {
	api ExpenseAPI
}

// NewExpenseService constructs an ExpenseService over the given API slice.
func NewExpenseService(api ExpenseAPI) *ExpenseService {
	return &ExpenseService{api: api}
}

// PageFetcher adapts the list endpoint to the pagination contract.
// Expense listings carry no server stats; the stats type is struct{}.
func (s *ExpenseService) PageFetcher() pagination.FetchFunc[models.Expense, struct{}] {
	return func(ctx context.Context, f pagination.Filter, page, limit int) (*pagination.Page[models.Expense, struct{}], error) {
		q := api.ExpenseQuery{
			Month:  f.Month,
			UserID: f.UserID,
			Type:   f.Type,
			SortBy: f.SortBy,
			Order:  f.Order,
			Page:   page,
			Limit:  limit,
		}
		resp, err := s.api.ListExpenses(ctx, q)
		if err != nil {
			return nil, err
		}
		return &pagination.Page[models.Expense, struct{}]{
			Items:      resp.Data,
			Number:     resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalItems: resp.Pagination.Total,
			TotalPages: resp.Pagination.TotalPages,
		}, nil
	}
}

// Create adds an expense for the authenticated user.
func (s *ExpenseService) Create(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	return s.api.CreateExpense(ctx, req)
}

// Update patches an expense.
func (s *ExpenseService) Update(ctx context.Context, id int64, req models.UpdateExpenseRequest) (*models.Expense, error) {
	return s.api.UpdateExpense(ctx, id, req)
}

// Delete removes an expense.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteExpense(ctx, id)
}
