package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/messmate/internal/client/models"
)

// ExpenseQuery scopes one GET /expenses request.
type ExpenseQuery struct {
	Month  string
	UserID int64
	Type   string
	SortBy string
	Order  string
	Page   int
	Limit  int
}

func (q ExpenseQuery) values() url.Values {
	v := url.Values{}
	if q.Month != "" {
		v.Set("month", q.Month)
	}
	if q.UserID != 0 {
		v.Set("userId", strconv.FormatInt(q.UserID, 10))
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Page != 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit != 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// ListExpenses fetches one page of expenses.
func (c *Client) ListExpenses(ctx context.Context, q ExpenseQuery) (*models.ExpensePage, error) {
	var page models.ExpensePage
	if err := c.do(ctx, http.MethodGet, "/expenses", q.values(), nil, &page); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return &page, nil
}

// CreateExpense adds an expense row for the authenticated user.
func (c *Client) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	var e models.Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", nil, req, &e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &e, nil
}

// UpdateExpense patches an existing expense.
func (c *Client) UpdateExpense(ctx context.Context, id int64, req models.UpdateExpenseRequest) (*models.Expense, error) {
	var e models.Expense
	path := fmt.Sprintf("/expenses/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &e); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return &e, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/expenses/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
