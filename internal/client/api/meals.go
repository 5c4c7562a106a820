package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/messmate/internal/client/models"
)

// MealQuery scopes one GET /meal-entries request. Zero-valued fields are
// omitted from the query string.
type MealQuery struct {
	Month        string
	UserID       int64
	SortBy       string
	Order        string
	Page         int
	Limit        int
	IncludeStats bool
}

func (q MealQuery) values() url.Values {
	v := url.Values{}
	if q.Month != "" {
		v.Set("month", q.Month)
	}
	if q.UserID != 0 {
		v.Set("userId", strconv.FormatInt(q.UserID, 10))
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
	if q.IncludeStats {
		v.Set("includeStats", "true")
	}
	return v
}

// ListMealEntries fetches one page of meal entries.
func (c *Client) ListMealEntries(ctx context.Context, q MealQuery) (*models.MealPage, error) {
	var page models.MealPage
	if err := c.do(ctx, http.MethodGet, "/meal-entries", q.values(), nil, &page); err != nil {
		return nil, fmt.Errorf("list meal entries: %w", err)
	}
	return &page, nil
}

// GetFilterOptions fetches picker values for months, users and entry types.
func (c *Client) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var opts models.FilterOptions
	if err := c.do(ctx, http.MethodGet, "/meal-entries/filter-options", nil, nil, &opts); err != nil {
		return nil, fmt.Errorf("get filter options: %w", err)
	}
	return &opts, nil
}

// CreateMealEntry adds a meal log row for the authenticated user.
func (c *Client) CreateMealEntry(ctx context.Context, req models.CreateMealEntryRequest) (*models.MealEntry, error) {
	var entry models.MealEntry
	if err := c.do(ctx, http.MethodPost, "/meal-entries", nil, req, &entry); err != nil {
		return nil, fmt.Errorf("create meal entry: %w", err)
	}
	return &entry, nil
}

// UpdateMealEntry patches an existing meal entry.
func (c *Client) UpdateMealEntry(ctx context.Context, id int64, req models.UpdateMealEntryRequest) (*models.MealEntry, error) {
	var entry models.MealEntry
	path := fmt.Sprintf("/meal-entries/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &entry); err != nil {
		return nil, fmt.Errorf("update meal entry: %w", err)
	}
	return &entry, nil
}

// DeleteMealEntry removes a meal entry.
func (c *Client) DeleteMealEntry(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/meal-entries/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete meal entry: %w", err)
	}
	return nil
}
