package services

import (
	"context"

	"github.com/dmitrijs2005/messmate/internal/client/api"
	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
)

// MealAPI is the slice of the API client the meal service uses.
type MealAPI interface {
	ListMealEntries(ctx context.Context, q api.MealQuery) (*models.MealPage, error)
	GetFilterOptions(ctx context.Context) (*models.FilterOptions, error)
	CreateMealEntry(ctx context.Context, req models.CreateMealEntryRequest) (*models.MealEntry, error)
	UpdateMealEntry(ctx context.Context, id int64, req models.UpdateMealEntryRequest) (*models.MealEntry, error)
	DeleteMealEntry(ctx context.Context, id int64) error
}

// MealService exposes the meal log: a page fetcher for the collection
// synchronizer plus the mutating operations.
type MealService struct {
	api MealAPI
}

// NewMealService constructs a MealService over the given API slice.
func NewMealService(api MealAPI) *MealService {
	return &MealService{api: api}
}

// PageFetcher adapts the list endpoint to the pagination contract. Stats
// are requested only on page 1; later pages never carry them.
func (s *MealService) PageFetcher() pagination.FetchFunc[models.MealEntry, models.MealStats] {
	return func(ctx context.Context, f pagination.Filter, page, limit int) (*pagination.Page[models.MealEntry, models.MealStats], error) {
		q := api.MealQuery{
			Month:        f.Month,
			UserID:       f.UserID,
			SortBy:       f.SortBy,
			Order:        f.Order,
			Page:         page,
			Limit:        limit,
			IncludeStats: page == 1,
		}
		resp, err := s.api.ListMealEntries(ctx, q)
		if err != nil {
			return nil, err
		}
		return &pagination.Page[models.MealEntry, models.MealStats]{
			Items:      resp.Data,
			Number:     resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalItems: resp.Pagination.Total,
			TotalPages: resp.Pagination.TotalPages,
			Stats:      resp.Stats,
		}, nil
	}
}

// FilterOptions fetches the available months, users and meal types.
func (s *MealService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return s.api.GetFilterOptions(ctx)
}

// Create adds a meal entry for the authenticated user.
func (s *MealService) Create(ctx context.Context, req models.CreateMealEntryRequest) (*models.MealEntry, error) {
	return s.api.CreateMealEntry(ctx, req)
}

// Update patches a meal entry.
func (s *MealService) Update(ctx context.Context, id int64, req models.UpdateMealEntryRequest) (*models.MealEntry, error) {
	return s.api.UpdateMealEntry(ctx, id, req)
}

// Delete removes a meal entry.
func (s *MealService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteMealEntry(ctx, id)
}
