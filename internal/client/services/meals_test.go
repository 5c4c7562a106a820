package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/messmate/internal/client/api"
	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
)

type fakeMealAPI struct {
	lastQuery api.MealQuery
	page      *models.MealPage
	err       error
}

func (f *fakeMealAPI) ListMealEntries(_ context.Context, q api.MealQuery) (*models.MealPage, error) {
	f.lastQuery = q
	return f.page, f.err
}

func (f *fakeMealAPI) GetFilterOptions(context.Context) (*models.FilterOptions, error) {
	return &models.FilterOptions{}, nil
}

func (f *fakeMealAPI) CreateMealEntry(_ context.Context, req models.CreateMealEntryRequest) (*models.MealEntry, error) {
	return &models.MealEntry{ID: 99, Amount: req.Amount, Type: req.Type}, nil
}

func (f *fakeMealAPI) UpdateMealEntry(_ context.Context, id int64, _ models.UpdateMealEntryRequest) (*models.MealEntry, error) {
	return &models.MealEntry{ID: id}, nil
}

func (f *fakeMealAPI) DeleteMealEntry(context.Context, int64) error { return nil }

func TestMealPageFetcher_MapsFilterAndResponse(t *testing.T) {
	fake := &fakeMealAPI{page: &models.MealPage{
		Data:       []models.MealEntry{{ID: 1}, {ID: 2}},
		Pagination: models.Pagination{Page: 1, Limit: 30, Total: 45, TotalPages: 2},
		Stats:      &models.MealStats{TotalEntries: 45},
	}}
	svc := NewMealService(fake)
	fetch := svc.PageFetcher()

	f := pagination.Filter{Month: "2026-08", UserID: 4, SortBy: "date", Order: "desc"}
	page, err := fetch(context.Background(), f, 1, 30)
	require.NoError(t, err)

	assert.Equal(t, "2026-08", fake.lastQuery.Month)
	assert.Equal(t, int64(4), fake.lastQuery.UserID)
	assert.Equal(t, "date", fake.lastQuery.SortBy)
	assert.Equal(t, "desc", fake.lastQuery.Order)
	assert.Equal(t, 1, fake.lastQuery.Page)
	assert.Equal(t, 30, fake.lastQuery.Limit)
	assert.True(t, fake.lastQuery.IncludeStats, "page 1 requests stats")

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 45, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.NotNil(t, page.Stats)
	assert.Equal(t, 45, page.Stats.TotalEntries)
}

func TestMealPageFetcher_NoStatsAfterFirstPage(t *testing.T) {
	fake := &fakeMealAPI{page: &models.MealPage{
		Pagination: models.Pagination{Page: 2, Limit: 20, Total: 45, TotalPages: 2},
	}}
	svc := NewMealService(fake)

	_, err := svc.PageFetcher()(context.Background(), pagination.Filter{}, 2, 20)
	require.NoError(t, err)
	assert.False(t, fake.lastQuery.IncludeStats)
}

func TestMealPageFetcher_PropagatesError(t *testing.T) {
	wantErr := errors.New("listing failed")
	fake := &fakeMealAPI{err: wantErr}
	svc := NewMealService(fake)

	_, err := svc.PageFetcher()(context.Background(), pagination.Filter{}, 1, 30)
	assert.ErrorIs(t, err, wantErr)
}
