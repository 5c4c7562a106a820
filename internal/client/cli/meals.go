package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
)

// ShowMeals loads the meal listing for the given month ("" means the
// server default, the current month) and prints the first page.
func (a *App) ShowMeals(ctx context.Context, month string) error {
	f := pagination.Filter{Month: month, SortBy: "date", Order: "desc"}
	if err := a.mealSync.Load(ctx, f); err != nil {
		fmt.Fprintf(a.out, "Could not load meals: %v\n", err)
		return err
	}
	a.printMeals()
	return nil
}

// MoreMeals fetches and prints the next page of the current meal listing.
func (a *App) MoreMeals(ctx context.Context) error {
	if !a.mealSync.HasMore() {
		fmt.Fprintln(a.out, "No more entries")
		return nil
	}
	if err := a.mealSync.LoadMore(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load more meals: %v\n", err)
		return err
	}
	a.printMeals()
	return nil
}

// RefreshMeals refetches the current meal listing from page 1.
func (a *App) RefreshMeals(ctx context.Context) error {
	if err := a.mealSync.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not refresh meals: %v\n", err)
		return err
	}
	a.printMeals()
	return nil
}

// MealStats prints the server-computed summary for the current filter.
func (a *App) MealStats() {
	s := a.mealSync.Stats()
	fmt.Fprintf(a.out, "Entries: %d  Total meals: %.1f\n", s.TotalEntries, s.TotalMeals)
	fmt.Fprintf(a.out, "Today: %.1f  This week: %.1f  This month: %.1f  Avg/day: %.2f\n",
		s.TodayMeals, s.WeeklyMeals, s.MonthlyMeals, s.AveragePerDay)
	if s.UserMeals != nil {
		fmt.Fprintf(a.out, "Selected user: %.1f\n", s.UserMealCount())
	}
}

// AddMeal prompts for a meal entry and creates it, then refreshes the
// listing so the new row shows up.
func (a *App) AddMeal(ctx context.Context) error {
	amountStr, err := getSimpleText(a.reader, "Enter amount (e.g. 1 or 0.5)", a.out)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Amount must be a number")
		return err
	}

	typeStr, err := getSimpleText(a.reader, "Enter type (BREAKFAST/LUNCH/DINNER/SHAHUR)", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Enter date YYYY-MM-DD (empty for today)", a.out)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Enter note (optional)", a.out)
	if err != nil {
		return err
	}

	req := models.CreateMealEntryRequest{
		Date:   date,
		Amount: amount,
		Note:   note,
		Type:   models.MealType(strings.ToUpper(typeStr)),
	}
	entry, err := a.meals.Create(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add meal: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Added meal entry #%d\n", entry.ID)

	return a.RefreshMeals(ctx)
}

// DeleteMeal removes the entry with the given id and refreshes the listing.
func (a *App) DeleteMeal(ctx context.Context, idStr string) error {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delmeal <id>")
		return err
	}
	if err := a.meals.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete meal entry: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted meal entry #%d\n", id)

	return a.RefreshMeals(ctx)
}

func (a *App) printMeals() {
	items := a.mealSync.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No meal entries")
		return
	}
	for _, m := range items {
		owner := ""
		if m.User != nil {
			owner = m.User.DisplayName()
		}
		fmt.Fprintf(a.out, "#%-5d %-10s %-9s %5.1f  %-15s %s\n",
			m.ID, m.Date, m.Type, m.Amount, owner, m.Note)
	}
	fmt.Fprintf(a.out, "Showing %d of %d", len(items), a.mealSync.TotalItems())
	if a.mealSync.HasMore() {
		fmt.Fprint(a.out, " (type 'more' for the next page)")
	}
	fmt.Fprintln(a.out)
}
