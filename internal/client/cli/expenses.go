package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
)

// ShowExpenses loads the expense listing for the given month and prints
// the first page.
func (a *App) ShowExpenses(ctx context.Context, month string) error {
	f := pagination.Filter{Month: month, SortBy: "date", Order: "desc"}
	if err := a.expenseSync.Load(ctx, f); err != nil {
		fmt.Fprintf(a.out, "Could not load expenses: %v\n", err)
		return err
	}
	a.printExpenses()
	return nil
}

// MoreExpenses fetches and prints the next page of the expense listing.
func (a *App) MoreExpenses(ctx context.Context) error {
	if !a.expenseSync.HasMore() {
		fmt.Fprintln(a.out, "No more expenses")
		return nil
	}
	if err := a.expenseSync.LoadMore(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not load more expenses: %v\n", err)
		return err
	}
	a.printExpenses()
	return nil
}

// RefreshExpenses refetches the current expense listing from page 1.
func (a *App) RefreshExpenses(ctx context.Context) error {
	if err := a.expenseSync.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not refresh expenses: %v\n", err)
		return err
	}
	a.printExpenses()
	return nil
}

// AddExpense prompts for an expense and creates it.
func (a *App) AddExpense(ctx context.Context) error {
	amountStr, err := getSimpleText(a.reader, "Enter amount", a.out)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Amount must be a number")
		return err
	}

	typeStr, err := getSimpleText(a.reader, "Enter type (BAZAR/OTHER)", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Enter date YYYY-MM-DD (empty for today)", a.out)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Enter note", a.out)
	if err != nil {
		return err
	}

	req := models.CreateExpenseRequest{
		Date:   date,
		Note:   note,
		Amount: amount,
		Type:   models.ExpenseType(strings.ToUpper(typeStr)),
	}
	e, err := a.expenses.Create(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Could not add expense: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Added expense #%d\n", e.ID)

	return a.RefreshExpenses(ctx)
}

// DeleteExpense removes the expense with the given id.
func (a *App) DeleteExpense(ctx context.Context, idStr string) error {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delexpense <id>")
		return err
	}
	if err := a.expenses.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete expense: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted expense #%d\n", id)

	return a.RefreshExpenses(ctx)
}

func (a *App) printExpenses() {
	items := a.expenseSync.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No expenses")
		return
	}
	var total float64
	for _, e := range items {
		owner := ""
		if e.User != nil {
			owner = e.User.DisplayName()
		}
		fmt.Fprintf(a.out, "#%-5d %-10s %-6s %8.2f  %-15s %s\n",
			e.ID, e.Date, e.Type, e.Amount, owner, e.Note)
		total += e.Amount
	}
	fmt.Fprintf(a.out, "Showing %d of %d (sum %.2f)", len(items), a.expenseSync.TotalItems(), total)
	if a.expenseSync.HasMore() {
		fmt.Fprint(a.out, " (type 'emore' for the next page)")
	}
	fmt.Fprintln(a.out)
}
