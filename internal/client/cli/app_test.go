package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/messmate/internal/client/api"
	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
	"github.com/dmitrijs2005/messmate/internal/client/services"
	"github.com/dmitrijs2005/messmate/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeSession is a scriptable SessionManager for shell tests.
type fakeSession struct {
	user       *models.User
	loading    bool
	signInErr  error
	signedOut  bool
	lastEmail  string
	lastPwd    string
	lastName   string
	signUpMode bool
}

func (f *fakeSession) Initialize(context.Context) (<-chan error, error) { return nil, nil }

func (f *fakeSession) SignIn(context.Context, string) error { return nil }

func (f *fakeSession) SignInWithPassword(_ context.Context, email, password string) error {
	f.lastEmail, f.lastPwd = email, password
	if f.signInErr != nil {
		return f.signInErr
	}
	f.user = &models.User{ID: 1, Email: email, Name: "Tester"}
	return nil
}

func (f *fakeSession) SignUpWithPassword(_ context.Context, email, password, name string) error {
	f.signUpMode = true
	f.lastEmail, f.lastPwd, f.lastName = email, password, name
	if f.signInErr != nil {
		return f.signInErr
	}
	f.user = &models.User{ID: 2, Email: email, Name: name}
	return nil
}

func (f *fakeSession) SignOut(context.Context) error {
	f.signedOut = true
	f.user = nil
	return nil
}

func (f *fakeSession) UpdateUser(_ context.Context, u *models.User) error {
	f.user = u
	return nil
}

func (f *fakeSession) CurrentUser() *models.User { return f.user }
func (f *fakeSession) IsAuthenticated() bool     { return f.user != nil }
func (f *fakeSession) IsLoading() bool           { return f.loading }
func (f *fakeSession) TokenExpiry() (time.Time, bool) {
	return time.Time{}, false
}

// stubAPI serves canned listing pages through the real services so the
// shell exercises the same wiring as production.
type stubAPI struct {
	mealPage    *models.MealPage
	expensePage *models.ExpensePage
	users       []models.User
	deletedMeal int64
}

func (s *stubAPI) ListMealEntries(context.Context, api.MealQuery) (*models.MealPage, error) {
	return s.mealPage, nil
}

func (s *stubAPI) GetFilterOptions(context.Context) (*models.FilterOptions, error) {
	return &models.FilterOptions{}, nil
}

func (s *stubAPI) CreateMealEntry(_ context.Context, req models.CreateMealEntryRequest) (*models.MealEntry, error) {
	return &models.MealEntry{ID: 77, Amount: req.Amount, Type: req.Type}, nil
}

func (s *stubAPI) UpdateMealEntry(_ context.Context, id int64, _ models.UpdateMealEntryRequest) (*models.MealEntry, error) {
	return &models.MealEntry{ID: id}, nil
}

func (s *stubAPI) DeleteMealEntry(_ context.Context, id int64) error {
	s.deletedMeal = id
	return nil
}

func (s *stubAPI) ListExpenses(context.Context, api.ExpenseQuery) (*models.ExpensePage, error) {
	return s.expensePage, nil
}

func (s *stubAPI) CreateExpense(_ context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	return &models.Expense{ID: 88, Amount: req.Amount, Type: req.Type}, nil
}

func (s *stubAPI) UpdateExpense(_ context.Context, id int64, _ models.UpdateExpenseRequest) (*models.Expense, error) {
	return &models.Expense{ID: id}, nil
}

func (s *stubAPI) DeleteExpense(context.Context, int64) error { return nil }

func (s *stubAPI) GetActiveUsers(context.Context) ([]models.User, error) {
	return s.users, nil
}

func (s *stubAPI) UpdateProfile(context.Context, int64, models.UpdateProfileRequest) error {
	return nil
}

func (s *stubAPI) GetProfile(context.Context) (*models.User, error) {
	return &models.User{ID: 1, Name: "Fresh Name", Email: "me@mess.local"}, nil
}

// newTestApp wires an App around fakes; input feeds the prompt reader and
// the returned buffer captures everything the shell prints.
func newTestApp(t *testing.T, session *fakeSession, stub *stubAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	if stub == nil {
		stub = &stubAPI{}
	}
	if stub.mealPage == nil {
		stub.mealPage = &models.MealPage{Pagination: models.Pagination{Page: 1, Limit: 30}}
	}
	if stub.expensePage == nil {
		stub.expensePage = &models.ExpensePage{Pagination: models.Pagination{Page: 1, Limit: 30}}
	}

	log := testLogger()
	mealSvc := services.NewMealService(stub)
	expenseSvc := services.NewExpenseService(stub)
	userSvc := services.NewUserService(stub, session)

	var out bytes.Buffer
	return &App{
		log:         log,
		session:     session,
		meals:       mealSvc,
		expenses:    expenseSvc,
		users:       userSvc,
		mealSync:    pagination.New(mealSvc.PageFetcher(), log),
		expenseSync: pagination.New(expenseSvc.PageFetcher(), log),
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         &out,
	}, &out
}
