package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/messmate/internal/client/api"
	"github.com/dmitrijs2005/messmate/internal/client/config"
	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/client/pagination"
	"github.com/dmitrijs2005/messmate/internal/client/services"
	"github.com/dmitrijs2005/messmate/internal/client/storage"
	"github.com/dmitrijs2005/messmate/internal/cryptox"
	"github.com/dmitrijs2005/messmate/internal/filex"
	"github.com/dmitrijs2005/messmate/internal/logging"
)

const (
	databaseFile = "messmate.db"
	keyFile      = "local.key"
	saltFile     = "local.salt"
)

// App wires the shell together: configuration, local storage, the API
// client, the session, the domain services and the two on-screen
// collection synchronizers.
type App struct {
	config *config.Config
	log    logging.Logger
	stores *storage.Stores

	session  services.SessionManager
	meals    *services.MealService
	expenses *services.ExpenseService
	users    *services.UserService

	mealSync    *pagination.Synchronizer[models.MealEntry, models.MealStats]
	expenseSync *pagination.Synchronizer[models.Expense, struct{}]

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds a ready-to-run App: the data directory and key material
// are created on first use, the local database is opened and migrated,
// and all services are wired against the configured API endpoint.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	keyMaterial, err := filex.LoadOrCreateKey(filepath.Join(dir, keyFile), 32)
	if err != nil {
		return nil, fmt.Errorf("load key material: %w", err)
	}
	salt, err := filex.LoadOrCreateKey(filepath.Join(dir, saltFile), 16)
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}
	sealKey := cryptox.DeriveSealKey(keyMaterial, salt)

	stores, err := storage.Open(ctx, filepath.Join(dir, databaseFile), sealKey)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	apiClient := api.New(cfg.APIBaseURL, cfg.RequestTimeout, log)

	session := services.NewSession(apiClient, stores.Secrets, stores.Cache, log)
	mealSvc := services.NewMealService(apiClient)
	expenseSvc := services.NewExpenseService(apiClient)
	userSvc := services.NewUserService(apiClient, session)

	return &App{
		config:      cfg,
		log:         log,
		stores:      stores,
		session:     session,
		meals:       mealSvc,
		expenses:    expenseSvc,
		users:       userSvc,
		mealSync:    pagination.New(mealSvc.PageFetcher(), log),
		expenseSync: pagination.New(expenseSvc.PageFetcher(), log),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	done, err := a.session.Initialize(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Stored session could not be restored: %v\n", err)
	}
	if done != nil {
		// Revalidation runs in the background; surface its outcome without
		// blocking the prompt.
		go func() {
			if err := <-done; err != nil {
				a.log.Warn(ctx, "session revalidation", "error", err)
			}
		}()
	}

	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", u.DisplayName())
	}

	a.Root(ctx)
	return nil
}

// Close releases the local database.
func (a *App) Close() {
	if a.stores != nil {
		if err := a.stores.Close(); err != nil {
			a.log.Error(context.Background(), "close storage", "error", err)
		}
	}
}
