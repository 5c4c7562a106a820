package services

import (
	"context"

	"github.com/dmitrijs2005/messmate/internal/client/models"
	"github.com/dmitrijs2005/messmate/internal/common"
)

// UserAPI is the slice of the API client the user service uses.
type UserAPI interface {
	GetActiveUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) error
	GetProfile(ctx context.Context) (*models.User, error)
}

// UserService exposes the member directory and profile editing.
type UserService struct {
	api     UserAPI
	session SessionManager
}

// NewUserService constructs a UserService. The session is updated after a
// successful profile edit so the cached identity stays in sync.
func NewUserService(api UserAPI, session SessionManager) *UserService {
	return &UserService{api: api, session: session}
}

// ActiveUsers returns the active member directory.
func (s *UserService) ActiveUsers(ctx context.Context) ([]models.User, error) {
	return s.api.GetActiveUsers(ctx)
}

// UpdateProfile patches the current user's profile on the server, then
// refetches it and pushes the fresh copy into the session.
func (s *UserService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	user := s.session.CurrentUser()
	if user == nil {
		return common.ErrNotSignedIn
	}
	if err := s.api.UpdateProfile(ctx, user.ID, req); err != nil {
		return err
	}
	fresh, err := s.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	return s.session.UpdateUser(ctx, fresh)
}
