package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/messmate/internal/client/models"
)

// UpdateName changes the current user's display name.
func (a *App) UpdateName(ctx context.Context, name string) error {
	if err := a.users.UpdateProfile(ctx, models.UpdateProfileRequest{Name: name}); err != nil {
		fmt.Fprintf(a.out, "Could not update profile: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Profile updated, hello %s\n", a.session.CurrentUser().DisplayName())
	return nil
}

// ShowUsers prints the active member directory.
func (a *App) ShowUsers(ctx context.Context) error {
	users, err := a.users.ActiveUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load users: %v\n", err)
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No active members")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "#%-4d %-20s %-30s %s\n", u.ID, u.DisplayName(), u.Email, u.Role)
	}
	return nil
}
