package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messmate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for credentials and establishes a session. While the
// restored session is still being validated, sign-in is refused to avoid
// racing the background revalidation.
//
// The password byte slice is securely wiped before returning.
func (a *App) SignIn(ctx context.Context) error {
	if a.session.IsLoading() {
		fmt.Fprintln(a.out, "Session is still being validated, try again in a moment")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignInWithPassword(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			fmt.Fprintln(a.out, "Invalid email or password")
		case errors.Is(err, common.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable, try again later")
		default:
			fmt.Fprintf(a.out, "Sign in failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.CurrentUser().DisplayName())
	return nil
}

// SignUp prompts for the new account's details and registers it. The
// issued token is adopted right away, so a successful sign-up leaves the
// user signed in.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignUpWithPassword(ctx, email, string(password), name); err != nil {
		fmt.Fprintf(a.out, "Sign up failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.CurrentUser().DisplayName())
	return nil
}

// SignOut tears the session down and forgets the on-screen listings.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// WhoAmI prints the current user, if any.
func (a *App) WhoAmI() {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s status=%s\n", u.DisplayName(), u.Email, u.Role, u.Status)
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Token expires %s\n", exp.Format("2006-01-02 15:04:05"))
	}
}
