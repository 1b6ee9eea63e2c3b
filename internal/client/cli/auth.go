package cli

import (
	"context"
	"fmt"

	"github.com/apetrenko/eventhub/internal/client/validation"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to the interactive input helpers and can
// be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts for credentials and authenticates. On success the
// service has already established the session (user record plus any
// returned token in one step); the shell just clears stale error state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	user, err := a.users.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.lastErr = ""
	fmt.Fprintf(a.out, "Successfully logged in! Welcome back, %s.\n", user.Username)
	return nil
}

// Register prompts for a new account, validates it locally, and submits
// it. A validation failure surfaces synchronously and no request is
// issued.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password (at least 8 characters)", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	candidate := validation.Registration{
		Username: username,
		Email:    email,
		Password: password,
		Confirm:  confirm,
	}
	if err := validation.ValidateRegistration(candidate); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	user, err := a.users.Register(ctx, username, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.lastErr = ""
	fmt.Fprintf(a.out, "Account created successfully! Welcome, %s.\n", user.Username)
	return nil
}

// Logout asks for confirmation, then clears the session and every view
// that only makes sense when signed in.
func (a *App) Logout(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "Are you sure you want to logout?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "logout: session clear failed", "error", err)
	}
	a.dashboard = false
	a.favorites = nil
	a.stats = favoriteStats{}
	a.results = nil
	a.lastErr = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
