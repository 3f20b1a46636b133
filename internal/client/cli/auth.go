package cli

import (
	"context"
	"os"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Signup prompts for a username, an email and a password and attempts to
// create a new account via the engine. The outcome reaches the user through
// the engine's notice; the error return is for callers that need it.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	return a.engine.SignUp(ctx, username, email, string(password))
}

// Login prompts for credentials and authenticates. On success the engine
// loads the profile, own posts, the feed, and the follower count before
// control returns to the REPL.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	return a.engine.SignIn(ctx, email, string(password))
}

// Logout ends the session and resets all published state.
func (a *App) Logout(ctx context.Context) error {
	a.engine.SignOut(ctx)
	return nil
}
