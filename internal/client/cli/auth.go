package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkrasnov/authapi/internal/client/client"
	"github.com/dkrasnov/authapi/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. A taken username is reported to the
// user; other errors are returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, userName, password); err != nil {
		if errors.Is(err, client.ErrUsernameTaken) {
			printlnFn("Username already exists, pick another one")
			return err
		}
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the issued token and the username are kept in memory for the
// rest of the session. The password is securely wiped before returning.
// Invalid credentials are reported without revealing which part was wrong,
// because the server does not reveal it either.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, userName, password)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrInvalidCredentials):
			printlnFn("Invalid username or password")
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable, try again later")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	a.token = token
	a.userName = userName
	printlnFn("Logged in as", userName)
	return nil
}

// ShowToken prints the token issued at login.
func (a *App) ShowToken(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(a.token)
	return nil
}

// Ping checks server reachability and reports the result.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		printlnFn(fmt.Sprintf("Server unreachable: %s", err.Error()))
		return err
	}
	printlnFn("Server is up")
	return nil
}

// Logout drops the in-memory token and username.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
