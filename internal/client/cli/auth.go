package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anunciabr/anuncia/internal/client/api"
	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/client/session"
	"github.com/anunciabr/anuncia/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for the account details and creates a new account.
// A successful registration logs the account in and lands on its role
// dashboard. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	a.nav.Navigate(nav.RouteRegister)

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
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
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}

	rawType, err := getSimpleText(a.reader, "Account type: user or agency (default user)", os.Stdout)
	if err != nil {
		return err
	}
	role, ok := models.ParseRole(rawType)
	if !ok || role == models.RoleAdmin {
		printlnFn("Invalid account type:", rawType)
		return common.ErrInvalidRole
	}

	user, err := a.sessions.Register(ctx, &api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: string(password),
		Phone:    phone,
		Type:     string(role),
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	a.nav.Navigate(nav.HomeFor(user.Role))
	return nil
}

// Login prompts for credentials and authenticates. On success the user
// lands on the dashboard of their role. On failure any existing session is
// left untouched. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.nav.Navigate(nav.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	a.nav.Navigate(nav.HomeFor(user.Role))
	return nil
}

// Logout clears the session and returns to the public home view.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	printlnFn("Logged out.")
	a.nav.Navigate(nav.RouteHome)
	return nil
}

// Whoami prints the current account and, when the token carries an expiry
// claim, how long the session is still good for.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sessions.User()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrNotAuthenticated
	}

	printlnFn(fmt.Sprintf("%s <%s> (%s)", u.Name, u.Email, u.Role))
	if u.Phone != "" {
		printlnFn("Phone:", u.Phone)
	}
	if exp, ok := session.TokenExpiry(a.sessions.Token()); ok {
		printlnFn(fmt.Sprintf("Session valid for %s", time.Until(exp).Round(time.Minute)))
	}
	return nil
}

// EditProfile updates name and phone on the backend and in the local
// session. Empty input keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.sessions.User()
	if u == nil {
		printlnFn("You need to log in first.")
		return common.ErrNotAuthenticated
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", u.Name), os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", u.Phone), os.Stdout)
	if err != nil {
		return err
	}

	edited := *u
	if name != "" {
		edited.Name = name
	}
	if phone != "" {
		edited.Phone = phone
	}

	updated, err := a.api.UpdateProfile(ctx, &edited)
	if err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}
	if err := a.sessions.UpdateUser(ctx, updated); err != nil {
		return err
	}

	printlnFn("Profile updated.")
	return nil
}
