package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) prompt(reader *bufio.Reader, text string) (string, error) {
	return getSimpleText(reader, text, a.out)
}

// askPassword reads a password and returns it as a string, wiping the
// temporary buffer.
func (a *App) askPassword(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Login prompts for credentials and signs in through the session store.
// A rejected login is reported through the store's error, not returned.
func (a *App) Login(ctx context.Context) error {
	userName, err := a.prompt(a.reader, "Enter username")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password")
	if err != nil {
		return err
	}

	if a.store.Login(ctx, models.LoginCredentials{Username: userName, Password: password}) {
		fmt.Fprintln(a.out, "Login successful")
	}
	return nil
}

// Register prompts for the new account's details and signs in as the new
// user on success. First and last name may be left empty.
func (a *App) Register(ctx context.Context) error {
	var creds models.RegisterCredentials
	var err error

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter username", &creds.Username},
		{"Enter email", &creds.Email},
		{"Enter first name (optional)", &creds.FirstName},
		{"Enter last name (optional)", &creds.LastName},
	} {
		if *f.dst, err = a.prompt(a.reader, f.prompt); err != nil {
			return err
		}
	}

	if creds.Password, err = a.askPassword("Password"); err != nil {
		return err
	}
	if creds.ConfirmPassword, err = a.askPassword("Confirm password"); err != nil {
		return err
	}

	if a.store.Register(ctx, creds) {
		fmt.Fprintln(a.out, "Success!")
	}
	return nil
}

// Logout always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := a.prompt(a.reader, "Enter email")
	if err != nil {
		return err
	}
	if a.store.ForgotPassword(ctx, email) {
		fmt.Fprintf(a.out, "Password reset instructions sent to %s\n", email)
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	st := a.store.State()
	if st.User == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	u := st.User
	fmt.Fprintf(a.out, "%s (%s)\n", u.DisplayName(), u.Username)
	if u.Email != "" {
		verified := "unverified"
		if u.IsEmailVerified {
			verified = "verified"
		}
		fmt.Fprintf(a.out, "email: %s, %s\n", u.Email, verified)
	}
	if u.Role != "" {
		fmt.Fprintf(a.out, "role: %s\n", u.Role)
	}
	return nil
}
