package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// Theme prints the current theme, or stores args[0] as the new one.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "theme: %s\n", a.prefs.Theme(ctx))
		return nil
	}
	if err := a.prefs.SetTheme(ctx, models.ThemeMode(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "theme: %s\n", args[0])
	return nil
}

// Biometric prints or toggles the biometric flag. Changing it requires a
// signed-in user.
func (a *App) Biometric(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "biometric: %s\n", onOff(a.prefs.BiometricEnabled(ctx)))
		return nil
	}
	if !a.isLoggedIn() {
		return errors.New("login required")
	}

	var enabled bool
	switch args[0] {
	case "on":
		enabled = true
	case "off":
	default:
		return errors.New("usage: biometric [on|off]")
	}

	if err := a.prefs.SetBiometricEnabled(ctx, enabled); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "biometric: %s\n", onOff(enabled))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
