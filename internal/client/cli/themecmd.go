package cli

import (
	"context"
	"fmt"

	"github.com/streetbite/streetbite/internal/client/theme"
)

// Theme shows or changes the display preference:
//
//	theme              show preference and resolved scheme
//	theme toggle       switch to the opposite of the resolved scheme
//	theme <value>      set light, dark or system explicitly
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Printf("theme: %s (resolved: %s)\n", a.themes.Preference(), a.themes.ColorScheme())
		return nil
	}

	if args[0] == "toggle" {
		if err := a.themes.Toggle(ctx); err != nil {
			return err
		}
	} else {
		pref, err := theme.ParsePreference(args[0])
		if err != nil {
			return err
		}
		if err := a.themes.SetTheme(ctx, pref); err != nil {
			return err
		}
	}

	fmt.Printf("theme: %s (resolved: %s)\n", a.themes.Preference(), a.themes.ColorScheme())
	return nil
}
