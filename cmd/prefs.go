package main

import (
	"dorker/pkg/logger"
	"dorker/pkg/prefs"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func prefsCommand(c *cli) *cobra.Command {
	var (
		darkMode bool
		toggle   bool
	)

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Shows or changes local preferences",
		Example: `  dorker prefs
  dorker prefs --dark-mode
  dorker prefs --toggle-dark-mode`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prefs.Load(c.prefsPath)
			if err != nil {
				return err //nolint: wrapcheck
			}

			changed := false
			if cmd.Flags().Changed("dark-mode") {
				p.DarkMode = darkMode
				changed = true
			}
			if toggle {
				p.DarkMode = !p.DarkMode
				changed = true
			}
			if changed {
				if err = prefs.Save(c.prefsPath, p); err != nil {
					return err //nolint: wrapcheck
				}
				logger.Debug(cmd.Context(), "preferences saved", zap.String("path", c.prefsPath))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "darkMode: %t\n", p.DarkMode)
			return err //nolint: wrapcheck
		},
	}
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Enable or disable the dark color scheme")
	cmd.Flags().BoolVar(&toggle, "toggle-dark-mode", false, "Flip the dark color scheme")
	cmd.MarkFlagsMutuallyExclusive("dark-mode", "toggle-dark-mode")

	return cmd
}
