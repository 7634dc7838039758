package main

import (
	"dorker/internal/dorkclient"
	"dorker/internal/report"
	"dorker/pkg/domain"
	"dorker/pkg/logger"
	"dorker/pkg/prefs"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// apiClient returns a client for the API selected by --api-url or the config.
func (c *cli) apiClient() *dorkclient.Client {
	baseURL := c.apiURL
	if baseURL == "" {
		baseURL = c.cfg.Client.APIURL
	}

	return dorkclient.New(&http.Client{Timeout: c.cfg.Client.Timeout}, baseURL)
}

// writer returns the report writer for format. Text output follows the
// dark-mode preference.
func (c *cli) writer(cmd *cobra.Command, format string) (report.Writer, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	p, err := prefs.Load(c.prefsPath)
	if err != nil {
		logger.Warn(cmd.Context(), "could not load preferences, using defaults", zap.Error(err))
		p = &prefs.Preferences{}
	}

	return report.New(f, cmd.OutOrStdout(), report.NewPalette(p.DarkMode)) //nolint: wrapcheck
}

func formatFlag(cmd *cobra.Command, format *string) {
	names := make([]string, 0, len(report.Formats))
	for _, f := range report.Formats {
		names = append(names, string(f))
	}
	cmd.Flags().StringVarP(format, "format", "o", string(report.FormatText),
		"Output format ("+strings.Join(names, ", ")+")")
}

func categoriesCommand(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Lists the selectable tokens of every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.writer(cmd, format)
			if err != nil {
				return err
			}

			catalog, err := c.apiClient().Categories(cmd.Context())
			if err != nil {
				return err //nolint: wrapcheck
			}

			return w.WriteCategories(catalog) //nolint: wrapcheck
		},
	}
	formatFlag(cmd, &format)

	return cmd
}

func generateCommand(c *cli) *cobra.Command {
	var (
		req    domain.DorkRequest
		save   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "generate [keywords...]",
		Short: "Builds a dork for a domain and optionally saves it",
		Example: `  dorker generate -d example.com --file-type pdf,sql --vulnerability directory_listing
  dorker generate -d example.com --auth login,admin --save "login pages"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			w, err := c.writer(cmd, format)
			if err != nil {
				return err
			}

			req.Keywords = append(req.Keywords, args...)

			session := dorkclient.NewSession(c.apiClient(), c.cfg.Search.BaseURL)
			session.SetRequest(req)

			generated, err := session.Generate(ctx)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if err = w.WriteGenerated(generated); err != nil {
				return err //nolint: wrapcheck
			}

			if !cmd.Flags().Changed("save") {
				return nil
			}
			saved, err := session.Save(ctx, save)
			if err != nil {
				return err //nolint: wrapcheck
			}
			logger.Debug(ctx, "dork saved", zap.Int64("id", int64(saved.ID)))
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "saved dork #%d %q\n", saved.ID, saved.Name)

			return err //nolint: wrapcheck
		},
	}
	cmd.Flags().StringVarP(&req.Domain, "domain", "d", "", "Target domain for the site: operator")
	cmd.Flags().StringArrayVarP(&req.Keywords, "keyword", "k", nil, "Free keyword, repeatable")
	cmd.Flags().StringSliceVar(&req.FileTypes, "file-type", nil, "File type tokens")
	cmd.Flags().StringSliceVar(&req.Vulnerability, "vulnerability", nil, "Vulnerability tokens")
	cmd.Flags().StringSliceVar(&req.CMS, "cms", nil, "CMS tokens")
	cmd.Flags().StringSliceVar(&req.Auth, "auth", nil, "Authentication tokens")
	cmd.Flags().StringSliceVar(&req.Errors, "errors", nil, "Error pattern tokens")
	cmd.Flags().StringVar(&save, "save", "", "Save the generated dork under this name")
	formatFlag(cmd, &format)

	return cmd
}
