package main

import (
	"dorker/internal/dorkclient"
	"dorker/internal/report"
	"dorker/pkg/domain"
	"dorker/pkg/serrors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(s string) (domain.SavedDorkID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid id format")
	}

	return domain.SavedDorkID(id), nil
}

func savedCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manages saved dorks",
	}

	cmd.AddCommand(
		savedListCommand(c),
		savedAddCommand(c),
		savedDeleteCommand(c),
		savedShowCommand(c),
	)

	return cmd
}

func savedListCommand(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists saved dorks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.writer(cmd, format)
			if err != nil {
				return err
			}

			dorks, err := c.apiClient().Dorks(cmd.Context())
			if err != nil {
				return err //nolint: wrapcheck
			}

			return w.WriteDorks(dorks) //nolint: wrapcheck
		},
	}
	formatFlag(cmd, &format)

	return cmd
}

func savedAddCommand(c *cli) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add NAME QUERY",
		Short: "Saves a query under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := c.apiClient().SaveDork(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved dork #%d %q\n", saved.ID, saved.Name)
			return err //nolint: wrapcheck
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Free text description")

	return cmd
}

func savedDeleteCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Deletes a saved dork",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err = c.apiClient().DeleteDork(cmd.Context(), id); err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted dork #%d\n", id)
			return err //nolint: wrapcheck
		},
	}

	return cmd
}

func savedShowCommand(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Loads a saved dork and prints its search URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			w, err := c.writer(cmd, format)
			if err != nil {
				return err
			}

			session := dorkclient.NewSession(c.apiClient(), c.cfg.Search.BaseURL)
			dorks, err := session.Dorks(cmd.Context())
			if err != nil {
				return err //nolint: wrapcheck
			}

			for _, d := range dorks {
				if d.ID != id {
					continue
				}
				return w.WriteLoaded(report.LoadedDork{Dork: d, Generated: session.Load(d)}) //nolint: wrapcheck
			}

			return serrors.With(serrors.ErrNotFound, "dork not found")
		},
	}
	formatFlag(cmd, &format)

	return cmd
}
