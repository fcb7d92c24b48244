package cmd

import (
	"context"
	"fmt"
	"strings"

	"catalog-manager/feature/marks"

	"github.com/spf13/cobra"
)

var marksYes bool

// marksCmd is the parent command for managing marked records.
var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "Manage marked records",
}

// withMarks runs fn with a marks service on the configured store.
func withMarks(fn func(ctx context.Context, a *app, svc *marks.Service) error) error {
	ctx := context.Background()
	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a, marks.NewService(a.store, a.catalog, a.logger))
}

var marksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marked records of a source",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMarks(func(ctx context.Context, a *app, svc *marks.Service) error {
			source, err := a.source(catalogSource)
			if err != nil {
				return err
			}
			records, err := svc.MarkedRecords(ctx, source)
			if err != nil {
				return err
			}
			all := make(map[string]struct{}, len(records))
			for _, r := range records {
				all[r.ID] = struct{}{}
			}
			fmt.Fprintln(cmd.OutOrStdout(), recordsTable(records, all))
			return nil
		})
	},
}

var marksToggleCmd = &cobra.Command{
	Use:   "toggle ID...",
	Short: "Mark records that are unmarked and unmark the others",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMarks(func(ctx context.Context, a *app, svc *marks.Service) error {
			for _, id := range args {
				marked, err := svc.Toggle(ctx, id)
				if err != nil {
					return err
				}
				state := "unmarked"
				if marked {
					state = "marked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", id, state)
			}
			return nil
		})
	},
}

var marksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every mark",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !marksYes {
			if !isInteractive() {
				return fmt.Errorf("stdin is not a terminal; pass --yes to confirm")
			}
			answer, err := newTerminalPrompt(cmd.InOrStdin(), cmd.OutOrStdout()).ask("Type 'yes' to remove every mark: ")
			if err != nil || answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled. No changes were made.")
				return nil
			}
		}
		return withMarks(func(ctx context.Context, _ *app, svc *marks.Service) error {
			return svc.Clear(ctx)
		})
	},
}

var marksShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share fragment of the marked set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMarks(func(ctx context.Context, _ *app, svc *marks.Service) error {
			link, err := svc.ShareLink(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		})
	},
}

var marksLoadShareCmd = &cobra.Command{
	Use:   "load-share LINK",
	Short: "Replace the marked set with the ids of a share link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMarks(func(ctx context.Context, _ *app, svc *marks.Service) error {
			ids, err := svc.LoadShare(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records marked\n", len(ids))
			return nil
		})
	},
}

var marksProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show how much of each source is marked",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMarks(func(ctx context.Context, a *app, svc *marks.Service) error {
			sources := a.cfg.Catalog.Sources
			if catalogSource != "" {
				source, err := a.source(catalogSource)
				if err != nil {
					return err
				}
				sources = []string{source}
			}

			rows := make([][]string, 0, len(sources))
			for _, source := range sources {
				p, err := svc.Progress(ctx, source)
				if err != nil {
					rows = append(rows, []string{source, "-", "-", strings.TrimSpace(err.Error())})
					continue
				}
				rows = append(rows, []string{
					source,
					fmt.Sprintf("%d/%d", p.Marked, p.Total),
					fmt.Sprintf("%.1f%%", p.Percent),
					"",
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Source", "Marked", "Progress", "Error"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		})
	},
}

func init() {
	marksCmd.PersistentFlags().StringVar(&catalogSource, "source", "", "Source id (defaults to the configured default source)")
	marksClearCmd.Flags().BoolVar(&marksYes, "yes", false, "Auto-confirm (non-interactive)")

	marksCmd.AddCommand(marksListCmd, marksToggleCmd, marksClearCmd, marksShareCmd, marksLoadShareCmd, marksProgressCmd)
	RootCmd.AddCommand(marksCmd)
}
