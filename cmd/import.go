package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/tabular"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importStrategy   string
	importYes        bool
	importAcceptBest bool
	importDryRun     bool
)

// importCmd is the parent command for import flows.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import marked records",
	Long: `Import marked records from a tabular file or from a list of titles.

When records are already marked you choose to merge (keep existing marks and add
the imported ones) or overwrite (keep only the imported ones).`,
}

var importCSVCmd = &cobra.Command{
	Use:   "csv FILE",
	Short: "Import a tabular file produced by export",
	Long: `Validate a tabular file against the source and import its rows.

Rows with an unknown id, a bad year, a wrong column count or a repeated id are
skipped and reported; the rest are imported.

Examples:
  # Interactive
  import csv watched.csv

  # Non-interactive overwrite
  import csv watched.csv --yes --strategy overwrite

  # Only validate
  import csv watched.csv --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], false)
	},
}

var importTextCmd = &cobra.Command{
	Use:   "text FILE",
	Short: "Import titles matched against the source",
	Long: `Match each title against the source and import the chosen records.

FILE holds one title per line, or comma separated titles. Use - for stdin.
Interactively you pick among the closest records for every title. A
non-interactive run only takes the closest record when --accept-best is given
together with --yes.

Examples:
  # Interactive
  import text titles.txt

  # Non-interactive, closest record for every title
  import text titles.txt --yes --accept-best

  # Show the closest records without applying them
  import text titles.txt --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0], true)
	},
}

func init() {
	importCmd.PersistentFlags().StringVar(&catalogSource, "source", "", "Source id (defaults to the configured default source)")
	importCmd.PersistentFlags().StringVar(&importStrategy, "strategy", "merge", "merge or overwrite, used with --yes")
	importCmd.PersistentFlags().BoolVar(&importYes, "yes", false, "Auto-confirm (non-interactive)")
	importTextCmd.Flags().BoolVar(&importAcceptBest, "accept-best", false, "Take the closest record for every title, used with --yes")
	importCmd.PersistentFlags().BoolVar(&importDryRun, "dry-run", false, "Show the preview without applying it")

	importCmd.AddCommand(importCSVCmd, importTextCmd)
	RootCmd.AddCommand(importCmd)
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func runImport(cmd *cobra.Command, path string, text bool) error {
	ctx := context.Background()

	strategy, err := reconcile.ParseStrategy(importStrategy)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	prompt, err := importPrompt(cmd, path, text, strategy)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	source, err := a.source(catalogSource)
	if err != nil {
		return err
	}

	op := a.coordinator().Begin(source)
	if text {
		err = op.MatchQueries(ctx, tabular.ParseQueries(input), prompt)
	} else {
		err = op.ValidateTabular(ctx, input)
	}
	printValidation(cmd, op)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if importDryRun {
		fmt.Fprintf(out, "%s\nDry-run mode: no changes were made.\n", op.Preview().Summary())
		return op.Cancel()
	}

	outcome, err := op.Decide(ctx, prompt)
	if err != nil {
		return err
	}
	if outcome == nil {
		a.logger.Warn("Import cancelled. No changes were made.", zap.String("operation_id", op.ID()))
		return nil
	}

	fmt.Fprintf(out, "%s: %d marked (%d added, %d removed)\n",
		outcome.Strategy, len(outcome.Marked), outcome.Added, outcome.Removed)
	return nil
}

// importPrompt picks how the import is answered from the command flags.
func importPrompt(cmd *cobra.Command, path string, text bool, strategy reconcile.Strategy) (reconcile.Prompt, error) {
	if importAcceptBest && !importYes {
		return nil, errors.New("--accept-best is only used with --yes")
	}

	switch {
	case importYes:
		if text && !importAcceptBest {
			return nil, errors.New("--yes cannot choose among candidates; add --accept-best to take the closest record for every title")
		}
		return reconcile.FixedPrompt{AcceptBest: importAcceptBest, Confirm: true, Strategy: strategy}, nil
	case importDryRun:
		return reconcile.FixedPrompt{AcceptBest: true}, nil
	case path != "-" && isInteractive():
		return newTerminalPrompt(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	default:
		return nil, errors.New("stdin is not a terminal; pass --yes to confirm or --dry-run to preview")
	}
}

// printValidation shows skipped rows of a tabular import, bounded to the display cap.
func printValidation(cmd *cobra.Command, op *reconcile.Operation) {
	result := op.Validation()
	if result == nil || result.InvalidCount() == 0 {
		return
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "%d rows accepted, %d rows skipped\n", result.ValidCount(), result.InvalidCount())
	fmt.Fprintln(out, rowErrorsTable(result))
	if hidden := result.InvalidCount() - len(result.DisplayErrors()); hidden > 0 {
		fmt.Fprintf(out, "... and %d more\n", hidden)
	}
}
