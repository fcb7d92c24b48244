package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportAll    bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export marked records as a tabular file",
	Long: `Write the marked records of a source, latest year first, in the import format.

Examples:
  export --output watched.csv
  export --source top_100_dorama_info.txtpb --all`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&catalogSource, "source", "", "Source id (defaults to the configured default source)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every record instead of marked ones")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (defaults to stdout)")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, !exportAll)
	if err != nil {
		return err
	}
	defer a.close()

	set, err := a.loadSource(ctx)
	if err != nil {
		return err
	}

	records := set.Records()
	if !exportAll {
		ids, err := a.store.Read(ctx)
		if err != nil {
			return err
		}
		records = set.Select(ids)
	}
	if len(records) == 0 {
		return fmt.Errorf("nothing to export from %s: no records are marked", set.Source())
	}

	text := a.codec.Serialize(records)
	if exportOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d records to %s\n", len(records), exportOutput)
	return nil
}
