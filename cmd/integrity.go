package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var integrityJSON bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check storage, catalog sources and the marks schema",
	Long:  `Checks that the storage bucket exists, that every configured source loads and that the marks table has the expected columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer a.close()

		report := a.integrity().Run(ctx)

		if integrityJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Storage (%s): %s %s\n", report.Storage.Bucket, report.Storage.Status, report.Storage.Error)
			fmt.Fprintf(out, "Schema: %s %s\n", report.Schema.Status, report.Schema.Error)

			rows := make([][]string, 0, len(report.Sources))
			for _, s := range report.Sources {
				rows = append(rows, []string{s.Source, s.Status, strconv.Itoa(s.Records), s.Error})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Source", "Status", "Records", "Error"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
		}

		if !report.Healthy {
			return fmt.Errorf("integrity check failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "Output the report as JSON")
	RootCmd.AddCommand(integrityCmd)
}
