package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"catalog-manager/core/catalog"
	"catalog-manager/core/fuzzy"

	"github.com/spf13/cobra"
)

var (
	catalogSource string
	listFilter    catalog.Filter
	listTop       int
	listMarks     bool
	fmtCheck bool
)

// catalogCmd is the parent command for reading catalog sources.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect catalog sources",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records grouped by year, latest first",
	Long: `List the records of a source grouped by year.

Examples:
  # Records of 2020 and later mentioning "naoki"
  catalog list --start 2020 --search naoki

  # First 5 records of every year, with marked records flagged
  catalog list --source top_100_dorama_info.txtpb --top 5 --marks`,
	RunE: runCatalogList,
}

var catalogYearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the distinct years of a source",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.close()

		set, err := a.loadSource(ctx)
		if err != nil {
			return err
		}
		years := set.Years()
		out := make([]string, 0, len(years))
		for _, y := range years {
			out = append(out, strconv.Itoa(y))
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n"))
		return nil
	},
}

var catalogFmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Rewrite a source file in canonical form",
	Long: `Parse a source file and print it back with canonical indentation and quoting.
Fields outside the configured record schema are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogFmt,
}

var catalogMatchCmd = &cobra.Command{
	Use:   "match QUERY",
	Short: "Suggest records for a free-text title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := newApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.close()

		set, err := a.loadSource(ctx)
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")
		candidates := fuzzy.FindMatches(query, set.Records())
		if len(candidates) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No record scores %.0f%% or more against %q\n", fuzzy.Threshold*100, query)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), candidatesTable(candidates))
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogSource, "source", "", "Source id (defaults to the configured default source)")

	catalogListCmd.Flags().IntVar(&listFilter.StartYear, "start", 0, "First year, inclusive")
	catalogListCmd.Flags().IntVar(&listFilter.EndYear, "end", 0, "Last year, inclusive")
	catalogListCmd.Flags().StringVar(&listFilter.Search, "search", "", "Search titles and cast members")
	catalogListCmd.Flags().StringVar(&listFilter.Actor, "actor", "", "Only records with this exact cast member")
	catalogListCmd.Flags().IntVar(&listTop, "top", 0, "Keep the first N records of every year")
	catalogListCmd.Flags().BoolVar(&listMarks, "marks", false, "Flag marked records")

	catalogFmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Only report whether the file parses")

	catalogCmd.AddCommand(catalogListCmd, catalogYearsCmd, catalogFmtCmd, catalogMatchCmd)
	RootCmd.AddCommand(catalogCmd)
}

func (a *app) loadSource(ctx context.Context) (*catalog.RecordSet, error) {
	source, err := a.source(catalogSource)
	if err != nil {
		return nil, err
	}
	return a.catalog.Get(ctx, source)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, listMarks)
	if err != nil {
		return err
	}
	defer a.close()

	set, err := a.loadSource(ctx)
	if err != nil {
		return err
	}

	marked := make(map[string]struct{})
	if listMarks {
		ids, err := a.store.Read(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			marked[id] = struct{}{}
		}
	}

	matched := set.Filter(listFilter)
	groups := catalog.GroupByYear(matched)
	if listTop > 0 {
		groups = catalog.TopPerYear(matched, listTop)
	}
	shown := catalog.Flatten(groups)

	fmt.Fprintln(cmd.OutOrStdout(), recordsTable(shown, marked))
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d records in %d years\n", len(shown), set.Len(), len(groups))
	return nil
}

func runCatalogFmt(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	schema := a.cfg.Catalog.Schema()
	records, err := catalog.Decode(string(data), schema)
	if err != nil {
		return err
	}
	if fmtCheck {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records\n", args[0], len(records))
		return nil
	}

	out, err := catalog.Encode(records, schema)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func candidatesTable(candidates []fuzzy.Candidate) string {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", c.Score),
			strconv.Itoa(c.Record.Year),
			c.Record.PrimaryTitle,
			c.Record.SecondaryTitle,
			c.Record.ID,
		})
	}
	return renderTable(
		[]string{"Score", "Year", "Title", "Secondary Title", "ID"},
		rows,
		[]columnAlignment{alignRight, alignRight},
	)
}
