package cmd

import (
	"strconv"
	"strings"

	"catalog-manager/core/catalog"
	"catalog-manager/core/tabular"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// recordsTable renders records with a marker column for marked ids.
func recordsTable(records []catalog.Record, marked map[string]struct{}) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		mark := ""
		if _, ok := marked[r.ID]; ok {
			mark = "*"
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(r.Year),
			r.PrimaryTitle,
			r.SecondaryTitle,
			strings.Join(r.Cast, ", "),
			r.ID,
		})
	}
	return renderTable(
		[]string{"", "Year", "Title", "Secondary Title", "Cast", "ID"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}

// rowErrorsTable renders the displayable row errors of a validation.
func rowErrorsTable(result *tabular.ValidationResult) string {
	shown := result.DisplayErrors()
	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{strconv.Itoa(e.Row), string(e.Reason), e.Detail})
	}
	return renderTable([]string{"Row", "Reason", "Detail"}, rows, []columnAlignment{alignRight})
}
