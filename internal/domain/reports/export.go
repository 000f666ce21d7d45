package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteCSV(w io.Writer, table Table) error {
	writer := csv.NewWriter(w)
	header := make([]string, 0, len(table.Columns)+1)
	header = append(header, "type")
	for _, column := range table.Columns {
		header = append(header, column.Key)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range table.Rows {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, row.Label)
		for _, value := range row.Values {
			record = append(record, FormatAmount(value))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.Regime, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteText renders the table with aligned columns for terminal output.
func WriteText(w io.Writer, table Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	labels := make([]string, 0, len(table.Columns)+1)
	labels = append(labels, "Type")
	for _, column := range table.Columns {
		labels = append(labels, column.Label)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(labels, "\t")+"\t"); err != nil {
		return err
	}
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Label)
		for _, value := range row.Values {
			cells = append(cells, FormatAmount(value))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
