package reports

import (
	"github.com/shopspring/decimal"

	"paysim/internal/domain/payroll"
)

const (
	ColumnTotalContributions = "total_contributions"
	ColumnNetMonthly         = "net_monthly"
)

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Row struct {
	Regime string
	Label  string
	Values []decimal.Decimal
}

// Table is the tabular view of a comparison: one row per regime, one column per
// contribution followed by the total and the net pay.
type Table struct {
	Columns []Column
	Rows    []Row
}

func BuildTable(comparison payroll.Comparison) Table {
	return buildTable(comparison.Columns, comparison.Results())
}

// BuildResultTable lays out a single regime result with the same columns as
// BuildTable.
func BuildResultTable(result payroll.Result) Table {
	columns := make([]payroll.Rate, 0, len(result.Contributions))
	for _, line := range result.Contributions {
		columns = append(columns, payroll.Rate{Name: line.Name, Label: line.Label})
	}
	return buildTable(columns, []payroll.Result{result})
}

func buildTable(rates []payroll.Rate, results []payroll.Result) Table {
	columns := make([]Column, 0, len(rates)+2)
	for _, rate := range rates {
		columns = append(columns, Column{Key: rate.Name, Label: rate.Label})
	}
	columns = append(columns,
		Column{Key: ColumnTotalContributions, Label: "Total contributions"},
		Column{Key: ColumnNetMonthly, Label: "Net monthly pay"},
	)

	rows := make([]Row, 0, len(results))
	for _, result := range results {
		values := make([]decimal.Decimal, 0, len(columns))
		for _, rate := range rates {
			values = append(values, result.Amount(rate.Name))
		}
		values = append(values, result.TotalContributions, result.NetMonthly)
		rows = append(rows, Row{
			Regime: result.Regime,
			Label:  "Apprentice pay " + result.Label,
			Values: values,
		})
	}
	return Table{Columns: columns, Rows: rows}
}

func FormatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func FormatCurrency(value decimal.Decimal) string {
	return value.StringFixed(2) + " €"
}
