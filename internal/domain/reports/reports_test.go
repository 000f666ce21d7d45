package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"paysim/internal/domain/payroll"
)

func testComparison(t *testing.T, percentage int) payroll.Comparison {
	t.Helper()
	calc, err := payroll.NewDefaultCalculator(payroll.DefaultBounds(), payroll.BasisExcess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	comparison, err := calc.Compare(percentage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return comparison
}

func TestBuildTable(t *testing.T) {
	table := BuildTable(testComparison(t, 70))
	if len(table.Columns) != 7 {
		t.Fatalf("expected 7 columns, got %d", len(table.Columns))
	}
	if table.Columns[5].Key != ColumnTotalContributions || table.Columns[6].Key != ColumnNetMonthly {
		t.Fatalf("expected total and net as trailing columns, got %+v", table.Columns[5:])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Label != "Apprentice pay 2024" {
		t.Fatalf("expected first row label Apprentice pay 2024, got %s", table.Rows[0].Label)
	}

	if table.Columns[4].Key != payroll.ContributionSocialLevy || !table.Rows[0].Values[4].IsZero() {
		t.Fatalf("expected zero 2024 levy cell, got %s", table.Rows[0].Values[4])
	}
	if FormatAmount(table.Rows[1].Values[6]) != "1186.19" {
		t.Fatalf("expected 2025 net 1186.19, got %s", FormatAmount(table.Rows[1].Values[6]))
	}
}

func TestBuildChart(t *testing.T) {
	chart := BuildChart(testComparison(t, 70))
	if len(chart.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(chart.Points))
	}
	want := []struct {
		period, payType, amount string
	}{
		{"2024", payroll.PayTypeGross, "1261.29"},
		{"2024", payroll.PayTypeNet, "1261.29"},
		{"2025", payroll.PayTypeGross, "1261.29"},
		{"2025", payroll.PayTypeNet, "1186.19"},
	}
	for i, w := range want {
		p := chart.Points[i]
		if p.Period != w.period || p.PayType != w.payType || FormatAmount(p.Amount) != w.amount {
			t.Fatalf("point %d: expected %+v, got %s/%s/%s", i, w, p.Period, p.PayType, FormatAmount(p.Amount))
		}
	}
	if periods := chart.Periods(); len(periods) != 2 || periods[0] != "2024" {
		t.Fatalf("expected periods [2024 2025], got %v", periods)
	}
	if FormatCurrency(chart.MaxAmount()) != "1261.29 €" {
		t.Fatalf("expected max 1261.29 €, got %s", FormatCurrency(chart.MaxAmount()))
	}
	if chart.Series[0].Color != ColorGross || chart.Series[1].Color != ColorNet {
		t.Fatalf("unexpected series colors %+v", chart.Series)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, BuildTable(testComparison(t, 100))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	if records[0][0] != "type" || records[0][7] != ColumnNetMonthly {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][7] != "1759.05" {
		t.Fatalf("expected 2024 net 1759.05, got %s", records[1][7])
	}
	if records[1][5] != "0.00" {
		t.Fatalf("expected 2024 levy 0.00, got %s", records[1][5])
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, BuildTable(testComparison(t, 70))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Net monthly pay", "Apprentice pay 2025", "1186.19", "34.34"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, testComparison(t, 70)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected pdf header")
	}
}

func TestHexColor(t *testing.T) {
	r, g, b := hexColor(ColorGross)
	if r != 0x62 || g != 0x00 || b != 0xEE {
		t.Fatalf("expected 98,0,238, got %d,%d,%d", r, g, b)
	}
	r, g, b = hexColor("nope")
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black fallback, got %d,%d,%d", r, g, b)
	}
}

func TestBuildResultTable(t *testing.T) {
	comparison := testComparison(t, 70)
	table := BuildResultTable(comparison.Reform)
	if len(table.Columns) != 7 || len(table.Rows) != 1 {
		t.Fatalf("expected 7 columns and 1 row, got %d/%d", len(table.Columns), len(table.Rows))
	}
	if table.Rows[0].Label != "Apprentice pay 2025" {
		t.Fatalf("unexpected label %s", table.Rows[0].Label)
	}
	if FormatAmount(table.Rows[0].Values[4]) != "34.34" || FormatAmount(table.Rows[0].Values[5]) != "75.10" {
		t.Fatalf("unexpected values %v", table.Rows[0].Values)
	}
}

func TestSimulationViewUsesNumbers(t *testing.T) {
	view := NewSimulationView(testComparison(t, 70), payroll.DefaultBounds())
	if view.NetDelta != -75.10 || view.ContributionDelta != 75.10 {
		t.Fatalf("unexpected deltas %v %v", view.NetDelta, view.ContributionDelta)
	}
	if len(view.Table.Rows) != 2 || view.Table.Rows[1].Values[3] != 3.10 {
		t.Fatalf("unexpected table rows %+v", view.Table.Rows)
	}
	body, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), `"values":[1.44,24.87,11.35,3.1,34.34,75.1,1186.19]`) {
		t.Fatalf("expected numeric table cells, got %s", body)
	}
}
