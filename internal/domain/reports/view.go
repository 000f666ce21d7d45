package reports

import (
	"github.com/shopspring/decimal"

	"paysim/internal/domain/payroll"
)

// The view types are the JSON shape shared by every transport. Amounts are
// already rounded to cents, so they travel as plain numbers.

type RateView struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Basis string  `json:"basis"`
}

type RegimeView struct {
	Key                 string     `json:"key"`
	Label               string     `json:"label"`
	ReferenceHourlyWage float64    `json:"referenceHourlyWage"`
	ThresholdRatio      float64    `json:"thresholdRatio"`
	ThresholdHourly     float64    `json:"thresholdHourly"`
	MonthlyHours        float64    `json:"monthlyHours"`
	Rates               []RateView `json:"rates"`
}

type ResultView struct {
	Regime             string             `json:"regime"`
	Label              string             `json:"label"`
	Percentage         int                `json:"percentage"`
	GrossHourly        float64            `json:"grossHourly"`
	GrossMonthly       float64            `json:"grossMonthly"`
	Exempt             bool               `json:"exempt"`
	Contributions      map[string]float64 `json:"contributions"`
	TotalContributions float64            `json:"totalContributions"`
	NetMonthly         float64            `json:"netMonthly"`
}

type RowView struct {
	Regime string    `json:"regime"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type TableView struct {
	Columns []Column  `json:"columns"`
	Rows    []RowView `json:"rows"`
}

type PointView struct {
	Period  string  `json:"period"`
	PayType string  `json:"payType"`
	Amount  float64 `json:"amount"`
	Text    string  `json:"text"`
}

type ChartView struct {
	XLabel string      `json:"xLabel"`
	YLabel string      `json:"yLabel"`
	Series []Series    `json:"series"`
	Points []PointView `json:"points"`
}

type SimulationView struct {
	Percentage        int            `json:"percentage"`
	Bounds            payroll.Bounds `json:"bounds"`
	Results           []ResultView   `json:"results"`
	NetDelta          float64        `json:"netDelta"`
	ContributionDelta float64        `json:"contributionDelta"`
	Table             TableView      `json:"table"`
	Chart             ChartView      `json:"chart"`
}

func NewRegimeView(regime payroll.Regime) RegimeView {
	rates := make([]RateView, 0, len(regime.Rates))
	for _, rate := range regime.Rates {
		rates = append(rates, RateView{Name: rate.Name, Label: rate.Label, Value: rate.Value.InexactFloat64(), Basis: rate.Basis})
	}
	return RegimeView{
		Key:                 regime.Key,
		Label:               regime.Label,
		ReferenceHourlyWage: regime.ReferenceHourlyWage.InexactFloat64(),
		ThresholdRatio:      regime.ThresholdRatio.InexactFloat64(),
		ThresholdHourly:     regime.Threshold().InexactFloat64(),
		MonthlyHours:        regime.MonthlyHours.InexactFloat64(),
		Rates:               rates,
	}
}

func NewRegimeViews(regimes []payroll.Regime) []RegimeView {
	out := make([]RegimeView, 0, len(regimes))
	for _, regime := range regimes {
		out = append(out, NewRegimeView(regime))
	}
	return out
}

func NewResultView(result payroll.Result) ResultView {
	contributions := make(map[string]float64, len(result.Contributions))
	for _, line := range result.Contributions {
		contributions[line.Name] = line.Amount.InexactFloat64()
	}
	return ResultView{
		Regime:             result.Regime,
		Label:              result.Label,
		Percentage:         result.Percentage,
		GrossHourly:        result.GrossHourly.InexactFloat64(),
		GrossMonthly:       result.GrossMonthly.InexactFloat64(),
		Exempt:             result.Exempt,
		Contributions:      contributions,
		TotalContributions: result.TotalContributions.InexactFloat64(),
		NetMonthly:         result.NetMonthly.InexactFloat64(),
	}
}

func NewSimulationView(comparison payroll.Comparison, bounds payroll.Bounds) SimulationView {
	view := SimulationView{
		Percentage:        comparison.Percentage,
		Bounds:            bounds,
		NetDelta:          comparison.NetDelta().InexactFloat64(),
		ContributionDelta: comparison.ContributionDelta().InexactFloat64(),
	}
	for _, result := range comparison.Results() {
		view.Results = append(view.Results, NewResultView(result))
	}

	table := BuildTable(comparison)
	view.Table.Columns = table.Columns
	for _, row := range table.Rows {
		view.Table.Rows = append(view.Table.Rows, RowView{Regime: row.Regime, Label: row.Label, Values: floats(row.Values)})
	}

	chart := BuildChart(comparison)
	view.Chart = ChartView{XLabel: chart.XLabel, YLabel: chart.YLabel, Series: chart.Series}
	for _, p := range chart.Points {
		view.Chart.Points = append(view.Chart.Points, PointView{
			Period:  p.Period,
			PayType: p.PayType,
			Amount:  p.Amount.InexactFloat64(),
			Text:    FormatCurrency(p.Amount),
		})
	}
	return view
}

func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, value := range values {
		out[i] = value.InexactFloat64()
	}
	return out
}
