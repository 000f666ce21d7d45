package reports

import (
	"github.com/shopspring/decimal"

	"paysim/internal/domain/payroll"
)

const (
	ColorGross = "#6200EE"
	ColorNet   = "#03DAC6"
)

type Series struct {
	PayType string `json:"payType"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

type Point struct {
	Period  string
	PayType string
	Amount  decimal.Decimal
}

// Chart describes a grouped bar chart with one group per period and one bar per
// pay type.
type Chart struct {
	XLabel string
	YLabel string
	Series []Series
	Points []Point
}

func BuildChart(comparison payroll.Comparison) Chart {
	chart := Chart{
		XLabel: "Year",
		YLabel: "Amount (€)",
		Series: []Series{
			{PayType: payroll.PayTypeGross, Label: "Gross", Color: ColorGross},
			{PayType: payroll.PayTypeNet, Label: "Net", Color: ColorNet},
		},
	}
	for _, result := range comparison.Results() {
		chart.Points = append(chart.Points,
			Point{Period: result.Label, PayType: payroll.PayTypeGross, Amount: result.GrossMonthly},
			Point{Period: result.Label, PayType: payroll.PayTypeNet, Amount: result.NetMonthly},
		)
	}
	return chart
}

// Periods returns the distinct period labels in point order.
func (c Chart) Periods() []string {
	var periods []string
	seen := map[string]struct{}{}
	for _, p := range c.Points {
		if _, ok := seen[p.Period]; ok {
			continue
		}
		seen[p.Period] = struct{}{}
		periods = append(periods, p.Period)
	}
	return periods
}

func (c Chart) Amount(period, payType string) decimal.Decimal {
	for _, p := range c.Points {
		if p.Period == period && p.PayType == payType {
			return p.Amount
		}
	}
	return decimal.Zero
}

func (c Chart) MaxAmount() decimal.Decimal {
	out := decimal.Zero
	for _, p := range c.Points {
		if p.Amount.GreaterThan(out) {
			out = p.Amount
		}
	}
	return out
}
