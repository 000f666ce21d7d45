package payroll

import "github.com/shopspring/decimal"

// Rate is one named contribution applied to a regime's contribution basis.
type Rate struct {
	Name  string          `json:"name"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Basis string          `json:"basis"`
}

// Regime groups the constants of one rule set. Values are built by the preset
// constructors and never mutated afterwards.
type Regime struct {
	Key                 string          `json:"key"`
	Label               string          `json:"label"`
	ReferenceHourlyWage decimal.Decimal `json:"referenceHourlyWage"`
	ThresholdRatio      decimal.Decimal `json:"thresholdRatio"`
	MonthlyHours        decimal.Decimal `json:"monthlyHours"`
	Rates               []Rate          `json:"rates"`
}

type Line struct {
	Name   string
	Label  string
	Amount decimal.Decimal
}

type Result struct {
	Regime             string
	Label              string
	Percentage         int
	GrossHourly        decimal.Decimal
	GrossMonthly       decimal.Decimal
	Threshold          decimal.Decimal
	Contributable      decimal.Decimal
	Exempt             bool
	Contributions      []Line
	TotalContributions decimal.Decimal
	NetMonthly         decimal.Decimal
}

// Amount returns the line amount for name, zero when the line is absent.
func (r Result) Amount(name string) decimal.Decimal {
	for _, line := range r.Contributions {
		if line.Name == name {
			return line.Amount
		}
	}
	return decimal.Zero
}

type Comparison struct {
	Percentage int
	Columns    []Rate
	Baseline   Result
	Reform     Result
}

func (c Comparison) Results() []Result {
	return []Result{c.Baseline, c.Reform}
}

func (c Comparison) NetDelta() decimal.Decimal {
	return c.Reform.NetMonthly.Sub(c.Baseline.NetMonthly)
}

func (c Comparison) ContributionDelta() decimal.Decimal {
	return c.Reform.TotalContributions.Sub(c.Baseline.TotalContributions)
}

type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinPercentage, Max: DefaultMaxPercentage}
}
