package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculator computes apprentice pay for a baseline and a reform regime.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	bounds   Bounds
	baseline Regime
	reform   Regime
	columns  []Rate
}

func NewCalculator(bounds Bounds, baseline, reform Regime) (*Calculator, error) {
	if bounds.Min <= 0 || bounds.Max < bounds.Min {
		return nil, fmt.Errorf("%w: bounds [%d,%d]", ErrInvalidInput, bounds.Min, bounds.Max)
	}
	if err := baseline.Validate(); err != nil {
		return nil, err
	}
	if err := reform.Validate(); err != nil {
		return nil, err
	}
	if baseline.Key == reform.Key {
		return nil, fmt.Errorf("%w: baseline and reform share key %s", ErrInvalidRegime, baseline.Key)
	}
	return &Calculator{
		bounds:   bounds,
		baseline: baseline.clone(),
		reform:   reform.clone(),
		columns:  mergeColumns(baseline.Rates, reform.Rates),
	}, nil
}

func (c *Calculator) Bounds() Bounds {
	return c.bounds
}

func (c *Calculator) Regimes() []Regime {
	return []Regime{c.baseline.clone(), c.reform.clone()}
}

func (c *Calculator) Regime(key string) (Regime, error) {
	switch key {
	case c.baseline.Key:
		return c.baseline.clone(), nil
	case c.reform.Key:
		return c.reform.clone(), nil
	}
	return Regime{}, fmt.Errorf("%w: %s", ErrUnknownRegime, key)
}

// Columns lists every contribution known to either regime, baseline order first.
func (c *Calculator) Columns() []Rate {
	return append([]Rate(nil), c.columns...)
}

func (c *Calculator) Validate(percentage int) error {
	if percentage < c.bounds.Min || percentage > c.bounds.Max {
		return &InvalidInputError{Field: "percentage", Value: percentage, Min: c.bounds.Min, Max: c.bounds.Max}
	}
	return nil
}

// Compute returns the pay breakdown of regime at percentage of the reference
// wage. The result carries one line per calculator column, zero for columns
// the regime does not apply.
func (c *Calculator) Compute(percentage int, regime Regime) (Result, error) {
	if err := c.Validate(percentage); err != nil {
		return Result{}, err
	}
	if err := regime.Validate(); err != nil {
		return Result{}, err
	}
	return compute(percentage, regime, mergeColumns(c.columns, regime.Rates)), nil
}

func compute(percentage int, regime Regime, columns []Rate) Result {
	grossHourly := decimal.NewFromInt(int64(percentage)).Mul(regime.ReferenceHourlyWage).Div(hundred)
	grossMonthly := round2(grossHourly.Mul(regime.MonthlyHours))
	threshold := regime.Threshold()
	excess := decimal.Max(decimal.Zero, grossHourly.Sub(threshold))
	contributable := excess.Mul(regime.MonthlyHours)
	exempt := grossHourly.LessThan(threshold)

	rates := make(map[string]Rate, len(regime.Rates))
	for _, rate := range regime.Rates {
		rates[rate.Name] = rate
	}

	lines := make([]Line, 0, len(columns))
	total := decimal.Zero
	for _, column := range columns {
		amount := decimal.Zero
		if rate, ok := rates[column.Name]; ok && !exempt {
			basis := contributable
			if rate.Basis == BasisGross {
				basis = grossMonthly
			}
			amount = round2(basis.Mul(rate.Value))
		}
		total = total.Add(amount)
		lines = append(lines, Line{Name: column.Name, Label: column.Label, Amount: amount})
	}
	total = round2(total)

	return Result{
		Regime:             regime.Key,
		Label:              regime.Label,
		Percentage:         percentage,
		GrossHourly:        grossHourly,
		GrossMonthly:       grossMonthly,
		Threshold:          threshold,
		Contributable:      contributable,
		Exempt:             exempt,
		Contributions:      lines,
		TotalContributions: total,
		NetMonthly:         round2(grossMonthly.Sub(total)),
	}
}

func mergeColumns(groups ...[]Rate) []Rate {
	seen := map[string]struct{}{}
	var out []Rate
	for _, group := range groups {
		for _, rate := range group {
			if _, ok := seen[rate.Name]; ok {
				continue
			}
			seen[rate.Name] = struct{}{}
			out = append(out, rate)
		}
	}
	return out
}

func round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}
