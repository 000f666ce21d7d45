package payroll

// Compare runs Compute for the baseline and the reform regime at the same
// percentage. The two computations share no data.
func (c *Calculator) Compare(percentage int) (Comparison, error) {
	if err := c.Validate(percentage); err != nil {
		return Comparison{}, err
	}
	return Comparison{
		Percentage: percentage,
		Columns:    c.Columns(),
		Baseline:   compute(percentage, c.baseline, c.columns),
		Reform:     compute(percentage, c.reform, c.columns),
	}, nil
}

// NewDefaultCalculator wires the 2024 and 2025 presets.
func NewDefaultCalculator(bounds Bounds, levyBasis string) (*Calculator, error) {
	reform, err := Regime2025(levyBasis)
	if err != nil {
		return nil, err
	}
	return NewCalculator(bounds, Regime2024(), reform)
}
