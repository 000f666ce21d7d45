package payroll

import "testing"

func TestCompareAt70Percent(t *testing.T) {
	calc := newTestCalculator(t, BasisExcess)
	comparison, err := calc.Compare(70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comparison.Baseline.Regime != RegimeKey2024 || comparison.Reform.Regime != RegimeKey2025 {
		t.Fatalf("expected 2024 then 2025, got %s then %s", comparison.Baseline.Regime, comparison.Reform.Regime)
	}
	if len(comparison.Columns) != 5 {
		t.Fatalf("expected 5 columns, got %d", len(comparison.Columns))
	}
	if comparison.Columns[4].Name != ContributionSocialLevy {
		t.Fatalf("expected levy as last column, got %s", comparison.Columns[4].Name)
	}
	assertAmount(t, "net delta", comparison.NetDelta().StringFixed(2), "-75.10")
	assertAmount(t, "contribution delta", comparison.ContributionDelta().StringFixed(2), "75.10")
}

func TestCompareInvariants(t *testing.T) {
	for _, basis := range LevyBases {
		calc := newTestCalculator(t, basis)
		bounds := calc.Bounds()
		for percentage := bounds.Min; percentage <= bounds.Max; percentage++ {
			comparison, err := calc.Compare(percentage)
			if err != nil {
				t.Fatalf("unexpected error at %d: %v", percentage, err)
			}
			for _, result := range comparison.Results() {
				if !result.NetMonthly.Equal(result.GrossMonthly.Sub(result.TotalContributions)) {
					t.Fatalf("%s/%s at %d: expected net %s - %s, got %s", basis, result.Regime, percentage, result.GrossMonthly, result.TotalContributions, result.NetMonthly)
				}
				if result.Exempt {
					if !result.TotalContributions.IsZero() || !result.NetMonthly.Equal(result.GrossMonthly) {
						t.Fatalf("%s/%s at %d: expected exempt pay to be untouched", basis, result.Regime, percentage)
					}
				}
				if len(result.Contributions) != len(comparison.Columns) {
					t.Fatalf("expected %d lines, got %d", len(comparison.Columns), len(result.Contributions))
				}
			}
		}
	}
}

func TestCompareMonotonicWithExcessBasis(t *testing.T) {
	calc := newTestCalculator(t, BasisExcess)
	bounds := calc.Bounds()
	previous, err := calc.Compare(bounds.Min)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for percentage := bounds.Min + 1; percentage <= bounds.Max; percentage++ {
		current, err := calc.Compare(percentage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pairs := [][2]Result{{previous.Baseline, current.Baseline}, {previous.Reform, current.Reform}}
		for _, pair := range pairs {
			if pair[1].GrossMonthly.LessThan(pair[0].GrossMonthly) {
				t.Fatalf("%s: gross decreased from %s to %s at %d", pair[1].Regime, pair[0].GrossMonthly, pair[1].GrossMonthly, percentage)
			}
			if pair[1].NetMonthly.LessThan(pair[0].NetMonthly) {
				t.Fatalf("%s: net decreased from %s to %s at %d", pair[1].Regime, pair[0].NetMonthly, pair[1].NetMonthly, percentage)
			}
		}
		previous = current
	}
}

func TestCompareIdempotent(t *testing.T) {
	calc := newTestCalculator(t, BasisGross)
	first, err := calc.Compare(88)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := calc.Compare(88)
	for i, result := range first.Results() {
		other := second.Results()[i]
		if !result.NetMonthly.Equal(other.NetMonthly) || !result.TotalContributions.Equal(other.TotalContributions) {
			t.Fatalf("expected identical results, got %s/%s and %s/%s", result.NetMonthly, result.TotalContributions, other.NetMonthly, other.TotalContributions)
		}
		for j, line := range result.Contributions {
			if !line.Amount.Equal(other.Contributions[j].Amount) {
				t.Fatalf("expected identical %s, got %s and %s", line.Name, line.Amount, other.Contributions[j].Amount)
			}
		}
	}
}
