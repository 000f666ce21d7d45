package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	referenceHourlyWage = decimal.RequireFromString("11.88")
	monthlyHours        = decimal.RequireFromString("151.67")
)

func pensionRates() []Rate {
	return []Rate{
		{Name: ContributionUncappedPension, Label: "Uncapped old-age insurance", Value: decimal.RequireFromString("0.0040"), Basis: BasisExcess},
		{Name: ContributionCappedPension, Label: "Capped old-age insurance", Value: decimal.RequireFromString("0.0690"), Basis: BasisExcess},
		{Name: ContributionBasePensionT1, Label: "Pension T1", Value: decimal.RequireFromString("0.0315"), Basis: BasisExcess},
		{Name: ContributionSupplementaryPension, Label: "CEG T1", Value: decimal.RequireFromString("0.0086"), Basis: BasisExcess},
	}
}

// Regime2024 returns the rule set in force in 2024: contributions start above
// 79% of the reference wage and no social levy applies.
func Regime2024() Regime {
	return Regime{
		Key:                 RegimeKey2024,
		Label:               "2024",
		ReferenceHourlyWage: referenceHourlyWage,
		ThresholdRatio:      decimal.RequireFromString("0.79"),
		MonthlyHours:        monthlyHours,
		Rates:               pensionRates(),
	}
}

// Regime2025 returns the 2025 rule set: the threshold drops to 50% of the
// reference wage and the CSG/CRDS levy is added. levyBasis selects which
// amount the levy applies to; an empty value means BasisExcess.
func Regime2025(levyBasis string) (Regime, error) {
	basis, err := ParseBasis(levyBasis)
	if err != nil {
		return Regime{}, err
	}
	rates := append(pensionRates(), Rate{
		Name:  ContributionSocialLevy,
		Label: "CSG CRDS",
		Value: decimal.RequireFromString("0.097").Mul(decimal.RequireFromString("0.9825")),
		Basis: basis,
	})
	return Regime{
		Key:                 RegimeKey2025,
		Label:               "2025",
		ReferenceHourlyWage: referenceHourlyWage,
		ThresholdRatio:      decimal.RequireFromString("0.50"),
		MonthlyHours:        monthlyHours,
		Rates:               rates,
	}, nil
}

func ParseBasis(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", BasisExcess:
		return BasisExcess, nil
	case BasisGross:
		return BasisGross, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBasis, raw)
}

// Threshold is the hourly pay below which the regime exempts every contribution.
func (r Regime) Threshold() decimal.Decimal {
	return r.ThresholdRatio.Mul(r.ReferenceHourlyWage)
}

func (r Regime) Validate() error {
	if strings.TrimSpace(r.Key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidRegime)
	}
	if !r.ReferenceHourlyWage.IsPositive() {
		return fmt.Errorf("%w: regime %s reference wage must be positive", ErrInvalidRegime, r.Key)
	}
	if !r.MonthlyHours.IsPositive() {
		return fmt.Errorf("%w: regime %s monthly hours must be positive", ErrInvalidRegime, r.Key)
	}
	if r.ThresholdRatio.IsNegative() {
		return fmt.Errorf("%w: regime %s threshold ratio must not be negative", ErrInvalidRegime, r.Key)
	}
	seen := make(map[string]struct{}, len(r.Rates))
	for _, rate := range r.Rates {
		if _, dup := seen[rate.Name]; dup {
			return fmt.Errorf("%w: regime %s repeats rate %s", ErrInvalidRegime, r.Key, rate.Name)
		}
		seen[rate.Name] = struct{}{}
		if rate.Value.IsNegative() {
			return fmt.Errorf("%w: regime %s rate %s must not be negative", ErrInvalidRegime, r.Key, rate.Name)
		}
		if rate.Basis != BasisExcess && rate.Basis != BasisGross {
			return fmt.Errorf("%w: regime %s rate %s has basis %q", ErrInvalidRegime, r.Key, rate.Name, rate.Basis)
		}
	}
	return nil
}

func (r Regime) clone() Regime {
	out := r
	out.Rates = append([]Rate(nil), r.Rates...)
	return out
}
