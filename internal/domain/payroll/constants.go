package payroll

const (
	RegimeKey2024 = "2024"
	RegimeKey2025 = "2025"

	ContributionUncappedPension      = "uncapped_pension"
	ContributionCappedPension        = "capped_pension"
	ContributionBasePensionT1        = "base_pension_t1"
	ContributionSupplementaryPension = "supplementary_pension_t1"
	ContributionSocialLevy           = "social_levy"

	BasisExcess = "excess"
	BasisGross  = "gross"

	PayTypeGross = "gross"
	PayTypeNet   = "net"

	DefaultMinPercentage = 20
	DefaultMaxPercentage = 150
	DefaultPercentage    = 70

	// Slider ceiling of the narrower variant of the tool.
	LegacyMaxPercentage = 100
)

var LevyBases = []string{BasisExcess, BasisGross}
