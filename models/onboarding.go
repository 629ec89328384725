package models

// Option catalogues offered by the onboarding wizard. The values are sent to
// the API verbatim and must not be translated.
var (
	Regions           = []string{"Hovedstaden", "Midtjylland", "Nordjylland", "Sjælland", "Syddanmark"}
	EmploymentTypes   = []string{"Lønmodtager", "Selvstændig", "Studerende", "Pensioneret"}
	HousingTypes      = []string{"Lejebolig", "Andelsbolig", "Ejerbolig", "Sommerhus"}
	VehicleTypes      = []string{"Benzin/diesel", "Elbil", "Cykel/offentlig", "Hybrid"}
	InterestRateTypes = []string{"Fast", "Variabel", "Blandet"}
	LoanTypes         = []string{"Boliglån", "Billån", "Andelslån", "Forbrugslån", "SU-lån", "Kassekredit"}
	SavingsTypes      = []string{"Aktiesparekonto", "Pension", "Friværdi", "Krypto", "Ratepension", "Aldersopsparing"}
	InsuranceTypes    = []string{"Indboforsikring", "Bilforsikring", "Sundhedsforsikring", "Livsforsikring", "Rejseforsikring"}
)

// Slider bounds of the onboarding wizard, in display units.
const (
	MinAge = 18
	MaxAge = 75

	MinIncomeThousands  = 100.0
	MaxIncomeThousands  = 1500.0
	IncomeStepThousands = 25.0

	MinHousingValueMillions = 0.5
	MaxHousingValueMillions = 8.0

	MinDebtMillions = 0.1
	MaxDebtMillions = 6.0

	MinNumLoans = 0
	MaxNumLoans = 10
)

// OnboardingAnswers holds everything collected by the four wizard steps.
// Amounts are kept in the units shown to the user: income in thousands,
// housing value and total debt in millions.
type OnboardingAnswers struct {
	// Step 1
	Age             int
	Region          string
	Employment      string
	IncomeThousands float64

	// Step 2
	HousingType          string
	HousingValueMillions float64

	// Step 3
	LoanTypes        []string
	NumLoans         int
	DebtMillions     float64
	InterestRateType string
	VehicleType      string

	// Step 4
	SavingsTypes   []string
	InsuranceTypes []string
	BreakingNews   bool
	DailyDigest    bool
	AIInsights     bool
}

// DefaultOnboardingAnswers returns the values the wizard starts from.
func DefaultOnboardingAnswers() OnboardingAnswers {
	return OnboardingAnswers{
		Age:             32,
		Region:          "Hovedstaden",
		Employment:      "Lønmodtager",
		IncomeThousands: 450,

		HousingType:          "Andelsbolig",
		HousingValueMillions: 2.2,

		LoanTypes:        []string{"Boliglån", "Andelslån"},
		NumLoans:         2,
		DebtMillions:     1.8,
		InterestRateType: "Fast",
		VehicleType:      "Elbil",

		SavingsTypes:   []string{"Aktiesparekonto", "Friværdi"},
		InsuranceTypes: []string{"Indboforsikring", "Bilforsikring"},
		BreakingNews:   true,
		DailyDigest:    true,
		AIInsights:     true,
	}
}

// Toggle adds value to selected when missing and removes it otherwise.
// The input slice is never modified.
func Toggle(selected []string, value string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == value {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, value)
	}
	return out
}
