package tui

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/okto-client/internal/onboarding"
	"github.com/MKhiriev/okto-client/models"
	"github.com/shopspring/decimal"
)

// wizardField is one editable row of an onboarding step.
type wizardField struct {
	label string
	// options is set for multi-select fields only.
	options []string

	adjust func(a *models.OnboardingAnswers, dir int)
	toggle func(a *models.OnboardingAnswers, option int)
	value  func(a models.OnboardingAnswers) string
	chosen func(a models.OnboardingAnswers) []string
}

func (f wizardField) multi() bool {
	return len(f.options) > 0
}

var wizardFields = map[onboarding.Step][]wizardField{
	onboarding.Step1: {
		intSliderField("Age", models.MinAge, models.MaxAge, func(a *models.OnboardingAnswers) *int { return &a.Age }),
		choiceField("Region", models.Regions, func(a *models.OnboardingAnswers) *string { return &a.Region }),
		choiceField("Employment", models.EmploymentTypes, func(a *models.OnboardingAnswers) *string { return &a.Employment }),
		sliderField("Gross income", "k kr/yr", models.MinIncomeThousands, models.MaxIncomeThousands, models.IncomeStepThousands, 0,
			func(a *models.OnboardingAnswers) *float64 { return &a.IncomeThousands }),
	},
	onboarding.Step2: {
		choiceField("Housing", models.HousingTypes, func(a *models.OnboardingAnswers) *string { return &a.HousingType }),
		sliderField("Housing value", "mio kr", models.MinHousingValueMillions, models.MaxHousingValueMillions, 0.1, 1,
			func(a *models.OnboardingAnswers) *float64 { return &a.HousingValueMillions }),
	},
	onboarding.Step3: {
		multiField("Loan types", models.LoanTypes, func(a *models.OnboardingAnswers) *[]string { return &a.LoanTypes }),
		intSliderField("Number of loans", models.MinNumLoans, models.MaxNumLoans, func(a *models.OnboardingAnswers) *int { return &a.NumLoans }),
		sliderField("Total debt", "mio kr", models.MinDebtMillions, models.MaxDebtMillions, 0.1, 1,
			func(a *models.OnboardingAnswers) *float64 { return &a.DebtMillions }),
		choiceField("Interest rate", models.InterestRateTypes, func(a *models.OnboardingAnswers) *string { return &a.InterestRateType }),
		choiceField("Vehicle", models.VehicleTypes, func(a *models.OnboardingAnswers) *string { return &a.VehicleType }),
	},
	onboarding.Step4: {
		multiField("Savings", models.SavingsTypes, func(a *models.OnboardingAnswers) *[]string { return &a.SavingsTypes }),
		multiField("Insurance", models.InsuranceTypes, func(a *models.OnboardingAnswers) *[]string { return &a.InsuranceTypes }),
		toggleField("Breaking news", func(a *models.OnboardingAnswers) *bool { return &a.BreakingNews }),
		toggleField("Daily digest", func(a *models.OnboardingAnswers) *bool { return &a.DailyDigest }),
		toggleField("AI insights", func(a *models.OnboardingAnswers) *bool { return &a.AIInsights }),
	},
}

func sliderField(label, unit string, lo, hi, step float64, places int32, ref func(*models.OnboardingAnswers) *float64) wizardField {
	return wizardField{
		label: label,
		adjust: func(a *models.OnboardingAnswers, dir int) {
			v := ref(a)
			*v = stepValue(*v, step, lo, hi, dir)
		},
		value: func(a models.OnboardingAnswers) string {
			return decimal.NewFromFloat(*ref(&a)).StringFixed(places) + " " + unit
		},
	}
}

func intSliderField(label string, lo, hi int, ref func(*models.OnboardingAnswers) *int) wizardField {
	return wizardField{
		label: label,
		adjust: func(a *models.OnboardingAnswers, dir int) {
			v := ref(a)
			*v = min(max(*v+dir, lo), hi)
		},
		value: func(a models.OnboardingAnswers) string {
			return strconv.Itoa(*ref(&a))
		},
	}
}

func choiceField(label string, options []string, ref func(*models.OnboardingAnswers) *string) wizardField {
	return wizardField{
		label: label,
		adjust: func(a *models.OnboardingAnswers, dir int) {
			v := ref(a)
			*v = cycle(options, *v, dir)
		},
		value: func(a models.OnboardingAnswers) string {
			return "< " + *ref(&a) + " >"
		},
	}
}

func multiField(label string, options []string, ref func(*models.OnboardingAnswers) *[]string) wizardField {
	return wizardField{
		label:   label,
		options: options,
		toggle: func(a *models.OnboardingAnswers, option int) {
			if option < 0 || option >= len(options) {
				return
			}
			v := ref(a)
			*v = models.Toggle(*v, options[option])
		},
		value: func(a models.OnboardingAnswers) string {
			return fmt.Sprintf("%d selected", len(*ref(&a)))
		},
		chosen: func(a models.OnboardingAnswers) []string {
			return *ref(&a)
		},
	}
}

func toggleField(label string, ref func(*models.OnboardingAnswers) *bool) wizardField {
	flip := func(a *models.OnboardingAnswers) {
		v := ref(a)
		*v = !*v
	}
	return wizardField{
		label:  label,
		adjust: func(a *models.OnboardingAnswers, _ int) { flip(a) },
		toggle: func(a *models.OnboardingAnswers, _ int) { flip(a) },
		value: func(a models.OnboardingAnswers) string {
			return onOff(*ref(&a))
		},
	}
}

// stepValue moves v by one step in direction dir and clamps it to [lo, hi].
// Decimal arithmetic keeps repeated steps free of float drift.
func stepValue(v, step, lo, hi float64, dir int) float64 {
	next := decimal.NewFromFloat(v).Add(decimal.NewFromFloat(step).Mul(decimal.NewFromInt(int64(dir))))
	if lower := decimal.NewFromFloat(lo); next.LessThan(lower) {
		next = lower
	}
	if upper := decimal.NewFromFloat(hi); next.GreaterThan(upper) {
		next = upper
	}
	return next.InexactFloat64()
}

// cycle returns the option dir positions away from current, wrapping around.
// An unknown current value selects the first option.
func cycle(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	idx := slices.Index(options, current)
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	return options[((idx+dir)%n+n)%n]
}
