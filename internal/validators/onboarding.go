package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/okto-client/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to scope onboarding validation to one wizard
// step. Passing no fields validates every step.
const (
	FieldStep1 = "step1"
	FieldStep2 = "step2"
	FieldStep3 = "step3"
	FieldStep4 = "step4"
)

// OnboardingValidator checks wizard answers against the option catalogues and
// slider bounds in models, and rejects empty profile patches.
type OnboardingValidator struct{}

func NewOnboardingValidator() Validator {
	return &OnboardingValidator{}
}

// Validate accepts models.OnboardingAnswers or models.ProfileUpdateRequest
// (value or pointer).
func (v *OnboardingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OnboardingAnswers:
		return v.validateAnswers(value, fields...)
	case *models.OnboardingAnswers:
		return v.validateAnswers(*value, fields...)

	case models.ProfileUpdateRequest:
		return v.validatePatch(value)
	case *models.ProfileUpdateRequest:
		return v.validatePatch(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *OnboardingValidator) validateAnswers(a models.OnboardingAnswers, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStep1, FieldStep2, FieldStep3, FieldStep4}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldStep1:
			err = validateStep1(a)
		case FieldStep2:
			err = validateStep2(a)
		case FieldStep3:
			err = validateStep3(a)
		case FieldStep4:
			err = validateStep4(a)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateStep1(a models.OnboardingAnswers) error {
	if a.Age < models.MinAge || a.Age > models.MaxAge {
		return ErrAgeOutOfRange
	}
	if err := oneOf("region", models.Regions, a.Region); err != nil {
		return err
	}
	if err := oneOf("employment", models.EmploymentTypes, a.Employment); err != nil {
		return err
	}

	income := decimal.NewFromFloat(a.IncomeThousands)
	if !inRange(income, models.MinIncomeThousands, models.MaxIncomeThousands) {
		return ErrIncomeOutOfRange
	}
	// income moves in fixed steps from the lower bound
	step := decimal.NewFromFloat(models.IncomeStepThousands)
	if !income.Sub(decimal.NewFromFloat(models.MinIncomeThousands)).Mod(step).IsZero() {
		return ErrIncomeOutOfRange
	}

	return nil
}

func validateStep2(a models.OnboardingAnswers) error {
	if err := oneOf("housing type", models.HousingTypes, a.HousingType); err != nil {
		return err
	}
	if !inRange(decimal.NewFromFloat(a.HousingValueMillions), models.MinHousingValueMillions, models.MaxHousingValueMillions) {
		return ErrHousingValueOutOfRange
	}
	return nil
}

func validateStep3(a models.OnboardingAnswers) error {
	if err := allOf("loan type", models.LoanTypes, a.LoanTypes); err != nil {
		return err
	}
	if a.NumLoans < models.MinNumLoans || a.NumLoans > models.MaxNumLoans {
		return ErrNumLoansOutOfRange
	}
	if !inRange(decimal.NewFromFloat(a.DebtMillions), models.MinDebtMillions, models.MaxDebtMillions) {
		return ErrDebtOutOfRange
	}
	if err := oneOf("interest rate type", models.InterestRateTypes, a.InterestRateType); err != nil {
		return err
	}
	return oneOf("vehicle type", models.VehicleTypes, a.VehicleType)
}

func validateStep4(a models.OnboardingAnswers) error {
	if err := allOf("savings type", models.SavingsTypes, a.SavingsTypes); err != nil {
		return err
	}
	return allOf("insurance type", models.InsuranceTypes, a.InsuranceTypes)
}

func (v *OnboardingValidator) validatePatch(r models.ProfileUpdateRequest) error {
	if r.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func inRange(d decimal.Decimal, lo, hi float64) bool {
	return d.GreaterThanOrEqual(decimal.NewFromFloat(lo)) && d.LessThanOrEqual(decimal.NewFromFloat(hi))
}

func oneOf(name string, options []string, value string) error {
	if !slices.Contains(options, value) {
		return fmt.Errorf("%w: %s %q", ErrUnknownOption, name, value)
	}
	return nil
}

func allOf(name string, options []string, values []string) error {
	for _, v := range values {
		if err := oneOf(name, options, v); err != nil {
			return err
		}
	}
	return nil
}
