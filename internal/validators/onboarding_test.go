package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/okto-client/models"
	"github.com/stretchr/testify/assert"
)

func TestOnboardingValidator_Defaults(t *testing.T) {
	v := NewOnboardingValidator()
	assert.NoError(t, v.Validate(context.Background(), models.DefaultOnboardingAnswers()))
}

func TestOnboardingValidator_Answers(t *testing.T) {
	v := NewOnboardingValidator()

	tests := []struct {
		name    string
		mutate  func(a *models.OnboardingAnswers)
		fields  []string
		wantErr error
	}{
		{name: "min bounds", mutate: func(a *models.OnboardingAnswers) {
			a.Age, a.IncomeThousands, a.HousingValueMillions, a.DebtMillions, a.NumLoans = 18, 100, 0.5, 0.1, 0
		}},
		{name: "max bounds", mutate: func(a *models.OnboardingAnswers) {
			a.Age, a.IncomeThousands, a.HousingValueMillions, a.DebtMillions, a.NumLoans = 75, 1500, 8, 6, 10
		}},
		{name: "too young", mutate: func(a *models.OnboardingAnswers) { a.Age = 17 }, wantErr: ErrAgeOutOfRange},
		{name: "too old", mutate: func(a *models.OnboardingAnswers) { a.Age = 76 }, wantErr: ErrAgeOutOfRange},
		{name: "income below", mutate: func(a *models.OnboardingAnswers) { a.IncomeThousands = 75 }, wantErr: ErrIncomeOutOfRange},
		{name: "income off step", mutate: func(a *models.OnboardingAnswers) { a.IncomeThousands = 460 }, wantErr: ErrIncomeOutOfRange},
		{name: "unknown region", mutate: func(a *models.OnboardingAnswers) { a.Region = "Skåne" }, wantErr: ErrUnknownOption},
		{name: "unknown employment", mutate: func(a *models.OnboardingAnswers) { a.Employment = "Astronaut" }, wantErr: ErrUnknownOption},
		{name: "housing value above", mutate: func(a *models.OnboardingAnswers) { a.HousingValueMillions = 8.1 }, wantErr: ErrHousingValueOutOfRange},
		{name: "unknown housing", mutate: func(a *models.OnboardingAnswers) { a.HousingType = "Slot" }, wantErr: ErrUnknownOption},
		{name: "debt below", mutate: func(a *models.OnboardingAnswers) { a.DebtMillions = 0 }, wantErr: ErrDebtOutOfRange},
		{name: "too many loans", mutate: func(a *models.OnboardingAnswers) { a.NumLoans = 11 }, wantErr: ErrNumLoansOutOfRange},
		{name: "unknown loan type", mutate: func(a *models.OnboardingAnswers) { a.LoanTypes = []string{"Boliglån", "Kviklån"} }, wantErr: ErrUnknownOption},
		{name: "unknown vehicle", mutate: func(a *models.OnboardingAnswers) { a.VehicleType = "Hest" }, wantErr: ErrUnknownOption},
		{name: "unknown savings", mutate: func(a *models.OnboardingAnswers) { a.SavingsTypes = []string{"Guld"} }, wantErr: ErrUnknownOption},
		{name: "unknown insurance", mutate: func(a *models.OnboardingAnswers) { a.InsuranceTypes = []string{"Dyreforsikring"} }, wantErr: ErrUnknownOption},
		{name: "empty selections", mutate: func(a *models.OnboardingAnswers) {
			a.LoanTypes, a.SavingsTypes, a.InsuranceTypes = nil, nil, nil
		}},
		{name: "scoped to step 2 ignores step 1", mutate: func(a *models.OnboardingAnswers) { a.Age = 5 }, fields: []string{FieldStep2}},
		{name: "unknown field", mutate: func(a *models.OnboardingAnswers) {}, fields: []string{"step5"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := models.DefaultOnboardingAnswers()
			tt.mutate(&a)

			err := v.Validate(context.Background(), &a, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOnboardingValidator_Patch(t *testing.T) {
	v := NewOnboardingValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.ProfileUpdateRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(context.Background(), &models.ProfileUpdateRequest{Age: models.Ptr(40)}))
	assert.ErrorIs(t, v.Validate(context.Background(), "age"), ErrUnsupportedType)
}
