package onboarding

import (
	"testing"

	"github.com/MKhiriev/okto-client/models"
	"github.com/stretchr/testify/assert"
)

func TestAnswersFromProfile_EmptyProfileKeepsDefaults(t *testing.T) {
	p := models.Profile{ID: 1, UserID: 7, BreakingNews: true, DailyDigest: true, AIInsights: true}

	assert.Equal(t, models.DefaultOnboardingAnswers(), AnswersFromProfile(p))
}

func TestAnswersFromProfile_ConvertsUnits(t *testing.T) {
	p := models.Profile{
		ID:                1,
		UserID:            7,
		Age:               models.Ptr(45),
		Region:            models.Ptr("Syddanmark"),
		AnnualGrossIncome: models.Ptr(725000.0),
		HousingValue:      models.Ptr(3400000.0),
		TotalDebt:         models.Ptr(900000.0),
		LoanTypes:         []string{},
		NumLoans:          models.Ptr(0),
		AIInsights:        true,
	}

	a := AnswersFromProfile(p)
	assert.Equal(t, 45, a.Age)
	assert.Equal(t, "Syddanmark", a.Region)
	assert.Equal(t, 725.0, a.IncomeThousands)
	assert.Equal(t, 3.4, a.HousingValueMillions)
	assert.Equal(t, 0.9, a.DebtMillions)
	assert.Empty(t, a.LoanTypes)
	assert.Zero(t, a.NumLoans)
	assert.False(t, a.BreakingNews)
	assert.False(t, a.DailyDigest)
	assert.True(t, a.AIInsights)
}

// Seeding from a profile and submitting again produces the same amounts.
func TestAnswersFromProfile_RoundTripsThroughPatch(t *testing.T) {
	p := models.Profile{
		AnnualGrossIncome: models.Ptr(1225000.0),
		HousingValue:      models.Ptr(7300000.0),
		TotalDebt:         models.Ptr(100000.0),
	}

	patch := BuildPatch(AnswersFromProfile(p))
	assert.Equal(t, 1225000.0, *patch.AnnualGrossIncome)
	assert.Equal(t, 7300000.0, *patch.HousingValue)
	assert.Equal(t, 100000.0, *patch.TotalDebt)
}
