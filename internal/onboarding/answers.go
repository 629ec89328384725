package onboarding

import (
	"github.com/MKhiriev/okto-client/models"
	"github.com/shopspring/decimal"
)

// AnswersFromProfile seeds the wizard from a stored profile. Fields the
// profile does not carry keep their default answers; amounts are converted
// back into display units.
func AnswersFromProfile(p models.Profile) models.OnboardingAnswers {
	a := models.DefaultOnboardingAnswers()

	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Region != nil {
		a.Region = *p.Region
	}
	if p.Employment != nil {
		a.Employment = *p.Employment
	}
	if p.AnnualGrossIncome != nil {
		a.IncomeThousands = unscale(*p.AnnualGrossIncome, thousand)
	}

	if p.HousingType != nil {
		a.HousingType = *p.HousingType
	}
	if p.HousingValue != nil {
		a.HousingValueMillions = unscale(*p.HousingValue, million)
	}

	if p.LoanTypes != nil {
		a.LoanTypes = cloneOrEmpty(p.LoanTypes)
	}
	if p.NumLoans != nil {
		a.NumLoans = *p.NumLoans
	}
	if p.TotalDebt != nil {
		a.DebtMillions = unscale(*p.TotalDebt, million)
	}
	if p.InterestRateType != nil {
		a.InterestRateType = *p.InterestRateType
	}
	if p.VehicleType != nil {
		a.VehicleType = *p.VehicleType
	}

	if p.SavingsTypes != nil {
		a.SavingsTypes = cloneOrEmpty(p.SavingsTypes)
	}
	if p.InsuranceTypes != nil {
		a.InsuranceTypes = cloneOrEmpty(p.InsuranceTypes)
	}

	a.BreakingNews = p.BreakingNews
	a.DailyDigest = p.DailyDigest
	a.AIInsights = p.AIInsights

	return a
}

func unscale(v float64, factor decimal.Decimal) float64 {
	return decimal.NewFromFloat(v).Div(factor).InexactFloat64()
}
