package models

import "encoding/json"

// Profile is the financial profile snapshot of a user as returned by
// GET /users/{id}/profile. Every optional field may be nil, meaning the user
// has not provided it yet.
//
// ID is assigned by the server, UserID never changes once set.
type Profile struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// Basic info.
	Age               *int     `json:"age,omitempty"`
	Region            *string  `json:"region,omitempty"`
	Employment        *string  `json:"employment,omitempty"`
	AnnualGrossIncome *float64 `json:"annual_gross_income,omitempty"`

	// Housing.
	HousingType  *string  `json:"housing_type,omitempty"`
	HousingValue *float64 `json:"housing_value,omitempty"`

	// Loans and vehicle.
	LoanTypes        []string `json:"loan_types,omitempty"`
	NumLoans         *int     `json:"num_loans,omitempty"`
	TotalDebt        *float64 `json:"total_debt,omitempty"`
	InterestRateType *string  `json:"interest_rate_type,omitempty"`
	VehicleType      *string  `json:"vehicle_type,omitempty"`

	// Savings and insurance.
	SavingsTypes   []string `json:"savings_types,omitempty"`
	InsuranceTypes []string `json:"insurance_types,omitempty"`

	// Notification preferences. Absent or null values decode as true.
	BreakingNews bool `json:"breaking_news"`
	DailyDigest  bool `json:"daily_digest"`
	AIInsights   bool `json:"ai_insights"`
}

// UnmarshalJSON decodes a profile applying the server-side defaults for the
// notification flags.
func (p *Profile) UnmarshalJSON(b []byte) error {
	type plain Profile
	v := plain{BreakingNews: true, DailyDigest: true, AIInsights: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Profile(v)
	return nil
}

// IsComplete reports whether the onboarding has been finished. The age is
// the field the wizard always sets, so its presence marks completion.
func (p Profile) IsComplete() bool {
	return p.Age != nil
}

// ProfileUpdateRequest is a sparse patch sent with PUT /users/{id}/profile.
// Nil fields are omitted from the body and left untouched by the server.
// Slices are pointers so that an explicitly empty selection can be told
// apart from "not provided".
type ProfileUpdateRequest struct {
	Age               *int     `json:"age,omitempty"`
	Region            *string  `json:"region,omitempty"`
	Employment        *string  `json:"employment,omitempty"`
	AnnualGrossIncome *float64 `json:"annual_gross_income,omitempty"`

	HousingType  *string  `json:"housing_type,omitempty"`
	HousingValue *float64 `json:"housing_value,omitempty"`

	LoanTypes        *[]string `json:"loan_types,omitempty"`
	NumLoans         *int      `json:"num_loans,omitempty"`
	TotalDebt        *float64  `json:"total_debt,omitempty"`
	InterestRateType *string   `json:"interest_rate_type,omitempty"`
	VehicleType      *string   `json:"vehicle_type,omitempty"`

	SavingsTypes   *[]string `json:"savings_types,omitempty"`
	InsuranceTypes *[]string `json:"insurance_types,omitempty"`

	BreakingNews *bool `json:"breaking_news,omitempty"`
	DailyDigest  *bool `json:"daily_digest,omitempty"`
	AIInsights   *bool `json:"ai_insights,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (r ProfileUpdateRequest) IsEmpty() bool {
	return r == ProfileUpdateRequest{}
}

// Ptr returns a pointer to a copy of v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}
