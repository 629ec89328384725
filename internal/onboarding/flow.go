package onboarding

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/validators"
	"github.com/MKhiriev/okto-client/models"
	"github.com/shopspring/decimal"
)

// ProfileUpdater receives the single patch produced by the wizard.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, patch models.ProfileUpdateRequest) error
}

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Flow holds the wizard position and the answers collected so far. It is
// safe for use by the UI goroutine and a submitting command at once.
type Flow struct {
	profiles  ProfileUpdater
	validator validators.Validator
	logger    *logger.Logger

	mu         sync.Mutex
	step       Step
	answers    models.OnboardingAnswers
	submitting bool
	done       bool
}

// NewFlow returns a wizard positioned on Step1 with default answers.
func NewFlow(profiles ProfileUpdater, validator validators.Validator, logger *logger.Logger) *Flow {
	return &Flow{
		profiles:  profiles,
		validator: validator,
		logger:    logger,
		step:      Step1,
		answers:   models.DefaultOnboardingAnswers(),
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Answers returns a copy of the current answers.
func (f *Flow) Answers() models.OnboardingAnswers {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.answers
}

// Update applies edit to the answers.
func (f *Flow) Update(edit func(a *models.OnboardingAnswers)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.answers)
}

// Done reports whether the answers were submitted successfully.
func (f *Flow) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Back moves to the previous step.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = Transition(f.step, ActionBack)
}

// Next validates the current step and moves forward. On Step4 it validates
// every step and submits the whole profile; the step does not change.
func (f *Flow) Next(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}

	step, answers := f.step, f.answers
	if err := f.validator.Validate(ctx, answers, step.field()); err != nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	if step != Step4 {
		f.step = Transition(step, ActionNext)
		f.mu.Unlock()
		return nil
	}

	f.submitting = true
	f.mu.Unlock()

	err := f.submit(ctx, answers)

	f.mu.Lock()
	f.submitting = false
	f.done = err == nil
	f.mu.Unlock()

	return err
}

func (f *Flow) submit(ctx context.Context, answers models.OnboardingAnswers) error {
	if err := f.validator.Validate(ctx, answers); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	patch := BuildPatch(answers)
	if err := f.profiles.UpdateProfile(ctx, patch); err != nil {
		f.logger.Err(err).Str("func", "Flow.submit").Msg("error submitting onboarding answers")
		return fmt.Errorf("submit onboarding: %w", err)
	}

	f.logger.Info().Str("func", "Flow.submit").Msg("onboarding submitted")
	return nil
}

// BuildPatch converts the answers into the profile patch sent to the server.
// Income is scaled from thousands and housing value and debt from millions
// using exact decimal arithmetic.
func BuildPatch(a models.OnboardingAnswers) models.ProfileUpdateRequest {
	return models.ProfileUpdateRequest{
		Age:               models.Ptr(a.Age),
		Region:            models.Ptr(a.Region),
		Employment:        models.Ptr(a.Employment),
		AnnualGrossIncome: models.Ptr(scale(a.IncomeThousands, thousand)),

		HousingType:  models.Ptr(a.HousingType),
		HousingValue: models.Ptr(scale(a.HousingValueMillions, million)),

		LoanTypes:        models.Ptr(cloneOrEmpty(a.LoanTypes)),
		NumLoans:         models.Ptr(a.NumLoans),
		TotalDebt:        models.Ptr(scale(a.DebtMillions, million)),
		InterestRateType: models.Ptr(a.InterestRateType),
		VehicleType:      models.Ptr(a.VehicleType),

		SavingsTypes:   models.Ptr(cloneOrEmpty(a.SavingsTypes)),
		InsuranceTypes: models.Ptr(cloneOrEmpty(a.InsuranceTypes)),

		BreakingNews: models.Ptr(a.BreakingNews),
		DailyDigest:  models.Ptr(a.DailyDigest),
		AIInsights:   models.Ptr(a.AIInsights),
	}
}

func scale(v float64, factor decimal.Decimal) float64 {
	return decimal.NewFromFloat(v).Mul(factor).InexactFloat64()
}

// cloneOrEmpty keeps an empty selection as [] on the wire.
func cloneOrEmpty(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
