package onboarding

import "errors"

var (
	// ErrInvalidAnswers wraps the validator error of the current step.
	ErrInvalidAnswers = errors.New("invalid onboarding answers")

	// ErrSubmitting is returned while a submission is in flight.
	ErrSubmitting = errors.New("onboarding submission in progress")
)
