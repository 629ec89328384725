package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// server payloads
	ErrMissingAccessToken = errors.New("access_token is required")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrMissingEmail       = errors.New("email is required")
	ErrInvalidProfileID   = errors.New("invalid profile id")
	ErrInvalidArticleID   = errors.New("invalid article id")
	ErrMissingTitle       = errors.New("title is required")
	ErrMissingURL         = errors.New("url is required")
	ErrInvalidInsightKind = errors.New("invalid insight type")
	ErrMissingSources     = errors.New("sources are required")
	ErrMissingInsights    = errors.New("insights are required")

	// onboarding answers
	ErrAgeOutOfRange          = errors.New("age out of range")
	ErrIncomeOutOfRange       = errors.New("income out of range")
	ErrHousingValueOutOfRange = errors.New("housing value out of range")
	ErrDebtOutOfRange         = errors.New("total debt out of range")
	ErrNumLoansOutOfRange     = errors.New("number of loans out of range")
	ErrUnknownOption          = errors.New("unknown option")
	ErrNoFieldsToUpdate       = errors.New("at least one field must be provided for update")
)
