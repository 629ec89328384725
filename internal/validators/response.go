package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/okto-client/models"
)

// ResponseValidator checks decoded API payloads for the fields the client
// relies on. A payload that decodes but lacks one of them is treated by the
// transport as undecodable.
type ResponseValidator struct{}

// NewResponseValidator constructs a [ResponseValidator].
func NewResponseValidator() Validator {
	return &ResponseValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.AuthResponse, models.User, models.Profile, []models.NewsArticle (or a pointer to
// it), models.NewsArticle, models.InsightsResponse and models.NewsSources, as
// values or pointers. Field scoping is not supported for payloads.
func (v *ResponseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.AuthResponse:
		return v.validateAuthResponse(value)
	case *models.AuthResponse:
		return v.validateAuthResponse(*value)

	case models.User:
		return v.validateUser(value)
	case *models.User:
		return v.validateUser(*value)

	case models.Profile:
		return v.validateProfile(value)
	case *models.Profile:
		return v.validateProfile(*value)

	case models.NewsArticle:
		return v.validateArticle(value)
	case []models.NewsArticle:
		return v.validateArticles(value)
	case *[]models.NewsArticle:
		return v.validateArticles(*value)

	case models.InsightsResponse:
		return v.validateInsights(value)
	case *models.InsightsResponse:
		return v.validateInsights(*value)

	case models.NewsSources:
		return v.validateSources(value)
	case *models.NewsSources:
		return v.validateSources(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResponseValidator) validateAuthResponse(r models.AuthResponse) error {
	if r.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if r.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func (v *ResponseValidator) validateUser(u models.User) error {
	if u.ID <= 0 {
		return ErrInvalidUserID
	}
	if u.Email == "" {
		return ErrMissingEmail
	}
	return nil
}

func (v *ResponseValidator) validateProfile(p models.Profile) error {
	if p.ID <= 0 {
		return ErrInvalidProfileID
	}
	if p.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func (v *ResponseValidator) validateArticle(a models.NewsArticle) error {
	if a.ID <= 0 {
		return ErrInvalidArticleID
	}
	if a.Title == "" {
		return ErrMissingTitle
	}
	if a.URL == "" {
		return ErrMissingURL
	}
	return nil
}

func (v *ResponseValidator) validateArticles(articles []models.NewsArticle) error {
	for i, a := range articles {
		if err := v.validateArticle(a); err != nil {
			return fmt.Errorf("article %d: %w", i, err)
		}
	}
	return nil
}

func (v *ResponseValidator) validateInsights(r models.InsightsResponse) error {
	if r.Insights == nil {
		return ErrMissingInsights
	}
	for i, in := range r.Insights {
		if in.Title == "" {
			return fmt.Errorf("insight %d: %w", i, ErrMissingTitle)
		}
		if !in.Kind.Valid() {
			return fmt.Errorf("insight %d: %w", i, ErrInvalidInsightKind)
		}
	}
	return nil
}

func (v *ResponseValidator) validateSources(s models.NewsSources) error {
	if s.Sources == nil {
		return ErrMissingSources
	}
	return nil
}
