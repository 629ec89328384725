// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/okto-client/internal/app"
	"github.com/MKhiriev/okto-client/internal/onboarding"
)

var ErrNilServices = errors.New("tui: services are not configured")

// wizardErrorMessage turns an onboarding error into the line shown under the
// wizard. Submission failures already carry a message in the session
// snapshot; fallback is used for them.
func wizardErrorMessage(err error, fallback string) string {
	switch {
	case err == nil, errors.Is(err, onboarding.ErrSubmitting):
		return ""
	case errors.Is(err, onboarding.ErrInvalidAnswers):
		detail := strings.TrimPrefix(err.Error(), onboarding.ErrInvalidAnswers.Error()+": ")
		return fmt.Sprintf(app.MsgInvalidAnswers, detail)
	case fallback != "":
		return fallback
	default:
		return app.MsgUnknownError
	}
}
