package tui

import "github.com/MKhiriev/okto-client/models"

// sessionChangedMsg and feedChangedMsg carry snapshots published by the
// services.
type sessionChangedMsg struct {
	session models.Session
}

type feedChangedMsg struct {
	state models.FeedState
}

// authDoneMsg ends a login, signup or retry attempt.
type authDoneMsg struct {
	err error
}

type feedLoadedMsg struct {
	err error
}

type newsRefreshedMsg struct {
	err error
}

type categorySelectedMsg struct {
	err error
}

type onboardingMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
