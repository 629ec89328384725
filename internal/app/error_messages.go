// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Okto client services and presentation layer.
//
// All Msg* constants are human-readable message strings that are stored in
// session and feed snapshots and shown to the user. Keeping them in one
// place ensures consistent wording throughout the client.
package app

const (
	// MsgInvalidURL is shown when a request URL cannot be built.
	MsgInvalidURL = "Invalid URL"

	// MsgDecodingFailed is shown when a response body cannot be decoded or
	// lacks required fields. The verb receives the decoder detail.
	MsgDecodingFailed = "Failed to decode response: %s"

	// MsgUnauthorized is shown when the server rejected the credentials or
	// the session token. The session has been ended at this point.
	MsgUnauthorized = "Unauthorized. Please log in again."

	// MsgNotFound is shown for 404 responses.
	MsgNotFound = "Resource not found"

	// MsgServerError is shown for 5xx responses.
	MsgServerError = "Server error. Please try again later."

	// MsgUnknownError is shown for any other failure.
	MsgUnknownError = "An unknown error occurred"

	// MsgNetworkError is shown when no response was received. The verb
	// receives the network error detail.
	MsgNetworkError = "Network error: %s"

	// MsgNoActiveSession is shown when an operation needs a signed-in user.
	MsgNoActiveSession = "User ID not available"

	// MsgLocalStorageFailed is shown when the local token store cannot be
	// read or written.
	MsgLocalStorageFailed = "Could not access local storage"

	// MsgInvalidAnswers is shown when onboarding answers fail validation.
	// The verb receives the validation detail.
	MsgInvalidAnswers = "Please check your answers: %s"
)
