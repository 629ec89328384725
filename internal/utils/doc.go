// Package utils provides general-purpose helper utilities used across the
// client: HTTP client construction, unverified JWT claim inspection and
// identifier generation.
package utils
