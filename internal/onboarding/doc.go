// Package onboarding implements the four-step profile wizard shown to users
// whose profile is not complete yet.
//
// Navigation follows a fixed transition table. Answers are validated step by
// step on Next and submitted as one profile patch when Next is taken on the
// last step; nothing is sent before that.
package onboarding
