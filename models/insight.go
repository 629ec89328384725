package models

import (
	"encoding/json"
	"fmt"
)

// InsightKind classifies a personalised insight.
type InsightKind string

const (
	InsightOpportunity InsightKind = "opportunity"
	InsightBenefit     InsightKind = "benefit"
	InsightMarket      InsightKind = "market"
	InsightAlert       InsightKind = "alert"
)

// Valid reports whether k is one of the known kinds.
func (k InsightKind) Valid() bool {
	switch k {
	case InsightOpportunity, InsightBenefit, InsightMarket, InsightAlert:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown kinds instead of keeping a meaningless value.
func (k *InsightKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !InsightKind(s).Valid() {
		return fmt.Errorf("unknown insight type %q", s)
	}
	*k = InsightKind(s)
	return nil
}

// Insight is a personalised hint shown next to the feed.
//
// ID is assigned on the client when the payload is received. It is not a
// server identity: it changes on every reload and must never be persisted or
// compared across fetches.
type Insight struct {
	ID          string      `json:"-"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Kind        InsightKind `json:"type"`
}

// InsightsResponse is the body of GET /insights/{userId}.
type InsightsResponse struct {
	Insights []Insight `json:"insights"`
}
