package utils

import "github.com/google/uuid"

// InsightIDGenerator assigns local identifiers to insights after every fetch.
// Ids are random (v4): they only need to be unique within one feed snapshot
// and are never sent back to the server.
type InsightIDGenerator struct {
}

func NewInsightIDGenerator() *InsightIDGenerator {
	return &InsightIDGenerator{}
}

// Generate returns a new random UUID string.
func (g *InsightIDGenerator) Generate() string {
	return uuid.New().String()
}
