package core

import (
	"time"
)

// InputType is the shape the classifier detected in raw input.
type InputType string

const (
	InputEmail   InputType = "email"
	InputPhone   InputType = "phone"
	InputURL     InputType = "url"
	InputUnknown InputType = "unknown"
)

// RiskLevel is the outcome of a check. The heuristic path produces
// safe/low/medium/high/critical; the stored-record path reports the
// record category directly (safe/suspect/spam/phishing).
type RiskLevel string

const (
	LevelSafe     RiskLevel = "safe"
	LevelLow      RiskLevel = "low"
	LevelMedium   RiskLevel = "medium"
	LevelHigh     RiskLevel = "high"
	LevelCritical RiskLevel = "critical"
	LevelSuspect  RiskLevel = "suspect"
	LevelSpam     RiskLevel = "spam"
	LevelPhishing RiskLevel = "phishing"
)

// Category classifies a stored email record. It is recomputed on demand
// and never persisted.
type Category string

const (
	CategorySafe     Category = "safe"
	CategorySuspect  Category = "suspect"
	CategorySpam     Category = "spam"
	CategoryPhishing Category = "phishing"
)

// EmailRecord is an email row owned by the external record store.
// The engine only reads it.
type EmailRecord struct {
	ID           int64
	FromEmail    string
	ToEmail      string
	Title        string
	Content      string
	ReceivedTime time.Time
}

// ScoreBreakdown accumulates the partial score and human-readable
// indicators produced by one analyzer. Indicators keep detection order
// and may repeat across analyzers.
type ScoreBreakdown struct {
	Score      int
	Indicators []string
}

// Add records one fired rule.
func (b *ScoreBreakdown) Add(score int, indicator string) {
	b.Score += score
	b.Indicators = append(b.Indicators, indicator)
}

// Merge appends another breakdown, preserving indicator order.
func (b *ScoreBreakdown) Merge(other ScoreBreakdown) {
	b.Score += other.Score
	b.Indicators = append(b.Indicators, other.Indicators...)
}

// RiskVerdict is the terminal output of one check. It is never mutated
// after creation.
type RiskVerdict struct {
	Level      RiskLevel
	Score      int
	Message    string
	Indicators []string
	CheckedAt  time.Time
	// Source records which path produced the verdict: "heuristic",
	// "corpus" or "cache".
	Source string
	// Matched and Relevance are set when a corpus lookup short-circuited
	// the heuristics.
	Matched   *EmailRecord
	Relevance float64
}

// InboundEmail is a transient envelope handed to filter adapters.
type InboundEmail struct {
	From    string
	To      []string
	Subject string
	Body    string
	Headers map[string][]string
}
