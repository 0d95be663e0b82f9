package analyzer

import (
	"time"

	"github.com/mikey/scam-check/internal/core"
)

// HeuristicSource marks verdicts produced by the rule pipeline.
const HeuristicSource = "heuristic"

var levelMessages = map[core.RiskLevel]string{
	core.LevelCritical: "Severe scam indicators detected!",
	core.LevelHigh:     "Strong scam indicators detected!",
	core.LevelMedium:   "Suspicious indicators detected",
	core.LevelLow:      "Some indicators warrant a closer look",
	core.LevelSafe:     "No scam indicators found",
}

var categoryMessages = map[core.Category]string{
	core.CategoryPhishing: "Known phishing email!",
	core.CategorySpam:     "Known spam email!",
	core.CategorySuspect:  "Previously seen suspicious email",
	core.CategorySafe:     "Previously seen, looks safe",
}

// categoryScores synthesizes a numeric score for stored-record verdicts
// from each category's level floor.
var categoryScores = map[core.Category]int{
	core.CategoryPhishing: 80,
	core.CategorySpam:     60,
	core.CategorySuspect:  40,
	core.CategorySafe:     0,
}

// LevelForScore maps an aggregate score to its discrete risk level.
func LevelForScore(score int) core.RiskLevel {
	switch {
	case score >= 80:
		return core.LevelCritical
	case score >= 60:
		return core.LevelHigh
	case score >= 40:
		return core.LevelMedium
	case score >= 20:
		return core.LevelLow
	default:
		return core.LevelSafe
	}
}

// Aggregate folds a merged breakdown into the final verdict. The score
// is clamped at zero; contributors are all non-negative, so the clamp
// only guards an impossible negative total.
func Aggregate(breakdown core.ScoreBreakdown) *core.RiskVerdict {
	score := breakdown.Score
	if score < 0 {
		score = 0
	}
	level := LevelForScore(score)
	return &core.RiskVerdict{
		Level:      level,
		Score:      score,
		Message:    levelMessages[level],
		Indicators: breakdown.Indicators,
		CheckedAt:  time.Now(),
		Source:     HeuristicSource,
	}
}

// CategoryMessage returns the canned message for a record category.
func CategoryMessage(category core.Category) string {
	return categoryMessages[category]
}

// CategoryScore returns the synthetic score for a record category.
func CategoryScore(category core.Category) int {
	return categoryScores[category]
}
