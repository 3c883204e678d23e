package samples

import (
	"context"
	"fmt"

	"github.com/parvinm/screenwise/pkg/logger"
)

// Score band boundaries used to cross-check returned harm levels.
const (
	maxScore        = 10.0
	lowThreshold    = 7.0
	mediumThreshold = 4.0
)

var axisKeys = []string{
	"vocabulary",
	"mental_verb",
	"expressive",
	"verbal_interaction",
	"sentence_comp",
	"social_lang",
}

// verifyResults checks every returned assessment for internal consistency.
func verifyResults(ctx context.Context, results []AssessResult) error {
	logger.Get().Info(ctx, "verifying assessment results", logger.Int("count", len(results)))

	verified := 0
	for i, res := range results {
		if res.HarmLevel == "" {
			// Slot of a failed submission.
			continue
		}
		if err := verifySingleResult(res); err != nil {
			return fmt.Errorf("result %d inconsistent: %w", i, err)
		}
		verified++
	}

	logger.Get().Info(ctx, "all results verified", logger.Int("verified", verified))
	return nil
}

func verifySingleResult(res AssessResult) error {
	var sum float64
	for _, key := range axisKeys {
		v, ok := res.Scores[key]
		if !ok {
			return fmt.Errorf("missing axis %q", key)
		}
		if v < 0 || v > maxScore {
			return fmt.Errorf("axis %q out of range: %v", key, v)
		}
		sum += v
	}

	avg := sum / float64(len(axisKeys))
	if diff := avg - res.Average; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("average mismatch: got %v, computed %v", res.Average, avg)
	}

	expected := classify(res.Average)
	if res.HarmLevel != expected {
		return fmt.Errorf("harm level mismatch: got %q, expected %q for average %v",
			res.HarmLevel, expected, res.Average)
	}

	if res.Suggestions == "" {
		return fmt.Errorf("missing suggestion text for harm level %q", res.HarmLevel)
	}
	return nil
}

func classify(avg float64) string {
	switch {
	case avg > lowThreshold:
		return "Low"
	case avg > mediumThreshold:
		return "Medium"
	default:
		return "High"
	}
}
