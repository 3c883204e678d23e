// Package scoring computes the six-axis language-development impact of a
// screen-exposure profile. The scorer is a pure transform: neutral base,
// a fixed sequence of additive adjustments, clamp, mean, classify.
package scoring

import (
	"context"

	"github.com/parvinm/screenwise/internal/domain/form"
)

// Scoring constants.
const (
	neutralScore = 5.0
	minScore     = 0.0
	maxScore     = 10.0
	axisCount    = 6

	// Excessive use thresholds (hours/day, sessions/week).
	excessiveDurationHours  = 2.0
	excessiveWeeklySessions = 7.0
	excessivePenalty        = 1.5

	// Age thresholds in months.
	ageHighRiskMonths = 12
	ageToddlerMonths  = 36

	// Contextual gates.
	backgroundFreqGate     = 3.0
	maternalScreenTimeGate = 4.0

	// Harm classification thresholds on the mean of the clamped axes.
	// Boundary values fall into the lower bracket (strict comparisons).
	harmLowThreshold    = 7.0
	harmMediumThreshold = 4.0
)

// HarmLevel is the three-tier classification of the mean sub-score.
type HarmLevel string

// Harm levels.
const (
	HarmLow    HarmLevel = "Low"
	HarmMedium HarmLevel = "Medium"
	HarmHigh   HarmLevel = "High"
)

// Default recommendation texts keyed by harm level.
var defaultSuggestions = map[HarmLevel]string{
	HarmHigh:   "Reduce screen time, focus on mediated educational content, and increase direct interactions.",
	HarmMedium: "Monitor usage; add more parental involvement for better outcomes.",
	HarmLow:    "Current setup seems beneficial—continue with educational focus.",
}

// Scores holds the six named impact axes. Each value lies in [0, 10]
// once the scorer returns.
type Scores struct {
	Vocabulary        float64 `json:"vocabulary"`
	MentalVerb        float64 `json:"mental_verb"`
	Expressive        float64 `json:"expressive"`
	VerbalInteraction float64 `json:"verbal_interaction"`
	SentenceComp      float64 `json:"sentence_comp"`
	SocialLang        float64 `json:"social_lang"`
}

// addAll applies the same delta to every axis. Bulk adjustments
// (instructive, unmediated, excessive use, age under 12) go through here
// so all six axes are always touched identically.
func (s *Scores) addAll(delta float64) {
	s.Vocabulary += delta
	s.MentalVerb += delta
	s.Expressive += delta
	s.VerbalInteraction += delta
	s.SentenceComp += delta
	s.SocialLang += delta
}

// clampAll limits every axis to [0, 10].
func (s *Scores) clampAll() {
	s.Vocabulary = clamp(s.Vocabulary)
	s.MentalVerb = clamp(s.MentalVerb)
	s.Expressive = clamp(s.Expressive)
	s.VerbalInteraction = clamp(s.VerbalInteraction)
	s.SentenceComp = clamp(s.SentenceComp)
	s.SocialLang = clamp(s.SocialLang)
}

// Mean returns the arithmetic mean of the six axes.
func (s Scores) Mean() float64 {
	sum := s.Vocabulary + s.MentalVerb + s.Expressive +
		s.VerbalInteraction + s.SentenceComp + s.SocialLang
	return sum / axisCount
}

func clamp(v float64) float64 {
	if v < minScore {
		return minScore
	}
	if v > maxScore {
		return maxScore
	}
	return v
}

// Result is the outcome of scoring one form.
type Result struct {
	Scores      Scores    `json:"scores"`
	Average     float64   `json:"average"`
	HarmLevel   HarmLevel `json:"harm_level"`
	Suggestions string    `json:"suggestions"`
}

// Scorer computes an impact result from a validated form.
type Scorer interface {
	// Score computes the result, honoring ctx for cancellation.
	Score(ctx context.Context, v form.Values) (Result, error)
}

// HeuristicScorer implements Scorer with the fixed adjustment tables.
// The zero configuration reproduces the published heuristic exactly.
type HeuristicScorer struct {
	suggestions map[HarmLevel]string
}

// Option applies a configuration option to the HeuristicScorer.
type Option func(*HeuristicScorer)

// WithSuggestions overrides recommendation texts per harm level. Levels
// absent from the map keep their defaults; empty texts are ignored.
func WithSuggestions(texts map[HarmLevel]string) Option {
	return func(s *HeuristicScorer) {
		for level, text := range texts {
			if text == "" {
				continue
			}
			switch level {
			case HarmLow, HarmMedium, HarmHigh:
				s.suggestions[level] = text
			}
		}
	}
}

// NewHeuristicScorer creates a scorer with configuration options.
func NewHeuristicScorer(opts ...Option) *HeuristicScorer {
	s := &HeuristicScorer{
		suggestions: map[HarmLevel]string{
			HarmLow:    defaultSuggestions[HarmLow],
			HarmMedium: defaultSuggestions[HarmMedium],
			HarmHigh:   defaultSuggestions[HarmHigh],
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes the impact result for the given form. It is total over
// well-typed input: out-of-range numerics flow through the arithmetic and
// are absorbed by the final clamp. The only error path is ctx cancellation.
func (h *HeuristicScorer) Score(ctx context.Context, v form.Values) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s := Scores{
		Vocabulary:        neutralScore,
		MentalVerb:        neutralScore,
		Expressive:        neutralScore,
		VerbalInteraction: neutralScore,
		SentenceComp:      neutralScore,
		SocialLang:        neutralScore,
	}

	// Content type: exactly one branch fires. An unrecognized value
	// (which validation upstream rejects anyway) leaves the axes neutral.
	switch v.ContentType {
	case form.ContentEducational:
		s.Vocabulary += 2
		s.MentalVerb += 2
		s.SentenceComp += 1
	case form.ContentNonEducational:
		s.Vocabulary -= 2
		s.Expressive -= 1
		s.SocialLang -= 1
	case form.ContentBackground:
		s.VerbalInteraction -= 3
		s.Expressive -= 2
		s.SocialLang -= 2
	case form.ContentInteractive:
		s.Expressive += 1
		s.SocialLang += 2
		s.MentalVerb += 1
	}

	// Parental involvement.
	switch v.ParentalInvolvement {
	case form.InvolvementInstructive:
		s.addAll(2)
	case form.InvolvementCoViewing:
		s.VerbalInteraction += 2
		s.Expressive += 1
	case form.InvolvementUnmediated:
		s.addAll(-2)
	}

	// Age. The collector constrains age to [12, 60], but under-12 input
	// still gets the high-risk penalty rather than an assumption.
	switch {
	case v.AgeMonths < ageHighRiskMonths:
		s.addAll(-2)
	case v.AgeMonths <= ageToddlerMonths:
		s.Vocabulary -= 1
	}

	// Excessive use, independent of the age rule.
	if v.Duration > excessiveDurationHours || v.Frequency > excessiveWeeklySessions {
		s.addAll(-excessivePenalty)
	}

	// Contextual adjustments, each independently gated.
	if v.SimultaneousUse {
		s.VerbalInteraction -= 1
	}
	if v.BackgroundFreq > backgroundFreqGate {
		s.Expressive -= 2
		s.VerbalInteraction -= 2
	}
	if v.MaternalScreenTime > maternalScreenTimeGate {
		s.SocialLang -= 1
	}
	if v.MaternalMentalHealth {
		s.MentalVerb -= 1
	}

	s.clampAll()
	avg := s.Mean()
	level := classify(avg)

	return Result{
		Scores:      s,
		Average:     avg,
		HarmLevel:   level,
		Suggestions: h.suggestions[level],
	}, nil
}

// classify maps the mean of the clamped axes to a harm level. The
// thresholds and strict comparisons come from the cited literature and
// are preserved verbatim.
func classify(avg float64) HarmLevel {
	switch {
	case avg > harmLowThreshold:
		return HarmLow
	case avg > harmMediumThreshold:
		return HarmMedium
	default:
		return HarmHigh
	}
}

// DefaultSuggestion returns the built-in recommendation for a harm level.
func DefaultSuggestion(level HarmLevel) string {
	return defaultSuggestions[level]
}
