package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/parvinm/screenwise/internal/domain/form"
	"github.com/parvinm/screenwise/internal/domain/scoring"
)

type scoreFlags struct {
	contentType          string
	duration             float64
	frequency            float64
	ageMonths            int
	parentalInvolvement  string
	simultaneousUse      bool
	backgroundFreq       float64
	maternalScreenTime   float64
	maternalMentalHealth bool

	format string
	out    string
	failOn string
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score [form.yaml]",
		Short: "Score a screen-exposure form from a YAML file or flags",
		Long: `Score a screen-exposure form and print the six language-development
sub-scores, the harm level, and the matching recommendation.

Fields come from an optional YAML file; flags override file values.
All nine fields are required one way or the other.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runScore(cmd, path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.contentType, "content-type", "", "Content type: educational, non-educational, background, or interactive")
	flags.Float64Var(&f.duration, "duration", 0, "Average session duration in hours")
	flags.Float64Var(&f.frequency, "frequency", 0, "Sessions per week")
	flags.IntVar(&f.ageMonths, "age-months", 0, "Child age in months (12-60)")
	flags.StringVar(&f.parentalInvolvement, "involvement", "", "Parental involvement: instructive, co-viewing, or unmediated")
	flags.BoolVar(&f.simultaneousUse, "simultaneous-use", false, "Parent uses own device during screen time")
	flags.Float64Var(&f.backgroundFreq, "background-freq", 0, "Background TV frequency (0-5)")
	flags.Float64Var(&f.maternalScreenTime, "caregiver-screen-time", 0, "Caregiver daily screen time in hours")
	flags.BoolVar(&f.maternalMentalHealth, "caregiver-low-mood", false, "Caregiver experiences low mood or high stress")
	flags.StringVar(&f.format, "format", "text", "Output format: text or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if the harm level meets this severity (Low, Medium, or High)")

	return cmd
}

func runScore(cmd *cobra.Command, path string, f *scoreFlags) error {
	var draft form.Draft

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return exitError(3, "failed to read form file: %v", err)
		}
		if err := yaml.Unmarshal(data, &draft); err != nil {
			return exitError(3, "failed to parse form file: %v", err)
		}
	}

	applyFlagOverrides(cmd, f, &draft)

	if !draft.HasInput() {
		return exitError(3, "no form input: provide a YAML file or field flags")
	}

	values, err := draft.Validate()
	if err != nil {
		return exitError(3, "invalid form: %v", err)
	}

	scorer := scoring.NewHeuristicScorer()
	res, err := scorer.Score(context.Background(), values)
	if err != nil {
		return exitError(1, "scoring failed: %v", err)
	}

	var output string
	switch f.format {
	case "json":
		data, merr := json.MarshalIndent(res, "", "  ")
		if merr != nil {
			return fmt.Errorf("failed to marshal output: %w", merr)
		}
		output = string(data) + "\n"
	case "text":
		output = renderText(values, res)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		if werr := os.WriteFile(f.out, []byte(output), 0o644); werr != nil {
			return fmt.Errorf("failed to write output: %w", werr)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), output)
	}

	if f.failOn != "" && harmMeetsThreshold(res.HarmLevel, f.failOn) {
		return exitError(2, "harm level %s meets fail threshold %s", res.HarmLevel, f.failOn)
	}
	return nil
}

// applyFlagOverrides copies explicitly set flags over the draft so that
// flags win over file values.
func applyFlagOverrides(cmd *cobra.Command, f *scoreFlags, draft *form.Draft) {
	set := cmd.Flags().Changed

	if set("content-type") {
		ct := form.ContentType(f.contentType)
		draft.ContentType = &ct
	}
	if set("duration") {
		draft.Duration = &f.duration
	}
	if set("frequency") {
		draft.Frequency = &f.frequency
	}
	if set("age-months") {
		draft.AgeMonths = &f.ageMonths
	}
	if set("involvement") {
		inv := form.Involvement(f.parentalInvolvement)
		draft.ParentalInvolvement = &inv
	}
	if set("simultaneous-use") {
		draft.SimultaneousUse = &f.simultaneousUse
	}
	if set("background-freq") {
		draft.BackgroundFreq = &f.backgroundFreq
	}
	if set("caregiver-screen-time") {
		draft.MaternalScreenTime = &f.maternalScreenTime
	}
	if set("caregiver-low-mood") {
		draft.MaternalMentalHealth = &f.maternalMentalHealth
	}
}

func renderText(v form.Values, res scoring.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Screen-exposure assessment (age %d months, %s content)\n\n", v.AgeMonths, v.ContentType)
	fmt.Fprintf(&b, "  Vocabulary             %5.1f\n", res.Scores.Vocabulary)
	fmt.Fprintf(&b, "  Mental verbs           %5.1f\n", res.Scores.MentalVerb)
	fmt.Fprintf(&b, "  Expressive language    %5.1f\n", res.Scores.Expressive)
	fmt.Fprintf(&b, "  Verbal interaction     %5.1f\n", res.Scores.VerbalInteraction)
	fmt.Fprintf(&b, "  Sentence comprehension %5.1f\n", res.Scores.SentenceComp)
	fmt.Fprintf(&b, "  Social language        %5.1f\n", res.Scores.SocialLang)
	fmt.Fprintf(&b, "\n  Average    %.2f\n", res.Average)
	fmt.Fprintf(&b, "  Harm level %s\n\n", res.HarmLevel)
	fmt.Fprintf(&b, "%s\n", res.Suggestions)

	return b.String()
}

// harmMeetsThreshold reports whether the harm level is at least as
// severe as the threshold.
func harmMeetsThreshold(level scoring.HarmLevel, failOn string) bool {
	severity := map[scoring.HarmLevel]int{
		scoring.HarmLow:    0,
		scoring.HarmMedium: 1,
		scoring.HarmHigh:   2,
	}

	var threshold scoring.HarmLevel
	switch strings.ToLower(strings.TrimSpace(failOn)) {
	case "low":
		threshold = scoring.HarmLow
	case "medium":
		threshold = scoring.HarmMedium
	case "high":
		threshold = scoring.HarmHigh
	default:
		return false
	}
	return severity[level] >= severity[threshold]
}
