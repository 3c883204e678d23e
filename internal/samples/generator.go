package samples

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/parvinm/screenwise/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	profileDivisor     = 6
)

// Family profile cases used for distribution.
const (
	caseEducationalLight = 0
	caseEntertainHeavy   = 1
	caseBackgroundHome   = 2
	caseInteractiveMixed = 3
	caseToddlerHeavy     = 4
	caseBalanced         = 5
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func randomInt(max int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return n.Int64()
}

// generateForms creates the configured number of submissions with
// varied family profiles.
func generateForms(ctx context.Context, config *Config, stats *Stats) ([]Submission, error) {
	logger.Get().Info(ctx, "generating sample forms", logger.Int("numForms", config.NumForms))

	forms := make([]Submission, config.NumForms)
	for i := range forms {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		forms[i] = generateSingleForm()
	}

	stats.FormsGenerated = len(forms)
	logger.Get().Info(ctx, "generated forms successfully", logger.Int("count", len(forms)))
	return forms, nil
}

// generateSingleForm builds one submission from a randomly picked
// family profile so the harm-level distribution covers all three bands.
func generateSingleForm() Submission {
	s := Submission{
		SubmissionID: uuid.New().String(),
		AgeMonths:    12 + int(randomInt(49)),
	}

	switch randomInt(profileDivisor) {
	case caseEducationalLight:
		// Short educational sessions with an engaged parent.
		s.ContentType = "educational"
		s.Duration = 0.25 + getRandomFloat()*0.75
		s.Frequency = 1 + getRandomFloat()*4
		s.ParentalInvolvement = "instructive"
		s.SimultaneousUse = false
		s.BackgroundFreq = getRandomFloat() * 2
		s.MaternalScreenTime = getRandomFloat() * 2
		s.MaternalMentalHealth = false
	case caseEntertainHeavy:
		// Long entertainment sessions, child mostly alone.
		s.ContentType = "non-educational"
		s.Duration = 2 + getRandomFloat()*3
		s.Frequency = 7 + getRandomFloat()*7
		s.ParentalInvolvement = "unmediated"
		s.SimultaneousUse = true
		s.BackgroundFreq = 2 + getRandomFloat()*3
		s.MaternalScreenTime = 3 + getRandomFloat()*4
		s.MaternalMentalHealth = true
	case caseBackgroundHome:
		// TV always on in the background.
		s.ContentType = "background"
		s.Duration = 1 + getRandomFloat()*2
		s.Frequency = 5 + getRandomFloat()*5
		s.ParentalInvolvement = "co-viewing"
		s.SimultaneousUse = getRandomFloat() < 0.5
		s.BackgroundFreq = 3 + getRandomFloat()*2
		s.MaternalScreenTime = 2 + getRandomFloat()*3
		s.MaternalMentalHealth = getRandomFloat() < 0.4
	case caseInteractiveMixed:
		// Video calls and interactive apps with co-viewing.
		s.ContentType = "interactive"
		s.Duration = 0.5 + getRandomFloat()
		s.Frequency = 2 + getRandomFloat()*4
		s.ParentalInvolvement = "co-viewing"
		s.SimultaneousUse = false
		s.BackgroundFreq = getRandomFloat() * 3
		s.MaternalScreenTime = 1 + getRandomFloat()*2
		s.MaternalMentalHealth = false
	case caseToddlerHeavy:
		// Young child with long unmediated exposure.
		s.AgeMonths = 12 + int(randomInt(24))
		s.ContentType = "non-educational"
		s.Duration = 2.5 + getRandomFloat()*2
		s.Frequency = 8 + getRandomFloat()*6
		s.ParentalInvolvement = "unmediated"
		s.SimultaneousUse = true
		s.BackgroundFreq = 3 + getRandomFloat()*2
		s.MaternalScreenTime = 4 + getRandomFloat()*3
		s.MaternalMentalHealth = true
	default:
		// Balanced household without strong risk markers.
		s.ContentType = "educational"
		s.Duration = 0.5 + getRandomFloat()*1.5
		s.Frequency = 3 + getRandomFloat()*4
		s.ParentalInvolvement = "co-viewing"
		s.SimultaneousUse = getRandomFloat() < 0.3
		s.BackgroundFreq = getRandomFloat() * 3
		s.MaternalScreenTime = 1 + getRandomFloat()*3
		s.MaternalMentalHealth = getRandomFloat() < 0.2
	}

	return s
}
