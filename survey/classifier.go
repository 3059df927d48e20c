package survey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Score thresholds for the personality categories.
const (
	// LeaderThreshold is the minimum score for the Leader category.
	LeaderThreshold = 90

	// BalancedThreshold is the minimum score for the Balanced category.
	BalancedThreshold = 70

	// ThinkerThreshold is the minimum score for the Thinker category.
	// Scores below it yield no category and the participant is excluded.
	ThinkerThreshold = 50

	// scoreScale spreads the raw 5-25 answer sum over 20-100 for easier
	// grouping.
	scoreScale = 4
)

// Score calculates the personality score from the five personality answers.
//
// The score is the sum of the five integer answers multiplied by 4, giving a
// range of 20-100 for valid answers in [1,5]. Answers are expected to be
// pre-validated; a malformed answer here is a programming error in the
// intake path and is reported as an error rather than recovered.
//
// Parameters:
//   - answers: Exactly five answers, ordered by question number, each
//     parseable as an integer
//
// Returns:
//   - int: The scaled personality score
//   - error: Malformed input (wrong count or non-integer answer)
func Score(answers []string) (int, error) {
	if len(answers) != LastPersonalityQuestion {
		return 0, fmt.Errorf("expected %d personality answers, got %d", LastPersonalityQuestion, len(answers))
	}

	total := 0
	for i, answer := range answers {
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return 0, fmt.Errorf("personality answer %d is not an integer: %q", i+1, answer)
		}
		total += n
	}

	return total * scoreScale, nil
}

// Classify maps a personality score to its category.
//
// Bands:
//   - 90 and above: Leader
//   - 70-89: Balanced
//   - 50-69: Thinker
//   - below 50: PersonalityNone (no qualifying category; signals exclusion)
func Classify(score int) types.PersonalityType {
	switch {
	case score >= LeaderThreshold:
		return types.PersonalityLeader
	case score >= BalancedThreshold:
		return types.PersonalityBalanced
	case score >= ThinkerThreshold:
		return types.PersonalityThinker
	default:
		return types.PersonalityNone
	}
}
