package types

// PersonalityType classifies a participant from their personality-survey
// score.
type PersonalityType string

// Personality categories, highest score band first.
const (
	// PersonalityLeader is assigned for scores of 90 and above.
	PersonalityLeader PersonalityType = "Leader"

	// PersonalityBalanced is assigned for scores of 70-89.
	PersonalityBalanced PersonalityType = "Balanced"

	// PersonalityThinker is assigned for scores of 50-69.
	PersonalityThinker PersonalityType = "Thinker"

	// PersonalityNone indicates no qualifying category (score below 50).
	// Participants classified as PersonalityNone are excluded from the
	// system.
	PersonalityNone PersonalityType = ""
)

// Qualified reports whether the type is a real category rather than the
// exclusion marker.
func (pt PersonalityType) Qualified() bool {
	return pt != PersonalityNone
}
