package testing

import (
	"math/rand"
	"strconv"

	"github.com/InzamanCareem/TeamMate-System/survey"
)

// SimulatedAnswers returns an answer generator producing valid random
// answers for all eight survey questions, the way a simulated participant
// would fill the survey.
//
// The generator is seeded, so a given seed always produces the same answer
// sequence. It ignores the attempt number: a valid answer is produced on
// the first try for every question.
//
// Parameters:
//   - games: Valid preferred-game answers to pick from
//   - roles: Valid preferred-role answers to pick from
//   - seed: Random seed for reproducibility
//
// Returns:
//   - func(questionNo, attempt int) string: Generator usable as a
//     coordinator AnswerFunc
func SimulatedAnswers(games, roles []string, seed int64) func(questionNo, attempt int) string {
	rng := rand.New(rand.NewSource(seed))

	answers := make(map[int]string, survey.QuestionCount)
	for q := survey.FirstQuestion; q <= survey.LastPersonalityQuestion; q++ {
		answers[q] = strconv.Itoa(rng.Intn(survey.MaxPersonalityAnswer) + 1)
	}
	answers[survey.GameQuestion] = games[rng.Intn(len(games))]
	answers[survey.SkillQuestion] = strconv.Itoa(rng.Intn(survey.MaxSkillLevel) + 1)
	answers[survey.RoleQuestion] = roles[rng.Intn(len(roles))]

	return func(questionNo, _ int) string {
		return answers[questionNo]
	}
}

// FixedAnswers returns an answer generator that replies with the same fixed
// answer map on every attempt. Useful for forcing specific scores or
// invalid-answer loops in tests.
func FixedAnswers(answers map[int]string) func(questionNo, attempt int) string {
	return func(questionNo, _ int) string {
		return answers[questionNo]
	}
}
