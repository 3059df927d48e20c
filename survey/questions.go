package survey

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Question numbering and domain boundaries.
const (
	// FirstQuestion is the first question number.
	FirstQuestion = 1

	// LastPersonalityQuestion is the last personality-domain question.
	LastPersonalityQuestion = 5

	// FirstInterestQuestion is the first interest-domain question.
	FirstInterestQuestion = 6

	// GameQuestion asks for the preferred game.
	GameQuestion = 6

	// SkillQuestion asks for the skill level (1-10).
	SkillQuestion = 7

	// RoleQuestion asks for the preferred role.
	RoleQuestion = 8

	// QuestionCount is the total number of survey questions.
	QuestionCount = 8

	// MinSkillLevel and MaxSkillLevel bound the skill-level answer.
	MinSkillLevel = 1
	MaxSkillLevel = 10

	// MinPersonalityAnswer and MaxPersonalityAnswer bound the personality
	// answers.
	MinPersonalityAnswer = 1
	MaxPersonalityAnswer = 5
)

// Domain identifies which response store an answer belongs to.
type Domain int

// Question domains.
const (
	// DomainPersonality covers questions 1-5.
	DomainPersonality Domain = iota

	// DomainInterest covers questions 6-8.
	DomainInterest
)

// String returns the domain label used in logs and metrics.
func (d Domain) String() string {
	if d == DomainPersonality {
		return "personality"
	}

	return "interest"
}

// Question is a single survey question.
type Question struct {
	// Number is the 1-based question number.
	Number int

	// Text is the prompt shown to the participant.
	Text string

	// Domain is the response domain the answer is stored in.
	Domain Domain
}

var defaultQuestionTexts = []string{
	"1. I enjoy taking the lead and guiding others during group activities: ",
	"2. I prefer analyzing situations and coming up with strategic solutions: ",
	"3. I work well with others and enjoy collaborative teamwork: ",
	"4. I am calm under pressure and can help maintain team morale: ",
	"5. I like making quick decisions and adapting in dynamic situations: ",
	"6. What is you preferred game: ",
	"7. What is you skill level: ",
	"8. What is you preferred role: ",
}

// DefaultGames returns the default preferred-game enumeration.
func DefaultGames() []string {
	return []string{"chess", "fifa", "basketball", "cs:go", "dota 2", "valorant"}
}

// DefaultRoles returns the default preferred-role enumeration.
func DefaultRoles() []string {
	return []string{"strategist", "attacker", "defender", "supporter", "coordinator"}
}

// QuestionSet is the fixed ordered sequence of survey questions together
// with the enumerated answer domains for the interest questions.
//
// A QuestionSet is immutable after construction and safe for unbounded
// concurrent readers.
type QuestionSet struct {
	questions []Question
	games     []string
	roles     []string
	gameSet   map[string]struct{}
	roleSet   map[string]struct{}
}

// NewQuestionSet builds the survey question set.
//
// Parameters:
//   - games: Valid preferred-game answers (case-insensitive); nil uses
//     DefaultGames
//   - roles: Valid preferred-role answers (case-insensitive); nil uses
//     DefaultRoles
//
// Returns:
//   - *QuestionSet: Immutable question set ready for concurrent use
func NewQuestionSet(games, roles []string) *QuestionSet {
	if len(games) == 0 {
		games = DefaultGames()
	}
	if len(roles) == 0 {
		roles = DefaultRoles()
	}

	qs := &QuestionSet{
		games:   slices.Clone(games),
		roles:   slices.Clone(roles),
		gameSet: make(map[string]struct{}, len(games)),
		roleSet: make(map[string]struct{}, len(roles)),
	}

	for _, g := range games {
		qs.gameSet[strings.ToLower(g)] = struct{}{}
	}
	for _, r := range roles {
		qs.roleSet[strings.ToLower(r)] = struct{}{}
	}

	for i, text := range defaultQuestionTexts {
		number := i + 1
		domain := DomainPersonality
		if number >= FirstInterestQuestion {
			domain = DomainInterest
		}
		qs.questions = append(qs.questions, Question{Number: number, Text: text, Domain: domain})
	}

	return qs
}

// Questions returns a copy of the ordered question sequence.
func (qs *QuestionSet) Questions() []Question {
	return slices.Clone(qs.questions)
}

// Count returns the number of survey questions.
func (qs *QuestionSet) Count() int {
	return len(qs.questions)
}

// Games returns a copy of the valid preferred-game answers.
func (qs *QuestionSet) Games() []string {
	return slices.Clone(qs.games)
}

// Roles returns a copy of the valid preferred-role answers.
func (qs *QuestionSet) Roles() []string {
	return slices.Clone(qs.roles)
}

// DomainOf returns the response domain for a question number.
func (qs *QuestionSet) DomainOf(questionNo int) Domain {
	if questionNo <= LastPersonalityQuestion {
		return DomainPersonality
	}

	return DomainInterest
}

// Validate checks one raw answer against the question's answer domain.
//
// Rejections carry a human-readable message; for the enumerated questions
// the message includes the list of valid choices.
//
// Parameters:
//   - questionNo: The question being answered (1-8)
//   - answer: The raw answer string
//
// Returns:
//   - types.Result: Success, or a failure describing why the answer was
//     rejected
func (qs *QuestionSet) Validate(questionNo int, answer string) types.Result {
	switch {
	case questionNo >= FirstQuestion && questionNo <= LastPersonalityQuestion:
		if !inIntRange(answer, MinPersonalityAnswer, MaxPersonalityAnswer) {
			return types.Failure("Invalid Answer")
		}
	case questionNo == GameQuestion:
		if _, ok := qs.gameSet[strings.ToLower(answer)]; !ok {
			return types.Failuref("Invalid Answer\nPlease choose a game from this list: %v", qs.games)
		}
	case questionNo == SkillQuestion:
		if !inIntRange(answer, MinSkillLevel, MaxSkillLevel) {
			return types.Failure("Invalid Answer")
		}
	case questionNo == RoleQuestion:
		if _, ok := qs.roleSet[strings.ToLower(answer)]; !ok {
			return types.Failuref("Invalid Answer\nPlease choose a role from this list: %v", qs.roles)
		}
	default:
		return types.Failuref("unknown question number %d", questionNo)
	}

	return types.OK("")
}

func inIntRange(answer string, low, high int) bool {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return false
	}

	return n >= low && n <= high
}

// ParseSkillLevel converts an accepted skill-level answer to its integer
// value.
func ParseSkillLevel(answer string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("skill level %q: %w", answer, err)
	}

	return n, nil
}
