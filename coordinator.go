package teammate

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/InzamanCareem/TeamMate-System/auth"
	"github.com/InzamanCareem/TeamMate-System/csv"
	"github.com/InzamanCareem/TeamMate-System/internal/formation"
	"github.com/InzamanCareem/TeamMate-System/internal/logging"
	"github.com/InzamanCareem/TeamMate-System/internal/metrics"
	"github.com/InzamanCareem/TeamMate-System/internal/registry"
	"github.com/InzamanCareem/TeamMate-System/internal/store"
	"github.com/InzamanCareem/TeamMate-System/strategy"
	"github.com/InzamanCareem/TeamMate-System/survey"
	"github.com/InzamanCareem/TeamMate-System/types"
)

// ScopeAll is the Teams scope that returns every team (organizer view).
// Any other scope value is treated as a participant ID and returns only
// that participant's team.
const ScopeAll = "all"

// Coordinator orchestrates survey intake, personality classification, and
// team formation.
//
// One Coordinator owns the participant registry, the survey response store,
// and the current team generation. All operations are safe for concurrent
// use; intake runs fan out to a bounded worker pool internally.
type Coordinator struct {
	cfg       Config
	questions *survey.QuestionSet
	responses *store.Store
	registry  *registry.Registry
	engine    *formation.Engine

	strategy      TeamStrategy
	logger        Logger
	metrics       MetricsCollector
	hooks         *Hooks
	reader        RecordReader
	writer        RecordWriter
	teamWriter    TeamWriter
	authenticator Authenticator
	publisher     EventPublisher

	teamMu sync.RWMutex
	teams  []*types.Team
}

// NewCoordinator creates a Coordinator.
//
// Parameters:
//   - cfg: Configuration (missing values are defaulted, then validated)
//   - opts: Optional dependencies (WithLogger, WithStrategy, ...)
//
// Returns:
//   - *Coordinator: Ready coordinator with an empty registry
//   - error: Configuration validation failure or a nil strategy passed via
//     WithStrategy
//
// Example:
//
//	coord, err := teammate.NewCoordinator(teammate.DefaultConfig(),
//	    teammate.WithStrategy(strategy.NewSkillBalanced()),
//	    teammate.WithLogger(logger),
//	)
func NewCoordinator(cfg Config, opts ...Option) (*Coordinator, error) {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := coordinatorOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.strategy == nil {
		if options.strategySet {
			return nil, ErrStrategyRequired
		}
		options.strategy = strategy.NewSkillBalanced()
	}

	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	handler := csv.NewHandler()
	if options.reader == nil {
		options.reader = handler
	}
	if options.writer == nil {
		options.writer = handler
	}
	if options.teamWriter == nil {
		options.teamWriter = handler
	}
	if options.authenticator == nil {
		options.authenticator = auth.New(cfg.OrganizerUsername, cfg.OrganizerPassword)
	}

	c := &Coordinator{
		cfg:           cfg,
		questions:     survey.NewQuestionSet(cfg.Games, cfg.Roles),
		responses:     store.New(),
		registry:      registry.New(cfg.ParticipantIDPrefix),
		strategy:      options.strategy,
		logger:        options.logger,
		metrics:       options.metrics,
		hooks:         options.hooks,
		reader:        options.reader,
		writer:        options.writer,
		teamWriter:    options.teamWriter,
		authenticator: options.authenticator,
		publisher:     options.publisher,
	}
	c.engine = formation.New(c.strategy, c.logger, c.metrics, cfg.FormationTimeout, cfg.TeamNamePrefix)

	return c, nil
}

// Questions returns the ordered survey question sequence.
func (c *Coordinator) Questions() []survey.Question {
	return c.questions.Questions()
}

// Games returns the valid preferred-game answers.
func (c *Coordinator) Games() []string {
	return c.questions.Games()
}

// Roles returns the valid preferred-role answers.
func (c *Coordinator) Roles() []string {
	return c.questions.Roles()
}

// NewParticipant creates a participant with the next generated ID. The
// participant is not yet registered; pass it to AddParticipant or let an
// intake run register it.
func (c *Coordinator) NewParticipant(name, email string) *Participant {
	return c.registry.NewParticipant(name, email)
}

// AddParticipant inserts the participant if its ID is absent.
//
// Returns:
//   - bool: false if the ID was already registered (the stored participant
//     is untouched; this is an expected outcome, not an error)
func (c *Coordinator) AddParticipant(p *Participant) bool {
	added := c.registry.Add(p)
	if added {
		c.metrics.SetRegisteredParticipants(c.registry.Size())
	}

	return added
}

// RemoveParticipant deletes the participant with the given ID. No-op if
// absent.
func (c *Coordinator) RemoveParticipant(participantID string) {
	c.registry.Remove(participantID)
	c.metrics.SetRegisteredParticipants(c.registry.Size())
}

// Participant looks up a registered participant by ID.
func (c *Coordinator) Participant(participantID string) (*Participant, bool) {
	return c.registry.Get(participantID)
}

// ParticipantCount returns the current registry size.
func (c *Coordinator) ParticipantCount() int {
	return c.registry.Size()
}

// SubmitAnswer validates and records one survey answer.
//
// Questions 1-5 accept integers 1-5; question 6 a game from the configured
// list; question 7 an integer 1-10; question 8 a role from the configured
// list (both lists case-insensitive). Rejected answers are discarded with
// no mutation. Accepted answers are recorded into the survey store (correct
// domain) and into the participant's own response record.
//
// Parameters:
//   - participantID: The answering participant (must be registered)
//   - questionNo: Question number 1-8
//   - answer: Raw answer string
//
// Returns:
//   - Result: Success, or a failure describing the rejection (enumerated
//     questions include the valid choices in the message)
func (c *Coordinator) SubmitAnswer(participantID string, questionNo int, answer string) Result {
	p, ok := c.registry.Get(participantID)
	if !ok {
		return types.Failuref("unknown participant %s", participantID)
	}

	if res := c.questions.Validate(questionNo, answer); !res.Success {
		c.metrics.RecordAnswerRejected(questionNo)
		return res
	}

	domain := c.questions.DomainOf(questionNo)
	if domain == survey.DomainPersonality {
		c.responses.AddPersonalityAnswer(participantID, questionNo, answer)
	} else {
		c.responses.AddInterestAnswer(participantID, questionNo, answer)
	}

	p.RecordAnswer(questionNo, answer)
	c.metrics.RecordAnswerAccepted(domain.String())

	return types.OK("")
}

// CommitInterests derives the participant's preferred game, skill level,
// and preferred role from their accepted interest answers and commits them.
//
// RunIntake calls this automatically; it is exported for callers driving
// the survey manually through SubmitAnswer.
//
// Returns:
//   - error: ErrParticipantNotFound, or a missing/unparseable interest
//     answer
func (c *Coordinator) CommitInterests(participantID string) error {
	p, ok := c.registry.Get(participantID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
	}

	return c.commitInterests(p)
}

// ClassifyParticipant scores the participant's accepted personality
// answers and commits the resulting score and type.
//
// RunIntake calls this automatically; it is exported for callers driving
// the survey manually through SubmitAnswer. The participant is not removed
// on a non-qualifying score; manual callers decide that themselves.
//
// Returns:
//   - int: Personality score (20-100)
//   - PersonalityType: Category, PersonalityNone when below every threshold
//   - error: ErrParticipantNotFound, or incomplete personality answers
func (c *Coordinator) ClassifyParticipant(participantID string) (int, PersonalityType, error) {
	p, ok := c.registry.Get(participantID)
	if !ok {
		return 0, PersonalityNone, fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
	}

	return c.classifyParticipant(p)
}

// commitInterests derives the preferred game, skill level, and preferred
// role from the participant's interest-response snapshot and commits them.
// Called once per participant after all three interest answers were
// accepted; a missing answer here is an intake-path bug, not a runtime
// condition.
func (c *Coordinator) commitInterests(p *Participant) error {
	snapshot := c.responses.InterestResponses(p.ID())

	game, okGame := snapshot[survey.GameQuestion]
	skillRaw, okSkill := snapshot[survey.SkillQuestion]
	role, okRole := snapshot[survey.RoleQuestion]
	if !okGame || !okSkill || !okRole {
		return fmt.Errorf("incomplete interest responses for participant %s", p.ID())
	}

	skill, err := survey.ParseSkillLevel(skillRaw)
	if err != nil {
		return fmt.Errorf("participant %s: %w", p.ID(), err)
	}

	p.SetInterests(strings.ToLower(game), skill, strings.ToLower(role))

	return nil
}

// classifyParticipant derives and commits the personality score and type
// from the personality-response snapshot.
func (c *Coordinator) classifyParticipant(p *Participant) (int, PersonalityType, error) {
	snapshot := c.responses.PersonalityResponses(p.ID())

	answers := make([]string, 0, survey.LastPersonalityQuestion)
	for q := survey.FirstQuestion; q <= survey.LastPersonalityQuestion; q++ {
		answer, ok := snapshot[q]
		if !ok {
			return 0, PersonalityNone, fmt.Errorf("missing personality answer %d for participant %s", q, p.ID())
		}
		answers = append(answers, answer)
	}

	score, err := survey.Score(answers)
	if err != nil {
		return 0, PersonalityNone, fmt.Errorf("participant %s: %w", p.ID(), err)
	}

	personality := survey.Classify(score)
	p.SetPersonality(score, personality)

	return score, personality, nil
}

// StoreParticipant persists the participant's full record through the
// append writer.
//
// Returns:
//   - Result: Success, or a failure carrying the underlying cause
//     description
func (c *Coordinator) StoreParticipant(p *Participant) Result {
	if err := c.writer.Append(c.cfg.ParticipantsFile, p); err != nil {
		return types.Failuref("Details saving failed\nError writing file: %v", err)
	}

	return types.OK("")
}

// FormTeams partitions the current registry snapshot into balanced teams
// and replaces the previous team generation.
//
// Team size is validated here, before the engine is invoked: sizes of 1 or
// less and sizes reaching the participant count are rejected with a
// descriptive error and the prior team generation is left untouched.
//
// Parameters:
//   - ctx: Context for cancellation of the population phase
//   - teamSize: Desired participants per team (2..count-1)
//
// Returns:
//   - []*Team: The new team generation
//   - error: Validation failure, strategy failure, or formation timeout
func (c *Coordinator) FormTeams(ctx context.Context, teamSize int) ([]*Team, error) {
	snapshot := c.registry.Snapshot()
	if len(snapshot) == 0 {
		return nil, ErrNoParticipants
	}
	if teamSize <= 1 {
		return nil, fmt.Errorf("%w: team size %d must be at least 2", ErrInvalidTeamSize, teamSize)
	}
	if teamSize >= len(snapshot) {
		return nil, fmt.Errorf("%w: team size %d must be smaller than the participant count %d",
			ErrInvalidTeamSize, teamSize, len(snapshot))
	}

	teams, err := c.engine.Build(ctx, snapshot, teamSize)
	if err != nil {
		return nil, err
	}

	c.teamMu.Lock()
	c.teams = teams
	c.teamMu.Unlock()
	c.metrics.SetTeamCount(len(teams))

	if c.hooks != nil && c.hooks.OnTeamsFormed != nil {
		if err := c.hooks.OnTeamsFormed(ctx, teams); err != nil {
			c.logger.Warn("OnTeamsFormed hook failed", "error", err)
		}
	}
	if c.publisher != nil {
		if err := c.publisher.PublishTeamsFormed(ctx, teams); err != nil {
			c.logger.Warn("teams-formed event publish failed", "error", err)
		}
	}

	return teams, nil
}

// Teams returns teams for the given scope.
//
// Scope ScopeAll returns the full current generation (organizer view). Any
// other scope is treated as a participant ID and returns a single-element
// list with that participant's team, or nil if the participant is not in
// any team.
func (c *Coordinator) Teams(scope string) []*Team {
	c.teamMu.RLock()
	teams := slices.Clone(c.teams)
	c.teamMu.RUnlock()

	if scope == ScopeAll {
		return teams
	}

	for _, team := range teams {
		if team.Contains(scope) {
			return []*types.Team{team}
		}
	}

	return nil
}

// ImportParticipants bulk-loads participant records from the reader source.
// Rows with duplicate IDs are silently skipped via the registry's
// insert-if-absent contract; malformed rows are logged and skipped.
//
// Returns:
//   - Result: Success with a processed-count message, or a failure carrying
//     the read error description
func (c *Coordinator) ImportParticipants(source string) Result {
	rows, err := c.reader.ReadAll(source)
	if err != nil {
		return types.Failuref("File upload failed\nError reading file: %v", err)
	}

	added := 0
	for _, row := range rows {
		p, err := types.ParticipantFromRecord(row)
		if err != nil {
			c.logger.Warn("skipping malformed participant record", "error", err)
			continue
		}
		if c.registry.Add(p) {
			added++
		}
	}

	c.metrics.SetRegisteredParticipants(c.registry.Size())
	c.logger.Info("participants imported", "source", source, "rows", len(rows), "added", added)

	return types.OK(fmt.Sprintf("CSV file uploaded successfully\n%d participants has been processed.", len(rows)))
}

// SaveTeams persists the current team generation through the batch writer,
// overwriting the destination.
//
// Parameters:
//   - destination: Target location; empty uses the configured TeamsFile
//
// Returns:
//   - Result: Success with a saved-count message, or a failure carrying the
//     write error description
func (c *Coordinator) SaveTeams(destination string) Result {
	if destination == "" {
		destination = c.cfg.TeamsFile
	}

	teams := c.Teams(ScopeAll)
	if err := c.teamWriter.WriteAll(destination, teams); err != nil {
		return types.Failuref("File saving failed\nError writing file: %v", err)
	}

	return types.OK(fmt.Sprintf("%s file saved successfully\n%d teams has been saved.", destination, len(teams)))
}

// Login verifies the organizer credential pair.
func (c *Coordinator) Login(username, password string) bool {
	return c.authenticator.Verify(username, password)
}
