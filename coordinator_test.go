package teammate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/InzamanCareem/TeamMate-System/strategy"
	tmtest "github.com/InzamanCareem/TeamMate-System/testing"
	"github.com/InzamanCareem/TeamMate-System/types"
	"github.com/stretchr/testify/require"
)

// validAnswers covers all eight questions with accepted values. Questions
// 1-5 score 4*(5*5) = 100, classifying the participant as Leader.
var validAnswers = map[int]string{
	1: "5", 2: "5", 3: "5", 4: "5", 5: "5",
	6: "chess", 7: "7", 8: "strategist",
}

// lowAnswers produce score 20, below every personality threshold.
var lowAnswers = map[int]string{
	1: "1", 2: "1", 3: "1", 4: "1", 5: "1",
	6: "fifa", 7: "3", 8: "defender",
}

func newTestCoordinator(t *testing.T, opts ...Option) *Coordinator {
	t.Helper()

	cfg := TestConfig()
	cfg.ParticipantsFile = filepath.Join(t.TempDir(), "participants.csv")
	cfg.TeamsFile = filepath.Join(t.TempDir(), "formed_teams.csv")

	opts = append([]Option{WithLogger(tmtest.NewTestLogger(t))}, opts...)
	coord, err := NewCoordinator(cfg, opts...)
	require.NoError(t, err)

	return coord
}

func TestNewCoordinator(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		coord, err := NewCoordinator(DefaultConfig())

		require.NoError(t, err)
		require.Len(t, coord.Questions(), 8)
		require.NotEmpty(t, coord.Games())
		require.NotEmpty(t, coord.Roles())
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxAnswerRetries = -2

		_, err := NewCoordinator(cfg)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects explicit nil strategy", func(t *testing.T) {
		_, err := NewCoordinator(DefaultConfig(), WithStrategy(nil))

		require.ErrorIs(t, err, ErrStrategyRequired)
	})
}

func TestCoordinator_Participants(t *testing.T) {
	t.Run("generated IDs are sequential", func(t *testing.T) {
		coord := newTestCoordinator(t)

		p1 := coord.NewParticipant("Alice", "alice@example.com")
		p2 := coord.NewParticipant("Bob", "bob@example.com")

		require.Equal(t, "P1", p1.ID())
		require.Equal(t, "P2", p2.ID())
	})

	t.Run("duplicate IDs are rejected keeping the first", func(t *testing.T) {
		coord := newTestCoordinator(t)

		require.True(t, coord.AddParticipant(types.NewParticipant("P1", "Alice", "a@example.com")))
		require.False(t, coord.AddParticipant(types.NewParticipant("P1", "Mallory", "m@example.com")))

		p, ok := coord.Participant("P1")
		require.True(t, ok)
		require.Equal(t, "Alice", p.Name())
		require.Equal(t, 1, coord.ParticipantCount())
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		coord := newTestCoordinator(t)
		p := coord.NewParticipant("Alice", "a@example.com")
		require.True(t, coord.AddParticipant(p))

		coord.RemoveParticipant(p.ID())
		coord.RemoveParticipant(p.ID())

		require.Equal(t, 0, coord.ParticipantCount())
	})
}

func TestCoordinator_SubmitAnswer(t *testing.T) {
	t.Run("unknown participant is rejected", func(t *testing.T) {
		coord := newTestCoordinator(t)

		res := coord.SubmitAnswer("ghost", 1, "5")

		require.False(t, res.Success)
	})

	t.Run("accepted answers are recorded on the participant", func(t *testing.T) {
		coord := newTestCoordinator(t)
		p := coord.NewParticipant("Alice", "a@example.com")
		require.True(t, coord.AddParticipant(p))

		require.True(t, coord.SubmitAnswer(p.ID(), 1, "4").Success)
		require.True(t, coord.SubmitAnswer(p.ID(), 6, "CHESS").Success)

		answer, ok := p.Answer(1)
		require.True(t, ok)
		require.Equal(t, "4", answer)
		answer, ok = p.Answer(6)
		require.True(t, ok)
		require.Equal(t, "CHESS", answer)
	})

	t.Run("rejected answers leave no trace", func(t *testing.T) {
		coord := newTestCoordinator(t)
		p := coord.NewParticipant("Alice", "a@example.com")
		require.True(t, coord.AddParticipant(p))

		res := coord.SubmitAnswer(p.ID(), 1, "6")
		require.False(t, res.Success)
		require.Contains(t, res.Message, "Invalid Answer")

		_, ok := p.Answer(1)
		require.False(t, ok)
	})

	t.Run("enumerated rejections include the choices", func(t *testing.T) {
		coord := newTestCoordinator(t)
		p := coord.NewParticipant("Alice", "a@example.com")
		require.True(t, coord.AddParticipant(p))

		res := coord.SubmitAnswer(p.ID(), 6, "tetris")
		require.False(t, res.Success)
		require.Contains(t, res.Message, "choose a game")

		res = coord.SubmitAnswer(p.ID(), 8, "spectator")
		require.False(t, res.Success)
		require.Contains(t, res.Message, "choose a role")
	})
}

func TestCoordinator_ManualFlow(t *testing.T) {
	t.Run("commit and classify after manual answers", func(t *testing.T) {
		coord := newTestCoordinator(t)
		p := coord.NewParticipant("Alice", "a@example.com")
		require.True(t, coord.AddParticipant(p))

		for q, answer := range validAnswers {
			require.True(t, coord.SubmitAnswer(p.ID(), q, answer).Success)
		}

		require.NoError(t, coord.CommitInterests(p.ID()))
		require.Equal(t, "chess", p.PreferredGame())
		require.Equal(t, 7, p.SkillLevel())

		score, personality, err := coord.ClassifyParticipant(p.ID())
		require.NoError(t, err)
		require.Equal(t, 100, score)
		require.Equal(t, types.PersonalityLeader, personality)
		require.Equal(t, 100, p.PersonalityScore())
	})

	t.Run("unknown participant", func(t *testing.T) {
		coord := newTestCoordinator(t)

		require.ErrorIs(t, coord.CommitInterests("ghost"), ErrParticipantNotFound)
		_, _, err := coord.ClassifyParticipant("ghost")
		require.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("incomplete answers fail finalization", func(t *testing.T) {
		coord := newTestCoordinator(t)
		p := coord.NewParticipant("Alice", "a@example.com")
		require.True(t, coord.AddParticipant(p))
		require.True(t, coord.SubmitAnswer(p.ID(), 6, "chess").Success)

		require.Error(t, coord.CommitInterests(p.ID()))
		_, _, err := coord.ClassifyParticipant(p.ID())
		require.Error(t, err)
	})
}

func TestCoordinator_RunIntake(t *testing.T) {
	t.Run("all participants complete", func(t *testing.T) {
		coord := newTestCoordinator(t)

		const n = 8
		requests := make([]IntakeRequest, n)
		for i := range requests {
			requests[i] = IntakeRequest{
				Name:    fmt.Sprintf("player-%d", i+1),
				Email:   fmt.Sprintf("p%d@example.com", i+1),
				Answers: tmtest.FixedAnswers(validAnswers),
			}
		}

		report, err := coord.RunIntake(context.Background(), requests)

		require.NoError(t, err)
		require.Equal(t, n, report.Requested)
		require.Equal(t, n, report.Completed)
		require.Equal(t, n, report.Accounted())
		require.False(t, report.TimedOut)
		require.Equal(t, n, coord.ParticipantCount())
	})

	t.Run("committed interests and personality", func(t *testing.T) {
		coord := newTestCoordinator(t)

		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
		})

		require.NoError(t, err)
		require.Equal(t, 1, report.Completed)

		p, ok := coord.Participant("P1")
		require.True(t, ok)
		require.Equal(t, "chess", p.PreferredGame())
		require.Equal(t, 7, p.SkillLevel())
		require.Equal(t, "strategist", p.PreferredRole())
		require.Equal(t, 100, p.PersonalityScore())
		require.Equal(t, types.PersonalityLeader, p.PersonalityType())
	})

	t.Run("duplicate ID aborts the second worker silently", func(t *testing.T) {
		coord := newTestCoordinator(t)
		require.True(t, coord.AddParticipant(types.NewParticipant("P1", "Alice", "a@example.com")))

		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Mallory", Email: "m@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
		})

		require.NoError(t, err)
		require.Equal(t, 1, report.Duplicates)
		require.Equal(t, 0, report.Completed)

		p, _ := coord.Participant("P1")
		require.Equal(t, "Alice", p.Name())
	})

	t.Run("rejected answer retries the same question until accepted", func(t *testing.T) {
		coord := newTestCoordinator(t)

		var asked []int // question per call, in order
		answers := func(questionNo, attempt int) string {
			asked = append(asked, questionNo)
			if questionNo == 3 && attempt < 2 {
				return "99"
			}
			return validAnswers[questionNo]
		}

		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: answers},
		})

		require.NoError(t, err)
		require.Equal(t, 1, report.Completed)

		// Question 3 was asked three times in a row before question 4; the
		// worker never advances past an outstanding question.
		require.Equal(t, []int{1, 2, 3, 3, 3, 4, 5, 6, 7, 8}, asked)

		p, _ := coord.Participant("P1")
		answer, ok := p.Answer(3)
		require.True(t, ok)
		require.Equal(t, "5", answer)
	})

	t.Run("retry cap exhaustion abandons and removes", func(t *testing.T) {
		coord := newTestCoordinator(t)

		answers := func(questionNo, attempt int) string {
			if questionNo == 2 {
				return "not a number"
			}
			return validAnswers[questionNo]
		}

		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: answers},
		})

		require.NoError(t, err)
		require.Equal(t, 1, report.Abandoned)
		_, ok := coord.Participant("P1")
		require.False(t, ok)
	})

	t.Run("low personality score excludes and removes", func(t *testing.T) {
		coord := newTestCoordinator(t)

		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: tmtest.FixedAnswers(lowAnswers)},
		})

		require.NoError(t, err)
		require.Equal(t, 1, report.Excluded)
		require.Equal(t, 0, report.Completed)
		_, ok := coord.Participant("P1")
		require.False(t, ok)
	})

	t.Run("persist failure keeps the participant registered", func(t *testing.T) {
		coord := newTestCoordinator(t, WithRecordWriter(failingWriter{}))

		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
		})

		require.NoError(t, err)
		require.Equal(t, 1, report.WriteFailures)

		_, ok := coord.Participant("P1")
		require.True(t, ok)
	})

	t.Run("completed participants are persisted", func(t *testing.T) {
		coord := newTestCoordinator(t)

		_, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
			{ID: "P2", Name: "Bob", Email: "b@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
		})
		require.NoError(t, err)

		rows, err := coord.reader.ReadAll(coord.cfg.ParticipantsFile)
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("timeout is fatal but completed participants remain valid", func(t *testing.T) {
		cfg := TestConfig()
		cfg.IntakeTimeout = 200 * time.Millisecond
		cfg.ParticipantsFile = filepath.Join(t.TempDir(), "participants.csv")
		// Default logger here: the stalled worker outlives the test body
		// and must not log through the test logger afterwards.
		coord, err := NewCoordinator(cfg)
		require.NoError(t, err)

		release := make(chan struct{})
		t.Cleanup(func() { close(release) })
		stalled := func(questionNo, attempt int) string {
			<-release
			return validAnswers[questionNo]
		}

		// The fast request is queued first so it completes even when the
		// pool has a single worker.
		report, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "fast", Name: "Alice", Email: "a@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
			{ID: "slow", Name: "Bob", Email: "b@example.com", Answers: stalled},
		})

		require.ErrorIs(t, err, ErrIntakeTimeout)
		require.True(t, report.TimedOut)
		require.Equal(t, 1, report.Completed)

		// No global rollback: the participant that finished stays
		// registered and team-eligible.
		_, ok := coord.Participant("fast")
		require.True(t, ok)
	})

	t.Run("empty request list is a no-op", func(t *testing.T) {
		coord := newTestCoordinator(t)

		report, err := coord.RunIntake(context.Background(), nil)

		require.NoError(t, err)
		require.Zero(t, report.Requested)
	})

	t.Run("registration hook fires per registered participant", func(t *testing.T) {
		registered := make(chan string, 4)
		hooks := &Hooks{
			OnParticipantRegistered: func(_ context.Context, p *Participant) error {
				registered <- p.ID()
				return nil
			},
		}
		coord := newTestCoordinator(t, WithHooks(hooks))

		_, err := coord.RunIntake(context.Background(), []IntakeRequest{
			{ID: "P1", Name: "Alice", Email: "a@example.com", Answers: tmtest.FixedAnswers(validAnswers)},
		})
		require.NoError(t, err)
		require.Len(t, registered, 1)
	})
}

// failingWriter rejects every append, standing in for a full disk or a
// permission problem.
type failingWriter struct{}

func (failingWriter) Append(string, *Participant) error {
	return errors.New("disk full")
}

func TestCoordinator_FormTeams(t *testing.T) {
	seed := func(t *testing.T, coord *Coordinator, n int) {
		t.Helper()
		for i := range n {
			p := coord.NewParticipant(fmt.Sprintf("player-%d", i+1), "p@example.com")
			p.SetInterests("chess", i%10+1, "strategist")
			require.True(t, coord.AddParticipant(p))
		}
	}

	t.Run("forms teams from the registry", func(t *testing.T) {
		coord := newTestCoordinator(t)
		seed(t, coord, 12)

		teams, err := coord.FormTeams(context.Background(), 5)

		require.NoError(t, err)
		require.Len(t, teams, 3)

		total := 0
		for _, team := range teams {
			total += team.Size()
		}
		require.Equal(t, 12, total)
	})

	t.Run("empty registry", func(t *testing.T) {
		coord := newTestCoordinator(t)

		_, err := coord.FormTeams(context.Background(), 5)

		require.ErrorIs(t, err, ErrNoParticipants)
	})

	t.Run("team size of one is rejected", func(t *testing.T) {
		coord := newTestCoordinator(t)
		seed(t, coord, 6)

		_, err := coord.FormTeams(context.Background(), 1)

		require.ErrorIs(t, err, ErrInvalidTeamSize)
	})

	t.Run("team size reaching the participant count is rejected", func(t *testing.T) {
		coord := newTestCoordinator(t)
		seed(t, coord, 6)

		_, err := coord.FormTeams(context.Background(), 6)

		require.ErrorIs(t, err, ErrInvalidTeamSize)
	})

	t.Run("failed formation leaves the previous generation intact", func(t *testing.T) {
		coord := newTestCoordinator(t)
		seed(t, coord, 12)

		teams, err := coord.FormTeams(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, teams, 3)

		_, err = coord.FormTeams(context.Background(), 1)
		require.ErrorIs(t, err, ErrInvalidTeamSize)

		require.Len(t, coord.Teams(ScopeAll), 3)
	})

	t.Run("reforming replaces the generation", func(t *testing.T) {
		coord := newTestCoordinator(t)
		seed(t, coord, 12)

		_, err := coord.FormTeams(context.Background(), 5)
		require.NoError(t, err)
		_, err = coord.FormTeams(context.Background(), 3)
		require.NoError(t, err)

		require.Len(t, coord.Teams(ScopeAll), 4)
	})

	t.Run("formation hook receives the new generation", func(t *testing.T) {
		var got []*Team
		hooks := &Hooks{
			OnTeamsFormed: func(_ context.Context, teams []*Team) error {
				got = teams
				return nil
			},
		}
		coord := newTestCoordinator(t, WithHooks(hooks))
		seed(t, coord, 12)

		teams, err := coord.FormTeams(context.Background(), 5)

		require.NoError(t, err)
		require.Equal(t, teams, got)
	})

	t.Run("alternate strategy", func(t *testing.T) {
		coord := newTestCoordinator(t, WithStrategy(strategy.NewRoundRobin()))
		seed(t, coord, 9)

		teams, err := coord.FormTeams(context.Background(), 3)

		require.NoError(t, err)
		require.Len(t, teams, 3)
	})
}

func TestCoordinator_Teams(t *testing.T) {
	coord := newTestCoordinator(t)
	for i := range 6 {
		p := coord.NewParticipant(fmt.Sprintf("player-%d", i+1), "p@example.com")
		p.SetInterests("chess", i+1, "strategist")
		require.True(t, coord.AddParticipant(p))
	}

	t.Run("no generation yet", func(t *testing.T) {
		require.Empty(t, coord.Teams(ScopeAll))
		require.Nil(t, coord.Teams("P1"))
	})

	teams, err := coord.FormTeams(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	t.Run("organizer scope returns every team", func(t *testing.T) {
		require.Len(t, coord.Teams(ScopeAll), 2)
	})

	t.Run("participant scope returns only their team", func(t *testing.T) {
		mine := coord.Teams("P1")

		require.Len(t, mine, 1)
		require.True(t, mine[0].Contains("P1"))
	})

	t.Run("unknown participant scope returns nothing", func(t *testing.T) {
		require.Nil(t, coord.Teams("ghost"))
	})
}

func TestCoordinator_ImportParticipants(t *testing.T) {
	t.Run("bulk loads records skipping duplicates", func(t *testing.T) {
		coord := newTestCoordinator(t)
		require.True(t, coord.AddParticipant(types.NewParticipant("P1", "Existing", "e@example.com")))

		path := filepath.Join(t.TempDir(), "import.csv")
		writeCSV(t, path,
			"ID,Name,Email,PreferredGame,SkillLevel,PreferredRole,PersonalityScore,PersonalityType",
			"P1,Mallory,m@example.com,chess,5,strategist,80,Balanced",
			"P2,Bob,b@example.com,fifa,8,attacker,92,Leader",
		)

		res := coord.ImportParticipants(path)

		require.True(t, res.Success)
		require.Contains(t, res.Message, "2 participants")
		require.Equal(t, 2, coord.ParticipantCount())

		p, _ := coord.Participant("P1")
		require.Equal(t, "Existing", p.Name())
		p, ok := coord.Participant("P2")
		require.True(t, ok)
		require.Equal(t, 8, p.SkillLevel())
	})

	t.Run("malformed rows are skipped", func(t *testing.T) {
		coord := newTestCoordinator(t)
		path := filepath.Join(t.TempDir(), "import.csv")
		writeCSV(t, path,
			"ID,Name,Email,PreferredGame,SkillLevel,PreferredRole,PersonalityScore,PersonalityType",
			"P1,Alice,a@example.com,chess,notanumber,strategist,80,Balanced",
			"P2,Bob,b@example.com,fifa,8,attacker,92,Leader",
		)

		res := coord.ImportParticipants(path)

		require.True(t, res.Success)
		require.Equal(t, 1, coord.ParticipantCount())
	})

	t.Run("missing file fails", func(t *testing.T) {
		coord := newTestCoordinator(t)

		res := coord.ImportParticipants(filepath.Join(t.TempDir(), "absent.csv"))

		require.False(t, res.Success)
		require.Contains(t, res.Message, "File upload failed")
	})
}

func writeCSV(t *testing.T, path string, lines ...string) {
	t.Helper()

	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCoordinator_SaveTeams(t *testing.T) {
	coord := newTestCoordinator(t)
	for i := range 6 {
		p := coord.NewParticipant(fmt.Sprintf("player-%d", i+1), "p@example.com")
		p.SetInterests("chess", i+1, "strategist")
		require.True(t, coord.AddParticipant(p))
	}
	_, err := coord.FormTeams(context.Background(), 3)
	require.NoError(t, err)

	t.Run("saves to explicit destination", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "teams.csv")

		res := coord.SaveTeams(dest)

		require.True(t, res.Success)
		require.Contains(t, res.Message, "2 teams")
	})

	t.Run("empty destination uses the configured file", func(t *testing.T) {
		res := coord.SaveTeams("")

		require.True(t, res.Success)
		require.Contains(t, res.Message, coord.cfg.TeamsFile)
	})
}

func TestCoordinator_Login(t *testing.T) {
	coord := newTestCoordinator(t)

	require.True(t, coord.Login("admin", "123"))
	require.False(t, coord.Login("admin", "wrong"))
	require.False(t, coord.Login("", ""))
}
