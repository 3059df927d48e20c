package teammate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "P", cfg.ParticipantIDPrefix)
	require.Equal(t, "Team", cfg.TeamNamePrefix)
	require.Equal(t, 25, cfg.MaxAnswerRetries)
	require.Equal(t, 5*time.Minute, cfg.IntakeTimeout)
	require.Equal(t, 5*time.Minute, cfg.FormationTimeout)
	require.Equal(t, "participants.csv", cfg.ParticipantsFile)
	require.Equal(t, "formed_teams.csv", cfg.TeamsFile)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		cfg := Config{}

		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		cfg := Config{
			ParticipantIDPrefix: "member-",
			MaxAnswerRetries:    -1,
			IntakeTimeout:       30 * time.Second,
			Games:               []string{"rocket league"},
		}

		SetDefaults(&cfg)

		require.Equal(t, "member-", cfg.ParticipantIDPrefix)
		require.Equal(t, -1, cfg.MaxAnswerRetries)
		require.Equal(t, 30*time.Second, cfg.IntakeTimeout)
		require.Equal(t, []string{"rocket league"}, cfg.Games)
		require.Equal(t, "Team", cfg.TeamNamePrefix)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"unbounded retries allowed", func(c *Config) { c.MaxAnswerRetries = -1 }, false},
		{"negative intake timeout", func(c *Config) { c.IntakeTimeout = -time.Second }, true},
		{"zero formation timeout", func(c *Config) { c.FormationTimeout = 0 }, true},
		{"retries below -1", func(c *Config) { c.MaxAnswerRetries = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses yaml and applies defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
participantIdPrefix: "M"
maxAnswerRetries: 3
intakeTimeout: 45s
games:
  - chess
  - go
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "M", cfg.ParticipantIDPrefix)
		require.Equal(t, 3, cfg.MaxAnswerRetries)
		require.Equal(t, 45*time.Second, cfg.IntakeTimeout)
		require.Equal(t, []string{"chess", "go"}, cfg.Games)
		// Defaulted fields.
		require.Equal(t, "Team", cfg.TeamNamePrefix)
		require.Equal(t, 5*time.Minute, cfg.FormationTimeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: [unclosed"), 0o644))

		_, err := LoadConfig(path)

		require.Error(t, err)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("maxAnswerRetries: -2"), 0o644))

		_, err := LoadConfig(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 10*time.Second, cfg.IntakeTimeout)
	require.Equal(t, 10*time.Second, cfg.FormationTimeout)
	require.Equal(t, 5, cfg.MaxAnswerRetries)
}
