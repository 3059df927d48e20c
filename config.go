package teammate

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the Coordinator.
//
// All duration fields accept standard Go duration strings like "30s", "5m".
type Config struct {
	// ParticipantIDPrefix is the prefix for generated participant IDs
	// (e.g., "P" produces "P1", "P2", ...).
	ParticipantIDPrefix string `yaml:"participantIdPrefix"`

	// TeamNamePrefix is the display name given to every formed team.
	TeamNamePrefix string `yaml:"teamNamePrefix"`

	// MaxAnswerRetries caps how many times an intake worker re-asks one
	// question after rejections before abandoning the participant. Set to
	// -1 for unbounded retries; note that an answer source that can only
	// produce invalid answers would then loop forever, so production
	// configurations should keep a cap. The zero value is treated as
	// unset and replaced with the default by SetDefaults, so a
	// zero-retry policy is not expressible; the tightest cap is 1.
	MaxAnswerRetries int `yaml:"maxAnswerRetries"`

	// IntakeTimeout is the upper bound on a full intake run. On expiry the
	// run reports failure; participants that completed individually remain
	// valid.
	IntakeTimeout time.Duration `yaml:"intakeTimeout"`

	// FormationTimeout is the upper bound on the parallel team population
	// phase. On expiry formation fails with no partial team list.
	FormationTimeout time.Duration `yaml:"formationTimeout"`

	// Games is the preferred-game enumeration for question 6
	// (case-insensitive). Empty uses the survey package defaults.
	Games []string `yaml:"games"`

	// Roles is the preferred-role enumeration for question 8
	// (case-insensitive). Empty uses the survey package defaults.
	Roles []string `yaml:"roles"`

	// ParticipantsFile is the default destination for persisted participant
	// records.
	ParticipantsFile string `yaml:"participantsFile"`

	// TeamsFile is the default destination for saved team generations.
	TeamsFile string `yaml:"teamsFile"`

	// OrganizerUsername and OrganizerPassword are the fixed organizer
	// credential pair checked by Login. Plaintext comparison only;
	// credential hardening is out of scope.
	OrganizerUsername string `yaml:"organizerUsername"`
	OrganizerPassword string `yaml:"organizerPassword"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ParticipantIDPrefix: "P",
		TeamNamePrefix:      "Team",
		MaxAnswerRetries:    25,
		IntakeTimeout:       5 * time.Minute,
		FormationTimeout:    5 * time.Minute,
		ParticipantsFile:    "participants.csv",
		TeamsFile:           "formed_teams.csv",
		OrganizerUsername:   "admin",
		OrganizerPassword:   "123",
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.ParticipantIDPrefix == "" {
		cfg.ParticipantIDPrefix = defaults.ParticipantIDPrefix
	}
	if cfg.TeamNamePrefix == "" {
		cfg.TeamNamePrefix = defaults.TeamNamePrefix
	}
	if cfg.MaxAnswerRetries == 0 {
		cfg.MaxAnswerRetries = defaults.MaxAnswerRetries
	}
	if cfg.IntakeTimeout == 0 {
		cfg.IntakeTimeout = defaults.IntakeTimeout
	}
	if cfg.FormationTimeout == 0 {
		cfg.FormationTimeout = defaults.FormationTimeout
	}
	if cfg.ParticipantsFile == "" {
		cfg.ParticipantsFile = defaults.ParticipantsFile
	}
	if cfg.TeamsFile == "" {
		cfg.TeamsFile = defaults.TeamsFile
	}
	if cfg.OrganizerUsername == "" {
		cfg.OrganizerUsername = defaults.OrganizerUsername
	}
	if cfg.OrganizerPassword == "" {
		cfg.OrganizerPassword = defaults.OrganizerPassword
	}
	// Note: empty Games/Roles are valid and fall back to the survey
	// package defaults, so no defaults are applied here.
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Rules:
//   - IntakeTimeout and FormationTimeout must be positive
//   - MaxAnswerRetries must be -1 (unbounded) or non-negative
//
// Returns:
//   - error: Validation error with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.IntakeTimeout <= 0 {
		return fmt.Errorf("%w: IntakeTimeout must be > 0, got %v", ErrInvalidConfig, cfg.IntakeTimeout)
	}
	if cfg.FormationTimeout <= 0 {
		return fmt.Errorf("%w: FormationTimeout must be > 0, got %v", ErrInvalidConfig, cfg.FormationTimeout)
	}
	if cfg.MaxAnswerRetries < -1 {
		return fmt.Errorf("%w: MaxAnswerRetries must be -1 (unbounded) or >= 0, got %d", ErrInvalidConfig, cfg.MaxAnswerRetries)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults, and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Parsed, defaulted, validated configuration
//   - error: Read, parse, or validation failure
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Timeouts are far shorter than production defaults so stuck tests fail
// quickly. Use DefaultConfig() for production deployments.
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.IntakeTimeout = 10 * time.Second
	cfg.FormationTimeout = 10 * time.Second
	cfg.MaxAnswerRetries = 5

	return cfg
}
