package fairshare

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mkarlen/fairshare/balance"
	"github.com/mkarlen/fairshare/weight"
)

// WeightConfig controls the effort model.
type WeightConfig struct {
	// UrgencyMultiplier is applied to the ranking weight of critical and
	// overdue tasks. Never discounts: values below 1 are invalid.
	//
	// Default: 1.5
	UrgencyMultiplier float64 `yaml:"urgencyMultiplier"`
}

// StrategyConfig tunes the default least-loaded assignment strategy.
// Ignored when a custom strategy is supplied through WithStrategy.
type StrategyConfig struct {
	// PreferenceBonus is subtracted from a candidate's score when the
	// task's category is in the candidate's preferred set.
	//
	// Default: 5.0
	PreferenceBonus float64 `yaml:"preferenceBonus"`

	// RotationPenalty is added to a candidate's score when the candidate
	// was the last member assigned a task in this category. Keeping it
	// below PreferenceBonus lets a strong preference outweigh rotation.
	//
	// Default: 3.0
	RotationPenalty float64 `yaml:"rotationPenalty"`
}

// KVBucketConfig names the NATS JetStream KV buckets used by the natskv
// stores. Only consulted by deployments that persist engine state in
// NATS; the engine itself works against the store interfaces.
type KVBucketConfig struct {
	// TaskBucket holds task records for the KV-backed assignment sink.
	TaskBucket string `yaml:"taskBucket"`

	// AuditBucket holds immutable reassignment audit records.
	AuditBucket string `yaml:"auditBucket"`

	// RotationBucket holds the last assignee per category.
	RotationBucket string `yaml:"rotationBucket"`

	// RotationTTL expires rotation memory (0 = no expiration). Rotation
	// state has no built-in retention; the bucket TTL is the retention
	// policy.
	RotationTTL time.Duration `yaml:"rotationTtl"`
}

// Config is the configuration for the Engine.
type Config struct {
	// HouseholdID scopes published alerts and digests. Informational for
	// everything else.
	HouseholdID string `yaml:"householdId"`

	// Weights controls the effort model.
	Weights WeightConfig `yaml:"weights"`

	// Thresholds parameterizes balance classification. Zero fields use
	// the balance package defaults.
	Thresholds balance.Thresholds `yaml:"thresholds"`

	// Strategy tunes the default assignment strategy.
	Strategy StrategyConfig `yaml:"strategy"`

	// MaxSuggestions bounds rebalance suggestion runs that don't supply
	// their own budget.
	//
	// Default: 3
	MaxSuggestions int `yaml:"maxSuggestions"`

	// KVBuckets names the JetStream buckets for KV-backed persistence.
	KVBuckets KVBucketConfig `yaml:"kvBuckets"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Weights: WeightConfig{
			UrgencyMultiplier: weight.DefaultUrgencyMultiplier,
		},
		Thresholds: balance.Thresholds{}.WithDefaults(),
		Strategy: StrategyConfig{
			PreferenceBonus: 5.0,
			RotationPenalty: 3.0,
		},
		MaxSuggestions: 3,
		KVBuckets: KVBucketConfig{
			TaskBucket:     "fairshare-tasks",
			AuditBucket:    "fairshare-audit",
			RotationBucket: "fairshare-rotation",
			RotationTTL:    0, // No TTL - rotation memory persists until overwritten
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Weights.UrgencyMultiplier == 0 {
		cfg.Weights.UrgencyMultiplier = defaults.Weights.UrgencyMultiplier
	}
	cfg.Thresholds = cfg.Thresholds.WithDefaults()
	if cfg.Strategy.PreferenceBonus == 0 {
		cfg.Strategy.PreferenceBonus = defaults.Strategy.PreferenceBonus
	}
	if cfg.Strategy.RotationPenalty == 0 {
		cfg.Strategy.RotationPenalty = defaults.Strategy.RotationPenalty
	}
	if cfg.MaxSuggestions == 0 {
		cfg.MaxSuggestions = defaults.MaxSuggestions
	}
	if cfg.KVBuckets.TaskBucket == "" {
		cfg.KVBuckets.TaskBucket = defaults.KVBuckets.TaskBucket
	}
	if cfg.KVBuckets.AuditBucket == "" {
		cfg.KVBuckets.AuditBucket = defaults.KVBuckets.AuditBucket
	}
	if cfg.KVBuckets.RotationBucket == "" {
		cfg.KVBuckets.RotationBucket = defaults.KVBuckets.RotationBucket
	}
	// Note: RotationTTL of 0 is valid (no expiration), so we don't apply a default
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Hard Validation Rules:
//   - UrgencyMultiplier >= 1 (urgency never discounts)
//   - BalancedMaxRatio >= 1 and <= WarningMaxRatio (band ordering)
//   - OverloadPoints > 0
//   - InactivityWarningDays <= InactivityCriticalDays
//   - PreferenceBonus and RotationPenalty >= 0
//   - MaxSuggestions > 0
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Weights.UrgencyMultiplier < 1 {
		return fmt.Errorf(
			"UrgencyMultiplier (%v) must be >= 1, urgency never discounts a task",
			cfg.Weights.UrgencyMultiplier,
		)
	}

	t := cfg.Thresholds
	if t.BalancedMaxRatio < 1 {
		return fmt.Errorf("BalancedMaxRatio (%v) must be >= 1", t.BalancedMaxRatio)
	}
	if t.BalancedMaxRatio > t.WarningMaxRatio {
		return fmt.Errorf(
			"BalancedMaxRatio (%v) must be <= WarningMaxRatio (%v)",
			t.BalancedMaxRatio, t.WarningMaxRatio,
		)
	}
	if t.OverloadPoints <= 0 {
		return fmt.Errorf("OverloadPoints must be > 0, got %v", t.OverloadPoints)
	}
	if t.InactivityWarningDays > t.InactivityCriticalDays {
		return fmt.Errorf(
			"InactivityWarningDays (%v) must be <= InactivityCriticalDays (%v)",
			t.InactivityWarningDays, t.InactivityCriticalDays,
		)
	}

	if cfg.Strategy.PreferenceBonus < 0 {
		return fmt.Errorf("PreferenceBonus must be >= 0, got %v", cfg.Strategy.PreferenceBonus)
	}
	if cfg.Strategy.RotationPenalty < 0 {
		return fmt.Errorf("RotationPenalty must be >= 0, got %v", cfg.Strategy.RotationPenalty)
	}

	if cfg.MaxSuggestions <= 0 {
		return fmt.Errorf("MaxSuggestions must be > 0, got %v", cfg.MaxSuggestions)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for
// non-recommended values.
//
// This is called after Validate() in NewEngine() to provide operator
// guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Weights.UrgencyMultiplier > 3 {
		logger.Warn(
			"UrgencyMultiplier is unusually high, urgent tasks will dominate ranking",
			"urgencyMultiplier", cfg.Weights.UrgencyMultiplier,
			"recommended", "1.5 to 2.0",
		)
	}

	if cfg.Strategy.RotationPenalty > cfg.Strategy.PreferenceBonus {
		logger.Warn(
			"RotationPenalty exceeds PreferenceBonus, rotation will override member preferences",
			"rotationPenalty", cfg.Strategy.RotationPenalty,
			"preferenceBonus", cfg.Strategy.PreferenceBonus,
		)
	}

	if cfg.MaxSuggestions > 10 {
		logger.Warn(
			"MaxSuggestions is very high, suggestion lists may overwhelm users",
			"maxSuggestions", cfg.MaxSuggestions,
			"recommended", "3 to 5",
		)
	}
}

// TestConfig returns a configuration suited for tests: identical
// semantics with a short rotation TTL so KV-backed rotation state does
// not leak between runs.
//
// Returns:
//   - Config: Configuration for tests
//
// Example:
//
//	cfg := fairshare.TestConfig()
//	engine, err := fairshare.NewEngine(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.HouseholdID = "test-household"
	cfg.KVBuckets.RotationTTL = time.Minute

	return cfg
}

// LoadConfig reads a YAML configuration file, applies defaults, and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Parsed, defaulted, validated configuration
//   - error: Read, parse, or validation error
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
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
