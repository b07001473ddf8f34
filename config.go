package grouping

import (
	"fmt"

	"github.com/timmens/random-grouping/types"
)

// Config is the configuration for the Matcher.
type Config struct {
	// MinSize is the minimum group size. Required unless NGroups is set.
	MinSize int `yaml:"minSize"`

	// NGroups, when positive, derives the minimum group size from the
	// number of active participants so that NGroups groups are created.
	// An explicit MinSize larger than the derived size is a configuration
	// error (not enough participants).
	NGroups int `yaml:"nGroups"`

	// MaxSize, when positive, caps the group size. Only MaxSize == MinSize
	// is enforced: participants are excluded (most-matched first) until
	// the active count is a multiple of MaxSize, and the excluded are
	// reported in the result. Larger maxima are accepted but not enforced
	// when the even split runs bigger.
	MaxSize int `yaml:"maxSize"`

	// Multipliers maps attribute name to its mixing multiplier.
	// A pair with differing categories on an attribute has the attribute's
	// multiplier subtracted from its score when both want mixing and added
	// when either does not. Attributes absent from the map are neutral.
	// Every key must name an attribute present on the roster.
	Multipliers map[string]float64 `yaml:"multipliers"`

	// Seed is the base random seed. Zero means derive a seed from the
	// clock, making runs non-reproducible. The per-meeting seed is folded
	// from Seed and the meeting index, so consecutive meetings differ even
	// under a fixed Seed.
	Seed uint64 `yaml:"seed"`

	// Candidates is the number of partitions the sampling builder draws.
	// Ignored by the greedy builder. Zero selects the default.
	Candidates int `yaml:"candidates"`
}

// DefaultConfig returns a Config with default values: groups of at least
// three, neutral mixing, clock-derived seed.
func DefaultConfig() Config {
	cfg := Config{}
	ApplyDefaults(&cfg)

	return cfg
}

// ApplyDefaults fills zero-valued fields with defaults. Explicitly set
// values are preserved.
func ApplyDefaults(cfg *Config) {
	if cfg.MinSize == 0 && cfg.NGroups == 0 {
		cfg.MinSize = 3
	}
}

// Validate checks the configuration for internal consistency.
//
// Returns an error wrapping types.ErrInvalidConfig naming the violated
// constraint, or nil. Roster-dependent checks (multiplier keys against
// roster attributes, NGroups against the active count) happen at matching
// time.
func (cfg *Config) Validate() error {
	if cfg.NGroups < 0 {
		return fmt.Errorf("%w: nGroups must not be negative, got %d", types.ErrInvalidConfig, cfg.NGroups)
	}
	if cfg.NGroups == 0 && cfg.MinSize < 1 {
		return fmt.Errorf("%w: %w (got %d)", types.ErrInvalidConfig, types.ErrInvalidMinSize, cfg.MinSize)
	}
	if cfg.MinSize < 0 {
		return fmt.Errorf("%w: %w (got %d)", types.ErrInvalidConfig, types.ErrInvalidMinSize, cfg.MinSize)
	}
	if cfg.MaxSize < 0 {
		return fmt.Errorf("%w: maxSize must not be negative, got %d", types.ErrInvalidConfig, cfg.MaxSize)
	}
	if cfg.MaxSize > 0 && cfg.MinSize > 0 && cfg.MaxSize < cfg.MinSize {
		return fmt.Errorf("%w: %w (min %d, max %d)", types.ErrInvalidConfig, types.ErrInvalidMaxSize, cfg.MinSize, cfg.MaxSize)
	}
	if cfg.Candidates < 0 {
		return fmt.Errorf("%w: candidates must not be negative, got %d", types.ErrInvalidConfig, cfg.Candidates)
	}

	return nil
}

// BroadcastMultiplier builds a multiplier map assigning one scalar to every
// named attribute. This is the convenience form for the older single-scalar
// configuration style.
func BroadcastMultiplier(m float64, attributes []string) map[string]float64 {
	out := make(map[string]float64, len(attributes))
	for _, name := range attributes {
		out[name] = m
	}

	return out
}
