// Package regression: configuration and the provider contract.
package regression

import "gonum.org/v1/gonum/mat"

// DEFAULTS - single source of truth for zero-configuration behavior.
// These constants MUST reflect the intended defaults in DefaultConfig.
const (
	// DefaultNFeatures is the default observation dimensionality.
	DefaultNFeatures = 100

	// DefaultNInformative is the default number of non-zero coefficient rows.
	DefaultNInformative = 10

	// DefaultNTargets is the default number of simultaneous regression outputs.
	DefaultNTargets = 1

	// DefaultTailStrength is the default heavy-tail mixing weight, used only
	// when EffectiveRank is enabled.
	DefaultTailStrength = 0.5

	// DefaultSeed fixes the ground-truth coefficients of a constructed
	// provider when the caller does not choose a seed.
	DefaultSeed = 42
)

// Config describes one regression problem: the shape of its ground-truth
// coefficients and the distribution its samples are drawn from.
//
// Fields:
//   - NFeatures     — dimensionality of each observation (> 0).
//   - NInformative  — number of non-zero coefficient rows (>= 0); values
//     above NFeatures are silently clamped to NFeatures at construction.
//   - NTargets      — number of simultaneous regression outputs (> 0).
//   - Bias          — additive offset applied to every label.
//   - EffectiveRank — 0 disables; when > 0 the design matrix is drawn from a
//     low-rank-with-tail distribution of approximately this rank.
//   - TailStrength  — heavy-tail mixing weight in [0,1]; ignored unless
//     EffectiveRank is set.
//   - Noise         — standard deviation of additive Gaussian label noise
//     (>= 0); zero skips the noise draw entirely, so labels are a pure
//     deterministic function of the design matrix.
//   - Seed          — seed fixing the ground-truth coefficients (constructed
//     variant only; sampling uses its own per-call source).
//
// A Config is copied by value into its provider at construction and never
// mutated afterward. Validation is eager: constructors reject a bad Config
// before any derivation happens.
//
// Example:
//
//	cfg := regression.DefaultConfig()
//	cfg.NFeatures = 5
//	cfg.NInformative = 3
//	p, err := regression.NewConstructed(cfg)
type Config struct {
	NFeatures     int
	NInformative  int
	NTargets      int
	Bias          float64
	EffectiveRank int
	TailStrength  float64
	Noise         float64
	Seed          uint64
}

// DefaultConfig returns the documented defaults: 100 features of which 10
// are informative, a single target, no bias, a well-conditioned (full-rank)
// design matrix, and noiseless labels.
func DefaultConfig() Config {
	return Config{
		NFeatures:    DefaultNFeatures,
		NInformative: DefaultNInformative,
		NTargets:     DefaultNTargets,
		TailStrength: DefaultTailStrength,
		Seed:         DefaultSeed,
	}
}

// validate reports the first constraint violation as a sentinel error.
// Clamping of NInformative is NOT performed here; see normalized.
func (c Config) validate() error {
	switch {
	case c.NFeatures <= 0:
		return ErrBadFeatureCount
	case c.NTargets <= 0:
		return ErrBadTargetCount
	case c.NInformative < 0:
		return ErrBadInformativeCount
	case c.EffectiveRank < 0:
		return ErrBadEffectiveRank
	case c.TailStrength < 0 || c.TailStrength > 1:
		return ErrTailStrengthRange
	case c.Noise < 0:
		return ErrNegativeNoise
	}

	return nil
}

// normalized returns a copy with NInformative clamped to NFeatures.
// This is a silent normalization, not an error.
func (c Config) normalized() Config {
	if c.NInformative > c.NFeatures {
		c.NInformative = c.NFeatures
	}

	return c
}

// Provider is the coefficient-provider contract: a fixed ground-truth
// coefficient matrix plus the configuration it was built under.
//
// Purity: repeated Coefficients calls on the same instance return equal
// matrices; GenerateSamples treats a Provider as read-only. Because Provider
// is an interface with two concrete variants (Constructed, Reconstructed),
// no "abstract" instance can exist.
type Provider interface {
	// Coefficients returns the (NFeatures × NTargets) ground-truth matrix.
	// Implementations return a copy; callers may mutate the result freely.
	Coefficients() *mat.Dense

	// Config returns the provider's effective (validated, clamped)
	// configuration.
	Config() Config

	// NumInformative returns the number of informative coefficient rows and
	// whether that number is known. Reconstructed providers report ok=false:
	// informativeness is a property of construction, not of the raw values.
	NumInformative() (n int, ok bool)
}
