// Package regression: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// regression package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package regression

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "regression: ..." for consistency and to
// allow easy grepping across logs. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrBadFeatureCount is returned when Config.NFeatures is not positive.
	ErrBadFeatureCount = errors.New("regression: NFeatures must be positive")

	// ErrBadTargetCount is returned when Config.NTargets is not positive.
	ErrBadTargetCount = errors.New("regression: NTargets must be positive")

	// ErrBadInformativeCount is returned when Config.NInformative is negative.
	// NInformative larger than NFeatures is NOT an error: it is silently
	// clamped to NFeatures at construction time.
	ErrBadInformativeCount = errors.New("regression: NInformative must be non-negative")

	// ErrBadEffectiveRank is returned when Config.EffectiveRank is negative.
	// Zero means "disabled" and is always valid.
	ErrBadEffectiveRank = errors.New("regression: EffectiveRank must be non-negative")

	// ErrTailStrengthRange is returned when Config.TailStrength falls outside
	// the closed interval [0, 1].
	ErrTailStrengthRange = errors.New("regression: TailStrength must be in [0,1]")

	// ErrNegativeNoise is returned when Config.Noise is negative. Zero noise
	// is valid and disables the noise draw entirely.
	ErrNegativeNoise = errors.New("regression: Noise must be non-negative")

	// ErrNoCoefficients is returned when a reconstructed provider receives an
	// empty or nil coefficient input, or when a Provider yields no matrix.
	ErrNoCoefficients = errors.New("regression: no coefficients supplied")

	// ErrNilProvider is returned when GenerateSamples receives a nil Provider.
	ErrNilProvider = errors.New("regression: provider is nil")

	// ErrNonPositiveSamples is returned when GenerateSamples is asked for
	// zero or fewer samples.
	ErrNonPositiveSamples = errors.New("regression: nSamples must be positive")

	// ErrShapeMismatch is returned when a provider's coefficient matrix
	// disagrees in shape with its own Config at projection time. This guards
	// the X·coefficients step against misbehaving Provider implementations;
	// nothing is truncated or padded.
	ErrShapeMismatch = errors.New("regression: coefficient shape mismatch")

	// ErrFactorization is returned when the SVD underlying the low-rank
	// design-matrix synthesis fails to converge.
	ErrFactorization = errors.New("regression: SVD factorization failed")
)
