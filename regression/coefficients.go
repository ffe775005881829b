package regression

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// informativeScale is the upper bound (exclusive) of the uniform draw that
// fills informative coefficient rows: each entry is informativeScale * U[0,1).
const informativeScale = 100.0

// Constructed derives a repeatable random ground truth from Config.Seed.
//
// Derivation (one atomic sequence of two draws from a single seeded stream):
//  1. allocate an all-zero (NFeatures × NTargets) matrix;
//  2. fill the first NInformative rows with values in [0, 100), row-major
//     across all target columns;
//  3. draw a permutation of [0, NFeatures) from the SAME stream and reindex
//     the rows by it, so informative rows are not trivially the leading ones.
//
// The permutation depends on the stream state left by the fill, so the two
// draws are order-dependent and must not be reseeded independently.
// Coefficients are computed eagerly at construction and are fixed for the
// instance's lifetime: identical (NFeatures, NInformative, NTargets, Seed)
// always yield an identical matrix.
type Constructed struct {
	cfg    Config
	coeffs *mat.Dense
}

// NewConstructed validates cfg, clamps NInformative to NFeatures, and
// derives the ground-truth coefficients.
//
// Errors: ErrBadFeatureCount, ErrBadTargetCount, ErrBadInformativeCount,
// ErrBadEffectiveRank, ErrTailStrengthRange, ErrNegativeNoise.
func NewConstructed(cfg Config) (*Constructed, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	return &Constructed{cfg: cfg, coeffs: deriveCoefficients(cfg)}, nil
}

// deriveCoefficients performs the fill-then-permute derivation described on
// Constructed. Deterministic per cfg; no error conditions.
func deriveCoefficients(cfg Config) *mat.Dense {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	coeffs := mat.NewDense(cfg.NFeatures, cfg.NTargets, nil)
	for i := 0; i < cfg.NInformative; i++ {
		for j := 0; j < cfg.NTargets; j++ {
			coeffs.Set(i, j, informativeScale*rng.Float64())
		}
	}

	// Row reindexing: shuffled row i takes original row perm[i]. Consumes
	// further state of the same stream; order relative to the fill matters.
	perm := rng.Perm(cfg.NFeatures)
	shuffled := mat.NewDense(cfg.NFeatures, cfg.NTargets, nil)
	for i, src := range perm {
		shuffled.SetRow(i, coeffs.RawRowView(src))
	}

	return shuffled
}

// Coefficients returns a copy of the derived ground-truth matrix.
func (c *Constructed) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(c.coeffs)
}

// Config returns the effective configuration (NInformative already clamped).
func (c *Constructed) Config() Config { return c.cfg }

// NumInformative reports the clamped informative row count; always known
// for a constructed provider.
func (c *Constructed) NumInformative() (int, bool) { return c.cfg.NInformative, true }

// Reconstructed wraps a caller-supplied ground truth. The input is copied
// once at construction, returned unchanged forever, and never recomputed.
// NFeatures and NTargets in the supplied Config are ignored: both are
// derived from the input's shape. NumInformative is unknown by definition.
type Reconstructed struct {
	cfg    Config
	coeffs *mat.Dense
}

// NewReconstructed builds a provider from a coefficient vector, stored as an
// (len(coeffs) × 1) column matrix.
//
// Errors: ErrNoCoefficients on empty input, plus the Config sentinels of
// NewConstructed (shape fields excepted, since they are derived).
func NewReconstructed(coeffs []float64, cfg Config) (*Reconstructed, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	col := mat.NewDense(len(coeffs), 1, append([]float64(nil), coeffs...))

	return newReconstructed(col, cfg)
}

// NewReconstructedMatrix builds a provider from an (n × m) coefficient
// matrix, for multi-target ground truths. The matrix is copied.
//
// Errors: ErrNoCoefficients on nil or empty input, plus Config sentinels.
func NewReconstructedMatrix(coeffs *mat.Dense, cfg Config) (*Reconstructed, error) {
	if coeffs == nil {
		return nil, ErrNoCoefficients
	}
	if r, c := coeffs.Dims(); r == 0 || c == 0 {
		return nil, ErrNoCoefficients
	}

	return newReconstructed(mat.DenseCopyOf(coeffs), cfg)
}

// newReconstructed derives the shape fields from the (already copied) input
// and validates the remaining configuration.
func newReconstructed(coeffs *mat.Dense, cfg Config) (*Reconstructed, error) {
	cfg.NFeatures, cfg.NTargets = coeffs.Dims()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	return &Reconstructed{cfg: cfg, coeffs: coeffs}, nil
}

// Coefficients returns a copy of the wrapped ground-truth matrix,
// numerically identical to the construction input.
func (r *Reconstructed) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(r.coeffs)
}

// Config returns the effective configuration with derived shape fields.
func (r *Reconstructed) Config() Config { return r.cfg }

// NumInformative always reports ok=false: the informative count of raw
// caller input is undefined.
func (r *Reconstructed) NumInformative() (int, bool) { return 0, false }
