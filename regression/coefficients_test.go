package regression_test

import (
	"testing"

	"github.com/pcountryman/modelingongenerateddata/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewConstructed_Determinism verifies that two independently constructed
// providers with identical configuration yield bit-identical coefficients.
func TestNewConstructed_Determinism(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 12
	cfg.NInformative = 4
	cfg.NTargets = 2
	cfg.Seed = 1337

	a, err := regression.NewConstructed(cfg)
	require.NoError(t, err, "valid config must construct")
	b, err := regression.NewConstructed(cfg)
	require.NoError(t, err, "valid config must construct")

	assert.True(t, mat.Equal(a.Coefficients(), b.Coefficients()),
		"same (NFeatures, NInformative, NTargets, Seed) must yield identical coefficients")
}

// TestNewConstructed_SeedSensitivity verifies that changing only the seed
// changes the derived coefficients.
func TestNewConstructed_SeedSensitivity(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 12
	cfg.NInformative = 4

	a, err := regression.NewConstructed(cfg)
	require.NoError(t, err)

	cfg.Seed = cfg.Seed + 1
	b, err := regression.NewConstructed(cfg)
	require.NoError(t, err)

	assert.False(t, mat.Equal(a.Coefficients(), b.Coefficients()),
		"different seeds must yield different coefficients")
}

// TestNewConstructed_Clamping ensures NInformative > NFeatures is silently
// clamped to NFeatures, with no error.
func TestNewConstructed_Clamping(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 5
	cfg.NInformative = 50

	p, err := regression.NewConstructed(cfg)
	require.NoError(t, err, "over-large NInformative is normalized, not rejected")

	assert.Equal(t, 5, p.Config().NInformative, "effective NInformative must equal NFeatures")

	n, ok := p.NumInformative()
	assert.True(t, ok, "constructed providers know their informative count")
	assert.Equal(t, 5, n, "NumInformative must report the clamped count")
}

// TestNewConstructed_Sparsity checks that exactly NInformative of the
// NFeatures coefficient rows are non-zero, across a range of seeds.
func TestNewConstructed_Sparsity(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 10
	cfg.NInformative = 3

	for seed := uint64(0); seed < 25; seed++ {
		cfg.Seed = seed
		p, err := regression.NewConstructed(cfg)
		require.NoError(t, err)

		coeffs := p.Coefficients()
		nonZero := 0
		for i := 0; i < cfg.NFeatures; i++ {
			if coeffs.At(i, 0) != 0 {
				nonZero++
			}
		}
		assert.Equal(t, 3, nonZero, "seed %d: exactly NInformative rows must be non-zero", seed)
	}
}

// TestNewConstructed_ZeroInformative verifies that NInformative = 0 yields
// an all-zero coefficient matrix.
func TestNewConstructed_ZeroInformative(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 8
	cfg.NInformative = 0

	p, err := regression.NewConstructed(cfg)
	require.NoError(t, err)

	coeffs := p.Coefficients()
	for i := 0; i < 8; i++ {
		assert.Zero(t, coeffs.At(i, 0), "row %d must be zero when nothing is informative", i)
	}
}

// TestNewConstructed_Validation ensures each Config constraint fails fast
// with its sentinel error.
func TestNewConstructed_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*regression.Config)
		want   error
	}{
		{"zero features", func(c *regression.Config) { c.NFeatures = 0 }, regression.ErrBadFeatureCount},
		{"negative features", func(c *regression.Config) { c.NFeatures = -3 }, regression.ErrBadFeatureCount},
		{"zero targets", func(c *regression.Config) { c.NTargets = 0 }, regression.ErrBadTargetCount},
		{"negative informative", func(c *regression.Config) { c.NInformative = -1 }, regression.ErrBadInformativeCount},
		{"negative effective rank", func(c *regression.Config) { c.EffectiveRank = -1 }, regression.ErrBadEffectiveRank},
		{"tail below range", func(c *regression.Config) { c.TailStrength = -0.1 }, regression.ErrTailStrengthRange},
		{"tail above range", func(c *regression.Config) { c.TailStrength = 1.1 }, regression.ErrTailStrengthRange},
		{"negative noise", func(c *regression.Config) { c.Noise = -0.5 }, regression.ErrNegativeNoise},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := regression.DefaultConfig()
			tc.mutate(&cfg)

			_, err := regression.NewConstructed(cfg)
			assert.ErrorIs(t, err, tc.want, "construction must reject the config eagerly")
		})
	}
}

// TestConstructed_CoefficientsCopy verifies that mutating a returned matrix
// does not corrupt the provider's ground truth.
func TestConstructed_CoefficientsCopy(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 6
	cfg.NInformative = 6

	p, err := regression.NewConstructed(cfg)
	require.NoError(t, err)

	first := p.Coefficients()
	first.Set(0, 0, -12345)

	assert.False(t, mat.Equal(first, p.Coefficients()),
		"provider ground truth must be unaffected by caller mutation")
}

// TestNewReconstructed_RoundTrip checks that an input coefficient vector is
// returned unchanged as a column matrix, with NFeatures derived from its
// length and NumInformative unknown.
func TestNewReconstructed_RoundTrip(t *testing.T) {
	input := []float64{0.0, 0.0, 73.1, 72.1, 21.5}

	p, err := regression.NewReconstructed(input, regression.DefaultConfig())
	require.NoError(t, err, "non-empty vector must construct")

	coeffs := p.Coefficients()
	r, c := coeffs.Dims()
	require.Equal(t, 5, r, "NFeatures must be derived from input length")
	require.Equal(t, 1, c, "vector input becomes a single-column matrix")
	for i, want := range input {
		assert.Equal(t, want, coeffs.At(i, 0), "coefficient %d must round-trip exactly", i)
	}

	assert.Equal(t, 5, p.Config().NFeatures, "Config must carry the derived feature count")

	_, ok := p.NumInformative()
	assert.False(t, ok, "reconstructed providers have no known informative count")
}

// TestNewReconstructed_InputIsolation verifies the provider copies its input
// rather than aliasing the caller's slice.
func TestNewReconstructed_InputIsolation(t *testing.T) {
	input := []float64{1, 2, 3}

	p, err := regression.NewReconstructed(input, regression.DefaultConfig())
	require.NoError(t, err)

	input[0] = -99
	assert.Equal(t, 1.0, p.Coefficients().At(0, 0), "provider must hold a copy of the input")
}

// TestNewReconstructed_Empty ensures empty or nil input is rejected.
func TestNewReconstructed_Empty(t *testing.T) {
	_, err := regression.NewReconstructed(nil, regression.DefaultConfig())
	assert.ErrorIs(t, err, regression.ErrNoCoefficients, "nil vector must be rejected")

	_, err = regression.NewReconstructed([]float64{}, regression.DefaultConfig())
	assert.ErrorIs(t, err, regression.ErrNoCoefficients, "empty vector must be rejected")

	_, err = regression.NewReconstructedMatrix(nil, regression.DefaultConfig())
	assert.ErrorIs(t, err, regression.ErrNoCoefficients, "nil matrix must be rejected")
}

// TestNewReconstructedMatrix_FromConstructed reproduces a constructed ground
// truth through the matrix-input reconstructor.
func TestNewReconstructedMatrix_FromConstructed(t *testing.T) {
	cfg := regression.DefaultConfig()
	cfg.NFeatures = 7
	cfg.NInformative = 3
	cfg.NTargets = 2

	src, err := regression.NewConstructed(cfg)
	require.NoError(t, err)

	p, err := regression.NewReconstructedMatrix(src.Coefficients(), regression.DefaultConfig())
	require.NoError(t, err, "a constructed ground truth must reconstruct")

	assert.True(t, mat.Equal(src.Coefficients(), p.Coefficients()),
		"reconstruction must preserve the ground truth exactly")
	assert.Equal(t, 7, p.Config().NFeatures, "derived NFeatures must match the matrix rows")
	assert.Equal(t, 2, p.Config().NTargets, "derived NTargets must match the matrix columns")
}
