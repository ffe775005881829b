package regression

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// NewSource returns a deterministic random source for seed, suitable for the
// src argument of GenerateSamples. Equal seeds yield equal sample batches.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// resolveRand mirrors the resolve-or-create convention for random streams:
// a nil source yields a fresh, entropy-seeded (non-reproducible) stream,
// while a non-nil source is used as-is.
func resolveRand(src rand.Source) *rand.Rand {
	if src == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(src)
}

// GenerateSamples draws one labeled sample batch from the regression problem
// fixed by p.
//
// Algorithm Outline:
//  1. Resolve the random stream from src (nil → fresh entropy, see NewSource
//     for reproducible streams).
//  2. Draw the design matrix X (nSamples × NFeatures): i.i.d. standard
//     normal, or the low-rank-with-tail synthesis when EffectiveRank > 0.
//  3. Project: Y = X · coefficients + Bias.
//  4. If Noise > 0, add N(0, Noise²) to every label from the same stream.
//  5. Assemble a Dataset: NFeatures feature columns followed by NTargets
//     label columns, rows in generation order.
//
// The provider is read-only during generation; each call returns a fresh
// Dataset. Concurrent calls against one provider are safe as long as every
// call gets its own rand.Source (sources are not reentrant).
//
// Complexity: O(nSamples · NFeatures · NTargets) time and memory for the
// dense path; the low-rank path adds the SVD of two random bases.
//
// Errors:
//   - ErrNilProvider        — p is nil.
//   - ErrNonPositiveSamples — nSamples <= 0.
//   - ErrNoCoefficients     — p yields no coefficient matrix.
//   - ErrShapeMismatch      — p's coefficients disagree with p's Config.
//   - ErrFactorization      — low-rank basis SVD failed to converge.
func GenerateSamples(p Provider, nSamples int, src rand.Source) (*Dataset, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("nSamples=%d: %w", nSamples, ErrNonPositiveSamples)
	}

	cfg := p.Config()
	coeffs := p.Coefficients()
	if coeffs == nil {
		return nil, ErrNoCoefficients
	}
	if r, c := coeffs.Dims(); r != cfg.NFeatures || c != cfg.NTargets {
		return nil, fmt.Errorf("coefficients %dx%d, config %dx%d: %w",
			r, c, cfg.NFeatures, cfg.NTargets, ErrShapeMismatch)
	}

	rng := resolveRand(src)

	// Design matrix
	var (
		x   *mat.Dense
		err error
	)
	if cfg.EffectiveRank > 0 {
		x, err = lowRankMatrix(nSamples, cfg.NFeatures, cfg.EffectiveRank, cfg.TailStrength, rng)
		if err != nil {
			return nil, err
		}
	} else {
		x = normalMatrix(nSamples, cfg.NFeatures, rng)
	}

	// Labels: projection, bias, then optional noise. The noise draw comes
	// after the X draw on the same stream, so zero-noise batches consume no
	// extra state and stay deterministic per seed.
	y := mat.NewDense(nSamples, cfg.NTargets, nil)
	y.Mul(x, coeffs)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < cfg.NTargets; j++ {
			v := y.At(i, j) + cfg.Bias
			if cfg.Noise > 0 {
				v += cfg.Noise * rng.NormFloat64()
			}
			y.Set(i, j, v)
		}
	}

	// Assemble the table: feature columns first, label columns last.
	table := mat.NewDense(nSamples, cfg.NFeatures+cfg.NTargets, nil)
	for i := 0; i < nSamples; i++ {
		row := table.RawRowView(i)
		copy(row[:cfg.NFeatures], x.RawRowView(i))
		copy(row[cfg.NFeatures:], y.RawRowView(i))
	}

	return newDataset(table, cfg.NFeatures, cfg.NTargets), nil
}

// normalMatrix draws a (rows × cols) matrix of i.i.d. standard-normal
// entries from rng, row-major.
func normalMatrix(rows, cols int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(rows, cols, data)
}
