package regression

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// lowRankMatrix synthesizes a mostly low-rank (rows × cols) matrix with a
// fat-tailed singular-value profile.
//
// Construction:
//  1. k = min(rows, cols); draw two standard-normal matrices (rows × k) and
//     (cols × k) from rng and keep their thin-SVD left factors U and V as
//     orthonormal bases;
//  2. build the singular envelope over indices i = 0..k-1
//     s[i] = (1-tail)·exp(-(i/r)²) + tail·exp(-0.1·i/r)
//     where r = effectiveRank: a sharp low-rank bell blended with a slowly
//     decaying tail weighted by tailStrength;
//  3. return U · diag(s) · Vᵀ.
//
// With tailStrength = 0 the spectrum collapses after roughly effectiveRank
// singular values; tailStrength = 1 yields the pure heavy tail. The result
// is deterministic per rng state, and its exact singular values are the
// envelope itself (U and V are orthonormal).
//
// Errors: ErrFactorization if a basis SVD fails to converge (not expected
// for standard-normal input).
func lowRankMatrix(rows, cols, effectiveRank int, tailStrength float64, rng *rand.Rand) (*mat.Dense, error) {
	k := min(rows, cols)

	// Draw order is fixed: row basis first, then column basis.
	u, err := orthonormalBasis(rows, k, rng)
	if err != nil {
		return nil, err
	}
	v, err := orthonormalBasis(cols, k, rng)
	if err != nil {
		return nil, err
	}

	s := singularEnvelope(k, effectiveRank, tailStrength)

	us := mat.NewDense(rows, k, nil)
	us.Mul(u, mat.NewDiagDense(k, s))
	x := mat.NewDense(rows, cols, nil)
	x.Mul(us, v.T())

	return x, nil
}

// orthonormalBasis returns the (n × k) thin-SVD left factor of a random
// standard-normal matrix; its columns are orthonormal. Requires k <= n.
func orthonormalBasis(n, k int, rng *rand.Rand) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(normalMatrix(n, k, rng), mat.SVDThin) {
		return nil, ErrFactorization
	}

	var u mat.Dense
	svd.UTo(&u)

	return &u, nil
}

// singularEnvelope evaluates the blended low-rank/heavy-tail singular-value
// profile over k indices. Values are positive and monotonically decreasing.
func singularEnvelope(k, effectiveRank int, tailStrength float64) []float64 {
	s := make([]float64, k)
	r := float64(effectiveRank)
	for i := range s {
		t := float64(i) / r
		s[i] = (1-tailStrength)*math.Exp(-t*t) + tailStrength*math.Exp(-0.1*t)
	}

	return s
}
