// Package regression generates synthetic linear-regression datasets from a
// reproducible, parametrized ground truth, and can re-draw fresh sample
// batches from the same distribution on demand.
//
// 🚀 What is it for?
//
//	Testing regression algorithms against data whose true coefficients are
//	known — e.g. checking that a sparsifying regularizer (L1, elastic net)
//	recovers exactly the informative features, or how an estimator degrades
//	under label noise or an ill-conditioned (low-rank) design matrix.
//
// ✨ Key features:
//   - Constructed ground truth: a seeded derivation with exactly
//     NInformative non-zero coefficient rows at shuffled positions
//   - Reconstructed ground truth: wrap your own coefficient vector/matrix
//   - i.i.d. normal or low-rank-with-heavy-tail design matrices
//     (EffectiveRank + TailStrength)
//   - optional Gaussian label noise; zero noise keeps batches a pure
//     function of the sampling seed
//   - one provider, many batches: call GenerateSamples repeatedly with
//     independent seeds against the same fixed coefficients
//
// ⚙️ Usage:
//
//	cfg := regression.DefaultConfig()
//	cfg.NFeatures = 5
//	cfg.NInformative = 3
//	cfg.Seed = 42
//
//	p, err := regression.NewConstructed(cfg)
//	if err != nil {
//	  // one of the Config sentinel errors
//	}
//
//	// reproducible batch: same seed ⇒ identical table
//	ds, err := regression.GenerateSamples(p, 100, regression.NewSource(7))
//
//	// non-reproducible batch: nil source ⇒ fresh entropy
//	ds2, err := regression.GenerateSamples(p, 100, nil)
//
// The resulting Dataset is a (rows × features+targets) table; Features()
// and Labels() expose the X and Y blocks as zero-copy matrix views ready
// for gonum consumers.
//
// Everything is in-memory and synchronous: no I/O, no shared mutable state.
// Providers are immutable after construction, so concurrent GenerateSamples
// calls are safe as long as each call uses its own rand.Source.
package regression
