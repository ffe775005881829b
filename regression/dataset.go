package regression

import "gonum.org/v1/gonum/mat"

// Dataset is one labeled sample batch: a (rows × features+targets) table
// whose leading columns hold the design matrix X and whose trailing columns
// hold the labels Y, rows in generation order.
//
// A Dataset is created fresh by each GenerateSamples call and is not mutated
// afterward; the view accessors (Features, Labels, Matrix) share the backing
// array and must be treated as read-only.
type Dataset struct {
	table     *mat.Dense
	nFeatures int
	nTargets  int
}

// newDataset wraps an assembled table. The table is owned by the Dataset.
func newDataset(table *mat.Dense, nFeatures, nTargets int) *Dataset {
	return &Dataset{table: table, nFeatures: nFeatures, nTargets: nTargets}
}

// NumRows returns the number of samples in the batch.
func (d *Dataset) NumRows() int {
	r, _ := d.table.Dims()

	return r
}

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int { return d.nFeatures }

// NumTargets returns the number of label columns.
func (d *Dataset) NumTargets() int { return d.nTargets }

// NumCols returns the total table width, NumFeatures + NumTargets.
func (d *Dataset) NumCols() int { return d.nFeatures + d.nTargets }

// At returns the raw table entry at row i, column j, features first.
func (d *Dataset) At(i, j int) float64 { return d.table.At(i, j) }

// Feature returns the j-th feature of sample i.
func (d *Dataset) Feature(i, j int) float64 { return d.table.At(i, j) }

// Label returns the k-th label of sample i.
func (d *Dataset) Label(i, k int) float64 { return d.table.At(i, d.nFeatures+k) }

// Features returns a zero-copy view of the design matrix X
// (NumRows × NumFeatures).
func (d *Dataset) Features() mat.Matrix {
	r, _ := d.table.Dims()

	return d.table.Slice(0, r, 0, d.nFeatures)
}

// Labels returns a zero-copy view of the label block Y
// (NumRows × NumTargets).
func (d *Dataset) Labels() mat.Matrix {
	r, c := d.table.Dims()

	return d.table.Slice(0, r, d.nFeatures, c)
}

// Matrix returns the whole table as a matrix view.
func (d *Dataset) Matrix() mat.Matrix { return d.table }
