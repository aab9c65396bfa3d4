package pipeline

import (
	"math"

	"covidlens/domain/core"
	"covidlens/domain/table"

	"gonum.org/v1/gonum/stat"
)

// Correlate computes the pairwise Pearson correlation matrix over every
// numeric column. Each pair uses only rows where both values are present
// (pairwise-complete, not listwise), so one gappy column does not poison
// the rest of the matrix. The diagonal is always 1.0; a pair with fewer
// than two complete rows or zero variance yields NaN. With fewer than two
// numeric columns there is no matrix to draw and the heatmap is skipped.
func Correlate(t *table.Table) (*table.CorrelationMatrix, error) {
	columns := t.NumericColumns()
	if len(columns) < 2 {
		return nil, core.ErrInsufficientData
	}

	data := make([][]float64, len(columns))
	for i, name := range columns {
		data[i], _ = t.NumericColumn(name)
	}

	matrix := &table.CorrelationMatrix{
		Columns: columns,
		Values:  make([][]float64, len(columns)),
	}
	for i := range matrix.Values {
		matrix.Values[i] = make([]float64, len(columns))
	}

	for i := 0; i < len(columns); i++ {
		matrix.Values[i][i] = 1.0
		for j := i + 1; j < len(columns); j++ {
			r := pairwiseCorrelation(data[i], data[j])
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}
	return matrix, nil
}

// pairwiseCorrelation drops rows where either value is missing, then
// delegates to gonum. Zero variance falls out of gonum as NaN.
func pairwiseCorrelation(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
