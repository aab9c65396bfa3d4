package pipeline

import (
	"errors"
	"math"
	"testing"

	"covidlens/domain/core"
	"covidlens/domain/table"
	"covidlens/internal/testkit"
)

func TestCorrelate_SymmetricWithUnitDiagonal(t *testing.T) {
	tbl := testkit.NewGenerator(testkit.DefaultGeneratorConfig()).Generate()

	matrix, err := Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	n := len(matrix.Columns)
	if n < 2 {
		t.Fatalf("matrix has %d columns, want >= 2", n)
	}
	for i := 0; i < n; i++ {
		if matrix.At(i, i) != 1.0 {
			t.Errorf("diagonal [%d][%d] = %f, want 1.0", i, i, matrix.At(i, i))
		}
		for j := 0; j < n; j++ {
			a, b := matrix.At(i, j), matrix.At(j, i)
			if math.IsNaN(a) != math.IsNaN(b) || (!math.IsNaN(a) && a != b) {
				t.Errorf("matrix not symmetric at [%d][%d]: %f vs %f", i, j, a, b)
			}
			if !math.IsNaN(a) && (a < -1.0000001 || a > 1.0000001) {
				t.Errorf("correlation [%d][%d] = %f outside [-1, 1]", i, j, a)
			}
		}
	}
}

func TestCorrelate_PerfectLinearRelationship(t *testing.T) {
	tbl := table.New(5)
	tbl.AddNumericColumn("x", []float64{1, 2, 3, 4, 5})
	tbl.AddNumericColumn("y", []float64{2, 4, 6, 8, 10})

	matrix, err := Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if r := matrix.At(0, 1); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("correlation of y=2x = %f, want 1.0", r)
	}
}

func TestCorrelate_InsufficientColumns(t *testing.T) {
	tbl := table.New(3)
	tbl.AddTextColumn(table.ColCountry, []string{"A", "B", "C"})
	tbl.AddNumericColumn(table.ColConfirmed, []float64{1, 2, 3})

	if _, err := Correlate(tbl); !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}

func TestCorrelate_ZeroVarianceIsNaN(t *testing.T) {
	tbl := table.New(4)
	tbl.AddNumericColumn("constant", []float64{5, 5, 5, 5})
	tbl.AddNumericColumn("varying", []float64{1, 2, 3, 4})

	matrix, err := Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if !math.IsNaN(matrix.At(0, 1)) {
		t.Errorf("zero-variance pair correlation = %f, want NaN", matrix.At(0, 1))
	}
	// Diagonal stays 1.0 regardless
	if matrix.At(0, 0) != 1.0 {
		t.Errorf("diagonal for constant column = %f, want 1.0", matrix.At(0, 0))
	}
}

func TestCorrelate_PairwiseComplete(t *testing.T) {
	// Column "gappy" is missing where "x" and "y" disagree most; pairwise
	// deletion must use the 3 complete rows for (x, gappy) while (x, y)
	// still uses all 5.
	tbl := table.New(5)
	tbl.AddNumericColumn("x", []float64{1, 2, 3, 4, 5})
	tbl.AddNumericColumn("y", []float64{1, 2, 3, 4, 5})
	tbl.AddNumericColumn("gappy", []float64{2, math.NaN(), 6, math.NaN(), 10})

	matrix, err := Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	xy := matrix.At(0, 1)
	if math.Abs(xy-1.0) > 1e-9 {
		t.Errorf("corr(x, y) = %f, want 1.0", xy)
	}
	// gappy is 2*x on its complete rows, so still perfectly correlated
	xg := matrix.At(0, 2)
	if math.Abs(xg-1.0) > 1e-9 {
		t.Errorf("corr(x, gappy) over complete rows = %f, want 1.0", xg)
	}
}

func TestCorrelate_TooFewCompleteRows(t *testing.T) {
	tbl := table.New(3)
	tbl.AddNumericColumn("a", []float64{1, math.NaN(), math.NaN()})
	tbl.AddNumericColumn("b", []float64{2, 3, math.NaN()})

	matrix, err := Correlate(tbl)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if !math.IsNaN(matrix.At(0, 1)) {
		t.Errorf("single complete row correlation = %f, want NaN", matrix.At(0, 1))
	}
}
