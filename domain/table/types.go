package table

import (
	"math"
)

// Column names of the country_wise_latest dataset header.
const (
	ColCountry               = "Country/Region"
	ColConfirmed             = "Confirmed"
	ColDeaths                = "Deaths"
	ColRecovered             = "Recovered"
	ColActive                = "Active"
	ColNewCases              = "New cases"
	ColNewDeaths             = "New deaths"
	ColNewRecovered          = "New recovered"
	ColDeathsPer100Cases     = "Deaths / 100 Cases"
	ColRecoveredPer100Cases  = "Recovered / 100 Cases"
	ColDeathsPer100Recovered = "Deaths / 100 Recovered"
	ColConfirmedLastWeek     = "Confirmed last week"
	ColWeekChange            = "1 week change"
	ColWeekPctIncrease       = "1 week % increase"
	ColWHORegion             = "WHO Region"
)

// ExpectedColumns returns the full 15-column header the dataset is validated against.
func ExpectedColumns() []string {
	return []string{
		ColCountry, ColConfirmed, ColDeaths, ColRecovered, ColActive,
		ColNewCases, ColNewDeaths, ColNewRecovered,
		ColDeathsPer100Cases, ColRecoveredPer100Cases, ColDeathsPer100Recovered,
		ColConfirmedLastWeek, ColWeekChange, ColWeekPctIncrease, ColWHORegion,
	}
}

// CoreMetrics returns the four metrics users can aggregate and rank by.
func CoreMetrics() []string {
	return []string{ColConfirmed, ColDeaths, ColRecovered, ColActive}
}

// RateColumns returns the precomputed ratio columns shown in rate rankings.
func RateColumns() []string {
	return []string{ColDeathsPer100Cases, ColRecoveredPer100Cases}
}

// CategoricalColumns returns the columns that are never coerced to numbers.
func CategoricalColumns() []string {
	return []string{ColCountry, ColWHORegion}
}

// IsCoreMetric reports whether name is one of the four core metrics.
func IsCoreMetric(name string) bool {
	for _, m := range CoreMetrics() {
		if m == name {
			return true
		}
	}
	return false
}

// ColumnKind defines column types for aggregation
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Table is the coerced, immutable view of the raw dataset used by every
// pipeline stage. Numeric columns store NaN for missing cells; categorical
// columns keep the raw strings. Row order is load order and never changes.
type Table struct {
	headers []string
	numeric map[string][]float64
	text    map[string][]string
	rows    int
}

// New creates an empty table expecting rowCount rows per column.
func New(rowCount int) *Table {
	return &Table{
		numeric: make(map[string][]float64),
		text:    make(map[string][]string),
		rows:    rowCount,
	}
}

// AddNumericColumn appends a numeric column. Values shorter than the row
// count are padded with NaN so every column has equal length.
func (t *Table) AddNumericColumn(name string, values []float64) {
	padded := make([]float64, t.rows)
	for i := range padded {
		if i < len(values) {
			padded[i] = values[i]
		} else {
			padded[i] = math.NaN()
		}
	}
	if _, exists := t.numeric[name]; !exists {
		if _, textual := t.text[name]; !textual {
			t.headers = append(t.headers, name)
		}
	}
	t.numeric[name] = padded
}

// AddTextColumn appends a categorical column, padding with empty strings.
func (t *Table) AddTextColumn(name string, values []string) {
	padded := make([]string, t.rows)
	copy(padded, values)
	if _, exists := t.text[name]; !exists {
		if _, num := t.numeric[name]; !num {
			t.headers = append(t.headers, name)
		}
	}
	t.text[name] = padded
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return t.rows
}

// Headers returns column names in load order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// HasColumn reports whether the named column exists in any form.
func (t *Table) HasColumn(name string) bool {
	if _, ok := t.numeric[name]; ok {
		return true
	}
	_, ok := t.text[name]
	return ok
}

// NumericColumn returns the values of a numeric column (NaN = missing).
func (t *Table) NumericColumn(name string) ([]float64, bool) {
	values, ok := t.numeric[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(values))
	copy(out, values)
	return out, true
}

// TextColumn returns the values of a categorical column.
func (t *Table) TextColumn(name string) ([]string, bool) {
	values, ok := t.text[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// NumericColumns returns the names of all numeric columns in load order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, h := range t.headers {
		if _, ok := t.numeric[h]; ok {
			out = append(out, h)
		}
	}
	return out
}

// Capabilities returns the schema-capability set: every available column
// mapped to its kind. Stages consult this once up front instead of
// duck-typing column presence mid-computation.
func (t *Table) Capabilities() map[string]ColumnKind {
	caps := make(map[string]ColumnKind, len(t.headers))
	for name := range t.numeric {
		caps[name] = KindNumeric
	}
	for name := range t.text {
		caps[name] = KindCategorical
	}
	return caps
}

// SumColumn sums a numeric column treating NaN as zero. A missing column
// sums to zero rather than failing, matching the dashboard's
// availability-over-correctness policy.
func (t *Table) SumColumn(name string) float64 {
	values, ok := t.numeric[name]
	if !ok {
		return 0
	}
	var sum float64
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}
