package tabular

import (
	"covidlens/adapters/coerce"
	"covidlens/domain/table"
)

// BuildTable converts a RawTable into the coerced, immutable Table consumed
// by every aggregation stage. Known categorical columns keep their strings;
// every other column is numeric-coerced when enough of its cells parse,
// with failed cells becoming missing. Runs once, before any aggregation.
func BuildTable(raw *RawTable, coercer *coerce.NumericCoercer) *table.Table {
	t := table.New(raw.RowCount())

	categorical := make(map[string]bool)
	for _, name := range table.CategoricalColumns() {
		categorical[name] = true
	}

	for _, header := range raw.Headers {
		cells := raw.Column(header)
		if categorical[header] || !coercer.LooksNumeric(cells) {
			t.AddTextColumn(header, cells)
			continue
		}
		t.AddNumericColumn(header, coercer.CoerceColumn(cells))
	}

	return t
}
