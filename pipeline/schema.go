package pipeline

import (
	"covidlens/domain/table"
)

// Validate reports which of the expected columns are absent from the table.
// It never mutates the table and never fails: missingness is surfaced once
// as informational output, and every downstream stage tolerates absent
// columns by substituting zero or skipping its visualization.
func Validate(t *table.Table, expected []string) []string {
	caps := t.Capabilities()
	var missing []string
	for _, name := range expected {
		if _, ok := caps[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
