package pipeline

import (
	"math"
	"sort"

	"covidlens/domain/core"
	"covidlens/domain/table"

	"github.com/montanaflynn/stats"
)

// Melt reshapes the table into long format: one row per (region, case type,
// value) triple at original row granularity, column-major like a frame melt
// (every row of the first value column, then the next). Missing cells stay
// as NaN rows so the long frame keeps the original granularity. This feeds
// distribution views, unlike the pre-aggregated region melt used for bars.
func Melt(t *table.Table, valueColumns []string) (*table.LongFrame, error) {
	regions, ok := t.TextColumn(table.ColWHORegion)
	if !ok {
		return nil, core.NewColumnNotFoundError(table.ColWHORegion)
	}

	frame := &table.LongFrame{}
	for _, column := range valueColumns {
		values, present := t.NumericColumn(column)
		if !present {
			continue
		}
		for i, v := range values {
			frame.Rows = append(frame.Rows, table.LongRow{
				Group:    regions[i],
				CaseType: column,
				Value:    v,
			})
		}
	}
	return frame, nil
}

// ReaggregateLong sums a long frame back to (group, case type) totals,
// treating missing values as zero. Melting and re-aggregating reproduces
// the wide region aggregate exactly.
func ReaggregateLong(frame *table.LongFrame) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, row := range frame.Rows {
		if out[row.Group] == nil {
			out[row.Group] = make(map[string]float64)
		}
		if !math.IsNaN(row.Value) {
			out[row.Group][row.CaseType] += row.Value
		} else {
			out[row.Group][row.CaseType] += 0
		}
	}
	return out
}

// BoxSummaries computes the five-number summary per (region, case type)
// from a long frame, the prepared input for box-plot rendering. Groups with
// no real values are dropped.
func BoxSummaries(frame *table.LongFrame) *table.BoxFrame {
	type key struct{ region, caseType string }
	grouped := make(map[key][]float64)
	seen := make(map[key]bool)
	var order []key
	for _, row := range frame.Rows {
		k := key{row.Group, row.CaseType}
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
		if !math.IsNaN(row.Value) {
			grouped[k] = append(grouped[k], row.Value)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].region != order[j].region {
			return order[i].region < order[j].region
		}
		return order[i].caseType < order[j].caseType
	})

	boxes := &table.BoxFrame{}
	for _, k := range order {
		values := grouped[k]
		if len(values) == 0 {
			continue
		}
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		median, _ := stats.Median(values)
		quartiles, err := stats.Quartile(values)
		q1, q3 := median, median
		if err == nil {
			q1, q3 = quartiles.Q1, quartiles.Q3
		}
		boxes.Rows = append(boxes.Rows, table.BoxRow{
			Region:   k.region,
			CaseType: k.caseType,
			Count:    len(values),
			Min:      min,
			Q1:       q1,
			Median:   median,
			Q3:       q3,
			Max:      max,
		})
	}
	return boxes
}
