package pipeline

import (
	"math"
	"sort"

	"covidlens/domain/core"
	"covidlens/domain/table"
)

// descendingNaNLast orders values descending with missing values placed
// after every real value, preserving original row order on ties.
func descendingNaNLast(values []float64) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := values[i], values[j]
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		default:
			return a > b
		}
	}
}

// RankByRate sorts all rows descending by one rate column for bar-chart
// display. The sort is stable with missing rates last; the underlying table
// is never reordered.
func RankByRate(t *table.Table, rateColumn string) (*table.RateRanking, error) {
	rates, ok := t.NumericColumn(rateColumn)
	if !ok {
		return nil, core.NewColumnNotFoundError(rateColumn)
	}
	countries, _ := t.TextColumn(table.ColCountry)
	regions, _ := t.TextColumn(table.ColWHORegion)

	idx := make([]int, len(rates))
	for i := range idx {
		idx[i] = i
	}
	byRate := descendingNaNLast(rates)
	sort.SliceStable(idx, func(i, j int) bool { return byRate(idx[i], idx[j]) })

	ranking := &table.RateRanking{Column: rateColumn}
	for _, i := range idx {
		row := table.RateRow{Rate: rates[i]}
		if countries != nil {
			row.Country = countries[i]
		}
		if regions != nil {
			row.Region = regions[i]
		}
		ranking.Rows = append(ranking.Rows, row)
	}
	return ranking, nil
}

// RankAllRates produces one ranking per rate column present in the table.
// Absent rate columns are skipped; the caller surfaces an info message when
// none are available at all.
func RankAllRates(t *table.Table) []table.RateRanking {
	var rankings []table.RateRanking
	for _, column := range table.RateColumns() {
		ranking, err := RankByRate(t, column)
		if err != nil {
			continue
		}
		rankings = append(rankings, *ranking)
	}
	return rankings
}

// TopN selects the n rows with the largest value of the chosen core metric,
// descending, with stable tie-break by original row order. Missing values
// rank below every real value. The metric must be one of the four core
// metrics and its column must exist.
func TopN(t *table.Table, metric string, n int) (*table.TopNFrame, error) {
	if !table.IsCoreMetric(metric) {
		return nil, core.NewMetricError(metric)
	}
	values, ok := t.NumericColumn(metric)
	if !ok {
		return nil, core.NewColumnNotFoundError(metric)
	}
	countries, _ := t.TextColumn(table.ColCountry)

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	byValue := descendingNaNLast(values)
	sort.SliceStable(idx, func(i, j int) bool { return byValue(idx[i], idx[j]) })

	if n > len(idx) {
		n = len(idx)
	}
	frame := &table.TopNFrame{Metric: metric, N: n}
	for _, i := range idx[:n] {
		row := table.TopRow{Value: values[i]}
		if countries != nil {
			row.Country = countries[i]
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, nil
}
