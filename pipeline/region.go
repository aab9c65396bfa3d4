package pipeline

import (
	"math"
	"sort"

	"covidlens/domain/core"
	"covidlens/domain/table"
)

// regionMetrics are the case types summed per region for the grouped bar
// and regional pie charts.
var regionMetrics = []string{table.ColConfirmed, table.ColDeaths, table.ColRecovered}

// AggregateRegions groups rows by WHO region and sums confirmed, deaths and
// recovered per group. Rows with an empty region value form their own group
// rather than being dropped. Output region order is lexicographic, the
// deterministic order of a sorting group-by, independent of row order.
//
// The wide frame feeds bar/pie charts; the melted frame is the same data as
// one row per region and case type for grouped chart consumption.
func AggregateRegions(t *table.Table) (*table.RegionFrame, error) {
	regions, ok := t.TextColumn(table.ColWHORegion)
	if !ok {
		return nil, core.NewColumnNotFoundError(table.ColWHORegion)
	}

	sums := make(map[string]*table.RegionRow)
	var order []string
	for _, name := range regions {
		if _, seen := sums[name]; !seen {
			sums[name] = &table.RegionRow{Region: name}
			order = append(order, name)
		}
	}
	sort.Strings(order)

	addColumn := func(name string, add func(row *table.RegionRow, v float64)) {
		values, present := t.NumericColumn(name)
		if !present {
			return // absent metric contributes zero to every region
		}
		for i, v := range values {
			if math.IsNaN(v) {
				continue
			}
			add(sums[regions[i]], v)
		}
	}
	addColumn(table.ColConfirmed, func(r *table.RegionRow, v float64) { r.Confirmed += v })
	addColumn(table.ColDeaths, func(r *table.RegionRow, v float64) { r.Deaths += v })
	addColumn(table.ColRecovered, func(r *table.RegionRow, v float64) { r.Recovered += v })

	frame := &table.RegionFrame{}
	for _, name := range order {
		frame.Wide = append(frame.Wide, *sums[name])
	}

	// Melt column-major: all regions for Confirmed, then Deaths, then Recovered.
	for _, caseType := range regionMetrics {
		for _, row := range frame.Wide {
			var v float64
			switch caseType {
			case table.ColConfirmed:
				v = row.Confirmed
			case table.ColDeaths:
				v = row.Deaths
			case table.ColRecovered:
				v = row.Recovered
			}
			frame.Melted = append(frame.Melted, table.LongRow{
				Group:    row.Region,
				CaseType: caseType,
				Value:    v,
			})
		}
	}

	return frame, nil
}
