package pipeline

import (
	"fmt"
	"math"
	"strconv"

	"covidlens/domain/table"
)

// Totals holds the global sum of each core metric. A metric whose column is
// absent sums to zero; the dashboard prefers a zero tile over a dead page.
type Totals struct {
	Confirmed int64 `json:"confirmed"`
	Deaths    int64 `json:"deaths"`
	Recovered int64 `json:"recovered"`
	Active    int64 `json:"active"`
}

// ComputeTotals sums the four core columns across all rows.
func ComputeTotals(t *table.Table) Totals {
	return Totals{
		Confirmed: int64(t.SumColumn(table.ColConfirmed)),
		Deaths:    int64(t.SumColumn(table.ColDeaths)),
		Recovered: int64(t.SumColumn(table.ColRecovered)),
		Active:    int64(t.SumColumn(table.ColActive)),
	}
}

// FormatCount renders a count for metric tiles and bar labels:
// 2500000 -> "2.5M", 1500 -> "1.5k", 999 -> "999".
func FormatCount(num int64) string {
	abs := num
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(num)/1_000_000)
	case abs >= 1000:
		return fmt.Sprintf("%.1fk", float64(num)/1000)
	default:
		return strconv.FormatInt(num, 10)
	}
}

// FormatValue formats any value as a count where possible. Non-numeric
// input comes back as its plain string form; formatting never fails.
func FormatValue(v interface{}) string {
	switch n := v.(type) {
	case int:
		return FormatCount(int64(n))
	case int64:
		return FormatCount(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Sprintf("%v", n)
		}
		return FormatCount(int64(n))
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil && !math.IsNaN(parsed) {
			return FormatCount(int64(parsed))
		}
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Summarize builds the fixed-category summary frame behind the global pie
// and category bar charts. Categories are always exactly the four core
// metrics, in metric order.
func Summarize(totals Totals) *table.SummaryFrame {
	rows := []table.SummaryRow{
		{Category: table.ColConfirmed, Total: totals.Confirmed},
		{Category: table.ColDeaths, Total: totals.Deaths},
		{Category: table.ColRecovered, Total: totals.Recovered},
		{Category: table.ColActive, Total: totals.Active},
	}
	for i := range rows {
		rows[i].Formatted = FormatCount(rows[i].Total)
	}
	return &table.SummaryFrame{Rows: rows}
}
