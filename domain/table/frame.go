package table

import "covidlens/domain/core"

// Frames are the prepared inputs handed to the chart-rendering collaborator.
// Each one is recomputed from scratch every render pass.

// SummaryRow is one category of the global case distribution.
type SummaryRow struct {
	Category  string `json:"category"`
	Total     int64  `json:"total"`
	Formatted string `json:"formatted"`
}

// SummaryFrame backs the global pie and category bar charts. Categories are
// always exactly Confirmed, Deaths, Recovered, Active in that order.
type SummaryFrame struct {
	Rows []SummaryRow `json:"rows"`
}

// RegionRow is one region's summed core counts.
type RegionRow struct {
	Region    string  `json:"region"`
	Confirmed float64 `json:"confirmed"`
	Deaths    float64 `json:"deaths"`
	Recovered float64 `json:"recovered"`
}

// RegionFrame is the wide per-region aggregate plus its melted long form,
// consumed by the grouped bar and regional pie charts.
type RegionFrame struct {
	Wide   []RegionRow `json:"wide"`
	Melted []LongRow   `json:"melted"`
}

// LongRow is one (group, category, value) triple of a melted frame.
type LongRow struct {
	Group    string  `json:"group"`
	CaseType string  `json:"case_type"`
	Value    float64 `json:"value"`
}

// LongFrame is a long-format reshape at original row granularity, used for
// distribution (box plot) views rather than pre-aggregated bar charts.
type LongFrame struct {
	Rows []LongRow `json:"rows"`
}

// RateRow is one country's value for a single rate column.
type RateRow struct {
	Country string  `json:"country"`
	Region  string  `json:"region"`
	Rate    float64 `json:"rate"`
}

// RateRanking is all rows sorted descending by one rate column, NaN last.
type RateRanking struct {
	Column string    `json:"column"`
	Rows   []RateRow `json:"rows"`
}

// TopRow is one country in a top-N selection.
type TopRow struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// TopNFrame is the N largest rows by a single core metric, descending,
// ties broken by original row order.
type TopNFrame struct {
	Metric string   `json:"metric"`
	N      int      `json:"n"`
	Rows   []TopRow `json:"rows"`
}

// CorrelationMatrix is the symmetric pairwise Pearson matrix over numeric
// columns. Values[i][j] is NaN when either column has zero variance on the
// pairwise-complete rows.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// At returns the correlation between columns i and j.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// BoxRow is the five-number summary for one region and case type.
type BoxRow struct {
	Region   string  `json:"region"`
	CaseType string  `json:"case_type"`
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
}

// BoxFrame backs the per-region distribution view.
type BoxFrame struct {
	Rows []BoxRow `json:"rows"`
}

// Warning records a single soft failure surfaced in place of a skipped
// visualization. The dashboard stays interactive; nothing aborts siblings.
type Warning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// RenderPass is the complete output of one pipeline run: every frame the
// dashboard renders plus the warnings for anything skipped.
type RenderPass struct {
	ID          core.RenderPassID  `json:"id"`
	Metric      string             `json:"metric"`
	TopN        int                `json:"top_n"`
	Summary     *SummaryFrame      `json:"summary,omitempty"`
	Regions     *RegionFrame       `json:"regions,omitempty"`
	Rates       []RateRanking      `json:"rates,omitempty"`
	Top         *TopNFrame         `json:"top,omitempty"`
	Long        *LongFrame         `json:"long,omitempty"`
	Boxes       *BoxFrame          `json:"boxes,omitempty"`
	Correlation *CorrelationMatrix `json:"correlation,omitempty"`
	Warnings    []Warning          `json:"warnings"`
	CreatedAt   core.Timestamp     `json:"created_at"`
}
