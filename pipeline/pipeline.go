package pipeline

import (
	"strings"

	"covidlens/domain/core"
	"covidlens/domain/table"
	"covidlens/internal"
)

// Top-N bounds exposed to the dashboard slider.
const (
	MinTopN     = 5
	MaxTopN     = 20
	DefaultTopN = 10
)

// DefaultMetric is the top-N metric used when none is selected.
const DefaultMetric = table.ColConfirmed

// Params are the user-adjustable inputs of one render pass. They are
// injected externally and force a full re-run over the unchanged table.
type Params struct {
	Metric string `json:"metric"`
	TopN   int    `json:"top_n"`
}

// Normalize clamps TopN into [MinTopN, MaxTopN] and defaults the metric.
// The metric itself is validated by the top-N stage, not here: an unknown
// metric skips one chart, it does not abort the pass.
func (p Params) Normalize() Params {
	if p.Metric == "" {
		p.Metric = DefaultMetric
	}
	switch {
	case p.TopN == 0:
		p.TopN = DefaultTopN
	case p.TopN < MinTopN:
		p.TopN = MinTopN
	case p.TopN > MaxTopN:
		p.TopN = MaxTopN
	}
	return p
}

// Runner executes the aggregation stages in fixed order over an immutable
// table. Every derived frame is recomputed from scratch per run; no state
// survives between passes. A stage failure is recorded once as a warning on
// the pass and never aborts sibling stages.
type Runner struct {
	logger *internal.Logger
}

// NewRunner creates a pipeline runner
func NewRunner(logger *internal.Logger) *Runner {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Runner{logger: logger}
}

// Run executes one render pass over the table with the given parameters.
func (r *Runner) Run(t *table.Table, params Params) *table.RenderPass {
	params = params.Normalize()
	pass := &table.RenderPass{
		ID:        core.RenderPassID(core.NewID()),
		Metric:    params.Metric,
		TopN:      params.TopN,
		CreatedAt: core.Now(),
	}

	warn := func(stage, message string) {
		r.logger.Warn("[pipeline] %s: %s", stage, message)
		pass.Warnings = append(pass.Warnings, table.Warning{Stage: stage, Message: message})
	}

	if missing := Validate(t, table.ExpectedColumns()); len(missing) > 0 {
		warn("schema", "dataset is missing expected columns: "+strings.Join(missing, ", "))
	}

	pass.Summary = Summarize(ComputeTotals(t))

	regions, err := AggregateRegions(t)
	if err != nil {
		warn("regions", err.Error())
	} else {
		pass.Regions = regions
	}

	pass.Rates = RankAllRates(t)
	if len(pass.Rates) == 0 {
		warn("rates", "no regional rate columns found")
	}

	top, err := TopN(t, params.Metric, params.TopN)
	if err != nil {
		warn("top", err.Error())
	} else {
		pass.Top = top
	}

	long, err := Melt(t, table.CoreMetrics())
	if err != nil {
		warn("distribution", err.Error())
	} else {
		pass.Long = long
		pass.Boxes = BoxSummaries(long)
	}

	corr, err := Correlate(t)
	if err != nil {
		warn("correlation", err.Error())
	} else {
		pass.Correlation = corr
	}

	r.logger.Debug("[pipeline] pass %s complete (%d warnings)", pass.ID, len(pass.Warnings))
	return pass
}
