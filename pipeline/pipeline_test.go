package pipeline

import (
	"strings"
	"testing"

	"covidlens/domain/table"
	"covidlens/internal"
	"covidlens/internal/testkit"
)

func TestRunner_FullTableNoWarnings(t *testing.T) {
	tbl := testkit.NewGenerator(testkit.DefaultGeneratorConfig()).Generate()
	runner := NewRunner(internal.NewLogger(internal.LogLevelError))

	pass := runner.Run(tbl, Params{})
	if len(pass.Warnings) != 0 {
		t.Fatalf("full table produced warnings: %+v", pass.Warnings)
	}
	if pass.Summary == nil || pass.Regions == nil || pass.Top == nil ||
		pass.Long == nil || pass.Boxes == nil || pass.Correlation == nil {
		t.Fatal("full table should populate every frame")
	}
	if len(pass.Rates) != 2 {
		t.Errorf("got %d rate rankings, want 2", len(pass.Rates))
	}
	if pass.Metric != DefaultMetric {
		t.Errorf("default metric = %q, want %q", pass.Metric, DefaultMetric)
	}
	if pass.TopN != DefaultTopN {
		t.Errorf("default top-N = %d, want %d", pass.TopN, DefaultTopN)
	}
	if pass.ID.String() == "" {
		t.Error("render pass should carry an id")
	}
}

func TestRunner_MissingActiveColumn(t *testing.T) {
	// Build a table without Active: the schema warning must list it, the
	// Active total must be zero, and every sibling stage must still run.
	tbl := table.New(4)
	tbl.AddTextColumn(table.ColCountry, []string{"A", "B", "C", "D"})
	tbl.AddNumericColumn(table.ColConfirmed, []float64{100, 200, 300, 400})
	tbl.AddNumericColumn(table.ColDeaths, []float64{1, 2, 3, 4})
	tbl.AddNumericColumn(table.ColRecovered, []float64{50, 100, 150, 200})
	tbl.AddTextColumn(table.ColWHORegion, []string{"X", "X", "Y", "Y"})

	runner := NewRunner(internal.NewLogger(internal.LogLevelError))
	pass := runner.Run(tbl, Params{})

	var schemaWarning *table.Warning
	for i := range pass.Warnings {
		if pass.Warnings[i].Stage == "schema" {
			schemaWarning = &pass.Warnings[i]
		}
	}
	if schemaWarning == nil {
		t.Fatal("expected a schema warning for the missing columns")
	}
	if !strings.Contains(schemaWarning.Message, table.ColActive) {
		t.Errorf("schema warning %q does not mention %q", schemaWarning.Message, table.ColActive)
	}

	for _, row := range pass.Summary.Rows {
		if row.Category == table.ColActive && row.Total != 0 {
			t.Errorf("Active total = %d, want 0", row.Total)
		}
	}
	if pass.Regions == nil {
		t.Error("region aggregation should still run")
	}
	if pass.Correlation == nil {
		t.Error("correlation should still run")
	}
}

func TestRunner_UnknownMetricSkipsOnlyTopN(t *testing.T) {
	tbl := testkit.GenerateSmall()
	runner := NewRunner(internal.NewLogger(internal.LogLevelError))

	pass := runner.Run(tbl, Params{Metric: "Vaccinated", TopN: 10})
	if pass.Top != nil {
		t.Error("top-N frame should be skipped for an unknown metric")
	}
	found := false
	for _, w := range pass.Warnings {
		if w.Stage == "top" {
			found = true
		}
	}
	if !found {
		t.Error("expected a warning for the top stage")
	}
	if pass.Summary == nil || pass.Regions == nil {
		t.Error("sibling stages must not be aborted by an unknown metric")
	}
}

func TestParams_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         Params
		wantMetric string
		wantTopN   int
	}{
		{"defaults", Params{}, DefaultMetric, DefaultTopN},
		{"below minimum", Params{Metric: table.ColDeaths, TopN: 2}, table.ColDeaths, MinTopN},
		{"above maximum", Params{Metric: table.ColActive, TopN: 50}, table.ColActive, MaxTopN},
		{"in range", Params{Metric: table.ColRecovered, TopN: 15}, table.ColRecovered, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Metric != tt.wantMetric {
				t.Errorf("metric = %q, want %q", got.Metric, tt.wantMetric)
			}
			if got.TopN != tt.wantTopN {
				t.Errorf("top-N = %d, want %d", got.TopN, tt.wantTopN)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tbl := testkit.GenerateSmall()
	missing := Validate(tbl, table.ExpectedColumns())

	// GenerateSmall carries only the core metrics plus country and region
	wantMissing := 9
	if len(missing) != wantMissing {
		t.Errorf("got %d missing columns (%v), want %d", len(missing), missing, wantMissing)
	}
	full := testkit.NewGenerator(testkit.DefaultGeneratorConfig()).Generate()
	if missing := Validate(full, table.ExpectedColumns()); len(missing) != 0 {
		t.Errorf("full table reported missing columns: %v", missing)
	}
}
