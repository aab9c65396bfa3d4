package pipeline

import (
	"math"
	"testing"

	"covidlens/domain/table"
	"covidlens/internal/testkit"
)

func TestAggregateRegions_SumsMatchGlobalTotal(t *testing.T) {
	tbl := testkit.NewGenerator(testkit.DefaultGeneratorConfig()).Generate()

	frame, err := AggregateRegions(tbl)
	if err != nil {
		t.Fatalf("AggregateRegions failed: %v", err)
	}

	var regionConfirmed float64
	for _, row := range frame.Wide {
		regionConfirmed += row.Confirmed
	}
	globalConfirmed := tbl.SumColumn(table.ColConfirmed)
	if math.Abs(regionConfirmed-globalConfirmed) > 1e-6 {
		t.Errorf("sum of region confirmed = %f, want global total %f", regionConfirmed, globalConfirmed)
	}
}

func TestAggregateRegions_KnownSums(t *testing.T) {
	frame, err := AggregateRegions(testkit.GenerateSmall())
	if err != nil {
		t.Fatalf("AggregateRegions failed: %v", err)
	}

	want := map[string]float64{
		"Africa":   1300,
		"Americas": 1800,
		"Europe":   2400,
	}
	if len(frame.Wide) != len(want) {
		t.Fatalf("got %d regions, want %d", len(frame.Wide), len(want))
	}
	// Region order is lexicographic
	order := []string{"Africa", "Americas", "Europe"}
	for i, row := range frame.Wide {
		if row.Region != order[i] {
			t.Errorf("region %d = %q, want %q", i, row.Region, order[i])
		}
		if row.Confirmed != want[row.Region] {
			t.Errorf("region %s confirmed = %f, want %f", row.Region, row.Confirmed, want[row.Region])
		}
	}
}

func TestAggregateRegions_EmptyRegionKeptAsOwnGroup(t *testing.T) {
	tbl := table.New(3)
	tbl.AddTextColumn(table.ColCountry, []string{"A", "B", "C"})
	tbl.AddNumericColumn(table.ColConfirmed, []float64{10, 20, 30})
	tbl.AddTextColumn(table.ColWHORegion, []string{"Europe", "", "Europe"})

	frame, err := AggregateRegions(tbl)
	if err != nil {
		t.Fatalf("AggregateRegions failed: %v", err)
	}
	if len(frame.Wide) != 2 {
		t.Fatalf("got %d groups, want 2 (empty region is its own group)", len(frame.Wide))
	}
	// Empty string sorts first
	if frame.Wide[0].Region != "" || frame.Wide[0].Confirmed != 20 {
		t.Errorf("empty-region group = %+v, want confirmed 20", frame.Wide[0])
	}
	if frame.Wide[1].Confirmed != 40 {
		t.Errorf("Europe confirmed = %f, want 40", frame.Wide[1].Confirmed)
	}
}

func TestAggregateRegions_MissingRegionColumn(t *testing.T) {
	tbl := table.New(2)
	tbl.AddTextColumn(table.ColCountry, []string{"A", "B"})
	tbl.AddNumericColumn(table.ColConfirmed, []float64{1, 2})

	if _, err := AggregateRegions(tbl); err == nil {
		t.Fatal("expected error for missing region column")
	}
}

func TestAggregateRegions_MeltedMatchesWide(t *testing.T) {
	frame, err := AggregateRegions(testkit.GenerateSmall())
	if err != nil {
		t.Fatalf("AggregateRegions failed: %v", err)
	}

	if len(frame.Melted) != len(frame.Wide)*3 {
		t.Fatalf("melted has %d rows, want %d", len(frame.Melted), len(frame.Wide)*3)
	}
	wide := make(map[string]table.RegionRow)
	for _, row := range frame.Wide {
		wide[row.Region] = row
	}
	for _, long := range frame.Melted {
		w := wide[long.Group]
		var want float64
		switch long.CaseType {
		case table.ColConfirmed:
			want = w.Confirmed
		case table.ColDeaths:
			want = w.Deaths
		case table.ColRecovered:
			want = w.Recovered
		default:
			t.Fatalf("unexpected case type %q", long.CaseType)
		}
		if long.Value != want {
			t.Errorf("melted %s/%s = %f, want %f", long.Group, long.CaseType, long.Value, want)
		}
	}
}
