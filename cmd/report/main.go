package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"covidlens/adapters/coerce"
	"covidlens/adapters/tabular"
	"covidlens/domain/table"
	"covidlens/internal"
	"covidlens/pipeline"

	"github.com/joho/godotenv"
)

// report runs the aggregation pipeline once against a data file and prints
// every frame as plain text. Useful for eyeballing a dataset without
// starting the dashboard.
func main() {
	_ = godotenv.Load()

	dataFile := flag.String("data", envOr("DATA_FILE", "country_wise_latest.csv"), "CSV or XLSX data file")
	metric := flag.String("metric", pipeline.DefaultMetric, "top-N metric")
	topN := flag.Int("n", pipeline.DefaultTopN, "top-N count (5-20)")
	flag.Parse()

	reader := tabular.NewDataReader(tabular.DefaultReaderConfig(*dataFile))
	raw, err := reader.ReadRaw()
	if err != nil {
		log.Printf("cannot load dataset: %v", err)
		os.Exit(1)
	}
	tbl := tabular.BuildTable(raw, coerce.New(coerce.DefaultConfig()))

	runner := pipeline.NewRunner(internal.NewDefaultLogger())
	pass := runner.Run(tbl, pipeline.Params{Metric: *metric, TopN: *topN})

	fmt.Printf("Render pass %s over %d rows\n\n", pass.ID, tbl.RowCount())

	for _, w := range pass.Warnings {
		fmt.Printf("warning [%s]: %s\n", w.Stage, w.Message)
	}
	if len(pass.Warnings) > 0 {
		fmt.Println()
	}

	fmt.Println("Global totals:")
	for _, row := range pass.Summary.Rows {
		fmt.Printf("  %-12s %12d  (%s)\n", row.Category, row.Total, row.Formatted)
	}

	if pass.Regions != nil {
		fmt.Println("\nCases by WHO region:")
		for _, row := range pass.Regions.Wide {
			fmt.Printf("  %-24s confirmed=%s deaths=%s recovered=%s\n",
				row.Region,
				pipeline.FormatCount(int64(row.Confirmed)),
				pipeline.FormatCount(int64(row.Deaths)),
				pipeline.FormatCount(int64(row.Recovered)))
		}
	}

	for _, ranking := range pass.Rates {
		fmt.Printf("\n%s (top 10):\n", ranking.Column)
		for i, row := range ranking.Rows {
			if i == 10 {
				break
			}
			if math.IsNaN(row.Rate) {
				fmt.Printf("  %-28s (missing)\n", row.Country)
				continue
			}
			fmt.Printf("  %-28s %6.2f\n", row.Country, row.Rate)
		}
	}

	if pass.Top != nil {
		fmt.Printf("\nTop %d countries by %s:\n", pass.Top.N, pass.Top.Metric)
		for _, row := range pass.Top.Rows {
			fmt.Printf("  %-28s %s\n", row.Country, pipeline.FormatCount(int64(row.Value)))
		}
	}

	if pass.Boxes != nil {
		fmt.Println("\nDistribution by region and case type:")
		for _, row := range pass.Boxes.Rows {
			fmt.Printf("  %-24s %-10s n=%-4d min=%.0f q1=%.0f med=%.0f q3=%.0f max=%.0f\n",
				row.Region, row.CaseType, row.Count, row.Min, row.Q1, row.Median, row.Q3, row.Max)
		}
	}

	if pass.Correlation != nil {
		fmt.Println("\nCorrelation matrix:")
		printCorrelation(pass.Correlation)
	}
}

func printCorrelation(m *table.CorrelationMatrix) {
	fmt.Printf("  %-24s", "")
	for _, name := range m.Columns {
		fmt.Printf(" %10.10s", name)
	}
	fmt.Println()
	for i, name := range m.Columns {
		fmt.Printf("  %-24.24s", name)
		for j := range m.Columns {
			v := m.At(i, j)
			if math.IsNaN(v) {
				fmt.Printf(" %10s", "-")
			} else {
				fmt.Printf(" %10.2f", v)
			}
		}
		fmt.Println()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
