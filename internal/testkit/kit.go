package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"covidlens/domain/table"
)

// GeneratorConfig configures the synthetic country-table generator used by
// tests and demo mode.
type GeneratorConfig struct {
	CountryCount int   `json:"country_count"`
	Seed         int64 `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		CountryCount: 180,
		Seed:         42,
	}
}

// WHO region labels used by the generator.
var whoRegions = []string{
	"Africa",
	"Americas",
	"Eastern Mediterranean",
	"Europe",
	"South-East Asia",
	"Western Pacific",
}

// Generator produces a deterministic synthetic country table whose columns
// match the real dataset header exactly.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator with the given config
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds the full 15-column coerced table.
func (g *Generator) Generate() *table.Table {
	n := g.config.CountryCount
	countries := make([]string, n)
	regions := make([]string, n)
	confirmed := make([]float64, n)
	deaths := make([]float64, n)
	recovered := make([]float64, n)
	active := make([]float64, n)
	newCases := make([]float64, n)
	newDeaths := make([]float64, n)
	newRecovered := make([]float64, n)
	deathRate := make([]float64, n)
	recoveryRate := make([]float64, n)
	deathsPerRecovered := make([]float64, n)
	lastWeek := make([]float64, n)
	weekChange := make([]float64, n)
	weekPct := make([]float64, n)

	for i := 0; i < n; i++ {
		countries[i] = fmt.Sprintf("Country %03d", i+1)
		regions[i] = whoRegions[g.rng.Intn(len(whoRegions))]

		// Log-normal case counts give the heavy right tail real country
		// data shows.
		confirmed[i] = math.Floor(math.Exp(g.rng.NormFloat64()*1.8 + 9.5))
		deaths[i] = math.Floor(confirmed[i] * (0.005 + g.rng.Float64()*0.06))
		recovered[i] = math.Floor((confirmed[i] - deaths[i]) * (0.3 + g.rng.Float64()*0.6))
		active[i] = confirmed[i] - deaths[i] - recovered[i]

		newCases[i] = math.Floor(confirmed[i] * g.rng.Float64() * 0.05)
		newDeaths[i] = math.Floor(deaths[i] * g.rng.Float64() * 0.05)
		newRecovered[i] = math.Floor(recovered[i] * g.rng.Float64() * 0.05)

		if confirmed[i] > 0 {
			deathRate[i] = deaths[i] / confirmed[i] * 100
			recoveryRate[i] = recovered[i] / confirmed[i] * 100
		}
		if recovered[i] > 0 {
			deathsPerRecovered[i] = deaths[i] / recovered[i] * 100
		}

		lastWeek[i] = math.Max(0, confirmed[i]-newCases[i]*7)
		weekChange[i] = confirmed[i] - lastWeek[i]
		if lastWeek[i] > 0 {
			weekPct[i] = weekChange[i] / lastWeek[i] * 100
		}
	}

	t := table.New(n)
	t.AddTextColumn(table.ColCountry, countries)
	t.AddNumericColumn(table.ColConfirmed, confirmed)
	t.AddNumericColumn(table.ColDeaths, deaths)
	t.AddNumericColumn(table.ColRecovered, recovered)
	t.AddNumericColumn(table.ColActive, active)
	t.AddNumericColumn(table.ColNewCases, newCases)
	t.AddNumericColumn(table.ColNewDeaths, newDeaths)
	t.AddNumericColumn(table.ColNewRecovered, newRecovered)
	t.AddNumericColumn(table.ColDeathsPer100Cases, deathRate)
	t.AddNumericColumn(table.ColRecoveredPer100Cases, recoveryRate)
	t.AddNumericColumn(table.ColDeathsPer100Recovered, deathsPerRecovered)
	t.AddNumericColumn(table.ColConfirmedLastWeek, lastWeek)
	t.AddNumericColumn(table.ColWeekChange, weekChange)
	t.AddNumericColumn(table.ColWeekPctIncrease, weekPct)
	t.AddTextColumn(table.ColWHORegion, regions)
	return t
}

// GenerateSmall builds a fixed ten-row table with hand-picked values for
// assertions that need exact numbers.
func GenerateSmall() *table.Table {
	countries := []string{
		"Alfa", "Bravo", "Charlie", "Delta", "Echo",
		"Foxtrot", "Golf", "Hotel", "India", "Juliett",
	}
	regions := []string{
		"Europe", "Europe", "Americas", "Americas", "Africa",
		"Africa", "Europe", "Americas", "Africa", "Europe",
	}
	confirmed := []float64{1000, 900, 800, 700, 600, 500, 400, 300, 200, 100}
	deaths := []float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}
	recovered := []float64{500, 450, 400, 350, 300, 250, 200, 150, 100, 50}
	active := []float64{400, 360, 320, 280, 240, 200, 160, 120, 80, 40}

	t := table.New(len(countries))
	t.AddTextColumn(table.ColCountry, countries)
	t.AddNumericColumn(table.ColConfirmed, confirmed)
	t.AddNumericColumn(table.ColDeaths, deaths)
	t.AddNumericColumn(table.ColRecovered, recovered)
	t.AddNumericColumn(table.ColActive, active)
	t.AddTextColumn(table.ColWHORegion, regions)
	return t
}
