package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"covidlens/adapters/coerce"
	"covidlens/domain/core"
	"covidlens/domain/table"
)

const sampleCSV = `Country/Region,Confirmed,Deaths,Recovered,Active,WHO Region
Afghanistan,36263,1269,25198,9796,Eastern Mediterranean
Albania,4880,144,2745,1991,Europe
Algeria,27973,1163,18837,7973,Africa
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "country_wise_latest.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestReadRaw_CSV(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	reader := NewDataReader(DefaultReaderConfig(path))

	raw, err := reader.ReadRaw()
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if len(raw.Headers) != 6 {
		t.Errorf("got %d headers, want 6", len(raw.Headers))
	}
	if raw.RowCount() != 3 {
		t.Errorf("got %d rows, want 3", raw.RowCount())
	}
	if raw.Rows[0]["Country/Region"] != "Afghanistan" {
		t.Errorf("first country = %q", raw.Rows[0]["Country/Region"])
	}
	if !raw.HasHeader("WHO Region") {
		t.Error("WHO Region header missing")
	}
}

func TestReadRaw_MissingFileIsFatal(t *testing.T) {
	reader := NewDataReader(DefaultReaderConfig("/nonexistent/data.csv"))

	_, err := reader.ReadRaw()
	if !errors.Is(err, core.ErrDataFileNotFound) {
		t.Errorf("got %v, want ErrDataFileNotFound", err)
	}
}

func TestReadRaw_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "Country/Region,Confirmed\n")
	reader := NewDataReader(DefaultReaderConfig(path))

	if _, err := reader.ReadRaw(); !errors.Is(err, core.ErrEmptyTable) {
		t.Errorf("got %v, want ErrEmptyTable", err)
	}
}

func TestBuildTable(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	raw, err := NewDataReader(DefaultReaderConfig(path)).ReadRaw()
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}

	tbl := BuildTable(raw, coerce.New(coerce.DefaultConfig()))

	caps := tbl.Capabilities()
	if caps[table.ColCountry] != table.KindCategorical {
		t.Errorf("country kind = %q, want categorical", caps[table.ColCountry])
	}
	if caps[table.ColWHORegion] != table.KindCategorical {
		t.Errorf("region kind = %q, want categorical", caps[table.ColWHORegion])
	}
	if caps[table.ColConfirmed] != table.KindNumeric {
		t.Errorf("confirmed kind = %q, want numeric", caps[table.ColConfirmed])
	}

	if got := tbl.SumColumn(table.ColConfirmed); got != 36263+4880+27973 {
		t.Errorf("confirmed sum = %f", got)
	}
}

func TestBuildTable_RaggedRowsCoerceToMissing(t *testing.T) {
	csv := "Country/Region,Confirmed,WHO Region\nA,100,Europe\nB,200\n"
	path := writeTempCSV(t, csv)
	raw, err := NewDataReader(DefaultReaderConfig(path)).ReadRaw()
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}

	tbl := BuildTable(raw, coerce.New(coerce.DefaultConfig()))
	regions, ok := tbl.TextColumn(table.ColWHORegion)
	if !ok {
		t.Fatal("region column missing")
	}
	if regions[1] != "" {
		t.Errorf("short row region = %q, want empty", regions[1])
	}
	if got := tbl.SumColumn(table.ColConfirmed); got != 300 {
		t.Errorf("confirmed sum = %f, want 300", got)
	}
}
