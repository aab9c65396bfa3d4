package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"covidlens/domain/core"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel files into a RawTable
type DataReader struct {
	config   *ReaderConfig
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader that handles both CSV and Excel files
func NewDataReader(config *ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &DataReader{config: config, fileType: fileType}
}

// ReadRaw reads the configured file into a RawTable. A missing file is the
// one fatal error of the whole pipeline: nothing is computed without data.
func (r *DataReader) ReadRaw() (*RawTable, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", core.ErrDataFileNotFound, r.config.FilePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcel()
	default:
		return r.readCSV()
	}
}

func (r *DataReader) readCSV() (*RawTable, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells coerce to missing
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] CSV read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.assemble(rows)
}

func (r *DataReader) readExcel() (*RawTable, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	log.Printf("[DataReader] Excel sheet %s read (%d rows)", sheet, len(rows))

	return r.assemble(rows)
}

// assemble converts raw string rows into the RawTable format
func (r *DataReader) assemble(rows [][]string) (*RawTable, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrEmptyTable)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	dataRows := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(RawRow, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			}
		}
		dataRows = append(dataRows, record)
	}

	return &RawTable{Headers: headers, Rows: dataRows}, nil
}
