package tabular

// ReaderConfig holds data source configuration
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"` // xlsx only
}

// DefaultReaderConfig returns the conventional source settings
func DefaultReaderConfig(filePath string) *ReaderConfig {
	return &ReaderConfig{
		FilePath: filePath,
		Sheet:    "Sheet1",
	}
}
