package tabular

// RawRow represents one data row as string key-value pairs keyed by header
type RawRow map[string]string

// RawTable represents the complete dataset as read from disk, before any
// coercion. Header order is preserved from the file.
type RawTable struct {
	Headers []string // Column headers
	Rows    []RawRow // Data rows
}

// RowCount returns the number of data rows
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}

// HasHeader reports whether the named column appeared in the file header
func (t *RawTable) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Column returns the raw string cells of one column in row order
func (t *RawTable) Column(name string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out
}
