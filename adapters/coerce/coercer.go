package coerce

import (
	"math"
	"strconv"
	"strings"
)

// NumericCoercer handles deterministic numeric coercion of raw cells.
// Values that fail coercion become missing (NaN), never errors: a bad cell
// must not abort an aggregation.
type NumericCoercer struct {
	config Config
}

// Config defines the coercion thresholds
type Config struct {
	// NumericThreshold is the share of non-empty cells that must parse as
	// numbers for a column to be treated as numeric.
	NumericThreshold float64
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{NumericThreshold: 0.8}
}

// New creates a coercer with the given config
func New(config Config) *NumericCoercer {
	return &NumericCoercer{config: config}
}

// Coerce converts a raw cell to float64. The second return is false for
// missing values (empty cells and parse failures); callers treat those as
// NaN and downstream sums treat NaN as zero.
func (c *NumericCoercer) Coerce(raw string) (float64, bool) {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return math.NaN(), false
	}

	// Parentheses for negative numbers: (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	// Percent signs and thousands separators
	cleanVal = strings.ReplaceAll(cleanVal, "%", "")
	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	cleanVal = strings.TrimSpace(cleanVal)

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return math.NaN(), false
	}
	return val, true
}

// CoerceColumn coerces every cell of a column, NaN for misses.
func (c *NumericCoercer) CoerceColumn(raw []string) []float64 {
	out := make([]float64, len(raw))
	for i, cell := range raw {
		v, ok := c.Coerce(cell)
		if !ok {
			out[i] = math.NaN()
		} else {
			out[i] = v
		}
	}
	return out
}

// LooksNumeric analyzes a column's cells and reports whether enough of them
// parse as numbers to treat the whole column as numeric. Empty cells do not
// count against the ratio.
func (c *NumericCoercer) LooksNumeric(raw []string) bool {
	valid, parsed := 0, 0
	for _, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		valid++
		if _, ok := c.Coerce(cell); ok {
			parsed++
		}
	}
	if valid == 0 {
		return false
	}
	return float64(parsed)/float64(valid) >= c.config.NumericThreshold
}
