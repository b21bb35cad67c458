package render

import (
	"fmt"
	"math"
	"sort"

	"pdfsummarizer/types"
)

// knownMetrics lists the labelled metrics in the order the backend emits them
var knownMetrics = []struct {
	key   string
	label string
}{
	{"compression_ratio", "Compression"},
	{"information_density", "Information Density"},
	{"coherence_score", "Coherence"},
	{"overall_quality", "Overall Quality"},
}

// MetricRow is one quality metric ready for display
type MetricRow struct {
	Key   string
	Label string
	Value string
}

// String formats the row as "Label: NN%"
func (r MetricRow) String() string {
	return r.Label + ": " + r.Value
}

// MetricLabel translates a metric key to its display label, falling back to
// the key itself
func MetricLabel(key string) string {
	for _, m := range knownMetrics {
		if m.key == key {
			return m.label
		}
	}
	return key
}

// Percent converts a ratio to a whole percentage, rounding halves up
func Percent(v float64) int {
	return int(math.Floor(v*100 + 0.5))
}

// Metrics renders every metric present. Known metrics come first in their
// canonical order, the rest follow sorted by key. A nil result means the
// panel should show NoMetrics.
func Metrics(metrics types.QualityMetrics) []MetricRow {
	if metrics == nil {
		return nil
	}

	keys := make([]string, 0, len(metrics))
	seen := make(map[string]bool, len(knownMetrics))
	for _, m := range knownMetrics {
		if _, ok := metrics[m.key]; ok {
			keys = append(keys, m.key)
			seen[m.key] = true
		}
	}

	var rest []string
	for k := range metrics {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	rows := make([]MetricRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, MetricRow{
			Key:   k,
			Label: MetricLabel(k),
			Value: fmt.Sprintf("%d%%", Percent(metrics[k])),
		})
	}
	return rows
}
