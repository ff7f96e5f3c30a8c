package dataprocessing

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the accepted calendar-date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// parseDate coerces a raw cell into a calendar date. Failure means the row is
// invalid, not that the run failed.
func parseDate(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumber coerces a raw cell into a float. Thousands separators are
// stripped first, matching how report files format large values.
func parseNumber(cell string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DailyStat is one per-day aggregation group. The Day key casing and the
// lower-case metric keys are part of the output contract.
type DailyStat struct {
	Day   string  `json:"Day"`
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// OverallStats is the fallback shape when only a numeric column exists.
type OverallStats struct {
	TotalSum    float64 `json:"total_sum"`
	AverageMean float64 `json:"average_mean"`
	TotalCount  int     `json:"total_count"`
}

// DatedValue is a coerced row surviving both date and number parsing.
type DatedValue struct {
	Day   string
	Value float64
}

// AggregateDaily groups coerced rows by calendar date (time of day discarded)
// and computes sum, mean, and count per group, ordered by ascending date.
func AggregateDaily(values []DatedValue) []DailyStat {
	groups := make(map[string][]float64)
	for _, v := range values {
		groups[v.Day] = append(groups[v.Day], v.Value)
	}

	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	// Days are ISO formatted, so lexical order is chronological order.
	sort.Strings(days)

	stats := make([]DailyStat, 0, len(days))
	for _, day := range days {
		vals := groups[day]
		var sum float64
		for _, v := range vals {
			sum += v
		}
		stats = append(stats, DailyStat{
			Day:   day,
			Sum:   sum,
			Mean:  sum / float64(len(vals)),
			Count: len(vals),
		})
	}
	return stats
}

// Summarize computes overall statistics across all coerced values.
func Summarize(values []float64) OverallStats {
	stats := OverallStats{TotalCount: len(values)}
	for _, v := range values {
		stats.TotalSum += v
	}
	if stats.TotalCount > 0 {
		stats.AverageMean = stats.TotalSum / float64(stats.TotalCount)
	}
	return stats
}
