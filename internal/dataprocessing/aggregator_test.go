package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
		ok   bool
	}{
		{"iso date", "2023-01-01", "2023-01-01", true},
		{"iso datetime keeps date portion", "2023-01-01 14:30:00", "2023-01-01", true},
		{"rfc3339", "2023-06-15T09:00:00Z", "2023-06-15", true},
		{"slash format", "2023/01/02", "2023-01-02", true},
		{"us format", "01/31/2023", "2023-01-31", true},
		{"surrounding whitespace", " 2023-01-01 ", "2023-01-01", true},
		{"garbage", "not a date", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format(time.DateOnly))
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want float64
		ok   bool
	}{
		{"integer", "42", 42, true},
		{"decimal", "10.5", 10.5, true},
		{"negative", "-3.2", -3.2, true},
		{"thousands separators", "1,234,567.89", 1234567.89, true},
		{"whitespace", " 15.2 ", 15.2, true},
		{"scientific", "1e3", 1000, true},
		{"invalid", "invalid", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNumber(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestAggregateDaily(t *testing.T) {
	values := []DatedValue{
		{Day: "2023-01-02", Value: 15.2},
		{Day: "2023-01-01", Value: 10.5},
		{Day: "2023-01-01", Value: 20},
	}

	stats := AggregateDaily(values)
	require.Len(t, stats, 2)

	assert.Equal(t, DailyStat{Day: "2023-01-01", Sum: 30.5, Mean: 15.25, Count: 2}, stats[0])
	assert.Equal(t, DailyStat{Day: "2023-01-02", Sum: 15.2, Mean: 15.2, Count: 1}, stats[1])
}

func TestAggregateDaily_Empty(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}

func TestAggregateDaily_SortedNoDuplicates(t *testing.T) {
	values := []DatedValue{
		{Day: "2023-03-01", Value: 1},
		{Day: "2023-01-15", Value: 2},
		{Day: "2023-03-01", Value: 3},
		{Day: "2022-12-31", Value: 4},
	}

	stats := AggregateDaily(values)
	require.Len(t, stats, 3)

	seen := map[string]bool{}
	for i, s := range stats {
		assert.False(t, seen[s.Day], "duplicate day %s", s.Day)
		seen[s.Day] = true
		if i > 0 {
			assert.Less(t, stats[i-1].Day, s.Day)
		}
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize([]float64{10, 20, 30})

	assert.Equal(t, OverallStats{TotalSum: 60, AverageMean: 20, TotalCount: 3}, stats)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)

	assert.Zero(t, stats.TotalSum)
	assert.Zero(t, stats.AverageMean)
	assert.Zero(t, stats.TotalCount)
}
