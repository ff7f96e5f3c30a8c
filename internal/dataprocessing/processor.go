package dataprocessing

import (
	"fmt"
	"log/slog"
	"time"

	apperrors "tabcli/internal/errors"
)

// Processor runs the load → clean → detect → coerce → aggregate pipeline.
// It holds no state between runs; a single Processor may serve many files.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates a processor. A nil logger falls back to the default.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger: logger.With(slog.String("component", "processor")),
	}
}

// Process converts the file at path into a JSON-serializable result. Any
// failure, including a panic inside the pipeline, is converted into the
// {"error": ...} payload; the caller always receives something emittable.
func (p *Processor) Process(path string) (result any) {
	defer func() {
		if r := recover(); r != nil {
			perr := apperrors.Unexpected(fmt.Errorf("%v", r))
			p.logger.Error("panic during processing",
				slog.String("path", path),
				slog.String("error", perr.Message()))
			result = perr.Payload()
		}
	}()

	value, err := p.process(path)
	if err != nil {
		perr := apperrors.Classify(err, path)
		p.logger.Error("processing failed",
			slog.String("path", path),
			slog.String("kind", perr.Kind.String()),
			slog.String("error", perr.Message()))
		return perr.Payload()
	}
	return value
}

func (p *Processor) process(path string) (any, error) {
	table, err := LoadTable(path)
	if err != nil {
		return nil, err
	}

	cleaned := table.DropIncomplete()
	p.logger.Debug("dropped incomplete rows",
		slog.Int("input_rows", len(table.Rows)),
		slog.Int("cleaned_rows", len(cleaned.Rows)))

	dateIdx, dateName, hasDate := DetectDateColumn(cleaned.Headers)
	if !hasDate {
		p.logger.Warn("no date column recognized", slog.Any("headers", cleaned.Headers))
	}
	numIdx, numName, hasNumeric := DetectNumericColumn(cleaned.Headers)
	if !hasNumeric {
		p.logger.Warn("no numeric column recognized", slog.Any("headers", cleaned.Headers))
	}

	switch {
	case hasDate && hasNumeric:
		values := coerceDatedValues(cleaned.Rows, dateIdx, numIdx)
		p.logger.Info("daily aggregation",
			slog.String("date_column", dateName),
			slog.String("numeric_column", numName),
			slog.Int("valid_rows", len(values)))
		return AggregateDaily(values), nil

	case hasNumeric:
		values := coerceNumbers(cleaned.Rows, numIdx)
		p.logger.Info("overall statistics",
			slog.String("numeric_column", numName),
			slog.Int("valid_rows", len(values)))
		return Summarize(values), nil

	default:
		p.logger.Info("no recognized columns, emitting cleaned rows",
			slog.Int("rows", len(cleaned.Rows)))
		return cleaned.RowMaps(), nil
	}
}

// coerceDatedValues keeps rows where both the date and the number parse.
// Rows failing either coercion are dropped silently; lossy cleaning is the
// established policy, not a defect.
func coerceDatedValues(rows [][]string, dateIdx, numIdx int) []DatedValue {
	values := make([]DatedValue, 0, len(rows))
	for _, row := range rows {
		day, ok := parseDate(row[dateIdx])
		if !ok {
			continue
		}
		v, ok := parseNumber(row[numIdx])
		if !ok {
			continue
		}
		values = append(values, DatedValue{Day: day.Format(time.DateOnly), Value: v})
	}
	return values
}

// coerceNumbers keeps the parseable values of the numeric column.
func coerceNumbers(rows [][]string, numIdx int) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := parseNumber(row[numIdx]); ok {
			values = append(values, v)
		}
	}
	return values
}
