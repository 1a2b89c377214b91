package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population at window end
	BlockCount int `csv:"blocks"`
	ZeroCount  int `csv:"zero_blocks"`
	TotalValue int `csv:"total_value"`

	// Events during window
	Spawns      int `csv:"spawns"`
	Merges      int `csv:"merges"`
	Splits      int `csv:"splits"`
	Duplicates  int `csv:"duplicates"`
	ZeroAbsorbs int `csv:"zero_absorbs"`
	Removes     int `csv:"removes"`

	// Block value distribution (sampled at window end)
	ValueMean float64 `csv:"value_mean"`
	ValueP10  float64 `csv:"value_p10"`
	ValueP50  float64 `csv:"value_p50"`
	ValueP90  float64 `csv:"value_p90"`
}

// ComputeValueStats calculates mean and percentiles from block values.
func ComputeValueStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	// Quantile needs a sorted copy
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("blocks", s.BlockCount),
		slog.Int("zero_blocks", s.ZeroCount),
		slog.Int("total_value", s.TotalValue),
		slog.Int("spawns", s.Spawns),
		slog.Int("merges", s.Merges),
		slog.Int("splits", s.Splits),
		slog.Int("duplicates", s.Duplicates),
		slog.Int("zero_absorbs", s.ZeroAbsorbs),
		slog.Int("removes", s.Removes),
		slog.Float64("value_mean", s.ValueMean),
		slog.Float64("value_p10", s.ValueP10),
		slog.Float64("value_p50", s.ValueP50),
		slog.Float64("value_p90", s.ValueP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"blocks", s.BlockCount,
		"zero_blocks", s.ZeroCount,
		"total_value", s.TotalValue,
		"spawns", s.Spawns,
		"merges", s.Merges,
		"splits", s.Splits,
		"duplicates", s.Duplicates,
		"zero_absorbs", s.ZeroAbsorbs,
		"removes", s.Removes,
		"value_mean", s.ValueMean,
		"value_p10", s.ValueP10,
		"value_p50", s.ValueP50,
		"value_p90", s.ValueP90,
	)
}
