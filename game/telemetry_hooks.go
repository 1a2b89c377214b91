package game

import (
	"log/slog"

	"renderblocks/interaction"
	"renderblocks/telemetry"
)

// wireSignals routes machine signals into the telemetry collector.
func (g *Game) wireSignals() {
	g.machine.SetSignals(interaction.Signals{
		MergeCompleted: func(ev interaction.MergeEvent) {
			// A zero absorption keeps one source alive as the result.
			if ev.Result == ev.Sources[0] || ev.Result == ev.Sources[1] {
				zero := ev.Sources[0]
				if zero == ev.Result {
					zero = ev.Sources[1]
				}
				g.collector.Record(telemetry.NewZeroAbsorbEvent(g.tick, ev.Result, zero))
			} else {
				g.collector.Record(telemetry.NewMergeEvent(g.tick, ev.Result, ev.Value, ev.Sources[1]))
			}
			g.clearSelectionIf(ev.Sources[0])
			g.clearSelectionIf(ev.Sources[1])
		},
		SplitCompleted: func(ev interaction.SplitEvent) {
			g.collector.Record(telemetry.NewSplitEvent(g.tick, ev.Results[0], ev.Values[0], ev.Results[1]))
			g.clearSelectionIf(ev.Source)
		},
		DuplicateCompleted: func(ev interaction.DuplicateEvent) {
			g.collector.Record(telemetry.NewDuplicateEvent(g.tick, ev.Results[0], ev.Results[1]))
			g.clearSelectionIf(ev.Source)
		},
	})
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	var (
		values    []float64
		zeroCount int
	)
	for _, snap := range g.store.Query() {
		if snap.Zero {
			zeroCount++
			continue
		}
		values = append(values, float64(snap.Value))
	}

	stats := g.collector.Flush(g.tick, g.store.Len(), zeroCount, g.store.TotalValue(), values)

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}
	if g.logStats {
		stats.LogStats()
	}
	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write session stats", "error", err)
		}
	}
}
