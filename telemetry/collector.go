package telemetry

// Collector accumulates interaction events within tick windows and
// produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	windowStartTick     int32

	// Event counters for the current window
	spawns      int
	merges      int
	splits      int
	duplicates  int
	zeroAbsorbs int
	removes     int
}

// NewCollector creates a collector flushing every windowDurationTicks.
func NewCollector(windowDurationTicks int32) *Collector {
	if windowDurationTicks < 1 {
		windowDurationTicks = 1
	}
	return &Collector{windowDurationTicks: windowDurationTicks}
}

// Record counts one event in the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventSpawn:
		c.spawns++
	case EventMerge:
		c.merges++
	case EventSplit:
		c.splits++
	case EventDuplicate:
		c.duplicates++
	case EventZeroAbsorb:
		c.zeroAbsorbs++
	case EventRemove:
		c.removes++
	}
}

// ShouldFlush reports whether the current window has elapsed.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats snapshot and resets the counters.
// The caller provides the current store population: block and zero-block
// counts, the conserved value total, and the per-block values for
// distribution stats.
func (c *Collector) Flush(currentTick int32, blockCount, zeroCount, totalValue int, values []float64) WindowStats {
	mean, p10, p50, p90 := ComputeValueStats(values)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		BlockCount: blockCount,
		ZeroCount:  zeroCount,
		TotalValue: totalValue,

		Spawns:      c.spawns,
		Merges:      c.merges,
		Splits:      c.splits,
		Duplicates:  c.duplicates,
		ZeroAbsorbs: c.zeroAbsorbs,
		Removes:     c.removes,

		ValueMean: mean,
		ValueP10:  p10,
		ValueP50:  p50,
		ValueP90:  p90,
	}

	c.windowStartTick = currentTick
	c.spawns = 0
	c.merges = 0
	c.splits = 0
	c.duplicates = 0
	c.zeroAbsorbs = 0
	c.removes = 0

	return stats
}

// WindowDurationTicks returns the ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
