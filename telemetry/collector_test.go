package telemetry

import (
	"testing"

	"github.com/google/uuid"
)

func TestCollectorCountsEvents(t *testing.T) {
	c := NewCollector(60)

	a, b := uuid.New(), uuid.New()
	c.Record(NewSpawnEvent(1, a, 5))
	c.Record(NewSpawnEvent(2, b, 3))
	c.Record(NewMergeEvent(10, uuid.New(), 8, b))
	c.Record(NewSplitEvent(20, uuid.New(), 6, uuid.New()))
	c.Record(NewDuplicateEvent(30, uuid.New(), uuid.New()))
	c.Record(NewZeroAbsorbEvent(40, a, uuid.New()))
	c.Record(NewRemoveEvent(50, a, 5))

	stats := c.Flush(60, 3, 1, 9, []float64{1, 3, 5})

	if stats.Spawns != 2 {
		t.Errorf("spawns = %d, want 2", stats.Spawns)
	}
	if stats.Merges != 1 || stats.Splits != 1 || stats.Duplicates != 1 {
		t.Errorf("merges/splits/duplicates = %d/%d/%d, want 1/1/1",
			stats.Merges, stats.Splits, stats.Duplicates)
	}
	if stats.ZeroAbsorbs != 1 || stats.Removes != 1 {
		t.Errorf("absorbs/removes = %d/%d, want 1/1", stats.ZeroAbsorbs, stats.Removes)
	}
	if stats.BlockCount != 3 || stats.ZeroCount != 1 || stats.TotalValue != 9 {
		t.Errorf("population = %d/%d/%d, want 3/1/9",
			stats.BlockCount, stats.ZeroCount, stats.TotalValue)
	}
	if stats.ValueMean != 3 {
		t.Errorf("value mean = %v, want 3", stats.ValueMean)
	}
}

func TestCollectorFlushResetsCounters(t *testing.T) {
	c := NewCollector(60)
	c.Record(NewSpawnEvent(1, uuid.New(), 5))
	c.Flush(60, 1, 0, 5, []float64{5})

	stats := c.Flush(120, 1, 0, 5, []float64{5})
	if stats.Spawns != 0 {
		t.Errorf("spawns = %d after reset, want 0", stats.Spawns)
	}
	if stats.WindowStartTick != 60 || stats.WindowEndTick != 120 {
		t.Errorf("window = [%d, %d], want [60, 120]",
			stats.WindowStartTick, stats.WindowEndTick)
	}
}

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(60)
	if c.ShouldFlush(30) {
		t.Error("window has not elapsed at tick 30")
	}
	if !c.ShouldFlush(60) {
		t.Error("window elapsed at tick 60")
	}
	c.Flush(60, 0, 0, 0, nil)
	if c.ShouldFlush(90) {
		t.Error("window restarts after flush")
	}
}
