package game

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"renderblocks/components"
	"renderblocks/config"
	"renderblocks/interaction"
	"renderblocks/telemetry"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newHeadlessGame(t *testing.T, cb func(telemetry.WindowStats)) (*Game, *fakeClock) {
	t.Helper()
	config.MustInit("")

	g := NewGameWithOptions(Options{Headless: true, StatsCallback: cb})
	clock := newFakeClock()
	g.machine.SetClock(clock.now)
	g.store.SetClock(clock.now)
	return g, clock
}

func runWindow(g *Game) {
	ticks := int(g.collector.WindowDurationTicks())
	for i := 0; i <= ticks; i++ {
		g.UpdateHeadless()
	}
}

func TestHeadlessMergeTelemetry(t *testing.T) {
	var windows []telemetry.WindowStats
	g, clock := newHeadlessGame(t, func(s telemetry.WindowStats) { windows = append(windows, s) })

	a, err := g.Spawn(3, components.Position{X: 100, Y: 100})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Spawn(5, components.Position{X: 400, Y: 400}); err != nil {
		t.Fatal(err)
	}
	clock.advance(interaction.CreationCooldown + time.Millisecond)

	if !g.machine.OnDragStart(a) {
		t.Fatal("drag start failed")
	}
	g.machine.OnDrag(a, components.Position{X: 395, Y: 395})
	if !g.machine.OnDragEnd(a, components.Position{X: 395, Y: 395}) {
		t.Fatal("drop should have merged")
	}

	runWindow(g)

	if len(windows) == 0 {
		t.Fatal("no stats window flushed")
	}
	stats := windows[0]
	if stats.Spawns != 2 || stats.Merges != 1 {
		t.Errorf("spawns/merges = %d/%d, want 2/1", stats.Spawns, stats.Merges)
	}
	if stats.BlockCount != 1 || stats.TotalValue != 8 {
		t.Errorf("population = %d blocks totaling %d, want 1 block totaling 8",
			stats.BlockCount, stats.TotalValue)
	}
}

func TestHeadlessSplitAndRemoveTelemetry(t *testing.T) {
	var windows []telemetry.WindowStats
	g, clock := newHeadlessGame(t, func(s telemetry.WindowStats) { windows = append(windows, s) })

	id, err := g.Spawn(10, components.Position{X: 100, Y: 100})
	if err != nil {
		t.Fatal(err)
	}
	clock.advance(interaction.CreationCooldown + time.Millisecond)

	if !g.machine.Split(id, 3) {
		t.Fatal("split failed")
	}

	// Remove one of the results through the trash path.
	blocks := g.store.Query()
	g.RemoveBlock(blocks[0].ID)

	runWindow(g)

	if len(windows) == 0 {
		t.Fatal("no stats window flushed")
	}
	stats := windows[0]
	if stats.Splits != 1 || stats.Removes != 1 {
		t.Errorf("splits/removes = %d/%d, want 1/1", stats.Splits, stats.Removes)
	}
	if stats.BlockCount != 1 {
		t.Errorf("blocks = %d, want 1", stats.BlockCount)
	}
}

func TestHeadlessZeroAbsorbTelemetry(t *testing.T) {
	var windows []telemetry.WindowStats
	g, clock := newHeadlessGame(t, func(s telemetry.WindowStats) { windows = append(windows, s) })

	one, err := g.Spawn(1, components.Position{X: 100, Y: 100})
	if err != nil {
		t.Fatal(err)
	}
	clock.advance(interaction.CreationCooldown + time.Millisecond)

	// Halving a one yields a zero block; dropping it on the one absorbs it.
	if !g.machine.Halve(one) {
		t.Fatal("halve failed")
	}
	clock.advance(interaction.CreationCooldown + time.Millisecond)

	zeroID, keptID := blocksByKind(g)
	if !g.machine.OnDragStart(zeroID) {
		t.Fatal("drag start failed")
	}
	kept, _ := g.store.Get(keptID)
	if !g.machine.OnDragEnd(zeroID, kept.Pos) {
		t.Fatal("drop should have absorbed the zero block")
	}

	runWindow(g)

	if len(windows) == 0 {
		t.Fatal("no stats window flushed")
	}
	stats := windows[0]
	if stats.ZeroAbsorbs != 1 {
		t.Errorf("zero absorbs = %d, want 1", stats.ZeroAbsorbs)
	}
	if stats.ZeroCount != 0 || stats.TotalValue != 1 {
		t.Errorf("zero/total = %d/%d, want 0/1", stats.ZeroCount, stats.TotalValue)
	}
}

func blocksByKind(g *Game) (zeroID, valueID uuid.UUID) {
	for _, snap := range g.store.Query() {
		if snap.Zero {
			zeroID = snap.ID
		} else {
			valueID = snap.ID
		}
	}
	return zeroID, valueID
}
