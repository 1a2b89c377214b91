// Package game wires the block store, interaction machine, camera, panel,
// and telemetry into the frame loop.
package game

import (
	"log/slog"

	"github.com/google/uuid"

	"renderblocks/camera"
	"renderblocks/components"
	"renderblocks/config"
	"renderblocks/interaction"
	"renderblocks/layout"
	"renderblocks/store"
	"renderblocks/telemetry"
	"renderblocks/ui"
)

// Options configures game construction.
type Options struct {
	LogStats  bool
	OutputDir string
	Headless  bool

	// StatsCallback receives every flushed stats window (used by tests
	// and external drivers).
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete application state.
type Game struct {
	store   *store.Store
	machine *interaction.Machine
	camera  *camera.Camera
	panel   *ui.Panel

	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	tick   int32
	paused bool

	// Selection and drag state (ids into the store)
	selected    uuid.UUID
	hasSelected bool
	dragged     uuid.UUID
	isDragging  bool
	dragOffset  components.Position // grab point relative to the block origin

	// Layout plans are deterministic per value, so they cache cleanly.
	planCache map[int]layout.Plan

	screenW, screenH float32
	canvasW, canvasH float32
	headless         bool
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a new game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	st := store.New()

	g := &Game{
		store:         st,
		machine:       interaction.New(st, cfg.Derived.CanvasW32, cfg.Derived.CanvasH32),
		collector:     telemetry.NewCollector(int32(cfg.Telemetry.StatsWindowTicks)),
		logStats:      opts.LogStats || cfg.Telemetry.LogStats,
		statsCallback: opts.StatsCallback,
		planCache:     make(map[int]layout.Plan),
		screenW:       cfg.Derived.ScreenW32,
		screenH:       cfg.Derived.ScreenH32,
		canvasW:       cfg.Derived.CanvasW32,
		canvasH:       cfg.Derived.CanvasH32,
		headless:      opts.Headless,
	}

	g.wireSignals()

	if !opts.Headless {
		// The camera viewport is the screen area beside the panel.
		g.camera = camera.New(g.screenW-float32(cfg.UI.PanelWidth), g.screenH, g.canvasW, g.canvasH)
		g.panel = ui.NewPanel(int32(g.screenW)-int32(cfg.UI.PanelWidth), 0, int32(cfg.UI.PanelWidth), int32(g.screenH), cfg.UI.MaxSpawnValue)
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
		}
	}

	return g
}

// Update runs one frame: input, timers, and telemetry.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	g.machine.Update()
	g.flushTelemetry()
	g.tick++
}

// UpdateHeadless advances timers and telemetry without any input or
// rendering work.
func (g *Game) UpdateHeadless() {
	g.machine.Update()
	g.flushTelemetry()
	g.tick++
}

// Spawn creates a block through the machine and records the event.
func (g *Game) Spawn(value int, pos components.Position) (uuid.UUID, error) {
	id, err := g.machine.Spawn(value, pos)
	if err != nil {
		return uuid.Nil, err
	}
	g.collector.Record(telemetry.NewSpawnEvent(g.tick, id, value))
	return id, nil
}

// RemoveBlock deletes a block (trash drop) and records the event.
func (g *Game) RemoveBlock(id uuid.UUID) {
	snap, ok := g.store.Get(id)
	if !ok {
		return
	}
	g.machine.Remove(id)
	g.collector.Record(telemetry.NewRemoveEvent(g.tick, id, snap.Value))
	g.clearSelectionIf(id)
}

// Machine exposes the interaction machine for tests and tools.
func (g *Game) Machine() *interaction.Machine {
	return g.machine
}

// Tick returns the current frame tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload flushes outputs and releases resources.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}

func (g *Game) clearSelectionIf(id uuid.UUID) {
	if g.hasSelected && g.selected == id {
		g.hasSelected = false
	}
	if g.isDragging && g.dragged == id {
		g.isDragging = false
	}
}

// plan returns the cached layout plan for a value.
func (g *Game) plan(value int) layout.Plan {
	if p, ok := g.planCache[value]; ok {
		return p
	}
	p := layout.Layout(value)
	g.planCache[value] = p
	return p
}
