// Package game wires config, scene, spin controller, renderer, telemetry
// and UI into the demo's update/draw loop.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spingrid/config"
	"github.com/pthm-cable/spingrid/renderer"
	"github.com/pthm-cable/spingrid/scene"
	"github.com/pthm-cable/spingrid/spin"
	"github.com/pthm-cable/spingrid/telemetry"
	"github.com/pthm-cable/spingrid/tween"
	"github.com/pthm-cable/spingrid/ui"
)

// Options configures a Game instance.
type Options struct {
	Seed      int64  // Symbol fill seed (0 = time-based)
	OutputDir string // CSV recording directory (empty = disabled)
	Headless  bool   // Skip renderer and UI construction
	SpinEvery int    // Headless: trigger a spin every N ticks (0 = never)
}

// Game holds the complete demo state.
type Game struct {
	grid  *scene.Grid
	ctrl  *spin.Controller
	frame *renderer.GridFrame
	panel *ui.ControlPanel

	recorder *telemetry.Recorder

	tick     int32
	elapsed  float64
	autoSpin bool

	spinEvery   int32
	sampleEvery int32
	dt          float32

	width, height float32
}

// NewGame creates a game instance from the global config and options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	ease, err := buildEasing(cfg)
	if err != nil {
		return nil, fmt.Errorf("building spin easing: %w", err)
	}

	g := &Game{
		grid: scene.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Symbols.Count, opts.Seed),
		ctrl: spin.NewController(spin.Config{
			Duration:         float32(cfg.Spin.Duration),
			Ease:             ease,
			Jelly:            tween.Jelly(float32(cfg.Jelly.Squash), float32(cfg.Jelly.SquashPortion), float32(cfg.Jelly.Overshoot)),
			CounterClockwise: cfg.Spin.Direction == "ccw",
		}),
		spinEvery:   int32(opts.SpinEvery),
		sampleEvery: int32(cfg.Telemetry.SampleEvery),
		dt:          cfg.Derived.DT32,
		width:       cfg.Derived.ScreenW32,
		height:      cfg.Derived.ScreenH32,
	}

	// Fresh symbols every time a spin lands
	g.ctrl.OnComplete(g.grid.Shuffle)

	if !opts.Headless {
		g.frame = renderer.NewGridFrame(cfg)
		g.panel = ui.NewControlPanel(10, 120, 220)
	}

	g.recorder, err = telemetry.NewRecorder(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating frame recorder: %w", err)
	}
	if err := g.recorder.WriteConfig(cfg); err != nil {
		slog.Warn("failed to snapshot config", "error", err)
	}

	return g, nil
}

// buildEasing resolves the configured rotation easing.
func buildEasing(cfg *config.Config) (tween.EaseFunc, error) {
	switch cfg.Spin.Easing {
	case "", "back":
		return tween.BackOut(float32(cfg.Spin.Overshoot)), nil
	case "bounce":
		return tween.BounceOut, nil
	case "elastic":
		return tween.ElasticOut, nil
	case "custom":
		pts := make([]tween.Point, len(cfg.Spin.Curve))
		for i, p := range cfg.Spin.Curve {
			pts[i] = tween.Point{T: p.T, V: p.V}
		}
		return tween.CurveFromPoints(pts)
	default:
		return nil, fmt.Errorf("unknown easing %q", cfg.Spin.Easing)
	}
}

// Update runs one frame of input handling and animation.
func (g *Game) Update() {
	g.handleInput()

	// Clamp frame delta so a window drag doesn't fast-forward the tween
	dt := rl.GetFrameTime()
	if dt > 0.1 {
		dt = 0.1
	}
	g.step(dt)
}

// UpdateHeadless runs one fixed-dt frame without raylib input.
func (g *Game) UpdateHeadless() {
	if g.spinEvery > 0 && g.tick%g.spinEvery == 0 {
		g.ctrl.Trigger()
	}
	g.step(g.dt)
}

// step advances the animation and records a sample if due.
func (g *Game) step(dt float32) {
	if g.autoSpin && !g.ctrl.Spinning() {
		g.ctrl.Trigger()
	}

	g.ctrl.Update(dt)
	g.tick++
	g.elapsed += float64(dt)

	if g.recorder != nil && g.tick%g.sampleEvery == 0 {
		sample := telemetry.FrameSample{
			Tick:     g.tick,
			TimeSec:  g.elapsed,
			AngleDeg: float64(g.ctrl.Angle()),
			Scale:    float64(g.ctrl.Scale()),
			Spinning: g.ctrl.Spinning(),
		}
		if err := g.recorder.WriteFrame(sample); err != nil {
			slog.Error("frame recording failed", "error", err)
		}
	}
}

// Draw renders the demo.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 14, B: 20, A: 255})

	g.frame.Draw(g.grid, g.width/2, g.height/2, g.ctrl.Angle(), g.ctrl.Scale(), float32(g.elapsed))

	ui.DrawHUD(ui.HUDData{
		Tick:      g.tick,
		Angle:     g.ctrl.Angle(),
		Scale:     g.ctrl.Scale(),
		BaseAngle: g.ctrl.BaseAngle(),
		Spinning:  g.ctrl.Spinning(),
		AutoSpin:  g.autoSpin,
	})

	action := g.panel.Draw(ui.PanelState{
		BaseAngle: g.ctrl.BaseAngle(),
		AutoSpin:  g.autoSpin,
		Spinning:  g.ctrl.Spinning(),
	})
	g.applyPanelAction(action)

	rl.EndDrawing()
}

// applyPanelAction maps panel interactions onto the controller.
func (g *Game) applyPanelAction(a ui.PanelAction) {
	if a.Spin {
		g.ctrl.Trigger()
	}
	if a.Reset {
		g.ctrl.Reset()
	}
	if a.BaseAngleChanged {
		g.ctrl.SetBaseAngle(a.BaseAngle)
	}
	g.autoSpin = a.AutoSpin
}

// Controller exposes the spin controller for external angle driving.
func (g *Game) Controller() *spin.Controller {
	return g.ctrl
}

// Tick returns the current frame counter.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases all resources.
func (g *Game) Unload() {
	if g.frame != nil {
		g.frame.Unload()
	}
	if err := g.recorder.Close(); err != nil {
		slog.Error("closing frame recorder", "error", err)
	}
}
