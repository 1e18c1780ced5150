package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values the HUD displays.
type HUDData struct {
	Tick      int32
	Angle     float32
	Scale     float32
	BaseAngle float32
	Spinning  bool
	AutoSpin  bool
}

// DrawHUD renders the status text in the top-left corner.
func DrawHUD(d HUDData) {
	rl.DrawText(fmt.Sprintf("Tick: %d  FPS: %d", d.Tick, rl.GetFPS()), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Angle: %.1f  Scale: %.3f  Base: %.0f", d.Angle, d.Scale, d.BaseAngle), 10, 35, 20, rl.White)

	state := "idle"
	if d.Spinning {
		state = "spinning"
	}
	if d.AutoSpin {
		state += " (auto)"
	}
	rl.DrawText(state, 10, 60, 20, rl.Yellow)

	rl.DrawText("[SPACE] spin  [R] reset  [</>] base angle  [A] auto  [TAB] panel", 10, 85, 14, rl.Gray)
}
