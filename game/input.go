package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Degrees the base angle moves per arrow key press.
const baseAngleStep = 15

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.ctrl.Trigger()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.ctrl.Reset()
	}
	if rl.IsKeyPressed(rl.KeyA) {
		g.autoSpin = !g.autoSpin
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	// Externally driven base angle, nudged from the keyboard
	if rl.IsKeyPressed(rl.KeyLeft) {
		g.ctrl.SetBaseAngle(g.ctrl.BaseAngle() - baseAngleStep)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		g.ctrl.SetBaseAngle(g.ctrl.BaseAngle() + baseAngleStep)
	}
}
