// Package ui provides the control panel and HUD for the demo.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanelState is the input to the control panel draw: the current values the
// widgets should display.
type PanelState struct {
	BaseAngle float32
	AutoSpin  bool
	Spinning  bool
}

// PanelAction is what the user did on the panel this frame.
type PanelAction struct {
	Spin             bool
	Reset            bool
	BaseAngle        float32
	BaseAngleChanged bool
	AutoSpin         bool
}

// ControlPanel renders the interactive control panel with raygui widgets.
type ControlPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlPanel creates a control panel anchored at (x, y).
func NewControlPanel(x, y, width float32) *ControlPanel {
	return &ControlPanel{
		x:       x,
		y:       y,
		width:   width,
		visible: true,
	}
}

// Toggle switches panel visibility.
func (p *ControlPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *ControlPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel and returns the actions taken this frame.
func (p *ControlPanel) Draw(state PanelState) PanelAction {
	action := PanelAction{BaseAngle: state.BaseAngle, AutoSpin: state.AutoSpin}
	if !p.visible {
		return action
	}

	const padding float32 = 10
	panelHeight := float32(150)

	rl.DrawRectangle(int32(p.x), int32(p.y), int32(p.width), int32(panelHeight), rl.Color{R: 20, G: 25, B: 30, A: 240})
	rl.DrawRectangleLines(int32(p.x), int32(p.y), int32(p.width), int32(panelHeight), rl.Color{R: 60, G: 70, B: 80, A: 255})

	x := p.x + padding
	y := p.y + padding

	rl.DrawText("Controls", int32(x), int32(y), 16, rl.White)
	y += 24

	buttonW := (p.width - padding*3) / 2
	spinLabel := "Spin"
	if state.Spinning {
		spinLabel = "Spin (again)"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: 28}, spinLabel) {
		action.Spin = true
	}
	if gui.Button(rl.Rectangle{X: x + buttonW + padding, Y: y, Width: buttonW, Height: 28}, "Reset") {
		action.Reset = true
	}
	y += 38

	rl.DrawText("Base angle", int32(x), int32(y), 14, rl.Gray)
	y += 18
	newAngle := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: p.width - padding*2 - 50, Height: 20},
		"-180", "180",
		state.BaseAngle, -180, 180,
	)
	rl.DrawText(fmt.Sprintf("%.0f", state.BaseAngle), int32(x+p.width-padding*2-44), int32(y+2), 16, rl.LightGray)
	if newAngle != state.BaseAngle {
		action.BaseAngle = newAngle
		action.BaseAngleChanged = true
	}
	y += 30

	action.AutoSpin = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Auto-spin", state.AutoSpin)

	return action
}
