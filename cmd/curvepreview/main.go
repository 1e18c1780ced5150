// Easing curve preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/curvepreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spingrid/tween"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	plotSize     = 512
	panelWidth   = windowWidth - plotSize - 30
	samples      = 256
)

// CurveParams holds the tunable easing parameters.
type CurveParams struct {
	Overshoot      float32
	Squash         float32
	SquashPortion  float32
	JellyOvershoot float32
}

func defaultParams() CurveParams {
	return CurveParams{
		Overshoot:      1.70158,
		Squash:         0.82,
		SquashPortion:  0.4,
		JellyOvershoot: 2.2,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Easing Curve Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 18, G: 20, B: 26, A: 255})

		drawPlot(params)
		params = drawPanel(params)

		rl.EndDrawing()
	}
}

// drawPlot renders both curves into the left plot area.
func drawPlot(params CurveParams) {
	const x0, y0 = 10, 10
	rl.DrawRectangleLines(x0, y0, plotSize, plotSize, rl.DarkGray)

	// Reference lines at value 0 and 1. The plot's vertical range is
	// [-0.3, 1.3] so overshoot stays visible.
	zeroY := plotY(0)
	oneY := plotY(1)
	rl.DrawLine(x0, zeroY, x0+plotSize, zeroY, rl.Color{R: 60, G: 60, B: 60, A: 255})
	rl.DrawLine(x0, oneY, x0+plotSize, oneY, rl.Color{R: 60, G: 60, B: 60, A: 255})

	back := tween.BackOut(params.Overshoot)
	jelly := tween.Jelly(params.Squash, params.SquashPortion, params.JellyOvershoot)

	plotCurve(back, rl.Color{R: 91, G: 192, B: 222, A: 255})
	plotCurve(jelly, rl.Color{R: 240, G: 173, B: 78, A: 255})

	rl.DrawText("rotation (back-out)", x0+8, y0+8, 14, rl.Color{R: 91, G: 192, B: 222, A: 255})
	rl.DrawText("jelly scale", x0+8, y0+26, 14, rl.Color{R: 240, G: 173, B: 78, A: 255})
}

// plotCurve draws a sampled curve as a polyline.
func plotCurve(f func(float32) float32, col rl.Color) {
	var prev rl.Vector2
	for i := 0; i <= samples; i++ {
		t := float32(i) / samples
		p := rl.Vector2{X: 10 + t*plotSize, Y: float32(plotY(f(t)))}
		if i > 0 {
			rl.DrawLineV(prev, p, col)
		}
		prev = p
	}
}

// plotY maps a curve value to a plot pixel row ([-0.3, 1.3] top-down).
func plotY(v float32) int32 {
	const lo, hi = -0.3, 1.3
	norm := (v - lo) / (hi - lo)
	return int32(10 + (1-norm)*plotSize)
}

// drawPanel renders the parameter sliders and returns updated params.
func drawPanel(params CurveParams) CurveParams {
	panelX := float32(plotSize + 20)
	panelY := float32(10)

	rl.DrawText("Easing Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
	panelY += 35

	params.Overshoot = slider(&panelY, panelX, "Overshoot (back-ease amplitude)", params.Overshoot, 0, 5, "%.2f")
	params.Squash = slider(&panelY, panelX, "Jelly squash (minimum scale)", params.Squash, 0.5, 1.0, "%.2f")
	params.SquashPortion = slider(&panelY, panelX, "Squash portion of spin", params.SquashPortion, 0.1, 0.9, "%.2f")
	params.JellyOvershoot = slider(&panelY, panelX, "Jelly recover overshoot", params.JellyOvershoot, 0, 5, "%.2f")

	panelY += 10
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
		params = defaultParams()
	}

	return params
}

// slider draws one labeled SliderBar row and advances the panel cursor.
func slider(y *float32, x float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}
