package tween

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// EaseFunc maps normalized progress [0, 1] to an eased value.
// Eased values may overshoot outside [0, 1] mid-curve, but every easing
// maps 0 to 0 and 1 to 1.
type EaseFunc func(t float32) float32

// Linear returns progress unchanged.
func Linear(t float32) float32 { return t }

// QuadOut decelerates quadratically toward the target.
func QuadOut(t float32) float32 { return 1 - (1-t)*(1-t) }

// BackOut returns an easing that overshoots past the target before settling.
// The overshoot amplitude grows with s; 1.70158 gives the classic ~10% overshoot.
func BackOut(s float32) EaseFunc {
	return func(t float32) float32 {
		u := t - 1
		return 1 + u*u*((s+1)*u+s)
	}
}

// BounceOut settles onto the target with a series of damped bounces.
func BounceOut(t float32) float32 {
	const n, d float32 = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

// ElasticOut oscillates around the target with decaying amplitude.
func ElasticOut(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	const c = 2 * math.Pi / 3
	return float32(math.Pow(2, -10*float64(t))*math.Sin((float64(t)*10-0.75)*c)) + 1
}

// Jelly returns the scale curve for the squash-and-recover zoom: the value
// starts at 1, dips to squash during the first squashPortion of the
// animation, then recovers to 1 with a BackOut overshoot.
// Unlike an EaseFunc this maps 0 to 1 and 1 to 1; feed it tween progress
// and use the result as a scale factor directly.
func Jelly(squash, squashPortion, overshoot float32) func(t float32) float32 {
	if squashPortion <= 0 || squashPortion >= 1 {
		squashPortion = 0.4
	}
	rebound := BackOut(overshoot)
	return func(t float32) float32 {
		switch {
		case t <= 0 || t >= 1:
			return 1
		case t < squashPortion:
			return 1 + (squash-1)*QuadOut(t/squashPortion)
		default:
			return squash + (1-squash)*rebound((t-squashPortion)/(1-squashPortion))
		}
	}
}

// Point is a control point of a custom easing curve.
type Point struct {
	T float64 // Normalized time
	V float64 // Eased value at T
}

// CurveFromPoints fits an Akima spline through the given control points and
// returns it as an EaseFunc. Points are sorted by T; endpoints at (0, 0) and
// (1, 1) are added when missing so the result always maps 0 to 0 and 1 to 1.
// At least two distinct control points (after endpoint insertion) are needed.
func CurveFromPoints(pts []Point) (EaseFunc, error) {
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	if len(sorted) == 0 || sorted[0].T > 0 {
		sorted = append([]Point{{T: 0, V: 0}}, sorted...)
	}
	if sorted[len(sorted)-1].T < 1 {
		sorted = append(sorted, Point{T: 1, V: 1})
	}

	xs := make([]float64, 0, len(sorted))
	ys := make([]float64, 0, len(sorted))
	for _, p := range sorted {
		if len(xs) > 0 && p.T <= xs[len(xs)-1] {
			return nil, fmt.Errorf("curve points must have strictly increasing t, got %v after %v", p.T, xs[len(xs)-1])
		}
		if p.T < 0 || p.T > 1 {
			return nil, fmt.Errorf("curve point t=%v outside [0, 1]", p.T)
		}
		xs = append(xs, p.T)
		ys = append(ys, p.V)
	}

	var spline interp.AkimaSpline
	if err := spline.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fitting easing curve: %w", err)
	}

	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float32(spline.Predict(float64(t)))
	}, nil
}
