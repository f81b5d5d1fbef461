package sway

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Ease names an easing curve. The named curves are evaluated through
// [ease.TweenFunc] implementations from gween; EaseCustom evaluates a
// caller-supplied sampled curve instead (see [TweenConfig.Custom]).
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
	// EaseCustom evaluates the sampled curve supplied in TweenConfig.Custom.
	EaseCustom
)

// easeFuncs maps each named Ease onto its gween evaluator.
// Indexed by the Ease value; EaseCustom is handled separately.
var easeFuncs = [...]ease.TweenFunc{
	EaseLinear:       ease.Linear,
	EaseInQuad:       ease.InQuad,
	EaseOutQuad:      ease.OutQuad,
	EaseInOutQuad:    ease.InOutQuad,
	EaseInCubic:      ease.InCubic,
	EaseOutCubic:     ease.OutCubic,
	EaseInOutCubic:   ease.InOutCubic,
	EaseInQuart:      ease.InQuart,
	EaseOutQuart:     ease.OutQuart,
	EaseInOutQuart:   ease.InOutQuart,
	EaseInQuint:      ease.InQuint,
	EaseOutQuint:     ease.OutQuint,
	EaseInOutQuint:   ease.InOutQuint,
	EaseInSine:       ease.InSine,
	EaseOutSine:      ease.OutSine,
	EaseInOutSine:    ease.InOutSine,
	EaseInExpo:       ease.InExpo,
	EaseOutExpo:      ease.OutExpo,
	EaseInOutExpo:    ease.InOutExpo,
	EaseInCirc:       ease.InCirc,
	EaseOutCirc:      ease.OutCirc,
	EaseInOutCirc:    ease.InOutCirc,
	EaseInBack:       ease.InBack,
	EaseOutBack:      ease.OutBack,
	EaseInOutBack:    ease.InOutBack,
	EaseInElastic:    ease.InElastic,
	EaseOutElastic:   ease.OutElastic,
	EaseInOutElastic: ease.InOutElastic,
	EaseInBounce:     ease.InBounce,
	EaseOutBounce:    ease.OutBounce,
	EaseInOutBounce:  ease.InOutBounce,
}

// CurvePoint is one sample of a custom easing curve. T is normalized progress
// in [0, 1]; Value is the eased progress at that point (may leave [0, 1] for
// overshooting curves).
type CurvePoint struct {
	T, Value float64
}

// validateCurve panics unless points form a usable sampled curve:
// at least two samples, T non-decreasing, starting at 0 and ending at 1.
func validateCurve(points []CurvePoint) {
	if len(points) < 2 {
		panic("sway: custom curve needs at least two sample points")
	}
	if points[0].T != 0 || points[len(points)-1].T != 1 {
		panic("sway: custom curve samples must span t=0 to t=1")
	}
	for i := 1; i < len(points); i++ {
		if points[i].T < points[i-1].T {
			panic(fmt.Sprintf("sway: custom curve samples out of order at index %d", i))
		}
	}
}

// sampleCurve evaluates a validated sampled curve at t using linear
// interpolation between the surrounding samples.
func sampleCurve(points []CurvePoint, t float64) float64 {
	if t <= 0 {
		return points[0].Value
	}
	if t >= 1 {
		return points[len(points)-1].Value
	}
	for i := 1; i < len(points); i++ {
		if t <= points[i].T {
			prev := points[i-1]
			next := points[i]
			span := next.T - prev.T
			if span <= 0 {
				return next.Value
			}
			return lerp(prev.Value, next.Value, (t-prev.T)/span)
		}
	}
	return points[len(points)-1].Value
}

// evalEase maps raw progress t through the named curve e. t is clamped to
// [0, 1] before lookup; the output may overshoot [0, 1] for back, elastic,
// and bounce curves. Identical inputs always yield bit-identical outputs.
//
// Linear and custom curves evaluate entirely in float64, so untransformed
// progress is exact. The remaining named curves go through gween's float32
// evaluators and carry ~1e-7 precision.
func evalEase(e Ease, points []CurvePoint, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	switch e {
	case EaseLinear:
		return t
	case EaseCustom:
		return sampleCurve(points, t)
	}
	return float64(easeFuncs[e](float32(t), 0, 1, 1))
}
