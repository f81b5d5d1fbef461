package sway

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	// Every named curve maps 0 -> 0 and 1 -> 1. The tolerance covers the expo
	// family, whose analytic form leaves a 2^-10 residual at the ends.
	for e := EaseLinear; e < EaseCustom; e++ {
		if v := evalEase(e, nil, 0); math.Abs(v) > 2e-3 {
			t.Errorf("ease %d at t=0: got %v, want 0", e, v)
		}
		if v := evalEase(e, nil, 1); math.Abs(v-1) > 2e-3 {
			t.Errorf("ease %d at t=1: got %v, want 1", e, v)
		}
	}
}

func TestEaseDeterminism(t *testing.T) {
	for e := EaseLinear; e < EaseCustom; e++ {
		for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
			a := evalEase(e, nil, tt)
			b := evalEase(e, nil, tt)
			if a != b {
				t.Fatalf("ease %d at t=%v not bit-identical: %v vs %v", e, tt, a, b)
			}
		}
	}
}

func TestLinearEaseIsExactInFloat64(t *testing.T) {
	// Linear progress must survive evaluation bit-for-bit; values like 0.3
	// are not float32-representable and would come back perturbed through a
	// float32 evaluator.
	for _, tt := range []float64{0.1, 0.3, 1.0 / 3.0, 0.7, 0.9} {
		if v := evalEase(EaseLinear, nil, tt); v != tt {
			t.Errorf("linear at t=%v: got %v, want exact input", tt, v)
		}
	}
}

func TestEaseClampsInput(t *testing.T) {
	if v := evalEase(EaseOutCubic, nil, -0.5); v != evalEase(EaseOutCubic, nil, 0) {
		t.Errorf("t below 0 not clamped: %v", v)
	}
	if v := evalEase(EaseOutCubic, nil, 1.5); v != evalEase(EaseOutCubic, nil, 1) {
		t.Errorf("t above 1 not clamped: %v", v)
	}
}

func TestEaseCurvesDiffer(t *testing.T) {
	lin := evalEase(EaseLinear, nil, 0.5)
	cub := evalEase(EaseOutCubic, nil, 0.5)
	if math.Abs(lin-cub) < 0.01 {
		t.Errorf("linear and OutCubic should differ at midpoint: %v vs %v", lin, cub)
	}
}

func TestOvershootingCurvesLeaveUnitRange(t *testing.T) {
	// OutBack overshoots past 1 on its way in.
	overshot := false
	for tt := 0.5; tt < 1.0; tt += 0.01 {
		if evalEase(EaseOutBack, nil, tt) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("OutBack never exceeded 1")
	}
}

func TestCustomCurveSampling(t *testing.T) {
	// A step-ish curve: slow start, jump at the middle.
	points := []CurvePoint{
		{T: 0, Value: 0},
		{T: 0.5, Value: 0.1},
		{T: 1, Value: 1},
	}
	validateCurve(points)

	if v := sampleCurve(points, 0.25); math.Abs(v-0.05) > 1e-9 {
		t.Errorf("t=0.25: got %v, want 0.05", v)
	}
	if v := sampleCurve(points, 0.75); math.Abs(v-0.55) > 1e-9 {
		t.Errorf("t=0.75: got %v, want 0.55", v)
	}
	if v := sampleCurve(points, 0); v != 0 {
		t.Errorf("t=0: got %v, want 0", v)
	}
	if v := sampleCurve(points, 1); v != 1 {
		t.Errorf("t=1: got %v, want 1", v)
	}
}

func TestCustomCurveValidation(t *testing.T) {
	bad := [][]CurvePoint{
		nil,
		{{T: 0, Value: 0}},
		{{T: 0.1, Value: 0}, {T: 1, Value: 1}},             // does not start at 0
		{{T: 0, Value: 0}, {T: 0.9, Value: 1}},             // does not end at 1
		{{T: 0, Value: 0}, {T: 0.6, Value: 0}, {T: 0.4, Value: 1}, {T: 1, Value: 1}}, // out of order
	}
	for i, points := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected panic", i)
				}
			}()
			validateCurve(points)
		}()
	}
}

func TestCustomCurveDrivesTween(t *testing.T) {
	e := newTestEngine()
	n := &fakeNode{}

	e.Animate(TweenConfig{
		From: FloatValue(0), To: FloatValue(10), Duration: 1,
		Ease: EaseCustom,
		Custom: []CurvePoint{
			{T: 0, Value: 0},
			{T: 0.5, Value: 0.9},
			{T: 1, Value: 1},
		},
		Target: n, OnUpdate: setX,
	})

	e.Update(0.5)
	if math.Abs(n.x-9) > 1e-9 {
		t.Errorf("x = %v, want 9 (custom curve at midpoint)", n.x)
	}
}
