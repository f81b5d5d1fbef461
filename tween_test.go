package sway

import (
	"math"
	"testing"
)

func TestZeroHandleIsDead(t *testing.T) {
	var h Handle
	if h.IsAlive() {
		t.Fatal("zero handle should be dead")
	}
	// Every operation must be a safe no-op.
	h.Stop()
	h.Complete()
	h.SetPaused(true)
	if h.Paused() {
		t.Error("Paused on dead handle should be false")
	}
	if h.Progress() != 0 || h.ElapsedTime() != 0 {
		t.Error("queries on dead handle should return 0")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	e := newTestEngine()
	completions := 0

	h := e.Animate(TweenConfig{
		From: FloatValue(0), To: FloatValue(10), Duration: 1,
		OnComplete: func(Target) { completions++ },
	})

	h.Stop()
	if h.IsAlive() {
		t.Fatal("should be dead after Stop")
	}
	// Second Stop, and Stop after the slot is reused, are both no-ops.
	h.Stop()

	reused := e.Animate(TweenConfig{From: FloatValue(0), To: FloatValue(1), Duration: 1})
	h.Stop()
	if !reused.IsAlive() {
		t.Fatal("stale Stop killed the slot's new occupant")
	}
	if completions != 0 {
		t.Error("Stop fired OnComplete")
	}
}

func TestCompleteJumpsToEnd(t *testing.T) {
	e := newTestEngine()
	n := &fakeNode{}
	completions := 0

	h := e.Animate(TweenConfig{
		From: FloatValue(0), To: FloatValue(10), Duration: 1,
		Target: n, OnUpdate: setX,
		OnComplete: func(Target) { completions++ },
	})

	e.Update(0.2)
	h.Complete()

	if n.x != 10 {
		t.Errorf("x = %v, want end value after Complete", n.x)
	}
	if completions != 1 {
		t.Errorf("OnComplete fired %d times, want 1", completions)
	}
	if h.IsAlive() {
		t.Fatal("should be dead after Complete")
	}
	// Completing again is a no-op.
	h.Complete()
	if completions != 1 {
		t.Error("Complete double-fired")
	}
}

func TestPauseFreezesAdvancement(t *testing.T) {
	e := newTestEngine()
	n := &fakeNode{}

	h := e.Animate(TweenConfig{
		From: FloatValue(0), To: FloatValue(10), Duration: 1,
		Target: n, OnUpdate: setX,
	})

	e.Update(0.25)
	h.SetPaused(true)
	if !h.Paused() {
		t.Fatal("Paused should report true")
	}
	e.Update(0.5)
	if math.Abs(n.x-2.5) > 1e-9 {
		t.Errorf("x = %v, want 2.5 while paused", n.x)
	}
	h.SetPaused(false)
	e.Update(0.25)
	if math.Abs(n.x-5.0) > 1e-9 {
		t.Errorf("x = %v, want 5.0 after resume", n.x)
	}
}

func TestProgressAndElapsedQueries(t *testing.T) {
	e := newTestEngine()
	h := e.Animate(TweenConfig{From: FloatValue(0), To: FloatValue(1), Duration: 2})

	e.Update(0.5)
	if math.Abs(h.Progress()-0.25) > 1e-9 {
		t.Errorf("Progress = %v, want 0.25", h.Progress())
	}
	if math.Abs(h.ElapsedTime()-0.5) > 1e-9 {
		t.Errorf("ElapsedTime = %v, want 0.5", h.ElapsedTime())
	}

	h.Stop()
	if h.Progress() != 0 || h.ElapsedTime() != 0 {
		t.Error("dead handle queries should return 0")
	}
}

func TestHandlesAreComparable(t *testing.T) {
	e := newTestEngine()
	h := e.Animate(TweenConfig{From: FloatValue(0), To: FloatValue(1), Duration: 1})

	copied := h
	if copied != h {
		t.Fatal("copied handle should compare equal")
	}
	if h == (Handle{}) {
		t.Fatal("live handle should not equal the zero handle")
	}
}

func TestVectorAndColorPayloads(t *testing.T) {
	e := newTestEngine()

	var gotVec Vec3
	e.Animate(TweenConfig{
		From: Vec3Value(Vec3{0, 0, 0}), To: Vec3Value(Vec3{2, 4, 6}), Duration: 1,
		OnUpdate: func(_ Target, v Value) { gotVec = v.Vec3() },
	})

	var gotColor Color
	e.Animate(TweenConfig{
		From: ColorValue(Color{0, 0, 0, 0}), To: ColorValue(Color{1, 1, 1, 1}), Duration: 1,
		OnUpdate: func(_ Target, v Value) { gotColor = v.Color() },
	})

	e.Update(0.5)
	if math.Abs(gotVec.X-1) > 1e-9 || math.Abs(gotVec.Y-2) > 1e-9 || math.Abs(gotVec.Z-3) > 1e-9 {
		t.Errorf("vec = %+v, want (1,2,3)", gotVec)
	}
	if math.Abs(gotColor.R-0.5) > 1e-9 || math.Abs(gotColor.A-0.5) > 1e-9 {
		t.Errorf("color = %+v, want all 0.5", gotColor)
	}
}

func TestQuatPayloadStaysNormalized(t *testing.T) {
	e := newTestEngine()

	var got Quat
	e.Animate(TweenConfig{
		From:     QuatValue(QuatIdentity),
		To:       QuatValue(Quat{X: 0, Y: 0.7071067811865476, Z: 0, W: 0.7071067811865476}),
		Duration: 1,
		OnUpdate: func(_ Target, v Value) { got = v.Quat() },
	})

	e.Update(0.5)
	mag := math.Sqrt(got.X*got.X + got.Y*got.Y + got.Z*got.Z + got.W*got.W)
	if math.Abs(mag-1) > 1e-9 {
		t.Errorf("interpolated quaternion magnitude = %v, want 1", mag)
	}
}
