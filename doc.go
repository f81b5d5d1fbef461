// Package sway is a zero-allocation tweening and sequencing engine.
//
// Sway animates scalar, vector, color, and quaternion values over time,
// composes primitive tweens into ordered and parallel sequences, and — once
// its pools are warmed up — never allocates heap memory in steady-state
// operation. What the animated values represent is up to the caller: the
// engine delivers each interpolated value to a caller-supplied callback and
// knows nothing about scene graphs, transforms, or renderers.
//
// # Quick start
//
// Create an [Engine], start tweens with [Engine.Animate], and advance
// everything from your frame loop with [Engine.Update]:
//
//	engine := sway.NewEngine(sway.Config{Capacity: 256})
//
//	h := engine.Animate(sway.TweenConfig{
//		From:     sway.FloatValue(0),
//		To:       sway.FloatValue(10),
//		Duration: 1.0,
//		Ease:     sway.EaseOutCubic,
//		Target:   node,
//		OnUpdate: func(t sway.Target, v sway.Value) {
//			t.(*MyNode).X = v.Float()
//		},
//	})
//
//	// each frame:
//	engine.Update(dt)
//
// The returned [Handle] is a copyable, generation-checked reference: it can
// be stored, compared, and safely used after the tween dies — every operation
// on a dead or stale handle is a no-op.
//
// # Sequences
//
// [Engine.NewSequence] returns a fluent builder. Chain places an entry after
// everything added so far, Group runs it alongside the previous entry, and
// Insert places it at an explicit time:
//
//	engine.NewSequence().
//		Chain(fadeIn).
//		Group(slideUp).
//		ChainDelay(0.25).
//		ChainCallback(func() { fmt.Println("halfway") }).
//		Chain(fadeOut).
//		OnComplete(func() { fmt.Println("done") })
//
// A sequence's duration is the maximum end time across its entries, never the
// sum, because grouped and inserted entries overlap in time.
//
// # Timing
//
// [Engine.Update] takes the raw frame delta. Tweens and sequences advance on
// the scaled clock (dt times [Engine.SetGlobalTimeScale]) unless flagged with
// UnscaledTime, which is how UI animations keep running while gameplay is
// paused via a zero time scale.
//
// # Pooling
//
// Tween and sequence records live in preallocated pools. Reserve capacity up
// front with Config.Capacity or [Engine.SetCapacity]; if the pool runs out it
// grows by doubling and logs a warning to stderr, since steady-state
// allocation should reach zero after warmup.
//
// # Concurrency
//
// The engine is single-threaded and cooperative: all advancement happens in
// the one Update pass, callbacks may freely start and stop other tweens
// during their own invocation, and no locking exists or is needed. Do not
// touch an Engine from multiple goroutines.
package sway
