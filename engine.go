package sway

import (
	"fmt"
	"os"
)

// Config holds construction-time engine settings.
type Config struct {
	// Capacity pre-reserves this many tween and sequence slots.
	// Zero means defaultCapacity.
	Capacity int
	// TimeScale is the initial global time scale. Zero means 1.
	TimeScale float64
}

// Engine owns the tween and sequence pools and drives every live record from
// a single Update pass per frame. All advancement is single-threaded and
// cooperative: nothing blocks, nothing preempts, and no other goroutine may
// touch the engine. That confinement is what makes the generation-checked
// pools safe without locks.
//
// Steady-state operation within reserved capacity performs zero heap
// allocations.
type Engine struct {
	tweens tweenSlab
	seqs   seqSlab

	timeScale      float64
	warnTargetGone bool

	// inUpdate gates deferred slot release: a completion callback commonly
	// starts the next animation, and it must never be handed the slot of the
	// record currently being iterated.
	inUpdate       bool
	deferredTweens []int32
	deferredSeqs   []int32
}

// NewEngine creates an engine with cfg. The pools are preallocated up front;
// SetCapacity can raise them later.
func NewEngine(cfg Config) *Engine {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	ts := cfg.TimeScale
	if ts == 0 {
		ts = 1
	}
	e := &Engine{timeScale: ts, warnTargetGone: true}
	e.reserve(capacity)
	return e
}

// reserve grows both slabs and the deferred-release buffers to cover n slots.
func (e *Engine) reserve(n int) {
	e.tweens.reserve(n)
	e.seqs.reserve(n)
	if cap(e.deferredTweens) < len(e.tweens.slots) {
		d := make([]int32, len(e.deferredTweens), len(e.tweens.slots))
		copy(d, e.deferredTweens)
		e.deferredTweens = d
	}
	if cap(e.deferredSeqs) < len(e.seqs.slots) {
		d := make([]int32, len(e.deferredSeqs), len(e.seqs.slots))
		copy(d, e.deferredSeqs)
		e.deferredSeqs = d
	}
}

// SetCapacity pre-reserves pool slots. Idempotent: the pools keep the larger
// of the old and new capacities, and calling it before any tweens exist is
// safe and encouraged.
func (e *Engine) SetCapacity(n int) {
	if n > len(e.tweens.slots) || n > len(e.seqs.slots) {
		e.reserve(n)
	}
}

// Capacity returns the current tween pool size in slots.
func (e *Engine) Capacity() int {
	return len(e.tweens.slots)
}

// SetGlobalTimeScale sets the factor applied to dt for every tween and
// sequence not flagged UnscaledTime. Zero freezes all scaled records, which
// is how a host implements global pause without touching individual tweens.
func (e *Engine) SetGlobalTimeScale(factor float64) {
	e.timeScale = factor
}

// GlobalTimeScale returns the current global time scale.
func (e *Engine) GlobalTimeScale() float64 {
	return e.timeScale
}

// SetWarnOnTargetDestroyed toggles the stderr warning emitted when a tween is
// stopped because its target was destroyed. Enabled by default.
func (e *Engine) SetWarnOnTargetDestroyed(enabled bool) {
	e.warnTargetGone = enabled
}

// LiveCount returns the number of live tween records, including
// sequence-owned ones.
func (e *Engine) LiveCount() int {
	n := 0
	for i := range e.tweens.slots {
		if e.tweens.slots[i].alive {
			n++
		}
	}
	return n
}

// Animate acquires a tween from the pool and schedules it. Construction-time
// misuse (negative duration or delays, unknown easing, bad custom curve,
// mismatched value kinds) panics immediately; nothing is deferred into the
// update loop.
func (e *Engine) Animate(cfg TweenConfig) Handle {
	if cfg.Duration < 0 {
		panic("sway: negative duration")
	}
	if cfg.StartDelay < 0 || cfg.EndDelay < 0 {
		panic("sway: negative delay")
	}
	if cfg.Cycles < -1 {
		panic("sway: invalid cycle count")
	}
	if cfg.Ease > EaseCustom {
		panic("sway: unknown easing")
	}
	if cfg.Ease == EaseCustom {
		validateCurve(cfg.Custom)
	}
	if cfg.Read == nil && cfg.From.Kind != cfg.To.Kind {
		panic("sway: From and To value kinds differ")
	}

	cycles := cfg.Cycles
	if cycles == 0 {
		cycles = 1
	}

	i := e.tweens.acquire()
	if cap(e.deferredTweens) < len(e.tweens.slots) {
		e.reserve(len(e.tweens.slots))
	}
	r := &e.tweens.slots[i]
	gen := r.gen
	*r = tweenRecord{
		gen:        gen,
		alive:      true,
		fresh:      e.inUpdate,
		ownerSeq:   -1,
		unscaled:   cfg.UnscaledTime,
		from:       cfg.From,
		to:         cfg.To,
		duration:   cfg.Duration,
		delayLeft:  cfg.StartDelay,
		startDelay: cfg.StartDelay,
		endDelay:   cfg.EndDelay,
		easing:     cfg.Ease,
		samples:    cfg.Custom,
		cycles:     cycles,
		cycleMode:  cfg.CycleMode,
		target:     cfg.Target,
		readFrom:   cfg.Read,
		onUpdate:   cfg.OnUpdate,
		onComplete: cfg.OnComplete,
	}
	return Handle{e: e, idx: i, gen: gen}
}

// Update advances every live record by one tick. dt is the raw frame delta in
// seconds; the scaled clock is dt times the global time scale, the unscaled
// clock is dt itself. Records are advanced in pool-slot order; sequences
// after independent tweens, each driving its owned entries in registration
// order.
//
// Update is reentrancy-safe with respect to callbacks: a callback may start,
// stop, or complete other tweens and sequences during its own invocation.
// Records created inside a callback begin advancing on the next tick.
// Calling Update from inside a callback panics.
func (e *Engine) Update(dt float64) {
	if e.inUpdate {
		panic("sway: Update called from within Update")
	}
	if dt < 0 {
		dt = 0
	}
	scaled := dt * e.timeScale
	e.inUpdate = true

	n := int32(len(e.tweens.slots))
	for i := int32(0); i < n; i++ {
		e.advanceTween(i, scaled, dt)
	}
	m := int32(len(e.seqs.slots))
	for i := int32(0); i < m; i++ {
		e.advanceSequence(i, scaled, dt)
	}

	e.inUpdate = false

	for i := range e.tweens.slots {
		e.tweens.slots[i].fresh = false
	}
	for i := range e.seqs.slots {
		e.seqs.slots[i].fresh = false
	}

	// Release slots freed during the pass. Deferring keeps a
	// callback-triggered acquire from aliasing a record mid-iteration.
	e.tweens.free = append(e.tweens.free, e.deferredTweens...)
	e.deferredTweens = e.deferredTweens[:0]
	e.seqs.free = append(e.seqs.free, e.deferredSeqs...)
	e.deferredSeqs = e.deferredSeqs[:0]
}

// StopAll kills every live sequence and tween without firing completion
// callbacks.
func (e *Engine) StopAll() {
	for i := range e.seqs.slots {
		s := &e.seqs.slots[i]
		if s.alive && s.ownerSeq < 0 {
			e.stopSequence(int32(i))
		}
	}
	for i := range e.tweens.slots {
		if e.tweens.slots[i].alive {
			e.killTween(int32(i))
		}
	}
}

// advanceTween moves one independently scheduled record forward by one tick.
// Sequence-owned records are driven by their sequence instead.
func (e *Engine) advanceTween(i int32, scaledDt, rawDt float64) {
	r := &e.tweens.slots[i]
	if !r.alive || r.fresh || r.ownerSeq >= 0 || r.paused {
		return
	}
	dt := scaledDt
	if r.unscaled {
		dt = rawDt
	}
	if r.target != nil {
		gone := r.target.IsDisposed()
		r = &e.tweens.slots[i] // user code ran: reload
		if !r.alive {
			return
		}
		if gone {
			e.logTargetGone()
			e.killTween(i)
			return
		}
	}
	if r.finished {
		r.endDelayLeft -= dt
		if r.endDelayLeft <= 0 {
			e.completeTween(i)
		}
		return
	}
	if r.delayLeft > 0 {
		r.delayLeft -= dt
		if r.delayLeft > 0 {
			return
		}
		// Spill the remainder of the tick into the first cycle.
		dt = -r.delayLeft
		r.delayLeft = 0
	}
	if r.readFrom != nil && !r.fromRead {
		from := r.readFrom(r.target)
		r = &e.tweens.slots[i] // user code ran: reload
		if !r.alive {
			return
		}
		from.Kind = r.to.Kind
		r.from = from
		r.fromRead = true
	}
	r.elapsed += dt
	e.settleTween(i)
}

// settleTween resolves cycle wraps for the record's elapsed time — including
// an oversized dt spanning several cycles in one tick — fires the value
// callback for the resulting position, and completes the record when its
// cycles and end delay are exhausted. Completion fires exactly once no matter
// how the tick boundaries fall.
func (e *Engine) settleTween(i int32) {
	r := &e.tweens.slots[i]

	atEnd := false
	over := 0.0
	if r.duration <= 0 {
		// Zero-duration records deliver the end value and finish on their
		// first advancing tick; cycle counts are not meaningful.
		if r.cycles >= 1 {
			r.cycle = r.cycles - 1
		}
		over = r.elapsed
		atEnd = true
	} else {
		for r.elapsed >= r.duration {
			if r.lastCycle() {
				over = r.elapsed - r.duration
				r.elapsed = r.duration
				atEnd = true
				break
			}
			r.cycle++
			r.elapsed -= r.duration
		}
	}

	t := 1.0
	if r.duration > 0 {
		t = r.elapsed / r.duration
	}

	if r.onUpdate != nil {
		r.onUpdate(r.target, r.valueAt(t))
		r = &e.tweens.slots[i] // callback may have stopped this record
		if !r.alive {
			return
		}
	}

	if !atEnd {
		return
	}
	if r.endDelay > over {
		r.finished = true
		r.endDelayLeft = r.endDelay - over
		return
	}
	e.completeTween(i)
}

// completeTween fires the record's completion callback and releases the slot.
// The slot is released before the callback runs so a callback-started tween
// observes consistent pool state; the freed index still cannot be reacquired
// mid-pass thanks to deferred release.
func (e *Engine) completeTween(i int32) {
	r := &e.tweens.slots[i]
	done := r.onComplete
	tgt := r.target
	e.killTween(i)
	if done != nil {
		done(tgt)
	}
}

// killTween marks the slot dead, bumps its generation so stale handles stop
// matching, clears references so the pool retains nothing, and returns the
// slot to the free list (deferred while an Update pass is running).
func (e *Engine) killTween(i int32) {
	r := &e.tweens.slots[i]
	r.alive = false
	r.gen++
	r.finished = false
	r.target = nil
	r.readFrom = nil
	r.onUpdate = nil
	r.onComplete = nil
	r.samples = nil
	if e.inUpdate {
		e.deferredTweens = append(e.deferredTweens, i)
	} else {
		e.tweens.free = append(e.tweens.free, i)
	}
}

// logTargetGone reports a destroyed-target stop on stderr. Each record can
// reach this at most once because the record dies immediately after.
func (e *Engine) logTargetGone() {
	if !e.warnTargetGone {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sway] warning: tween target destroyed mid-animation; stopped without completing\n")
}
