package sway

// Target is implemented by animation targets that the host application can
// destroy while a tween is still running. Before every value callback the
// engine checks IsDisposed; when it reports true the tween is stopped
// immediately and its completion callback never fires.
//
// A nil target skips the check entirely (the callback is assumed to write
// somewhere that cannot go away).
type Target interface {
	IsDisposed() bool
}

// CycleMode selects what happens when a tween reaches the end of one cycle
// and more cycles remain.
type CycleMode uint8

const (
	CycleRestart     CycleMode = iota // replay start -> end each cycle
	CycleYoyo                         // alternate direction each cycle
	CycleIncremental                  // shift both endpoints by the delta each cycle
	CycleRewind                       // play forward, then snap back to start instantly
)

// TweenConfig describes one animation. Callbacks receive the configured
// Target back as their first argument — supplying context explicitly instead
// of capturing it in a closure is what keeps steady-state updates
// allocation-free.
type TweenConfig struct {
	// From is the starting value. Ignored when Read is set.
	From Value
	// To is the ending value. Its kind defines the payload type.
	To Value
	// Duration is one cycle's length in seconds. Zero-duration tweens deliver
	// their end value and complete on their first advancing tick.
	Duration float64
	// Ease names the progress curve. EaseCustom evaluates Custom instead.
	Ease Ease
	// Custom holds the sample points for EaseCustom. Must span t=0..1 with at
	// least two points in non-decreasing T order.
	Custom []CurvePoint
	// StartDelay holds the tween idle before the first cycle. No value
	// callbacks fire during the delay.
	StartDelay float64
	// EndDelay keeps the tween alive (value frozen at the end) after the last
	// cycle before completion fires. Sequences use this to reserve trailing
	// silence.
	EndDelay float64
	// Cycles is the number of start-to-end traversals. Zero means one;
	// -1 means infinite.
	Cycles int
	// CycleMode selects the wrap behavior between cycles.
	CycleMode CycleMode
	// UnscaledTime advances this tween with the raw frame dt, ignoring the
	// engine's global time scale.
	UnscaledTime bool
	// Target is passed back to every callback and liveness-checked before
	// each one. Optional.
	Target Target
	// Read, when set, supplies the starting value from the target the moment
	// the tween begins advancing (after StartDelay), instead of From.
	Read func(Target) Value
	// OnUpdate receives the interpolated value every tick.
	OnUpdate func(Target, Value)
	// OnComplete fires exactly once when all cycles and the end delay are
	// exhausted. It does not fire on Stop or when the target is destroyed.
	OnComplete func(Target)
}

// tweenRecord is one slot in the tween slab. Records are reused in place;
// generation increments on every release so stale handles never alias the
// next occupant.
type tweenRecord struct {
	gen   uint32
	alive bool
	fresh bool // created during the current Update pass; starts next tick

	ownerSeq int32 // owning sequence slot, or -1 when independently scheduled

	paused   bool
	unscaled bool

	from, to Value
	fromRead bool

	elapsed      float64 // within the current cycle
	duration     float64
	delayLeft    float64
	startDelay   float64
	endDelay     float64
	endDelayLeft float64
	finished     bool // final cycle done, waiting out endDelay

	easing  Ease
	samples []CurvePoint

	cycles int // total cycle count, -1 = infinite
	cycle  int // current cycle index

	cycleMode CycleMode

	target     Target
	readFrom   func(Target) Value
	onUpdate   func(Target, Value)
	onComplete func(Target)
}

// lastCycle reports whether the record is on its final cycle.
func (r *tweenRecord) lastCycle() bool {
	return r.cycles >= 0 && r.cycle >= r.cycles-1
}

// envelope returns the record's full scheduled length: delay, all cycles, and
// the end delay. Only meaningful for finite cycle counts.
func (r *tweenRecord) envelope() float64 {
	return r.startDelay + float64(r.cycles)*r.duration + r.endDelay
}

// valueAt computes the interpolated value for raw progress t within the
// current cycle, applying easing and the cycle mode's endpoint selection.
func (r *tweenRecord) valueAt(t float64) Value {
	et := evalEase(r.easing, r.samples, t)
	switch r.cycleMode {
	case CycleYoyo:
		if r.cycle%2 == 1 {
			return lerpValue(r.to, r.from, et)
		}
		return lerpValue(r.from, r.to, et)
	case CycleIncremental:
		base := offsetValue(r.from, r.to, float64(r.cycle))
		end := offsetValue(r.from, r.to, float64(r.cycle+1))
		return lerpValue(base, end, et)
	case CycleRewind:
		if t >= 1 {
			return r.from
		}
		return lerpValue(r.from, r.to, et)
	default:
		return lerpValue(r.from, r.to, et)
	}
}

// Handle is a lightweight, copyable, generation-checked reference to a pooled
// tween. The zero Handle is dead. Every operation on a dead or stale handle is
// a safe no-op — handles are routinely kept past their animation's natural
// death and checked before reuse.
type Handle struct {
	e   *Engine
	idx int32
	gen uint32
}

// record resolves the handle to its live record, or nil when dead or stale.
func (h Handle) record() *tweenRecord {
	if h.e == nil || int(h.idx) >= len(h.e.tweens.slots) {
		return nil
	}
	r := &h.e.tweens.slots[h.idx]
	if !r.alive || r.gen != h.gen {
		return nil
	}
	return r
}

// IsAlive reports whether the handle still references a live tween.
func (h Handle) IsAlive() bool {
	return h.record() != nil
}

// Stop kills the tween immediately: the slot is released and OnComplete does
// not fire. No-op on a dead or stale handle, so calling it twice is safe.
func (h Handle) Stop() {
	if h.record() == nil {
		return
	}
	h.e.killTween(h.idx)
}

// Complete jumps the tween to the end of its final cycle: OnUpdate fires with
// the end value, OnComplete fires exactly once, and the slot is released.
// For infinite-cycle tweens the current cycle's end is used. No-op on a dead
// or stale handle.
func (h Handle) Complete() {
	r := h.record()
	if r == nil {
		return
	}
	if r.cycles >= 0 {
		r.cycle = r.cycles - 1
	}
	r.elapsed = r.duration
	if r.target != nil {
		gone := r.target.IsDisposed()
		r = h.record() // user code ran: reload
		if r == nil {
			return
		}
		if gone {
			h.e.logTargetGone()
			h.e.killTween(h.idx)
			return
		}
	}
	if r.onUpdate != nil {
		r.onUpdate(r.target, r.valueAt(1))
		r = h.record() // callback may have stopped the tween or grown the slab
		if r == nil {
			return
		}
	}
	h.e.completeTween(h.idx)
}

// SetPaused freezes or resumes advancement without releasing the slot.
// Ignored for sequence-owned tweens, which follow their sequence's clock.
// No-op on a dead or stale handle.
func (h Handle) SetPaused(paused bool) {
	if r := h.record(); r != nil {
		r.paused = paused
	}
}

// Paused reports whether the tween is paused. False for dead handles.
func (h Handle) Paused() bool {
	r := h.record()
	return r != nil && r.paused
}

// Progress returns raw progress within the current cycle in [0, 1].
// Returns 0 for a dead or stale handle.
func (h Handle) Progress() float64 {
	r := h.record()
	if r == nil || r.duration <= 0 {
		return 0
	}
	t := r.elapsed / r.duration
	if t > 1 {
		t = 1
	}
	return t
}

// ElapsedTime returns seconds elapsed within the current cycle.
// Returns 0 for a dead or stale handle.
func (h Handle) ElapsedTime() float64 {
	r := h.record()
	if r == nil {
		return 0
	}
	return r.elapsed
}
