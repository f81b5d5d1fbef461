package sway

// entryKind distinguishes what a sequence entry drives.
type entryKind uint8

const (
	entryTween    entryKind = iota // a claimed tween record
	entrySequence                  // a claimed sub-sequence
	entryDelay                     // pure time, no action
	entryCallback                  // zero-duration side effect
)

// seqEntry is one scheduled element of a sequence. Offset and duration are in
// the sequence's own clock; the entry's interval is [offset, offset+duration).
type seqEntry struct {
	kind     entryKind
	offset   float64
	duration float64
	slot     int32  // tween or sequence slot for claimed children
	gen      uint32 // child generation at claim time
	fn       func() // callback entries only

	// done marks the entry driven to the end of its interval for the current
	// cycle; reset on cycle wrap. completedOnce guards the child's completion
	// callback across the sequence's whole life — it fires 0 or 1 times no
	// matter how many cycles replay the entry.
	done          bool
	completedOnce bool
}

// seqRecord is one slot in the sequence slab.
type seqRecord struct {
	gen   uint32
	alive bool
	fresh bool

	ownerSeq int32 // parent sequence slot, or -1 when top-level

	// running splits the lifecycle into a building phase (Chain/Group/Insert
	// allowed) and a running phase (entries immutable). The transition happens
	// on the first tick, or when the sequence is claimed by a parent.
	running  bool
	paused   bool
	unscaled bool

	elapsed  float64 // within the current cycle
	duration float64 // max(entry.offset + entry.duration), never the sum

	cursor  float64 // end of the chain so far; where the next Chain lands
	prevOff float64 // offset of the last appended entry; where Group anchors

	cycles int // -1 = infinite
	cycle  int

	entries    []seqEntry
	onComplete func()
}

func (s *seqRecord) lastCycle() bool {
	return s.cycles >= 0 && s.cycle >= s.cycles-1
}

// SequenceHandle is a generation-checked reference to a pooled sequence.
// Builder methods return the same handle for fluent composition. Like Handle,
// every operation on a dead or stale SequenceHandle is a safe no-op.
type SequenceHandle struct {
	e   *Engine
	idx int32
	gen uint32
}

// NewSequence acquires a sequence slot in the building state. Add entries
// with Chain, Group, Insert and their callback/delay/sub-sequence variants;
// the sequence starts running on the engine's next Update tick.
func (e *Engine) NewSequence() SequenceHandle {
	i := e.seqs.acquire()
	if cap(e.deferredSeqs) < len(e.seqs.slots) {
		e.reserve(len(e.seqs.slots))
	}
	s := &e.seqs.slots[i]
	gen := s.gen
	entries := s.entries[:0] // reuse the slot's backing array
	*s = seqRecord{
		gen:      gen,
		alive:    true,
		fresh:    e.inUpdate,
		ownerSeq: -1,
		cycles:   1,
		entries:  entries,
	}
	return SequenceHandle{e: e, idx: i, gen: gen}
}

// rec resolves the handle to its live record, or nil when dead or stale.
func (sh SequenceHandle) rec() *seqRecord {
	if sh.e == nil || int(sh.idx) >= len(sh.e.seqs.slots) {
		return nil
	}
	s := &sh.e.seqs.slots[sh.idx]
	if !s.alive || s.gen != sh.gen {
		return nil
	}
	return s
}

// builder resolves the handle for a building-phase operation. Returns nil for
// dead handles (the operation becomes a no-op) and panics once the sequence
// is running, since entry offsets are immutable from that point.
func (sh SequenceHandle) builder() *seqRecord {
	s := sh.rec()
	if s == nil {
		return nil
	}
	if s.running {
		panic("sway: sequence entries are immutable once running")
	}
	return s
}

// --- Building ---

// Chain appends the tween after the end of everything added so far: its
// offset is the current chain cursor, and the cursor moves to the entry's
// end time.
func (sh SequenceHandle) Chain(h Handle) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	slot, gen, env := sh.claimTween(h)
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryTween, offset: s.cursor, duration: env, slot: slot, gen: gen,
	}, true)
	return sh
}

// Group appends the tween at the start time of the previously added entry so
// the two run concurrently. The chain cursor still extends if this entry ends
// later than anything before it.
func (sh SequenceHandle) Group(h Handle) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	slot, gen, env := sh.claimTween(h)
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryTween, offset: s.prevOff, duration: env, slot: slot, gen: gen,
	}, true)
	return sh
}

// Insert places the tween at an explicit absolute offset. The chain cursor is
// unaffected. Offsets earlier than already-placed entries are permitted:
// placement is independent of authoring order.
func (sh SequenceHandle) Insert(at float64, h Handle) SequenceHandle {
	if at < 0 {
		panic("sway: negative insert offset")
	}
	s := sh.builder()
	if s == nil {
		return sh
	}
	_ = s
	slot, gen, env := sh.claimTween(h)
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryTween, offset: at, duration: env, slot: slot, gen: gen,
	}, false)
	return sh
}

// ChainDelay appends pure silence after the chain: the next Chain starts this
// much later.
func (sh SequenceHandle) ChainDelay(d float64) SequenceHandle {
	if d < 0 {
		panic("sway: negative delay")
	}
	s := sh.builder()
	if s == nil {
		return sh
	}
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryDelay, offset: s.cursor, duration: d,
	}, true)
	return sh
}

// ChainCallback appends a zero-duration side effect at the current chain
// cursor. It fires when the sequence's clock reaches that time, even if a
// single oversized tick jumps past it.
func (sh SequenceHandle) ChainCallback(fn func()) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryCallback, offset: s.cursor, fn: fn,
	}, true)
	return sh
}

// GroupCallback appends a zero-duration side effect at the start time of the
// previously added entry.
func (sh SequenceHandle) GroupCallback(fn func()) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryCallback, offset: s.prevOff, fn: fn,
	}, true)
	return sh
}

// InsertCallback places a zero-duration side effect at an explicit absolute
// offset.
func (sh SequenceHandle) InsertCallback(at float64, fn func()) SequenceHandle {
	if at < 0 {
		panic("sway: negative insert offset")
	}
	s := sh.builder()
	if s == nil {
		return sh
	}
	_ = s
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entryCallback, offset: at, fn: fn,
	}, false)
	return sh
}

// ChainSequence appends a sub-sequence after the chain, following the same
// cursor rules as Chain.
func (sh SequenceHandle) ChainSequence(child SequenceHandle) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	slot, gen, env := sh.claimSequence(child)
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entrySequence, offset: s.cursor, duration: env, slot: slot, gen: gen,
	}, true)
	return sh
}

// GroupSequence appends a sub-sequence at the start time of the previously
// added entry.
func (sh SequenceHandle) GroupSequence(child SequenceHandle) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	slot, gen, env := sh.claimSequence(child)
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entrySequence, offset: s.prevOff, duration: env, slot: slot, gen: gen,
	}, true)
	return sh
}

// InsertSequence places a sub-sequence at an explicit absolute offset.
func (sh SequenceHandle) InsertSequence(at float64, child SequenceHandle) SequenceHandle {
	if at < 0 {
		panic("sway: negative insert offset")
	}
	s := sh.builder()
	if s == nil {
		return sh
	}
	_ = s
	slot, gen, env := sh.claimSequence(child)
	sh.e.appendSeqEntry(sh.idx, seqEntry{
		kind: entrySequence, offset: at, duration: env, slot: slot, gen: gen,
	}, false)
	return sh
}

// OnComplete sets the callback fired once when the sequence finishes all
// cycles naturally. Does not fire on Stop.
func (sh SequenceHandle) OnComplete(fn func()) SequenceHandle {
	s := sh.builder()
	if s == nil {
		return sh
	}
	s.onComplete = fn
	return sh
}

// Cycles sets how many times the whole sequence plays (restart semantics
// between cycles). -1 means infinite; infinite sequences cannot be claimed by
// a parent sequence.
func (sh SequenceHandle) Cycles(n int) SequenceHandle {
	if n == 0 || n < -1 {
		panic("sway: invalid cycle count")
	}
	s := sh.builder()
	if s == nil {
		return sh
	}
	s.cycles = n
	return sh
}

// SetUnscaledTime makes the sequence advance on the raw frame dt, ignoring
// the global time scale. Owned entries follow the sequence's clock.
func (sh SequenceHandle) SetUnscaledTime(unscaled bool) SequenceHandle {
	if s := sh.rec(); s != nil {
		s.unscaled = unscaled
	}
	return sh
}

// claimTween transfers ownership of the tween to this sequence: the record
// stops self-advancing and is driven by the sequence's clock from then on.
func (sh SequenceHandle) claimTween(h Handle) (int32, uint32, float64) {
	if h.e != sh.e {
		panic("sway: tween belongs to a different engine")
	}
	r := h.record()
	if r == nil {
		panic("sway: cannot add a dead tween to a sequence")
	}
	if r.ownerSeq >= 0 {
		panic("sway: tween is already owned by a sequence")
	}
	if r.cycles < 0 {
		panic("sway: infinite tween cannot join a sequence")
	}
	r.ownerSeq = sh.idx
	r.paused = false
	r.finished = false
	r.elapsed = 0
	r.cycle = 0
	r.delayLeft = r.startDelay
	return h.idx, r.gen, r.envelope()
}

// claimSequence transfers ownership of a built sub-sequence to this sequence.
func (sh SequenceHandle) claimSequence(child SequenceHandle) (int32, uint32, float64) {
	if child.e != sh.e {
		panic("sway: sequence belongs to a different engine")
	}
	cs := child.rec()
	if cs == nil {
		panic("sway: cannot add a dead sequence to a sequence")
	}
	if cs.running {
		panic("sway: cannot add a running sequence to a sequence")
	}
	if cs.ownerSeq >= 0 {
		panic("sway: sequence is already owned by a sequence")
	}
	if cs.cycles < 0 {
		panic("sway: infinite sequence cannot join a sequence")
	}
	if child.idx == sh.idx {
		panic("sway: sequence cannot contain itself")
	}
	// A parent chain reaching the child would form a cycle.
	for p := sh.e.seqs.slots[sh.idx].ownerSeq; p >= 0; p = sh.e.seqs.slots[p].ownerSeq {
		if p == child.idx {
			panic("sway: sequence cycle detected")
		}
	}
	cs.ownerSeq = sh.idx
	cs.running = true // entries frozen once claimed
	cs.paused = false
	cs.elapsed = 0
	cs.cycle = 0
	return child.idx, cs.gen, cs.duration * float64(cs.cycles)
}

// appendSeqEntry adds an entry and maintains the derived fields: total
// duration is always the max end time across entries, the previous-offset
// anchor moves to this entry, and chained placement extends the cursor.
func (e *Engine) appendSeqEntry(i int32, en seqEntry, chained bool) {
	s := &e.seqs.slots[i]
	s.entries = append(s.entries, en)
	end := en.offset + en.duration
	if end > s.duration {
		s.duration = end
	}
	s.prevOff = en.offset
	if chained && end > s.cursor {
		s.cursor = end
	}
}

// --- Control surface ---

// IsAlive reports whether the handle still references a live sequence.
func (sh SequenceHandle) IsAlive() bool {
	return sh.rec() != nil
}

// Stop kills the sequence and transitively stops every not-yet-completed
// child exactly once. OnComplete callbacks do not fire. No-op on a dead or
// stale handle.
func (sh SequenceHandle) Stop() {
	if sh.rec() == nil {
		return
	}
	sh.e.stopSequence(sh.idx)
}

// Complete jumps the sequence to the end of its final cycle: remaining
// entries are driven to their end values, child and sequence completion
// callbacks fire exactly once, and every owned slot is released. For
// infinite sequences the current cycle becomes the last. No-op on a dead or
// stale handle.
func (sh SequenceHandle) Complete() {
	s := sh.rec()
	if s == nil {
		return
	}
	s.running = true
	if s.cycles < 0 {
		s.cycles = s.cycle + 1
	}
	s.cycle = s.cycles - 1
	s.elapsed = s.duration
	sh.e.driveSequence(sh.idx, s.duration, true)
	if sh.rec() == nil {
		return
	}
	sh.e.completeSequence(sh.idx)
}

// SetPaused freezes or resumes the sequence's clock. No-op on a dead handle.
func (sh SequenceHandle) SetPaused(paused bool) {
	if s := sh.rec(); s != nil {
		s.paused = paused
	}
}

// Paused reports whether the sequence is paused. False for dead handles.
func (sh SequenceHandle) Paused() bool {
	s := sh.rec()
	return s != nil && s.paused
}

// Progress returns raw progress within the current cycle in [0, 1].
// Returns 0 for a dead or stale handle.
func (sh SequenceHandle) Progress() float64 {
	s := sh.rec()
	if s == nil || s.duration <= 0 {
		return 0
	}
	t := s.elapsed / s.duration
	if t > 1 {
		t = 1
	}
	return t
}

// ElapsedTime returns seconds elapsed within the current cycle.
// Returns 0 for a dead or stale handle.
func (sh SequenceHandle) ElapsedTime() float64 {
	s := sh.rec()
	if s == nil {
		return 0
	}
	return s.elapsed
}

// Duration returns the sequence's single-cycle duration: the maximum end time
// across entries. Returns 0 for a dead or stale handle.
func (sh SequenceHandle) Duration() float64 {
	s := sh.rec()
	if s == nil {
		return 0
	}
	return s.duration
}

// --- Running ---

// advanceSequence moves one top-level sequence forward by one tick, wrapping
// cycles as needed. Claimed sub-sequences are driven by their parent instead.
func (e *Engine) advanceSequence(i int32, scaledDt, rawDt float64) {
	s := &e.seqs.slots[i]
	if !s.alive || s.fresh || s.ownerSeq >= 0 || s.paused {
		return
	}
	dt := scaledDt
	if s.unscaled {
		dt = rawDt
	}
	if !s.running {
		s.running = true
	}

	if s.duration <= 0 {
		// Empty or zero-length: fire zero-offset callbacks and complete.
		e.driveSequence(i, 0, true)
		if s = &e.seqs.slots[i]; !s.alive {
			return
		}
		e.completeSequence(i)
		return
	}

	s.elapsed += dt

	// Finish out whole cycles skipped by an oversized dt. Sub-tick entries
	// still complete deterministically because each cycle is driven to its
	// full duration before wrapping.
	for s.elapsed >= s.duration && !s.lastCycle() {
		e.driveSequence(i, s.duration, false)
		if s = &e.seqs.slots[i]; !s.alive {
			return
		}
		s.cycle++
		s.elapsed -= s.duration
		e.resetSequenceCycle(i)
	}

	atEnd := false
	local := s.elapsed
	if local >= s.duration {
		local = s.duration
		atEnd = true
	}
	final := atEnd && s.lastCycle()
	e.driveSequence(i, local, final)
	if s = &e.seqs.slots[i]; !s.alive {
		return
	}
	if final {
		e.completeSequence(i)
	}
}

// driveSequence forwards the sequence's local time to every entry whose
// interval has started, in registration order. Entries whose interval has
// fully passed are driven to completion exactly once per cycle. When final is
// set, completed children also release their pool slots.
//
// The generation is captured up front: a callback entry may stop this very
// sequence, and outside an Update pass the freed slot can be reacquired
// before the loop finishes. A bare alive check would then see the new
// occupant.
func (e *Engine) driveSequence(i int32, local float64, final bool) {
	gen := e.seqs.slots[i].gen
	n := len(e.seqs.slots[i].entries)
	for j := 0; j < n; j++ {
		s := &e.seqs.slots[i]
		if !s.alive || s.gen != gen {
			return
		}
		en := &s.entries[j]
		if en.done || local < en.offset {
			continue
		}
		localT := local - en.offset
		ended := localT >= en.duration
		switch en.kind {
		case entryCallback:
			en.done = true
			if en.fn != nil {
				en.fn()
			}
		case entryDelay:
			if ended {
				en.done = true
			}
		case entryTween:
			if ended {
				e.finishOwnedTween(i, j, final)
			} else {
				e.seekOwnedTween(i, j, localT)
			}
		case entrySequence:
			if ended {
				e.finishOwnedSequence(i, j, final)
			} else {
				e.seekOwnedSequence(i, j, localT)
			}
		}
	}
}

// resetSequenceCycle clears per-cycle entry state after a wrap, including the
// replay state of claimed sub-sequences. Completion-once guards are kept.
func (e *Engine) resetSequenceCycle(i int32) {
	s := &e.seqs.slots[i]
	for j := range s.entries {
		en := &s.entries[j]
		en.done = false
		if en.kind == entrySequence {
			cs := &e.seqs.slots[en.slot]
			if cs.alive && cs.gen == en.gen {
				cs.cycle = 0
				cs.elapsed = 0
				e.resetSequenceCycle(en.slot)
			}
		}
	}
}

// seekOwnedTween drives a claimed tween to an absolute local time within its
// envelope, bypassing the record's independent clock.
func (e *Engine) seekOwnedTween(seqIdx int32, j int, localT float64) {
	en := &e.seqs.slots[seqIdx].entries[j]
	ti := en.slot
	r := &e.tweens.slots[ti]
	if !r.alive || r.gen != en.gen {
		en.done = true // stopped or completed externally
		return
	}
	if r.target != nil {
		gone := r.target.IsDisposed()
		r = &e.tweens.slots[ti] // user code ran: reload
		if !r.alive || r.gen != en.gen {
			return
		}
		if gone {
			e.logTargetGone()
			e.killTween(ti)
			e.seqs.slots[seqIdx].entries[j].done = true
			return
		}
	}
	if localT < r.startDelay {
		return
	}
	at := localT - r.startDelay
	if r.readFrom != nil && !r.fromRead {
		from := r.readFrom(r.target)
		r = &e.tweens.slots[ti]
		if !r.alive || r.gen != en.gen {
			return
		}
		from.Kind = r.to.Kind
		r.from = from
		r.fromRead = true
	}
	if r.duration > 0 {
		c := int(at / r.duration)
		if c > r.cycles-1 {
			c = r.cycles - 1
		}
		r.cycle = c
		r.elapsed = at - float64(c)*r.duration
		if r.elapsed > r.duration {
			// Inside the end delay: hold the final value.
			r.elapsed = r.duration
		}
	} else {
		if r.cycles >= 1 {
			r.cycle = r.cycles - 1
		}
		r.elapsed = 0
	}
	t := 1.0
	if r.duration > 0 {
		t = r.elapsed / r.duration
		if t > 1 {
			t = 1
		}
	}
	if r.onUpdate != nil {
		r.onUpdate(r.target, r.valueAt(t))
	}
}

// finishOwnedTween drives a claimed tween to its end value and fires its
// completion callback once across the sequence's whole life, even when a
// single tick (or a skipped cycle) jumps past the entry's entire interval.
// The slot is released only on the sequence's final cycle.
func (e *Engine) finishOwnedTween(seqIdx int32, j int, final bool) {
	en := &e.seqs.slots[seqIdx].entries[j]
	en.done = true
	ti := en.slot
	r := &e.tweens.slots[ti]
	if !r.alive || r.gen != en.gen {
		return
	}
	if r.target != nil {
		gone := r.target.IsDisposed()
		r = &e.tweens.slots[ti] // user code ran: reload
		if !r.alive || r.gen != en.gen {
			return
		}
		if gone {
			e.logTargetGone()
			e.killTween(ti)
			return
		}
	}
	if r.cycles >= 1 {
		r.cycle = r.cycles - 1
	}
	r.elapsed = r.duration
	if r.readFrom != nil && !r.fromRead {
		from := r.readFrom(r.target)
		r = &e.tweens.slots[ti]
		if !r.alive || r.gen != en.gen {
			return
		}
		from.Kind = r.to.Kind
		r.from = from
		r.fromRead = true
	}
	if r.onUpdate != nil {
		r.onUpdate(r.target, r.valueAt(1))
		r = &e.tweens.slots[ti]
		en = &e.seqs.slots[seqIdx].entries[j]
		if !r.alive || r.gen != en.gen {
			return
		}
	}
	if !en.completedOnce {
		en.completedOnce = true
		done := r.onComplete
		tgt := r.target
		if final {
			e.killTween(ti)
		}
		if done != nil {
			done(tgt)
		}
	} else if final {
		e.killTween(ti)
	}
}

// seekOwnedSequence drives a claimed sub-sequence to an absolute local time,
// replaying any child cycles a large tick skipped over.
func (e *Engine) seekOwnedSequence(seqIdx int32, j int, localT float64) {
	en := &e.seqs.slots[seqIdx].entries[j]
	ci := en.slot
	cs := &e.seqs.slots[ci]
	if !cs.alive || cs.gen != en.gen {
		en.done = true
		return
	}
	if cs.duration <= 0 {
		return // zero-length child; completion handled by the finish path
	}
	c := int(localT / cs.duration)
	if c > cs.cycles-1 {
		c = cs.cycles - 1
	}
	// Finish out skipped child cycles so sub-tick entries still complete.
	for cs.cycle < c {
		e.driveSequence(ci, cs.duration, false)
		cs = &e.seqs.slots[ci]
		if !cs.alive || cs.gen != en.gen {
			return
		}
		cs.cycle++
		e.resetSequenceCycle(ci)
	}
	cs.elapsed = localT - float64(c)*cs.duration
	if cs.elapsed > cs.duration {
		cs.elapsed = cs.duration
	}
	e.driveSequence(ci, cs.elapsed, false)
}

// finishOwnedSequence drives a claimed sub-sequence to the end of all its
// cycles and fires its completion callback once across the parent's life.
func (e *Engine) finishOwnedSequence(seqIdx int32, j int, final bool) {
	en := &e.seqs.slots[seqIdx].entries[j]
	en.done = true
	ci := en.slot
	cs := &e.seqs.slots[ci]
	if !cs.alive || cs.gen != en.gen {
		return
	}
	for !cs.lastCycle() {
		e.driveSequence(ci, cs.duration, false)
		cs = &e.seqs.slots[ci]
		if !cs.alive || cs.gen != en.gen {
			return
		}
		cs.cycle++
		e.resetSequenceCycle(ci)
	}
	cs.elapsed = cs.duration
	e.driveSequence(ci, cs.duration, final)
	cs = &e.seqs.slots[ci]
	en = &e.seqs.slots[seqIdx].entries[j]
	if !cs.alive || cs.gen != en.gen {
		return
	}
	if !en.completedOnce {
		en.completedOnce = true
		done := cs.onComplete
		if final {
			e.releaseSequenceChildren(ci)
			e.killSequence(ci)
		}
		if done != nil {
			done()
		}
	} else if final {
		e.releaseSequenceChildren(ci)
		e.killSequence(ci)
	}
}

// completeSequence finishes a top-level sequence: any owned slots that
// survived the final drive (entries completed on an earlier cycle keep their
// children alive for replay) are released, then the sequence's completion
// callback fires and the slot is freed.
func (e *Engine) completeSequence(i int32) {
	e.releaseSequenceChildren(i)
	s := &e.seqs.slots[i]
	done := s.onComplete
	e.killSequence(i)
	if done != nil {
		done()
	}
}

// stopSequence kills the sequence and transitively stops every owned child
// that is still live. Generation checks make double-release impossible:
// children that already completed naturally no longer match their entry.
func (e *Engine) stopSequence(i int32) {
	e.releaseSequenceChildren(i)
	e.killSequence(i)
}

// releaseSequenceChildren returns every still-live owned child to its pool
// without firing completion callbacks.
func (e *Engine) releaseSequenceChildren(i int32) {
	s := &e.seqs.slots[i]
	for j := range s.entries {
		en := &s.entries[j]
		switch en.kind {
		case entryTween:
			r := &e.tweens.slots[en.slot]
			if r.alive && r.gen == en.gen {
				e.killTween(en.slot)
			}
		case entrySequence:
			cs := &e.seqs.slots[en.slot]
			if cs.alive && cs.gen == en.gen {
				e.stopSequence(en.slot)
			}
		}
	}
}

// killSequence marks the slot dead, bumps its generation, clears entry state
// (keeping the backing array for reuse), and returns the slot to the free
// list (deferred while an Update pass is running).
func (e *Engine) killSequence(i int32) {
	s := &e.seqs.slots[i]
	s.alive = false
	s.gen++
	s.onComplete = nil
	for j := range s.entries {
		s.entries[j] = seqEntry{}
	}
	s.entries = s.entries[:0]
	if e.inUpdate {
		e.deferredSeqs = append(e.deferredSeqs, i)
	} else {
		e.seqs.free = append(e.seqs.free, i)
	}
}
