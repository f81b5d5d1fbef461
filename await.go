package sway

// Await repeatedly invokes step until the tween is no longer alive. step is
// expected to advance the engine, typically by running one frame of the host
// loop. This is the coroutine-style adapter over the synchronous engine: the
// engine itself never blocks or suspends, so waiting is a poll per scheduling
// pass layered on top.
//
//	sway.Await(h, func() { engine.Update(1.0 / 60.0) })
func Await(h Handle, step func()) {
	for h.IsAlive() {
		step()
	}
}

// AwaitSequence is Await for sequences.
func AwaitSequence(sh SequenceHandle, step func()) {
	for sh.IsAlive() {
		step()
	}
}
