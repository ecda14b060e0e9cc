// Package transition provides reusable transition effects for the screen
// manager: alpha blending, sliding and pushing, all driven by a fixed
// duration and an easing function.
package transition

// Timed tracks the progress of a fixed-duration transition. Effects embed
// it and call Advance once per rendered frame; it supplies the Reset,
// Done, Resize, Dispose and Initialized parts of the transition contract.
type Timed struct {
	duration float64
	ease     Ease
	elapsed  float64
}

// NewTimed creates a progress tracker for a transition lasting duration
// seconds. A nil ease defaults to Linear.
func NewTimed(duration float64, ease Ease) Timed {
	if ease == nil {
		ease = Linear
	}
	return Timed{duration: duration, ease: ease}
}

// Reset re-arms the transition for a new play.
func (t *Timed) Reset() {
	t.elapsed = 0
}

// Advance adds dt to the elapsed time and returns the eased progress,
// clamped to [0,1].
func (t *Timed) Advance(dt float64) float64 {
	t.elapsed += dt
	return t.Progress()
}

// Progress returns the eased progress in [0,1] without advancing time.
func (t *Timed) Progress() float64 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.ease(1)
	}
	return t.ease(t.elapsed / t.duration)
}

// Done reports whether the full duration has elapsed.
func (t *Timed) Done() bool {
	return t.elapsed >= t.duration
}

// Resize is a no-op; timed effects derive their geometry from the target
// they render onto.
func (t *Timed) Resize(width, height int) {}

// Dispose is a no-op.
func (t *Timed) Dispose() {}

// Initialized always reports true; timed effects hold no deferred
// resources.
func (t *Timed) Initialized() bool {
	return true
}
