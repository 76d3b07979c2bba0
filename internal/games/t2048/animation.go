package t2048

import "github.com/vovakirdan/tui48/internal/engine"

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// String returns the phase name.
func (p AnimationPhase) String() string {
	switch p {
	case PhaseSlide:
		return "slide"
	case PhasePop:
		return "pop"
	default:
		return "none"
	}
}

// animator plays the two phases that follow a move: every tile slides from
// its old cell to its new one, then merged tiles and the spawned tile pop.
type animator struct {
	slideTicks int
	popTicks   int

	phase   AnimationPhase
	ticks   int
	slides  []engine.TileMove
	merged  []engine.Pos
	spawned *engine.Spawned
}

// start begins animating a committed move.
func (a *animator) start(res engine.MoveResult) {
	a.slides = res.Moves
	a.spawned = res.Spawned
	a.merged = a.merged[:0]
	seen := make(map[engine.Pos]bool)
	for _, m := range res.Moves {
		if m.Merged && !seen[m.To] {
			seen[m.To] = true
			a.merged = append(a.merged, m.To)
		}
	}
	a.enter(PhaseSlide)
}

// enter switches to phase p, skipping phases with zero duration.
func (a *animator) enter(p AnimationPhase) {
	a.ticks = 0
	a.phase = p
	if p == PhaseSlide && a.slideTicks <= 0 {
		a.phase = PhasePop
	}
	if a.phase == PhasePop && a.popTicks <= 0 {
		a.finish()
	}
}

// step advances the animation by one tick.
func (a *animator) step() {
	if a.phase == PhaseNone {
		return
	}
	a.ticks++
	switch a.phase {
	case PhaseSlide:
		if a.ticks >= a.slideTicks {
			a.enter(PhasePop)
		}
	case PhasePop:
		if a.ticks >= a.popTicks {
			a.finish()
		}
	}
}

// finish completes any running animation.
func (a *animator) finish() {
	a.phase = PhaseNone
	a.ticks = 0
	a.slides = nil
	a.merged = a.merged[:0]
	a.spawned = nil
}

func (a *animator) active() bool {
	return a.phase != PhaseNone
}

// progress returns how far the current phase is, in [0, 1].
func (a *animator) progress() float64 {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = a.slideTicks
	case PhasePop:
		duration = a.popTicks
	default:
		return 1
	}
	if duration <= 0 {
		return 1
	}
	return min(float64(a.ticks)/float64(duration), 1)
}

// isMerged reports whether p received a merge in the animated move.
func (a *animator) isMerged(p engine.Pos) bool {
	for _, m := range a.merged {
		if m == p {
			return true
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
