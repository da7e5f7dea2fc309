package slidemenu

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

// Scroller computes the positions of an animated horizontal scroll.
//
// The scroller does not animate by itself.
// The owner has to call ComputeScrollOffset on every frame and apply CurrX.
type Scroller struct {
	curve fyne.AnimationCurve
	now   func() time.Time

	currX     float32
	duration  time.Duration
	dx        float32
	finished  bool
	startTime time.Time
	startX    float32
}

// NewScroller returns a new scroller. A nil curve means [ViscousFluid] and a nil now means [time.Now].
func NewScroller(curve fyne.AnimationCurve, now func() time.Time) *Scroller {
	if curve == nil {
		curve = ViscousFluid
	}
	if now == nil {
		now = time.Now
	}
	return &Scroller{curve: curve, now: now, finished: true}
}

// StartScroll starts scrolling from startX by dx over duration.
// A running scroll is replaced.
func (s *Scroller) StartScroll(startX, dx float32, duration time.Duration) {
	s.startX = startX
	s.dx = dx
	s.currX = startX
	s.duration = duration
	s.startTime = s.now()
	s.finished = false
}

// ComputeScrollOffset updates the current position.
// It reports false when the scroll had already finished.
// The call which reaches the end lands exactly on the final position and still reports true.
func (s *Scroller) ComputeScrollOffset() bool {
	if s.finished {
		return false
	}
	elapsed := s.now().Sub(s.startTime)
	if elapsed < s.duration {
		p := float32(elapsed) / float32(s.duration)
		s.currX = s.startX + s.dx*s.curve(p)
		return true
	}
	s.currX = s.FinalX()
	s.finished = true
	return true
}

// AbortAnimation stops the scroll and moves to the final position.
func (s *Scroller) AbortAnimation() {
	s.currX = s.FinalX()
	s.finished = true
}

// CurrX returns the current position.
func (s *Scroller) CurrX() float32 {
	return s.currX
}

// FinalX returns the position where the current scroll ends.
func (s *Scroller) FinalX() float32 {
	return s.startX + s.dx
}

// IsFinished reports whether the scroll has finished.
func (s *Scroller) IsFinished() bool {
	return s.finished
}

const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1.0 / viscousFluid(1.0)
	viscousFluidOffset    = 1.0 - viscousFluidNormalize*viscousFluid(1.0)
)

func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		return x - (1.0 - math.Exp(-x))
	}
	const start = 0.36787944117 // 1/e == exp(-1)
	x = 1.0 - math.Exp(1.0-x)
	return start + x*(1.0-start)
}

// ViscousFluid is an animation curve which accelerates quickly and then slowly comes to a rest.
func ViscousFluid(p float32) float32 {
	v := viscousFluidNormalize * viscousFluid(float64(p))
	if v > 0 {
		v += viscousFluidOffset
	}
	return float32(v)
}
