package anim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Skill counter pacing: the displayed percentage climbs in CounterSteps
// increments, one every CounterInterval, and each skill starts SkillStagger
// after the previous one.
const (
	CounterSteps    = 50
	CounterInterval = 30 * time.Millisecond
	SkillStagger    = 200 * time.Millisecond
)

// CounterFrames returns the values a counter shows while climbing to
// target: CounterSteps evenly spaced values ending exactly at target.
func CounterFrames(target int) []int {
	if target <= 0 {
		return []int{0}
	}
	raw := make([]float64, CounterSteps)
	floats.Span(raw, float64(target)/CounterSteps, float64(target))
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = int(math.Floor(v + 1e-9))
	}
	out[len(out)-1] = target
	return out
}

// SkillAnimation plays the staggered counters for a list of skill levels.
type SkillAnimation struct {
	frames [][]int
}

// NewSkillAnimation precomputes the frames for levels (percentages, clamped
// to 0..100).
func NewSkillAnimation(levels []int) *SkillAnimation {
	a := &SkillAnimation{frames: make([][]int, len(levels))}
	for i, l := range levels {
		if l < 0 {
			l = 0
		}
		if l > 100 {
			l = 100
		}
		a.frames[i] = CounterFrames(l)
	}
	return a
}

// At returns the counter value of skill i after elapsed time.
func (a *SkillAnimation) At(i int, elapsed time.Duration) int {
	if i < 0 || i >= len(a.frames) {
		return 0
	}
	start := time.Duration(i) * SkillStagger
	if elapsed < start {
		return 0
	}
	frame := int((elapsed - start) / CounterInterval)
	frames := a.frames[i]
	if frame >= len(frames) {
		return frames[len(frames)-1]
	}
	return frames[frame]
}

// Duration returns how long the whole animation runs.
func (a *SkillAnimation) Duration() time.Duration {
	if len(a.frames) == 0 {
		return 0
	}
	last := len(a.frames) - 1
	return time.Duration(last)*SkillStagger + time.Duration(CounterSteps)*CounterInterval
}

// Done reports whether every counter has reached its target.
func (a *SkillAnimation) Done(elapsed time.Duration) bool {
	return elapsed >= a.Duration()
}
