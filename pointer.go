package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"
)

// pointerModel tracks the smoothed pointer used by the displacement and
// brightness models. The raw target follows the cursor (or the autopilot when
// the visitor goes idle); a spring supplies both the lagged position and the
// smoothed velocity the drift term consumes.
type pointerModel struct {
	spring harmonica.Spring

	targetX float64
	targetY float64
	x       float64
	y       float64
	vx      float64
	vy      float64

	lastInput time.Time

	autoRand   *rand.Rand
	autoDirX   float64
	autoDirY   float64
	autoFrames int
}

// newPointerModel parks the pointer at the default resting position of the
// viewport and primes the follow spring.
func newPointerModel(width, height float64, now time.Time) *pointerModel {
	p := &pointerModel{
		spring:    harmonica.NewSpring(harmonica.FPS(int(defaultTPS)), springFreq, springDamping),
		lastInput: now,
		autoRand:  rand.New(rand.NewSource(now.UnixNano() + 1)),
	}
	p.targetX = 0.5 * width
	p.targetY = 0.45 * height
	p.x = p.targetX
	p.y = p.targetY
	return p
}

// setTarget records a real pointer event, cancelling any autopilot wander.
func (p *pointerModel) setTarget(x, y float64, now time.Time) {
	p.targetX = x
	p.targetY = y
	p.lastInput = now
	p.autoFrames = 0
}

// step advances the spring toward the current target, running the autopilot
// first when the visitor has been idle long enough.
func (p *pointerModel) step(width, height float64, now time.Time) {
	if now.Sub(p.lastInput) > idleAutoDelay {
		p.autoWander(width, height)
	}
	p.x, p.vx = p.spring.Update(p.x, p.vx, p.targetX)
	p.y, p.vy = p.spring.Update(p.y, p.vy, p.targetY)
}

// decay bleeds off the smoothed velocity without moving the pointer, used
// while the animation is parked.
func (p *pointerModel) decay() {
	p.vx *= pointerDamp
	p.vy *= pointerDamp
}

// velocityGain normalizes the smoothed velocity magnitude into [0, 1],
// saturating at velGainMax so fast sweeps cannot produce runaway drift.
func (p *pointerModel) velocityGain() float64 {
	speed := math.Hypot(p.vx, p.vy)
	return clampFloat(speed/velGainMax, 0, 1)
}

// normalized returns the smoothed pointer position in [0, 1] viewport
// coordinates.
func (p *pointerModel) normalized(width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0.5, 0.5
	}
	return clampFloat(p.x/width, 0, 1), clampFloat(p.y/height, 0, 1)
}

// autoWander drifts the target along a pseudo-random heading, re-rolling the
// heading whenever it expires or the target would leave the safe margin.
func (p *pointerModel) autoWander(width, height float64) {
	minX := width * autoPointerMargin
	maxX := width * (1 - autoPointerMargin)
	minY := height * autoPointerMargin
	maxY := height * (1 - autoPointerMargin)
	for attempts := 0; attempts < 5; attempts++ {
		if p.autoFrames <= 0 {
			p.randomizeHeading()
		}
		nextX := p.targetX + p.autoDirX*autoPointerSpeed
		nextY := p.targetY + p.autoDirY*autoPointerSpeed
		if nextX > minX && nextX < maxX && nextY > minY && nextY < maxY {
			p.targetX = nextX
			p.targetY = nextY
			p.autoFrames--
			return
		}
		p.autoFrames = 0
	}
	p.targetX = clampFloat(p.targetX, minX, maxX)
	p.targetY = clampFloat(p.targetY, minY, maxY)
}

// randomizeHeading chooses a new wander direction and duration.
func (p *pointerModel) randomizeHeading() {
	angle := p.autoRand.Float64() * 2 * math.Pi
	p.autoDirX = math.Cos(angle)
	p.autoDirY = math.Sin(angle)
	p.autoFrames = autoHeadingMin + p.autoRand.Intn(autoHeadingJitter)
}
