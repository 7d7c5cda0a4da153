package sim

import (
	"math"
	"time"
)

// Params holds the motion constants for all variants. Velocities are in
// pixels per frame.
type Params struct {
	Accel          float64
	Friction       float64
	MaxSpeed       float64
	Bounce         float64
	Restitution    float64
	Gravity        float64
	GroundFriction float64
	JumpImpulse    float64
	RestThreshold  float64
	Flash          time.Duration
}

// Input is the player input sampled for one frame.
type Input struct {
	Up, Down, Left, Right bool
	// Jump is the edge-triggered jump request used by the gravity variant.
	Jump bool

	Cursor Vec2
	// MouseHeld is true while the primary button is down.
	MouseHeld bool
	// MousePressed and MouseReleased are true only on the transition frame.
	MousePressed  bool
	MouseReleased bool
}

// StepResult reports what happened during one World.Step.
type StepResult struct {
	// Hit is true on the first frame of a new overlap.
	Hit bool
	// Overlapping is true on every frame the balls touched.
	Overlapping bool
}

// World owns the two balls and the canvas they live on.
type World struct {
	params  Params
	variant Variant

	width, height float64

	key   Ball
	mouse Ball

	initKey   Ball
	initMouse Ball

	lastCursor  Vec2
	overlapping bool
	collisions  int
}

// NewWorld builds a world on a width x height canvas. key is driven by the
// keyboard and mouse by the pointer.
func NewWorld(params Params, key, mouse Ball, variant Variant, width, height float64) *World {
	key.Color = key.BaseColor
	mouse.Color = mouse.BaseColor
	w := &World{
		params:    params,
		variant:   variant,
		width:     width,
		height:    height,
		key:       key,
		mouse:     mouse,
		initKey:   key,
		initMouse: mouse,
	}
	w.key.ClampTo(width, height)
	w.mouse.ClampTo(width, height)
	return w
}

func (w *World) Variant() Variant { return w.variant }

// KeyBall returns the keyboard-driven ball.
func (w *World) KeyBall() *Ball { return &w.key }

// MouseBall returns the pointer-driven ball.
func (w *World) MouseBall() *Ball { return &w.mouse }

// Size returns the canvas dimensions.
func (w *World) Size() (float64, float64) { return w.width, w.height }

// Collisions counts distinct collisions since the last reset.
func (w *World) Collisions() int { return w.collisions }

// SetVariant switches the motion model. Velocities are cleared and any drag
// is released so the new variant starts from rest.
func (w *World) SetVariant(v Variant) {
	if !v.Valid() || v == w.variant {
		return
	}
	w.variant = v
	w.key.Vel = Vec2{}
	w.mouse.Vel = Vec2{}
	w.mouse.Grabbed = false
	w.key.Color = w.key.restingColor()
	w.mouse.Color = w.mouse.restingColor()
}

// Resize changes the canvas size and keeps both balls inside it.
func (w *World) Resize(width, height float64) {
	w.width, w.height = width, height
	w.key.ClampTo(width, height)
	w.mouse.ClampTo(width, height)
}

// Reset puts both balls back where they started.
func (w *World) Reset() {
	w.key = w.initKey
	w.mouse = w.initMouse
	w.key.ClampTo(w.width, w.height)
	w.mouse.ClampTo(w.width, w.height)
	w.overlapping = false
	w.collisions = 0
}

// Step advances the world by one frame.
func (w *World) Step(in Input, now time.Time) StepResult {
	w.handlePointer(in)

	switch w.variant {
	case VariantVelocity:
		w.stepVelocity(in)
	case VariantGravity:
		w.stepGravity(in)
	default:
		w.stepDrag(in)
	}

	w.key.ClampTo(w.width, w.height)
	w.mouse.ClampTo(w.width, w.height)

	overlap := Collide(&w.key, &w.mouse, CollideOptions{
		Exchange:    w.variant != VariantDrag,
		Restitution: w.params.Restitution,
		Now:         now,
		Flash:       w.params.Flash,
	})
	if overlap {
		w.key.ClampTo(w.width, w.height)
		w.mouse.ClampTo(w.width, w.height)
	}

	res := StepResult{Overlapping: overlap, Hit: overlap && !w.overlapping}
	if res.Hit {
		w.collisions++
	}
	w.overlapping = overlap

	w.key.refreshColor(now)
	w.mouse.refreshColor(now)
	return res
}

// handlePointer grabs, drags and releases the mouse ball.
func (w *World) handlePointer(in Input) {
	m := &w.mouse
	if m.Grabbed && (in.MouseReleased || !in.MouseHeld) {
		m.Grabbed = false
	}
	if in.MousePressed && !m.Grabbed && m.Contains(in.Cursor) {
		m.Grabbed = true
		m.Vel = Vec2{}
		w.lastCursor = in.Cursor
	}
	if !m.Grabbed {
		return
	}
	if w.variant != VariantDrag {
		m.Vel = in.Cursor.Sub(w.lastCursor).Limit(w.params.MaxSpeed)
	}
	m.Pos = in.Cursor
	w.lastCursor = in.Cursor
}

func (w *World) stepDrag(in Input) {
	k := &w.key
	if in.Up {
		k.Pos.Y -= k.Speed
	}
	if in.Down {
		k.Pos.Y += k.Speed
	}
	if in.Left {
		k.Pos.X -= k.Speed
	}
	if in.Right {
		k.Pos.X += k.Speed
	}
}

// accelFor turns the held direction keys into an acceleration vector.
func (w *World) accelFor(in Input, vertical bool) Vec2 {
	var acc Vec2
	if vertical && in.Up {
		acc.Y -= w.params.Accel
	}
	if in.Down {
		acc.Y += w.params.Accel
	}
	if in.Left {
		acc.X -= w.params.Accel
	}
	if in.Right {
		acc.X += w.params.Accel
	}
	return acc
}

func (w *World) stepVelocity(in Input) {
	w.key.Vel = w.key.Vel.Add(w.accelFor(in, true))
	for _, b := range []*Ball{&w.key, &w.mouse} {
		if b.Grabbed {
			continue
		}
		b.Vel = b.Vel.Scale(w.params.Friction).Limit(w.params.MaxSpeed)
		b.Pos = b.Pos.Add(b.Vel)
		w.bounceWalls(b)
	}
}

func (w *World) stepGravity(in Input) {
	k := &w.key
	k.Vel = k.Vel.Add(w.accelFor(in, false))
	if (in.Jump || in.Up) && w.onFloor(k) {
		k.Vel.Y = -w.params.JumpImpulse
	}
	for _, b := range []*Ball{&w.key, &w.mouse} {
		if b.Grabbed {
			continue
		}
		b.Vel.Y += w.params.Gravity
		b.Vel.X *= w.params.Friction
		b.Vel = b.Vel.Limit(w.params.MaxSpeed)
		b.Pos = b.Pos.Add(b.Vel)
		w.bounceWalls(b)
		if w.onFloor(b) {
			b.Vel.X *= w.params.GroundFriction
			if math.Abs(b.Vel.Y) < w.params.RestThreshold {
				b.Vel.Y = 0
			}
		}
	}
}

// onFloor reports whether b rests on the bottom edge of the canvas.
func (w *World) onFloor(b *Ball) bool {
	return b.Pos.Y >= w.height-b.Radius-floorEpsilon
}

const floorEpsilon = 0.5

// bounceWalls reflects b off the canvas edges, losing energy by Bounce.
func (w *World) bounceWalls(b *Ball) {
	r := b.Radius
	if b.Pos.X < r {
		b.Pos.X = r
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * w.params.Bounce
		}
	} else if b.Pos.X > w.width-r {
		b.Pos.X = w.width - r
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * w.params.Bounce
		}
	}
	if b.Pos.Y < r {
		b.Pos.Y = r
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * w.params.Bounce
		}
	} else if b.Pos.Y > w.height-r {
		b.Pos.Y = w.height - r
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * w.params.Bounce
		}
	}
}
