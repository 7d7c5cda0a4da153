package sim

import "time"

// CollideOptions controls how an overlap between two balls is resolved.
type CollideOptions struct {
	// Exchange swaps the normal velocity components of approaching balls.
	Exchange bool
	// Restitution scales the exchanged normal velocity; 1 is a full swap.
	Restitution float64
	Now         time.Time
	// Flash is how long both balls show their flash colour. Zero disables it.
	Flash time.Duration
}

// Collide resolves an overlap between a and b and reports whether one
// occurred. Both balls are pushed apart by half the overlap along the line
// between their centres.
func Collide(a, b *Ball, opts CollideOptions) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return false
	}

	normal := Vec2{X: 1}
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}
	push := normal.Scale((minDist - dist) / 2)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)

	if opts.Exchange {
		exchangeVelocity(a, b, normal, opts.Restitution)
	}
	if opts.Flash > 0 {
		until := opts.Now.Add(opts.Flash)
		a.flash(until)
		b.flash(until)
	}
	return true
}

// exchangeVelocity applies an equal-mass impulse along normal, which points
// from a to b. Separating balls are left alone.
func exchangeVelocity(a, b *Ball, normal Vec2, restitution float64) {
	va := a.Vel.Dot(normal)
	vb := b.Vel.Dot(normal)
	if va-vb <= 0 {
		return
	}
	e := restitution
	newVA := ((1-e)*va + (1+e)*vb) / 2
	newVB := ((1+e)*va + (1-e)*vb) / 2
	a.Vel = a.Vel.Add(normal.Scale(newVA - va))
	b.Vel = b.Vel.Add(normal.Scale(newVB - vb))
}
