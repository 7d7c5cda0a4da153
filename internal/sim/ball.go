package sim

import (
	"image/color"
	"math"
	"time"
)

// Ball is one of the two circles on the canvas.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	// Speed is the per-frame keyboard step used by the drag variant.
	Speed float64

	BaseColor  color.RGBA
	FlashColor color.RGBA
	GrabColor  color.RGBA
	Color      color.RGBA

	Grabbed    bool
	flashUntil time.Time
}

// Contains reports whether p lies strictly inside the ball.
func (b *Ball) Contains(p Vec2) bool {
	return p.Sub(b.Pos).Len() < b.Radius
}

// ClampTo keeps the ball fully inside a width x height canvas. An axis
// shorter than the diameter centres the ball on that axis.
func (b *Ball) ClampTo(width, height float64) {
	b.Pos.X = clampAxis(b.Pos.X, b.Radius, width)
	b.Pos.Y = clampAxis(b.Pos.Y, b.Radius, height)
}

func clampAxis(v, r, size float64) float64 {
	if size < 2*r {
		return size / 2
	}
	return math.Max(r, math.Min(size-r, v))
}

// restingColor is the colour shown when no flash is active.
func (b *Ball) restingColor() color.RGBA {
	if b.Grabbed {
		return b.GrabColor
	}
	return b.BaseColor
}

func (b *Ball) flash(until time.Time) {
	if until.After(b.flashUntil) {
		b.flashUntil = until
	}
}

// Flashing reports whether a collision flash is still active at now.
func (b *Ball) Flashing(now time.Time) bool {
	return now.Before(b.flashUntil)
}

func (b *Ball) refreshColor(now time.Time) {
	if b.Flashing(now) {
		b.Color = b.FlashColor
		return
	}
	b.Color = b.restingColor()
}
