package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		Accel:          0.5,
		Friction:       0.98,
		MaxSpeed:       12,
		Bounce:         0.7,
		Restitution:    0.9,
		Gravity:        0.5,
		GroundFriction: 0.9,
		JumpImpulse:    12,
		RestThreshold:  0.6,
		Flash:          100 * time.Millisecond,
	}
}

func testWorld(v Variant) *World {
	key := testBall(200, 200)
	mouse := testBall(600, 200)
	mouse.BaseColor, mouse.FlashColor, mouse.GrabColor = blue, blueHit, blueGrab
	return NewWorld(testParams(), key, mouse, v, 800, 400)
}

var t0 = time.Unix(5000, 0)

func TestDragKeyboardMovesBySpeed(t *testing.T) {
	w := testWorld(VariantDrag)

	w.Step(Input{Right: true, Down: true}, t0)

	assert.Equal(t, Vec2{X: 205, Y: 205}, w.KeyBall().Pos, "diagonals are additive")

	w.Step(Input{Up: true, Left: true, Right: true}, t0)
	assert.Equal(t, Vec2{X: 205, Y: 200}, w.KeyBall().Pos, "opposing keys cancel")
}

func TestDragKeyboardClampsToCanvas(t *testing.T) {
	w := testWorld(VariantDrag)

	for i := 0; i < 200; i++ {
		w.Step(Input{Left: true, Up: true}, t0)
	}

	assert.Equal(t, Vec2{X: 40, Y: 40}, w.KeyBall().Pos)
}

func TestDragMouseGrabAndRelease(t *testing.T) {
	w := testWorld(VariantDrag)
	m := w.MouseBall()

	w.Step(Input{Cursor: Vec2{X: 100, Y: 100}, MousePressed: true, MouseHeld: true}, t0)
	assert.False(t, m.Grabbed, "press outside the ball does not grab")

	w.Step(Input{Cursor: Vec2{X: 610, Y: 190}, MousePressed: true, MouseHeld: true}, t0)
	require.True(t, m.Grabbed)
	assert.Equal(t, blueGrab, m.Color)

	w.Step(Input{Cursor: Vec2{X: 700, Y: 390}, MouseHeld: true}, t0)
	assert.Equal(t, Vec2{X: 700, Y: 360}, m.Pos, "dragged ball is clamped")
	assert.Equal(t, Vec2{}, m.Vel, "drag variant has no momentum")

	w.Step(Input{Cursor: Vec2{X: 700, Y: 390}, MouseReleased: true}, t0)
	assert.False(t, m.Grabbed)
	assert.Equal(t, blue, m.Color)
}

func TestDragCollisionFlashesAndCounts(t *testing.T) {
	w := testWorld(VariantDrag)
	w.KeyBall().Pos = Vec2{X: 525, Y: 200}

	res := w.Step(Input{Right: true}, t0)
	require.True(t, res.Hit)
	assert.True(t, res.Overlapping)
	assert.Equal(t, 1, w.Collisions())
	assert.Equal(t, redFlash, w.KeyBall().Color)
	assert.Equal(t, blueHit, w.MouseBall().Color)
	assert.InDelta(t, 80, w.MouseBall().Pos.Sub(w.KeyBall().Pos).Len(), 1e-9)

	res = w.Step(Input{}, t0.Add(150*time.Millisecond))
	assert.False(t, res.Hit)
	assert.Equal(t, red, w.KeyBall().Color)
	assert.Equal(t, blue, w.MouseBall().Color)
	assert.Equal(t, 1, w.Collisions())
}

func TestCollisionCountsRisingEdgesOnly(t *testing.T) {
	w := testWorld(VariantDrag)
	w.MouseBall().Pos = Vec2{X: 270, Y: 200}

	hits := 0
	for i := 0; i < 5; i++ {
		if w.Step(Input{Right: true}, t0).Hit {
			hits++
		}
	}
	assert.Equal(t, 1, hits, "pushing continuously is one collision")
}

func TestVelocityAccelerationAndFriction(t *testing.T) {
	w := testWorld(VariantVelocity)

	w.Step(Input{Right: true}, t0)
	k := w.KeyBall()
	assert.InDelta(t, 0.49, k.Vel.X, 1e-9)
	assert.InDelta(t, 200.49, k.Pos.X, 1e-9)

	for i := 0; i < 500; i++ {
		w.Step(Input{Right: true}, t0)
	}
	assert.LessOrEqual(t, k.Vel.Len(), 12.0+1e-9)

	for i := 0; i < 2000; i++ {
		w.Step(Input{}, t0)
	}
	assert.InDelta(t, 0, k.Vel.Len(), 0.01, "friction brings the ball to rest")
}

func TestVelocityWallBounce(t *testing.T) {
	w := testWorld(VariantVelocity)
	k := w.KeyBall()
	k.Pos = Vec2{X: 45, Y: 200}
	k.Vel = Vec2{X: -10}

	w.Step(Input{}, t0)

	assert.Equal(t, 40.0, k.Pos.X)
	assert.InDelta(t, 10*0.98*0.7, k.Vel.X, 1e-9)
}

func TestVelocityThrowOnRelease(t *testing.T) {
	w := testWorld(VariantVelocity)
	m := w.MouseBall()

	w.Step(Input{Cursor: Vec2{X: 600, Y: 200}, MousePressed: true, MouseHeld: true}, t0)
	require.True(t, m.Grabbed)
	w.Step(Input{Cursor: Vec2{X: 604, Y: 197}, MouseHeld: true}, t0)
	assert.Equal(t, Vec2{X: 4, Y: -3}, m.Vel)

	w.Step(Input{Cursor: Vec2{X: 604, Y: 197}, MouseReleased: true}, t0)
	assert.False(t, m.Grabbed)
	assert.Greater(t, m.Pos.X, 604.0, "released ball keeps moving")
}

func TestVelocityCollisionExchangesMomentum(t *testing.T) {
	w := testWorld(VariantVelocity)
	k, m := w.KeyBall(), w.MouseBall()
	k.Pos = Vec2{X: 515, Y: 200}
	k.Vel = Vec2{X: 10}

	res := w.Step(Input{}, t0)

	require.True(t, res.Hit)
	assert.Greater(t, m.Vel.X, 0.0)
	assert.Less(t, k.Vel.X, m.Vel.X)
}

func TestGravityFallsAndRests(t *testing.T) {
	w := testWorld(VariantGravity)
	k := w.KeyBall()

	for i := 0; i < 600; i++ {
		w.Step(Input{}, t0)
	}

	assert.Equal(t, 360.0, k.Pos.Y)
	assert.Equal(t, 0.0, k.Vel.Y)
	assert.True(t, w.onFloor(k))
}

func TestGravityJumpOnlyFromFloor(t *testing.T) {
	w := testWorld(VariantGravity)
	k := w.KeyBall()

	w.Step(Input{Jump: true}, t0)
	assert.Greater(t, k.Vel.Y, 0.0, "no jump in mid-air")

	for i := 0; i < 600; i++ {
		w.Step(Input{}, t0)
	}
	w.Step(Input{Jump: true}, t0)
	assert.Less(t, k.Vel.Y, 0.0)
	assert.Less(t, k.Pos.Y, 360.0)
}

func TestGravityBounceLosesEnergy(t *testing.T) {
	w := testWorld(VariantGravity)
	k := w.KeyBall()
	k.Pos = Vec2{X: 200, Y: 355}
	k.Vel = Vec2{Y: 10}

	w.Step(Input{}, t0)

	assert.Equal(t, 360.0, k.Pos.Y)
	assert.InDelta(t, -10.5*0.7, k.Vel.Y, 1e-9)
}

func TestResizeClampsBalls(t *testing.T) {
	w := testWorld(VariantDrag)

	w.Resize(300, 400)

	assert.Equal(t, 260.0, w.MouseBall().Pos.X)
	assert.Equal(t, 200.0, w.KeyBall().Pos.X)
	width, height := w.Size()
	assert.Equal(t, 300.0, width)
	assert.Equal(t, 400.0, height)
}

func TestResetAndSetVariant(t *testing.T) {
	w := testWorld(VariantVelocity)
	w.KeyBall().Vel = Vec2{X: 3}
	w.Step(Input{Right: true}, t0)

	w.SetVariant(VariantGravity)
	assert.Equal(t, VariantGravity, w.Variant())
	assert.Equal(t, Vec2{}, w.KeyBall().Vel)

	w.Reset()
	assert.Equal(t, Vec2{X: 200, Y: 200}, w.KeyBall().Pos)
	assert.Equal(t, Vec2{X: 600, Y: 200}, w.MouseBall().Pos)
	assert.Equal(t, 0, w.Collisions())

	w.SetVariant(Variant(9))
	assert.Equal(t, VariantGravity, w.Variant(), "invalid variants are ignored")
}

func TestSetVariantReleasesGrab(t *testing.T) {
	w := testWorld(VariantDrag)
	m := w.MouseBall()
	w.Step(Input{Cursor: Vec2{X: 600, Y: 200}, MousePressed: true, MouseHeld: true}, t0)
	require.True(t, m.Grabbed)

	w.SetVariant(VariantVelocity)

	assert.False(t, m.Grabbed)
	assert.Equal(t, blue, m.Color)
}

func TestSeparateCollisionsCountTwice(t *testing.T) {
	w := testWorld(VariantDrag)
	w.MouseBall().Pos = Vec2{X: 280, Y: 200}

	require.True(t, w.Step(Input{Right: true}, t0).Hit)
	res := w.Step(Input{Left: true}, t0)
	require.False(t, res.Overlapping, "balls separate")
	require.False(t, w.Step(Input{Right: true}, t0).Overlapping, "touching is not overlapping")

	res = w.Step(Input{Right: true}, t0)
	assert.True(t, res.Hit)
	assert.Equal(t, 2, w.Collisions())
}

func TestFlashExtendsWhileOverlapping(t *testing.T) {
	w := testWorld(VariantDrag)
	w.MouseBall().Pos = Vec2{X: 270, Y: 200}

	require.True(t, w.Step(Input{Right: true}, t0).Hit)
	require.True(t, w.Step(Input{Right: true}, t0.Add(80*time.Millisecond)).Overlapping)

	res := w.Step(Input{}, t0.Add(150*time.Millisecond))
	require.False(t, res.Overlapping)
	assert.Equal(t, redFlash, w.KeyBall().Color, "last overlap at 80ms keeps the flash until 180ms")
	assert.Equal(t, blueHit, w.MouseBall().Color)

	w.Step(Input{}, t0.Add(200*time.Millisecond))
	assert.Equal(t, red, w.KeyBall().Color)
	assert.Equal(t, blue, w.MouseBall().Color)
}
