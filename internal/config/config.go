// Package config loads the tuning file that sizes the canvas, styles the two
// balls and sets the motion constants for every variant.
package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"ballplay/internal/sim"
)

// Config is the root of the YAML tuning file. Fields left out of the file
// keep their Default values.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Balls   BallsConfig   `yaml:"balls"`
	Motion  MotionConfig  `yaml:"motion"`
	Physics PhysicsConfig `yaml:"physics"`
}

// CanvasConfig sizes the drawing area.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FixedHeight keeps Height when the window is resized; only the width
	// follows the window.
	FixedHeight bool `yaml:"fixedHeight"`
	// Border is subtracted from the window width when it is resized.
	Border int `yaml:"border"`
}

// BallsConfig holds the two ball definitions.
type BallsConfig struct {
	Key   BallConfig `yaml:"key"`
	Mouse BallConfig `yaml:"mouse"`
}

// BallConfig describes one ball. Colours are "#rrggbb". A missing Y centres
// the ball vertically on the canvas.
type BallConfig struct {
	X          float64  `yaml:"x"`
	Y          *float64 `yaml:"y,omitempty"`
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	Color      string  `yaml:"color"`
	FlashColor string  `yaml:"flashColor"`
	GrabColor  string  `yaml:"grabColor"`
}

// MotionConfig tunes the velocity variant; the gravity variant reuses it.
type MotionConfig struct {
	Accel       float64       `yaml:"accel"`
	Friction    float64       `yaml:"friction"`
	MaxSpeed    float64       `yaml:"maxSpeed"`
	Bounce      float64       `yaml:"bounce"`
	Restitution float64       `yaml:"restitution"`
	Flash       time.Duration `yaml:"flash"`
}

// PhysicsConfig tunes the gravity variant.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	GroundFriction float64 `yaml:"groundFriction"`
	JumpImpulse    float64 `yaml:"jumpImpulse"`
	RestThreshold  float64 `yaml:"restThreshold"`
}

// Default returns the stock demo: an 800x400 canvas with a red keyboard ball
// on the left and a blue mouse ball on the right, both at half height.
func Default() *Config {
	cfg := defaults()
	cfg.centreBalls()
	return cfg
}

// defaults leaves ball Y unset so Parse can tell which ones the file gave.
func defaults() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 400, FixedHeight: true, Border: 4},
		Balls: BallsConfig{
			Key: BallConfig{
				X: 200, Radius: 40, Speed: 5,
				Color: "#ff0000", FlashColor: "#ff3333", GrabColor: "#ff0000",
			},
			Mouse: BallConfig{
				X: 600, Radius: 40, Speed: 5,
				Color: "#0000ff", FlashColor: "#3333ff", GrabColor: "#0066ff",
			},
		},
		Motion: MotionConfig{
			Accel:       0.5,
			Friction:    0.98,
			MaxSpeed:    12,
			Bounce:      0.7,
			Restitution: 0.9,
			Flash:       100 * time.Millisecond,
		},
		Physics: PhysicsConfig{
			Gravity:        0.5,
			GroundFriction: 0.9,
			JumpImpulse:    12,
			RestThreshold:  0.6,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML tuning data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.centreBalls()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that sizes are positive, damping factors lie in [0, 1]
// and every colour parses.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Border < 0 {
		return fmt.Errorf("canvas border must not be negative, got %d", c.Canvas.Border)
	}
	for name, b := range map[string]BallConfig{"key": c.Balls.Key, "mouse": c.Balls.Mouse} {
		if b.Radius <= 0 {
			return fmt.Errorf("ball %s: radius must be positive, got %.1f", name, b.Radius)
		}
		if b.Speed < 0 {
			return fmt.Errorf("ball %s: speed must not be negative, got %.1f", name, b.Speed)
		}
		for field, hex := range map[string]string{"color": b.Color, "flashColor": b.FlashColor, "grabColor": b.GrabColor} {
			if _, err := ParseHexColor(hex); err != nil {
				return fmt.Errorf("ball %s: %s: %w", name, field, err)
			}
		}
	}
	m := c.Motion
	if m.Accel < 0 || m.MaxSpeed <= 0 {
		return fmt.Errorf("motion: accel must be >= 0 and maxSpeed > 0, got %.2f and %.2f", m.Accel, m.MaxSpeed)
	}
	if m.Flash < 0 {
		return fmt.Errorf("motion: flash must not be negative, got %s", m.Flash)
	}
	unit := map[string]float64{
		"motion.friction":        m.Friction,
		"motion.bounce":          m.Bounce,
		"motion.restitution":     m.Restitution,
		"physics.groundFriction": c.Physics.GroundFriction,
	}
	for name, v := range unit {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %.3f", name, v)
		}
	}
	p := c.Physics
	if p.Gravity < 0 || p.JumpImpulse < 0 || p.RestThreshold < 0 {
		return fmt.Errorf("physics: gravity, jumpImpulse and restThreshold must not be negative")
	}
	return nil
}

// centreBalls puts every ball without a Y at half the canvas height.
func (c *Config) centreBalls() {
	for _, b := range []*BallConfig{&c.Balls.Key, &c.Balls.Mouse} {
		if b.Y == nil {
			y := float64(c.Canvas.Height) / 2
			b.Y = &y
		}
	}
}

// Params converts the motion sections into simulation constants.
func (c *Config) Params() sim.Params {
	return sim.Params{
		Accel:          c.Motion.Accel,
		Friction:       c.Motion.Friction,
		MaxSpeed:       c.Motion.MaxSpeed,
		Bounce:         c.Motion.Bounce,
		Restitution:    c.Motion.Restitution,
		Gravity:        c.Physics.Gravity,
		GroundFriction: c.Physics.GroundFriction,
		JumpImpulse:    c.Physics.JumpImpulse,
		RestThreshold:  c.Physics.RestThreshold,
		Flash:          c.Motion.Flash,
	}
}

// Ball builds a simulation ball. Colours are assumed valid; call Validate
// first.
func (b BallConfig) Ball() sim.Ball {
	base := mustColor(b.Color)
	var y float64
	if b.Y != nil {
		y = *b.Y
	}
	return sim.Ball{
		Pos:        sim.Vec2{X: b.X, Y: y},
		Radius:     b.Radius,
		Speed:      b.Speed,
		BaseColor:  base,
		FlashColor: mustColor(b.FlashColor),
		GrabColor:  mustColor(b.GrabColor),
		Color:      base,
	}
}

func mustColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// ParseHexColor parses "#rrggbb" (or "#rgb") into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{A: 0xff}, fmt.Errorf("colour %q must be #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{A: 0xff}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
