package sim

import (
	"fmt"
	"strings"
)

// Variant selects how the balls move and collide.
type Variant int

const (
	// VariantDrag moves the key ball in fixed steps and lets the mouse drag
	// the other ball. Collisions only push the balls apart.
	VariantDrag Variant = iota
	// VariantVelocity gives both balls momentum, friction and wall bounce.
	VariantVelocity
	// VariantGravity adds gravity, ground friction and jumping.
	VariantGravity

	variantCount
)

var variantNames = [...]string{
	VariantDrag:     "drag",
	VariantVelocity: "velocity",
	VariantGravity:  "gravity",
}

func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Next cycles to the following variant, wrapping after the last one.
func (v Variant) Next() Variant {
	return (v + 1) % variantCount
}

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// ParseVariant maps a name such as "gravity" to its Variant.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return VariantDrag, fmt.Errorf("unknown variant %q (want drag, velocity or gravity)", s)
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid variant %d", int(v))
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
