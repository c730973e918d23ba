package material

import (
	"math"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// SolidColor provides a uniform color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Even core.Texture
	Odd  core.Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(c1, c2 core.Vec3) *CheckerTexture {
	return &CheckerTexture{Even: NewSolidColor(c1), Odd: NewSolidColor(c2)}
}

// Value selects between the two textures by the sign of a product of sines
// over world position
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
