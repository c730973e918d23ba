package geometry

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Box is a closed axis-aligned prism between two opposite corners, built
// from six rectangles held in an internal list
type Box struct {
	core.NonSampleable
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning the two corners
func NewBox(min, max core.Vec3, material core.Material) *Box {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit delegates to the six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box spanned by the two corners
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
