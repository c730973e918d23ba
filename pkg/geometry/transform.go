package geometry

import (
	"math"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Translate shifts an inner hittable by a fixed offset
type Translate struct {
	core.NonSampleable
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated view of the inner hittable
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit shifts the ray into object space, delegates, and shifts the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Inner.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rotates an inner hittable about the vertical axis by a fixed
// angle. Sine/cosine and the world-space bounding box are precomputed at
// construction.
type RotateY struct {
	core.NonSampleable
	Inner    core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY creates a rotated view of the inner hittable, angle in degrees
func NewRotateY(inner core.Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180.0
	r := &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	innerBox, bounded := inner.BoundingBox(0, 1)
	r.hasBox = bounded
	if !bounded {
		return r
	}

	// Sweep the eight corners of the inner box through the rotation and
	// take the axis-aligned extent of the result
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*innerBox.Max.X + float64(1-i)*innerBox.Min.X
				y := float64(j)*innerBox.Max.Y + float64(1-j)*innerBox.Min.Y
				z := float64(k)*innerBox.Max.Z + float64(1-k)*innerBox.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	r.box = core.NewAABB(min, max)
	return r
}

// rotateToWorld applies the forward rotation
func (r *RotateY) rotateToWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// rotateToObject applies the inverse rotation
func (r *RotateY) rotateToObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates the hit
// position and normal back to world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rotated := core.NewRayAt(
		r.rotateToObject(ray.Origin),
		r.rotateToObject(ray.Direction),
		ray.Time,
	)

	hit, ok := r.Inner.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = r.rotateToWorld(hit.Point)
	hit.Normal = r.rotateToWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed world-space box; the unbounded flag
// propagates from the inner shape
func (r *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

// FlipFace inverts the front/back flag of the inner shape, used to make
// emissive geometry radiate from the designer-intended side
type FlipFace struct {
	Inner core.Hittable
}

// NewFlipFace creates a face-flipped view of the inner hittable
func NewFlipFace(inner core.Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit delegates and inverts the front-face flag of the result
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the inner shape
func (f *FlipFace) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(t0, t1)
}

// PDFValue delegates to the inner shape so flipped lights remain valid
// importance-sampling targets
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return f.Inner.PDFValue(origin, direction)
}

// RandomDirection delegates to the inner shape
func (f *FlipFace) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return f.Inner.RandomDirection(origin, sampler)
}
